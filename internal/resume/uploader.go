package resume

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/growvy/onboard/internal/client"
	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/internal/wizard"
	"github.com/growvy/onboard/pkg/types"
)

// Uploader drives a resume file through validation and upload, persists
// the returned analysis, and pre-fills the wizard draft with the detected
// fields.
type Uploader struct {
	client  *client.Client
	store   *session.Store
	draft   *wizard.Store
	maxSize int64

	mu    sync.Mutex
	state State
}

func NewUploader(c *client.Client, store *session.Store, draft *wizard.Store, maxSize int64) *Uploader {
	return &Uploader{
		client:  c,
		store:   store,
		draft:   draft,
		maxSize: maxSize,
		state:   StateIdle,
	}
}

// State returns the current upload-control state.
func (u *Uploader) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

func (u *Uploader) transition(to State) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !IsTransitionAllowed(u.state, to) {
		// A broken transition is a programming error, not user input.
		slog.Error("illegal upload state transition", "from", u.state, "to", to)
	}
	u.state = to
}

// Upload validates path locally and, only if it passes, uploads it for
// analysis. On success the raw analysis is cached durably (overwriting any
// previous one wholesale) and the detected role and location are merged
// into the draft as pre-fills.
func (u *Uploader) Upload(ctx context.Context, path string) (*types.ResumeAnalysis, error) {
	logger := slog.With("component", "resume", "operation", "upload", "file", path)

	u.transition(StateFileSelected)
	u.transition(StateValidating)

	info, err := os.Stat(path)
	if err != nil {
		u.transition(StateRejected)
		return nil, fmt.Errorf("reading resume file: %w", err)
	}
	if err := Validate(info.Name(), info.Size(), u.maxSize); err != nil {
		logger.Warn("resume rejected locally", "size", info.Size(), "error", err)
		u.transition(StateRejected)
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		u.transition(StateRejected)
		return nil, fmt.Errorf("opening resume file: %w", err)
	}
	defer file.Close()

	u.transition(StateUploading)
	logger.Info("uploading resume", "size", info.Size())

	analysis, raw, err := u.client.AnalyzeResume(ctx, info.Name(), file)
	if err != nil {
		u.transition(StateFailed)
		return nil, err
	}

	if err := u.store.SetRaw(session.KeyResumeAnalysis, raw); err != nil {
		logger.Warn("failed to cache resume analysis", "error", err)
	}
	u.prefill(analysis)

	u.transition(StateSucceeded)
	u.transition(StateIdle)
	logger.Info("resume analyzed",
		"detected_role", analysis.DetectedRole,
		"detected_location", analysis.DetectedLocation)
	return analysis, nil
}

// prefill merges detected fields into the draft so later steps start with
// them filled in. User edits on those steps overwrite the pre-fills.
func (u *Uploader) prefill(analysis *types.ResumeAnalysis) {
	patch := wizard.Patch{}
	if analysis.DetectedRole != "" {
		patch.JobTitle = &analysis.DetectedRole
	}
	if analysis.DetectedLocation != "" {
		patch.Location = &types.Location{Place: analysis.DetectedLocation}
	}
	if patch.JobTitle == nil && patch.Location == nil {
		return
	}
	if err := u.draft.Merge(patch); err != nil {
		slog.Warn("failed to pre-fill draft from analysis", "error", err)
	}
}

// CachedAnalysis returns the durably cached analysis from a previous
// upload, or nil when none exists.
func CachedAnalysis(store *session.Store) *types.ResumeAnalysis {
	raw := store.GetRaw(session.KeyResumeAnalysis)
	if raw == "" {
		return nil
	}
	if !gjson.Valid(raw) {
		slog.Warn("discarding unreadable cached analysis")
		return nil
	}
	return &types.ResumeAnalysis{
		DetectedRole:     gjson.Get(raw, "detectedRole").String(),
		DetectedLocation: gjson.Get(raw, "detectedLocation").String(),
	}
}

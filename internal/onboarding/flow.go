package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/growvy/onboard/internal/client"
	"github.com/growvy/onboard/internal/resume"
	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/internal/wizard"
	apierrors "github.com/growvy/onboard/pkg/errors"
	"github.com/growvy/onboard/pkg/types"
)

var (
	// ErrBack is returned by a Prompter to navigate to the previous step.
	ErrBack = errors.New("go back")
	// ErrQuit is returned by a Prompter to leave the flow entirely.
	ErrQuit = errors.New("quit")
	// ErrSubmitInFlight rejects a second submission while one is running.
	ErrSubmitInFlight = errors.New("submission already in progress")
)

// Prompter collects answers for a step. Implementations may return ErrBack
// or ErrQuit from any method to navigate instead of answering.
type Prompter interface {
	// Input asks for free text; def is pre-filled and kept on empty input.
	Input(title, def string) (string, error)
	// Select asks for exactly one of options.
	Select(title string, options []string) (string, error)
	// MultiSelect asks for up to max of options; current is pre-selected.
	MultiSelect(title string, options []string, max int, current []string) ([]string, error)
	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
	// Notify shows a transient message.
	Notify(msg string)
}

// Flow wires the step catalog, the sequencer, the draft, and the API
// client into a runnable onboarding session.
type Flow struct {
	catalog  *Catalog
	seq      *wizard.Sequence
	draft    *wizard.Store
	client   *client.Client
	store    *session.Store
	uploader *resume.Uploader
	prompter Prompter

	// successDelay is how long success notices stay on screen before the
	// flow moves on. Tests set it to zero.
	successDelay time.Duration

	submitting atomic.Bool
	profile    *types.Profile
}

func NewFlow(catalog *Catalog, draft *wizard.Store, c *client.Client, store *session.Store, up *resume.Uploader, p Prompter) (*Flow, error) {
	seq, err := wizard.NewSequence(catalog.Order())
	if err != nil {
		return nil, fmt.Errorf("building step sequence: %w", err)
	}
	f := &Flow{
		catalog:      catalog,
		seq:          seq,
		draft:        draft,
		client:       c,
		store:        store,
		uploader:     up,
		prompter:     p,
		successDelay: 1500 * time.Millisecond,
	}
	seq.RegisterAdvanceHook(wizard.StepGenerate, f.submit)
	return f, nil
}

// SetSuccessDelay overrides the pause after success notices.
func (f *Flow) SetSuccessDelay(d time.Duration) { f.successDelay = d }

// Profile returns the canonical profile from a completed submission.
func (f *Flow) Profile() *types.Profile { return f.profile }

// Run walks the flow from the current step until the last step completes,
// the prompter quits, or ctx is cancelled.
func (f *Flow) Run(ctx context.Context) error {
	logger := slog.With("component", "onboarding", "operation", "run")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cur := f.seq.Current()
		def, ok := f.catalog.Step(cur)
		if !ok {
			return fmt.Errorf("no catalog entry for step %q", cur)
		}

		err := f.runStep(ctx, def)
		switch {
		case errors.Is(err, ErrQuit):
			logger.Info("flow left by user", "step", cur)
			return nil
		case errors.Is(err, ErrBack):
			f.seq.Back()
			continue
		case err != nil:
			// Answer rejected or request failed. Tell the user and
			// stay on the step.
			f.prompter.Notify(userMessage(err))
			logger.Warn("step failed", "step", cur, "error", err)
			continue
		}

		if f.seq.Next() == "" {
			logger.Info("flow complete")
			return nil
		}
		if _, err := f.seq.Advance(ctx); err != nil {
			f.prompter.Notify(userMessage(err))
			logger.Warn("advance blocked", "step", cur, "error", err)

			retry, perr := f.prompter.Confirm("Try again?", true)
			switch {
			case errors.Is(perr, ErrBack):
				f.seq.Back()
			case errors.Is(perr, ErrQuit), perr == nil && !retry:
				return nil
			case perr != nil:
				return perr
			}
		}
	}
}

func (f *Flow) runStep(ctx context.Context, def StepDef) error {
	draft := f.draft.Read()

	switch def.Kind {
	case KindResume:
		return f.runResumeStep(ctx, def)

	case KindInput:
		answer, err := f.prompter.Input(def.Title, draft.JobTitle)
		if err != nil {
			return err
		}
		if answer == "" {
			answer = draft.JobTitle
		}
		return f.draft.Merge(wizard.Patch{JobTitle: &answer})

	case KindSelect:
		answer, err := f.prompter.Select(def.Title, def.Options)
		if err != nil {
			return err
		}
		return f.applySelection(def.ID, answer)

	case KindMulti:
		current := draft.Skills
		if def.ID == wizard.StepBenefits {
			current = draft.Benefits
		}
		answers, err := f.prompter.MultiSelect(def.Title, def.Options, def.Max, current)
		if err != nil {
			return err
		}
		if def.ID == wizard.StepBenefits {
			return f.draft.Merge(wizard.Patch{Benefits: &answers})
		}
		return f.draft.Merge(wizard.Patch{Skills: &answers})

	case KindSalary:
		return f.runSalaryStep(def)

	case KindLocation:
		return f.runLocationStep(def, draft)

	case KindGenerate:
		// The actual submission runs as the advance hook so a failure
		// blocks navigation.
		f.prompter.Notify(def.Title + "...")
		return nil
	}
	return fmt.Errorf("unknown step kind %q", def.Kind)
}

// applySelection routes a single-choice answer to the right field. The
// pricing choice is not part of the profile; it is persisted for the
// payment screen.
func (f *Flow) applySelection(id wizard.StepID, answer string) error {
	switch id {
	case wizard.StepRemoteType:
		return f.draft.Merge(wizard.Patch{RemoteType: &answer})
	case wizard.StepWorkType:
		return f.draft.Merge(wizard.Patch{WorkType: &answer})
	case wizard.StepCareerLevel:
		return f.draft.Merge(wizard.Patch{CareerLevel: &answer})
	case wizard.StepPricing:
		return f.store.Set(session.KeySelectedPlan, answer)
	}
	return fmt.Errorf("no field for selection step %q", id)
}

func (f *Flow) runResumeStep(ctx context.Context, def StepDef) error {
	path, err := f.prompter.Input(def.Title+" (path, empty to skip)", "")
	if err != nil {
		return err
	}
	if path == "" {
		return nil
	}

	analysis, err := f.uploader.Upload(ctx, path)
	if err != nil {
		return err
	}
	if analysis.DetectedRole != "" || analysis.DetectedLocation != "" {
		f.prompter.Notify(fmt.Sprintf("Detected: %s, %s", analysis.DetectedRole, analysis.DetectedLocation))
	}
	f.pause(ctx)
	return nil
}

func (f *Flow) runSalaryStep(def StepDef) error {
	raw, err := f.prompter.Input(def.Title+" (amount)", "")
	if err != nil {
		return err
	}
	amount, err := strconv.Atoi(raw)
	if err != nil || amount <= 0 {
		return apierrors.Local("salary must be a positive number")
	}
	kind, err := f.prompter.Select("Per year or per hour?", []string{"Annual", "Hourly"})
	if err != nil {
		return err
	}
	salaryType := types.SalaryTypeAnnual
	if kind == "Hourly" {
		salaryType = types.SalaryTypeHourly
	}
	return f.draft.Merge(wizard.Patch{
		SalaryExpectation: &types.SalaryExpectation{Amount: amount, Type: salaryType},
	})
}

func (f *Flow) runLocationStep(def StepDef, draft types.Draft) error {
	place, err := f.prompter.Input(def.Title+" (city, state or country)", draft.Location.Place)
	if err != nil {
		return err
	}
	if place == "" {
		place = draft.Location.Place
	}
	country, err := f.prompter.Confirm("Open to anywhere in your country?", draft.Location.AnywhereInCountry)
	if err != nil {
		return err
	}
	world, err := f.prompter.Confirm("Open to anywhere in the world?", draft.Location.AnywhereInWorld)
	if err != nil {
		return err
	}
	return f.draft.Merge(wizard.Patch{
		Location: &types.Location{
			Place:             place,
			AnywhereInCountry: country,
			AnywhereInWorld:   world,
		},
	})
}

// Submit runs the profile submission outside the step loop, for
// front-ends that trigger it from their own controls. The same in-flight
// guard applies.
func (f *Flow) Submit(ctx context.Context) error { return f.submit(ctx) }

// Submitting reports whether a submission is currently in flight.
func (f *Flow) Submitting() bool { return f.submitting.Load() }

// submit is the advance hook on the generation step. A failure keeps the
// flow on the step; a second call while one is running is refused.
func (f *Flow) submit(ctx context.Context) error {
	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	profile, err := f.client.SubmitProfile(ctx, f.draft.Read())
	if err != nil {
		return err
	}
	f.profile = profile
	f.prompter.Notify("Your profile is ready.")
	f.pause(ctx)
	return nil
}

func (f *Flow) pause(ctx context.Context) {
	if f.successDelay <= 0 {
		return
	}
	select {
	case <-time.After(f.successDelay):
	case <-ctx.Done():
	}
}

// userMessage renders err for the prompter, preferring the taxonomy's
// user-facing text and field details when present.
func userMessage(err error) string {
	var apiErr *apierrors.ApiError
	if errors.As(err, &apiErr) {
		msg := apiErr.UserMessage()
		for _, fe := range apiErr.Fields {
			msg += fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message)
		}
		return msg
	}
	return err.Error()
}

package client

import (
	"context"
	"log/slog"

	"github.com/growvy/onboard/pkg/types"
)

// BuildProfilePayload reshapes the accumulated draft into the POST
// /profiles wire shape. The nested location is flattened to its place
// string; unset optional fields become explicit nulls, never omitted;
// skills and benefits always serialize as arrays.
func BuildProfilePayload(draft types.Draft) types.ProfilePayload {
	p := types.ProfilePayload{
		JobTitle:          draft.JobTitle,
		SalaryExpectation: draft.SalaryExpectation,
		Skills:            draft.Skills,
		Location:          draft.Location.Place,
		Benefits:          draft.Benefits,
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Benefits == nil {
		p.Benefits = []string{}
	}
	if draft.RemoteType != "" {
		p.RemoteType = &draft.RemoteType
	}
	if draft.CareerLevel != "" {
		p.CareerLevel = &draft.CareerLevel
	}
	if draft.WorkType != "" {
		p.WorkType = &draft.WorkType
	}
	return p
}

// SubmitProfile submits the draft and returns the canonical profile the
// server confirmed. Validation failures come back as a VALIDATION ApiError
// carrying the field-error list; the caller surfaces them without
// navigating.
func (c *Client) SubmitProfile(ctx context.Context, draft types.Draft) (*types.Profile, error) {
	payload := BuildProfilePayload(draft)
	slog.Info("submitting profile",
		"component", "client",
		"job_title", payload.JobTitle,
		"skills", len(payload.Skills),
		"benefits", len(payload.Benefits),
	)

	var profile types.Profile
	if err := c.postJSON(ctx, "/profiles", payload, true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfile fetches the current user's canonical profile.
func (c *Client) GetProfile(ctx context.Context) (*types.Profile, error) {
	var profile types.Profile
	if err := c.getJSON(ctx, "/profile", true, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListJobs fetches the public job listings.
func (c *Client) ListJobs(ctx context.Context) ([]types.Job, error) {
	var jobs []types.Job
	if err := c.getJSON(ctx, "/jobs", false, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

package client

import (
	"context"

	"github.com/growvy/onboard/pkg/types"
)

// Admin dashboard calls. All of them require an admin credential; the
// backend enforces the role, the client only forwards the bearer token.

func (c *Client) AdminStats(ctx context.Context) (types.AdminStats, error) {
	var stats types.AdminStats
	err := c.getJSON(ctx, "/admin/stats", true, &stats)
	return stats, err
}

func (c *Client) AdminProfiles(ctx context.Context) ([]types.AdminProfile, error) {
	var profiles []types.AdminProfile
	err := c.getJSON(ctx, "/admin/profiles", true, &profiles)
	return profiles, err
}

func (c *Client) AdminJobs(ctx context.Context) ([]types.Job, error) {
	var jobs []types.Job
	err := c.getJSON(ctx, "/admin/jobs", true, &jobs)
	return jobs, err
}

func (c *Client) AdminApplications(ctx context.Context) ([]types.Application, error) {
	var apps []types.Application
	err := c.getJSON(ctx, "/admin/applications", true, &apps)
	return apps, err
}

// AdminAddJob creates a listing and returns the stored row.
func (c *Client) AdminAddJob(ctx context.Context, job types.Job) (*types.Job, error) {
	var created types.Job
	if err := c.postJSON(ctx, "/admin/jobs", job, true, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdminMarkPaymentDone flips a profile's payment state to Paid after the
// submitted receipt has been verified by hand.
func (c *Client) AdminMarkPaymentDone(ctx context.Context, profileID string) error {
	payload := map[string]string{"profile_id": profileID}
	return c.postJSON(ctx, "/admin/payment/done", payload, true, nil)
}

package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/growvy/onboard/internal/session"
	"github.com/growvy/onboard/pkg/types"
)

// Login exchanges credentials for a bearer token (form-encoded POST /token,
// the one encoding the backend accepts), stores it, drops any cached
// resume analysis from a previous account, and returns the user status for
// post-login routing.
func (c *Client) Login(ctx context.Context, email, password string) (types.UserStatus, error) {
	form := url.Values{
		"username": {email},
		"password": {password},
	}

	var tok types.TokenResponse
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/token",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
	}, &tok)
	if err != nil {
		return types.UserStatus{}, err
	}
	if tok.AccessToken == "" {
		return types.UserStatus{}, fmt.Errorf("login response carried no access token")
	}

	if err := c.session.SetToken(tok.AccessToken); err != nil {
		return types.UserStatus{}, fmt.Errorf("storing credential: %w", err)
	}
	if err := c.session.DropResumeAnalysis(); err != nil {
		slog.Warn("failed to drop cached resume analysis", "error", err)
	}

	status, err := c.Me(ctx)
	if err != nil {
		return types.UserStatus{}, fmt.Errorf("fetching user status after login: %w", err)
	}
	slog.Info("logged in", "role", status.Role, "profile_status", status.ProfileStatus)
	return status, nil
}

// Register creates an account and auto-logs it in, mirroring the signup
// flow: a fresh registration always lands on the resume-upload step.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (types.UserStatus, error) {
	// A stale credential must not leak into the new account.
	if err := c.session.Clear(); err != nil {
		slog.Warn("failed to clear stale credential", "error", err)
	}

	if err := c.postJSON(ctx, "/register", req, false, nil); err != nil {
		return types.UserStatus{}, err
	}
	return c.Login(ctx, req.Email, req.Password)
}

// Me fetches the role/profile/payment status fields behind the routing
// decision table.
func (c *Client) Me(ctx context.Context) (types.UserStatus, error) {
	var status types.UserStatus
	if err := c.getJSON(ctx, "/me", true, &status); err != nil {
		return types.UserStatus{}, err
	}
	return status, nil
}

// RouteAfterLogin is a convenience wrapper: Login plus the decision table.
func (c *Client) RouteAfterLogin(ctx context.Context, email, password string) (session.Route, error) {
	status, err := c.Login(ctx, email, password)
	if err != nil {
		return "", err
	}
	return session.RouteFor(status), nil
}

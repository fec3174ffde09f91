// Package client is the REST client for the growvy backend. Every call
// goes through a single do() that attaches the bearer credential and a
// correlation ID, enforces the wall-clock request timeout, and classifies
// failures into the pkg/errors taxonomy. A 401/403 on any authenticated
// call expires the session before the error is returned.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/growvy/onboard/internal/config"
	"github.com/growvy/onboard/internal/session"
	apierrors "github.com/growvy/onboard/pkg/errors"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

func New(cfg *config.Config, sess *session.Session) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		session: sess,
	}
}

// request bundles everything do() needs for one call.
type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
	// authenticated attaches the bearer credential and arms the
	// expire-on-401 behavior.
	authenticated bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	requestID := uuid.New().String()
	logger := slog.With(
		"component", "client",
		"method", req.method,
		"path", req.path,
		"request_id", requestID,
	)

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, req.body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("X-Request-ID", requestID)
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.authenticated {
		if token := c.session.Token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			logger.Error("request timed out")
			return apierrors.Timeout(err).WithRequestID(requestID)
		}
		logger.Error("request failed", "error", err)
		return apierrors.Network("no response from server", err).WithRequestID(requestID)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierrors.Network("reading response", err).WithRequestID(requestID)
	}

	if resp.StatusCode >= 400 {
		apiErr := classifyResponse(resp.StatusCode, body).WithRequestID(requestID)
		logger.Warn("request rejected", "status", resp.StatusCode, "category", apiErr.Category)
		if req.authenticated && apierrors.IsAuth(apiErr) {
			c.session.Expire()
		}
		return apiErr
	}

	logger.Debug("request completed", "status", resp.StatusCode)

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return apierrors.Network("decoding response", err).WithRequestID(requestID)
		}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, authenticated bool, out any) error {
	return c.do(ctx, request{
		method:        http.MethodGet,
		path:          path,
		authenticated: authenticated,
	}, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload any, authenticated bool, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, request{
		method:        http.MethodPost,
		path:          path,
		body:          bytes.NewReader(body),
		contentType:   "application/json",
		authenticated: authenticated,
	}, out)
}

// classifyResponse turns a non-2xx body into an ApiError. The backend's
// error contract is a "detail" member that is either a plain string or a
// pydantic-style list of {loc: [place, field], msg} objects.
func classifyResponse(status int, body []byte) *apierrors.ApiError {
	detail := gjson.GetBytes(body, "detail")

	var fields []apierrors.FieldError
	if detail.IsArray() {
		detail.ForEach(func(_, item gjson.Result) bool {
			field := item.Get("loc.1").String()
			if field == "" {
				field = item.Get("loc.0").String()
			}
			fields = append(fields, apierrors.FieldError{
				Field:   field,
				Message: item.Get("msg").String(),
			})
			return true
		})
	}

	msg := detail.String()
	if detail.IsArray() {
		msg = fmt.Sprintf("%d field(s) were rejected", len(fields))
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return apierrors.FromStatus(status, msg, fields)
}

func isClientTimeout(err error) bool {
	type timeout interface{ Timeout() bool }
	var t timeout
	return errors.As(err, &t) && t.Timeout()
}

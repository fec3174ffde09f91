package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/tidwall/gjson"

	apierrors "github.com/growvy/onboard/pkg/errors"
	"github.com/growvy/onboard/pkg/types"
)

// AnalyzeResume uploads a resume (multipart field "resume") and returns
// the parsed analysis plus its raw JSON for durable caching. The caller is
// responsible for validating the file before this call.
func (c *Client) AnalyzeResume(ctx context.Context, filename string, file io.Reader) (*types.ResumeAnalysis, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", filename)
	if err != nil {
		return nil, "", fmt.Errorf("building upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", fmt.Errorf("reading resume: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalizing upload: %w", err)
	}

	var resp json.RawMessage
	err = c.do(ctx, request{
		method:        http.MethodPost,
		path:          "/resume/analyze",
		body:          &buf,
		contentType:   mw.FormDataContentType(),
		authenticated: true,
	}, &resp)
	if err != nil {
		return nil, "", err
	}

	raw := gjson.GetBytes(resp, "analysis").Raw
	if raw == "" {
		return nil, "", apierrors.Network("analysis missing from response", nil)
	}

	var analysis types.ResumeAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, "", apierrors.Network("decoding analysis", err)
	}
	return &analysis, raw, nil
}

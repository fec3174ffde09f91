package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	apierrors "github.com/growvy/onboard/pkg/errors"
	"github.com/growvy/onboard/pkg/types"
)

// SubmitPayment sends the receipt-based payment form (multipart POST
// /payment/submit). Terms must be accepted before anything leaves the
// client.
func (c *Client) SubmitPayment(ctx context.Context, req types.PaymentRequest) error {
	if !req.TermsAccepted {
		return apierrors.Local("you must accept the terms and conditions")
	}
	if req.ReceiptPath == "" {
		return apierrors.Local("a payment receipt file is required")
	}

	receipt, err := os.Open(req.ReceiptPath)
	if err != nil {
		return apierrors.Local(fmt.Sprintf("cannot open receipt: %v", err))
	}
	defer receipt.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := map[string]string{
		"name":          req.Name,
		"email":         req.Email,
		"method":        req.Method,
		"plan":          req.Plan,
		"termsAccepted": strconv.FormatBool(req.TermsAccepted),
	}
	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("building payment form: %w", err)
		}
	}
	part, err := mw.CreateFormFile("receipt", filepath.Base(req.ReceiptPath))
	if err != nil {
		return fmt.Errorf("building payment form: %w", err)
	}
	if _, err := io.Copy(part, receipt); err != nil {
		return fmt.Errorf("reading receipt: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalizing payment form: %w", err)
	}

	return c.do(ctx, request{
		method:        http.MethodPost,
		path:          "/payment/submit",
		body:          &buf,
		contentType:   mw.FormDataContentType(),
		authenticated: true,
	}, nil)
}

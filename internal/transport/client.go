// Package transport is the client half of the submission boundary: it posts a
// validated draft to the intake API and decodes the reference-id response.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/imabhi25/apex-freight-brokerage/internal/domain"
	"github.com/imabhi25/apex-freight-brokerage/internal/domain/models"
)

// Client posts lead submissions to the backend. No retries and no dedupe: the
// caller disables its submit control while a call is in flight and surfaces a
// manual retry on failure.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a submission client for baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// SubmitQuote posts a full quote draft.
func (c *Client) SubmitQuote(ctx context.Context, d models.QuoteDraft) (domain.SubmissionResult, error) {
	return c.post(ctx, "/api/quote", d)
}

// SubmitCarrier posts a carrier application.
func (c *Client) SubmitCarrier(ctx context.Context, app models.CarrierApplication) (domain.SubmissionResult, error) {
	return c.post(ctx, "/api/carrier", app)
}

// SubmitContact posts a contact inquiry.
func (c *Client) SubmitContact(ctx context.Context, msg models.ContactMessage) (domain.SubmissionResult, error) {
	return c.post(ctx, "/api/contact", msg)
}

// post marshals payload and decodes either {success,refId} or {error} with a
// non-2xx status. A transport-level failure comes back as err; a server-side
// rejection comes back as a result with Success=false.
func (c *Client) post(ctx context.Context, path string, payload any) (domain.SubmissionResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return domain.SubmissionResult{}, err
	}
	defer resp.Body.Close()

	var out domain.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.SubmissionResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		out.Success = false
		if out.Error == "" {
			out.Error = http.StatusText(resp.StatusCode)
		}
	}
	return out, nil
}

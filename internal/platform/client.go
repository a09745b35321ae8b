// Package platform is the HTTP client for the proof platform API: prove
// jobs, shared proofs, circuits, policy specs, and credential issuance and
// verification. Every call is a blocking request-response step; the
// verification workflow sequences them strictly.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/attestia/veriproof/internal/policyspec"
)

const defaultTimeout = 15 * time.Second

// Client talks to one platform endpoint with one organization's API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// APIError is a non-2xx platform response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform: %s (HTTP %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("platform: HTTP %d", e.Status)
}

// NotFound reports whether err is a platform 404.
func NotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// New creates a client for the given endpoint and API key.
func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// GetProveJob fetches a prove job owned by the calling organization.
func (c *Client) GetProveJob(ctx context.Context, jobID string) (*ProveJob, error) {
	var job ProveJob
	if err := c.get(ctx, "/v1/prove-jobs/"+url.PathEscape(jobID), &job); err != nil {
		return nil, fmt.Errorf("fetch prove job %s: %w", jobID, err)
	}
	return &job, nil
}

// GetSharedProof fetches a proof shared with the calling organization.
func (c *Client) GetSharedProof(ctx context.Context, shareID string) (*SharedProof, error) {
	var share SharedProof
	if err := c.get(ctx, "/v1/shared-proofs/"+url.PathEscape(shareID), &share); err != nil {
		return nil, fmt.Errorf("fetch shared proof %s: %w", shareID, err)
	}
	return &share, nil
}

// GetCircuit fetches a circuit description.
func (c *Client) GetCircuit(ctx context.Context, circuitID string) (*Circuit, error) {
	var circuit Circuit
	if err := c.get(ctx, "/v1/circuits/"+url.PathEscape(circuitID), &circuit); err != nil {
		return nil, fmt.Errorf("fetch circuit %s: %w", circuitID, err)
	}
	return &circuit, nil
}

// GetPolicy fetches one policy spec by id.
func (c *Client) GetPolicy(ctx context.Context, policyID string) (*policyspec.Spec, error) {
	var spec policyspec.Spec
	if err := c.get(ctx, "/v1/policies/"+url.PathEscape(policyID), &spec); err != nil {
		return nil, fmt.Errorf("fetch policy %s: %w", policyID, err)
	}
	return &spec, nil
}

// ListPolicies fetches the full policy listing.
func (c *Client) ListPolicies(ctx context.Context) ([]policyspec.Spec, error) {
	var listing struct {
		Policies []policyspec.Spec `json:"policies"`
	}
	if err := c.get(ctx, "/v1/policies", &listing); err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	return listing.Policies, nil
}

// IssueCredential requests a credential for a completed prove job.
func (c *Client) IssueCredential(ctx context.Context, jobID, format string) (*Credential, error) {
	body := map[string]string{"proveJobId": jobID, "format": format}
	var cred Credential
	if err := c.post(ctx, "/v1/credentials", body, &cred); err != nil {
		return nil, fmt.Errorf("issue credential for job %s: %w", jobID, err)
	}
	return &cred, nil
}

// VerifyCredential asks the platform to verify a signed credential and
// decode its disclosed claims. Signature checking is entirely the
// platform's concern; this client only relays the verdict.
func (c *Client) VerifyCredential(ctx context.Context, jwt string) (*VerifyResult, error) {
	body := map[string]string{"jwt": jwt}
	var result VerifyResult
	if err := c.post(ctx, "/v1/credentials/verify", body, &result); err != nil {
		return nil, fmt.Errorf("verify credential: %w", err)
	}
	return &result, nil
}

// SubmitProveJob submits a new prove job against a circuit.
func (c *Client) SubmitProveJob(ctx context.Context, circuitID string, inputs map[string]any) (*ProveJob, error) {
	body := map[string]any{"circuitId": circuitID, "inputs": inputs}
	var job ProveJob
	if err := c.post(ctx, "/v1/prove-jobs", body, &job); err != nil {
		return nil, fmt.Errorf("submit prove job: %w", err)
	}
	return &job, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: errMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func errMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil {
		if body.Error != "" {
			return body.Error
		}
		return body.Message
	}
	return ""
}

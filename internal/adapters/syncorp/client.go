// Package syncorp is the HTTP client for the upstream Syncorp HRIS API.
// It owns fetching and normalization; joining reference data onto the
// fetched records is the service layer's job.
package syncorp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Session carries the upstream credentials attached to every request:
// X-JWT-TOKEN (session token) and X-EMP-ID (acting employee). It is
// passed explicitly to each call, never read from ambient state.
type Session struct {
	Token string
	EmpID string
}

// APIError is a failure reported by the HRIS API. Message carries the
// server's error text verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HRIS request failed with status %d", e.StatusCode)
}

// Client talks to the Syncorp HRIS API
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope is the standard HRIS response wrapper. List endpoints fill
// Data; mutation endpoints fill Success/Error.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Success *bool           `json:"success"`
	Error   string          `json:"error"`
}

func (c *Client) newRequest(ctx context.Context, method, path string, sess Session, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-JWT-TOKEN", sess.Token)
	req.Header.Set("X-EMP-ID", sess.EmpID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// getData performs a GET and unmarshals the envelope's data field into out
func (c *Client) getData(ctx context.Context, sess Session, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, sess, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	env, err := parseEnvelope(resp.StatusCode, body)
	if err != nil {
		return err
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// send performs a mutation (PUT/POST/DELETE) with an optional JSON
// payload and checks the ack envelope.
func (c *Client) send(ctx context.Context, sess Session, method, path string, payload interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, sess, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	_, err = parseEnvelope(resp.StatusCode, raw)
	return err
}

// parseEnvelope decodes a response body and folds transport status,
// a success:false envelope, and a non-2xx status into one error class.
func parseEnvelope(statusCode int, body []byte) (*envelope, error) {
	var env envelope
	if len(body) > 0 {
		// A malformed body on a 2xx is still a failure; on an error
		// status the HTTP code alone is enough to report.
		if err := json.Unmarshal(body, &env); err != nil && statusCode < 300 {
			return nil, fmt.Errorf("malformed HRIS response: %w", err)
		}
	}

	if statusCode < 200 || statusCode >= 300 {
		return nil, &APIError{StatusCode: statusCode, Message: env.Error}
	}
	if env.Success != nil && !*env.Success {
		return nil, &APIError{StatusCode: statusCode, Message: env.Error}
	}
	return &env, nil
}

// ID tolerates the HRIS API's habit of emitting identifiers as either
// JSON numbers or strings. Null and empty decode to "".
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` || s == "" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*id = ID(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// ApprovalDecision is the payload for the update_approval endpoints
type ApprovalDecision struct {
	Status     string `json:"status"`
	ApprovedBy string `json:"approved_by"`
	Reason     string `json:"reason,omitempty"`
}

// Approve builds an approval payload attributed to the session actor
func Approve(sess Session) ApprovalDecision {
	return ApprovalDecision{Status: "Approved", ApprovedBy: sess.EmpID}
}

// Reject builds a rejection payload attributed to the session actor
func Reject(sess Session, reason string) ApprovalDecision {
	return ApprovalDecision{Status: "Rejected", ApprovedBy: sess.EmpID, Reason: reason}
}

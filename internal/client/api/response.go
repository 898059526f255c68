package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a fully read HTTP response. Coalesced callers share one
// Response, so treat it as read-only.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// JSON decodes the body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response (HTTP %d): %w", r.StatusCode, err)
	}
	return nil
}

// Err returns nil for a 2xx response and an *HTTPError otherwise. Request
// passes 400 and an exhausted 429 through; callers that have no use for
// those bodies turn them into errors with Err.
func (r *Response) Err() error {
	if r.OK() {
		return nil
	}
	return newHTTPError(r)
}

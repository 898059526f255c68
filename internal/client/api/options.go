package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

const (
	defaultRateLimitAttempts = 3
	defaultRetryAfter        = 5 * time.Second
	defaultMinPasswordLength = 8
)

type options struct {
	httpClient        *http.Client
	log               logging.Logger
	rateLimitAttempts int
	retryAfter        time.Duration
	minPasswordLength int
}

func defaultOptions() options {
	return options{
		httpClient:        &http.Client{},
		log:               logging.Discard(),
		rateLimitAttempts: defaultRateLimitAttempts,
		retryAfter:        defaultRetryAfter,
		minPasswordLength: defaultMinPasswordLength,
	}
}

// Option configures a Client or a Backend.
type Option func(*options)

func WithHTTPClient(c *http.Client) Option { return func(o *options) { o.httpClient = c } }

func WithLogger(l logging.Logger) Option { return func(o *options) { o.log = l } }

// WithRateLimitPolicy sets the total number of attempts made for a request
// answered with 429, and the wait used when Retry-After is missing.
func WithRateLimitPolicy(attempts int, fallback time.Duration) Option {
	return func(o *options) {
		o.rateLimitAttempts = attempts
		o.retryAfter = fallback
	}
}

func WithMinPasswordLength(n int) Option { return func(o *options) { o.minPasswordLength = n } }

// request is the per-call state assembled from RequestOptions.
type request struct {
	method   string
	header   http.Header
	body     []byte
	skipAuth bool
	err      error
}

// RequestOption configures a single Request.
type RequestOption func(*request)

func WithMethod(method string) RequestOption { return func(r *request) { r.method = method } }

// WithJSON marshals v as the request body.
func WithJSON(v any) RequestOption {
	return func(r *request) {
		b, err := json.Marshal(v)
		if err != nil {
			r.err = fmt.Errorf("encode request body: %w", err)
			return
		}
		r.body = b
	}
}

func WithBody(b []byte) RequestOption { return func(r *request) { r.body = b } }

// WithHeader sets a header. It overrides the default Content-Type.
func WithHeader(key, value string) RequestOption {
	return func(r *request) { r.header.Set(key, value) }
}

// SkipAuth sends the request without a bearer token and exempts it from
// the refresh-on-401 policy.
func SkipAuth() RequestOption { return func(r *request) { r.skipAuth = true } }

func newRequest(opts ...RequestOption) *request {
	r := &request{method: http.MethodGet, header: http.Header{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/sethvargo/go-retry"
)

var errRateLimited = errors.New("rate limited")

// sendRateLimited transmits r, retrying while the server answers 429. The
// wait before each retry comes from the previous response's Retry-After.
// When the attempts run out the last 429 is returned as a normal response.
func (c *Client) sendRateLimited(ctx context.Context, path string, r *request) (*Response, error) {
	attempts := c.opts.rateLimitAttempts
	if attempts < 1 {
		attempts = 1
	}

	var (
		last  *Response
		delay time.Duration
	)
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.BackoffFunc(func() (time.Duration, bool) {
		return delay, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := c.send(ctx, path, r)
		if err != nil {
			return err
		}
		last = resp
		if resp.StatusCode != http.StatusTooManyRequests {
			return nil
		}
		delay = retryAfter(resp.Header, c.opts.retryAfter, time.Now())
		c.log.Info(ctx, "rate limited, backing off", "path", path, "wait", delay)
		return retry.RetryableError(errRateLimited)
	})
	if err != nil && !errors.Is(err, errRateLimited) {
		return nil, err
	}
	return last, nil
}

// retryAfter reads a Retry-After header given in seconds or as an HTTP date.
func retryAfter(h http.Header, fallback time.Duration, now time.Time) time.Duration {
	v := strings.TrimSpace(h.Get(common.RetryAfterHeaderName))
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
		return 0
	}
	return fallback
}

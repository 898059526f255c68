package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnauthenticated means a request needed a token and none was held.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrAuthExpired means the server kept rejecting the token after a
	// refresh; the session has been cleared.
	ErrAuthExpired = errors.New("authentication expired, please log in again")
	ErrNetwork     = errors.New("network unavailable")
	ErrValidation  = errors.New("validation failed")
	ErrLocked      = errors.New("account locked")
)

// HTTPError is a non-2xx response the caller has to deal with.
type HTTPError struct {
	StatusCode int
	Status     string
	// Detail is the server's "detail" message, when it sent one.
	Detail string
	Body   []byte
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Status)
}

func newHTTPError(r *Response) *HTTPError {
	return &HTTPError{
		StatusCode: r.StatusCode,
		Status:     r.Status,
		Detail:     detailOf(r.Body),
		Body:       r.Body,
	}
}

// detailOf extracts a string "detail" field from an error body.
func detailOf(body []byte) string {
	var v struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &v); err != nil {
		return ""
	}
	var s string
	if len(v.Detail) > 0 && json.Unmarshal(v.Detail, &s) == nil {
		return s
	}
	return v.Message
}

// NetworkError wraps a transport failure. It matches ErrNetwork.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNetwork, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }

// ValidationError reports the first registration field that failed local
// checks. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// LockedError is returned by Login while the lockout is in force.
type LockedError struct {
	Remaining time.Duration
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("too many failed login attempts, try again in %s", plural(minutesOf(e.Remaining), "minute"))
}

func (e *LockedError) Is(target error) bool { return target == ErrLocked }

// LoginError is a rejected login. Locked is set when this failure started
// a lockout; otherwise Remaining counts the attempts left.
type LoginError struct {
	Detail    string
	Remaining int
	Locked    bool
	Lockout   time.Duration
}

func (e *LoginError) Error() string {
	if e.Locked {
		return fmt.Sprintf("%s: too many failed attempts, account locked for %s",
			e.Detail, plural(minutesOf(e.Lockout), "minute"))
	}
	return fmt.Sprintf("%s: %s remaining", e.Detail, plural(e.Remaining, "attempt"))
}

func (e *LoginError) Is(target error) bool { return e.Locked && target == ErrLocked }

// minutesOf rounds up to whole minutes, never below one.
func minutesOf(d time.Duration) int {
	m := int((d + time.Minute - 1) / time.Minute)
	if m < 1 {
		return 1
	}
	return m
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

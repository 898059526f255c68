package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/common"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterRequest is the sign-up form.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// Login authenticates and starts a session. While the account is locked it
// fails with *LockedError without contacting the server. A rejected login
// counts toward the lockout and fails with *LoginError.
//
// Credential calls are not coalesced: two users may log in at once.
func (c *Client) Login(ctx context.Context, username, password string) (*session.UserView, error) {
	if c.session.IsAccountLocked(ctx) {
		return nil, &LockedError{Remaining: c.session.LockoutRemaining(ctx)}
	}

	r := newRequest(
		WithMethod(http.MethodPost),
		WithJSON(credentials{Username: username, Password: password}),
		SkipAuth(),
	)
	resp, err := c.call(ctx, common.LoginPath, r)

	var herr *HTTPError
	switch {
	case errors.As(err, &herr):
		return nil, c.loginFailed(ctx, username, herr.Detail)
	case err != nil:
		return nil, err
	case !resp.OK():
		return nil, c.loginFailed(ctx, username, detailOf(resp.Body))
	}

	var p session.AuthPayload
	if err := resp.JSON(&p); err != nil {
		return nil, err
	}
	if p.AccessToken == "" {
		return nil, session.ErrMissingToken
	}
	if p.Username == "" {
		p.Username = username
	}

	c.log.Info(ctx, "login succeeded", "user", username)
	return c.session.SetAuthData(ctx, &p), nil
}

func (c *Client) loginFailed(ctx context.Context, username, detail string) error {
	if detail == "" {
		detail = "login failed"
	}

	if c.session.IncrementLoginAttempts(ctx) {
		c.log.Warn(ctx, "login failed, account locked", "user", username)
		return &LoginError{Detail: detail, Locked: true, Lockout: c.session.Settings().LockoutDuration}
	}

	remaining := c.session.RemainingAttempts(ctx)
	c.log.Info(ctx, "login failed", "user", username, "remaining", remaining)
	return &LoginError{Detail: detail, Remaining: remaining}
}

// Register validates the form locally, creates the account and starts a
// session. If the server does not hand out a token on registration, the
// new credentials are used to log in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*session.UserView, error) {
	if err := ValidateRegistration(req, c.opts.minPasswordLength); err != nil {
		return nil, err
	}

	r := newRequest(WithMethod(http.MethodPost), WithJSON(req), SkipAuth())
	resp, err := c.call(ctx, common.RegisterPath, r)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("register: %w", newHTTPError(resp))
	}

	var p session.AuthPayload
	if len(resp.Body) > 0 {
		if err := resp.JSON(&p); err != nil {
			return nil, err
		}
	}
	if p.AccessToken == "" {
		c.log.Debug(ctx, "registration returned no token, logging in", "user", req.Username)
		return c.Login(ctx, req.Username, req.Password)
	}

	if p.Username == "" {
		p.Username = req.Username
	}
	if p.Email == "" {
		p.Email = req.Email
	}
	if p.FullName == "" {
		p.FullName = req.FullName
	}

	c.log.Info(ctx, "registered", "user", req.Username)
	return c.session.SetAuthData(ctx, &p), nil
}

// Logout ends the session at the user's request.
func (c *Client) Logout(ctx context.Context) {
	c.session.Logout(ctx, session.ReasonManual)
}

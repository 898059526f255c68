package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/session"
	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func credentialRoutes(ts *testServer, password string) {
	ts.Router.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		var c credentials
		_ = json.NewDecoder(r.Body).Decode(&c)
		if c.Password != password {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"message":      "Login successful!",
			"access_token": "tok-" + c.Username,
		})
	}).Methods(http.MethodPost)
}

func TestLogin_Success(t *testing.T) {
	ts := newTestServer(t)
	credentialRoutes(ts, "Secret123")
	c, mgr, _ := newTestClient(t, ts)
	ctx := context.Background()

	mgr.IncrementLoginAttempts(ctx)
	mgr.IncrementLoginAttempts(ctx)

	u, err := c.Login(ctx, "alice", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "tok-alice", mgr.Token(ctx))
	assert.True(t, mgr.IsAuthenticated(ctx))
	assert.Equal(t, 5, mgr.RemainingAttempts(ctx), "success resets the counter")
}

func TestLogin_LockoutAfterMaxFailures(t *testing.T) {
	ts := newTestServer(t)
	credentialRoutes(ts, "Secret123")

	mgr := session.NewManager(storage.NewMemoryStore(), NewBackend(ts.URL),
		session.WithSettings(testSettings(3)))
	t.Cleanup(mgr.Close)
	c := NewClient(ts.URL, mgr)
	ctx := context.Background()

	for want := 2; want >= 1; want-- {
		_, err := c.Login(ctx, "alice", "wrong")
		var lerr *LoginError
		require.ErrorAs(t, err, &lerr)
		assert.False(t, lerr.Locked)
		assert.Equal(t, want, lerr.Remaining)
		assert.Equal(t, "Invalid credentials", lerr.Detail)
		assert.False(t, errors.Is(err, ErrLocked))
	}

	_, err := c.Login(ctx, "alice", "wrong")
	var lerr *LoginError
	require.ErrorAs(t, err, &lerr)
	assert.True(t, lerr.Locked)
	assert.ErrorIs(t, err, ErrLocked)
	assert.Contains(t, err.Error(), "locked for 15 minutes")
	assert.Equal(t, 3, ts.Hits("POST /api/login"))

	_, err = c.Login(ctx, "alice", "Secret123")
	var locked *LockedError
	require.ErrorAs(t, err, &locked)
	assert.Positive(t, locked.Remaining)
	assert.Contains(t, err.Error(), "15 minutes")
	assert.Equal(t, 3, ts.Hits("POST /api/login"), "locked attempt stays local")
	assert.False(t, mgr.IsAuthenticated(ctx))
}

func TestLogin_NetworkErrorDoesNotCount(t *testing.T) {
	ts := newTestServer(t)
	c, mgr, _ := newTestClient(t, ts)
	ts.Close()

	_, err := c.Login(context.Background(), "alice", "x")
	require.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, 5, mgr.RemainingAttempts(context.Background()))
}

func TestRegister_ValidationIsLocal(t *testing.T) {
	ts := newTestServer(t)
	c, _, _ := newTestClient(t, ts)

	_, err := c.Register(context.Background(), RegisterRequest{
		Username: "ab", Email: "not-an-email", Password: "weak",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "username", verr.Field)
	assert.Contains(t, verr.Message, "at least 3 characters")
	assert.Zero(t, ts.Hits("POST /api/register"))
}

func TestValidateRegistration(t *testing.T) {
	valid := RegisterRequest{Username: "valid_user-1", Email: "a@b.com", Password: "Str0ngPass"}

	tests := []struct {
		name      string
		mutate    func(*RegisterRequest)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*RegisterRequest) {}, "", ""},
		{"short username", func(r *RegisterRequest) { r.Username = "ab" }, "username", "at least 3"},
		{"bad username chars", func(r *RegisterRequest) { r.Username = "bad name" }, "username", "only letters"},
		{"no at sign", func(r *RegisterRequest) { r.Email = "a.b.com" }, "email", "valid email"},
		{"no tld", func(r *RegisterRequest) { r.Email = "a@b" }, "email", "valid email"},
		{"short password", func(r *RegisterRequest) { r.Password = "Ab1" }, "password", "at least 8"},
		{"no lowercase", func(r *RegisterRequest) { r.Password = "STR0NGPASS" }, "password", "lowercase"},
		{"no uppercase", func(r *RegisterRequest) { r.Password = "str0ngpass" }, "password", "uppercase"},
		{"no digit", func(r *RegisterRequest) { r.Password = "StrongPass" }, "password", "digit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := ValidateRegistration(r, 8)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Contains(t, verr.Message, tt.wantMsg)
		})
	}
}

func TestRegister_SuccessStartsSession(t *testing.T) {
	ts := newTestServer(t)
	var got RegisterRequest
	ts.Router.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "tok-new",
			"user_id":      99,
			"username":     got.Username,
		})
	}).Methods(http.MethodPost)
	c, mgr, _ := newTestClient(t, ts)
	ctx := context.Background()

	u, err := c.Register(ctx, RegisterRequest{
		Username: "validuser", Email: "a@b.com", Password: "Str0ngPass", FullName: "Full Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "validuser", u.Username)
	assert.Equal(t, "Full Name", u.FullName)
	assert.Equal(t, "99", u.ID)
	assert.Equal(t, "Full Name", got.FullName)

	assert.True(t, mgr.IsAuthenticated(ctx))
	assert.Equal(t, "validuser", mgr.CurrentUser(ctx).Username)
	assert.Zero(t, ts.Hits("POST /api/login"))
}

func TestRegister_WithoutTokenLogsIn(t *testing.T) {
	ts := newTestServer(t)
	credentialRoutes(ts, "Str0ngPass")
	ts.Router.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "User registered successfully!"})
	}).Methods(http.MethodPost)
	c, mgr, _ := newTestClient(t, ts)
	ctx := context.Background()

	u, err := c.Register(ctx, RegisterRequest{Username: "validuser", Email: "a@b.com", Password: "Str0ngPass"})
	require.NoError(t, err)
	assert.Equal(t, "validuser", u.Username)
	assert.Equal(t, "tok-validuser", mgr.Token(ctx))
	assert.Equal(t, 1, ts.Hits("POST /api/login"))
}

func TestRegister_ServerRejection(t *testing.T) {
	ts := newTestServer(t)
	ts.Router.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Username already registered"})
	}).Methods(http.MethodPost)
	c, mgr, _ := newTestClient(t, ts)

	_, err := c.Register(context.Background(), RegisterRequest{Username: "taken", Email: "a@b.com", Password: "Str0ngPass"})
	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, http.StatusBadRequest, herr.StatusCode)
	assert.Contains(t, err.Error(), "Username already registered")
	assert.False(t, mgr.IsAuthenticated(context.Background()))
}

func TestLogout_Manual(t *testing.T) {
	ts := newTestServer(t)
	var token string
	ts.Router.HandleFunc("/api/logout", func(w http.ResponseWriter, r *http.Request) {
		token = bearer(r)
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)
	c, mgr, nav := newTestClient(t, ts)
	loginAs(t, mgr, "tok-1", "")

	c.Logout(context.Background())
	assert.Equal(t, "tok-1", token)
	assert.False(t, mgr.IsAuthenticated(context.Background()))
	assert.Equal(t, []session.LogoutReason{session.ReasonManual}, nav.Reasons())
}

func TestBackend_RefreshToken(t *testing.T) {
	ts := newTestServer(t)
	var sent map[string]string
	ts.Router.HandleFunc("/api/token/refresh", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&sent)
		if sent["refresh_token"] != "ref-ok" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "bad refresh"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "a2", "refresh_token": "r2", "expires_in": 60})
	}).Methods(http.MethodPost)
	b := NewBackend(ts.URL + "/")

	pair, err := b.RefreshToken(context.Background(), "ref-ok")
	require.NoError(t, err)
	assert.Equal(t, &session.TokenPair{AccessToken: "a2", RefreshToken: "r2", ExpiresIn: 60}, pair)

	_, err = b.RefreshToken(context.Background(), "ref-bad")
	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "bad refresh", herr.Detail)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "too many failed login attempts, try again in 1 minute",
		(&LockedError{Remaining: 20 * time.Second}).Error())
	assert.Equal(t, "too many failed login attempts, try again in 3 minutes",
		(&LockedError{Remaining: 2*time.Minute + time.Second}).Error())
	assert.Equal(t, "Invalid credentials: 1 attempt remaining",
		(&LoginError{Detail: "Invalid credentials", Remaining: 1}).Error())
	assert.Equal(t, "network unavailable: dial failed",
		(&NetworkError{Err: errors.New("dial failed")}).Error())
}

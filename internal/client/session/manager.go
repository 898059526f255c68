package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/dmitrijs2005/gophsocial/internal/common"
	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

// LogoutReason tells the entry screen why the user ended up there.
type LogoutReason string

const (
	ReasonSessionExpired LogoutReason = "session_expired"
	ReasonUnauthorized   LogoutReason = "unauthorized"
	ReasonManual         LogoutReason = "manual"
)

// Backend performs the server calls the session needs.
type Backend interface {
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, accessToken string) error
}

// Navigator returns the user to the logged-out entry point.
type Navigator interface {
	ToEntry(reason LogoutReason)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(reason LogoutReason)

func (f NavigatorFunc) ToEntry(reason LogoutReason) { f(reason) }

// Settings holds the tunables of a Manager. Zero durations disable the
// corresponding timer.
type Settings struct {
	IdleTimeout          time.Duration
	RefreshInterval      time.Duration
	UserCacheTTL         time.Duration
	DefaultTokenLifetime time.Duration
	LockoutDuration      time.Duration
	MaxLoginAttempts     int
}

// DefaultSettings returns the stock tunables.
func DefaultSettings() Settings {
	return Settings{
		IdleTimeout:          30 * time.Minute,
		RefreshInterval:      5 * time.Minute,
		UserCacheTTL:         time.Minute,
		DefaultTokenLifetime: 24 * time.Hour,
		LockoutDuration:      15 * time.Minute,
		MaxLoginAttempts:     5,
	}
}

type Option func(*Manager)

func WithSettings(s Settings) Option { return func(m *Manager) { m.cfg = s } }

func WithLogger(l logging.Logger) Option { return func(m *Manager) { m.log = l } }

func WithNavigator(n Navigator) Option { return func(m *Manager) { m.nav = n } }

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(m *Manager) { m.now = now } }

// Manager is the single owner of the client's authentication state.
// All methods are safe for concurrent use.
type Manager struct {
	store   *storage.FallbackStore
	backend Backend
	nav     Navigator
	log     logging.Logger
	now     func() time.Time
	cfg     Settings
	events  *bus

	mu       sync.Mutex
	rec      record
	lock     lockout
	cached   *UserView
	cachedAt time.Time

	idle        *time.Timer
	idleGen     uint64
	refreshStop chan struct{}
}

// NewManager builds a Manager over store. The store is wrapped so that a
// failing backend degrades to memory instead of surfacing errors.
// Call Restore to pick up a session persisted by an earlier run.
func NewManager(store storage.Store, backend Backend, opts ...Option) *Manager {
	m := &Manager{
		backend: backend,
		log:     logging.Discard(),
		now:     time.Now,
		cfg:     DefaultSettings(),
		events:  newBus(),
	}
	for _, o := range opts {
		o(m)
	}
	if m.nav == nil {
		m.nav = NavigatorFunc(func(LogoutReason) {})
	}
	if store == nil {
		store = storage.NewMemoryStore()
	}
	m.store = storage.WithFallback(store, m.log)
	return m
}

// Degraded reports whether persistence has fallen back to memory.
func (m *Manager) Degraded() bool {
	return m.store.Degraded()
}

// Settings returns the tunables the manager runs with.
func (m *Manager) Settings() Settings {
	return m.cfg
}

// Restore loads the persisted session and lockout state. An expired session
// is purged; a live one gets its timers armed.
func (m *Manager) Restore(ctx context.Context) {
	m.mu.Lock()
	m.rec = loadRecord(ctx, m.store)
	m.lock = loadLockout(ctx, m.store)
	m.cached = nil

	if m.rec.AccessToken != "" && m.now().Before(m.rec.ExpiresAt) {
		m.armTimersLocked()
		user := m.rec.Username
		m.mu.Unlock()
		m.log.Info(ctx, "session restored", "user", user)
		return
	}
	cleared := m.clearLocked(ctx)
	m.mu.Unlock()

	if cleared {
		m.log.Info(ctx, "stale session purged")
		m.events.emit(Event{Kind: EventLogout})
	}
}

// IsAuthenticated reports whether a token is held and has not expired. An
// expired session is cleared as a side effect.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	m.mu.Lock()
	if m.rec.AccessToken == "" {
		m.mu.Unlock()
		return false
	}
	if m.now().Before(m.rec.ExpiresAt) {
		m.mu.Unlock()
		return true
	}
	cleared := m.clearLocked(ctx)
	m.mu.Unlock()

	if cleared {
		m.log.Info(ctx, "session expired")
		m.events.emit(Event{Kind: EventLogout})
	}
	return false
}

// Token returns the access token of a live session, or "" when there is
// none. An expired session is purged as in IsAuthenticated.
func (m *Manager) Token(ctx context.Context) string {
	if !m.IsAuthenticated(ctx) {
		return ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.now().Before(m.rec.ExpiresAt) {
		return ""
	}
	return m.rec.AccessToken
}

// CurrentUser returns the logged-in user, or nil when not authenticated.
// The view is cached for UserCacheTTL.
func (m *Manager) CurrentUser(ctx context.Context) *UserView {
	if !m.IsAuthenticated(ctx) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.cached == nil || now.Sub(m.cachedAt) >= m.cfg.UserCacheTTL {
		m.cached = m.rec.view()
		m.cachedAt = now
	}
	return m.cached.clone()
}

// SetAuthData installs a new session from a login or registration response
// and returns the resulting user view. It returns nil and changes nothing
// when p carries no access token.
func (m *Manager) SetAuthData(ctx context.Context, p *AuthPayload) *UserView {
	if p == nil || p.AccessToken == "" {
		m.log.Warn(ctx, "ignoring auth payload without access token")
		return nil
	}

	now := m.now()
	rec := record{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresAt:    expiryFor(p.AccessToken, p.ExpiresIn, now, m.cfg.DefaultTokenLifetime),
		UserID:       string(p.UserID),
		Username:     p.Username,
		Email:        p.Email,
		FullName:     p.FullName,
		Avatar:       p.ProfilePicture,
		IsAdmin:      p.IsAdmin,
		IsModerator:  p.IsModerator,
		IsMentor:     p.IsMentor,
	}

	m.mu.Lock()
	m.rec = rec
	m.lock = lockout{}
	batch := rec.encode()
	for k, v := range m.lock.encode() {
		batch[k] = v
	}
	_ = m.store.SetMany(ctx, batch)

	m.cached = rec.view()
	m.cachedAt = now
	m.armTimersLocked()
	view := m.cached.clone()
	m.mu.Unlock()

	m.log.Info(ctx, "session started", "user", rec.Username, "expires_at", rec.ExpiresAt)
	m.events.emit(Event{Kind: EventLogin, User: view.clone()})
	return view
}

// ClearAuthData ends the local session. Calling it without a session is a
// no-op that emits nothing.
func (m *Manager) ClearAuthData(ctx context.Context) {
	m.mu.Lock()
	cleared := m.clearLocked(ctx)
	m.mu.Unlock()

	if cleared {
		m.log.Info(ctx, "session cleared")
		m.events.emit(Event{Kind: EventLogout})
	}
}

func (m *Manager) clearLocked(ctx context.Context) bool {
	m.stopTimersLocked()
	m.cached = nil
	if m.rec.empty() {
		return false
	}
	m.rec = record{}
	_ = m.store.Delete(ctx, common.SessionKeys...)
	return true
}

// Logout tells the server (best effort), clears the session and sends the
// user back to the entry point.
func (m *Manager) Logout(ctx context.Context, reason LogoutReason) {
	m.mu.Lock()
	token := m.rec.AccessToken
	m.mu.Unlock()

	if token != "" && m.backend != nil {
		if err := m.backend.Logout(ctx, token); err != nil {
			m.log.Warn(ctx, "server logout failed", "error", err)
		}
	}

	m.ClearAuthData(ctx)
	m.log.Info(ctx, "logged out", "reason", string(reason))
	m.nav.ToEntry(reason)
}

// RefreshToken exchanges the refresh token for a new access token. Without
// a refresh token it does nothing. A failure leaves the session untouched.
func (m *Manager) RefreshToken(ctx context.Context) error {
	m.mu.Lock()
	refresh := m.rec.RefreshToken
	m.mu.Unlock()

	if refresh == "" || m.backend == nil {
		return nil
	}

	pair, err := m.backend.RefreshToken(ctx, refresh)
	if err != nil {
		return err
	}
	if pair == nil || pair.AccessToken == "" {
		return ErrMissingToken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// The session was replaced or cleared while the call was in flight.
	if m.rec.RefreshToken != refresh {
		return nil
	}

	m.rec.AccessToken = pair.AccessToken
	if pair.RefreshToken != "" {
		m.rec.RefreshToken = pair.RefreshToken
	}
	m.rec.ExpiresAt = expiryFor(pair.AccessToken, pair.ExpiresIn, m.now(), m.cfg.DefaultTokenLifetime)
	m.cached = nil

	_ = m.store.SetMany(ctx, map[string][]byte{
		common.KeyAccessToken:  []byte(m.rec.AccessToken),
		common.KeyRefreshToken: []byte(m.rec.RefreshToken),
		common.KeyExpiresAt:    []byte(m.rec.ExpiresAt.UTC().Format(time.RFC3339Nano)),
	})
	m.log.Debug(ctx, "access token refreshed", "expires_at", m.rec.ExpiresAt)
	return nil
}

// Subscribe registers fn for events of the given kind.
func (m *Manager) Subscribe(kind EventKind, fn func(Event)) *Subscription {
	return m.events.add(kind, fn)
}

// Close stops the timers. The persisted session is kept.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopTimersLocked()
}

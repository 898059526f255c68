package session

import (
	"context"
	"time"
)

// IsAccountLocked reports whether a lockout is in force. An expired lockout
// is lifted, and the attempt counter reset, as a side effect.
func (m *Manager) IsAccountLocked(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lock.until.IsZero() {
		return false
	}
	if m.now().Before(m.lock.until) {
		return true
	}
	m.lock = lockout{}
	_ = m.store.SetMany(ctx, m.lock.encode())
	return false
}

// LockoutRemaining is the time left on the current lockout, or zero.
func (m *Manager) LockoutRemaining(ctx context.Context) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lock.until.IsZero() {
		return 0
	}
	if d := m.lock.until.Sub(m.now()); d > 0 {
		return d
	}
	return 0
}

// IncrementLoginAttempts records a failed login and reports whether it
// triggered a lockout.
func (m *Manager) IncrementLoginAttempts(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lock.attempts++
	locked := false
	if m.lock.attempts >= m.cfg.MaxLoginAttempts {
		m.lock.until = m.now().Add(m.cfg.LockoutDuration)
		locked = true
	}
	_ = m.store.SetMany(ctx, m.lock.encode())

	if locked {
		m.log.Warn(ctx, "too many failed logins, locking", "attempts", m.lock.attempts, "until", m.lock.until)
	}
	return locked
}

// RemainingAttempts is how many more failures are allowed before lockout.
func (m *Manager) RemainingAttempts(ctx context.Context) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n := m.cfg.MaxLoginAttempts - m.lock.attempts; n > 0 {
		return n
	}
	return 0
}

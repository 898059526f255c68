package session

import (
	"context"
	"time"
)

// Touch records user activity and postpones the idle logout.
func (m *Manager) Touch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rec.AccessToken == "" {
		return
	}
	m.armIdleLocked()
}

func (m *Manager) armTimersLocked() {
	m.stopTimersLocked()
	m.armIdleLocked()

	if m.cfg.RefreshInterval > 0 {
		stop := make(chan struct{})
		m.refreshStop = stop
		go m.refreshLoop(stop, m.cfg.RefreshInterval)
	}
}

func (m *Manager) armIdleLocked() {
	if m.idle != nil {
		m.idle.Stop()
		m.idle = nil
	}
	m.idleGen++
	if m.cfg.IdleTimeout <= 0 {
		return
	}
	gen := m.idleGen
	m.idle = time.AfterFunc(m.cfg.IdleTimeout, func() { m.onIdle(gen) })
}

func (m *Manager) stopTimersLocked() {
	if m.idle != nil {
		m.idle.Stop()
		m.idle = nil
	}
	m.idleGen++
	if m.refreshStop != nil {
		close(m.refreshStop)
		m.refreshStop = nil
	}
}

func (m *Manager) onIdle(gen uint64) {
	m.mu.Lock()
	stale := gen != m.idleGen
	m.mu.Unlock()
	if stale {
		return
	}

	ctx := context.Background()
	m.log.Info(ctx, "idle timeout reached")
	m.Logout(ctx, ReasonSessionExpired)
}

func (m *Manager) refreshLoop(stop <-chan struct{}, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			ctx := context.Background()
			if err := m.RefreshToken(ctx); err != nil {
				m.log.Warn(ctx, "scheduled token refresh failed", "error", err)
			}
		}
	}
}

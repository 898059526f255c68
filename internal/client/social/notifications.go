package social

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

func (s *Service) Notifications(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.get(ctx, "/api/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := s.get(ctx, "/api/notifications/unread-count", &out); err != nil {
		return 0, err
	}
	return out.UnreadCount, nil
}

func (s *Service) MarkRead(ctx context.Context, id ID) error {
	return s.do(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(string(id))+"/read", nil, nil)
}

func (s *Service) MarkAllRead(ctx context.Context) error {
	return s.do(ctx, http.MethodPost, "/api/notifications/mark-all-read", nil, nil)
}

// BadgeText renders an unread count for a badge: nothing for zero, the
// number up to nine, "9+" beyond.
func BadgeText(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 9:
		return "9+"
	default:
		return strconv.Itoa(n)
	}
}

// BadgePoller polls the unread count and reports changes.
type BadgePoller struct {
	svc      *Service
	interval time.Duration
	onChange func(count int, badge string)
	log      logging.Logger
}

// NewBadgePoller builds a poller calling onChange whenever the unread count
// differs from the last one seen, and once for the first successful poll.
func (s *Service) NewBadgePoller(interval time.Duration, onChange func(count int, badge string)) *BadgePoller {
	return &BadgePoller{svc: s, interval: interval, onChange: onChange, log: s.log}
}

// Run polls until ctx is done. Poll failures are logged and skipped.
func (p *BadgePoller) Run(ctx context.Context) {
	last := -1
	poll := func() {
		n, err := p.svc.UnreadCount(ctx)
		if err != nil {
			if ctx.Err() == nil {
				p.log.Warn(ctx, "unread count poll failed", "error", err)
			}
			return
		}
		if n != last {
			last = n
			p.onChange(n, BadgeText(n))
		}
	}

	poll()
	if p.interval <= 0 {
		return
	}

	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			poll()
		}
	}
}

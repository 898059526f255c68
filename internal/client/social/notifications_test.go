package social

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgeText(t *testing.T) {
	tests := map[int]string{-1: "", 0: "", 1: "1", 9: "9", 10: "9+", 250: "9+"}
	for n, want := range tests {
		assert.Equal(t, want, BadgeText(n), "n=%d", n)
	}
}

func TestNotifications_ListAndMark(t *testing.T) {
	svc, router := newTestService(t)
	var marked []string
	var mu sync.Mutex
	router.HandleFunc("/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 3, "message": "bob liked your post", "read": false, "sender_username": "bob"},
		})
	})
	router.HandleFunc("/api/notifications/mark-all-read", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		marked = append(marked, "all")
		mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}).Methods(http.MethodPost)
	router.HandleFunc("/api/notifications/{id}/read", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		marked = append(marked, "one")
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodPost)
	ctx := context.Background()

	list, err := svc.Notifications(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "bob", list[0].SenderUsername)
	assert.False(t, list[0].Read)

	require.NoError(t, svc.MarkRead(ctx, list[0].ID))
	require.NoError(t, svc.MarkAllRead(ctx))
	assert.Equal(t, []string{"one", "all"}, marked)
}

func TestBadgePoller_ReportsChangesOnly(t *testing.T) {
	svc, router := newTestService(t)
	var polls atomic.Int32
	counts := []int{0, 0, 3, 3, 12}
	router.HandleFunc("/api/notifications/unread-count", func(w http.ResponseWriter, r *http.Request) {
		i := int(polls.Add(1)) - 1
		if i >= len(counts) {
			i = len(counts) - 1
		}
		writeJSON(w, http.StatusOK, map[string]int{"unread_count": counts[i]})
	})

	var mu sync.Mutex
	var badges []string
	p := svc.NewBadgePoller(5*time.Millisecond, func(_ int, badge string) {
		mu.Lock()
		badges = append(badges, badge)
		mu.Unlock()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return polls.Load() >= int32(len(counts)+1) }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", "3", "9+"}, badges)
}

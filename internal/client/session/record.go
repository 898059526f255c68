package session

import (
	"context"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophsocial/internal/client/storage"
	"github.com/dmitrijs2005/gophsocial/internal/common"
)

// record is the in-memory mirror of the persisted session.
type record struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time

	UserID   string
	Username string
	Email    string
	FullName string
	Avatar   string

	IsAdmin     bool
	IsModerator bool
	IsMentor    bool
}

func (r record) empty() bool {
	return r == record{}
}

func (r record) encode() map[string][]byte {
	return map[string][]byte{
		common.KeyAccessToken:  []byte(r.AccessToken),
		common.KeyRefreshToken: []byte(r.RefreshToken),
		common.KeyExpiresAt:    []byte(r.ExpiresAt.UTC().Format(time.RFC3339Nano)),
		common.KeyUserID:       []byte(r.UserID),
		common.KeyUsername:     []byte(r.Username),
		common.KeyEmail:        []byte(r.Email),
		common.KeyFullName:     []byte(r.FullName),
		common.KeyAvatar:       []byte(r.Avatar),
		common.KeyIsAdmin:      []byte(strconv.FormatBool(r.IsAdmin)),
		common.KeyIsModerator:  []byte(strconv.FormatBool(r.IsModerator)),
		common.KeyIsMentor:     []byte(strconv.FormatBool(r.IsMentor)),
	}
}

func loadRecord(ctx context.Context, s storage.Store) record {
	get := func(key string) string {
		v, _ := s.Get(ctx, key)
		return string(v)
	}
	flag := func(key string) bool {
		b, _ := strconv.ParseBool(get(key))
		return b
	}

	r := record{
		AccessToken:  get(common.KeyAccessToken),
		RefreshToken: get(common.KeyRefreshToken),
		UserID:       get(common.KeyUserID),
		Username:     get(common.KeyUsername),
		Email:        get(common.KeyEmail),
		FullName:     get(common.KeyFullName),
		Avatar:       get(common.KeyAvatar),
		IsAdmin:      flag(common.KeyIsAdmin),
		IsModerator:  flag(common.KeyIsModerator),
		IsMentor:     flag(common.KeyIsMentor),
	}
	if ts := get(common.KeyExpiresAt); ts != "" {
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			r.ExpiresAt = t
		}
	}
	return r
}

type lockout struct {
	attempts int
	until    time.Time
}

func (l lockout) encode() map[string][]byte {
	until := ""
	if !l.until.IsZero() {
		until = l.until.UTC().Format(time.RFC3339Nano)
	}
	return map[string][]byte{
		common.KeyLoginAttempts: []byte(strconv.Itoa(l.attempts)),
		common.KeyLockoutUntil:  []byte(until),
	}
}

func loadLockout(ctx context.Context, s storage.Store) lockout {
	var l lockout
	if v, _ := s.Get(ctx, common.KeyLoginAttempts); len(v) > 0 {
		l.attempts, _ = strconv.Atoi(string(v))
	}
	if v, _ := s.Get(ctx, common.KeyLockoutUntil); len(v) > 0 {
		if t, err := time.Parse(time.RFC3339Nano, string(v)); err == nil {
			l.until = t
		}
	}
	return l
}

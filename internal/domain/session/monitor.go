package session

import (
	"sync"
	"time"
)

// SignOutFunc revokes a session token. Supplied by the session store.
type SignOutFunc func(token string)

// Monitor watches session lifetimes and forces sign-out the moment a token
// lapses, so a stale session cannot keep driving requests until the user
// happens to hit the guard again.
//
// One timer is kept per user; re-watching after a token refresh replaces the
// previous timer instead of stacking a duplicate forced logout.
type Monitor struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	signOut SignOutFunc
}

func NewMonitor(signOut SignOutFunc) *Monitor {
	return &Monitor{
		timers:  make(map[string]*time.Timer),
		signOut: signOut,
	}
}

// Watch schedules a one-shot forced sign-out at now + ExpiresIn. Sessions
// without expiry metadata are left alone. An already-lapsed session (zero or
// negative time left after the issue instant) fires immediately; time.AfterFunc
// treats non-positive durations as "run now", so no clamping is needed.
func (m *Monitor) Watch(s *Session) {
	if s == nil || !s.HasExpiryMetadata() {
		return
	}

	key := s.Identity.UserID
	token := s.Token
	expiresAt := time.Now().Add(time.Duration(s.ExpiresIn) * time.Second)

	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.timers[key]; ok {
		prev.Stop()
	}

	m.timers[key] = time.AfterFunc(time.Until(expiresAt), func() {
		m.mu.Lock()
		delete(m.timers, key)
		m.mu.Unlock()

		m.signOut(token)
	})
}

// Forget cancels a pending forced sign-out, e.g. after an explicit logout.
func (m *Monitor) Forget(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.timers[userID]; ok {
		t.Stop()
		delete(m.timers, userID)
	}
}

// Close cancels every pending timer. Used on shutdown and in tests.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, t := range m.timers {
		t.Stop()
		delete(m.timers, key)
	}
}

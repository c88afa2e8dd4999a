package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type signOutRecorder struct {
	mu     sync.Mutex
	tokens []string
	ch     chan string
}

func newSignOutRecorder() *signOutRecorder {
	return &signOutRecorder{ch: make(chan string, 8)}
}

func (r *signOutRecorder) signOut(token string) {
	r.mu.Lock()
	r.tokens = append(r.tokens, token)
	r.mu.Unlock()
	r.ch <- token
}

func (r *signOutRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

func TestMonitor_NoExpiryMetadataSchedulesNothing(t *testing.T) {
	rec := newSignOutRecorder()
	m := NewMonitor(rec.signOut)
	defer m.Close()

	m.Watch(&Session{
		Token:    "tok-1",
		Identity: Identity{UserID: "u-1"},
		// ExpiresIn left zero: token carried no expiry
	})
	m.Watch(nil)

	select {
	case tok := <-rec.ch:
		t.Fatalf("unexpected forced sign-out for %q", tok)
	case <-time.After(300 * time.Millisecond):
	}
	assert.Zero(t, rec.count())
}

func TestMonitor_ForcesSignOutAtExpiry(t *testing.T) {
	rec := newSignOutRecorder()
	m := NewMonitor(rec.signOut)
	defer m.Close()

	m.Watch(&Session{
		Token:     "tok-1",
		Identity:  Identity{UserID: "u-1"},
		ExpiresIn: 1,
	})

	select {
	case tok := <-rec.ch:
		assert.Equal(t, "tok-1", tok)
	case <-time.After(2 * time.Second):
		t.Fatal("forced sign-out never fired")
	}
}

func TestMonitor_RewatchCancelsPreviousTimer(t *testing.T) {
	rec := newSignOutRecorder()
	m := NewMonitor(rec.signOut)
	defer m.Close()

	m.Watch(&Session{Token: "tok-old", Identity: Identity{UserID: "u-1"}, ExpiresIn: 1})
	// Token refresh: same user, new token, longer lifetime.
	m.Watch(&Session{Token: "tok-new", Identity: Identity{UserID: "u-1"}, ExpiresIn: 60})

	// The old one-second timer must not fire against the refreshed session.
	select {
	case tok := <-rec.ch:
		t.Fatalf("stale timer fired for %q", tok)
	case <-time.After(1500 * time.Millisecond):
	}
	assert.Zero(t, rec.count())
}

func TestMonitor_ForgetCancelsPendingSignOut(t *testing.T) {
	rec := newSignOutRecorder()
	m := NewMonitor(rec.signOut)
	defer m.Close()

	m.Watch(&Session{Token: "tok-1", Identity: Identity{UserID: "u-1"}, ExpiresIn: 1})
	m.Forget("u-1")

	select {
	case tok := <-rec.ch:
		t.Fatalf("forgotten timer fired for %q", tok)
	case <-time.After(1500 * time.Millisecond):
	}
}

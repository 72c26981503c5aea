// Package auth resolves admin sessions. Route guards only ever see the
// resolved State, never the raw Authorization header or token claims.
package auth

import "sync"

type State int

const (
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// Session is the admin identity carried by a valid token.
type Session struct {
	UserID int64
	Role   string
}

// Tracker holds the last resolved auth state and notifies subscribers on
// transitions. It starts at Unknown until the first resolution arrives.
type Tracker struct {
	mu    sync.RWMutex
	state State
	subs  []func(State)
}

func NewTracker() *Tracker {
	return &Tracker{state: StateUnknown}
}

func (t *Tracker) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Subscribe registers a callback fired on every state transition. The
// returned func unsubscribes.
func (t *Tracker) Subscribe(fn func(State)) func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
	idx := len(t.subs) - 1
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.subs[idx] = nil
	}
}

// Observe feeds one resolution into the tracker. Subscribers run only
// when the state actually changes.
func (t *Tracker) Observe(next State) {
	t.mu.Lock()
	if next == t.state {
		t.mu.Unlock()
		return
	}
	t.state = next
	subs := make([]func(State), len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn(next)
		}
	}
}

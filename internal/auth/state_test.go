package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerStartsUnknown(t *testing.T) {
	tr := NewTracker()
	assert.Equal(t, StateUnknown, tr.State())
}

func TestTrackerNotifiesOnlyOnTransition(t *testing.T) {
	tr := NewTracker()

	var seen []State
	tr.Subscribe(func(s State) { seen = append(seen, s) })

	tr.Observe(StateAuthenticated)
	tr.Observe(StateAuthenticated)
	tr.Observe(StateUnauthenticated)

	assert.Equal(t, []State{StateAuthenticated, StateUnauthenticated}, seen)
	assert.Equal(t, StateUnauthenticated, tr.State())
}

func TestTrackerUnsubscribe(t *testing.T) {
	tr := NewTracker()

	calls := 0
	cancel := tr.Subscribe(func(State) { calls++ })
	tr.Observe(StateAuthenticated)
	cancel()
	tr.Observe(StateUnauthenticated)

	assert.Equal(t, 1, calls)
}

func TestVerifierRoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")

	token, err := v.Issue(42, "admin")
	require.NoError(t, err)

	state, sess := v.Resolve("Bearer " + token)
	assert.Equal(t, StateAuthenticated, state)
	assert.Equal(t, int64(42), sess.UserID)
	assert.Equal(t, "admin", sess.Role)
}

func TestVerifierResolvesGarbageAsUnauthenticated(t *testing.T) {
	v := NewVerifier("test-secret")

	for _, header := range []string{"", "Bearer", "Bearer not-a-token"} {
		state, sess := v.Resolve(header)
		assert.Equal(t, StateUnauthenticated, state, "header %q", header)
		assert.Zero(t, sess.UserID)
	}
}

func TestVerifierRejectsForeignSecret(t *testing.T) {
	token, err := NewVerifier("other-secret").Issue(1, "admin")
	require.NoError(t, err)

	state, _ := NewVerifier("test-secret").Resolve("Bearer " + token)
	assert.Equal(t, StateUnauthenticated, state)
}

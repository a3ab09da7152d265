package httpapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFanOut(t *testing.T) {
	s := &session{id: "s1", subscribers: make(map[chan string]struct{})}

	a := s.subscribe()
	b := s.subscribe()
	s.publish("Sending...")
	assert.Equal(t, "Sending...", <-a)
	assert.Equal(t, "Sending...", <-b)

	assert.Equal(t, 1, s.unsubscribe(a))
	_, open := <-a
	assert.False(t, open)

	s.publish("Finalized. Block number: 3")
	assert.Equal(t, "Finalized. Block number: 3", <-b)

	s.close()
	_, open = <-b
	assert.False(t, open)

	// unsubscribing after close must not close twice
	assert.Equal(t, 0, s.unsubscribe(b))
}

func TestSessionPublishDropsForSlowSubscribers(t *testing.T) {
	s := &session{id: "s1", subscribers: make(map[chan string]struct{})}
	ch := s.subscribe()

	for i := 0; i < cap(ch)+5; i++ {
		s.publish("status")
	}
	assert.Len(t, ch, cap(ch))
}

func TestSessionStore(t *testing.T) {
	st := newSessionStore()
	s := &session{id: "s1", subscribers: make(map[chan string]struct{})}
	st.add(s)

	got, ok := st.get("s1")
	require.True(t, ok)
	assert.Same(t, s, got)

	ch := s.subscribe()
	assert.True(t, st.remove("s1"))
	assert.False(t, st.remove("s1"))
	_, open := <-ch
	assert.False(t, open)

	other := &session{id: "s2", subscribers: make(map[chan string]struct{})}
	st.add(other)
	ch = other.subscribe()
	st.closeAll()
	_, ok = st.get("s2")
	assert.False(t, ok)
	_, open = <-ch
	assert.False(t, open)
}

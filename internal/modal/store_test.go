package modal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fbcal_workspace/configs"
	"fbcal_workspace/model"
)

func openTestSession(st *Store) *Session {
	return st.Open(Config{
		EventID:  "ev1",
		Settings: model.DefaultSettings(),
		Caller:   newFakeCaller(),
		Conn:     allGranted(),
		Now:      func() time.Time { return testNow },
	})
}

func TestStoreOpenAssignsDistinctIDs(t *testing.T) {
	st := NewStore()
	defer st.Shutdown()

	a := openTestSession(st)
	b := openTestSession(st)
	require.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Same(t, a, st.Get(a.ID()))
	assert.Nil(t, st.Get("nope"))
}

func TestStoreCloseDisposesSession(t *testing.T) {
	st := NewStore()
	defer st.Shutdown()

	s := openTestSession(st)
	st.Close(s.ID())
	assert.Nil(t, st.Get(s.ID()))
	assert.ErrorIs(t, s.ShareEvent(), ErrDisposed)
}

func TestSweepExpiresOnlyIdleSessions(t *testing.T) {
	st := NewStore()
	defer st.Shutdown()

	idle := openTestSession(st)
	fresh := openTestSession(st)
	idle.mu.Lock()
	idle.lastTouch = testNow.Add(-configs.SessionTTL - time.Minute)
	idle.mu.Unlock()

	st.sweepExpired(testNow)
	assert.Nil(t, st.Get(idle.ID()))
	assert.ErrorIs(t, idle.ShareEvent(), ErrDisposed)
	assert.Same(t, fresh, st.Get(fresh.ID()))
}

func TestSweepDoesNotBlockGetOnBusySession(t *testing.T) {
	st := NewStore()
	defer st.Shutdown()

	busy := openTestSession(st)
	other := openTestSession(st)

	// Simulate a session stuck in a slow remote call under its own mutex.
	busy.mu.Lock()
	defer busy.mu.Unlock()

	go st.sweepExpired(testNow)

	got := make(chan *Session, 1)
	go func() { got <- st.Get(other.ID()) }()
	select {
	case s := <-got:
		assert.Same(t, other, s)
	case <-time.After(2 * time.Second):
		t.Fatal("Get blocked behind the sweeper")
	}
}

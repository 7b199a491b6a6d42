package modal

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"fbcal_workspace/configs"
)

// Store holds the live modal sessions keyed by session id and expires the
// idle ones.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
}

func NewStore() *Store {
	st := &Store{
		sessions: map[string]*Session{},
		ttl:      configs.SessionTTL,
		stop:     make(chan struct{}),
	}
	go st.sweep()
	return st
}

// Open registers a new session built from cfg and returns it. The store
// assigns the session id.
func (st *Store) Open(cfg Config) *Session {
	cfg.ID = uuid.NewString()
	s := NewSession(cfg)
	st.mu.Lock()
	st.sessions[s.ID()] = s
	st.mu.Unlock()
	return s
}

// Get looks a session up, nil when unknown or expired.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	s := st.sessions[id]
	st.mu.RUnlock()
	return s
}

// Close disposes a session and drops it from the store.
func (st *Store) Close(id string) {
	st.mu.Lock()
	s := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if s != nil {
		s.Dispose()
	}
}

// Shutdown stops the sweeper and disposes everything.
func (st *Store) Shutdown() {
	close(st.stop)
	st.mu.Lock()
	for id, s := range st.sessions {
		s.Dispose()
		delete(st.sessions, id)
	}
	st.mu.Unlock()
}

func (st *Store) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-st.stop:
			return
		case now := <-ticker.C:
			st.sweepExpired(now)
		}
	}
}

// sweepExpired drops the idle sessions. Candidates are collected under the
// read lock so a session stuck in a slow Graph call never stalls Get, and
// disposal happens outside the store lock entirely.
func (st *Store) sweepExpired(now time.Time) {
	st.mu.RLock()
	var ids []string
	var expired []*Session
	for id, s := range st.sessions {
		if s.idleSince(now, st.ttl) {
			ids = append(ids, id)
			expired = append(expired, s)
		}
	}
	st.mu.RUnlock()
	if len(ids) == 0 {
		return
	}
	st.mu.Lock()
	for _, id := range ids {
		delete(st.sessions, id)
	}
	st.mu.Unlock()
	for _, s := range expired {
		s.Dispose()
	}
}

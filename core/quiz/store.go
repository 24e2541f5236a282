package quiz

import (
	"sync"
	"time"
)

type sessionKey struct {
	owner string
	id    string
}

// SessionStore keeps in-progress sessions keyed by owner and session id.
// Starting a session for a known owner replaces that owner's previous sessions.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[sessionKey]*Session
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[sessionKey]*Session),
		ttl:      ttl,
	}
}

func (st *SessionStore) Put(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s.OwnerID != "" {
		for key := range st.sessions {
			if key.owner == s.OwnerID {
				delete(st.sessions, key)
			}
		}
	}
	st.sessions[sessionKey{owner: s.OwnerID, id: s.ID}] = s
}

// Get returns the owner's session. Sessions of other owners are reported as not found.
func (st *SessionStore) Get(owner, id string) (*Session, error) {
	key := sessionKey{owner: owner, id: id}

	st.mu.RLock()
	s, ok := st.sessions[key]
	st.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if st.expired(s, NowFunc()) {
		st.Delete(owner, id)
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (st *SessionStore) Delete(owner, id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionKey{owner: owner, id: id})
}

// Sweep evicts idle sessions and returns how many were removed.
func (st *SessionStore) Sweep() int {
	now := NowFunc()

	st.mu.Lock()
	defer st.mu.Unlock()

	var n int
	for key, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, key)
			n++
		}
	}
	return n
}

func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *SessionStore) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.LastActive()) > st.ttl
}

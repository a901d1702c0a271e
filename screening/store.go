package screening

import "sync"

// Store keeps the live, in-memory sessions keyed by user id. Completed
// results are persisted elsewhere; discarding a session here is the explicit
// restart described by the session contract.
type Store struct {
	mu       sync.RWMutex
	sessions map[uint]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uint]*Session)}
}

// Live is the process-wide registry of active sessions.
var Live = NewStore()

// Start creates a fresh session for the user, replacing any existing one.
func (st *Store) Start(profile Profile, notifier Notifier) *Session {
	session := NewSession(profile, notifier)
	st.mu.Lock()
	st.sessions[profile.UserID] = session
	st.mu.Unlock()
	return session
}

// Get returns the user's live session if one exists.
func (st *Store) Get(userID uint) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[userID]
	return session, ok
}

// Remove discards the user's live session unconditionally.
func (st *Store) Remove(userID uint) {
	st.mu.Lock()
	delete(st.sessions, userID)
	st.mu.Unlock()
}

package stylecontext

import "sync"

// Store keeps one Session per buyer in memory. Sessions live as long as the
// process; nothing is persisted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// Get returns a copy of the buyer's session, empty if none exists.
func (s *Store) Get(buyerID string) Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[buyerID].Clone()
}

// Applied returns a copy of the buyer's applied context.
func (s *Store) Applied(buyerID string) StyleContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[buyerID].Applied.Clone()
}

func (s *Store) SetDraft(buyerID string, p Partial) Session {
	return s.update(buyerID, func(sess *Session) { sess.SetDraft(p) })
}

func (s *Store) Apply(buyerID string) Session {
	return s.update(buyerID, func(sess *Session) { sess.Apply() })
}

// Reset clears the buyer's session and forgets it.
func (s *Store) Reset(buyerID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, buyerID)
	return Session{}
}

func (s *Store) update(buyerID string, fn func(*Session)) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.sessions[buyerID]
	fn(&sess)
	s.sessions[buyerID] = sess
	return sess.Clone()
}

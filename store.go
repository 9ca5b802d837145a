package main

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// sessionTTL bounds how long an abandoned puzzle is kept around.
const sessionTTL = 12 * time.Hour

// Store holds all puzzle sessions in memory.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
	}
}

// SaveSession assigns an ID to a freshly built session and keeps it.
// Each new game gets a wholly new session; nothing is ever merged into
// an existing one.
func (s *Store) SaveSession(sess *Session) *Session {
	sess.ID = generateID()

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// GetSession returns a session by ID, or nil if not found.
func (s *Store) GetSession(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Sweep drops sessions older than the TTL and returns how many went.
func (s *Store) Sweep() int {
	cutoff := time.Now().Add(-sessionTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func generateID() string {
	b := make([]byte, 8)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Package auth holds the in-memory admin session store. Sessions are
// never persisted; a restart logs every admin out.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSessionTTL is how long an admin session stays valid
const DefaultSessionTTL = 24 * time.Hour

// Session is one authenticated admin session
type Session struct {
	Token     string    `json:"token"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionStore issues and validates admin session tokens
type SessionStore struct {
	ttl      time.Duration
	mu       sync.Mutex
	sessions map[string]Session
}

// NewSessionStore creates a session store with the given TTL
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Issue creates a new session, sweeping expired entries first
func (s *SessionStore) Issue() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}

	session := Session{
		Token:     uuid.New().String(),
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	s.sessions[session.Token] = session
	return session
}

// Validate looks up a token and reports whether it names a live session
func (s *SessionStore) Validate(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return Session{}, false
	}
	if time.Now().After(session.ExpiresAt) {
		delete(s.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Revoke removes a session; revoking an unknown token is a no-op
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

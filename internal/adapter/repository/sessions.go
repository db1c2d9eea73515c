package repository

import (
	"fmt"
	"time"

	"resume-architect/internal/domain"

	"github.com/patrickmn/go-cache"
)

// ErrNotFound is returned when a session id is unknown or has expired.
var ErrNotFound = fmt.Errorf("session not found")

// SessionStore keeps sessions in an expiring in-memory cache. There is no
// durable persistence: an expired or evicted session is simply gone and the
// client starts over with a fresh sample document.
type SessionStore struct {
	c *cache.Cache
}

// NewSessionStore creates a store whose entries expire ttl after their last
// write. Expired entries are swept at twice the ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{c: cache.New(ttl, 2*ttl)}
}

// Save stores the session and resets its expiration clock.
func (s *SessionStore) Save(sess *domain.Session) {
	s.c.Set(sess.ID, sess, cache.DefaultExpiration)
}

// Get returns the live session for id.
func (s *SessionStore) Get(id string) (*domain.Session, error) {
	v, ok := s.c.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	sess, ok := v.(*domain.Session)
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session immediately.
func (s *SessionStore) Delete(id string) {
	s.c.Delete(id)
}

// Count reports the number of live sessions, for the health endpoint.
func (s *SessionStore) Count() int {
	return s.c.ItemCount()
}

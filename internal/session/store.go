package session

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 1000
)

// Store keeps one Log per session in memory.
// A session that stays idle for longer than the TTL, or is pushed out by
// newer sessions once capacity is reached, is gone for good.
type Store struct {
	mu   sync.Mutex
	logs *expirable.LRU[string, *Log]
}

// NewStore creates a Store. Non-positive arguments fall back to defaults.
func NewStore(maxSessions int, ttl time.Duration) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		logs: expirable.NewLRU[string, *Log](maxSessions, nil, ttl),
	}
}

// Get returns the session's Log, creating an empty one on first use.
// Every access pushes the session's expiry out by the TTL.
func (s *Store) Get(sessionID string) *Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.logs.Get(sessionID)
	if !ok {
		l = &Log{}
	}
	s.logs.Add(sessionID, l)
	return l
}

// Delete discards the session's Log.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs.Remove(sessionID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.logs.Len()
}

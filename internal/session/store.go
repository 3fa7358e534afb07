package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store keeps session payloads and their pending flash messages server-side,
// keyed by session id.
type Store interface {
	Save(ctx context.Context, sid string, s Session, ttl time.Duration) error
	Load(ctx context.Context, sid string) (*Session, error)
	Delete(ctx context.Context, sid string) error

	// PushFlash queues a one-shot notice; PopFlashes drains the queue.
	PushFlash(ctx context.Context, sid string, msg string) error
	PopFlashes(ctx context.Context, sid string) ([]string, error)
}

// ======================================================
// MemoryStore — single-process fallback when no redis
// address is configured; also used by the test suite.
// ======================================================

type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memorySession
	flashes  map[string][]string
}

type memorySession struct {
	data      Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memorySession),
		flashes:  make(map[string][]string),
	}
}

func (s *MemoryStore) Save(_ context.Context, sid string, sess Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sid] = memorySession{
		data:      sess,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sid string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[sid]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, sid)
		delete(s.flashes, sid)
		return nil, ErrNotFound
	}

	sess := entry.data
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sid)
	delete(s.flashes, sid)
	return nil
}

func (s *MemoryStore) PushFlash(_ context.Context, sid string, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flashes[sid] = append(s.flashes[sid], msg)
	return nil
}

func (s *MemoryStore) PopFlashes(_ context.Context, sid string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.flashes[sid]
	delete(s.flashes, sid)
	return msgs, nil
}

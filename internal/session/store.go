package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/wellbeing-wheel/backend/internal/assessment"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu       sync.Mutex
	record   *assessment.Record
	lastSeen time.Time
}

// Do выполняет операцию над записью сессии под ее мьютексом.
// Это единственный путь чтения и изменения записи.
func (s *Session) Do(fn func(*assessment.Record) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return fn(s.record)
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	done     chan struct{}
	stopOnce sync.Once
}

// NewStore создает хранилище сессий и запускает уборку по TTL.
func NewStore(ttl, sweepInterval time.Duration) *Store {
	store := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go store.sweep(sweepInterval)
	return store
}

// Create создает сессию со свежей записью мастера.
func (s *Store) Create() *Session {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		CreatedAt: now,
		record:    assessment.NewRecord(),
		lastSeen:  now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = sess
	return sess
}

// Get возвращает сессию по идентификатору.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete удаляет сессию; отсутствующая сессия игнорируется.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len возвращает количество активных сессий.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close останавливает фоновую уборку.
func (s *Store) Close() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *Store) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evictExpired(now)
		}
	}
}

func (s *Store) evictExpired(now time.Time) {
	s.mu.RLock()
	var expired []uuid.UUID
	for id, sess := range s.sessions {
		if sess.expired(now, s.ttl) {
			expired = append(expired, id)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range expired {
		if sess, ok := s.sessions[id]; ok && sess.expired(now, s.ttl) {
			delete(s.sessions, id)
		}
	}
}

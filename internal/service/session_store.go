package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"compass-quiz/internal/cache"
	"compass-quiz/internal/domain"
	"compass-quiz/internal/logger"

	"go.uber.org/zap"
)

// cacheSessionStore keeps sessions as JSON documents in a domain.Cache.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore returns a SessionStore backed by cache. Every Save and every
// successful Get refreshes the TTL. A nil cache falls back to a process-local store.
func NewSessionStore(c domain.Cache, ttl time.Duration) domain.SessionStore {
	if c == nil {
		logger.Get().Warn("SessionStore initialized with nil cache. Sessions will be kept in process memory.")
		return NewMemorySessionStore()
	}
	return &cacheSessionStore{cache: c, ttl: ttl}
}

func (s *cacheSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	if session == nil || session.SessionID == "" {
		return domain.NewInvalidInputError("cannot store a session without an id")
	}
	key := cache.SessionStateKey(session.SessionID)
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store session %s", session.SessionID), err)
	}
	return nil
}

func (s *cacheSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	key := cache.SessionStateKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load session %s", sessionID), err)
	}
	if data == "" {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	var session domain.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Failed to unmarshal session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to decode session %s", sessionID), err)
	}
	if session.Answers == nil {
		session.Answers = domain.Answers{}
	}
	if s.ttl > 0 {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			logger.Get().Warn("Failed to refresh session TTL", zap.Error(err), zap.String("key", key))
		}
	}
	return &session, nil
}

func (s *cacheSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.SessionStateKey(sessionID)); err != nil {
		return domain.NewInternalError(fmt.Sprintf("failed to delete session %s", sessionID), err)
	}
	return nil
}

// memorySessionStore stores deep copies so callers never share state with the store.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewMemorySessionStore returns a SessionStore for single-process runs and tests.
// Sessions never expire.
func NewMemorySessionStore() domain.SessionStore {
	return &memorySessionStore{sessions: make(map[string][]byte)}
}

func (s *memorySessionStore) Save(_ context.Context, session *domain.QuizSession) error {
	if session == nil || session.SessionID == "" {
		return domain.NewInvalidInputError("cannot store a session without an id")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return domain.NewInternalError("failed to marshal session", err)
	}
	s.mu.Lock()
	s.sessions[session.SessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*domain.QuizSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	var session domain.QuizSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, domain.NewInternalError("failed to decode session", err)
	}
	if session.Answers == nil {
		session.Answers = domain.Answers{}
	}
	return &session, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

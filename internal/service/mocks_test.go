package service

import (
	"context"

	"compass-quiz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockResultRepository ---
type MockResultRepository struct {
	mock.Mock
}

func (m *MockResultRepository) SaveResult(ctx context.Context, result *domain.StoredResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockResultRepository) GetResultBySessionID(ctx context.Context, sessionID string) (*domain.StoredResult, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredResult), args.Error(1)
}

func (m *MockResultRepository) CountByIdeology(ctx context.Context) (map[string]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

// --- MockSessionStore ---
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.QuizSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizSession), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"compass-quiz/internal/catalog"
	"compass-quiz/internal/domain"
	"compass-quiz/internal/questionbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func newTestSessionService(t *testing.T, results domain.ResultRepository) (*quizSessionService, domain.SessionStore) {
	t.Helper()
	store := NewMemorySessionStore()
	svc := NewQuizSessionService(store, questionbank.Default(), catalog.Default(), results, QuizSessionConfig{
		TiebreakerMargin: 15,
		ShortQuizOrder:   questionbank.ShortQuizOrder,
	}).(*quizSessionService)
	svc.now = func() time.Time { return fixedNow }
	n := 0
	svc.newID = func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
	return svc, store
}

// neutralAnswers answers every issued question not yet answered with 0.5.
func neutralAnswers(session *domain.QuizSession) domain.Answers {
	answers := domain.Answers{}
	for _, id := range session.Questions {
		if _, ok := session.Answers[id]; !ok {
			answers[id] = 0.5
		}
	}
	return answers
}

func TestQuizSessionService_Start(t *testing.T) {
	svc, store := newTestSessionService(t, nil)
	ctx := context.Background()

	short, err := svc.Start(ctx, domain.QuizTypeShort)
	require.NoError(t, err)
	assert.Equal(t, "id-01", short.SessionID)
	assert.Equal(t, domain.PhasePrimary, short.Phase)
	assert.Equal(t, questionbank.ShortQuizOrder, short.Questions)
	assert.Empty(t, short.Answers)
	assert.Equal(t, fixedNow, short.CreatedAt)

	stored, err := store.Get(ctx, short.SessionID)
	require.NoError(t, err)
	assert.Equal(t, short, stored)

	full, err := svc.Start(ctx, domain.QuizTypeFull)
	require.NoError(t, err)
	assert.Len(t, full.Questions, len(questionbank.Default().CoreQuestions()))

	_, err = svc.Start(ctx, "medium")
	assert.True(t, domain.IsCode(err, domain.CodeInvalidInput))
}

func TestQuizSessionService_ShortQuizWorkedScenario(t *testing.T) {
	results := new(MockResultRepository)
	svc, _ := newTestSessionService(t, results)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeShort)
	require.NoError(t, err)

	values := []float64{1.0, 0.5, 0.5, 0.0, 0.5, 1.0, 0.5, 0.5, 0.0, 0.5}
	answers := domain.Answers{}
	for i, id := range questionbank.ShortQuizOrder {
		answers[id] = values[i]
	}
	_, err = svc.SubmitAnswers(ctx, session.SessionID, answers)
	require.NoError(t, err)

	results.On("SaveResult", mock.Anything, mock.MatchedBy(func(r *domain.StoredResult) bool {
		return r.SessionID == session.SessionID &&
			r.QuizType == domain.QuizTypeShort &&
			r.Result.MacroCell == "EL-GM" &&
			r.CompletedAt.Equal(fixedNow)
	})).Return(nil).Once()

	done, err := svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseComplete, done.Phase)
	require.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.Result)
	assert.Equal(t, domain.PrimaryScores{Economic: -100, Authority: 0, Cultural: 0}, done.Result.PrimaryScores)
	assert.Equal(t, domain.MacroCell("EL-GM"), done.Result.MacroCell)
	assert.Equal(t, domain.MacroCell("EL-GM"), done.Result.Ideology.MacroCell)
	assert.Nil(t, done.Result.SupplementaryScores)
	results.AssertExpectations(t)

	result, err := svc.Result(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, done.Result, result)

	_, err = svc.Advance(ctx, session.SessionID)
	assert.True(t, domain.IsCode(err, domain.CodeSessionCompleted))
	_, err = svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"E01": 0.5})
	assert.True(t, domain.IsCode(err, domain.CodeSessionCompleted))
}

func TestQuizSessionService_SubmitAnswersValidation(t *testing.T) {
	svc, _ := newTestSessionService(t, nil)
	ctx := context.Background()
	session, err := svc.Start(ctx, domain.QuizTypeShort)
	require.NoError(t, err)

	tests := []struct {
		name     string
		answers  domain.Answers
		wantCode domain.ErrorCode
	}{
		{"empty", domain.Answers{}, domain.CodeInvalidInput},
		{"unknown id", domain.Answers{"Z99": 0.5}, domain.CodeUnknownQuestionID},
		{"value above range", domain.Answers{"E01": 1.5}, domain.CodeInvalidAnswerValue},
		{"negative value", domain.Answers{"E01": -0.1}, domain.CodeInvalidAnswerValue},
		{"core question outside the short quiz", domain.Answers{"E05": 0.5}, domain.CodePhaseSequence},
		{"tiebreaker not issued", domain.Answers{"T01": 0.5}, domain.CodePhaseSequence},
		{"phase-2 question not issued", domain.Answers{"ELGL-01": 0.5}, domain.CodePhaseSequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SubmitAnswers(ctx, session.SessionID, tt.answers)
			require.Error(t, err)
			assert.True(t, domain.IsCode(err, tt.wantCode), "got %v", err)
		})
	}

	stored, err := svc.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Empty(t, stored.Answers, "rejected submissions must not be stored")

	_, err = svc.SubmitAnswers(ctx, "missing", domain.Answers{"E01": 0.5})
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
}

func TestQuizSessionService_SubmitAnswersMergesAndOverwrites(t *testing.T) {
	svc, _ := newTestSessionService(t, nil)
	ctx := context.Background()
	session, err := svc.Start(ctx, domain.QuizTypeShort)
	require.NoError(t, err)

	_, err = svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"E01": 0.2, "A01": 0.9})
	require.NoError(t, err)
	updated, err := svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"E01": 0.8})
	require.NoError(t, err)
	assert.Equal(t, domain.Answers{"E01": 0.8, "A01": 0.9}, updated.Answers)
}

func TestQuizSessionService_FullQuizWithTiebreaker(t *testing.T) {
	results := new(MockResultRepository)
	results.On("SaveResult", mock.Anything, mock.AnythingOfType("*domain.StoredResult")).Return(nil).Once()
	svc, _ := newTestSessionService(t, results)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeFull)
	require.NoError(t, err)

	answers := neutralAnswers(session)
	// Three left-leaning agreements put E at -37.5, near the -33 boundary.
	answers["E01"], answers["E03"], answers["E05"] = 1.0, 1.0, 1.0
	_, err = svc.SubmitAnswers(ctx, session.SessionID, answers)
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseTiebreaker, session.Phase)
	assert.Equal(t, []domain.BoundaryTag{domain.BoundaryLeftCenter}, session.TiebreakerBoundaries)
	require.NotNil(t, session.Phase1Scores)
	assert.Equal(t, -37.5, session.Phase1Scores.Economic)
	assert.Equal(t, []string{"T01", "T02", "T03"}, session.Questions[len(session.Questions)-3:])

	// Tiebreakers pull the respondent back to the centre.
	_, err = svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"T01": 0.0, "T02": 1.0, "T03": 0.0})
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRefine, session.Phase)
	assert.Equal(t, domain.MacroCell("EM-GM"), session.MacroCellCode)
	assert.Equal(t, 0.0, session.Phase1Scores.Economic)
	phase2 := questionbank.Default().Phase2Questions("EM-GM")
	assert.Len(t, session.Questions, len(questionbank.Default().CoreQuestions())+3+len(phase2))

	_, err = svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"E01": 0.5})
	assert.True(t, domain.IsCode(err, domain.CodePhaseSequence), "phase-1 answers are frozen in phase 2")

	_, err = svc.SubmitAnswers(ctx, session.SessionID, neutralAnswers(session))
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseComplete, session.Phase)
	require.NotNil(t, session.Result)
	assert.Equal(t, "Centrism", session.Result.Ideology.Name)
	assert.Len(t, session.Result.SupplementaryScores, 4)
	for code, v := range session.Result.SupplementaryScores {
		assert.Equal(t, 0.0, v, code)
	}
	results.AssertExpectations(t)
}

func TestQuizSessionService_TiebreakerDoesNotRetrigger(t *testing.T) {
	svc, _ := newTestSessionService(t, nil)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeFull)
	require.NoError(t, err)
	answers := neutralAnswers(session)
	answers["E01"], answers["E03"], answers["E05"] = 1.0, 1.0, 1.0
	_, err = svc.SubmitAnswers(ctx, session.SessionID, answers)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	require.Equal(t, domain.PhaseTiebreaker, session.Phase)

	// Leaving the tiebreakers neutral keeps E close to -33.
	_, err = svc.SubmitAnswers(ctx, session.SessionID, domain.Answers{"T01": 0.5, "T02": 0.5, "T03": 0.5})
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRefine, session.Phase)
	assert.Equal(t, domain.MacroCell("EM-GM"), session.MacroCellCode)
	assert.Equal(t, []domain.BoundaryTag{domain.BoundaryLeftCenter}, session.TiebreakerBoundaries)
}

func TestQuizSessionService_FullQuizWithoutTiebreaker(t *testing.T) {
	svc, _ := newTestSessionService(t, nil)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeFull)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(ctx, session.SessionID, neutralAnswers(session))
	require.NoError(t, err)

	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRefine, session.Phase)
	assert.Empty(t, session.TiebreakerBoundaries)
	assert.Equal(t, domain.MacroCell("EM-GM"), session.MacroCellCode)

	_, err = svc.Result(ctx, session.SessionID)
	assert.True(t, domain.IsCode(err, domain.CodeNotFound))
}

func TestQuizSessionService_Reset(t *testing.T) {
	svc, _ := newTestSessionService(t, nil)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeFull)
	require.NoError(t, err)
	_, err = svc.SubmitAnswers(ctx, session.SessionID, neutralAnswers(session))
	require.NoError(t, err)
	_, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(time.Hour) }
	reset, err := svc.Reset(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, reset.SessionID)
	assert.Equal(t, domain.QuizTypeFull, reset.Type)
	assert.Equal(t, fixedNow, reset.CreatedAt)
	assert.Equal(t, domain.PhasePrimary, reset.Phase)
	assert.Equal(t, session.Questions, reset.Questions)
	assert.Empty(t, reset.Answers)
	assert.Nil(t, reset.Phase1Scores)
	assert.Empty(t, reset.MacroCellCode)
	assert.Nil(t, reset.CompletedAt)

	_, err = svc.Reset(ctx, "missing")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
}

func TestQuizSessionService_ArchiveFailureDoesNotFailAdvance(t *testing.T) {
	results := new(MockResultRepository)
	results.On("SaveResult", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()
	svc, _ := newTestSessionService(t, results)
	ctx := context.Background()

	session, err := svc.Start(ctx, domain.QuizTypeShort)
	require.NoError(t, err)
	session, err = svc.Advance(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, session.IsComplete())
	assert.Equal(t, domain.MacroCell("EM-GM"), session.Result.MacroCell)
	results.AssertExpectations(t)
}

func TestQuizSessionService_ResultFromArchive(t *testing.T) {
	results := new(MockResultRepository)
	svc, _ := newTestSessionService(t, results)
	ctx := context.Background()

	archived := &domain.StoredResult{
		ID:        "r1",
		SessionID: "expired",
		QuizType:  domain.QuizTypeShort,
		Result:    domain.QuizResult{MacroCell: "ER-GR", Ideology: domain.Ideology{Name: "Minarchism"}},
	}
	results.On("GetResultBySessionID", mock.Anything, "expired").Return(archived, nil).Once()
	results.On("GetResultBySessionID", mock.Anything, "unknown").
		Return(nil, domain.NewNotFoundError("no result")).Once()

	result, err := svc.Result(ctx, "expired")
	require.NoError(t, err)
	assert.Equal(t, "Minarchism", result.Ideology.Name)

	_, err = svc.Result(ctx, "unknown")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
	results.AssertExpectations(t)
}

func TestQuizSessionService_StoreErrors(t *testing.T) {
	store := new(MockSessionStore)
	svc := NewQuizSessionService(store, questionbank.Default(), catalog.Default(), nil, QuizSessionConfig{
		TiebreakerMargin: 15,
		ShortQuizOrder:   questionbank.ShortQuizOrder,
	})
	ctx := context.Background()

	store.On("Save", mock.Anything, mock.Anything).Return(domain.NewInternalError("boom", nil)).Once()
	_, err := svc.Start(ctx, domain.QuizTypeShort)
	assert.True(t, domain.IsCode(err, domain.CodeInternal))

	store.On("Get", mock.Anything, "s1").Return(nil, domain.NewSessionNotFoundError("s1")).Once()
	_, err = svc.Advance(ctx, "s1")
	assert.True(t, domain.IsCode(err, domain.CodeSessionNotFound))
	store.AssertExpectations(t)
}

func TestStatsService(t *testing.T) {
	results := new(MockResultRepository)
	results.On("CountByIdeology", mock.Anything).Return(map[string]int{"Centrism": 3}, nil).Once()
	counts, err := NewStatsService(results).IdeologyCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Centrism": 3}, counts)

	results.On("CountByIdeology", mock.Anything).Return(nil, errors.New("db down")).Once()
	_, err = NewStatsService(results).IdeologyCounts(context.Background())
	assert.True(t, domain.IsCode(err, domain.CodeInternal))

	counts, err = NewStatsService(nil).IdeologyCounts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, counts)
}

package service

import (
	"context"
	"fmt"
	"time"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"
	"compass-quiz/internal/logger"
	"compass-quiz/internal/util"

	"go.uber.org/zap"
)

// QuizSessionService drives a respondent through the two-phase pipeline.
type QuizSessionService interface {
	Start(ctx context.Context, quizType domain.QuizType) (*domain.QuizSession, error)
	Get(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers domain.Answers) (*domain.QuizSession, error)
	Advance(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Reset(ctx context.Context, sessionID string) (*domain.QuizSession, error)
	Result(ctx context.Context, sessionID string) (*domain.QuizResult, error)
}

// QuizSessionConfig carries the tunables of the pipeline.
type QuizSessionConfig struct {
	TiebreakerMargin float64
	// ShortQuizOrder lists the question ids of a short quiz in issue order.
	ShortQuizOrder []string
}

type quizSessionService struct {
	store     domain.SessionStore
	bank      domain.QuestionBank
	catalogue domain.Catalogue
	results   domain.ResultRepository
	cfg       QuizSessionConfig
	now       func() time.Time
	newID     func() string
}

// NewQuizSessionService wires the pipeline. results may be nil, in which case
// completed sessions are not archived.
func NewQuizSessionService(
	store domain.SessionStore,
	bank domain.QuestionBank,
	catalogue domain.Catalogue,
	results domain.ResultRepository,
	cfg QuizSessionConfig,
) QuizSessionService {
	if results == nil {
		logger.Get().Warn("QuizSessionService initialized without a result repository. Completed sessions will not be archived.")
	}
	return &quizSessionService{
		store:     store,
		bank:      bank,
		catalogue: catalogue,
		results:   results,
		cfg:       cfg,
		now:       time.Now,
		newID:     util.NewULID,
	}
}

func (s *quizSessionService) initialQuestions(quizType domain.QuizType) ([]string, error) {
	if quizType == domain.QuizTypeShort {
		ids := make([]string, 0, len(s.cfg.ShortQuizOrder))
		for _, id := range s.cfg.ShortQuizOrder {
			if _, ok := s.bank.Question(id); !ok {
				return nil, domain.NewInternalError("short quiz references a question missing from the bank",
					domain.NewUnknownQuestionIDError(id))
			}
			ids = append(ids, id)
		}
		return ids, nil
	}
	var ids []string
	for _, q := range s.bank.CoreQuestions() {
		ids = append(ids, q.ID)
	}
	return ids, nil
}

func (s *quizSessionService) Start(ctx context.Context, quizType domain.QuizType) (*domain.QuizSession, error) {
	if !quizType.Valid() {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("unknown quiz type %q", quizType)).
			WithContext("type", string(quizType))
	}
	questions, err := s.initialQuestions(quizType)
	if err != nil {
		return nil, err
	}
	session := &domain.QuizSession{
		SessionID:            s.newID(),
		Type:                 quizType,
		Phase:                domain.PhasePrimary,
		Questions:            questions,
		Answers:              domain.Answers{},
		TiebreakerBoundaries: []domain.BoundaryTag{},
		CreatedAt:            s.now().UTC(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session started",
		zap.String("sessionID", session.SessionID),
		zap.String("type", string(quizType)),
		zap.Int("questions", len(questions)))
	return session, nil
}

func (s *quizSessionService) Get(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	return s.store.Get(ctx, sessionID)
}

// SubmitAnswers merges answers into the session. Every id must be in the bank and
// issued to this session; once phase 2 starts, phase-1 answers are frozen.
func (s *quizSessionService) SubmitAnswers(ctx context.Context, sessionID string, answers domain.Answers) (*domain.QuizSession, error) {
	if len(answers) == 0 {
		return nil, domain.NewInvalidInputError("at least one answer is required")
	}
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsComplete() {
		return nil, domain.NewSessionCompletedError(sessionID)
	}

	for _, id := range answers.SortedIDs() {
		q, ok := s.bank.Question(id)
		if !ok {
			return nil, domain.NewUnknownQuestionIDError(id)
		}
		if _, err := engine.Normalize(answers[id]); err != nil {
			return nil, domain.NewInvalidAnswerValueError(id, answers[id])
		}
		if !session.HasIssued(id) {
			return nil, domain.NewPhaseSequenceError(fmt.Sprintf("question %s has not been issued in this session", id)).
				WithContext("question_id", id).
				WithContext("phase", string(session.Phase))
		}
		if session.Phase == domain.PhaseRefine && !q.IsPhase2() {
			return nil, domain.NewPhaseSequenceError(fmt.Sprintf("question %s belongs to phase 1, which is closed", id)).
				WithContext("question_id", id).
				WithContext("phase", string(session.Phase))
		}
	}

	for id, v := range answers {
		session.Answers[id] = v
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Advance runs the next pipeline stage for the session's current phase.
func (s *quizSessionService) Advance(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsComplete() {
		return nil, domain.NewSessionCompletedError(sessionID)
	}

	switch session.Phase {
	case domain.PhasePrimary:
		err = s.closePrimaryPhase(ctx, session)
	case domain.PhaseTiebreaker:
		err = s.closeTiebreakerPhase(session)
	case domain.PhaseRefine:
		err = s.closeRefinePhase(ctx, session)
	default:
		err = domain.NewInternalError(fmt.Sprintf("session %s is in unknown phase %q", sessionID, session.Phase), nil)
	}
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session advanced",
		zap.String("sessionID", sessionID),
		zap.String("phase", string(session.Phase)))
	return session, nil
}

func (s *quizSessionService) closePrimaryPhase(ctx context.Context, session *domain.QuizSession) error {
	scores, err := engine.ScorePrimaryAxes(session.Answers, s.bank)
	if err != nil {
		return err
	}
	session.Phase1Scores = &scores

	if session.Type == domain.QuizTypeShort {
		result, err := engine.Classify(scores, nil, s.catalogue)
		if err != nil {
			return err
		}
		session.MacroCellCode = result.MacroCell
		return s.complete(ctx, session, result)
	}

	tags := engine.SelectBoundaries(scores.Economic, scores.Authority, s.cfg.TiebreakerMargin)
	if tiebreakers := engine.TiebreakerQuestions(tags, s.bank); len(tiebreakers) > 0 {
		for _, q := range tiebreakers {
			session.Questions = append(session.Questions, q.ID)
		}
		session.TiebreakerBoundaries = tags
		session.Phase = domain.PhaseTiebreaker
		return nil
	}
	s.enterRefinePhase(session, scores)
	return nil
}

// closeTiebreakerPhase rescores with the tiebreaker answers and fixes the cell.
// Tiebreakers are never issued twice.
func (s *quizSessionService) closeTiebreakerPhase(session *domain.QuizSession) error {
	scores, err := engine.ScorePrimaryAxes(session.Answers, s.bank)
	if err != nil {
		return err
	}
	s.enterRefinePhase(session, scores)
	return nil
}

func (s *quizSessionService) enterRefinePhase(session *domain.QuizSession, scores domain.PrimaryScores) {
	session.Phase1Scores = &scores
	session.MacroCellCode = engine.ClassifyMacroCell(scores.Economic, scores.Authority)
	for _, q := range s.bank.Phase2Questions(session.MacroCellCode) {
		session.Questions = append(session.Questions, q.ID)
	}
	session.Phase = domain.PhaseRefine
}

func (s *quizSessionService) closeRefinePhase(ctx context.Context, session *domain.QuizSession) error {
	if session.Phase1Scores == nil || !session.MacroCellCode.Valid() {
		return domain.NewPhaseSequenceError("phase 2 started without a fixed macro-cell").
			WithContext("session_id", session.SessionID)
	}
	supp, err := engine.ScoreSupplementaryAxes(session.MacroCellCode, session.Answers, s.bank)
	if err != nil {
		return err
	}
	session.SupplementaryScores = supp

	primary := *session.Phase1Scores
	ideology, err := engine.MatchIdeology(session.MacroCellCode, primary, supp, s.catalogue.ForCell(session.MacroCellCode))
	if err != nil {
		return err
	}
	return s.complete(ctx, session, &domain.QuizResult{
		PrimaryScores:       primary,
		MacroCell:           session.MacroCellCode,
		SupplementaryScores: supp,
		Ideology:            ideology,
	})
}

func (s *quizSessionService) complete(ctx context.Context, session *domain.QuizSession, result *domain.QuizResult) error {
	completedAt := s.now().UTC()
	session.Result = result
	session.CompletedAt = &completedAt
	session.Phase = domain.PhaseComplete

	if s.results == nil {
		return nil
	}
	stored := &domain.StoredResult{
		ID:          s.newID(),
		SessionID:   session.SessionID,
		QuizType:    session.Type,
		Result:      *result,
		CompletedAt: completedAt,
	}
	if err := s.results.SaveResult(ctx, stored); err != nil {
		// The session still holds the result; only the archive copy is lost.
		logger.Get().Error("Failed to archive quiz result",
			zap.Error(err),
			zap.String("sessionID", session.SessionID))
	}
	return nil
}

// Reset clears progress and reissues the initial question set. Id, type and
// creation time survive.
func (s *quizSessionService) Reset(ctx context.Context, sessionID string) (*domain.QuizSession, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions, err := s.initialQuestions(session.Type)
	if err != nil {
		return nil, err
	}
	reset := &domain.QuizSession{
		SessionID:            session.SessionID,
		Type:                 session.Type,
		Phase:                domain.PhasePrimary,
		Questions:            questions,
		Answers:              domain.Answers{},
		TiebreakerBoundaries: []domain.BoundaryTag{},
		CreatedAt:            session.CreatedAt,
	}
	if err := s.store.Save(ctx, reset); err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz session reset", zap.String("sessionID", sessionID))
	return reset, nil
}

// Result returns the final classification. Sessions that have expired from the
// store are looked up in the archive.
func (s *quizSessionService) Result(ctx context.Context, sessionID string) (*domain.QuizResult, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		if s.results != nil && domain.IsCode(err, domain.CodeSessionNotFound) {
			return s.archivedResult(ctx, sessionID, err)
		}
		return nil, err
	}
	if !session.IsComplete() || session.Result == nil {
		return nil, domain.NewNotFoundError(fmt.Sprintf("session %s has no result yet", sessionID)).
			WithContext("phase", string(session.Phase))
	}
	return session.Result, nil
}

func (s *quizSessionService) archivedResult(ctx context.Context, sessionID string, notFound error) (*domain.QuizResult, error) {
	stored, err := s.results.GetResultBySessionID(ctx, sessionID)
	if err != nil {
		if domain.IsCode(err, domain.CodeNotFound) {
			return nil, notFound
		}
		return nil, err
	}
	if stored == nil {
		return nil, notFound
	}
	return &stored.Result, nil
}

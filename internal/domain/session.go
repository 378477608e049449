package domain

import (
	"context"
	"time"
)

// QuizType selects the question set a session starts with.
type QuizType string

const (
	QuizTypeShort QuizType = "short"
	QuizTypeFull  QuizType = "full"
)

// Valid reports whether t is a known quiz type.
func (t QuizType) Valid() bool {
	return t == QuizTypeShort || t == QuizTypeFull
}

// SessionPhase tracks where a session sits in the classification pipeline.
type SessionPhase string

const (
	PhasePrimary    SessionPhase = "phase1"
	PhaseTiebreaker SessionPhase = "tiebreaker"
	PhaseRefine     SessionPhase = "phase2"
	PhaseComplete   SessionPhase = "complete"
)

// QuizSession is the serializable state of one respondent's quiz.
// Questions holds issued question ids in issue order.
type QuizSession struct {
	SessionID            string              `json:"sessionId"`
	Type                 QuizType            `json:"type"`
	Phase                SessionPhase        `json:"phase"`
	Questions            []string            `json:"questions"`
	Answers              Answers             `json:"answers"`
	Phase1Scores         *PrimaryScores      `json:"phase1Scores,omitempty"`
	MacroCellCode        MacroCell           `json:"macroCellCode,omitempty"`
	TiebreakerBoundaries []BoundaryTag       `json:"tiebreakerBoundaries"`
	SupplementaryScores  SupplementaryScores `json:"supplementaryScores,omitempty"`
	Result               *QuizResult         `json:"result,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
	CompletedAt          *time.Time          `json:"completedAt,omitempty"`
}

// IsComplete reports whether the session has a final result.
func (s *QuizSession) IsComplete() bool {
	return s.CompletedAt != nil
}

// HasIssued reports whether questionID was issued to this session.
func (s *QuizSession) HasIssued(questionID string) bool {
	for _, id := range s.Questions {
		if id == questionID {
			return true
		}
	}
	return false
}

// QuizResult is the terminal output consumed by rendering and sharing.
type QuizResult struct {
	PrimaryScores       PrimaryScores       `json:"primaryScores"`
	MacroCell           MacroCell           `json:"macroCell"`
	SupplementaryScores SupplementaryScores `json:"supplementaryScores,omitempty"`
	Ideology            Ideology            `json:"ideology"`
}

// SessionStore persists in-progress sessions. Implementations own their state;
// the engine never keeps sessions itself.
type SessionStore interface {
	Save(ctx context.Context, session *QuizSession) error
	Get(ctx context.Context, sessionID string) (*QuizSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// StoredResult is an archived completed classification.
type StoredResult struct {
	ID          string
	SessionID   string
	QuizType    QuizType
	Result      QuizResult
	CompletedAt time.Time
}

// ResultRepository archives completed results.
type ResultRepository interface {
	SaveResult(ctx context.Context, result *StoredResult) error
	GetResultBySessionID(ctx context.Context, sessionID string) (*StoredResult, error)
	CountByIdeology(ctx context.Context) (map[string]int, error)
}

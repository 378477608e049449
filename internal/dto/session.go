package dto

import (
	"sort"
	"time"

	"compass-quiz/internal/domain"
)

// StartSessionRequest represents the body of POST /sessions
// @Description Request body for starting a quiz
type StartSessionRequest struct {
	Type string `json:"type" example:"full"`
}

// StartSessionResponse carries the new session and its ownership token
type StartSessionResponse struct {
	Session SessionResponse `json:"session"`
	Token   string          `json:"token"`
}

// QuestionResponse is one issued question
type QuestionResponse struct {
	ID    string   `json:"id"`
	Text  string   `json:"text"`
	Phase int      `json:"phase"`
	Kind  string   `json:"kind"`
	Axis  string   `json:"axis"`
	Value *float64 `json:"value,omitempty"`
}

// SessionResponse is the client view of a quiz session
// @Description Quiz session state
type SessionResponse struct {
	SessionID            string                `json:"sessionId"`
	Type                 string                `json:"type"`
	Phase                string                `json:"phase"`
	Questions            []QuestionResponse    `json:"questions"`
	Answered             int                   `json:"answered"`
	Phase1Scores         *domain.PrimaryScores `json:"phase1Scores,omitempty"`
	MacroCellCode        string                `json:"macroCellCode,omitempty"`
	TiebreakerBoundaries []string              `json:"tiebreakerBoundaries"`
	SupplementaryScores  map[string]float64    `json:"supplementaryScores,omitempty"`
	CreatedAt            time.Time             `json:"createdAt"`
	CompletedAt          *time.Time            `json:"completedAt,omitempty"`
}

// SubmitAnswersRequest represents the body of POST /sessions/{id}/answers.
// Values are decoded loosely so null and non-numeric entries can be rejected
// per question.
// @Description Slider values in [0, 1] keyed by question id
type SubmitAnswersRequest struct {
	Answers map[string]interface{} `json:"answers" swaggertype:"object,number"`
}

// ToAnswers converts the decoded values, rejecting the first null or
// non-numeric entry in question id order.
func (r *SubmitAnswersRequest) ToAnswers() (domain.Answers, error) {
	answers := make(domain.Answers, len(r.Answers))
	for _, id := range sortedKeys(r.Answers) {
		v, ok := r.Answers[id].(float64)
		if !ok {
			return nil, domain.NewInvalidAnswerValueError(id, r.Answers[id])
		}
		answers[id] = v
	}
	return answers, nil
}

// IdeologyResponse is a catalogue ideology
type IdeologyResponse struct {
	Name          string             `json:"name"`
	MacroCell     string             `json:"macroCell"`
	Economic      float64            `json:"economic"`
	Authority     float64            `json:"authority"`
	Supplementary map[string]float64 `json:"supplementary"`
}

// ResultResponse is the final classification of a session or a position
// @Description Classification result
type ResultResponse struct {
	PrimaryScores       domain.PrimaryScores `json:"primaryScores"`
	MacroCell           string               `json:"macroCell"`
	SupplementaryScores map[string]float64   `json:"supplementaryScores,omitempty"`
	Ideology            IdeologyResponse     `json:"ideology"`
}

// ClassifyRequest represents the body of POST /classify
// @Description A known position. Supplementary scores are optional.
type ClassifyRequest struct {
	Economic      *float64               `json:"economic"`
	Authority     *float64               `json:"authority"`
	Cultural      *float64               `json:"cultural"`
	Supplementary map[string]interface{} `json:"supplementary,omitempty" swaggertype:"object,number"`
}

// SupplementaryScores returns the numeric supplementary entries, or nil when
// none were sent. Non-numeric entries are rejected by validation first.
func (r *ClassifyRequest) SupplementaryScores() domain.SupplementaryScores {
	if len(r.Supplementary) == 0 {
		return nil
	}
	scores := make(domain.SupplementaryScores, len(r.Supplementary))
	for code, raw := range r.Supplementary {
		if v, ok := raw.(float64); ok {
			scores[code] = v
		}
	}
	return scores
}

// AxisResponse describes a supplementary axis
type AxisResponse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CellResponse is one macro-cell of the catalogue
type CellResponse struct {
	Code       string             `json:"code"`
	Label      string             `json:"label"`
	Axes       []AxisResponse     `json:"axes"`
	Ideologies []IdeologyResponse `json:"ideologies"`
}

// StatsResponse reports archived results per ideology
type StatsResponse struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// HealthResponse reports the state of the service and its backends
type HealthResponse struct {
	Status   string            `json:"status"`
	Backends map[string]string `json:"backends"`
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

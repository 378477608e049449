package dto

import (
	"compass-quiz/internal/catalog"
	"compass-quiz/internal/domain"
)

// NewSessionResponse renders a session with the text of every issued question.
// Ids missing from the bank are listed without text.
func NewSessionResponse(s *domain.QuizSession, bank domain.QuestionBank) SessionResponse {
	resp := SessionResponse{
		SessionID:            s.SessionID,
		Type:                 string(s.Type),
		Phase:                string(s.Phase),
		Questions:            make([]QuestionResponse, 0, len(s.Questions)),
		Answered:             len(s.Answers),
		Phase1Scores:         s.Phase1Scores,
		MacroCellCode:        string(s.MacroCellCode),
		TiebreakerBoundaries: make([]string, len(s.TiebreakerBoundaries)),
		SupplementaryScores:  s.SupplementaryScores,
		CreatedAt:            s.CreatedAt,
		CompletedAt:          s.CompletedAt,
	}
	for i, tag := range s.TiebreakerBoundaries {
		resp.TiebreakerBoundaries[i] = string(tag)
	}
	for _, id := range s.Questions {
		item := QuestionResponse{ID: id}
		if q, ok := bank.Question(id); ok {
			item.Text = q.Text
			item.Phase = q.Phase
			item.Kind = string(q.Kind)
			item.Axis = string(q.Axis)
		}
		if v, ok := s.Answers[id]; ok {
			value := v
			item.Value = &value
		}
		resp.Questions = append(resp.Questions, item)
	}
	return resp
}

func NewIdeologyResponse(i domain.Ideology) IdeologyResponse {
	return IdeologyResponse{
		Name:          i.Name,
		MacroCell:     string(i.MacroCell),
		Economic:      i.Economic,
		Authority:     i.Authority,
		Supplementary: i.Supplementary,
	}
}

func NewResultResponse(r *domain.QuizResult) ResultResponse {
	return ResultResponse{
		PrimaryScores:       r.PrimaryScores,
		MacroCell:           string(r.MacroCell),
		SupplementaryScores: r.SupplementaryScores,
		Ideology:            NewIdeologyResponse(r.Ideology),
	}
}

func NewCellResponse(c *catalog.Cell) CellResponse {
	resp := CellResponse{
		Code:       string(c.Code),
		Label:      c.Label,
		Axes:       make([]AxisResponse, len(c.Axes)),
		Ideologies: make([]IdeologyResponse, len(c.Ideologies)),
	}
	for i, axis := range c.Axes {
		resp.Axes[i] = AxisResponse{Code: axis.Code, Name: axis.Name}
	}
	for i, ideology := range c.Ideologies {
		resp.Ideologies[i] = NewIdeologyResponse(ideology)
	}
	return resp
}

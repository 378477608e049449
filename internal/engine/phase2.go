package engine

import (
	"fmt"

	"compass-quiz/internal/domain"
)

// ScoreSupplementaryAxes scores the phase-2 answers of a fixed macro-cell with
// the same normalization as the primary axes, partitioned by axis code. Every
// axis code the cell's questions use appears in the result, 0 when unanswered.
//
// Phase-1 answers in the map are ignored. It fails with PHASE_SEQUENCE_ERROR when
// cell is not a fixed macro-cell or an answer belongs to another cell's set.
func ScoreSupplementaryAxes(cell domain.MacroCell, answers domain.Answers, bank domain.QuestionBank) (domain.SupplementaryScores, error) {
	if !cell.Valid() {
		return nil, domain.NewPhaseSequenceError("phase-2 scoring requires a fixed macro-cell").
			WithContext("macro_cell", string(cell))
	}

	acc := make(map[string]*axisAccumulator)
	for _, q := range bank.Phase2Questions(cell) {
		if _, ok := acc[string(q.Axis)]; !ok {
			acc[string(q.Axis)] = &axisAccumulator{}
		}
	}

	for _, id := range answers.SortedIDs() {
		q, ok := bank.Question(id)
		if !ok {
			return nil, domain.NewUnknownQuestionIDError(id)
		}
		if !q.IsPhase2() {
			continue
		}
		if q.MacroCell != cell {
			return nil, domain.NewPhaseSequenceError(
				fmt.Sprintf("question %s belongs to macro-cell %s, not %s", id, q.MacroCell, cell)).
				WithContext("question_id", id).
				WithContext("macro_cell", string(cell))
		}
		c, err := normalize(id, answers[id])
		if err != nil {
			return nil, err
		}
		a, ok := acc[string(q.Axis)]
		if !ok {
			a = &axisAccumulator{}
			acc[string(q.Axis)] = a
		}
		a.add(q.Polarity, c)
	}

	scores := make(domain.SupplementaryScores, len(acc))
	for code, a := range acc {
		scores[code] = a.score()
	}
	return scores, nil
}

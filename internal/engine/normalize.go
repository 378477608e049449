package engine

import (
	"math"

	"compass-quiz/internal/domain"
)

const (
	neutralAnswer     = 0.5
	contributionScale = 4.0
	// maxContribution is |Normalize(0)| and |Normalize(1)|.
	maxContribution = 2.0
)

// Normalize maps a raw slider value v in [0, 1] to a contribution in [-2, 2].
// NaN, infinities and out-of-range values fail with INVALID_ANSWER_VALUE.
func Normalize(v float64) (float64, error) {
	return normalize("", v)
}

func normalize(questionID string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
		return 0, domain.NewInvalidAnswerValueError(questionID, v)
	}
	return (v - neutralAnswer) * contributionScale, nil
}

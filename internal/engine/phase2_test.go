package engine_test

import (
	"testing"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"
	"compass-quiz/internal/questionbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSupplementaryAxes(t *testing.T) {
	bank := questionbank.Default()
	answers := domain.Answers{
		"E01":     0.0, // phase-1 answers are ignored here
		"ELGL-01": 1.0, // ELGL-A +1
		"ELGL-02": 0.0, // ELGL-A -1
		"ELGL-03": 0.25,
		"ELGL-05": 0.5,
	}

	scores, err := engine.ScoreSupplementaryAxes("EL-GL", answers, bank)
	require.NoError(t, err)
	assert.Equal(t, domain.SupplementaryScores{
		"ELGL-A": 100,
		"ELGL-B": -50,
		"ELGL-C": 0,
		"ELGL-D": 0,
	}, scores)
}

func TestScoreSupplementaryAxes_EveryAxisPresentWithoutAnswers(t *testing.T) {
	bank := questionbank.Default()
	scores, err := engine.ScoreSupplementaryAxes("ER-GR", domain.Answers{}, bank)
	require.NoError(t, err)
	assert.Equal(t, []string{"ERGR-A", "ERGR-B", "ERGR-C", "ERGR-D"}, scores.SortedCodes())
	for _, v := range scores {
		assert.Equal(t, 0.0, v)
	}
}

func TestScoreSupplementaryAxes_PhaseSequenceErrors(t *testing.T) {
	bank := questionbank.Default()

	_, err := engine.ScoreSupplementaryAxes("", domain.Answers{"ELGL-01": 1}, bank)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodePhaseSequence))

	_, err = engine.ScoreSupplementaryAxes("XX-YY", domain.Answers{}, bank)
	assert.True(t, domain.IsCode(err, domain.CodePhaseSequence))

	_, err = engine.ScoreSupplementaryAxes("EM-GM", domain.Answers{"EMGM-01": 1, "ELGL-01": 1}, bank)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodePhaseSequence))
	assert.Contains(t, err.Error(), "ELGL-01")
}

func TestScoreSupplementaryAxes_InputErrors(t *testing.T) {
	bank := questionbank.Default()

	_, err := engine.ScoreSupplementaryAxes("EM-GM", domain.Answers{"missing": 1}, bank)
	assert.True(t, domain.IsCode(err, domain.CodeUnknownQuestionID))

	_, err = engine.ScoreSupplementaryAxes("EM-GM", domain.Answers{"EMGM-01": -0.5}, bank)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidAnswerValue))
}

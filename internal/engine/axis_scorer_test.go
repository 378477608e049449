package engine_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"
	"compass-quiz/internal/questionbank"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePrimaryAxes_ShortQuizWorkedScenario(t *testing.T) {
	bank := questionbank.Default()
	values := []float64{1.0, 0.5, 0.5, 0.0, 0.5, 1.0, 0.5, 0.5, 0.0, 0.5}

	answers := domain.Answers{}
	for i, id := range questionbank.ShortQuizOrder {
		answers[id] = values[i]
	}

	scores, err := engine.ScorePrimaryAxes(answers, bank)
	require.NoError(t, err)
	assert.Equal(t, -100.0, scores.Economic)
	assert.Equal(t, 0.0, scores.Authority)
	assert.Equal(t, 0.0, scores.Cultural)
	assert.Equal(t, domain.MacroCell("EL-GM"), engine.ClassifyMacroCell(scores.Economic, scores.Authority))
}

func TestScorePrimaryAxes_NeutralAnswersScoreZero(t *testing.T) {
	bank := questionbank.Default()
	answers := domain.Answers{}
	for _, q := range bank.CoreQuestions() {
		answers[q.ID] = 0.5
	}
	for _, q := range bank.Tiebreakers(domain.BoundaryCenterAuth) {
		answers[q.ID] = 0.5
	}

	scores, err := engine.ScorePrimaryAxes(answers, bank)
	require.NoError(t, err)
	assert.Equal(t, domain.PrimaryScores{}, scores)
	assert.Equal(t, domain.MacroCell("EM-GM"), engine.ClassifyMacroCell(scores.Economic, scores.Authority))
}

func TestScorePrimaryAxes_EmptyAnswers(t *testing.T) {
	scores, err := engine.ScorePrimaryAxes(domain.Answers{}, questionbank.Default())
	require.NoError(t, err)
	assert.Equal(t, domain.PrimaryScores{}, scores)
}

func TestScorePrimaryAxes_UnansweredAxisIsZero(t *testing.T) {
	bank := questionbank.Default()
	// E02 agrees in the positive direction, A and C axes are left unanswered.
	scores, err := engine.ScorePrimaryAxes(domain.Answers{"E02": 1.0, "E04": 0.75}, bank)
	require.NoError(t, err)
	assert.Equal(t, 75.0, scores.Economic)
	assert.Equal(t, 0.0, scores.Authority)
	assert.Equal(t, 0.0, scores.Cultural)
}

func TestScorePrimaryAxes_PolarityFollowsAgreeDir(t *testing.T) {
	bank := questionbank.Default()
	// Agreeing with right-leaning items and disagreeing with left-leaning ones must push
	// the economic score positive.
	answers := domain.Answers{"E01": 0.0, "E02": 1.0, "E03": 0.0, "E04": 1.0}
	scores, err := engine.ScorePrimaryAxes(answers, bank)
	require.NoError(t, err)
	assert.Equal(t, 100.0, scores.Economic)
	assert.Equal(t, domain.MacroCell("ER-GM"), engine.ClassifyMacroCell(scores.Economic, scores.Authority))
}

func TestScorePrimaryAxes_IgnoresPhase2Answers(t *testing.T) {
	bank := questionbank.Default()
	scores, err := engine.ScorePrimaryAxes(domain.Answers{"E02": 1.0, "ELGL-01": 0.0}, bank)
	require.NoError(t, err)
	assert.Equal(t, 100.0, scores.Economic)
}

// mapBank serves lookups for hand-built records the TSV loader would reject.
type mapBank struct {
	domain.QuestionBank
	byID map[string]*domain.Question
}

func (b mapBank) Question(id string) (*domain.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

func TestScorePrimaryAxes_SkipsNonPrimaryAxis(t *testing.T) {
	bank := mapBank{byID: map[string]*domain.Question{
		"E01": {ID: "E01", Axis: domain.AxisEconomic, Polarity: 1, Phase: 1, Kind: domain.KindCore},
		"X01": {ID: "X01", Axis: domain.Axis("EMGM-A"), Polarity: 1, Phase: 1, Kind: domain.KindCore},
	}}
	scores, err := engine.ScorePrimaryAxes(domain.Answers{"E01": 1.0, "X01": 0.0}, bank)
	require.NoError(t, err)
	assert.Equal(t, domain.PrimaryScores{Economic: 100}, scores)
}

func TestScorePrimaryAxes_Errors(t *testing.T) {
	bank := questionbank.Default()

	_, err := engine.ScorePrimaryAxes(domain.Answers{"E01": 0.5, "NOPE": 0.5}, bank)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeUnknownQuestionID))
	assert.Contains(t, err.Error(), "NOPE")

	_, err = engine.ScorePrimaryAxes(domain.Answers{"E01": 1.5}, bank)
	require.Error(t, err)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidAnswerValue))
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "E01", domainErr.Context["question_id"])

	_, err = engine.ScorePrimaryAxes(domain.Answers{"E01": math.NaN()}, bank)
	assert.True(t, domain.IsCode(err, domain.CodeInvalidAnswerValue))
}

func TestScorePrimaryAxes_OrderIndependentAndIdempotent(t *testing.T) {
	bank := questionbank.Default()
	rng := rand.New(rand.NewSource(7))

	var ids []string
	for _, q := range bank.CoreQuestions() {
		ids = append(ids, q.ID)
	}
	values := make(map[string]float64, len(ids))
	for _, id := range ids {
		values[id] = rng.Float64()
	}

	build := func(order []string) domain.Answers {
		answers := domain.Answers{}
		for _, id := range order {
			answers[id] = values[id]
		}
		return answers
	}

	permuted := append([]string(nil), ids...)
	rng.Shuffle(len(permuted), func(i, j int) { permuted[i], permuted[j] = permuted[j], permuted[i] })

	first, err := engine.ScorePrimaryAxes(build(ids), bank)
	require.NoError(t, err)
	second, err := engine.ScorePrimaryAxes(build(permuted), bank)
	require.NoError(t, err)
	again, err := engine.ScorePrimaryAxes(build(ids), bank)
	require.NoError(t, err)

	for _, axis := range domain.PrimaryAxes {
		assert.Equal(t, math.Float64bits(first.Get(axis)), math.Float64bits(second.Get(axis)), "axis %s", axis)
		assert.Equal(t, math.Float64bits(first.Get(axis)), math.Float64bits(again.Get(axis)), "axis %s", axis)
	}
}

func TestScorePrimaryAxes_AlwaysInRange(t *testing.T) {
	bank := questionbank.Default()
	core := bank.CoreQuestions()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		answers := domain.Answers{}
		for _, q := range core {
			switch rng.Intn(4) {
			case 0:
				// unanswered
			case 1:
				answers[q.ID] = 0
			case 2:
				answers[q.ID] = 1
			default:
				answers[q.ID] = rng.Float64()
			}
		}
		scores, err := engine.ScorePrimaryAxes(answers, bank)
		require.NoError(t, err)
		for _, axis := range domain.PrimaryAxes {
			v := scores.Get(axis)
			assert.True(t, v >= -100 && v <= 100, "axis %s out of range: %v", axis, v)
		}
	}
}

// tinyBank is a hand-built bank for tests that need precise control over polarity.
func tinyBank(t *testing.T, rows ...string) *questionbank.Bank {
	t.Helper()
	tsv := "id\ttext\tphase\tq_type\taxis\tagree_dir\tmacro_cell\n" + strings.Join(rows, "\n") + "\n"
	bank, err := questionbank.Load(strings.NewReader(tsv))
	require.NoError(t, err)
	return bank
}

func TestScorePrimaryAxes_MixedPolarity(t *testing.T) {
	bank := tinyBank(t,
		"q1\tone\t1\tcore\tauth\t+1\t",
		"q2\ttwo\t1\tcore\tauth\t-1\t",
		"q3\tthree\t1\tcore\tsoc\t+1\t",
	)
	// q1: +1 * 2 = 2, q2: -1 * -1 = 1 -> 3 / 4 * 100 = 75
	scores, err := engine.ScorePrimaryAxes(domain.Answers{"q1": 1.0, "q2": 0.25, "q3": 0.25}, bank)
	require.NoError(t, err)
	assert.Equal(t, 75.0, scores.Authority)
	assert.Equal(t, -50.0, scores.Cultural)
	assert.Equal(t, 0.0, scores.Economic)
}

package engine

import "compass-quiz/internal/domain"

// axisAccumulator folds signed contributions for one axis.
type axisAccumulator struct {
	sum   float64
	count int
}

func (a *axisAccumulator) add(polarity int, contribution float64) {
	a.sum += float64(polarity) * contribution
	a.count++
}

// score normalizes to [-100, 100]; an axis with no answers scores 0.
func (a axisAccumulator) score() float64 {
	if a.count == 0 {
		return 0
	}
	return clamp(a.sum/(float64(a.count)*maxContribution)*100, -100, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScorePrimaryAxes computes economic, authority and cultural scores from every
// answered phase-1 question. Phase-2 answers are skipped. Answers are folded in
// sorted id order so the float sums are identical for any insertion order.
//
// An unanswered axis scores 0, indistinguishable from an exactly balanced one.
func ScorePrimaryAxes(answers domain.Answers, bank domain.QuestionBank) (domain.PrimaryScores, error) {
	acc := map[domain.Axis]*axisAccumulator{
		domain.AxisEconomic:  {},
		domain.AxisAuthority: {},
		domain.AxisCultural:  {},
	}
	for _, id := range answers.SortedIDs() {
		q, ok := bank.Question(id)
		if !ok {
			return domain.PrimaryScores{}, domain.NewUnknownQuestionIDError(id)
		}
		c, err := normalize(id, answers[id])
		if err != nil {
			return domain.PrimaryScores{}, err
		}
		if q.IsPhase2() || !q.Axis.IsPrimary() {
			continue
		}
		acc[q.Axis].add(q.Polarity, c)
	}
	return domain.PrimaryScores{
		Economic:  acc[domain.AxisEconomic].score(),
		Authority: acc[domain.AxisAuthority].score(),
		Cultural:  acc[domain.AxisCultural].score(),
	}, nil
}

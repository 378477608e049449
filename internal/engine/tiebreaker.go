package engine

import (
	"math"

	"compass-quiz/internal/domain"
)

// DefaultTiebreakerMargin is the starting margin around each ±33 boundary.
// Treat it as tunable; see internal/calibration.
const DefaultTiebreakerMargin = 15.0

// boundary pairs a tag with the axis and threshold it watches.
type boundary struct {
	tag       domain.BoundaryTag
	axis      domain.Axis
	threshold float64
}

var boundaries = []boundary{
	{domain.BoundaryLeftCenter, domain.AxisEconomic, -BandThreshold},
	{domain.BoundaryCenterRight, domain.AxisEconomic, BandThreshold},
	{domain.BoundaryLibCenter, domain.AxisAuthority, -BandThreshold},
	{domain.BoundaryCenterAuth, domain.AxisAuthority, BandThreshold},
}

// SelectBoundaries returns every boundary tag whose threshold lies within margin
// (inclusive) of the matching score, in LEFT_CENTER, CENTER_RIGHT, LIB_CENTER,
// CENTER_AUTH order. A negative margin selects nothing.
func SelectBoundaries(economic, authority, margin float64) []domain.BoundaryTag {
	tags := []domain.BoundaryTag{}
	if margin < 0 {
		return tags
	}
	for _, b := range boundaries {
		score := economic
		if b.axis == domain.AxisAuthority {
			score = authority
		}
		if math.Abs(score-b.threshold) <= margin {
			tags = append(tags, b.tag)
		}
	}
	return tags
}

// TiebreakerQuestions collects the bank's tiebreaker questions for tags, tag by
// tag in the given order, without duplicates.
func TiebreakerQuestions(tags []domain.BoundaryTag, bank domain.QuestionBank) []*domain.Question {
	seen := make(map[string]bool)
	var out []*domain.Question
	for _, tag := range tags {
		for _, q := range bank.Tiebreakers(tag) {
			if seen[q.ID] {
				continue
			}
			seen[q.ID] = true
			out = append(out, q)
		}
	}
	return out
}

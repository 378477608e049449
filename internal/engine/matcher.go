package engine

import "compass-quiz/internal/domain"

const (
	primaryWeight       = 0.5
	supplementaryWeight = 1.0
)

// Distance returns the weighted squared distance between a respondent and an
// ideology: half weight on economic and authority, full weight on each of the
// ideology's supplementary axes. A nil supp drops the supplementary terms, which
// is how short quizzes are matched. Codes absent from a non-nil supp count as 0.
// Terms are summed in sorted axis-code order.
func Distance(primary domain.PrimaryScores, supp domain.SupplementaryScores, ideology domain.Ideology) float64 {
	de := primary.Economic - ideology.Economic
	da := primary.Authority - ideology.Authority
	d := primaryWeight*de*de + primaryWeight*da*da
	if supp == nil {
		return d
	}
	for _, code := range ideology.Supplementary.SortedCodes() {
		ds := supp[code] - ideology.Supplementary[code]
		d += supplementaryWeight * ds * ds
	}
	return d
}

// MatchIdeology returns the candidate nearest to the respondent under Distance.
// Exact ties go to the candidate that comes first in catalogue order. An empty
// candidate list fails with NO_CATALOGUE_MATCH for cell.
func MatchIdeology(cell domain.MacroCell, primary domain.PrimaryScores, supp domain.SupplementaryScores, candidates []domain.Ideology) (domain.Ideology, error) {
	if len(candidates) == 0 {
		return domain.Ideology{}, domain.NewNoCatalogueMatchError(cell)
	}
	best := 0
	bestDistance := Distance(primary, supp, candidates[0])
	for i := 1; i < len(candidates); i++ {
		if d := Distance(primary, supp, candidates[i]); d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return candidates[best], nil
}

// Classify runs the classifier and matcher against a catalogue in one step.
func Classify(primary domain.PrimaryScores, supp domain.SupplementaryScores, catalogue domain.Catalogue) (*domain.QuizResult, error) {
	cell := ClassifyMacroCell(primary.Economic, primary.Authority)
	ideology, err := MatchIdeology(cell, primary, supp, catalogue.ForCell(cell))
	if err != nil {
		return nil, err
	}
	return &domain.QuizResult{
		PrimaryScores:       primary,
		MacroCell:           cell,
		SupplementaryScores: supp,
		Ideology:            ideology,
	}, nil
}

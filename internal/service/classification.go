package service

import (
	"context"
	"fmt"
	"math"

	"compass-quiz/internal/catalog"
	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"
)

// ClassificationService classifies a known position without a session and
// exposes the catalogue.
type ClassificationService interface {
	// Classify matches on primary axes only when supp is nil.
	Classify(ctx context.Context, primary domain.PrimaryScores, supp domain.SupplementaryScores) (*domain.QuizResult, error)
	Cell(ctx context.Context, code domain.MacroCell) (*catalog.Cell, error)
	Cells(ctx context.Context) []catalog.Cell
}

type classificationService struct {
	catalogue *catalog.Catalogue
}

func NewClassificationService(catalogue *catalog.Catalogue) ClassificationService {
	return &classificationService{catalogue: catalogue}
}

func validScore(v float64) bool {
	return !math.IsNaN(v) && v >= -100 && v <= 100
}

func (s *classificationService) Classify(_ context.Context, primary domain.PrimaryScores, supp domain.SupplementaryScores) (*domain.QuizResult, error) {
	for _, axis := range domain.PrimaryAxes {
		if v := primary.Get(axis); !validScore(v) {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("%s score must be in [-100, 100]", axis)).
				WithContext("axis", string(axis)).
				WithContext("value", fmt.Sprintf("%v", v))
		}
	}

	if supp != nil {
		cell := engine.ClassifyMacroCell(primary.Economic, primary.Authority)
		known := make(map[string]bool)
		for _, code := range s.catalogue.AxisCodes(cell) {
			known[code] = true
		}
		for _, code := range supp.SortedCodes() {
			if !known[code] {
				return nil, domain.NewInvalidInputError(fmt.Sprintf("axis %s does not belong to macro-cell %s", code, cell)).
					WithContext("axis", code).
					WithContext("macro_cell", string(cell))
			}
			if v := supp[code]; !validScore(v) {
				return nil, domain.NewInvalidInputError(fmt.Sprintf("%s score must be in [-100, 100]", code)).
					WithContext("axis", code).
					WithContext("value", fmt.Sprintf("%v", v))
			}
		}
	}

	return engine.Classify(primary, supp, s.catalogue)
}

func (s *classificationService) Cell(_ context.Context, code domain.MacroCell) (*catalog.Cell, error) {
	cell, ok := s.catalogue.Cell(code)
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("unknown macro-cell %s", code)).
			WithContext("macro_cell", string(code))
	}
	return &cell, nil
}

func (s *classificationService) Cells(_ context.Context) []catalog.Cell {
	return s.catalogue.Cells()
}

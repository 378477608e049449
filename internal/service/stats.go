package service

import (
	"context"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/logger"

	"golang.org/x/sync/singleflight"
)

const ideologyCountsKey = "ideology_counts"

// StatsService reports aggregates over archived results.
type StatsService interface {
	IdeologyCounts(ctx context.Context) (map[string]int, error)
}

type statsService struct {
	results domain.ResultRepository
	sfGroup singleflight.Group // concurrent callers share one aggregate query
}

func NewStatsService(results domain.ResultRepository) StatsService {
	if results == nil {
		logger.Get().Warn("StatsService initialized with nil repository. Service will be no-op.")
		return &noopStatsService{}
	}
	return &statsService{results: results}
}

func (s *statsService) IdeologyCounts(ctx context.Context) (map[string]int, error) {
	res, err, _ := s.sfGroup.Do(ideologyCountsKey, func() (interface{}, error) {
		return s.results.CountByIdeology(ctx)
	})
	if err != nil {
		return nil, domain.NewInternalError("failed to count archived results", err)
	}
	shared := res.(map[string]int)
	counts := make(map[string]int, len(shared))
	for name, n := range shared {
		counts[name] = n
	}
	return counts, nil
}

type noopStatsService struct{}

func (s *noopStatsService) IdeologyCounts(context.Context) (map[string]int, error) {
	return map[string]int{}, nil
}

// Package calibration measures how well a tiebreaker margin protects the
// reference ideologies against noisy short-quiz scores.
package calibration

import (
	"context"
	"fmt"
	"math"
	"sort"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"

	"golang.org/x/sync/errgroup"
)

// Offset is one perturbation of an ideology's (economic, authority) position.
type Offset struct {
	Economic  float64
	Authority float64
}

// Report summarizes one margin over every ideology and offset.
type Report struct {
	Margin float64 `json:"margin"`
	// Samples is the number of perturbed positions evaluated.
	Samples int `json:"samples"`
	// Drifted counts positions that fall outside the ideology's own cell.
	Drifted int `json:"drifted"`
	// Flagged counts positions for which at least one boundary tag fires.
	Flagged int `json:"flagged"`
	// Unprotected counts drifted positions no boundary tag would catch.
	Unprotected int `json:"unprotected"`
	// UnprotectedByCell breaks Unprotected down by the ideology's cell.
	UnprotectedByCell map[domain.MacroCell]int `json:"unprotectedByCell"`
}

// UnprotectedRate is Unprotected over Drifted, or 0 when nothing drifted.
func (r Report) UnprotectedRate() float64 {
	if r.Drifted == 0 {
		return 0
	}
	return float64(r.Unprotected) / float64(r.Drifted)
}

// FlaggedRate is the share of samples that would be sent a tiebreaker.
func (r Report) FlaggedRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.Flagged) / float64(r.Samples)
}

// Grid returns every offset whose components are multiples of step within
// [-radius, radius], including the zero offset.
func Grid(radius, step float64) []Offset {
	if step <= 0 || radius < 0 {
		return []Offset{{}}
	}
	n := int(math.Floor(radius/step + 1e-9))
	offsets := make([]Offset, 0, (2*n+1)*(2*n+1))
	for i := -n; i <= n; i++ {
		for j := -n; j <= n; j++ {
			offsets = append(offsets, Offset{Economic: float64(i) * step, Authority: float64(j) * step})
		}
	}
	return offsets
}

// Evaluate scores every margin concurrently. Reports come back sorted by margin.
// Perturbed positions are clamped to the grid edge.
func Evaluate(ctx context.Context, catalogue domain.Catalogue, margins []float64, offsets []Offset) ([]Report, error) {
	ideologies := catalogue.All()
	if len(ideologies) == 0 {
		return nil, fmt.Errorf("catalogue has no ideologies")
	}
	for _, m := range margins {
		if math.IsNaN(m) || m < 0 {
			return nil, fmt.Errorf("margin %v must be a non-negative number", m)
		}
	}

	reports := make([]Report, len(margins))
	g, ctx := errgroup.WithContext(ctx)
	for i, margin := range margins {
		i, margin := i, margin
		g.Go(func() error {
			report, err := evaluateMargin(ctx, ideologies, margin, offsets)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(reports, func(a, b int) bool { return reports[a].Margin < reports[b].Margin })
	return reports, nil
}

func evaluateMargin(ctx context.Context, ideologies []domain.Ideology, margin float64, offsets []Offset) (Report, error) {
	report := Report{Margin: margin, UnprotectedByCell: make(map[domain.MacroCell]int)}
	for _, ideology := range ideologies {
		if err := ctx.Err(); err != nil {
			return Report{}, err
		}
		for _, off := range offsets {
			e := clamp(ideology.Economic + off.Economic)
			a := clamp(ideology.Authority + off.Authority)
			report.Samples++

			flagged := len(engine.SelectBoundaries(e, a, margin)) > 0
			if flagged {
				report.Flagged++
			}
			if engine.ClassifyMacroCell(e, a) == ideology.MacroCell {
				continue
			}
			report.Drifted++
			if !flagged {
				report.Unprotected++
				report.UnprotectedByCell[ideology.MacroCell]++
			}
		}
	}
	return report, nil
}

func clamp(v float64) float64 {
	return math.Max(-100, math.Min(100, v))
}

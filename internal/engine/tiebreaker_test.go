package engine_test

import (
	"testing"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"
	"compass-quiz/internal/questionbank"

	"github.com/stretchr/testify/assert"
)

func TestSelectBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		economic  float64
		authority float64
		margin    float64
		want      []domain.BoundaryTag
	}{
		{"near left and lib boundaries", -31.4, -27.5, 15, []domain.BoundaryTag{domain.BoundaryLeftCenter, domain.BoundaryLibCenter}},
		{"origin", 0, 0, 15, []domain.BoundaryTag{}},
		{"near right only", 40, 0, 15, []domain.BoundaryTag{domain.BoundaryCenterRight}},
		{"near auth only", 0, 20, 15, []domain.BoundaryTag{domain.BoundaryCenterAuth}},
		{"margin edge is inclusive", -18, 0, 15, []domain.BoundaryTag{domain.BoundaryLeftCenter}},
		{"just outside margin", -17.9, 0, 15, []domain.BoundaryTag{}},
		{"outer edge of left band", -48, 0, 15, []domain.BoundaryTag{domain.BoundaryLeftCenter}},
		{"deep in left band", -49, 0, 15, []domain.BoundaryTag{}},
		{"wide margin catches both economic boundaries", 0, 0, 40,
			[]domain.BoundaryTag{domain.BoundaryLeftCenter, domain.BoundaryCenterRight, domain.BoundaryLibCenter, domain.BoundaryCenterAuth}},
		{"zero margin only on the line", 33, -33, 0, []domain.BoundaryTag{domain.BoundaryCenterRight, domain.BoundaryLibCenter}},
		{"negative margin selects nothing", -33, 33, -1, []domain.BoundaryTag{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.SelectBoundaries(tt.economic, tt.authority, tt.margin))
		})
	}
}

func TestTiebreakerQuestions(t *testing.T) {
	bank := questionbank.Default()

	questions := engine.TiebreakerQuestions([]domain.BoundaryTag{domain.BoundaryLeftCenter, domain.BoundaryLibCenter}, bank)
	var ids []string
	for _, q := range questions {
		assert.Equal(t, domain.KindTiebreaker, q.Kind)
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"T01", "T02", "T03", "T07", "T08", "T09"}, ids)

	assert.Empty(t, engine.TiebreakerQuestions(nil, bank))

	deduped := engine.TiebreakerQuestions([]domain.BoundaryTag{domain.BoundaryCenterAuth, domain.BoundaryCenterAuth}, bank)
	assert.Len(t, deduped, 3)
}

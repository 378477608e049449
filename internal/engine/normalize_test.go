package engine_test

import (
	"math"
	"testing"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"strong disagree", 0, -2},
		{"neutral", 0.5, 0},
		{"strong agree", 1, 2},
		{"mild agree", 0.75, 1},
		{"mild disagree", 0.25, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Normalize(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_RejectsInvalidValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.01, 1.01, 5} {
		_, err := engine.Normalize(v)
		require.Error(t, err, "value %v", v)
		assert.True(t, domain.IsCode(err, domain.CodeInvalidAnswerValue), "value %v: %v", v, err)
	}
}

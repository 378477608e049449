package catalog

import (
	"strings"
	"testing"

	"compass-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	require.Len(t, c.Cells(), len(domain.MacroCells))
	for _, code := range domain.MacroCells {
		cell, ok := c.Cell(code)
		require.True(t, ok, code)
		assert.NotEmpty(t, cell.Label)
		assert.Len(t, cell.Axes, 4, code)
		assert.Len(t, c.ForCell(code), 9, code)
		assert.Len(t, c.AxisCodes(code), 4, code)
		for _, ideology := range c.ForCell(code) {
			assert.Equal(t, code, ideology.MacroCell, ideology.Name)
		}
	}
	assert.Len(t, c.All(), 81)

	centre := c.ForCell("EM-GM")
	require.NotEmpty(t, centre)
	assert.Equal(t, "Centrism", centre[0].Name)
	assert.Zero(t, centre[0].Economic)
	assert.Zero(t, centre[0].Authority)
}

func TestForCell_ReturnsCopy(t *testing.T) {
	c := Default()
	first := c.ForCell("EL-GL")
	first[0].Name = "mutated"
	assert.NotEqual(t, "mutated", c.ForCell("EL-GL")[0].Name)

	assert.Nil(t, c.ForCell("XX-YY"))
	assert.Nil(t, c.AxisCodes("XX-YY"))
}

func TestLoad(t *testing.T) {
	doc := `
cells:
  - code: EM-GM
    label: Centre
    axes:
      - {code: EMGM-A, name: Pragmatism}
    ideologies:
      - {name: Centrism, economic: 0, authority: 0, supplementary: {EMGM-A: 10}}
      - {name: Radical Centrism, economic: 5, authority: -5, supplementary: {EMGM-A: 80}}
`
	c, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"EMGM-A"}, c.AxisCodes("EM-GM"))

	ideologies := c.ForCell("EM-GM")
	require.Len(t, ideologies, 2)
	assert.Equal(t, domain.Ideology{
		Name:          "Radical Centrism",
		MacroCell:     "EM-GM",
		Economic:      5,
		Authority:     -5,
		Supplementary: domain.SupplementaryScores{"EMGM-A": 80},
	}, ideologies[1])
	assert.Empty(t, c.ForCell("EL-GL"))
}

func TestParse_Rejects(t *testing.T) {
	cell := func(body string) string {
		return "cells:\n  - code: EM-GM\n    label: Centre\n    axes:\n      - {code: EMGM-A, name: A}\n    ideologies:\n" + body
	}
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"not yaml", "cells: [", "decode catalogue"},
		{"unknown cell", "cells:\n  - code: XX-GM\n", "unknown macro-cell"},
		{"duplicate cell", "cells:\n  - code: EM-GM\n  - code: EM-GM\n", "listed twice"},
		{"axis with wrong prefix", "cells:\n  - code: EM-GM\n    axes:\n      - {code: ELGL-A, name: A}\n", "must start with EMGM-"},
		{"nameless ideology", cell("      - {economic: 0, authority: 0, supplementary: {EMGM-A: 0}}\n"), "has no name"},
		{"duplicate name", cell("      - {name: X, economic: 0, authority: 0, supplementary: {EMGM-A: 0}}\n      - {name: X, economic: 1, authority: 0, supplementary: {EMGM-A: 0}}\n"), "listed in both"},
		{"outside its cell", cell("      - {name: X, economic: -50, authority: 0, supplementary: {EMGM-A: 0}}\n"), "classifies as EL-GM"},
		{"missing supplementary value", cell("      - {name: X, economic: 0, authority: 0, supplementary: {}}\n"), "has 0 supplementary values"},
		{"unknown supplementary axis", cell("      - {name: X, economic: 0, authority: 0, supplementary: {EMGM-B: 0}}\n"), "unknown axis"},
		{"supplementary out of range", cell("      - {name: X, economic: 0, authority: 0, supplementary: {EMGM-A: 101}}\n"), "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

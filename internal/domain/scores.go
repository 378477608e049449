package domain

import "sort"

// Answers maps a question id to a raw slider value in [0, 1].
// Unanswered questions are absent, never zero.
type Answers map[string]float64

// SortedIDs returns the answered question ids in lexical order.
func (a Answers) SortedIDs() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns an independent copy.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for id, v := range a {
		out[id] = v
	}
	return out
}

// PrimaryScores holds one normalized score in [-100, 100] per primary axis.
type PrimaryScores struct {
	Economic  float64 `json:"economic"`
	Authority float64 `json:"authority"`
	Cultural  float64 `json:"cultural"`
}

// Get returns the score for a primary axis.
func (p PrimaryScores) Get(axis Axis) float64 {
	switch axis {
	case AxisEconomic:
		return p.Economic
	case AxisAuthority:
		return p.Authority
	case AxisCultural:
		return p.Cultural
	}
	return 0
}

// SupplementaryScores maps a supplementary axis code to its score.
type SupplementaryScores map[string]float64

// SortedCodes returns the axis codes in lexical order.
func (s SupplementaryScores) SortedCodes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MacroCell is one of nine coarse regions, economic band first (e.g. "EM-GL").
type MacroCell string

const (
	EconomicLeft   = "EL"
	EconomicMiddle = "EM"
	EconomicRight  = "ER"

	AuthorityGL = "GL"
	AuthorityGM = "GM"
	AuthorityGR = "GR"
)

// MacroCells lists the nine cells in grid order.
var MacroCells = []MacroCell{
	"EL-GL", "EL-GM", "EL-GR",
	"EM-GL", "EM-GM", "EM-GR",
	"ER-GL", "ER-GM", "ER-GR",
}

// NewMacroCell concatenates an economic and an authority band.
func NewMacroCell(economicBand, authorityBand string) MacroCell {
	return MacroCell(economicBand + "-" + authorityBand)
}

// Valid reports whether c is one of the nine defined codes.
func (c MacroCell) Valid() bool {
	for _, known := range MacroCells {
		if c == known {
			return true
		}
	}
	return false
}

// Ideology is a static reference point in primary + supplementary space.
type Ideology struct {
	Name          string              `json:"name" yaml:"name"`
	MacroCell     MacroCell           `json:"macro_cell" yaml:"-"`
	Economic      float64             `json:"economic" yaml:"economic"`
	Authority     float64             `json:"authority" yaml:"authority"`
	Supplementary SupplementaryScores `json:"supplementary" yaml:"supplementary"`
}

// Catalogue exposes the per-cell ideology reference vectors.
type Catalogue interface {
	// ForCell returns the cell's ideologies in catalogue order.
	ForCell(cell MacroCell) []Ideology
	// AxisCodes returns the supplementary axis codes of a cell in order.
	AxisCodes(cell MacroCell) []string
	// All returns every ideology, cell by cell in catalogue order.
	All() []Ideology
}

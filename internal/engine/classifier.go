package engine

import "compass-quiz/internal/domain"

// BandThreshold separates the center band from the outer bands on both axes.
// Values exactly at ±BandThreshold stay in the center band.
const BandThreshold = 33.0

// EconomicBand buckets an economic score into EL, EM or ER.
func EconomicBand(e float64) string {
	switch {
	case e < -BandThreshold:
		return domain.EconomicLeft
	case e > BandThreshold:
		return domain.EconomicRight
	default:
		return domain.EconomicMiddle
	}
}

// AuthorityBand buckets an authority score into GL (above +33), GR (below -33) or GM.
func AuthorityBand(a float64) string {
	switch {
	case a > BandThreshold:
		return domain.AuthorityGL
	case a < -BandThreshold:
		return domain.AuthorityGR
	default:
		return domain.AuthorityGM
	}
}

// ClassifyMacroCell returns the macro-cell for an economic and authority score.
// It is total: every pair, including NaN, maps to one of the nine cells
// (NaN fails both strict comparisons and lands in the center band).
func ClassifyMacroCell(economic, authority float64) domain.MacroCell {
	return domain.NewMacroCell(EconomicBand(economic), AuthorityBand(authority))
}

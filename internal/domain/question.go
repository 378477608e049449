package domain

import "strings"

// Axis identifies the dimension a question scores. Primary axes are fixed;
// supplementary axes are codes such as "ELGL-A" scoped to one macro-cell.
type Axis string

const (
	AxisEconomic  Axis = "economic"
	AxisAuthority Axis = "authority"
	AxisCultural  Axis = "cultural"
)

// PrimaryAxes lists the phase-1 axes in scoring order.
var PrimaryAxes = []Axis{AxisEconomic, AxisAuthority, AxisCultural}

// IsPrimary reports whether the axis is one of economic, authority, cultural.
func (a Axis) IsPrimary() bool {
	switch a {
	case AxisEconomic, AxisAuthority, AxisCultural:
		return true
	}
	return false
}

// QuestionKind distinguishes core questions from follow-ups.
type QuestionKind string

const (
	KindCore       QuestionKind = "core"
	KindTiebreaker QuestionKind = "tiebreaker"
	KindRefine     QuestionKind = "refine"
)

// BoundaryTag names a classification boundary a tiebreaker question probes.
type BoundaryTag string

const (
	BoundaryLeftCenter  BoundaryTag = "LEFT_CENTER"
	BoundaryCenterRight BoundaryTag = "CENTER_RIGHT"
	BoundaryLibCenter   BoundaryTag = "LIB_CENTER"
	BoundaryCenterAuth  BoundaryTag = "CENTER_AUTH"
)

// BoundaryTags lists every tag in selection order.
var BoundaryTags = []BoundaryTag{BoundaryLeftCenter, BoundaryCenterRight, BoundaryLibCenter, BoundaryCenterAuth}

// Valid reports whether t is a known boundary tag.
func (t BoundaryTag) Valid() bool {
	for _, known := range BoundaryTags {
		if t == known {
			return true
		}
	}
	return false
}

// Question is an immutable question bank record.
type Question struct {
	ID       string
	Text     string
	Phase    int
	Kind     QuestionKind
	Axis     Axis
	Polarity int // +1 when agreement pushes the axis positive, -1 otherwise

	// MacroCell is set for phase-2 questions.
	MacroCell MacroCell
	// Boundary is set for tiebreaker questions.
	Boundary BoundaryTag
}

// IsPhase2 reports whether the question belongs to a macro-cell follow-up set.
func (q *Question) IsPhase2() bool {
	return q.Phase == 2
}

// SupplementaryPrefix returns the axis-code prefix used by phase-2 questions of a cell,
// e.g. "ELGL" for EL-GL.
func SupplementaryPrefix(cell MacroCell) string {
	return strings.ReplaceAll(string(cell), "-", "")
}

// QuestionBank is the read-only, fully loaded question catalogue.
type QuestionBank interface {
	// Question returns the record for id and whether it exists.
	Question(id string) (*Question, bool)
	// Questions returns every record in bank order.
	Questions() []*Question
	// CoreQuestions returns phase-1 core records in bank order.
	CoreQuestions() []*Question
	// Tiebreakers returns phase-1 tiebreaker records carrying tag, in bank order.
	Tiebreakers(tag BoundaryTag) []*Question
	// Phase2Questions returns the follow-up records scoped to cell, in bank order.
	Phase2Questions(cell MacroCell) []*Question
}

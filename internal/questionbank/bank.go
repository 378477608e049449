// Package questionbank loads the tab-separated question bank and serves the
// read-only lookups the classification engine needs.
package questionbank

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"compass-quiz/internal/domain"
)

//go:embed questions.tsv
var defaultBank []byte

// ShortQuizOrder is the documented question order of the ten-question short quiz.
var ShortQuizOrder = []string{"E01", "A01", "C01", "E02", "A02", "E03", "C02", "A03", "E04", "C03"}

var requiredColumns = []string{"id", "text", "phase", "q_type", "axis", "agree_dir", "macro_cell"}

var primaryAxisCodes = map[string]domain.Axis{
	"econ":      domain.AxisEconomic,
	"economic":  domain.AxisEconomic,
	"auth":      domain.AxisAuthority,
	"authority": domain.AxisAuthority,
	"soc":       domain.AxisCultural,
	"cultural":  domain.AxisCultural,
}

// Bank is an immutable, fully loaded question bank.
type Bank struct {
	questions   []*domain.Question
	byID        map[string]*domain.Question
	tiebreakers map[domain.BoundaryTag][]*domain.Question
	phase2      map[domain.MacroCell][]*domain.Question
}

var _ domain.QuestionBank = (*Bank)(nil)

// Default parses the embedded question bank. The embedded data is validated by
// the package tests, so a failure here is a build defect.
func Default() *Bank {
	b, err := Load(bytes.NewReader(defaultBank))
	if err != nil {
		panic(fmt.Sprintf("questionbank: embedded bank is invalid: %v", err))
	}
	return b
}

// Load reads a TSV question bank with a header row. Rows are kept in file order.
func Load(r io.Reader) (*Bank, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("question bank is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("question bank header is missing column %q", name)
		}
	}

	b := &Bank{
		byID:        make(map[string]*domain.Question),
		tiebreakers: make(map[domain.BoundaryTag][]*domain.Question),
		phase2:      make(map[domain.MacroCell][]*domain.Question),
	}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read question bank: %w", err)
		}
		line, _ := reader.FieldPos(0)
		field := func(name string) string {
			i := cols[name]
			if i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		q, err := parseRow(field)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate question id %q", line, q.ID)
		}
		b.add(q)
	}
	if len(b.questions) == 0 {
		return nil, fmt.Errorf("question bank has no questions")
	}
	return b, nil
}

func parseRow(field func(string) string) (*domain.Question, error) {
	q := &domain.Question{
		ID:   field("id"),
		Text: field("text"),
		Kind: domain.QuestionKind(field("q_type")),
	}
	if q.ID == "" {
		return nil, fmt.Errorf("missing id")
	}

	switch field("phase") {
	case "1":
		q.Phase = 1
	case "2":
		q.Phase = 2
	default:
		return nil, fmt.Errorf("question %s: phase must be 1 or 2, got %q", q.ID, field("phase"))
	}

	switch field("agree_dir") {
	case "+1", "1":
		q.Polarity = 1
	case "-1":
		q.Polarity = -1
	default:
		return nil, fmt.Errorf("question %s: agree_dir must be +1 or -1, got %q", q.ID, field("agree_dir"))
	}

	axis := field("axis")
	tag := field("macro_cell")
	switch q.Kind {
	case domain.KindCore, domain.KindTiebreaker:
		if q.Phase != 1 {
			return nil, fmt.Errorf("question %s: %s questions must be phase 1", q.ID, q.Kind)
		}
		primary, ok := primaryAxisCodes[strings.ToLower(axis)]
		if !ok {
			return nil, fmt.Errorf("question %s: unknown primary axis %q", q.ID, axis)
		}
		q.Axis = primary
		if q.Kind == domain.KindTiebreaker {
			q.Boundary = domain.BoundaryTag(tag)
			if !q.Boundary.Valid() {
				return nil, fmt.Errorf("question %s: unknown boundary tag %q", q.ID, tag)
			}
		}
	case domain.KindRefine:
		if q.Phase != 2 {
			return nil, fmt.Errorf("question %s: refine questions must be phase 2", q.ID)
		}
		q.MacroCell = domain.MacroCell(tag)
		if !q.MacroCell.Valid() {
			return nil, fmt.Errorf("question %s: unknown macro-cell %q", q.ID, tag)
		}
		prefix := domain.SupplementaryPrefix(q.MacroCell) + "-"
		if !strings.HasPrefix(axis, prefix) || len(axis) == len(prefix) {
			return nil, fmt.Errorf("question %s: axis %q does not belong to macro-cell %s", q.ID, axis, q.MacroCell)
		}
		q.Axis = domain.Axis(axis)
	default:
		return nil, fmt.Errorf("question %s: unknown q_type %q", q.ID, q.Kind)
	}
	return q, nil
}

func (b *Bank) add(q *domain.Question) {
	b.questions = append(b.questions, q)
	b.byID[q.ID] = q
	switch {
	case q.Kind == domain.KindTiebreaker:
		b.tiebreakers[q.Boundary] = append(b.tiebreakers[q.Boundary], q)
	case q.IsPhase2():
		b.phase2[q.MacroCell] = append(b.phase2[q.MacroCell], q)
	}
}

// Question implements domain.QuestionBank.
func (b *Bank) Question(id string) (*domain.Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Questions implements domain.QuestionBank.
func (b *Bank) Questions() []*domain.Question {
	out := make([]*domain.Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// CoreQuestions implements domain.QuestionBank.
func (b *Bank) CoreQuestions() []*domain.Question {
	var out []*domain.Question
	for _, q := range b.questions {
		if q.Kind == domain.KindCore {
			out = append(out, q)
		}
	}
	return out
}

// Tiebreakers implements domain.QuestionBank.
func (b *Bank) Tiebreakers(tag domain.BoundaryTag) []*domain.Question {
	return append([]*domain.Question(nil), b.tiebreakers[tag]...)
}

// Phase2Questions implements domain.QuestionBank.
func (b *Bank) Phase2Questions(cell domain.MacroCell) []*domain.Question {
	return append([]*domain.Question(nil), b.phase2[cell]...)
}

// Package catalog holds the static ideology reference vectors, one variant per
// macro-cell, loaded once from embedded YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"io"

	"compass-quiz/internal/domain"
	"compass-quiz/internal/engine"

	"gopkg.in/yaml.v3"
)

//go:embed ideologies.yaml
var defaultCatalogue []byte

// AxisInfo describes one supplementary axis of a cell.
type AxisInfo struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Cell is one macro-cell entry with its axes and reference ideologies.
type Cell struct {
	Code       domain.MacroCell  `yaml:"code" json:"code"`
	Label      string            `yaml:"label" json:"label"`
	Axes       []AxisInfo        `yaml:"axes" json:"axes"`
	Ideologies []domain.Ideology `yaml:"ideologies" json:"ideologies"`
}

type document struct {
	Cells []Cell `yaml:"cells"`
}

// Catalogue is an immutable, validated ideology catalogue.
type Catalogue struct {
	cells []Cell
	index map[domain.MacroCell]int
}

var _ domain.Catalogue = (*Catalogue)(nil)

// Default parses the embedded catalogue. The embedded data is validated by the
// package tests, so a failure here is a build defect.
func Default() *Catalogue {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalogue is invalid: %v", err))
	}
	return c
}

// Load reads a catalogue document from r.
func Load(r io.Reader) (*Catalogue, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalogue: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML catalogue document.
func Parse(data []byte) (*Catalogue, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalogue: %w", err)
	}

	c := &Catalogue{index: make(map[domain.MacroCell]int, len(doc.Cells))}
	names := make(map[string]domain.MacroCell)
	for _, cell := range doc.Cells {
		if !cell.Code.Valid() {
			return nil, fmt.Errorf("unknown macro-cell %q", cell.Code)
		}
		if _, dup := c.index[cell.Code]; dup {
			return nil, fmt.Errorf("macro-cell %s listed twice", cell.Code)
		}
		codes := make(map[string]bool, len(cell.Axes))
		prefix := domain.SupplementaryPrefix(cell.Code) + "-"
		for _, axis := range cell.Axes {
			if len(axis.Code) <= len(prefix) || axis.Code[:len(prefix)] != prefix {
				return nil, fmt.Errorf("%s: axis code %q must start with %s", cell.Code, axis.Code, prefix)
			}
			codes[axis.Code] = true
		}
		for i := range cell.Ideologies {
			ideology := &cell.Ideologies[i]
			ideology.MacroCell = cell.Code
			if ideology.Name == "" {
				return nil, fmt.Errorf("%s: ideology #%d has no name", cell.Code, i+1)
			}
			if other, dup := names[ideology.Name]; dup {
				return nil, fmt.Errorf("ideology %q listed in both %s and %s", ideology.Name, other, cell.Code)
			}
			names[ideology.Name] = cell.Code
			if got := engine.ClassifyMacroCell(ideology.Economic, ideology.Authority); got != cell.Code {
				return nil, fmt.Errorf("%s: ideology %q sits at (%v, %v) which classifies as %s",
					cell.Code, ideology.Name, ideology.Economic, ideology.Authority, got)
			}
			if len(ideology.Supplementary) != len(codes) {
				return nil, fmt.Errorf("%s: ideology %q has %d supplementary values, want %d",
					cell.Code, ideology.Name, len(ideology.Supplementary), len(codes))
			}
			for code, v := range ideology.Supplementary {
				if !codes[code] {
					return nil, fmt.Errorf("%s: ideology %q uses unknown axis %q", cell.Code, ideology.Name, code)
				}
				if v < -100 || v > 100 {
					return nil, fmt.Errorf("%s: ideology %q axis %s value %v out of range", cell.Code, ideology.Name, code, v)
				}
			}
		}
		c.index[cell.Code] = len(c.cells)
		c.cells = append(c.cells, cell)
	}
	return c, nil
}

// Cell returns the full entry for a macro-cell.
func (c *Catalogue) Cell(code domain.MacroCell) (Cell, bool) {
	i, ok := c.index[code]
	if !ok {
		return Cell{}, false
	}
	return c.cells[i], true
}

// Cells returns every cell in catalogue order.
func (c *Catalogue) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// ForCell implements domain.Catalogue.
func (c *Catalogue) ForCell(code domain.MacroCell) []domain.Ideology {
	cell, ok := c.Cell(code)
	if !ok {
		return nil
	}
	out := make([]domain.Ideology, len(cell.Ideologies))
	copy(out, cell.Ideologies)
	return out
}

// AxisCodes implements domain.Catalogue.
func (c *Catalogue) AxisCodes(code domain.MacroCell) []string {
	cell, ok := c.Cell(code)
	if !ok {
		return nil
	}
	codes := make([]string, len(cell.Axes))
	for i, axis := range cell.Axes {
		codes[i] = axis.Code
	}
	return codes
}

// All implements domain.Catalogue.
func (c *Catalogue) All() []domain.Ideology {
	var out []domain.Ideology
	for _, cell := range c.cells {
		out = append(out, cell.Ideologies...)
	}
	return out
}

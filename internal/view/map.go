// Package view draws the ownership map of a sweep, either as plain text or in
// an interactive terminal screen.
package view

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode"

	"github.com/katalvlaran/lvlarea/geom"
	"github.com/katalvlaran/lvlarea/gridgraph"
	"github.com/katalvlaran/lvlarea/region"
)

// ErrNilAnalysis is returned when Build is given no analysis.
var ErrNilAnalysis = errors.New("view: nil analysis")

const (
	symbols = "abcdefghijklmnopqrstuvwxyz"
	tieRune = '.'
)

// Kind classifies one cell of the map.
type Kind uint8

const (
	// KindTie is a cell equidistant from two or more points.
	KindTie Kind = iota
	// KindOwned is a cell with a unique nearest point.
	KindOwned
	// KindPoint is the cell of an input point that owns itself.
	KindPoint
)

// Glyph is one drawn cell.
type Glyph struct {
	Rune     rune
	Kind     Kind
	Owner    int // index into Map.Points, -1 for ties
	Infinite bool
	Largest  bool
}

// Entry is one legend line.
type Entry struct {
	Symbol   rune
	Point    geom.Coordinate
	Area     uint64
	Infinite bool
	Largest  bool
}

// Map is a rendered sweep. Rows[y][x] is box cell (Box.Min.X+x, Box.Min.Y+y).
type Map struct {
	Box    geom.Box
	Points []geom.Coordinate
	Rows   [][]Glyph
	Legend []Entry

	Found bool
	Area  uint64
	Owner geom.Coordinate
}

// Symbol returns the letter used for the point at index i. Letters repeat
// after 26 points.
func Symbol(i int) rune {
	return rune(symbols[i%len(symbols)])
}

// Build turns an analysis recorded WithLabels into a Map.
func Build(a *region.Analysis) (*Map, error) {
	if a == nil {
		return nil, ErrNilAnalysis
	}
	gg, err := a.Grid()
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	m := &Map{Box: a.Box, Points: a.Points}
	m.Owner, m.Area, m.Found = a.Largest()

	m.Rows = make([][]Glyph, gg.Height)
	for y := 0; y < gg.Height; y++ {
		row := make([]Glyph, gg.Width)
		for x := 0; x < gg.Width; x++ {
			row[x] = m.glyph(a, gg, x, y)
		}
		m.Rows[y] = row
	}

	seen := make(map[geom.Coordinate]bool, len(a.Points))
	for i, p := range a.Points {
		if seen[p] {
			continue
		}
		seen[p] = true
		m.Legend = append(m.Legend, Entry{
			Symbol:   unicode.ToUpper(Symbol(i)),
			Point:    p,
			Area:     a.Owned[p],
			Infinite: a.IsInfinite(p),
			Largest:  m.Found && p == m.Owner,
		})
	}
	return m, nil
}

func (m *Map) glyph(a *region.Analysis, gg *gridgraph.GridGraph, x, y int) Glyph {
	label := gg.Label(x, y)
	if label == gridgraph.Unowned {
		return Glyph{Rune: tieRune, Kind: KindTie, Owner: gridgraph.Unowned}
	}
	p := a.Points[label]
	g := Glyph{
		Rune:     Symbol(label),
		Kind:     KindOwned,
		Owner:    label,
		Infinite: a.IsInfinite(p),
		Largest:  m.Found && p == m.Owner,
	}
	if p == geom.C(m.Box.Min.X+x, m.Box.Min.Y+y) {
		g.Kind = KindPoint
		g.Rune = unicode.ToUpper(g.Rune)
	}
	return g
}

// Render writes the map as text, one line per row, optionally followed by the
// legend and the result line.
func (m *Map) Render(w io.Writer, legend bool) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Rows {
		for _, g := range row {
			bw.WriteRune(g.Rune)
		}
		bw.WriteByte('\n')
	}
	if legend {
		bw.WriteByte('\n')
		for _, e := range m.Legend {
			fmt.Fprintf(bw, "%c %s %s\n", e.Symbol, e.Point, e.describe())
		}
		fmt.Fprintln(bw, m.Summary())
	}
	return bw.Flush()
}

// Summary is the one-line result shown under the map.
func (m *Map) Summary() string {
	if !m.Found {
		return "no finite region"
	}
	return fmt.Sprintf("largest finite area: %d (owner %s)", m.Area, m.Owner)
}

func (e Entry) describe() string {
	switch {
	case e.Infinite:
		return "infinite"
	case e.Largest:
		return fmt.Sprintf("area %d largest", e.Area)
	default:
		return fmt.Sprintf("area %d", e.Area)
	}
}

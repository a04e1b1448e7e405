package hfont

import (
	"fmt"
	"sort"
)

// Point is a point in Hershey design space. Units are abstract "design
// units", with y growing downwards (plotter convention).
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Stroke is a single pen-down polyline segment of a glyph. Consecutive
// strokes of a glyph are separated by pen-up movements, i.e. no line is
// drawn between the last point of one stroke and the first point of the
// next.
type Stroke []Point

// Glyph is one decoded stroke-font glyph.
//
// Left and Right are the side bearings: signed horizontal offsets relative
// to the glyph origin. A composer shifts the pen left by Left before
// placing the strokes and advances it by Right afterwards.
//
// Vertices is the vertex count as declared in the glyph's header record.
// The record encodes Vertices−1 coordinate pairs (the first "vertex" slot
// holds the bearings).
type Glyph struct {
	ID       int
	Left     int
	Right    int
	Vertices int
	Strokes  []Stroke
}

// IsEmpty is true for glyphs without any pen-down geometry. Such glyphs are
// legal; they advance the pen without producing visible output.
func (g Glyph) IsEmpty() bool {
	return len(g.Strokes) == 0
}

func (g Glyph) String() string {
	return fmt.Sprintf("glyph %d (L=%d R=%d, %d strokes)", g.ID, g.Left, g.Right, len(g.Strokes))
}

// Font is a table of glyphs, keyed by glyph ID. IDs are sparse; there is no
// requirement for them to be contiguous. A Font is built once by ParseFont
// and is read-only afterwards, so it may be shared between concurrent
// composer runs without locking.
type Font struct {
	glyphs map[int]Glyph
}

// Glyph looks up a glyph by its ID.
func (f *Font) Glyph(id int) (Glyph, bool) {
	g, ok := f.glyphs[id]
	return g, ok
}

// GlyphCount returns the number of glyphs in the table.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// GlyphIDs returns all glyph IDs of the table, in ascending order.
func (f *Font) GlyphIDs() []int {
	ids := make([]int, 0, len(f.glyphs))
	for id := range f.glyphs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// CharMap maps ASCII characters to glyph IDs. It is built once by
// ParseCharMap and is read-only afterwards.
type CharMap struct {
	m map[rune]int
}

// GlyphID looks up the glyph ID for a character.
func (cm *CharMap) GlyphID(ch rune) (int, bool) {
	id, ok := cm.m[ch]
	return id, ok
}

// Len returns the number of mapped characters.
func (cm *CharMap) Len() int {
	return len(cm.m)
}

// Codes returns all mapped character codes, in ascending order.
func (cm *CharMap) Codes() []rune {
	codes := make([]rune, 0, len(cm.m))
	for ch := range cm.m {
		codes = append(codes, ch)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Diagnostic records a non-fatal event during parsing, e.g. a malformed
// glyph header or an unreadable mapping token. Loaders collect diagnostics
// and return them alongside the parsed table; how to surface them is the
// caller's business.
type Diagnostic struct {
	Line    int // 1-based input line, or 0 if not line-related
	Message string
}

func (d Diagnostic) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

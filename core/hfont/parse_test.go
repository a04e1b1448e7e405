package hfont

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// Glyph 1 of the Hershey "futural" font (a simplex 'A'): 9 vertices, i.e.
// one bearing pair plus 8 coordinate pairs, two of them pen-ups.
const glyphA = "    1  9MWRMNV RRMVV RPSTS"

func TestDecodeHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	font, diags := ParseFont([]byte(glyphA))
	assert.Empty(t, diags)
	assert.Equal(t, 1, font.GlyphCount())
	g, ok := font.Glyph(1)
	assert.True(t, ok)
	assert.Equal(t, -5, g.Left)  // 'M'
	assert.Equal(t, 5, g.Right)  // 'W'
	assert.Equal(t, 9, g.Vertices)
	assert.Equal(t, []Stroke{
		{{0, -5}, {-4, 4}},
		{{0, -5}, {4, 4}},
		{{-2, 1}, {2, 1}},
	}, g.Strokes)
}

func TestDecodeSinglePenUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	// ID=1, 2 vertices, both bearings 'R' (=0), a single pen-up pair.
	// A pen-up without preceding points yields no strokes at all.
	font, diags := ParseFont([]byte("    1  2RR R"))
	assert.Empty(t, diags)
	g, ok := font.Glyph(1)
	assert.True(t, ok)
	assert.Equal(t, Glyph{ID: 1, Left: 0, Right: 0, Vertices: 2}, g)
	assert.True(t, g.IsEmpty())
}

func TestContinuationLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	// The same record once unbroken and once wrapped onto 3 physical
	// lines. How many lines belong to a record is decided by length
	// arithmetic alone, so both must decode identically.
	unbroken := "    2 16MWOMOV ROMSMUNUPSQ ROQSQURUUSVOV"
	wrapped := "    2 16MWOMOV RO\nMSMUNUPSQ ROQS\nQURUUSVOV"
	f1, diags := ParseFont([]byte(unbroken))
	assert.Empty(t, diags)
	f2, diags := ParseFont([]byte(wrapped))
	assert.Empty(t, diags)
	g1, ok := f1.Glyph(2)
	assert.True(t, ok)
	g2, ok := f2.Glyph(2)
	assert.True(t, ok)
	assert.Equal(t, g1, g2)
	assert.Equal(t, 3, len(g1.Strokes))
}

func TestPairLimitLeavesLeftovers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	// 3 vertices = 2 coordinate pairs; the 4 trailing characters on the
	// header line must not be decoded into the glyph.
	font, diags := ParseFont([]byte("   12  3RRABCDWXYZ"))
	assert.Empty(t, diags)
	g, ok := font.Glyph(12)
	assert.True(t, ok)
	assert.Equal(t, []Stroke{
		{{'A' - 'R', 'B' - 'R'}, {'C' - 'R', 'D' - 'R'}},
	}, g.Strokes)
}

func TestVertexCountMatchesDecodedPairs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	data := glyphA + "\n    2 16MWOMOV ROMSMUNUPSQ ROQSQURUUSVOV\n"
	font, diags := ParseFont([]byte(data))
	assert.Empty(t, diags)
	for _, id := range font.GlyphIDs() {
		g, _ := font.Glyph(id)
		points := 0
		for _, s := range g.Strokes {
			points += len(s)
		}
		breaks := len(g.Strokes) - 1
		assert.Equal(t, g.Vertices-1, points+breaks, "glyph %d", id)
	}
}

func TestShortLinesAreFiller(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	data := "\n   999\n" + glyphA + "\n\n"
	font, diags := ParseFont([]byte(data))
	assert.Empty(t, diags) // short lines are skipped without a diagnostic
	assert.Equal(t, 1, font.GlyphCount())
}

func TestMalformedHeaderIsReportedAndSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	data := "ABCDE  3RRXYXY\n" + glyphA
	font, diags := ParseFont([]byte(data))
	assert.Len(t, diags, 1)
	assert.Equal(t, 1, diags[0].Line)
	assert.Contains(t, diags[0].Message, "glyph ID")
	assert.Equal(t, 1, font.GlyphCount()) // the rest of the file still loads
}

func TestBadVertexCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	font, diags := ParseFont([]byte("    7 xxRRABCD"))
	assert.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "vertex count")
	assert.Equal(t, 0, font.GlyphCount())
}

func TestDuplicateIDOverwrites(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	data := "    5  2RRAB\n    5  2RRCD"
	font, _ := ParseFont([]byte(data))
	g, ok := font.Glyph(5)
	assert.True(t, ok)
	assert.Equal(t, []Stroke{{{'C' - 'R', 'D' - 'R'}}}, g.Strokes)
}

func TestParseIsDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	data := []byte(glyphA + "\n    2 16MWOMOV ROMSMUNUPSQ ROQSQURUUSVOV\n")
	f1, _ := ParseFont(data)
	f2, _ := ParseFont(data)
	assert.Equal(t, f1.GlyphIDs(), f2.GlyphIDs())
	for _, id := range f1.GlyphIDs() {
		g1, _ := f1.Glyph(id)
		g2, _ := f2.Glyph(id)
		assert.Equal(t, g1, g2)
	}
}

func TestLoadFontFromFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	font, diags, err := LoadFont("testdata/futural.dat")
	if err != nil {
		t.Fatal(err)
	}
	assert.Empty(t, diags)
	assert.Equal(t, 3, font.GlyphCount())
	_, ok := font.Glyph(1)
	assert.True(t, ok)
}

func TestLoadFontMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "hershey.font")
	defer teardown()
	//
	_, _, err := LoadFont("testdata/no-such-file.dat")
	assert.Error(t, err)
}

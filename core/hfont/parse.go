package hfont

import (
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/hershey/core"
)

// The Hershey distribution format packs signed numbers as printable
// characters, offset from 'R'. 'R' itself decodes to 0, 'J' to -8, 'Z'
// to +8, and so on.
const origin = 'R'

// Layout of a glyph header record:
//
//	columns 0–4   glyph ID, right-justified decimal
//	columns 5–7   vertex count N, decimal
//	column  8     left bearing, 'R'-offset encoded
//	column  9     right bearing, 'R'-offset encoded
//	columns 10–   coordinate pair data, possibly wrapping onto
//	              continuation lines
const (
	colCountEnd  = 8  // vertex count is columns 5–7
	colLeft      = 8  // left bearing character
	colRight     = 9  // right bearing character
	colCoords    = 10 // first column of coordinate data
	minHeaderLen = 10 // shorter lines are filler
)

// LoadFont reads and parses a Hershey font data file. The file is read
// completely before decoding starts. Failure to read the file is fatal;
// malformed records within it are not—they are reported as diagnostics and
// skipped.
func LoadFont(path string) (*Font, []Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "cannot read font data %s", path)
	}
	font, diags := ParseFont(data)
	return font, diags, nil
}

// ParseFont decodes Hershey font data into a glyph table.
//
// Each glyph starts with a fixed-column header line; if the header does not
// hold all of the glyph's coordinate data, subsequent whole lines are
// consumed as continuation lines. There is no continuation marker: length
// arithmetic on the declared vertex count alone decides how many lines
// belong to one record.
//
// ParseFont never fails. Lines shorter than the header layout are skipped
// as filler, headers that do not decode produce a Diagnostic and are
// skipped one line at a time, and a glyph ID occurring twice overwrites its
// earlier decoding.
func ParseFont(data []byte) (*Font, []Diagnostic) {
	lines := splitLines(data)
	font := &Font{glyphs: make(map[int]Glyph)}
	var diags []Diagnostic
	i := 0
	for i < len(lines) {
		if len(lines[i]) < minHeaderLen {
			i++
			continue
		}
		glyph, next, err := decodeGlyph(lines, i)
		if err != nil {
			// Skipping a single line may desynchronize decoding if the bad
			// line was a continuation of a wrapped record. The reference
			// behaves the same way; resynchronization happens at the next
			// line that decodes as a header.
			tracer().Infof("skipping malformed record: %v", err)
			diags = append(diags, Diagnostic{Line: i + 1, Message: err.Error()})
			i++
			continue
		}
		tracer().Debugf("decoded %v", glyph)
		font.glyphs[glyph.ID] = glyph
		i = next
	}
	tracer().Infof("font table holds %d glyphs", font.GlyphCount())
	return font, diags
}

// decodeGlyph decodes one glyph record starting at lines[i], consuming
// continuation lines as needed. It returns the index of the first line
// after the record. The caller guarantees len(lines[i]) >= minHeaderLen.
func decodeGlyph(lines []string, i int) (Glyph, int, error) {
	header := lines[i]
	id, err := strconv.Atoi(strings.TrimSpace(header[0:5]))
	if err != nil {
		return Glyph{}, 0, errFontFormat("glyph ID in " + quotePrefix(header))
	}
	n, err := strconv.Atoi(strings.TrimSpace(header[5:colCountEnd]))
	if err != nil {
		return Glyph{}, 0, errFontFormat("vertex count in " + quotePrefix(header))
	}
	glyph := Glyph{
		ID:       id,
		Left:     int(header[colLeft]) - origin,
		Right:    int(header[colRight]) - origin,
		Vertices: n,
	}
	// The count includes the bearing pair as the first "vertex".
	pairs := n - 1
	coords := header[colCoords:]
	for len(coords) < pairs*2 && i+1 < len(lines) {
		i++
		coords += lines[i]
	}
	glyph.Strokes = decodeStrokes(coords, pairs)
	return glyph, i + 1, nil
}

// decodeStrokes scans the coordinate character buffer two characters at a
// time, yielding at most `pairs` coordinate pairs. The pair " R" (space,
// 'R') is the pen-up sentinel and ends the current stroke. Characters
// beyond the pair limit are left alone—they belong to the next record's
// header.
func decodeStrokes(coords string, pairs int) []Stroke {
	var strokes []Stroke
	var pen Stroke
	count := 0
	for j := 0; j+1 < len(coords) && count < pairs; j += 2 {
		a, b := coords[j], coords[j+1]
		if a == ' ' && b == origin { // pen up
			if len(pen) > 0 {
				strokes = append(strokes, pen)
				pen = nil
			}
		} else {
			pen = append(pen, Point{X: int(a) - origin, Y: int(b) - origin})
		}
		count++
	}
	if len(pen) > 0 {
		strokes = append(strokes, pen)
	}
	return strokes
}

// splitLines splits input into lines, stripping CR/LF line endings. A
// trailing newline does not produce an empty final line.
func splitLines(data []byte) []string {
	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// quotePrefix quotes the leading characters of a line for diagnostics.
func quotePrefix(line string) string {
	if len(line) > 20 {
		line = line[:20] + "…"
	}
	return strconv.Quote(line)
}

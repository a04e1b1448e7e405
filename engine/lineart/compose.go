package lineart

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/hershey/backend/gfx"
	"github.com/npillmayer/hershey/core/hfont"
)

// Composer turns text into polylines, using a glyph table and a character
// map. Both are treated as immutable, so a Composer may be shared between
// concurrent composition runs; the pen cursor is private to each call of
// Compose.
type Composer struct {
	font *hfont.Font
	cmap *hfont.CharMap
}

// New creates a Composer from a glyph table and a character map.
func New(font *hfont.Font, cmap *hfont.CharMap) *Composer {
	return &Composer{font: font, cmap: cmap}
}

// Compose walks text and emits the glyph strokes of each character as
// polylines onto canvas. It returns the final horizontal pen position.
//
// The pen starts at x=0 on baseline y=0. For every character, the pen
// first moves left by the glyph's left bearing, then the strokes are
// placed relative to the pen with the vertical axis inverted (Hershey has
// y growing downwards, drawings have it growing upwards), and finally the
// pen advances by the right bearing.
//
// Characters without a mapping, and mappings without a glyph, are skipped
// silently: no output, no pen movement. Strokes are flushed per source
// character, so a polyline never spans a character boundary even if no
// pen-up separates it from the next glyph's geometry.
func (c *Composer) Compose(text string, canvas gfx.Canvas) int {
	x, y := 0, 0
	for _, ch := range text {
		id, ok := c.cmap.GlyphID(ch)
		if !ok {
			continue
		}
		glyph, ok := c.font.Glyph(id)
		if !ok {
			continue
		}
		tracer().Debugf("composing %q as %v at x=%d", ch, glyph, x)
		x -= glyph.Left
		for _, stroke := range glyph.Strokes {
			pts := make([]arithm.Pair, len(stroke))
			for i, p := range stroke {
				pts[i] = arithm.P(float64(x+p.X), float64(-y-p.Y))
			}
			canvas.Polyline(pts)
		}
		x += glyph.Right
	}
	return x
}

/*
Package hfont decodes Hershey stroke-fonts.

Hershey fonts are a family of vector fonts from the late 1960s, digitized
by Allen V. Hershey. Glyphs are not outlines to be filled, but sequences of
pen strokes—polylines—which makes them a natural fit for plotters, engravers
and CNC machines. The classic distribution format is a line-oriented text
file where coordinates are packed as pairs of printable characters, offset
from the letter 'R'.

This package reads two kinds of input: the font data file, which maps glyph
IDs to stroke geometry, and a mapping file, which assigns glyph IDs to
consecutive ASCII codes starting at 32. Both loaders are tolerant readers:
damaged records are reported as diagnostics and skipped, never aborting
the load.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hfont

import (
	"github.com/npillmayer/hershey/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hershey.font'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.font")
}

// errFontFormat produces user level errors for font loading.
func errFontFormat(x string) error {
	return core.Error(core.EINVALID, "Hershey font format: %s", x)
}

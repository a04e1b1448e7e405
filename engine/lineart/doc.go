/*
Package lineart composes text strings into vector line-art.

Given a Hershey glyph table and a character map, a Composer walks an input
string character by character, translating each glyph's strokes to the
current pen position and handing the resulting polylines to a drawing
canvas. Only a single line of text is supported; there is no wrapping and
no vertical advance.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lineart

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hershey.lineart'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.lineart")
}

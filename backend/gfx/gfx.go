/*
Package gfx bridges composed line-art to concrete drawing backends.

Composers produce polylines in drawing coordinates (y growing upwards) and
hand them to a Canvas. Adapters in sub-packages relay polylines to a
concrete graphics implementation (e.g., a DXF document).

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gfx

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hershey.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.gfx")
}

// Canvas receives finished polylines of a drawing. Implementations may
// record them, write them to a file, or relay them to a graphics library.
// Callers hand over only polylines with at least one point.
type Canvas interface {
	Polyline(pts []arithm.Pair)
}

// X returns the horizontal component of a pair.
func X(p arithm.Pair) float64 {
	return real(complex128(p))
}

// Y returns the vertical component of a pair.
func Y(p arithm.Pair) float64 {
	return imag(complex128(p))
}

// Recorder is a Canvas which just keeps the polylines it receives.
// Useful for tests and for dry runs.
type Recorder struct {
	Polylines [][]arithm.Pair
}

// Polyline records a copy of pts.
func (rec *Recorder) Polyline(pts []arithm.Pair) {
	tracer().Debugf("recording polyline with %d points", len(pts))
	rec.Polylines = append(rec.Polylines, append([]arithm.Pair(nil), pts...))
}

var _ Canvas = &Recorder{}

/*
Package dxfadapter implements a gfx.Canvas on a DXF document.

Polylines are recorded as LWPOLYLINE entities; the document is written with
SaveAs. DXF is the interchange format of choice for CNC and laser tooling,
which is where stroke-font line-art usually ends up.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dxfadapter

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/hershey/backend/gfx"
	"github.com/npillmayer/schuko/tracing"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// tracer traces with key 'hershey.gfx'.
func tracer() tracing.Trace {
	return tracing.Select("hershey.gfx")
}

// Drawing wraps a DXF document as a polyline sink.
type Drawing struct {
	doc *drawing.Drawing
}

var _ gfx.Canvas = &Drawing{}

// New creates an empty DXF document.
func New() *Drawing {
	return &Drawing{doc: dxf.NewDrawing()}
}

// Polyline adds an open LWPOLYLINE entity to the document.
func (dwg *Drawing) Polyline(pts []arithm.Pair) {
	vertices := make([][]float64, len(pts))
	for i, p := range pts {
		vertices[i] = []float64{gfx.X(p), gfx.Y(p)}
	}
	if _, err := dwg.doc.LwPolyline(false, vertices...); err != nil {
		tracer().Errorf("cannot add polyline to DXF document: %v", err)
	}
}

// SaveAs writes the document to a file.
func (dwg *Drawing) SaveAs(path string) error {
	tracer().Infof("writing DXF document to %s", path)
	return dwg.doc.SaveAs(path)
}

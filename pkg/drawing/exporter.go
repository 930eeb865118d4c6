package drawing

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
	"github.com/chazu/ferro/pkg/svg"
)

// ShapeExporter renders complete projected shapes without duplicate
// suppression. Helical and custom rebars as well as the structure
// outline go through this path, mirroring the CAD toolkit's generic
// shape-to-SVG export.
type ShapeExporter interface {
	RebarSVG(r *rebar.Rebar, plane ViewPlane) *etree.Element
	StructureSVG(s *rebar.Structure, plane ViewPlane) *etree.Element
}

// WireExporter is the default ShapeExporter. It projects wires edge
// by edge into path elements.
type WireExporter struct{}

// RebarSVG renders every placed instance of the rebar as one path per
// wire.
func (WireExporter) RebarSVG(r *rebar.Rebar, plane ViewPlane) *etree.Element {
	g := svg.Group(r.Name)
	for _, w := range r.PlacedWires() {
		g.AddChild(wirePath(w, plane))
	}
	return g
}

// StructureSVG renders the structure outline wires.
func (WireExporter) StructureSVG(s *rebar.Structure, plane ViewPlane) *etree.Element {
	g := etree.NewElement("g")
	for _, w := range s.Wires {
		g.AddChild(wirePath(w, plane))
	}
	return g
}

// wirePath builds a single path element tracing the projected wire,
// with arc edges emitted as SVG arc commands.
func wirePath(w *geom.Wire, plane ViewPlane) *etree.Element {
	var d strings.Builder
	for i, e := range w.Edges {
		p1 := Project(e.P1, plane)
		p2 := Project(e.P2, plane)
		if i == 0 {
			fmt.Fprintf(&d, "M%d %d", svg.Coord(p1.X), svg.Coord(p1.Y))
		}
		if e.Kind == geom.EdgeArc {
			flag := 0
			if SweepFlag(e, plane) {
				flag = 1
			}
			fmt.Fprintf(&d, " A%d %d 0 0 %d %d %d",
				svg.Coord(e.Radius), svg.Coord(e.Radius), flag, svg.Coord(p2.X), svg.Coord(p2.Y))
		} else {
			fmt.Fprintf(&d, " L%d %d", svg.Coord(p2.X), svg.Coord(p2.Y))
		}
	}
	if w.Closed {
		d.WriteString(" Z")
	}
	return svg.Path(d.String(), "", "stroke:#000000")
}

package drawing

import (
	"math"

	"github.com/beevik/etree"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
	"github.com/chazu/ferro/pkg/svg"
)

// PointDiaFactor scales a bar diameter to the radius of the circle
// marking a bar seen end-on.
const PointDiaFactor = 1.0 / 3.0

// builder carries the call-scoped state of one drawing pass: the view
// plane, the accumulated SVG of already-placed rebar geometry and the
// running dimension offsets. Deduplication is cumulative and
// order-dependent: each rebar is tested against everything emitted
// before it.
type builder struct {
	plane  ViewPlane
	rebars *etree.Element // accumulated visibility set
	style  DimensionStyle
	off    dimOffsets
}

// edgeElement projects a single profile edge and reports whether an
// equivalent primitive already exists in the accumulated SVG.
// Degenerate line projections collapse to a point marker; arcs whose
// endpoints project onto a shared row or column flatten to a line.
// Point markers never affect visibility.
func (b *builder) edgeElement(e geom.Edge, r *rebar.Rebar) (el *etree.Element, dup bool) {
	p1 := Project(e.P1, b.plane)
	p2 := Project(e.P2, b.plane)
	switch e.Kind {
	case geom.EdgeArc:
		if svg.Coord(p1.X) == svg.Coord(p2.X) || svg.Coord(p1.Y) == svg.Coord(p2.Y) {
			return svg.Line(p1, p2), svg.IsLineIn(p1, p2, b.rebars)
		}
		sweep := SweepFlag(e, b.plane)
		return svg.RoundCorner(p1, p2, r.FilletRadius(), sweep),
			svg.IsRoundCornerIn(p1, p2, r.FilletRadius(), sweep, b.rebars)
	default:
		if svg.Coord(p1.X) == svg.Coord(p2.X) && svg.Coord(p1.Y) == svg.Coord(p2.Y) {
			return svg.Point(p1, PointDiaFactor*r.Diameter), true
		}
		return svg.Line(p1, p2), svg.IsLineIn(p1, p2, b.rebars)
	}
}

// appendProfile walks a filleted profile wire edge by edge, applying
// the first-visible-edge-wins rule: duplicate edges are held back
// until some edge of this rebar proves novel, at which point the held
// edges are flushed and every remaining edge is appended
// unconditionally. A rebar that never produces a novel edge
// contributes nothing.
func (b *builder) appendProfile(g *etree.Element, w *geom.Wire, r *rebar.Rebar, visible bool) bool {
	var pending []*etree.Element
	for _, e := range w.Edges {
		el, dup := b.edgeElement(e, r)
		if visible || !dup {
			for _, p := range pending {
				g.AddChild(p)
			}
			pending = nil
			g.AddChild(el)
			visible = true
		} else {
			pending = append(pending, el)
		}
	}
	return visible
}

// stirrupLinePoints returns the endpoints of the representative line
// standing in for a stirrup seen edge-on, spanning the projected
// extent of its wire. alignment "V" centers a vertical line on the
// projected x extent; anything else draws a horizontal line.
func stirrupLinePoints(w *geom.Wire, alignment string, plane ViewPlane) (v2.Vec, v2.Vec) {
	verts := w.Vertexes()
	first := Project(verts[0], plane)
	minX, minY := first.X, first.Y
	maxX, maxY := first.X, first.Y
	for _, v := range verts[1:] {
		p := Project(v, plane)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if alignment == "V" {
		x := (minX + maxX) / 2
		return v2.Vec{X: x, Y: minY}, v2.Vec{X: x, Y: maxY}
	}
	y := (minY + maxY) / 2
	return v2.Vec{X: minX, Y: y}, v2.Vec{X: maxX, Y: y}
}

// stirrupSVG builds the SVG fragment for a stirrup. Face-on stirrups
// render their full filleted profile; edge-on stirrups render one
// representative line per placement instance.
func (b *builder) stirrupSVG(r *rebar.Rebar) (*etree.Element, bool) {
	g := svg.Group(r.Name)
	span := r.SpanAxis()
	if spanParallel(b.plane.Axis, span) {
		w := r.ShapeWire().Fillet(r.FilletRadius())
		return g, b.appendProfile(g, w, r, false)
	}
	alignment := "H"
	if math.Round(span.Cross(b.plane.U).Length()) == 0 {
		alignment = "V"
	}
	visible := false
	base := r.Base.Fillet(r.FilletRadius())
	for _, pl := range r.PlacementList {
		w := base.Transformed(pl.Mul(r.BasePlacement))
		p1, p2 := stirrupLinePoints(w, alignment, b.plane)
		if !svg.IsLineIn(p1, p2, b.rebars) {
			visible = true
		}
		if visible {
			g.AddChild(svg.Line(p1, p2))
		}
	}
	return g, visible
}

// bentProfileSVG builds the SVG fragment for bent, U-shape and
// L-shape rebars, which share one renderer. Face-on bars draw the
// profile once; oblique bars draw the full profile of every placement
// instance, deduplicated against earlier geometry.
func (b *builder) bentProfileSVG(r *rebar.Rebar) (*etree.Element, bool) {
	g := svg.Group(r.Name)
	if spanParallel(b.plane.Axis, r.SpanAxis()) {
		w := r.ShapeWire().Fillet(r.FilletRadius())
		return g, b.appendProfile(g, w, r, false)
	}
	visible := false
	for _, pl := range r.PlacementList {
		w := r.Base.Transformed(pl.Mul(r.BasePlacement)).Fillet(r.FilletRadius())
		visible = b.appendProfile(g, w, r, visible)
	}
	return g, visible
}

// straightSVG builds the SVG fragment for a straight rebar. A visible
// face-on bar also gets its dimension annotation, advancing the
// shared offset of the dimension's orientation.
func (b *builder) straightSVG(r *rebar.Rebar) (*etree.Element, bool) {
	g := svg.Group(r.Name)
	if spanParallel(b.plane.Axis, r.SpanAxis()) {
		verts := r.ShapeWire().Vertexes()
		p1 := Project(verts[0], b.plane)
		p2 := Project(verts[len(verts)-1], b.plane)
		visible := false
		var el *etree.Element
		if svg.Coord(p1.X) == svg.Coord(p2.X) && svg.Coord(p1.Y) == svg.Coord(p2.Y) {
			el = svg.Point(p1, PointDiaFactor*r.Diameter)
			visible = !svg.IsPointIn(p1, b.rebars)
		} else {
			el = svg.Line(p1, p2)
			visible = !svg.IsLineIn(p1, p2, b.rebars)
		}
		if visible {
			g.AddChild(el)
			label := FormatLabel(b.style.Format, r.Amount, r.Diameter)
			dim, horizontal := lineDimension(p1, p2, label, b.off, b.style)
			g.AddChild(dim)
			if horizontal {
				b.off.hY += DimensionOffsetStep
			} else {
				b.off.vX += DimensionOffsetStep
			}
		}
		return g, visible
	}
	// Oblique: one primitive per placement, deduplicated against both
	// the global accumulated SVG and this rebar's own fragment so
	// coincident instances within the run collapse too.
	visible := false
	for _, pl := range r.PlacementList {
		w := r.Base.Transformed(pl.Mul(r.BasePlacement))
		verts := w.Vertexes()
		p1 := Project(verts[0], b.plane)
		p2 := Project(verts[len(verts)-1], b.plane)
		var el *etree.Element
		if svg.Coord(p1.X) == svg.Coord(p2.X) && svg.Coord(p1.Y) == svg.Coord(p2.Y) {
			el = svg.Point(p1, PointDiaFactor*r.Diameter)
			if !svg.IsPointIn(p1, b.rebars) && !svg.IsPointIn(p1, g) {
				visible = true
			}
		} else {
			el = svg.Line(p1, p2)
			if !svg.IsLineIn(p1, p2, b.rebars) && !svg.IsLineIn(p1, p2, g) {
				visible = true
			}
		}
		if visible {
			g.AddChild(el)
		}
	}
	return g, visible
}

package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// EdgeKind discriminates straight and circular wire edges.
type EdgeKind int

const (
	EdgeLine EdgeKind = iota
	EdgeArc
)

// Edge is a single wire edge, either a straight segment from P1 to P2
// or a circular arc from P1 to P2 about Center. For arcs, Normal is
// the rotation axis: sweeping P1 about Normal by the (positive) sweep
// angle reaches P2.
type Edge struct {
	Kind   EdgeKind
	P1, P2 v3.Vec
	Center v3.Vec  // arc only
	Radius float64 // arc only
	Normal v3.Vec  // arc only, unit rotation axis
}

// LineEdge returns a straight edge from p1 to p2.
func LineEdge(p1, p2 v3.Vec) Edge {
	return Edge{Kind: EdgeLine, P1: p1, P2: p2}
}

// ArcEdge returns a circular arc from p1 to p2 about center, sweeping
// the short way round.
func ArcEdge(p1, p2, center v3.Vec) Edge {
	r1 := p1.Sub(center)
	r2 := p2.Sub(center)
	return Edge{
		Kind:   EdgeArc,
		P1:     p1,
		P2:     p2,
		Center: center,
		Radius: r1.Length(),
		Normal: r1.Cross(r2).Normalize(),
	}
}

// sweep returns the positive sweep angle of an arc edge.
func (e Edge) sweep() float64 {
	r1 := e.P1.Sub(e.Center)
	r2 := e.P2.Sub(e.Center)
	d := r1.Dot(r2) / (r1.Length() * r2.Length())
	return math.Acos(clamp(d, -1, 1))
}

// Length returns the arc length of the edge.
func (e Edge) Length() float64 {
	if e.Kind == EdgeArc {
		return e.Radius * e.sweep()
	}
	return e.P2.Sub(e.P1).Length()
}

// PointAt returns the point at normalized parameter t in [0,1].
func (e Edge) PointAt(t float64) v3.Vec {
	if e.Kind == EdgeLine {
		return e.P1.Add(e.P2.Sub(e.P1).MulScalar(t))
	}
	m := sdf.Rotate3d(e.Normal, t*e.sweep())
	return e.Center.Add(m.MulPosition(e.P1.Sub(e.Center)))
}

// TangentAt returns the unit tangent at normalized parameter t in
// [0,1], pointing in the direction of travel from P1 to P2.
func (e Edge) TangentAt(t float64) v3.Vec {
	if e.Kind == EdgeLine {
		return e.P2.Sub(e.P1).Normalize()
	}
	r := e.PointAt(t).Sub(e.Center)
	return e.Normal.Cross(r).Normalize()
}

// transformed returns the edge mapped through a placement.
func (e Edge) transformed(p Placement) Edge {
	out := e
	out.P1 = p.Apply(e.P1)
	out.P2 = p.Apply(e.P2)
	if e.Kind == EdgeArc {
		out.Center = p.Apply(e.Center)
		out.Normal = p.Rotate(e.Normal)
	}
	return out
}

// Wire is an ordered sequence of contiguous edges. A closed wire's
// last edge ends at the first edge's start point.
type Wire struct {
	Edges  []Edge
	Closed bool
}

// Polyline builds a wire of straight edges through points. A closed
// polyline gets an extra edge back to the first point; the caller
// must not repeat it.
func Polyline(points []v3.Vec, closed bool) *Wire {
	w := &Wire{Closed: closed}
	for i := 1; i < len(points); i++ {
		w.Edges = append(w.Edges, LineEdge(points[i-1], points[i]))
	}
	if closed && len(points) > 2 {
		w.Edges = append(w.Edges, LineEdge(points[len(points)-1], points[0]))
	}
	return w
}

// Vertexes returns the wire's vertices in edge order. For an open
// wire the final endpoint is included.
func (w *Wire) Vertexes() []v3.Vec {
	if len(w.Edges) == 0 {
		return nil
	}
	pts := make([]v3.Vec, 0, len(w.Edges)+1)
	for _, e := range w.Edges {
		pts = append(pts, e.P1)
	}
	if !w.Closed {
		pts = append(pts, w.Edges[len(w.Edges)-1].P2)
	}
	return pts
}

// Length returns the total edge length of the wire.
func (w *Wire) Length() float64 {
	var sum float64
	for _, e := range w.Edges {
		sum += e.Length()
	}
	return sum
}

// Normal returns the unit normal of the wire's plane, derived from
// the first pair of non-parallel edge chords. It returns the zero
// vector for straight or empty wires.
func (w *Wire) Normal() v3.Vec {
	var first v3.Vec
	for _, e := range w.Edges {
		d := e.P2.Sub(e.P1)
		if d.Length() < Epsilon {
			continue
		}
		d = d.Normalize()
		if first.Length() < Epsilon {
			first = d
			continue
		}
		n := first.Cross(d)
		if n.Length() > Epsilon {
			return n.Normalize()
		}
	}
	return v3.Vec{}
}

// Transformed returns a copy of the wire mapped through a placement.
func (w *Wire) Transformed(p Placement) *Wire {
	out := &Wire{Edges: make([]Edge, len(w.Edges)), Closed: w.Closed}
	for i, e := range w.Edges {
		out.Edges[i] = e.transformed(p)
	}
	return out
}

// BoundingBox returns the axis-aligned box enclosing the wire. Arc
// edges are sampled, which is sufficient for the small corner fillets
// rebar profiles carry.
func (w *Wire) BoundingBox() Box {
	box := EmptyBox()
	for _, e := range w.Edges {
		box = box.Extend(e.P1)
		box = box.Extend(e.P2)
		if e.Kind == EdgeArc {
			for _, t := range []float64{0.25, 0.5, 0.75} {
				box = box.Extend(e.PointAt(t))
			}
		}
	}
	return box
}

// Fillet replaces sharp corners between consecutive straight edges
// with circular arcs of the given radius. Corners whose adjacent
// segments are too short for the trim, and collinear corners, are
// left sharp. Wires already containing arcs are returned unchanged,
// as are wires for radius <= 0.
func (w *Wire) Fillet(radius float64) *Wire {
	if radius <= 0 || len(w.Edges) < 2 {
		return w.copyWire()
	}
	for _, e := range w.Edges {
		if e.Kind != EdgeLine {
			return w.copyWire()
		}
	}
	pts := w.Vertexes()
	if w.Closed {
		return filletClosed(pts, radius)
	}
	return filletOpen(pts, radius)
}

func (w *Wire) copyWire() *Wire {
	out := &Wire{Edges: make([]Edge, len(w.Edges)), Closed: w.Closed}
	copy(out.Edges, w.Edges)
	return out
}

// corner holds the fillet trim points for one wire vertex.
type corner struct {
	t1, t2, center v3.Vec
	round          bool
}

// filletCorner computes the fillet of radius r at vertex b between
// segments ab and bc.
func filletCorner(a, b, c v3.Vec, r float64) corner {
	u := a.Sub(b)
	w := c.Sub(b)
	lu := u.Length()
	lw := w.Length()
	if lu < Epsilon || lw < Epsilon {
		return corner{t1: b, t2: b}
	}
	u = u.MulScalar(1 / lu)
	w = w.MulScalar(1 / lw)
	if u.Cross(w).Length() < Epsilon {
		// collinear, nothing to round
		return corner{t1: b, t2: b}
	}
	phi := math.Acos(clamp(u.Dot(w), -1, 1))
	trim := r / math.Tan(phi/2)
	if trim > lu || trim > lw {
		return corner{t1: b, t2: b}
	}
	bisector := u.Add(w).Normalize()
	return corner{
		t1:     b.Add(u.MulScalar(trim)),
		t2:     b.Add(w.MulScalar(trim)),
		center: b.Add(bisector.MulScalar(r / math.Sin(phi/2))),
		round:  true,
	}
}

func filletOpen(pts []v3.Vec, r float64) *Wire {
	out := &Wire{}
	cur := pts[0]
	for i := 1; i < len(pts)-1; i++ {
		c := filletCorner(pts[i-1], pts[i], pts[i+1], r)
		out.Edges = append(out.Edges, LineEdge(cur, c.t1))
		if c.round {
			out.Edges = append(out.Edges, ArcEdge(c.t1, c.t2, c.center))
		}
		cur = c.t2
	}
	out.Edges = append(out.Edges, LineEdge(cur, pts[len(pts)-1]))
	return out
}

func filletClosed(pts []v3.Vec, r float64) *Wire {
	n := len(pts)
	corners := make([]corner, n)
	for i := 0; i < n; i++ {
		corners[i] = filletCorner(pts[(i+n-1)%n], pts[i], pts[(i+1)%n], r)
	}
	out := &Wire{Closed: true}
	for i := 0; i < n; i++ {
		next := corners[(i+1)%n]
		out.Edges = append(out.Edges, LineEdge(corners[i].t2, next.t1))
		if next.round {
			out.Edges = append(out.Edges, ArcEdge(next.t1, next.t2, next.center))
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

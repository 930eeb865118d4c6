// Package rebar models reinforcement bars and the structural member
// they reinforce. The types here are read-only inputs to the drawing
// and bill-of-material pipelines.
package rebar

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/geom"
)

// Shape classifies a rebar by its bending shape. The set is closed;
// anything a producer cannot classify is Custom.
type Shape int

const (
	Stirrup Shape = iota
	BentShape
	UShape
	LShape
	Straight
	Helical
	Custom
)

// shapeNames are the category identifiers used in drawing output.
var shapeNames = map[Shape]string{
	Stirrup:   "Stirrup",
	BentShape: "BentShapeRebar",
	UShape:    "UShapeRebar",
	LShape:    "LShapeRebar",
	Straight:  "StraightRebar",
	Helical:   "HelicalRebar",
	Custom:    "CustomRebar",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return "CustomRebar"
}

// ParseShape maps a shape tag to its Shape. Unrecognized tags fall
// into the Custom bucket.
func ParseShape(tag string) Shape {
	for s, name := range shapeNames {
		if name == tag {
			return s
		}
	}
	return Custom
}

// Rebar is a single reinforcement bar run: a base profile wire plus a
// list of placements for repeated instances.
type Rebar struct {
	Name          string
	Shape         Shape
	Base          *geom.Wire     // profile in local coordinates
	BasePlacement geom.Placement // maps the base profile into the model
	Diameter      float64        // bar diameter in mm
	Amount        int            // bar count in the run
	Rounding      float64        // corner fillet radius as a multiple of Diameter
	PlacementList []geom.Placement
	Direction     v3.Vec // optional explicit span axis; zero if unset
}

// FilletRadius returns the corner fillet radius of the bar profile.
func (r *Rebar) FilletRadius() float64 {
	return r.Rounding * r.Diameter
}

// ShapeWire returns the base profile wire in model coordinates.
func (r *Rebar) ShapeWire() *geom.Wire {
	return r.Base.Transformed(r.BasePlacement)
}

// PlacedWires returns one profile wire per placement in model
// coordinates. A rebar without placements yields just its shape wire.
func (r *Rebar) PlacedWires() []*geom.Wire {
	if len(r.PlacementList) == 0 {
		return []*geom.Wire{r.ShapeWire()}
	}
	wires := make([]*geom.Wire, len(r.PlacementList))
	for i, p := range r.PlacementList {
		wires[i] = r.Base.Transformed(p.Mul(r.BasePlacement))
	}
	return wires
}

// SpanAxis returns the axis along which the rebar run spans. An
// explicit Direction wins; otherwise the profile plane normal is
// used, and straight bars without a plane fall back to the base
// placement's local -Z.
func (r *Rebar) SpanAxis() v3.Vec {
	if r.Direction.Length() > geom.Epsilon {
		return r.Direction.Normalize()
	}
	if r.Base != nil {
		if n := r.ShapeWire().Normal(); n.Length() > geom.Epsilon {
			return n
		}
	}
	return r.BasePlacement.Rotate(v3.Vec{Z: -1})
}

// BoundingBox returns the box enclosing all placed instances of the
// rebar.
func (r *Rebar) BoundingBox() geom.Box {
	box := geom.EmptyBox()
	for _, w := range r.PlacedWires() {
		box = box.Union(w.BoundingBox())
	}
	return box
}

// Structure is the structural member that hosts the reinforcement.
// Its outline wires are drawn through the shape exporter and its
// bounding box frames the drawing.
type Structure struct {
	Name  string
	Wires []*geom.Wire // outline in model coordinates
}

// BoundingBox returns the box enclosing the structure outline.
func (s *Structure) BoundingBox() geom.Box {
	box := geom.EmptyBox()
	for _, w := range s.Wires {
		box = box.Union(w.BoundingBox())
	}
	return box
}

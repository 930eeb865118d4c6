package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max v3.Vec
}

// EmptyBox returns a box that contains nothing. Extending it with any
// point yields a degenerate box at that point.
func EmptyBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: v3.Vec{X: inf, Y: inf, Z: inf},
		Max: v3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Extend grows the box to include point p.
func (b Box) Extend(p v3.Vec) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union grows the box to include another box.
func (b Box) Union(o Box) Box {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Corner returns the i-th box corner, 0 <= i < 8. Corners are indexed
// the way CAD bounding boxes conventionally are: 0..3 walk the
// min-Z face counter-clockwise starting at (min,min), 4..7 the max-Z
// face in the same order. The drawing assembler's per-view corner
// tables depend on this ordering.
func (b Box) Corner(i int) v3.Vec {
	switch i {
	case 0:
		return v3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z}
	case 1:
		return v3.Vec{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z}
	case 2:
		return v3.Vec{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z}
	case 3:
		return v3.Vec{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z}
	case 4:
		return v3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z}
	case 5:
		return v3.Vec{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z}
	case 6:
		return v3.Vec{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z}
	case 7:
		return v3.Vec{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z}
	}
	panic("geom: box corner index out of range")
}

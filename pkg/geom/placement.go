// Package geom provides the 3D geometry toolkit behind the drawing
// pipeline: rigid placements, polyline wires with filleted corners,
// edge tangents and axis-aligned bounding boxes. Vector and matrix
// math is built on the sdfx CAD library.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Epsilon is the tolerance used for degenerate-geometry checks.
const Epsilon = 1e-9

// Placement is a rigid transform: a pure rotation followed by a
// translation. The zero value is not a valid placement; construct one
// with Identity, Translation, Rotation or New.
type Placement struct {
	rot sdf.M44
	pos v3.Vec
}

// Identity returns the identity placement.
func Identity() Placement {
	return Placement{rot: sdf.Identity3d()}
}

// Translation returns a placement that translates by v.
func Translation(v v3.Vec) Placement {
	return Placement{rot: sdf.Identity3d(), pos: v}
}

// Rotation returns a placement rotating by Euler angles in degrees,
// applied X then Y then Z.
func Rotation(xDeg, yDeg, zDeg float64) Placement {
	m := sdf.RotateZ(rad(zDeg)).Mul(sdf.RotateY(rad(yDeg))).Mul(sdf.RotateX(rad(xDeg)))
	return Placement{rot: m}
}

// AxisRotation returns a placement rotating by angleDeg about axis.
func AxisRotation(axis v3.Vec, angleDeg float64) Placement {
	return Placement{rot: sdf.Rotate3d(axis, rad(angleDeg))}
}

// New returns a placement that rotates by Euler angles in degrees and
// then translates to pos.
func New(pos v3.Vec, xDeg, yDeg, zDeg float64) Placement {
	p := Rotation(xDeg, yDeg, zDeg)
	p.pos = pos
	return p
}

// Mul composes placements so that p.Mul(q).Apply(v) == p.Apply(q.Apply(v)).
func (p Placement) Mul(q Placement) Placement {
	return Placement{
		rot: p.rot.Mul(q.rot),
		pos: p.rot.MulPosition(q.pos).Add(p.pos),
	}
}

// Apply transforms a point by the placement.
func (p Placement) Apply(v v3.Vec) v3.Vec {
	return p.rot.MulPosition(v).Add(p.pos)
}

// Rotate applies only the rotation part of the placement. Use it for
// direction vectors, which must not pick up the translation.
func (p Placement) Rotate(v v3.Vec) v3.Vec {
	return p.rot.MulPosition(v)
}

// Position returns the translation part of the placement.
func (p Placement) Position() v3.Vec {
	return p.pos
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

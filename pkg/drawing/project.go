package drawing

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/geom"
)

// signFlipTolerance is the angular tolerance, in radians, used to
// decide whether a scalar projection points against its basis vector.
const signFlipTolerance = 0.1

// signedProjection returns the length of the vector projection of p
// onto axis, negated when the projection points against the axis.
func signedProjection(p, axis v3.Vec) float64 {
	l2 := axis.Length() * axis.Length()
	if l2 < geom.Epsilon {
		return 0
	}
	proj := axis.MulScalar(p.Dot(axis) / l2)
	l := proj.Length()
	if angleBetween(proj, axis) > signFlipTolerance {
		l = -l
	}
	return l
}

// angleBetween returns the unsigned angle between two vectors, or 0
// when either is null.
func angleBetween(a, b v3.Vec) float64 {
	la, lb := a.Length(), b.Length()
	if la < geom.Epsilon || lb < geom.Epsilon {
		return 0
	}
	return math.Acos(clamp(a.Dot(b)/(la*lb), -1, 1))
}

// signedAngle returns the angle from a to b, signed by the direction
// of rotation about the normal.
func signedAngle(a, b, normal v3.Vec) float64 {
	return math.Atan2(a.Cross(b).Dot(normal.Normalize()), a.Dot(b))
}

// Project maps a 3D point to 2D drawing coordinates in the view
// plane. It is pure and deterministic.
func Project(p v3.Vec, plane ViewPlane) v2.Vec {
	return v2.Vec{
		X: signedProjection(p, plane.U),
		Y: signedProjection(p, plane.V),
	}
}

// SweepFlag derives the SVG arc sweep flag for a curved edge from the
// rotation of its tangent, sampled slightly along the edge, measured
// about the view plane normal.
func SweepFlag(e geom.Edge, plane ViewPlane) bool {
	t1 := e.TangentAt(0)
	t2 := e.TangentAt(0.1)
	return signedAngle(t1, t2, plane.Axis) < 0
}

// spanParallel reports whether the drawing plane normal is parallel
// to a rebar span axis, i.e. the bar's cross-section faces the
// viewer. The cross product length is rounded, matching the loose
// tolerance drawings need for nearly-aligned bars.
func spanParallel(axis, span v3.Vec) bool {
	return math.Round(axis.Cross(span).Length()) == 0
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

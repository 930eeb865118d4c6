// Package drawing generates 2D SVG reinforcement drawings from the
// 3D rebar model. It projects rebar geometry onto a view plane,
// suppresses duplicate overlapping bars, lays out dimension lines and
// assembles the final SVG document.
package drawing

import (
	"errors"
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/geom"
)

// ViewPlane is an orthonormal projection basis anchored at the
// origin. Axis is the plane normal pointing at the viewer, U the
// in-plane horizontal and V the in-plane vertical.
type ViewPlane struct {
	Axis v3.Vec
	U    v3.Vec
	V    v3.Vec
}

// ViewNames lists the supported named views in a stable order.
var ViewNames = []string{"Front", "Rear", "Left", "Right", "Top", "Bottom"}

// namedViews holds the fixed basis per named view. Signs are chosen
// so the drawing x grows rightward and y downward in the conventional
// engineering sense for each view.
var namedViews = map[string]ViewPlane{
	"Front":  {Axis: v3.Vec{Y: -1}, U: v3.Vec{X: 1}, V: v3.Vec{Z: -1}},
	"Rear":   {Axis: v3.Vec{Y: 1}, U: v3.Vec{X: -1}, V: v3.Vec{Z: -1}},
	"Left":   {Axis: v3.Vec{X: -1}, U: v3.Vec{Y: -1}, V: v3.Vec{Z: -1}},
	"Right":  {Axis: v3.Vec{X: 1}, U: v3.Vec{Y: 1}, V: v3.Vec{Z: -1}},
	"Top":    {Axis: v3.Vec{Z: 1}, U: v3.Vec{X: 1}, V: v3.Vec{Y: -1}},
	"Bottom": {Axis: v3.Vec{Z: -1}, U: v3.Vec{X: 1}, V: v3.Vec{Y: 1}},
}

// UnsupportedViewError reports a view name outside the supported set.
type UnsupportedViewError struct {
	View string
}

func (e *UnsupportedViewError) Error() string {
	return fmt.Sprintf("drawing: unsupported view %q (valid views: Front, Rear, Left, Right, Top, Bottom)", e.View)
}

// ErrZeroDirection is returned when a view direction vector is null.
var ErrZeroDirection = errors.New("drawing: view direction must be a non-zero vector")

// ViewPlaneFor resolves a named view to its projection basis. The
// caller must treat an UnsupportedViewError as a terminal
// configuration error.
func ViewPlaneFor(view string) (ViewPlane, error) {
	plane, ok := namedViews[view]
	if !ok {
		return ViewPlane{}, &UnsupportedViewError{View: view}
	}
	return plane, nil
}

// ViewPlaneFromDirection builds a projection basis for an arbitrary
// view direction through the origin with zero roll. For directions
// parallel to the global Z axis the horizontal is fixed to +X.
func ViewPlaneFromDirection(dir v3.Vec) (ViewPlane, error) {
	if dir.Length() < geom.Epsilon {
		return ViewPlane{}, ErrZeroDirection
	}
	axis := dir.Normalize()
	z := v3.Vec{Z: 1}
	u := z.Cross(axis)
	if u.Length() < geom.Epsilon {
		u = v3.Vec{X: 1}
	} else {
		u = u.Normalize()
	}
	return ViewPlane{Axis: axis, U: u, V: u.Cross(axis)}, nil
}

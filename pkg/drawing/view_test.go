package drawing

import (
	"errors"
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func vecNear(a, b v3.Vec, tol float64) bool {
	return a.Sub(b).Length() <= tol
}

func TestNamedViewPlanes(t *testing.T) {
	tests := []struct {
		view string
		want ViewPlane
	}{
		{"Front", ViewPlane{Axis: v3.Vec{Y: -1}, U: v3.Vec{X: 1}, V: v3.Vec{Z: -1}}},
		{"Rear", ViewPlane{Axis: v3.Vec{Y: 1}, U: v3.Vec{X: -1}, V: v3.Vec{Z: -1}}},
		{"Left", ViewPlane{Axis: v3.Vec{X: -1}, U: v3.Vec{Y: -1}, V: v3.Vec{Z: -1}}},
		{"Right", ViewPlane{Axis: v3.Vec{X: 1}, U: v3.Vec{Y: 1}, V: v3.Vec{Z: -1}}},
		{"Top", ViewPlane{Axis: v3.Vec{Z: 1}, U: v3.Vec{X: 1}, V: v3.Vec{Y: -1}}},
		{"Bottom", ViewPlane{Axis: v3.Vec{Z: -1}, U: v3.Vec{X: 1}, V: v3.Vec{Y: 1}}},
	}
	for _, tt := range tests {
		got, err := ViewPlaneFor(tt.view)
		if err != nil {
			t.Fatalf("ViewPlaneFor(%q): %v", tt.view, err)
		}
		if got != tt.want {
			t.Errorf("ViewPlaneFor(%q) = %+v, want %+v", tt.view, got, tt.want)
		}
	}
}

func TestUnsupportedView(t *testing.T) {
	_, err := ViewPlaneFor("Isometric")
	if err == nil {
		t.Fatal("expected error for unsupported view")
	}
	var viewErr *UnsupportedViewError
	if !errors.As(err, &viewErr) {
		t.Fatalf("error type = %T, want *UnsupportedViewError", err)
	}
	if viewErr.View != "Isometric" {
		t.Errorf("View = %q, want Isometric", viewErr.View)
	}
}

func TestViewPlaneFromZeroDirection(t *testing.T) {
	_, err := ViewPlaneFromDirection(v3.Vec{})
	if !errors.Is(err, ErrZeroDirection) {
		t.Errorf("err = %v, want ErrZeroDirection", err)
	}
}

// A direction matching a named view must reproduce that view's basis.
func TestViewPlaneFromNamedDirections(t *testing.T) {
	for _, name := range []string{"Front", "Top"} {
		want, _ := ViewPlaneFor(name)
		got, err := ViewPlaneFromDirection(want.Axis)
		if err != nil {
			t.Fatalf("ViewPlaneFromDirection(%v): %v", want.Axis, err)
		}
		if !vecNear(got.U, want.U, 1e-12) || !vecNear(got.V, want.V, 1e-12) {
			t.Errorf("%s direction: got U=%v V=%v, want U=%v V=%v",
				name, got.U, got.V, want.U, want.V)
		}
	}
}

func TestViewPlaneFromDirectionOrthonormal(t *testing.T) {
	dir := v3.Vec{X: 1, Y: 1, Z: 1}
	plane, err := ViewPlaneFromDirection(dir)
	if err != nil {
		t.Fatalf("ViewPlaneFromDirection: %v", err)
	}
	for _, v := range []v3.Vec{plane.Axis, plane.U, plane.V} {
		if math.Abs(v.Length()-1) > 1e-12 {
			t.Errorf("basis vector %v is not unit length", v)
		}
	}
	if math.Abs(plane.U.Dot(plane.Axis)) > 1e-12 ||
		math.Abs(plane.V.Dot(plane.Axis)) > 1e-12 ||
		math.Abs(plane.U.Dot(plane.V)) > 1e-12 {
		t.Errorf("basis not orthogonal: %+v", plane)
	}
	if !vecNear(plane.U.Cross(plane.Axis), plane.V, 1e-12) {
		t.Errorf("V = %v, want U x Axis = %v", plane.V, plane.U.Cross(plane.Axis))
	}
}

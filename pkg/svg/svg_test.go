package svg

import (
	"strings"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

func TestLineElement(t *testing.T) {
	e := Line(v2.Vec{X: 10.4, Y: 20.6}, v2.Vec{X: 30, Y: 40})
	if got, want := e.SelectAttrValue("d", ""), "M10 21 L30 40"; got != want {
		t.Errorf("line d = %q, want %q", got, want)
	}
	if got := e.SelectAttrValue("style", ""); !strings.Contains(got, "stroke:#000000") {
		t.Errorf("line style = %q, want stroke", got)
	}
}

func TestIsLineInEitherOrder(t *testing.T) {
	root := Root()
	g := Group("Rebars")
	root.AddChild(g)
	p1 := v2.Vec{X: 0, Y: 0}
	p2 := v2.Vec{X: 100, Y: 0}
	if IsLineIn(p1, p2, root) {
		t.Fatal("empty tree should not contain the line")
	}
	g.AddChild(Line(p1, p2))
	if !IsLineIn(p1, p2, root) {
		t.Error("line not found in original order")
	}
	if !IsLineIn(p2, p1, root) {
		t.Error("line not found in reversed order")
	}
	if IsLineIn(p1, v2.Vec{X: 50, Y: 50}, root) {
		t.Error("unrelated line reported as present")
	}
}

func TestPointContainment(t *testing.T) {
	root := Root()
	p := v2.Vec{X: 12.2, Y: -7.8}
	root.AddChild(Point(p, 4))
	if !IsPointIn(p, root) {
		t.Error("point not found after append")
	}
	// A point that rounds to the same integer coordinates matches.
	if !IsPointIn(v2.Vec{X: 11.9, Y: -8.1}, root) {
		t.Error("point rounding to same coordinates not found")
	}
	if IsPointIn(v2.Vec{X: 13, Y: -8}, root) {
		t.Error("distinct point reported as present")
	}
}

func TestRoundCornerRoundTrip(t *testing.T) {
	root := Root()
	p1 := v2.Vec{X: 8, Y: 0}
	p2 := v2.Vec{X: 10, Y: 2}
	root.AddChild(RoundCorner(p1, p2, 2, false))

	if got, want := root.ChildElements()[0].SelectAttrValue("d", ""), "M8 0 A2 2 0 0 0 10 2"; got != want {
		t.Errorf("arc d = %q, want %q", got, want)
	}
	if !IsRoundCornerIn(p1, p2, 2, false, root) {
		t.Error("arc not found in original order")
	}
	// Reversed endpoints trace the same corner with the opposite sweep.
	if !IsRoundCornerIn(p2, p1, 2, true, root) {
		t.Error("arc not found in reversed order")
	}
	if IsRoundCornerIn(p1, p2, 2, true, root) {
		t.Error("same endpoints with same-order opposite sweep must not match")
	}
	if IsRoundCornerIn(p1, p2, 3, false, root) {
		t.Error("different radius must not match")
	}
}

func TestTextElement(t *testing.T) {
	e := Text("2⌀8", 50, -250, "DejaVu Sans", "10px", "middle", "")
	if got := e.Text(); got != "2⌀8" {
		t.Errorf("text content = %q, want 2⌀8", got)
	}
	if got := e.SelectAttrValue("text-anchor", ""); got != "middle" {
		t.Errorf("text-anchor = %q, want middle", got)
	}
	if got := e.SelectAttrValue("dominant-baseline", "unset"); got != "unset" {
		t.Errorf("dominant-baseline should be omitted, got %q", got)
	}
}

func TestDocumentSerialization(t *testing.T) {
	root := Root()
	root.AddChild(Group("reinforcement_drawing"))
	out, err := Document(root).WriteToString()
	if err != nil {
		t.Fatalf("WriteToString: %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, `id="reinforcement_drawing"`) {
		t.Errorf("serialized document missing expected content:\n%s", out)
	}
	if !strings.Contains(out, "<?xml") {
		t.Error("serialized document missing XML declaration")
	}
}

func TestArrowMarkers(t *testing.T) {
	start := ArrowMarker("start_arrow", "start")
	end := ArrowMarker("end_arrow", "end")
	if got := start.SelectAttrValue("id", ""); got != "start_arrow" {
		t.Errorf("marker id = %q, want start_arrow", got)
	}
	sp := start.FindElement("path").SelectAttrValue("d", "")
	ep := end.FindElement("path").SelectAttrValue("d", "")
	if sp == ep {
		t.Error("start and end arrows should point in opposite directions")
	}
}

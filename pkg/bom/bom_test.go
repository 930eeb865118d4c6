package bom

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
)

// uBar is a U-shaped bar with three 100 mm legs.
func uBar(rounding float64) *rebar.Rebar {
	return &rebar.Rebar{
		Name:  "U-1",
		Shape: rebar.UShape,
		Base: geom.Polyline([]v3.Vec{
			{Y: 100}, {}, {X: 100}, {X: 100, Y: 100},
		}, false),
		BasePlacement: geom.Identity(),
		Diameter:      10,
		Amount:        2,
		Rounding:      rounding,
	}
}

func TestSharpEdgedLengthNoRounding(t *testing.T) {
	if got := SharpEdgedLength(uBar(0)); got != 300 {
		t.Errorf("SharpEdgedLength = %g, want 300", got)
	}
}

// Sharp-edged length is measured along the sharp corner polygon, so
// rounding must not change it.
func TestSharpEdgedLengthRounded(t *testing.T) {
	if got := SharpEdgedLength(uBar(0.5)); math.Abs(got-300) > 1e-9 {
		t.Errorf("SharpEdgedLength = %g, want 300", got)
	}
}

func TestSharpEdgedLengthNilBase(t *testing.T) {
	if got := SharpEdgedLength(&rebar.Rebar{Diameter: 10}); got != 0 {
		t.Errorf("SharpEdgedLength = %g, want 0", got)
	}
}

func TestEntries(t *testing.T) {
	run := uBar(0)
	run.PlacementList = []geom.Placement{
		geom.Identity(),
		geom.Translation(v3.Vec{Z: 200}),
		geom.Translation(v3.Vec{Z: 400}),
	}
	single := &rebar.Rebar{
		Name:          "S-1",
		Shape:         rebar.Straight,
		Base:          geom.Polyline([]v3.Vec{{}, {X: 450}}, false),
		BasePlacement: geom.Identity(),
		Diameter:      8,
		Amount:        4,
	}
	entries := Entries([]*rebar.Rebar{run, single})
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if got := entries[0].Count; got != 6 {
		t.Errorf("run count = %d, want Amount x placements = 6", got)
	}
	if got := entries[0].TotalLength; got != 1800 {
		t.Errorf("run total = %g, want 1800", got)
	}
	if got := entries[1].Count; got != 4 {
		t.Errorf("single count = %d, want 4", got)
	}
	if got := entries[1].SharpLength; got != 450 {
		t.Errorf("single length = %g, want 450", got)
	}
}

func TestDiameters(t *testing.T) {
	rebars := []*rebar.Rebar{
		{Diameter: 12}, {Diameter: 8}, {Diameter: 12}, {Diameter: 10},
	}
	got := Diameters(rebars)
	want := []float64{8, 10, 12}
	if len(got) != len(want) {
		t.Fatalf("Diameters = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Diameters[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestTotalsByDiameter(t *testing.T) {
	entries := []Entry{
		{Diameter: 8, TotalLength: 1000},
		{Diameter: 8, TotalLength: 500},
		{Diameter: 12, TotalLength: 300},
	}
	totals := TotalsByDiameter(entries)
	if got := totals[8]; got != 1500 {
		t.Errorf("totals[8] = %g, want 1500", got)
	}
	if got := totals[12]; got != 300 {
		t.Errorf("totals[12] = %g, want 300", got)
	}
}

func TestTableSVG(t *testing.T) {
	g := TableSVG(Entries([]*rebar.Rebar{uBar(0)}))
	if got := g.SelectAttrValue("id", ""); got != "bill_of_material" {
		t.Errorf("id = %q, want bill_of_material", got)
	}
	// Header row plus one entry row, six cells each, two elements per
	// cell.
	if got := len(g.ChildElements()); got != 24 {
		t.Errorf("table holds %d elements, want 24", got)
	}
	texts := g.FindElements("text")
	if got := texts[0].Text(); got != "Mark" {
		t.Errorf("first header = %q, want Mark", got)
	}
	if got := texts[6].Text(); got != "U-1" {
		t.Errorf("first data cell = %q, want U-1", got)
	}
	if got := texts[7].Text(); got != "UShapeRebar" {
		t.Errorf("shape cell = %q, want UShapeRebar", got)
	}
	if got := texts[11].Text(); got != "600" {
		t.Errorf("total cell = %q, want 600", got)
	}
}

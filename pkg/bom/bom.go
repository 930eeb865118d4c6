// Package bom derives a bill of material from the reinforcement
// model: per-mark entries with sharp-edged bar lengths, diameter
// totals and an SVG table rendering.
package bom

import (
	"fmt"
	"sort"

	"github.com/beevik/etree"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
	"github.com/chazu/ferro/pkg/svg"
)

// Entry is one bill-of-material row: a rebar mark with its shape,
// diameter, count and lengths in mm.
type Entry struct {
	Mark        string
	Shape       rebar.Shape
	Diameter    float64
	Count       int
	SharpLength float64 // length of one bar measured along sharp corners
	TotalLength float64 // SharpLength * Count
}

// SharpEdgedLength returns the bar length measured as if every
// rounded corner were sharp: the straight segments of the filleted
// profile plus twice the fillet radius per corner.
func SharpEdgedLength(r *rebar.Rebar) float64 {
	if r.Base == nil {
		return 0
	}
	radius := r.FilletRadius()
	if radius <= 0 {
		return r.Base.Length()
	}
	w := r.Base.Fillet(radius)
	var straight float64
	corners := 0
	for _, e := range w.Edges {
		if e.Kind == geom.EdgeArc {
			corners++
			continue
		}
		straight += e.Length()
	}
	return straight + 2*float64(corners)*radius
}

// Entries builds one bill-of-material entry per rebar, in input
// order. Rebars repeated along a placement list count every instance.
func Entries(rebars []*rebar.Rebar) []Entry {
	entries := make([]Entry, 0, len(rebars))
	for _, r := range rebars {
		count := r.Amount
		if n := len(r.PlacementList); n > 1 {
			count *= n
		}
		sharp := SharpEdgedLength(r)
		entries = append(entries, Entry{
			Mark:        r.Name,
			Shape:       r.Shape,
			Diameter:    r.Diameter,
			Count:       count,
			SharpLength: sharp,
			TotalLength: sharp * float64(count),
		})
	}
	return entries
}

// Diameters returns the unique bar diameters in ascending order.
func Diameters(rebars []*rebar.Rebar) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, r := range rebars {
		if !seen[r.Diameter] {
			seen[r.Diameter] = true
			out = append(out, r.Diameter)
		}
	}
	sort.Float64s(out)
	return out
}

// TotalsByDiameter sums total bar length per diameter.
func TotalsByDiameter(entries []Entry) map[float64]float64 {
	totals := make(map[float64]float64)
	for _, e := range entries {
		totals[e.Diameter] += e.TotalLength
	}
	return totals
}

// Table layout constants, in drawing units.
const (
	colWidth   = 120.0
	rowHeight  = 30.0
	fontFamily = "DejaVu Sans"
	fontSize   = "12px"
)

var columns = []string{"Mark", "Shape", "Dia (mm)", "Count", "Length (mm)", "Total (mm)"}

// TableSVG renders the bill of material as an SVG table group. Each
// cell is a rect path with a centered label.
func TableSVG(entries []Entry) *etree.Element {
	g := svg.Group("bill_of_material")
	addRow(g, 0, columns)
	for i, e := range entries {
		addRow(g, i+1, []string{
			e.Mark,
			e.Shape.String(),
			svg.Num(e.Diameter),
			fmt.Sprint(e.Count),
			fmt.Sprint(svg.Coord(e.SharpLength)),
			fmt.Sprint(svg.Coord(e.TotalLength)),
		})
	}
	return g
}

func addRow(g *etree.Element, row int, cells []string) {
	y := float64(row) * rowHeight
	for col, cell := range cells {
		x := float64(col) * colWidth
		d := fmt.Sprintf("M%d %d H%d V%d H%d Z",
			svg.Coord(x), svg.Coord(y), svg.Coord(x+colWidth), svg.Coord(y+rowHeight), svg.Coord(x))
		g.AddChild(svg.Path(d, "", "stroke:#000000"))
		text := svg.Text(cell, x+colWidth/2, y+rowHeight/2, fontFamily, fontSize, "middle", "central")
		g.AddChild(text)
	}
}

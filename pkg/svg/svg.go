// Package svg builds and queries the SVG element tree used by
// reinforcement drawings. Elements are etree nodes rather than
// serialized text so that later shape builders can test whether an
// equivalent primitive has already been emitted.
package svg

import (
	"fmt"
	"math"

	"github.com/beevik/etree"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// stroke is the drawing stroke applied to all bar geometry.
const stroke = "stroke:#000000;fill:none"

// Root returns an empty svg root element.
func Root() *etree.Element {
	e := etree.NewElement("svg")
	e.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	e.CreateAttr("version", "1.1")
	return e
}

// Group returns a g element with the given id. An empty id is
// omitted.
func Group(id string) *etree.Element {
	e := etree.NewElement("g")
	if id != "" {
		e.CreateAttr("id", id)
	}
	return e
}

// Document wraps a root element in an XML document with declaration,
// indented for readability.
func Document(root *etree.Element) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	doc.Indent(2)
	return doc
}

// Coord rounds a drawing coordinate to the nearest integer unit. All
// emitted path data uses integer coordinates so that containment
// queries are exact string matches.
func Coord(v float64) int {
	return int(math.Round(v))
}

// Num formats a non-coordinate numeric attribute.
func Num(v float64) string {
	return fmt.Sprintf("%g", v)
}

// Point returns a filled circle marking a bar seen end-on.
func Point(p v2.Vec, radius float64) *etree.Element {
	e := etree.NewElement("circle")
	e.CreateAttr("cx", fmt.Sprint(Coord(p.X)))
	e.CreateAttr("cy", fmt.Sprint(Coord(p.Y)))
	e.CreateAttr("r", Num(radius))
	e.CreateAttr("fill", "#000000")
	return e
}

// IsPointIn reports whether an equivalent point circle already exists
// under root.
func IsPointIn(p v2.Vec, root *etree.Element) bool {
	path := fmt.Sprintf(".//circle[@cx='%d'][@cy='%d']", Coord(p.X), Coord(p.Y))
	return root.FindElement(path) != nil
}

func lineData(p1, p2 v2.Vec) string {
	return fmt.Sprintf("M%d %d L%d %d", Coord(p1.X), Coord(p1.Y), Coord(p2.X), Coord(p2.Y))
}

// Line returns a straight path element from p1 to p2.
func Line(p1, p2 v2.Vec) *etree.Element {
	e := etree.NewElement("path")
	e.CreateAttr("style", stroke)
	e.CreateAttr("d", lineData(p1, p2))
	return e
}

// IsLineIn reports whether an equivalent line, in either endpoint
// order, already exists under root.
func IsLineIn(p1, p2 v2.Vec, root *etree.Element) bool {
	if root.FindElement(fmt.Sprintf(".//path[@d='%s']", lineData(p1, p2))) != nil {
		return true
	}
	return root.FindElement(fmt.Sprintf(".//path[@d='%s']", lineData(p2, p1))) != nil
}

func arcData(p1, p2 v2.Vec, radius float64, sweep bool) string {
	flag := 0
	if sweep {
		flag = 1
	}
	return fmt.Sprintf("M%d %d A%d %d 0 0 %d %d %d",
		Coord(p1.X), Coord(p1.Y), Coord(radius), Coord(radius), flag, Coord(p2.X), Coord(p2.Y))
}

// RoundCorner returns a circular arc path element from p1 to p2 with
// the given fillet radius and sweep flag.
func RoundCorner(p1, p2 v2.Vec, radius float64, sweep bool) *etree.Element {
	e := etree.NewElement("path")
	e.CreateAttr("style", stroke)
	e.CreateAttr("d", arcData(p1, p2, radius, sweep))
	return e
}

// IsRoundCornerIn reports whether an equivalent arc already exists
// under root. The reversed endpoint order with inverted sweep flag
// traces the same corner and counts as a match.
func IsRoundCornerIn(p1, p2 v2.Vec, radius float64, sweep bool, root *etree.Element) bool {
	if root.FindElement(fmt.Sprintf(".//path[@d='%s']", arcData(p1, p2, radius, sweep))) != nil {
		return true
	}
	return root.FindElement(fmt.Sprintf(".//path[@d='%s']", arcData(p2, p1, radius, !sweep))) != nil
}

// Path returns a path element with explicit path data. markerStart
// and style are applied when non-empty.
func Path(d, markerStart, style string) *etree.Element {
	e := etree.NewElement("path")
	if markerStart != "" {
		e.CreateAttr("marker-start", markerStart)
	}
	if style != "" {
		e.CreateAttr("style", style+";fill:none")
	}
	e.CreateAttr("d", d)
	return e
}

// Text returns a text element. anchor sets text-anchor and baseline
// sets dominant-baseline; either may be empty.
func Text(s string, x, y float64, family, size, anchor, baseline string) *etree.Element {
	e := etree.NewElement("text")
	e.CreateAttr("x", fmt.Sprint(Coord(x)))
	e.CreateAttr("y", fmt.Sprint(Coord(y)))
	e.CreateAttr("font-family", family)
	e.CreateAttr("font-size", size)
	if anchor != "" {
		e.CreateAttr("text-anchor", anchor)
	}
	if baseline != "" {
		e.CreateAttr("dominant-baseline", baseline)
	}
	e.SetText(s)
	return e
}

// ArrowMarker returns a filled arrowhead marker definition. direction
// is "start" or "end"; a start arrow points back along the line, an
// end arrow points forward.
func ArrowMarker(id, direction string) *etree.Element {
	m := etree.NewElement("marker")
	m.CreateAttr("id", id)
	m.CreateAttr("orient", "auto")
	m.CreateAttr("refX", "0")
	m.CreateAttr("refY", "0")
	m.CreateAttr("style", "overflow:visible")
	p := etree.NewElement("path")
	if direction == "start" {
		p.CreateAttr("d", "M0 0 L8 -3 L8 3 Z")
	} else {
		p.CreateAttr("d", "M0 0 L-8 -3 L-8 3 Z")
	}
	p.CreateAttr("fill", "#000000")
	m.AddChild(p)
	return m
}

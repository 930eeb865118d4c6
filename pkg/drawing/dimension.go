package drawing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/chazu/ferro/pkg/svg"
)

// DimensionOffsetStep is the spacing added between successive
// dimension lines of the same orientation.
const DimensionOffsetStep = 100

// LineStyle selects the dash pattern of a dimension line.
type LineStyle int

const (
	LineContinuous LineStyle = iota
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
)

// dashArray returns the stroke-dasharray value for the style, scaled
// by stroke width. Continuous returns the empty string.
func (s LineStyle) dashArray(width float64) string {
	dash := svg.Num(4 * width)
	dot := svg.Num(width)
	gap := svg.Num(2 * width)
	switch s {
	case LineDash:
		return dash + "," + gap
	case LineDot:
		return dot + "," + gap
	case LineDashDot:
		return strings.Join([]string{dash, gap, dot, gap}, ",")
	case LineDashDotDot:
		return strings.Join([]string{dash, gap, dot, gap, dot, gap}, ",")
	}
	return ""
}

// LineSymbol selects the glyph drawn at a dimension line terminal or
// waypoint.
type LineSymbol int

const (
	SymbolArrow LineSymbol = iota
	SymbolTick
	SymbolDot
	SymbolNone
)

// TextPosition selects where the dimension label sits along the line.
type TextPosition int

const (
	MidOfLine TextPosition = iota
	StartOfLine
	EndOfLine
)

// DimensionStyle controls dimension line and label appearance.
type DimensionStyle struct {
	Format       string // label pattern; %C expands to count, %D to diameter
	FontFamily   string
	FontSize     string
	TextColor    string
	LineColor    string
	StrokeWidth  float64
	LineStyle    LineStyle
	TextPosition TextPosition
	StartSymbol  LineSymbol
	MidSymbol    LineSymbol
	EndSymbol    LineSymbol
}

// DefaultDimensionStyle returns the style used when a drawing request
// does not carry one.
func DefaultDimensionStyle() DimensionStyle {
	return DimensionStyle{
		Format:      "%C⌀%D",
		FontFamily:  "DejaVu Sans",
		FontSize:    "10px",
		TextColor:   "#000000",
		LineColor:   "#000000",
		StrokeWidth: 0.25,
		StartSymbol: SymbolArrow,
		MidSymbol:   SymbolDot,
		EndSymbol:   SymbolArrow,
	}
}

// FormatLabel expands a dimension label pattern. %C is the bar count,
// %D the bar diameter and %% a literal percent sign.
func FormatLabel(format string, count int, diameter float64) string {
	var b strings.Builder
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		i++
		switch format[i] {
		case 'C':
			b.WriteString(strconv.Itoa(count))
		case 'D':
			b.WriteString(strconv.FormatFloat(diameter, 'f', -1, 64))
		case '%':
			b.WriteByte('%')
		default:
			b.WriteByte('%')
			b.WriteByte(format[i])
		}
	}
	return b.String()
}

// dimOffsets tracks the running dimension line anchors for one
// drawing pass. Horizontal dimensions advance hY, vertical ones
// advance vX, keeping successive annotations separated.
type dimOffsets struct {
	hX, hY, vX, vY float64
}

// lineDimension builds the leader-and-label annotation for a straight
// bar between projected points p1 and p2. It reports whether the
// placed dimension was horizontal so the caller can advance the
// matching offset.
func lineDimension(p1, p2 v2.Vec, label string, off dimOffsets, style DimensionStyle) (*etree.Element, bool) {
	g := etree.NewElement("g")
	if math.Abs(p2.Y-p1.Y) < math.Abs(p2.X-p1.X) {
		// Mostly horizontal bar: drop a vertical leader from the bar
		// down to the dimension label row.
		x := off.vX
		y := (x-p1.X)*(p2.Y-p1.Y)/(p2.X-p1.X) + p1.Y
		d := fmt.Sprintf("M%d %d V%d", svg.Coord(x), svg.Coord(y), svg.Coord(off.vY))
		g.AddChild(svg.Path(d, "url(#start_arrow)", "stroke:"+style.LineColor))
		g.AddChild(svg.Text(label, off.vX, off.vY, style.FontFamily, style.FontSize, "middle", ""))
		return g, false
	}
	y := off.hY
	x := (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y) + p1.X
	d := fmt.Sprintf("M%d %d H%d", svg.Coord(x), svg.Coord(y), svg.Coord(off.hX))
	g.AddChild(svg.Path(d, "url(#start_arrow)", "stroke:"+style.LineColor))
	g.AddChild(svg.Text(label, off.hX, off.hY, style.FontFamily, style.FontSize, "", "central"))
	return g, true
}

// DimensionLineSVG renders a free-standing dimension line through the
// given waypoints with the styled line, terminal symbols and label.
// At least two waypoints are required.
func DimensionLineSVG(points []v2.Vec, label string, style DimensionStyle) (*etree.Element, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("drawing: dimension line needs at least 2 waypoints, got %d", len(points))
	}
	g := etree.NewElement("g")

	var d strings.Builder
	fmt.Fprintf(&d, "M%d %d", svg.Coord(points[0].X), svg.Coord(points[0].Y))
	for _, p := range points[1:] {
		fmt.Fprintf(&d, " L%d %d", svg.Coord(p.X), svg.Coord(p.Y))
	}
	line := svg.Path(d.String(), "", "")
	lineStyle := fmt.Sprintf("stroke:%s;stroke-width:%s;fill:none", style.LineColor, svg.Num(style.StrokeWidth))
	if dash := style.LineStyle.dashArray(style.StrokeWidth); dash != "" {
		lineStyle += ";stroke-dasharray:" + dash
	}
	line.CreateAttr("style", lineStyle)
	if style.StartSymbol == SymbolArrow {
		line.CreateAttr("marker-start", "url(#start_arrow)")
	}
	if style.EndSymbol == SymbolArrow {
		line.CreateAttr("marker-end", "url(#end_arrow)")
	}
	g.AddChild(line)

	addSymbol(g, points[0], style.StartSymbol, style)
	for _, p := range points[1 : len(points)-1] {
		addSymbol(g, p, style.MidSymbol, style)
	}
	addSymbol(g, points[len(points)-1], style.EndSymbol, style)

	at := labelAnchor(points, style.TextPosition)
	text := svg.Text(label, at.X, at.Y, style.FontFamily, style.FontSize, "middle", "")
	text.CreateAttr("fill", style.TextColor)
	g.AddChild(text)
	return g, nil
}

// addSymbol draws a tick or dot waypoint glyph. Arrow terminals are
// handled by line markers and SymbolNone draws nothing.
func addSymbol(g *etree.Element, p v2.Vec, sym LineSymbol, style DimensionStyle) {
	switch sym {
	case SymbolTick:
		d := fmt.Sprintf("M%d %d L%d %d",
			svg.Coord(p.X-2), svg.Coord(p.Y+2), svg.Coord(p.X+2), svg.Coord(p.Y-2))
		g.AddChild(svg.Path(d, "", "stroke:"+style.LineColor))
	case SymbolDot:
		g.AddChild(svg.Point(p, 2*style.StrokeWidth))
	}
}

func labelAnchor(points []v2.Vec, pos TextPosition) v2.Vec {
	switch pos {
	case StartOfLine:
		return points[0]
	case EndOfLine:
		return points[len(points)-1]
	}
	a, b := points[0], points[len(points)-1]
	return v2.Vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

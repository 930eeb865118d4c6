package drawing

import (
	"fmt"
	"math"

	"github.com/beevik/etree"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
	"github.com/chazu/ferro/pkg/svg"
)

// Drawing margins, in drawing units.
const (
	marginX     = 60
	marginY     = 100
	extentPad   = 200
	dimInset    = 50
	dimVYOffset = -50
)

// Options configures one drawing request.
type Options struct {
	// Style controls dimension annotations. The zero value selects
	// DefaultDimensionStyle.
	Style DimensionStyle
	// Exporter renders helical/custom rebars and the structure
	// outline. Nil selects WireExporter.
	Exporter ShapeExporter
	// OccludeExported also runs exported helical and custom shapes
	// through duplicate suppression. The default false preserves the
	// assumption that such reinforcement is never occluded.
	OccludeExported bool
}

// categoryOrder fixes the build order. Later categories test for
// duplicates against everything earlier ones emitted, so the order is
// part of the drawing's meaning, not a convenience.
var categoryOrder = []rebar.Shape{
	rebar.Stirrup,
	rebar.BentShape,
	rebar.UShape,
	rebar.LShape,
	rebar.Straight,
	rebar.Helical,
	rebar.Custom,
}

// cornerIndexes selects the four bounding-box corners spanning the
// projected drawing extent for a view axis.
func cornerIndexes(axis v3.Vec) [4]int {
	switch {
	case axisIs(axis, v3.Vec{Y: -1}):
		return [4]int{0, 1, 4, 5}
	case axisIs(axis, v3.Vec{Y: 1}):
		return [4]int{2, 3, 6, 7}
	case axisIs(axis, v3.Vec{Z: 1}):
		return [4]int{0, 1, 2, 3}
	case axisIs(axis, v3.Vec{Z: -1}):
		return [4]int{4, 5, 6, 7}
	case axisIs(axis, v3.Vec{X: 1}):
		return [4]int{1, 2, 5, 6}
	default:
		return [4]int{0, 3, 4, 7}
	}
}

func axisIs(axis, want v3.Vec) bool {
	return axis.Sub(want).Length() < geom.Epsilon
}

// Extent is the projected drawing extent in view plane coordinates.
type Extent struct {
	MinX, MinY, MaxX, MaxY float64
}

// DrawingExtent projects the relevant corners of the box enclosing
// the structure and all rebars onto the view plane.
func DrawingExtent(structure *rebar.Structure, rebars []*rebar.Rebar, plane ViewPlane) Extent {
	box := structure.BoundingBox()
	for _, r := range rebars {
		box = box.Union(r.BoundingBox())
	}
	idx := cornerIndexes(plane.Axis)
	first := Project(box.Corner(idx[0]), plane)
	ext := Extent{MinX: first.X, MinY: first.Y, MaxX: first.X, MaxY: first.Y}
	for _, i := range idx[1:] {
		p := Project(box.Corner(i), plane)
		ext.MinX = math.Min(ext.MinX, p.X)
		ext.MinY = math.Min(ext.MinY, p.Y)
		ext.MaxX = math.Max(ext.MaxX, p.X)
		ext.MaxY = math.Max(ext.MaxY, p.Y)
	}
	return ext
}

// GenerateView resolves a named view and generates the drawing.
func GenerateView(structure *rebar.Structure, rebars []*rebar.Rebar, view string, opts Options) (*etree.Element, error) {
	plane, err := ViewPlaneFor(view)
	if err != nil {
		return nil, err
	}
	return Generate(structure, rebars, plane, opts)
}

// Generate builds the reinforcement drawing for one view plane. The
// returned element is the root svg document element. All accumulator
// state is local to the call, so independent drawing requests may run
// concurrently.
func Generate(structure *rebar.Structure, rebars []*rebar.Rebar, plane ViewPlane, opts Options) (*etree.Element, error) {
	if structure == nil {
		return nil, fmt.Errorf("drawing: structure is required")
	}
	if opts.Exporter == nil {
		opts.Exporter = WireExporter{}
	}
	if opts.Style == (DimensionStyle{}) {
		opts.Style = DefaultDimensionStyle()
	}

	ext := DrawingExtent(structure, rebars, plane)

	root := svg.Root()
	defs := etree.NewElement("defs")
	defs.AddChild(svg.ArrowMarker("start_arrow", "start"))
	defs.AddChild(svg.ArrowMarker("end_arrow", "end"))
	root.AddChild(defs)

	drawingGroup := svg.Group("reinforcement_drawing")
	root.AddChild(drawingGroup)

	byShape := make(map[rebar.Shape][]*rebar.Rebar)
	for _, r := range rebars {
		byShape[r.Shape] = append(byShape[r.Shape], r)
	}

	rebarsSVG := svg.Group("Rebars")
	drawingGroup.AddChild(rebarsSVG)

	b := &builder{
		plane:  plane,
		rebars: rebarsSVG,
		style:  opts.Style,
		off: dimOffsets{
			hX: ext.MaxX + dimInset,
			hY: ext.MinY + dimInset,
			vX: ext.MinX + dimInset,
			vY: ext.MinY + dimVYOffset,
		},
	}

	for _, shape := range categoryOrder {
		categorySVG := svg.Group(shape.String())
		rebarsSVG.AddChild(categorySVG)
		for _, r := range byShape[shape] {
			el, visible := b.buildRebar(shape, r, opts)
			if visible {
				categorySVG.AddChild(el)
			}
		}
	}

	structureSVG := svg.Group("structure")
	structureSVG.AddChild(opts.Exporter.StructureSVG(structure, plane))
	drawingGroup.AddChild(structureSVG)

	drawingGroup.CreateAttr("transform", fmt.Sprintf("translate(%d, %d)",
		svg.Coord(-ext.MinX+marginX), svg.Coord(-ext.MinY+marginY)))

	width := svg.Coord(ext.MaxX - ext.MinX + extentPad)
	height := svg.Coord(ext.MaxY - ext.MinY + extentPad)
	root.CreateAttr("width", fmt.Sprintf("%dmm", width))
	root.CreateAttr("height", fmt.Sprintf("%dmm", height))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))

	return root, nil
}

// buildRebar dispatches one rebar to its category builder.
func (b *builder) buildRebar(shape rebar.Shape, r *rebar.Rebar, opts Options) (*etree.Element, bool) {
	switch shape {
	case rebar.Stirrup:
		return b.stirrupSVG(r)
	case rebar.BentShape, rebar.UShape, rebar.LShape:
		return b.bentProfileSVG(r)
	case rebar.Straight:
		return b.straightSVG(r)
	default:
		el := opts.Exporter.RebarSVG(r, b.plane)
		if opts.OccludeExported {
			return el, hasNovelGeometry(el, b.rebars)
		}
		return el, true
	}
}

// hasNovelGeometry reports whether an exported fragment contains any
// primitive not already present in the accumulated SVG.
func hasNovelGeometry(el, acc *etree.Element) bool {
	for _, p := range el.FindElements(".//path") {
		d := p.SelectAttrValue("d", "")
		if d == "" {
			continue
		}
		if acc.FindElement(fmt.Sprintf(".//path[@d='%s']", d)) == nil {
			return true
		}
	}
	for _, c := range el.FindElements(".//circle") {
		cx := c.SelectAttrValue("cx", "")
		cy := c.SelectAttrValue("cy", "")
		if acc.FindElement(fmt.Sprintf(".//circle[@cx='%s'][@cy='%s']", cx, cy)) == nil {
			return true
		}
	}
	return false
}

package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/chazu/ferro/pkg/drawing"
)

// styleFile is the TOML drawing style format.
type styleFile struct {
	Dimension dimensionTOML `toml:"dimension"`
}

type dimensionTOML struct {
	Format       string  `toml:"format"`
	FontFamily   string  `toml:"font_family"`
	FontSize     string  `toml:"font_size"`
	TextColor    string  `toml:"text_color"`
	LineColor    string  `toml:"line_color"`
	StrokeWidth  float64 `toml:"stroke_width"`
	LineStyle    string  `toml:"line_style"`
	TextPosition string  `toml:"text_position"`
	StartSymbol  string  `toml:"start_symbol"`
	MidSymbol    string  `toml:"mid_symbol"`
	EndSymbol    string  `toml:"end_symbol"`
}

var lineStyles = map[string]drawing.LineStyle{
	"Continuous": drawing.LineContinuous,
	"Dash":       drawing.LineDash,
	"Dot":        drawing.LineDot,
	"DashDot":    drawing.LineDashDot,
	"DashDotDot": drawing.LineDashDotDot,
}

var lineSymbols = map[string]drawing.LineSymbol{
	"FilledArrow": drawing.SymbolArrow,
	"Tick":        drawing.SymbolTick,
	"Dot":         drawing.SymbolDot,
	"None":        drawing.SymbolNone,
}

var textPositions = map[string]drawing.TextPosition{
	"MidOfLine":   drawing.MidOfLine,
	"StartOfLine": drawing.StartOfLine,
	"EndOfLine":   drawing.EndOfLine,
}

// loadStyle reads a TOML style file on top of the default dimension
// style. Fields left out of the file keep their defaults.
func loadStyle(path string) (drawing.DimensionStyle, error) {
	style := drawing.DefaultDimensionStyle()
	if path == "" {
		return style, nil
	}
	var f styleFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return style, fmt.Errorf("parse style %s: %w", path, err)
	}
	d := f.Dimension
	if d.Format != "" {
		style.Format = d.Format
	}
	if d.FontFamily != "" {
		style.FontFamily = d.FontFamily
	}
	if d.FontSize != "" {
		style.FontSize = d.FontSize
	}
	if d.TextColor != "" {
		style.TextColor = d.TextColor
	}
	if d.LineColor != "" {
		style.LineColor = d.LineColor
	}
	if d.StrokeWidth > 0 {
		style.StrokeWidth = d.StrokeWidth
	}
	if d.LineStyle != "" {
		v, ok := lineStyles[d.LineStyle]
		if !ok {
			return style, fmt.Errorf("unknown line_style %q", d.LineStyle)
		}
		style.LineStyle = v
	}
	if d.TextPosition != "" {
		v, ok := textPositions[d.TextPosition]
		if !ok {
			return style, fmt.Errorf("unknown text_position %q", d.TextPosition)
		}
		style.TextPosition = v
	}
	if err := setSymbol(&style.StartSymbol, "start_symbol", d.StartSymbol); err != nil {
		return style, err
	}
	if err := setSymbol(&style.MidSymbol, "mid_symbol", d.MidSymbol); err != nil {
		return style, err
	}
	if err := setSymbol(&style.EndSymbol, "end_symbol", d.EndSymbol); err != nil {
		return style, err
	}
	return style, nil
}

func setSymbol(field *drawing.LineSymbol, key, raw string) error {
	if raw == "" {
		return nil
	}
	v, ok := lineSymbols[raw]
	if !ok {
		return fmt.Errorf("unknown %s %q", key, raw)
	}
	*field = v
	return nil
}

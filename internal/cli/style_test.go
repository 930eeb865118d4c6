package cli

import (
	"strings"
	"testing"

	"github.com/chazu/ferro/pkg/drawing"
)

func TestLoadStyleDefault(t *testing.T) {
	style, err := loadStyle("")
	if err != nil {
		t.Fatalf("loadStyle: %v", err)
	}
	if style != drawing.DefaultDimensionStyle() {
		t.Errorf("empty path should yield the default style, got %+v", style)
	}
}

func TestLoadStyleOverlay(t *testing.T) {
	path := writeFile(t, "style.toml", `[dimension]
format = "%C x %D"
font_size = "12px"
line_style = "DashDot"
text_position = "EndOfLine"
start_symbol = "Tick"
end_symbol = "None"
`)
	style, err := loadStyle(path)
	if err != nil {
		t.Fatalf("loadStyle: %v", err)
	}
	if style.Format != "%C x %D" {
		t.Errorf("Format = %q", style.Format)
	}
	if style.FontSize != "12px" {
		t.Errorf("FontSize = %q", style.FontSize)
	}
	if style.LineStyle != drawing.LineDashDot {
		t.Errorf("LineStyle = %v, want DashDot", style.LineStyle)
	}
	if style.TextPosition != drawing.EndOfLine {
		t.Errorf("TextPosition = %v, want EndOfLine", style.TextPosition)
	}
	if style.StartSymbol != drawing.SymbolTick {
		t.Errorf("StartSymbol = %v, want Tick", style.StartSymbol)
	}
	if style.EndSymbol != drawing.SymbolNone {
		t.Errorf("EndSymbol = %v, want None", style.EndSymbol)
	}
	// Untouched fields keep their defaults.
	def := drawing.DefaultDimensionStyle()
	if style.FontFamily != def.FontFamily {
		t.Errorf("FontFamily = %q, want default %q", style.FontFamily, def.FontFamily)
	}
	if style.MidSymbol != def.MidSymbol {
		t.Errorf("MidSymbol = %v, want default %v", style.MidSymbol, def.MidSymbol)
	}
}

func TestLoadStyleUnknownValues(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"line_style", "[dimension]\nline_style = \"Wavy\"\n", "unknown line_style"},
		{"text_position", "[dimension]\ntext_position = \"Above\"\n", "unknown text_position"},
		{"symbol", "[dimension]\nmid_symbol = \"Star\"\n", "unknown mid_symbol"},
	}
	for _, tt := range tests {
		path := writeFile(t, tt.name+".toml", tt.content)
		_, err := loadStyle(path)
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want %q", tt.name, err, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	dir, err := parseDirection("0,-1,0")
	if err != nil {
		t.Fatalf("parseDirection: %v", err)
	}
	if dir.X != 0 || dir.Y != -1 || dir.Z != 0 {
		t.Errorf("dir = %v, want (0,-1,0)", dir)
	}
	for _, bad := range []string{"1,2", "a,b,c", "1;2;3"} {
		if _, err := parseDirection(bad); err == nil {
			t.Errorf("parseDirection(%q) should fail", bad)
		}
	}
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/chazu/ferro/pkg/rebar"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const testModel = `{
  "structure": {
    "name": "beam",
    "wires": [
      {"points": [[0,0,0],[500,0,0],[500,200,0],[0,200,0]], "closed": true}
    ]
  },
  "rebars": [
    {
      "name": "main-1",
      "shape": "StraightRebar",
      "diameter": 8,
      "amount": 2,
      "base": {"points": [[0,0,0],[400,0,0]]},
      "base_placement": {"position": [50,100,0], "rotation": [0,0,0]},
      "placements": [{"position": [0,0,0], "rotation": [0,0,0]}]
    },
    {
      "shape": "Stirrup",
      "diameter": 10,
      "amount": 1,
      "rounding": 2,
      "direction": [0,0,1],
      "base": {"points": [[0,0,0],[100,0,0],[100,50,0],[0,50,0]], "closed": true}
    }
  ]
}`

func TestLoadModel(t *testing.T) {
	path := writeFile(t, "model.json", testModel)
	structure, rebars, err := loadModel(path)
	if err != nil {
		t.Fatalf("loadModel: %v", err)
	}
	if structure.Name != "beam" {
		t.Errorf("structure name = %q, want beam", structure.Name)
	}
	if len(structure.Wires) != 1 || !structure.Wires[0].Closed {
		t.Fatalf("structure wires = %+v, want one closed wire", structure.Wires)
	}
	if len(rebars) != 2 {
		t.Fatalf("got %d rebars, want 2", len(rebars))
	}

	main := rebars[0]
	if main.Name != "main-1" || main.Shape != rebar.Straight {
		t.Errorf("rebar 0 = %q/%v, want main-1/Straight", main.Name, main.Shape)
	}
	start := main.ShapeWire().Vertexes()[0]
	if start.Sub(v3.Vec{X: 50, Y: 100}).Length() > 1e-12 {
		t.Errorf("placed start = %v, want (50,100,0)", start)
	}
	if len(main.PlacementList) != 1 {
		t.Errorf("placements = %d, want 1", len(main.PlacementList))
	}

	stirrup := rebars[1]
	if stirrup.Shape != rebar.Stirrup {
		t.Errorf("rebar 1 shape = %v, want Stirrup", stirrup.Shape)
	}
	if !strings.HasPrefix(stirrup.Name, "Rebar-") {
		t.Errorf("unnamed rebar got name %q, want generated Rebar- prefix", stirrup.Name)
	}
	if stirrup.Direction.Sub(v3.Vec{Z: 1}).Length() > 1e-12 {
		t.Errorf("direction = %v, want +Z", stirrup.Direction)
	}
	if got := stirrup.FilletRadius(); got != 20 {
		t.Errorf("fillet radius = %g, want 20", got)
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, _, err := loadModel(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadModelBadJSON(t *testing.T) {
	path := writeFile(t, "bad.json", "{not json")
	if _, _, err := loadModel(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadModelShortWire(t *testing.T) {
	path := writeFile(t, "short.json", `{
  "structure": {"name": "b", "wires": []},
  "rebars": [{"shape": "StraightRebar", "base": {"points": [[0,0,0]]}}]
}`)
	_, _, err := loadModel(path)
	if err == nil || !strings.Contains(err.Error(), "at least 2 points") {
		t.Errorf("err = %v, want short wire error", err)
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/google/uuid"

	"github.com/chazu/ferro/pkg/geom"
	"github.com/chazu/ferro/pkg/rebar"
)

// modelFile is the JSON reinforcement model format consumed by the
// CLI: one structural member plus a list of rebars.
type modelFile struct {
	Structure structureJSON `json:"structure"`
	Rebars    []rebarJSON   `json:"rebars"`
}

type structureJSON struct {
	Name  string     `json:"name"`
	Wires []wireJSON `json:"wires"`
}

type wireJSON struct {
	Points [][3]float64 `json:"points"`
	Closed bool         `json:"closed"`
}

type placementJSON struct {
	Position [3]float64 `json:"position"`
	Rotation [3]float64 `json:"rotation"` // Euler angles in degrees, X then Y then Z
}

type rebarJSON struct {
	Name          string          `json:"name"`
	Shape         string          `json:"shape"`
	Diameter      float64         `json:"diameter"`
	Amount        int             `json:"amount"`
	Rounding      float64         `json:"rounding"`
	Direction     *[3]float64     `json:"direction,omitempty"`
	Base          wireJSON        `json:"base"`
	BasePlacement *placementJSON  `json:"base_placement,omitempty"`
	Placements    []placementJSON `json:"placements,omitempty"`
}

func vec(p [3]float64) v3.Vec {
	return v3.Vec{X: p[0], Y: p[1], Z: p[2]}
}

func (w wireJSON) wire() (*geom.Wire, error) {
	if len(w.Points) < 2 {
		return nil, fmt.Errorf("wire needs at least 2 points, got %d", len(w.Points))
	}
	points := make([]v3.Vec, len(w.Points))
	for i, p := range w.Points {
		points[i] = vec(p)
	}
	return geom.Polyline(points, w.Closed), nil
}

func (p *placementJSON) placement() geom.Placement {
	if p == nil {
		return geom.Identity()
	}
	return geom.New(vec(p.Position), p.Rotation[0], p.Rotation[1], p.Rotation[2])
}

// loadModel reads and converts a JSON model file.
func loadModel(path string) (*rebar.Structure, []*rebar.Rebar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read model: %w", err)
	}
	var m modelFile
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, nil, fmt.Errorf("parse model %s: %w", path, err)
	}

	structure := &rebar.Structure{Name: m.Structure.Name}
	for i, wj := range m.Structure.Wires {
		w, err := wj.wire()
		if err != nil {
			return nil, nil, fmt.Errorf("structure wire %d: %w", i, err)
		}
		structure.Wires = append(structure.Wires, w)
	}

	rebars := make([]*rebar.Rebar, 0, len(m.Rebars))
	for i, rj := range m.Rebars {
		base, err := rj.Base.wire()
		if err != nil {
			return nil, nil, fmt.Errorf("rebar %d: %w", i, err)
		}
		name := rj.Name
		if name == "" {
			name = "Rebar-" + uuid.NewString()[:8]
		}
		r := &rebar.Rebar{
			Name:          name,
			Shape:         rebar.ParseShape(rj.Shape),
			Base:          base,
			BasePlacement: rj.BasePlacement.placement(),
			Diameter:      rj.Diameter,
			Amount:        rj.Amount,
			Rounding:      rj.Rounding,
		}
		if rj.Direction != nil {
			r.Direction = vec(*rj.Direction)
		}
		for _, pj := range rj.Placements {
			r.PlacementList = append(r.PlacementList, pj.placement())
		}
		rebars = append(rebars, r)
	}
	return structure, rebars, nil
}

package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/spf13/cobra"

	"github.com/chazu/ferro/pkg/drawing"
	"github.com/chazu/ferro/pkg/svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output SVG path, "-" for stdout
	view      string // named view: Front, Rear, Left, Right, Top, Bottom
	direction string // explicit view direction "x,y,z", overrides --view
	style     string // optional TOML style file
	occlude   bool   // run helical/custom rebars through duplicate suppression
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render <model.json>",
		Short: "Render a reinforcement drawing from a JSON model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "out", "o", "-", "output SVG file (- for stdout)")
	cmd.Flags().StringVar(&opts.view, "view", "Front", "named view (Front, Rear, Left, Right, Top, Bottom)")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "explicit view direction as x,y,z (overrides --view)")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style file for dimension annotations")
	cmd.Flags().BoolVar(&opts.occlude, "occlude-exported", false, "deduplicate helical and custom rebars too")

	return cmd
}

// parseDirection parses an "x,y,z" flag value.
func parseDirection(s string) (v3.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v3.Vec{}, fmt.Errorf("direction must be x,y,z, got %q", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return v3.Vec{}, fmt.Errorf("direction component %q: %w", p, err)
		}
		c[i] = v
	}
	return v3.Vec{X: c[0], Y: c[1], Z: c[2]}, nil
}

func runRender(cmd *cobra.Command, modelPath string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	structure, rebars, err := loadModel(modelPath)
	if err != nil {
		return err
	}
	logger.Debug("model loaded", "structure", structure.Name, "rebars", len(rebars))

	style, err := loadStyle(opts.style)
	if err != nil {
		return err
	}

	plane, err := resolvePlane(opts)
	if err != nil {
		return err
	}

	root, err := drawing.Generate(structure, rebars, plane, drawing.Options{
		Style:           style,
		OccludeExported: opts.occlude,
	})
	if err != nil {
		return err
	}

	out, err := svg.Document(root).WriteToString()
	if err != nil {
		return fmt.Errorf("serialize drawing: %w", err)
	}
	if opts.output == "-" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(opts.output, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write drawing: %w", err)
	}
	logger.Info("drawing written", "path", opts.output)
	return nil
}

func resolvePlane(opts renderOpts) (drawing.ViewPlane, error) {
	if opts.direction != "" {
		dir, err := parseDirection(opts.direction)
		if err != nil {
			return drawing.ViewPlane{}, err
		}
		return drawing.ViewPlaneFromDirection(dir)
	}
	return drawing.ViewPlaneFor(opts.view)
}

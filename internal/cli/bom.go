package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/ferro/pkg/bom"
	"github.com/chazu/ferro/pkg/svg"
)

func newBOMCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "bom <model.json>",
		Short: "Render the bill of material table for a JSON model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			_, rebars, err := loadModel(args[0])
			if err != nil {
				return err
			}
			entries := bom.Entries(rebars)
			logger.Debug("bill of material computed", "entries", len(entries))

			root := svg.Root()
			root.AddChild(bom.TableSVG(entries))
			width := 6 * 120
			height := (len(entries) + 1) * 30
			root.CreateAttr("width", fmt.Sprintf("%dmm", width))
			root.CreateAttr("height", fmt.Sprintf("%dmm", height))
			root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", width, height))

			out, err := svg.Document(root).WriteToString()
			if err != nil {
				return fmt.Errorf("serialize table: %w", err)
			}
			if output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
			logger.Info("bill of material written", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "-", "output SVG file (- for stdout)")
	return cmd
}

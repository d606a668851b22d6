package cli

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/pipeline"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
)

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	var (
		flags  boardFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <scene>",
		Short: "Print where each shape of a scene is placed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Import(args[0])
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			flags.apply(cmd, &opts)

			runner := pipeline.NewRunner(nil, nil, c.Logger)
			tracker := runner.Resolve(cmd.Context(), sc, opts)

			if asJSON {
				enc := json.NewEncoder(c.Out)
				enc.SetIndent("", "  ")
				return enc.Encode(tracker.Set())
			}
			fmt.Fprintln(c.Out, StyleTitle.Render(sc.Name)+" "+StyleDim.Render(tracker.Viewport().String()))
			fmt.Fprintln(c.Out, placementTable(sc, tracker))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the placement set as JSON")
	return cmd
}

// placementTable renders one row per shape: index, kind, size, color and the
// resolved point. Unknown kinds are marked as not drawn.
func placementTable(sc scene.Scene, tracker *placement.Tracker) string {
	rows := make([][]string, 0, len(sc.Shapes))
	for i, d := range sc.Shapes {
		x, y := "-", "-"
		if pt, ok := tracker.Placement(i); ok {
			x, y = fmt.Sprintf("%.2f", pt.X), fmt.Sprintf("%.2f", pt.Y)
		}
		kind := d.Kind.String()
		if !d.Kind.Known() {
			kind += " (not drawn)"
		}
		rows = append(rows, []string{fmt.Sprint(i), kind, fmt.Sprintf("%g", d.Size), d.Color, x, y})
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "KIND", "SIZE", "COLOR", "X", "Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		String()
}

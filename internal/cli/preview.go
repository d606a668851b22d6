package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/matzehuels/shapeboard/pkg/render/board"
	"github.com/matzehuels/shapeboard/pkg/render/board/placement"
	"github.com/matzehuels/shapeboard/pkg/scene"
	"github.com/matzehuels/shapeboard/pkg/shape"
)

// Terminal cell size in board pixels. A cell is roughly twice as tall as wide.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	// previewChrome is the number of rows used by the header and help line.
	previewChrome = 3
)

const cellGlyph = "█"

// previewCommand creates the preview command.
func (c *CLI) previewCommand() *cobra.Command {
	var flags boardFlags

	cmd := &cobra.Command{
		Use:   "preview <scene>",
		Short: "Preview a scene in the terminal",
		Long: `Draw a scene in the terminal. The viewport is the terminal size at the
moment shapes are scattered.

Keys: r re-scatter, t toggle randomize, q quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Import(args[0])
			if err != nil {
				return err
			}
			opts := c.baseOptions()
			flags.apply(cmd, &opts)

			var rng placement.Rand
			if seed := opts.SeedFor(sc); seed != nil {
				rng = placement.NewRand(*seed)
			}
			m := newPreviewModel(sc, opts.RandomizeFor(sc), rng)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}

// previewModel is the bubbletea model of the terminal preview. Placements
// live in a tracker; the terminal size becomes the viewport for the next
// random draw.
type previewModel struct {
	name    string
	shapes  []shape.Descriptor
	style   board.Style
	tracker *placement.Tracker
	cols    int
	rows    int
}

func newPreviewModel(sc scene.Scene, randomize bool, rng placement.Rand) *previewModel {
	tracker := placement.NewTracker(placement.Viewport{}, rng)
	tracker.SetShapes(sc.Shapes)
	tracker.SetRandomize(randomize)
	return &previewModel{
		name:    sc.Name,
		shapes:  sc.Shapes,
		style:   sc.Style(),
		tracker: tracker,
	}
}

func (m *previewModel) Init() tea.Cmd { return nil }

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.tracker.Invalidate()
			m.sync()
		case "t":
			m.tracker.SetRandomize(!m.tracker.Randomize())
			m.sync()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = max(msg.Height-previewChrome, 1)
		m.tracker.SetViewport(m.viewport())
		// The first size message resolves the initial placements.
		m.tracker.Sync()
	}
	return m, nil
}

// sync resolves pending placements once the terminal size is known. Before
// that the tracker stays dirty and the first size message resolves it.
func (m *previewModel) sync() {
	if m.cols == 0 {
		return
	}
	m.tracker.Sync()
}

// viewport converts the drawable terminal area to board pixels.
func (m *previewModel) viewport() placement.Viewport {
	return placement.Viewport{Width: float64(m.cols) * cellWidth, Height: float64(m.rows) * cellHeight}
}

func (m *previewModel) View() string {
	var b strings.Builder
	mode := iconFixed
	if m.tracker.Randomize() {
		mode = iconRandom
	}
	b.WriteString(StyleTitle.Render(m.name))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d shapes · %s · %s", len(m.shapes), mode, m.tracker.Viewport())))
	b.WriteString("\n")

	if m.cols == 0 || !m.tracker.Resolved() {
		b.WriteString(StyleDim.Render("resolving placements..."))
		b.WriteString("\n")
	} else {
		c := board.Build(m.shapes, m.tracker, m.style, m.viewport())
		grid := rasterize(c, m.cols, m.rows)
		for _, row := range grid {
			for _, hex := range row {
				if hex == "" {
					b.WriteString(" ")
					continue
				}
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(cellGlyph))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(StyleDim.Render("r re-scatter  t toggle randomize  q quit"))
	return b.String()
}

// rasterize samples the container at the center of each terminal cell and
// returns the hex color painted there, or "" for empty cells. Later
// primitives paint over earlier ones.
func rasterize(c board.Container, cols, rows int) [][]string {
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}
	for _, p := range c.Children {
		hex, ok := terminalColor(p.Fill())
		if !ok {
			continue
		}
		for r := 0; r < rows; r++ {
			y := (float64(r) + 0.5) * cellHeight
			for col := 0; col < cols; col++ {
				x := (float64(col) + 0.5) * cellWidth
				if covers(p, x, y) {
					grid[r][col] = hex
				}
			}
		}
	}
	return grid
}

// covers reports whether point (x, y) lies inside the painted area of p.
func covers(p board.Primitive, x, y float64) bool {
	if pts, ok := p.Vertices(); ok {
		return inTriangle(pts, x, y)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return false
	}
	if p.Rounded {
		rx, ry := p.Width/2, p.Height/2
		dx, dy := (x-p.Left-rx)/rx, (y-p.Top-ry)/ry
		return dx*dx+dy*dy <= 1
	}
	return x >= p.Left && x < p.Left+p.Width && y >= p.Top && y < p.Top+p.Height
}

func inTriangle(pts [3]shape.Point, x, y float64) bool {
	sign := func(a, b shape.Point) float64 {
		return (x-b.X)*(a.Y-b.Y) - (a.X-b.X)*(y-b.Y)
	}
	d1 := sign(pts[0], pts[1])
	d2 := sign(pts[1], pts[2])
	d3 := sign(pts[2], pts[0])
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// terminalColor converts a CSS color to a hex string for lipgloss. Transparent
// and unparseable colors report false.
func terminalColor(css string) (string, bool) {
	c, ok := shape.ParseColor(css)
	if !ok {
		return "", false
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return "", false
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "", false
	}
	return cf.Hex(), true
}

// Package render draws a grid, its path counts and a revealed path for the
// terminal, using lipgloss for colour.
//
// Cell content follows a fixed precedence: the 1-based step number of a
// revealed path cell, then the path count (when ShowCounts is on and the
// count is positive), then S/E for start and end, x for obstacles and '.'
// for free cells.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/GreenMarioh/unique-paths-visualizer/grid"
	"github.com/GreenMarioh/unique-paths-visualizer/paths"
)

// Palette of the visualizer.
var (
	ColorStart    = lipgloss.Color("#16A34A") // green
	ColorEnd      = lipgloss.Color("#2563EB") // blue
	ColorObstacle = lipgloss.Color("#DC2626") // red
	ColorPath     = lipgloss.Color("#9333EA") // purple
	ColorCount    = lipgloss.Color("#FACC15") // yellow
	ColorFree     = lipgloss.Color("#9CA3AF") // gray
)

// Cell glyphs.
const (
	GlyphStart    = "S"
	GlyphEnd      = "E"
	GlyphObstacle = "x"
	GlyphFree     = "."
	saturatedText = "MAX"
)

// Options controls what Grid draws.
type Options struct {
	// ShowCounts overlays each reachable cell with its path count.
	ShowCounts bool
}

// Styles holds one lipgloss style per cell kind.
type Styles struct {
	Start, End, Obstacle, Free lipgloss.Style
	Path, Current, Count       lipgloss.Style
	Title, Muted               lipgloss.Style
}

// Renderer renders sessions to strings. It is stateless apart from its options.
type Renderer struct {
	opts   Options
	styles Styles
}

// New returns a Renderer bound to r. A nil r uses lipgloss's default
// renderer (stdout); pass lipgloss.NewRenderer(w) to target another writer.
func New(r *lipgloss.Renderer, opts Options) *Renderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Renderer{opts: opts, styles: newStyles(r)}
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Start:    r.NewStyle().Bold(true).Foreground(ColorStart),
		End:      r.NewStyle().Bold(true).Foreground(ColorEnd),
		Obstacle: r.NewStyle().Foreground(ColorObstacle),
		Free:     r.NewStyle().Foreground(ColorFree),
		Path:     r.NewStyle().Bold(true).Foreground(ColorPath),
		Current:  r.NewStyle().Bold(true).Foreground(ColorCount).Underline(true),
		Count:    r.NewStyle().Foreground(ColorCount),
		Title:    r.NewStyle().Bold(true).Foreground(ColorEnd),
		Muted:    r.NewStyle().Foreground(ColorFree),
	}
}

// SetShowCounts toggles the count overlay.
func (rd *Renderer) SetShowCounts(on bool) { rd.opts.ShowCounts = on }

// Grid draws g, one row per line, cells separated by a space and centred in
// a common width. t may be nil when counts are not shown; revealed may be
// empty.
func (rd *Renderer) Grid(g *grid.Grid, t *paths.Table, revealed paths.Path) string {
	rows, cols := g.Rows(), g.Cols()
	labels := make([][]string, rows)
	styles := make([][]lipgloss.Style, rows)
	width := 1
	for r := 0; r < rows; r++ {
		labels[r] = make([]string, cols)
		styles[r] = make([]lipgloss.Style, cols)
		for c := 0; c < cols; c++ {
			label, style := rd.cell(g, t, revealed, r, c)
			labels[r][c], styles[r][c] = label, style
			if n := len(label); n > width {
				width = n
			}
		}
	}

	var sb strings.Builder
	cells := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[c] = styles[r][c].Width(width).Align(lipgloss.Center).Render(labels[r][c])
		}
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(cells, " "))
	}
	return sb.String()
}

func (rd *Renderer) cell(g *grid.Grid, t *paths.Table, revealed paths.Path, r, c int) (string, lipgloss.Style) {
	coord := paths.Coord{Row: r, Col: c}
	if i := revealed.Index(coord); i >= 0 {
		if i == len(revealed)-1 {
			return strconv.Itoa(i + 1), rd.styles.Current
		}
		return strconv.Itoa(i + 1), rd.styles.Path
	}
	blocked := g.Blocked(r, c)
	if rd.opts.ShowCounts && t != nil && !blocked {
		if n := t.At(r, c); n > 0 {
			return formatCount(n), rd.styles.Count
		}
	}
	switch {
	case r == 0 && c == 0:
		return GlyphStart, rd.styles.Start
	case g.IsCorner(r, c):
		return GlyphEnd, rd.styles.End
	case blocked:
		return GlyphObstacle, rd.styles.Obstacle
	default:
		return GlyphFree, rd.styles.Free
	}
}

// Table draws the count table with right-aligned columns.
func (rd *Renderer) Table(t *paths.Table) string {
	vals := t.Values()
	width := 1
	for _, row := range vals {
		for _, v := range row {
			if n := len(formatCount(v)); n > width {
				width = n
			}
		}
	}
	var sb strings.Builder
	for r, row := range vals {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*s", width, formatCount(v))
		}
	}
	return sb.String()
}

// Summary reports the total and, once a path is shown, its length.
func (rd *Renderer) Summary(t *paths.Table, revealed paths.Path, animating bool) string {
	var sb strings.Builder
	sb.WriteString("Total Unique Paths: ")
	sb.WriteString(rd.styles.Title.Render(formatCount(t.Total())))
	if t.Saturated() {
		sb.WriteString(rd.styles.Muted.Render(" (saturated)"))
	}
	if len(revealed) > 0 {
		fmt.Fprintf(&sb, "\nCurrent path: %d steps", len(revealed))
		if animating {
			sb.WriteString(" (animating...)")
		}
	}
	return sb.String()
}

// Path formats p as "(r,c) -> (r,c) -> ...", or "no path" when empty.
func (rd *Renderer) Path(p paths.Path) string {
	if len(p) == 0 {
		return "no path"
	}
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

func formatCount(n uint64) string {
	if n == math.MaxUint64 {
		return saturatedText
	}
	return strconv.FormatUint(n, 10)
}

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// CanvasWindow is one window drawn on the layout canvas.
type CanvasWindow struct {
	State    entity.WindowState
	Label    string
	Focused  bool
	Floating bool
}

type cell struct {
	r     rune
	owner int // index into the windows, -1 for the desktop
}

// LayoutCanvas draws window rectangles of one monitor as box characters.
// A nil theme renders plain text.
type LayoutCanvas struct {
	theme *Theme
}

// NewLayoutCanvas creates a canvas renderer.
func NewLayoutCanvas(theme *Theme) *LayoutCanvas {
	return &LayoutCanvas{theme: theme}
}

// Render scales area to cols x rows and draws every non-minimized window.
// Later windows are drawn below earlier ones, matching the layout order where
// floating windows come first.
func (c *LayoutCanvas) Render(area entity.Rectangle[int], windows []CanvasWindow, cols, rows int) string {
	if cols < 2 || rows < 2 || area.Width <= 0 || area.Height <= 0 {
		return ""
	}

	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x] = cell{r: '·', owner: -1}
		}
	}

	for i := len(windows) - 1; i >= 0; i-- {
		w := windows[i]
		if w.State.Size == entity.WindowSizeMinimized {
			continue
		}
		rect := w.State.Rectangle
		if w.State.Size == entity.WindowSizeMaximized {
			rect = area
		}
		x0 := scale(rect.X-area.X, area.Width, cols)
		x1 := scale(rect.Right()-area.X, area.Width, cols) - 1
		y0 := scale(rect.Y-area.Y, area.Height, rows)
		y1 := scale(rect.Bottom()-area.Y, area.Height, rows) - 1
		drawBox(grid, clamp(x0, 0, cols-1), clamp(y0, 0, rows-1), clamp(x1, 0, cols-1), clamp(y1, 0, rows-1), i, w.Label)
	}

	return c.paint(grid, windows)
}

func scale(v, total, cells int) int {
	return entity.RoundInt(float64(v) * float64(cells) / float64(total))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func drawBox(grid [][]cell, x0, y0, x1, y1, owner int, label string) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r := ' '
			switch {
			case y == y0 && x == x0:
				r = '┌'
			case y == y0 && x == x1:
				r = '┐'
			case y == y1 && x == x0:
				r = '└'
			case y == y1 && x == x1:
				r = '┘'
			case y == y0 || y == y1:
				r = '─'
			case x == x0 || x == x1:
				r = '│'
			}
			grid[y][x] = cell{r: r, owner: owner}
		}
	}

	inner := x1 - x0 - 1
	if inner <= 0 || y1-y0 < 2 {
		return
	}
	text := []rune(label)
	if len(text) > inner {
		text = text[:inner]
	}
	row := y0 + (y1-y0)/2
	start := x0 + 1 + (inner-len(text))/2
	for i, r := range text {
		grid[row][start+i] = cell{r: r, owner: owner}
	}
}

func (c *LayoutCanvas) style(windows []CanvasWindow, owner int) (lipgloss.Style, bool) {
	if c.theme == nil {
		return lipgloss.Style{}, false
	}
	switch {
	case owner < 0:
		return c.theme.Desktop, true
	case windows[owner].Focused:
		return c.theme.FrameFocused, true
	case windows[owner].Floating:
		return c.theme.FrameFloating, true
	default:
		return c.theme.Frame, true
	}
}

// paint joins the grid, styling runs of cells that belong to the same window.
func (c *LayoutCanvas) paint(grid [][]cell, windows []CanvasWindow) string {
	var sb strings.Builder
	for y, line := range grid {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < len(line); {
			end := x
			var run strings.Builder
			for end < len(line) && line[end].owner == line[x].owner {
				run.WriteRune(line[end].r)
				end++
			}
			if style, ok := c.style(windows, line[x].owner); ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			x = end
		}
	}
	return sb.String()
}

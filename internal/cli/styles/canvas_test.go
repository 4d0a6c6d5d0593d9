package styles_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/entity"
)

func area() entity.Rectangle[int] {
	return entity.Rectangle[int]{X: 0, Y: 0, Width: 1000, Height: 500}
}

func TestLayoutCanvas_RenderSplitsColumns(t *testing.T) {
	c := styles.NewLayoutCanvas(nil)
	windows := []styles.CanvasWindow{
		{State: entity.WindowState{Window: "w1", Rectangle: entity.Rectangle[int]{X: 0, Y: 0, Width: 500, Height: 500}}, Label: "w1"},
		{State: entity.WindowState{Window: "w2", Rectangle: entity.Rectangle[int]{X: 500, Y: 0, Width: 500, Height: 500}}, Label: "w2"},
	}

	out := c.Render(area(), windows, 20, 6)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "┌────────┐┌────────┐", lines[0])
	assert.Equal(t, "└────────┘└────────┘", lines[5])
	assert.Contains(t, out, "w1")
	assert.Contains(t, out, "w2")
}

func TestLayoutCanvas_FirstWindowDrawnOnTop(t *testing.T) {
	c := styles.NewLayoutCanvas(nil)
	windows := []styles.CanvasWindow{
		{State: entity.WindowState{Window: "float", Rectangle: entity.Rectangle[int]{X: 250, Y: 100, Width: 500, Height: 300}}, Label: "F", Floating: true},
		{State: entity.WindowState{Window: "tile", Rectangle: area()}, Label: "T"},
	}

	out := c.Render(area(), windows, 20, 10)

	assert.Contains(t, out, "F")
	lines := strings.Split(out, "\n")
	assert.Equal(t, "┌──────────────────┐", lines[0])
	assert.Equal(t, '┌', []rune(lines[2])[5])
}

func TestLayoutCanvas_SkipsMinimized(t *testing.T) {
	c := styles.NewLayoutCanvas(nil)
	windows := []styles.CanvasWindow{
		{State: entity.WindowState{Window: "w1", Size: entity.WindowSizeMinimized}, Label: "w1"},
	}

	out := c.Render(area(), windows, 10, 4)

	assert.NotContains(t, out, "w1")
	assert.NotContains(t, out, "┌")
}

func TestLayoutCanvas_MaximizedFillsArea(t *testing.T) {
	c := styles.NewLayoutCanvas(nil)
	windows := []styles.CanvasWindow{
		{State: entity.WindowState{Window: "w1", Size: entity.WindowSizeMaximized}, Label: "max"},
	}

	lines := strings.Split(c.Render(area(), windows, 10, 4), "\n")

	assert.Equal(t, "┌────────┐", lines[0])
	assert.Equal(t, "└────────┘", lines[3])
}

func TestLayoutCanvas_TooSmall(t *testing.T) {
	c := styles.NewLayoutCanvas(styles.NewTheme())
	assert.Empty(t, c.Render(area(), nil, 1, 1))
	assert.Empty(t, c.Render(entity.Rectangle[int]{}, nil, 10, 10))
}

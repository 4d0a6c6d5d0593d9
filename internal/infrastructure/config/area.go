package config

import (
	"errors"
	"fmt"

	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout/slice"
)

// ErrInvalidArea is returned when an area tree cannot be built from the configuration.
var ErrInvalidArea = errors.New("invalid area")

// ToArea converts the configured node and its children into a slice.Area.
// Weights are relative: they are scaled to sum to 1, and omitted or all-zero
// weights share the space equally.
func (c AreaConfig) ToArea() (slice.Area, error) {
	return c.toArea("slice.area")
}

func (c AreaConfig) toArea(path string) (slice.Area, error) {
	switch c.Kind {
	case "parent":
		if len(c.Children) == 0 {
			return slice.Area{}, fmt.Errorf("%w: %s has no children", ErrInvalidArea, path)
		}
		if len(c.Weights) != 0 && len(c.Weights) != len(c.Children) {
			return slice.Area{}, fmt.Errorf("%w: %s has %d weights for %d children",
				ErrInvalidArea, path, len(c.Weights), len(c.Children))
		}
		for i, w := range c.Weights {
			if w < 0 {
				return slice.Area{}, fmt.Errorf("%w: %s.weights[%d] is negative", ErrInvalidArea, path, i)
			}
		}
		children := make([]slice.Area, len(c.Children))
		for i, child := range c.Children {
			area, err := child.toArea(fmt.Sprintf("%s.children[%d]", path, i))
			if err != nil {
				return slice.Area{}, err
			}
			children[i] = area
		}
		return slice.NewParent(c.Row, c.Weights, children...), nil
	case "slice":
		if c.MaxChildren < 0 {
			return slice.Area{}, fmt.Errorf("%w: %s.max_children is negative", ErrInvalidArea, path)
		}
		return slice.NewSlice(c.Order, c.MaxChildren, c.Row), nil
	case "overflow":
		return slice.NewOverflow(c.Row), nil
	default:
		return slice.Area{}, fmt.Errorf("%w: %s.kind must be one of: parent, slice, overflow (got: %q)",
			ErrInvalidArea, path, c.Kind)
	}
}

// BuildArea returns the area tree of the configured preset.
func (c SliceConfig) BuildArea() (slice.Area, error) {
	switch c.Preset {
	case SlicePresetPrimaryStack, "":
		return slice.PrimaryStackArea(), nil
	case SlicePresetMultiColumn:
		if len(c.Capacities) == 0 {
			return slice.Area{}, fmt.Errorf("%w: slice.capacities is empty", ErrInvalidArea)
		}
		return slice.MultiColumnArea(c.Capacities...), nil
	case SlicePresetSecondaryPrimary:
		return slice.SecondaryPrimaryArea(c.PrimaryCapacity, c.SecondaryCapacity), nil
	case SlicePresetCustom:
		if c.Area == nil {
			return slice.Area{}, fmt.Errorf("%w: slice.area is required by the custom preset", ErrInvalidArea)
		}
		return c.Area.ToArea()
	default:
		return slice.Area{}, fmt.Errorf("%w: unknown slice.preset %q", ErrInvalidArea, c.Preset)
	}
}

// Insertion returns the parsed insertion type, swap when unset.
func (c SliceConfig) Insertion() entity.WindowInsertionType {
	t, _ := entity.ParseWindowInsertionType(c.InsertionType)
	return t
}

// Direction returns the parsed add direction, right when unset.
func (c TreeConfig) Direction() entity.Direction {
	if d, ok := entity.ParseDirection(c.AddDirection); ok {
		return d
	}
	return entity.DirectionRight
}

// ToMonitor returns the preview monitor. The working area excludes the reserved panel.
func (c MonitorConfig) ToMonitor() entity.Monitor {
	return entity.Monitor{
		ID:      "preview",
		Name:    "preview",
		Primary: true,
		WorkingArea: entity.Rectangle[int]{
			Width:  c.Width,
			Height: max(c.Height-c.Reserved, 1),
		},
	}
}

package slice

import (
	"slices"

	"github.com/bnema/dumbtile/internal/layout"
)

// Custom action names understood by the slice engine.
const (
	// ActionPromoteWindow swaps the window with the last slot of the previous zone.
	ActionPromoteWindow = "slice.window.promote"
	// ActionDemoteWindow swaps the window with the first slot of the next zone.
	ActionDemoteWindow = "slice.window.demote"
	// ActionPromoteFocus focuses the last slot of the previous zone.
	ActionPromoteFocus = "slice.focus.promote"
	// ActionDemoteFocus focuses the first slot of the next zone.
	ActionDemoteFocus = "slice.focus.demote"
)

func (e *Engine) PerformCustomAction(action layout.CustomAction) layout.Engine {
	switch action.Name {
	case ActionPromoteWindow, ActionDemoteWindow, ActionPromoteFocus, ActionDemoteFocus:
	default:
		return e
	}

	window := action.Window
	if window == "" {
		if focused, ok := e.env.LastFocused(); ok {
			window = focused
		}
	}
	idx := slices.Index(e.windows, window)
	if idx < 0 {
		e.env.Logger.Debug().Str("window", string(window)).Str("action", action.Name).Msg("window not in slice layout")
		return e
	}

	switch action.Name {
	case ActionPromoteWindow:
		return e.promoteWindow(idx, true)
	case ActionDemoteWindow:
		return e.promoteWindow(idx, false)
	case ActionPromoteFocus:
		return e.promoteFocus(idx, true)
	default:
		return e.promoteFocus(idx, false)
	}
}

// zoneOf returns the position in e.zones of the zone holding slot idx.
func (e *Engine) zoneOf(idx int) int {
	for i, z := range e.zones {
		if idx < z.StartIndex {
			continue
		}
		if z.Kind == AreaOverflow || idx < z.StartIndex+z.MaxChildren {
			return i
		}
	}
	return -1
}

// neighbourZoneSlot returns the last slot of the previous zone, or the first
// slot of the next one, skipping zones without capacity.
func (e *Engine) neighbourZoneSlot(idx int, previous bool) (int, bool) {
	zone := e.zoneOf(idx)
	if zone < 0 {
		return -1, false
	}
	if previous {
		for i := zone - 1; i >= 0; i-- {
			if z := e.zones[i]; z.MaxChildren > 0 {
				return z.StartIndex + z.MaxChildren - 1, true
			}
		}
		return -1, false
	}
	for i := zone + 1; i < len(e.zones); i++ {
		if z := e.zones[i]; z.Kind == AreaOverflow || z.MaxChildren > 0 {
			if z.StartIndex >= len(e.windows) {
				return -1, false
			}
			return z.StartIndex, true
		}
	}
	return -1, false
}

func (e *Engine) promoteWindow(idx int, promote bool) layout.Engine {
	target, ok := e.neighbourZoneSlot(idx, promote)
	if !ok {
		return e
	}
	return e.swapIndices(idx, target)
}

func (e *Engine) promoteFocus(idx int, promote bool) layout.Engine {
	target, ok := e.neighbourZoneSlot(idx, promote)
	if !ok {
		if promote {
			target = max(idx-1, 0)
		} else {
			target = idx + 1
		}
	}
	if target >= len(e.windows) {
		return e
	}
	e.env.FocusWindow(e.windows[target])
	return e
}

package tree

import (
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/layout"
)

// Custom action names understood by the tree engine.
const (
	// ActionSplitFocused reserves a phantom slot next to the action window.
	ActionSplitFocused = "tree.split_focused"
	// ActionSetAddDirection changes the add direction. Payload is an entity.Direction.
	ActionSetAddDirection = "tree.set_add_direction"
)

func (e *Engine) PerformCustomAction(action layout.CustomAction) layout.Engine {
	switch action.Name {
	case ActionSplitFocused:
		return e.SplitFocused(action.Window)
	case ActionSetAddDirection:
		d, ok := action.Payload.(entity.Direction)
		if !ok || !(d.IsHorizontal() || d.IsVertical()) || d == e.addDirection {
			return e
		}
		next := *e
		next.addDirection = d
		return &next
	default:
		return e
	}
}

package entity

import "time"

// LayoutSnapshot is the last batch of positions applied for a workspace.
type LayoutSnapshot struct {
	Workspace string
	Engine    string
	Positions []WindowPosition
	AppliedAt time.Time
}

// ChangedSince counts entries whose window, rectangle or size differs from prev
// at the same position in the batch, plus entries only one side has.
func (s *LayoutSnapshot) ChangedSince(prev *LayoutSnapshot) int {
	if prev == nil {
		return len(s.Positions)
	}
	changed := 0
	n := max(len(s.Positions), len(prev.Positions))
	for i := range n {
		if i >= len(s.Positions) || i >= len(prev.Positions) {
			changed++
			continue
		}
		if s.Positions[i] != prev.Positions[i] {
			changed++
		}
	}
	return changed
}

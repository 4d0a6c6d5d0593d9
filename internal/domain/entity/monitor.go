package entity

// MonitorID identifies a physical display.
type MonitorID string

// Monitor is a display with the area available to windows.
type Monitor struct {
	ID          MonitorID
	Name        string
	WorkingArea Rectangle[int]
	Primary     bool
}

// Contains reports whether the absolute point lies in the monitor's working area.
func (m Monitor) Contains(p Point[int]) bool {
	return m.WorkingArea.ContainsPoint(p)
}

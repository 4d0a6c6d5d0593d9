package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtile/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// WindowTableColumns returns columns for a layout pass table.
func WindowTableColumns() []table.Column {
	return []table.Column{
		{Title: "Window", Width: 10},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "Width", Width: 6},
		{Title: "Height", Width: 6},
		{Title: "Size", Width: 10},
	}
}

// WindowRow converts a window state to a table row.
func WindowRow(s entity.WindowState) table.Row {
	r := s.Rectangle
	return table.Row{
		string(s.Window),
		fmt.Sprint(r.X), fmt.Sprint(r.Y),
		fmt.Sprint(r.Width), fmt.Sprint(r.Height),
		s.Size.String(),
	}
}

// WindowRows converts a layout pass to table rows.
func WindowRows(states []entity.WindowState) []table.Row {
	rows := make([]table.Row, 0, len(states))
	for _, s := range states {
		rows = append(rows, WindowRow(s))
	}
	return rows
}

// SnapshotTableColumns returns columns for the snapshot history table.
func SnapshotTableColumns() []table.Column {
	return []table.Column{
		{Title: "Applied", Width: 12},
		{Title: "Workspace", Width: 14},
		{Title: "Engine", Width: 20},
		{Title: "Windows", Width: 8},
		{Title: "Changed", Width: 8},
	}
}

// SnapshotRows converts snapshots, newest first, to table rows. The changed
// column compares each snapshot with the next older one.
func SnapshotRows(snaps []*entity.LayoutSnapshot) []table.Row {
	rows := make([]table.Row, 0, len(snaps))
	for i, s := range snaps {
		var prev *entity.LayoutSnapshot
		if i+1 < len(snaps) {
			prev = snaps[i+1]
		}
		rows = append(rows, table.Row{
			RelativeTime(s.AppliedAt),
			s.Workspace,
			s.Engine,
			fmt.Sprint(len(s.Positions)),
			fmt.Sprint(s.ChangedSince(prev)),
		})
	}
	return rows
}

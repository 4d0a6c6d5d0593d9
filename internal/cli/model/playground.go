// Package model holds the bubbletea models of the CLI.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	"github.com/bnema/dumbtile/internal/layout"
	"github.com/bnema/dumbtile/internal/layout/focus"
	"github.com/bnema/dumbtile/internal/layout/slice"
	"github.com/bnema/dumbtile/internal/layout/tree"
)

// step is the pixel distance of a nudge or resize.
const step = 40

var errNoFocus = errors.New("no focused window")

// SessionFactory builds a fresh session, used when the configuration changes.
type SessionFactory func(cfg *config.Config) (*cli.Session, error)

// ConfigChangedMsg carries a reloaded configuration.
type ConfigChangedMsg struct {
	Config *config.Config
}

// PlaygroundModel drives a Session from the keyboard and draws its layout.
type PlaygroundModel struct {
	ctx     context.Context
	session *cli.Session
	theme   *styles.Theme
	canvas  *styles.LayoutCanvas
	keys    styles.PlaygroundKeyMap
	help    help.Model
	rebuild SessionFactory

	width  int
	height int

	status string
	err    error
}

// NewPlaygroundModel creates the playground over session.
func NewPlaygroundModel(ctx context.Context, theme *styles.Theme, session *cli.Session) PlaygroundModel {
	return PlaygroundModel{
		ctx:     ctx,
		session: session,
		theme:   theme,
		canvas:  styles.NewLayoutCanvas(theme),
		keys:    styles.DefaultPlaygroundKeyMap(),
		help:    styles.NewStyledHelp(theme),
		width:   80,
		height:  24,
	}
}

// WithSessionFactory lets the playground rebuild its session on ConfigChangedMsg.
func (m PlaygroundModel) WithSessionFactory(f SessionFactory) PlaygroundModel {
	m.rebuild = f
	return m
}

// Init implements tea.Model.
func (m PlaygroundModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case ConfigChangedMsg:
		return m.handleConfigChanged(msg), nil
	}
	return m, nil
}

// handleConfigChanged swaps in a session built from the new configuration and
// reopens as many windows as the old one had.
func (m PlaygroundModel) handleConfigChanged(msg ConfigChangedMsg) PlaygroundModel {
	if m.rebuild == nil || msg.Config == nil {
		return m
	}
	session, err := m.rebuild(msg.Config)
	if err != nil {
		m.err = fmt.Errorf("reload config: %w", err)
		return m
	}
	for range m.session.Workspace.Engine().Count() {
		if _, err := session.OpenWindow(m.ctx); err != nil {
			m.err = err
			return m
		}
	}
	m.session = session
	m.status, m.err = "config reloaded", nil
	return m
}

func (m PlaygroundModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	m.status, m.err = "", nil
	if handled, err := m.handleWindowKeys(msg); handled {
		m.err = err
		return m, nil
	}
	if handled, err := m.handleFocusedKeys(msg); handled {
		m.err = err
	}
	return m, nil
}

// handleWindowKeys handles keys that do not need a focused window.
func (m *PlaygroundModel) handleWindowKeys(msg tea.KeyMsg) (bool, error) {
	s := m.session
	switch {
	case key.Matches(msg, m.keys.Open):
		id, err := s.OpenWindow(m.ctx)
		if err == nil {
			m.status = fmt.Sprintf("opened %s", id)
		}
		return true, err
	case key.Matches(msg, m.keys.Restore):
		id, ok, err := s.Restore(m.ctx)
		if ok {
			m.status = fmt.Sprintf("restored %s", id)
		}
		return true, err
	case key.Matches(msg, m.keys.CycleEngine):
		engine, err := s.Workspace.CycleEngine(m.ctx)
		if err == nil {
			m.status = fmt.Sprintf("engine %s", engine.Name())
		}
		return true, err
	}
	return false, nil
}

// handleFocusedKeys handles keys acting on the focused window.
func (m *PlaygroundModel) handleFocusedKeys(msg tea.KeyMsg) (bool, error) {
	if direction, ok := m.focusDirection(msg); ok {
		return true, m.focus(direction)
	}

	window, ok := m.session.Focused(m.ctx)
	if !ok {
		return m.matchesFocusedKey(msg), errNoFocus
	}

	s := m.session
	if direction, ok := m.moveDirection(msg); ok {
		if s.Floating.IsFloating(s.Workspace, window) {
			return true, s.Nudge(m.ctx, window, offset(direction, step))
		}
		return true, s.Workspace.SwapWindow(m.ctx, window, direction)
	}

	switch {
	case key.Matches(msg, m.keys.Close):
		m.status = fmt.Sprintf("closed %s", window)
		return true, s.CloseWindow(m.ctx, window)
	case key.Matches(msg, m.keys.Grow):
		return true, s.Workspace.MoveWindowEdges(m.ctx, window, entity.DirectionRightDown, entity.Point[int]{X: step, Y: step})
	case key.Matches(msg, m.keys.Shrink):
		return true, s.Workspace.MoveWindowEdges(m.ctx, window, entity.DirectionRightDown, entity.Point[int]{X: -step, Y: -step})
	case key.Matches(msg, m.keys.Float):
		floating, err := s.Floating.Toggle(m.ctx, s.Workspace, window)
		if err == nil {
			m.status = fmt.Sprintf("%s floating: %t", window, floating)
		}
		return true, err
	case key.Matches(msg, m.keys.Minimize):
		m.status = fmt.Sprintf("minimized %s", window)
		return true, s.Minimize(m.ctx, window)
	case key.Matches(msg, m.keys.Promote):
		return true, m.action(slice.ActionPromoteWindow, window)
	case key.Matches(msg, m.keys.Demote):
		return true, m.action(slice.ActionDemoteWindow, window)
	case key.Matches(msg, m.keys.Split):
		return true, m.action(tree.ActionSplitFocused, window)
	case key.Matches(msg, m.keys.Maximize):
		return true, m.action(focus.ActionToggleMaximized, window)
	}
	return false, nil
}

func (m *PlaygroundModel) matchesFocusedKey(msg tea.KeyMsg) bool {
	if _, ok := m.moveDirection(msg); ok {
		return true
	}
	return key.Matches(msg, m.keys.Close, m.keys.Grow, m.keys.Shrink, m.keys.Float,
		m.keys.Minimize, m.keys.Promote, m.keys.Demote, m.keys.Split, m.keys.Maximize)
}

// focus moves focus in direction, or onto the first window when nothing is focused.
func (m *PlaygroundModel) focus(direction entity.Direction) error {
	s := m.session
	if window, ok := s.Focused(m.ctx); ok {
		return s.Workspace.FocusWindow(m.ctx, window, direction)
	}
	first, ok := s.Workspace.Engine().GetFirstWindow()
	if !ok {
		return errNoFocus
	}
	return s.Desktop.Focus(m.ctx, first)
}

func (m *PlaygroundModel) action(name string, window entity.WindowID) error {
	changed, err := m.session.Workspace.PerformAction(m.ctx, layout.CustomAction{Name: name, Window: window})
	if err != nil {
		return err
	}
	if !changed {
		m.status = fmt.Sprintf("%s: nothing to do in %s", name, m.session.Workspace.Engine().Name())
	}
	return nil
}

func (m PlaygroundModel) focusDirection(msg tea.KeyMsg) (entity.Direction, bool) {
	switch {
	case key.Matches(msg, m.keys.FocusLeft):
		return entity.DirectionLeft, true
	case key.Matches(msg, m.keys.FocusDown):
		return entity.DirectionDown, true
	case key.Matches(msg, m.keys.FocusUp):
		return entity.DirectionUp, true
	case key.Matches(msg, m.keys.FocusRight):
		return entity.DirectionRight, true
	}
	return entity.DirectionNone, false
}

func (m PlaygroundModel) moveDirection(msg tea.KeyMsg) (entity.Direction, bool) {
	switch {
	case key.Matches(msg, m.keys.MoveLeft):
		return entity.DirectionLeft, true
	case key.Matches(msg, m.keys.MoveDown):
		return entity.DirectionDown, true
	case key.Matches(msg, m.keys.MoveUp):
		return entity.DirectionUp, true
	case key.Matches(msg, m.keys.MoveRight):
		return entity.DirectionRight, true
	}
	return entity.DirectionNone, false
}

func offset(d entity.Direction, n int) entity.Point[int] {
	switch d {
	case entity.DirectionLeft:
		return entity.Point[int]{X: -n}
	case entity.DirectionRight:
		return entity.Point[int]{X: n}
	case entity.DirectionUp:
		return entity.Point[int]{Y: -n}
	default:
		return entity.Point[int]{Y: n}
	}
}

// View implements tea.Model.
func (m PlaygroundModel) View() string {
	s := m.session
	engine := s.Workspace.Engine()
	focused, _ := s.Focused(m.ctx)

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.Render("dumbtile "+s.Workspace.Name()), " ",
		m.theme.EngineBadge(engine.Name()), " ",
		m.theme.CountBadge(engine.Count()),
	)

	states := s.Workspace.Layout(m.ctx)
	windows := make([]styles.CanvasWindow, 0, len(states))
	for _, st := range states {
		windows = append(windows, styles.CanvasWindow{
			State:    st,
			Label:    string(st.Window),
			Focused:  st.Window == focused,
			Floating: s.Floating.IsFloating(s.Workspace, st.Window),
		})
	}

	footer := m.footer()
	helpView := m.help.View(m.keys)
	rows := m.height - lipgloss.Height(header) - lipgloss.Height(footer) - lipgloss.Height(helpView)
	body := m.canvas.Render(s.Workspace.Monitor().WorkingArea, windows, m.width, max(rows, 2))

	return strings.Join([]string{header, body, footer, helpView}, "\n")
}

func (m PlaygroundModel) footer() string {
	var parts []string
	if minimized := m.session.Minimized(); len(minimized) > 0 {
		names := make([]string, 0, len(minimized))
		for _, w := range minimized {
			names = append(names, string(w))
		}
		parts = append(parts, m.theme.Subtle.Render(styles.IconMinimize+" "+strings.Join(names, " ")))
	}
	switch {
	case m.err != nil:
		parts = append(parts, m.theme.ErrorStyle.Render(m.err.Error()))
	case m.status != "":
		parts = append(parts, m.theme.Subtle.Render(m.status))
	}
	return strings.Join(parts, "  ")
}

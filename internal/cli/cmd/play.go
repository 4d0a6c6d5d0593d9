package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/cli/model"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	xdgadapter "github.com/bnema/dumbtile/internal/infrastructure/xdg"
)

const logFilePerm = 0o644

var playWindows int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive a virtual desktop from the keyboard",
	Long: `Open an interactive playground showing the layout of a virtual desktop.

Logs are written to play.log in the state directory while the playground runs.
Edits to the config file are picked up live.

Keys:
  n / x          open / close window
  h j k l        focus left / down / up / right
  H J K L        swap (or nudge a floating window)
  + / -          grow / shrink the focused window
  f              toggle floating
  m / r          minimize / restore
  space          next engine
  p / d          promote / demote (slice engine)
  s              toggle split (tree engine)
  ?              full help
  q              quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVarP(&playWindows, "windows", "n", 0, "windows to open on start")
}

func runPlay(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logFile, err := openPlayLog()
	if err != nil {
		return err
	}
	defer logFile.Close()
	app.LogTo(logFile)

	session, err := app.NewSession(app.Config)
	if err != nil {
		return err
	}
	ctx := app.Ctx()
	for range max(playWindows, 0) {
		if _, err := session.OpenWindow(ctx); err != nil {
			return err
		}
	}

	m := model.NewPlaygroundModel(ctx, app.Theme, session).WithSessionFactory(app.NewSession)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if app.Manager != nil {
		app.Manager.OnConfigChange(func(cfg *config.Config) {
			p.Send(model.ConfigChangedMsg{Config: cfg})
		})
		if err := app.Manager.Watch(); err != nil {
			logger := app.Logger()
			logger.Warn().Err(err).Msg("config watch disabled")
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run playground: %w", err)
	}
	if _, err := app.PruneSnapshots(ctx); err != nil {
		logger := app.Logger()
		logger.Warn().Err(err).Msg("snapshot pruning failed")
	}
	return nil
}

func openPlayLog() (*os.File, error) {
	stateDir, err := xdgadapter.New().StateDir()
	if err != nil {
		return nil, fmt.Errorf("resolve state directory: %w", err)
	}
	if err := os.MkdirAll(stateDir, dirPerm); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	path := filepath.Join(stateDir, "play.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

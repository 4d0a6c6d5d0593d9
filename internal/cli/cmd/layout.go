package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbtile/internal/application/usecase"
	"github.com/bnema/dumbtile/internal/cli"
	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/entity"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
)

var (
	layoutEngine   string
	layoutWindows  int
	layoutFloat    []string
	layoutMinimize []string
	layoutJSON     bool
	layoutPlain    bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the layout of a number of windows",
	Long: `Open windows on a virtual desktop sized like the configured monitor and
print where the engine puts them.

Windows are named w1, w2, ... in opening order.

Examples:
  dumbtile layout --windows 4                     # Layout with the first configured engine
  dumbtile layout --engine slice --windows 5      # Slice engine with the configured preset
  dumbtile layout -n 3 --float w2 --minimize w3   # Mix floating and minimized windows
  dumbtile layout -n 3 --json                     # Window states as JSON`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringVarP(&layoutEngine, "engine", "e", "", "engine to use: tree, slice, free, focus (default: first configured)")
	layoutCmd.Flags().IntVarP(&layoutWindows, "windows", "n", 3, "number of windows to open")
	layoutCmd.Flags().StringSliceVar(&layoutFloat, "float", nil, "windows to mark floating")
	layoutCmd.Flags().StringSliceVar(&layoutMinimize, "minimize", nil, "windows to minimize")
	layoutCmd.Flags().BoolVar(&layoutJSON, "json", false, "print window states as JSON")
	layoutCmd.Flags().BoolVar(&layoutPlain, "plain", false, "disable colors")
}

func runLayout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := *app.Config
	if layoutEngine != "" {
		kind := config.EngineKind(layoutEngine)
		if !slices.Contains([]config.EngineKind{config.EngineTree, config.EngineSlice, config.EngineFree, config.EngineFocus}, kind) {
			return fmt.Errorf("unknown engine %q (use: tree, slice, free, focus)", layoutEngine)
		}
		cfg.Layout.Engines = []config.EngineKind{kind}
	}

	session, err := app.NewSession(&cfg)
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	for range max(layoutWindows, 0) {
		if _, err := session.OpenWindow(ctx); err != nil {
			return err
		}
	}
	for _, w := range layoutFloat {
		err := session.Floating.MarkFloating(ctx, session.Workspace, entity.WindowID(w))
		if errors.Is(err, usecase.ErrNoFloatingLayer) {
			logger := app.Logger()
			logger.Warn().Str("window", w).Msg("engine has no floating layer, window stays tiled")
			continue
		}
		if err != nil {
			return err
		}
	}
	for _, w := range layoutMinimize {
		if err := session.Minimize(ctx, entity.WindowID(w)); err != nil {
			return err
		}
	}

	states := session.Workspace.Layout(ctx)
	if layoutJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(states)
	}

	theme := app.Theme
	if layoutPlain {
		theme = nil
	}
	fmt.Println(renderLayout(ctx, session, states, theme))
	return nil
}

// renderLayout prints the canvas followed by the window table.
func renderLayout(ctx context.Context, session *cli.Session, states []entity.WindowState, theme *styles.Theme) string {
	focused, _ := session.Focused(ctx)
	windows := make([]styles.CanvasWindow, 0, len(states))
	for _, st := range states {
		windows = append(windows, styles.CanvasWindow{
			State:    st,
			Label:    string(st.Window),
			Focused:  st.Window == focused,
			Floating: session.Floating.IsFloating(session.Workspace, st.Window),
		})
	}

	canvas := styles.NewLayoutCanvas(theme).Render(session.Workspace.Monitor().WorkingArea, windows, 64, 20)

	tableTheme := theme
	if tableTheme == nil {
		tableTheme = styles.NewThemeFromPalette(styles.Palette{})
	}
	table := styles.NewStyledTable(tableTheme, styles.WindowTableColumns(), styles.WindowRows(states), 64, len(states)+1)
	table.Blur()

	title := session.Workspace.Name() + " - " + session.Workspace.Engine().Name()
	return title + "\n" + canvas + "\n\n" + table.View()
}

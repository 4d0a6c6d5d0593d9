// Package cli wires the layout core to a virtual desktop for the command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/dumbtile/internal/cli/styles"
	"github.com/bnema/dumbtile/internal/domain/build"
	"github.com/bnema/dumbtile/internal/domain/repository"
	"github.com/bnema/dumbtile/internal/infrastructure/config"
	"github.com/bnema/dumbtile/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dumbtile/internal/infrastructure/snapshot"
	"github.com/bnema/dumbtile/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Snapshots is nil when the database is disabled.
	Snapshots repository.LayoutSnapshotRepository
	Recorder  *snapshot.Service
	db        *sqlite.LazyDB

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp loads the configuration and creates the CLI application.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	app := NewAppWithConfig(mgr.Get(), nil)
	app.Manager = mgr
	return app, nil
}

// NewAppWithConfig creates the application from an already loaded config.
// Logs go to out, or stderr when out is nil.
func NewAppWithConfig(cfg *config.Config, out io.Writer) *App {
	app := &App{
		Config: cfg,
		Theme:  styles.NewTheme(),
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())
	app.LogTo(out)

	if cfg.Database.Enabled && cfg.Database.Path != "" {
		app.db = sqlite.NewLazyDB(cfg.Database.Path)
		app.Snapshots = sqlite.NewLazySnapshotRepository(app.db)
		app.Recorder = snapshot.NewService(app.Snapshots, cfg.Database.SnapshotIntervalMs)
		app.Recorder.Start(app.ctx)
	}
	return app
}

// LogTo replaces the application logger with one writing to out.
func (a *App) LogTo(out io.Writer) {
	logger := logging.New(logging.Config{
		Level:      logging.ParseLevel(a.Config.Logging.Level),
		Format:     consoleFormat(a.Config.Logging.Format),
		TimeFormat: "15:04:05",
		Output:     out,
	})
	a.ctx = logging.WithContext(a.ctx, logger)
}

func consoleFormat(format string) string {
	if format == "json" {
		return "json"
	}
	return "console"
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Logger returns the application logger.
func (a *App) Logger() zerolog.Logger {
	return *logging.FromContext(a.ctx)
}

// PruneSnapshots drops snapshots past the configured retention.
func (a *App) PruneSnapshots(ctx context.Context) (int64, error) {
	if a.Snapshots == nil || a.Config.Database.RetentionDays == 0 {
		return 0, nil
	}
	cutoff := time.Now().AddDate(0, 0, -a.Config.Database.RetentionDays)
	removed, err := a.Snapshots.DeleteBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune snapshots: %w", err)
	}
	if removed > 0 {
		logging.FromContext(ctx).Info().Int64("removed", removed).Msg("pruned layout snapshots")
	}
	return removed, nil
}

// Close flushes pending snapshots and releases the database.
func (a *App) Close() error {
	var err error
	if a.Recorder != nil {
		err = a.Recorder.Stop(a.ctx)
	}
	a.cancel()
	if a.db != nil {
		if closeErr := a.db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

// Package app owns the launcher's runtime state and the central event
// loop that consumes startup completions.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"qlauncher/internal/config"
	"qlauncher/internal/entries"
	"qlauncher/internal/logging"
	"qlauncher/internal/presence"
	"qlauncher/internal/startup"
	"qlauncher/internal/state"
	"qlauncher/internal/updatecheck"
)

// Version is the launcher build version.
const Version = "v1.0.0"

// ErrAlreadyRunning indicates another launcher process holds the instance
// lock.
var ErrAlreadyRunning = errors.New("another launcher instance is running")

// Options configures a Launcher.
type Options struct {
	DataDir   string
	Config    *config.Config
	ConfigErr error
	IsNewUser bool
	Logger    *slog.Logger

	// UpdateChecker overrides the release feed checker (tests).
	UpdateChecker *updatecheck.Checker
	// PresenceConnector overrides the presence connector (tests).
	PresenceConnector *presence.Connector
}

// Launcher is the application core: configuration snapshot, persisted
// state, and the results of the startup tasks as they arrive.
type Launcher struct {
	dataDir   string
	cfg       *config.Config
	cfgErr    error
	isNewUser bool
	logger    *slog.Logger

	store *state.Store
	lock  *flock.Flock

	updateChecker     *updatecheck.Checker
	presenceConnector *presence.Connector

	entries        []entries.Entry
	customJars     []state.CustomJar
	presenceClient *presence.Client
	selectedNotes  string
	updateResult   *updatecheck.Result

	startupErrs []error
}

// New constructs a Launcher. A failed config load is carried, not fatal:
// the launcher runs with defaults and degraded behavior.
func New(opts Options) *Launcher {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	checker := opts.UpdateChecker
	if checker == nil {
		checker = updatecheck.NewChecker()
	}
	connector := opts.PresenceConnector
	if connector == nil {
		connector = presence.NewConnector()
	}
	return &Launcher{
		dataDir:           opts.DataDir,
		cfg:               cfg,
		cfgErr:            opts.ConfigErr,
		isNewUser:         opts.IsNewUser,
		logger:            logging.WithComponent(opts.Logger, "launcher"),
		updateChecker:     checker,
		presenceConnector: connector,
	}
}

// IsNewUser reports the first-run signal consumed by UI bootstrap.
func (l *Launcher) IsNewUser() bool { return l.isNewUser }

// DataDir returns the resolved data directory, empty in degraded mode.
func (l *Launcher) DataDir() string { return l.dataDir }

// Entries returns the loaded entry list.
func (l *Launcher) Entries() []entries.Entry { return l.entries }

// StartupErrors returns the errors carried by completion events so far.
func (l *Launcher) StartupErrors() []error { return l.startupErrs }

// AcquireLock takes the single-instance lock inside the data directory.
// Degraded mode (no data directory) skips locking.
func (l *Launcher) AcquireLock() error {
	if l.dataDir == "" {
		return nil
	}
	lock := flock.New(filepath.Join(l.dataDir, "qlauncher.lock"))
	acquired, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire instance lock: %w", err)
	}
	if !acquired {
		return ErrAlreadyRunning
	}
	l.lock = lock
	return nil
}

// OpenState opens the persisted state store. A failure is reported and the
// custom-jar task later carries it as its event payload.
func (l *Launcher) OpenState() error {
	if l.dataDir == "" {
		return nil
	}
	store, err := state.Open(l.dataDir)
	if err != nil {
		return err
	}
	l.store = store
	return nil
}

// Run starts all registered startup tasks and dispatches their completion
// events until every scheduled task has reported or ctx ends. Scheduled
// tasks that never finish (a presence service that never appears) keep the
// loop alive by design; ctx cancellation is the way out.
func (l *Launcher) Run(ctx context.Context) error {
	orchestrator := startup.NewOrchestrator(l.logger)
	for _, task := range l.startupTasks() {
		orchestrator.Register(task)
	}
	l.logger.Info("startup tasks scheduled", logging.Int("count", orchestrator.TaskCount()))

	events := orchestrator.Start(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				l.logger.Info("startup complete",
					logging.Int("errors", len(l.startupErrs)))
				return nil
			}
			l.Dispatch(ev)
		}
	}
}

// Dispatch applies one completion event to the launcher state. Event
// errors are recorded and logged; they never abort the loop.
func (l *Launcher) Dispatch(ev startup.Event) {
	switch ev := ev.(type) {
	case startup.UpdateCheckDone:
		if ev.Err != nil {
			l.recordErr("update check", ev.Err)
			return
		}
		l.updateResult = ev.Result
		if ev.Result.UpdateAvailable {
			l.logger.Info("launcher update available",
				logging.String("latest", ev.Result.Latest),
				logging.String("url", ev.Result.URL))
		}
	case startup.EntriesLoaded:
		if ev.Err != nil {
			l.recordErr("entry list", ev.Err)
			return
		}
		l.entries = ev.Entries
		l.logger.Info("entries loaded", logging.Int("count", len(ev.Entries)))
	case startup.PresenceReady:
		l.presenceClient = ev.Client
		l.logger.Info("peer presence connected")
		if err := ev.Client.SetActivity("In the launcher", ""); err != nil {
			l.recordErr("presence activity", err)
		}
	case startup.CleanDone:
		if ev.Err != nil {
			l.recordErr("cleanup", ev.Err)
			return
		}
		l.logger.Info("cleanup finished",
			logging.String("dir", ev.Report.Dir),
			logging.Int("removed", ev.Report.Removed),
			logging.Int64("freed_bytes", ev.Report.FreedBytes))
	case startup.CustomJarsLoaded:
		if ev.Err != nil {
			l.recordErr("custom jar state", ev.Err)
			return
		}
		l.customJars = ev.Jars
		l.logger.Info("custom jars loaded", logging.Int("count", len(ev.Jars)))
	case startup.NotesLoaded:
		if ev.Err != nil {
			l.recordErr("startup notes", ev.Err)
			return
		}
		l.selectedNotes = ev.Text
	default:
		l.logger.Warn("unhandled startup event", logging.String("type", fmt.Sprintf("%T", ev)))
	}
}

func (l *Launcher) recordErr(operation string, err error) {
	l.startupErrs = append(l.startupErrs, fmt.Errorf("%s: %w", operation, err))
	l.logger.Warn("startup task failed",
		logging.String("operation", operation),
		logging.Error(err))
}

// Close releases the launcher's long-lived resources.
func (l *Launcher) Close() {
	if l.presenceClient != nil {
		_ = l.presenceClient.Close()
	}
	if l.store != nil {
		_ = l.store.Close()
	}
	if l.lock != nil {
		_ = l.lock.Unlock()
	}
}

package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"qlauncher/internal/app"
	"qlauncher/internal/config"
	"qlauncher/internal/logging"
	"qlauncher/internal/migrate"
	"qlauncher/internal/paths"
)

func runLauncher(cmd *cobra.Command, flags *rootFlags) error {
	// Migration must run before anything resolves or creates the data
	// directory, because every later step derives paths from its outcome.
	// It only applies to the default layout, never to --data-dir overrides.
	if flags.dataDir == "" {
		runMigration()
	}

	dataDir := flags.dataDir
	var dirErr error
	if dataDir == "" {
		dataDir, dirErr = paths.DataDir()
		if dirErr != nil {
			dataDir = ""
		}
	}

	isNewUser := paths.IsNewUser(dataDir)

	if dataDir != "" {
		if err := paths.Ensure(dataDir); err != nil {
			fmt.Fprintf(os.Stderr, "couldn't prepare launcher directory: %v\n", err)
			dataDir = ""
		}
	}

	cfg, cfgErr := config.Load(dataDir)
	if cfg == nil {
		cfg = config.Default()
	}
	if isNewUser && dataDir != "" && cfgErr == nil {
		// Initialize the directory so later launches (and the migration
		// guard on other machines sharing this home) see the marker.
		if err := cfg.Save(dataDir); err != nil {
			fmt.Fprintf(os.Stderr, "couldn't write initial config: %v\n", err)
		}
	}

	level := flags.logLevel
	if level == "" {
		level = cfg.Logging.Level
	}
	format := flags.logFormat
	if format == "" {
		format = cfg.Logging.Format
	}
	logDir := ""
	if dataDir != "" {
		logDir = paths.LogsDir(dataDir)
	}
	logger, err := logging.NewForDataDir(level, format, logDir)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	logger.Info("starting up the launcher",
		logging.String("os", osName()),
		logging.String("version", app.Version))
	if dirErr != nil {
		logger.Warn("couldn't resolve launcher directory, running degraded",
			logging.Error(dirErr))
	} else {
		logger.Info("launcher directory resolved", logging.String("dir", dataDir))
	}
	if cfgErr != nil {
		logger.Warn("couldn't load config, using defaults", logging.Error(cfgErr))
	}
	if isNewUser {
		logger.Info("first run detected")
	}

	launcher := app.New(app.Options{
		DataDir:   dataDir,
		Config:    cfg,
		ConfigErr: cfgErr,
		IsNewUser: isNewUser,
		Logger:    logger,
	})
	defer launcher.Close()

	if err := launcher.AcquireLock(); err != nil {
		return err
	}
	if err := launcher.OpenState(); err != nil {
		logger.Warn("couldn't open state store", logging.Error(err))
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return launcher.Run(ctx)
}

// runMigration evaluates the legacy-directory guard and performs the move.
// Failures are reported on stderr and never stop startup.
func runMigration() {
	if !migrate.Supported {
		return
	}
	dirs := migrate.Resolve()
	if !migrate.ShouldMigrate(dirs) {
		return
	}
	if err := migrate.Run(dirs); err != nil {
		if errors.Is(err, migrate.ErrSentinel) {
			// Data moved fine; only the compatibility link is missing.
			fmt.Fprintf(os.Stderr, "migration: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
	}
}

func osName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "windows":
		return "Windows"
	case "darwin":
		return "macOS"
	case "freebsd":
		return "FreeBSD"
	default:
		return runtime.GOOS
	}
}

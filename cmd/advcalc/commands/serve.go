package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaEvab55555/Advanced-Calculator/internal/api"
	"github.com/ZaEvab55555/Advanced-Calculator/internal/config"
	"github.com/ZaEvab55555/Advanced-Calculator/internal/fileutil"
	"github.com/ZaEvab55555/Advanced-Calculator/internal/logger"
	"github.com/ZaEvab55555/Advanced-Calculator/internal/service"
	"github.com/ZaEvab55555/Advanced-Calculator/pkg/calc"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calculator service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	log := logger.SetupLogger(cfg)
	defer logger.Stop()

	if running, pid := service.IsRunning(cfg); running {
		return fmt.Errorf("service already running (PID %d)", pid)
	}

	// First launch: write the defaults so there is a file to edit and for
	// the watcher to follow.
	if !fileutil.Exists(cfgPath) {
		if err := cfg.Save(cfgPath); err != nil {
			log.Warn().Err(err).Str("config", cfgPath).Msg("Could not write default config")
		}
	}

	session := calc.NewSessionWithModes(cfg.Modes())
	apiServer := api.NewServer(cfg, session)
	daemon := service.NewDaemon(cfg)

	if err := daemon.Start(apiServer.Handler()); err != nil {
		return fmt.Errorf("start daemon: %w", err)
	}

	// Hot-reload logging settings on config edits. Display-mode defaults
	// from the file apply to future sessions only; the live session's modes
	// change through its own toggles.
	watcher, err := config.NewWatcher(cfgPath, func(next *config.Config) {
		logger.SetupLogger(next)
		logger.GetLogger().Info().
			Str("config", cfgPath).
			Msg("Configuration reloaded")
	})
	if err != nil {
		log.Warn().Err(err).Msg("Config watcher unavailable")
	} else if err := watcher.Start(); err != nil {
		log.Warn().Err(err).Msg("Config watcher not started")
	} else {
		defer watcher.Stop()
	}

	fmt.Printf("advcalc v%s started on %s\n", version, cfg.Address())
	fmt.Printf("Calculator: %s/\n", cfg.URL())
	fmt.Printf("API docs:   %s/web/docs\n", cfg.URL())

	daemon.Wait()

	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/aceguide/internal/app"
	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/guide"
	"github.com/abhisek/aceguide/internal/logging"
)

// runApp loads configuration, applies flag overrides, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if name, _ := cmd.Flags().GetString("theme"); name != "" {
		th, err := guide.ParseTheme(name)
		if err != nil {
			return err
		}
		cfg.Theme = string(th)
	}
	if off, _ := cmd.Flags().GetBool("no-progress"); off {
		cfg.Features.ProgressTracker = false
	}
	noSplash, _ := cmd.Flags().GetBool("no-splash")

	log, closer, err := logging.NewFileLogger(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()

	return app.Run(app.Options{
		Guide:    content.Default(),
		View:     cfg.Options(),
		Logger:   log,
		NoSplash: noSplash,
	})
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/aceguide/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or update the config file interactively",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("path", "", "Where to write the config file (defaults to --config or the XDG path)")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("path")
	if path == "" {
		p, err := resolveConfigPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	// Existing values become the wizard defaults.
	base, err := config.Load(path)
	if err != nil {
		return err
	}

	cfg, err := config.RunWizard(base, path)
	if err != nil {
		return err
	}

	log := cliLogger(cmd, cfg)
	log.Info().Str("path", path).Str("theme", cfg.Theme).Msg("config saved")
	return nil
}

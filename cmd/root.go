package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/abhisek/aceguide/internal/config"
	"github.com/abhisek/aceguide/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "aceguide",
	Short: "Interactive ACE inhibitors reference",
	Long: `aceguide is a collapsible terminal reference on ACE inhibitors for exam prep:
mechanism of action, drug catalog, indications, side effects and evidence.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides ACEGUIDE_CONFIG env var)")

	rootCmd.Flags().String("theme", "", "Colour theme: violet, midnight or clinical")
	rootCmd.Flags().Bool("no-progress", false, "Hide the reading progress tracker")
	rootCmd.Flags().Bool("no-splash", false, "Skip the loading screen")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(drugsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigPath returns the config path using --config flag (highest
// priority), then ACEGUIDE_CONFIG env var, then the default XDG path.
func resolveConfigPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, nil
	}
	return config.DefaultPath()
}

// loadConfig loads and validates the configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := resolveConfigPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// cliLogger returns a human-readable logger on stderr for subcommands.
func cliLogger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	return logging.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the reference as Markdown or HTML",
	Long: `Render the full reference as a single document, or one file per section
with --split. Output goes to stdout unless --out is given.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("format", "markdown", "Output format: markdown or html")
	exportCmd.Flags().String("out", "", "Write to this file instead of stdout")
	exportCmd.Flags().String("split", "", "Write one file per section into this directory")
	exportCmd.MarkFlagsMutuallyExclusive("out", "split")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := cliLogger(cmd, cfg)

	formatVal, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	splitDir, _ := cmd.Flags().GetString("split")

	format, err := export.ParseFormat(formatVal)
	if err != nil {
		return err
	}
	g := content.Default()

	if splitDir != "" {
		ex := export.New(format, export.NewReporter(cmd.ErrOrStderr()))
		paths, err := ex.WriteSplit(splitDir, g)
		if err != nil {
			return err
		}
		log.Info().Int("files", len(paths)).Str("dir", splitDir).Str("format", string(format)).Msg("export written")
		return nil
	}

	ex := export.New(format, nil)
	if outPath == "" {
		return ex.Write(cmd.OutOrStdout(), g)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := ex.Write(f, g); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}
	log.Info().Str("path", outPath).Str("format", string(format)).Msg("export written")
	return nil
}

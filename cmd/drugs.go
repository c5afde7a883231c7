package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/aceguide/internal/content"
	"github.com/abhisek/aceguide/internal/ui/theme"
)

var drugsCmd = &cobra.Command{
	Use:   "drugs",
	Short: "Browse the drug catalog",
}

var drugsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every drug in the catalog",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), renderDrugTable(content.Default().AllDrugs()))
	},
}

var drugsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the details of one drug",
	Args:  cobra.ExactArgs(1),
	RunE:  runDrugsShow,
}

func init() {
	drugsCmd.AddCommand(drugsListCmd)
	drugsCmd.AddCommand(drugsShowCmd)
}

func renderDrugTable(drugs []content.DrugEntry) string {
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("Drug", "Dosage", "Half-life", "Renal excretion").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, d := range drugs {
		t.Row(d.Name, d.Dosage, d.HalfLife, d.RenalExcretion)
	}
	return t.String()
}

func runDrugsShow(cmd *cobra.Command, args []string) error {
	g := content.Default()
	d, ok := g.Drug(args[0])
	if !ok {
		return fmt.Errorf("unknown drug %q (known: %s)", args[0], strings.Join(g.DrugNames(), ", "))
	}

	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(d.Name))
	fmt.Fprintln(out, d.Summary())
	fmt.Fprintln(out)
	for _, f := range d.Fields() {
		fmt.Fprintf(out, "%s %s\n", label.Render(f.Label+":"), f.Value)
	}
	return nil
}

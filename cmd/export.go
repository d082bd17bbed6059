package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/export"
)

// Export flags.
var (
	exportFlagFormat string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all records",
	Long: `Export every note, task and event for the current user and mode.

Examples:
  skillhub export
  skillhub export --format csv -o backup.csv
  skillhub export -o backup.json`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlagFormat, "format", "json", "Export format (json, csv)")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	var w io.Writer = os.Stdout
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return errors.ClassifyStorage(err)
		}
		defer f.Close()
		w = f
	}

	snap := ctx.Snapshot()
	switch exportFlagFormat {
	case "json":
		if err := export.JSON(w, snap); err != nil {
			return err
		}
	case "csv":
		if err := export.CSV(w, snap); err != nil {
			return err
		}
	default:
		return &errors.UserError{
			Message:    "unknown export format: " + exportFlagFormat,
			Suggestion: "use 'json' or 'csv'",
		}
	}

	if exportFlagOutput != "" {
		ctx.CLIFormatter().Success("exported to " + exportFlagOutput)
	}
	return nil
}

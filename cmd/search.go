package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/search"
)

// searchCmd represents the search command.
var searchCmd = &cobra.Command{
	Use:     "search QUERY",
	Aliases: []string{"s", "find"},
	Short:   "Search notes, tasks and events",
	Long: `Search across all records by title and body text. Matching is
case-insensitive substring matching; results list notes first, then
tasks, then events.

Examples:
  skillhub search standup
  skillhub search "quarterly report" --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	matches := search.Query(ctx.Snapshot(), query)

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.SearchResponse{Query: query, Results: matches})
	}

	cli := ctx.CLIFormatter()
	if len(matches) == 0 {
		cli.Printf("no matches for %q\n", query)
		return nil
	}
	for _, m := range matches {
		cli.Printf("[%s] %s  %s\n", m.Kind, cli.RecordTitle(m.Title), m.ID)
		if m.Excerpt != "" {
			cli.Muted("  " + m.Excerpt)
		}
	}
	return nil
}

// Package cmd provides the CLI commands for SkillHub.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/logging"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat string
	flagColor  string
	flagDebug  bool
	flagUser   string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "skillhub",
	Short: "A local-first personal productivity tool",
	Long: `SkillHub keeps your notes, tasks and calendar events in a local
per-user store, with a switchable demo dataset for trying things out.

Examples:
  skillhub note add "Meeting notes" --content "discussed roadmap"
  skillhub task add "Buy milk" --priority high --due tomorrow
  skillhub event add "Standup" --date +1d --time 09:30
  skillhub demo on
  skillhub search roadmap`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "help" {
			return nil
		}

		// Parse format flag
		var format output.Format
		switch flagFormat {
		case "json":
			format = output.FormatJSON
		case "plain":
			format = output.FormatPlain
		default:
			format = output.FormatCLI
		}

		// Parse color flag
		var colorMode output.ColorMode
		switch flagColor {
		case "always":
			colorMode = output.ColorAlways
		case "never":
			colorMode = output.ColorNever
		default:
			colorMode = output.ColorAuto
		}

		if flagDebug {
			logging.InitDebug()
		}

		// Create runtime context
		opts := runtime.DefaultOptions()
		opts.UserID = flagUser
		opts.Format = format
		opts.ColorMode = colorMode
		opts.Debug = flagDebug

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			return ctx.Close()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show current session status
		return runStatus(cmd, args)
	},
}

// runStatus shows the current session and collection counts.
func runStatus(cmd *cobra.Command, args []string) error {
	snap := ctx.Snapshot()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"user":   ctx.Session.UserID(),
			"mode":   ctx.Session.Mode(),
			"notes":  len(snap.Notes),
			"tasks":  len(snap.Tasks),
			"events": len(snap.Events),
		})
	}

	cli := ctx.CLIFormatter()
	user := ctx.Session.UserID()
	if user == "" {
		user = "guest"
	}
	cli.Title("SkillHub")
	cli.Printf("user: %s  mode: %s\n", user, ctx.Session.Mode())
	cli.Printf("notes: %d  tasks: %d  events: %d\n", len(snap.Notes), len(snap.Tasks), len(snap.Events))
	return nil
}

// warnPersist downgrades a dropped-write error to a visible warning: the
// change is live in memory, it just was not saved.
func warnPersist(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsPersistFailure(err) {
		ctx.CLIFormatter().Warning("change kept for this session but not saved to disk")
		return nil
	}
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}

// printError renders an error with its suggestion, if any.
func printError(err error) {
	if ctx != nil && ctx.IsJSON() {
		_ = ctx.Formatter.JSON(output.ErrorResponse{
			Status:     "error",
			Error:      err.Error(),
			Suggestion: errors.SuggestionFor(err),
		})
		return
	}

	os.Stderr.WriteString("Error: " + err.Error() + "\n")
	if suggestion := errors.SuggestionFor(err); suggestion != "" {
		os.Stderr.WriteString("  " + suggestion + "\n")
	}
}

func init() {
	rootCmd.SilenceErrors = true

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "",
		"User identifier (defaults to $SKILLHUB_USER, else the shared guest space)")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("skillhub %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

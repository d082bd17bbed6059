package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/output"
)

// demoCmd represents the demo command.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Switch between demo and live data",
	Long: `Control demo mode. Demo mode swaps the sample dataset in for your
own records; your live data stays on disk untouched and comes back the
moment you switch off.

Examples:
  skillhub demo          show the active mode
  skillhub demo on       switch to the sample dataset
  skillhub demo off      switch back to your own data
  skillhub demo reset    restore the sample dataset to its initial state`,
	RunE: runDemoStatus,
}

var demoOnCmd = &cobra.Command{
	Use:   "on",
	Short: "Switch to demo mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDemoMode(true)
	},
}

var demoOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Switch back to live mode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return setDemoMode(false)
	},
}

var demoResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the sample dataset to its initial state",
	Args:  cobra.NoArgs,
	RunE:  runDemoReset,
}

func init() {
	demoCmd.AddCommand(demoOnCmd)
	demoCmd.AddCommand(demoOffCmd)
	demoCmd.AddCommand(demoResetCmd)
	rootCmd.AddCommand(demoCmd)
}

func runDemoStatus(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ModeResponse{
			User: ctx.Session.UserID(),
			Mode: ctx.Session.Mode(),
		})
	}

	cli := ctx.CLIFormatter()
	if ctx.Session.UsingDemo() {
		cli.Println(cli.ModeBadge(ctx.Session.Mode()) + " demo mode is on")
		cli.Muted("Your live data is untouched. Run 'skillhub demo off' to get back to it.")
	} else {
		cli.Println("demo mode is off")
	}
	return nil
}

func setDemoMode(on bool) error {
	already := ctx.Session.UsingDemo() == on
	if err := warnPersist(ctx.SetMode(on)); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ModeResponse{
			User: ctx.Session.UserID(),
			Mode: ctx.Session.Mode(),
		})
	}

	cli := ctx.CLIFormatter()
	switch {
	case already && on:
		cli.Muted("demo mode already on")
	case already:
		cli.Muted("demo mode already off")
	case on:
		cli.Success("demo mode on; showing the sample dataset")
	default:
		cli.Success("demo mode off; back to your own data")
	}
	return nil
}

func runDemoReset(cmd *cobra.Command, args []string) error {
	if err := warnPersist(ctx.Demo.Reset()); err != nil {
		return err
	}
	ctx.Repos.Invalidate()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.ModeResponse{
			User: ctx.Session.UserID(),
			Mode: ctx.Session.Mode(),
		})
	}
	ctx.CLIFormatter().Success("sample dataset restored")
	return nil
}

package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Sampath1576/sync-skill-hub-sub000/internal/config"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/errors"
	"github.com/Sampath1576/sync-skill-hub-sub000/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "ui"},
	Short:   "Open the interactive dashboard",
	Long: `Open a terminal dashboard showing record counts and recent
activity, with live mode switching.

Keys:
  m       toggle demo mode
  r       reset the sample dataset (demo mode only)
  q       quit`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	model := tui.NewDashboardModel(tui.DashboardConfig{
		Backend: ctx,
		Session: ctx.Session,
		ResetDemo: func() error {
			err := ctx.Demo.Reset()
			ctx.Repos.Invalidate()
			return err
		},
		RefreshInterval: cfg.Dashboard.RefreshInterval,
		MaxRecent:       cfg.Dashboard.MaxRecent,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "dashboard")
	}
	return nil
}

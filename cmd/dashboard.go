package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/tui"
)

// dashboardCmd represents the dashboard command.
var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d", "tui"},
	Short:   "Open the interactive TUI dashboard",
	Long: `Open the live dashboard: clock, schedule, tasks, habits, notes,
countdown and the astronomy picture of the day.

Keyboard Controls:
  tab / shift+tab  Switch pane
  up/k, down/j     Move the cursor
  a                Add a schedule entry or task
  d / x            Delete the selected entry or task
  space / enter    Toggle a task or habit, edit notes
  c                Clear completed tasks
  esc              Leave notes editing (saves)
  r                Reload data and refetch the picture
  q                Quit dashboard

Logs are written to the dashboard log file while the UI owns the terminal.

Examples:
  stardeck dashboard
  stardeck dash
  stardeck tui`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	logFile, err := logging.OpenLogFile(logging.LogPath())
	if err != nil {
		return err
	}
	defer logFile.Close()

	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	logging.Init(logging.Config{Level: level, Output: logFile})
	logging.Info("dashboard started")

	// Configure the dashboard
	dash := ctx.Config.Dashboard
	config := tui.DashboardConfig{
		Dispatcher:    ctx.Dispatcher,
		FetchPicture:  ctx.FetchPicture,
		Countdown:     ctx.Countdown(),
		Now:           ctx.Now,
		ClockInterval: dash.ClockInterval,
		FocusInterval: dash.FocusInterval,
		NotesDebounce: dash.NotesDebounce,
	}

	// Run the TUI dashboard
	return tui.Run(config)
}

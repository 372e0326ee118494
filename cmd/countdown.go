package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/parser"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// Countdown command flags.
var (
	countdownFlagWatch bool
	countdownFlagTo    string
	countdownFlagLabel string
)

// countdownCmd represents the countdown command.
var countdownCmd = &cobra.Command{
	Use:     "countdown",
	Aliases: []string{"cd", "goal"},
	Short:   "Show the countdown to your goal date",
	Long: `Show the time remaining until the configured goal date. The goal
repeats every year; once this year's date has passed the countdown targets
next year.

With --watch the countdown redraws every second until interrupted.

Examples:
  stardeck countdown
  stardeck countdown --watch
  stardeck countdown --to 2026-12-25 --label Holidays
  stardeck countdown --to "next friday"`,
	Args: cobra.NoArgs,
	RunE: runCountdown,
}

func init() {
	countdownCmd.Flags().BoolVarP(&countdownFlagWatch, "watch", "w", false, "Redraw the countdown live")
	countdownCmd.Flags().StringVar(&countdownFlagTo, "to", "", "Goal date (overrides config)")
	countdownCmd.Flags().StringVarP(&countdownFlagLabel, "label", "l", "", "Goal label (overrides config)")
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(cmd *cobra.Command, args []string) error {
	now := ctx.Now()

	cd := ctx.Countdown()
	if countdownFlagTo != "" {
		key, err := parser.ParseDate(countdownFlagTo, now)
		if err != nil {
			return err
		}
		date, err := time.ParseInLocation(model.DateKeyLayout, key.String(), now.Location())
		if err != nil {
			return err
		}
		cd.Month = date.Month()
		cd.Day = date.Day()
	}
	if countdownFlagLabel != "" {
		cd.Label = countdownFlagLabel
	}

	goal := cd.Start(now)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCountdown(goal, now)
	}

	if !countdownFlagWatch {
		ctx.CLIFormatter().PrintCountdown(goal, now)
		return nil
	}

	display := timer.NewCountdownDisplay()
	display.Writer = ctx.Formatter.Writer
	display.UseColor = ctx.Formatter.IsColorEnabled()
	display.ShowProgress = true

	timer.Watch(cmd.Context(), display, goal, timer.WatchOptions{
		Interval: ctx.Config.Dashboard.ClockInterval,
		Now:      ctx.Now,
		Signals:  true,
	})
	return nil
}

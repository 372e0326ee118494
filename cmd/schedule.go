package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/output"
	"github.com/manav03panchal/stardeck/internal/parser"
)

// scheduleCmd represents the schedule command.
var scheduleCmd = &cobra.Command{
	Use:     "schedule",
	Aliases: []string{"sched", "s"},
	Short:   "Show and edit the daily schedule",
	Long: `Show the daily schedule with the current entry highlighted, or edit it.

Times accept HHMM (930, 1400), HH:MM (09:30) or natural phrases (9am, noon).

Examples:
  stardeck schedule
  stardeck schedule add 1300 1400 "Lunch walk"
  stardeck schedule add 9am 10:30am Standup
  stardeck schedule delete 1736938200000
  stardeck schedule now`,
	RunE: runScheduleList,
}

// scheduleListCmd lists the schedule.
var scheduleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List schedule entries",
	Args:    cobra.NoArgs,
	RunE:    runScheduleList,
}

// scheduleAddCmd adds an entry.
var scheduleAddCmd = &cobra.Command{
	Use:   "add START END DESCRIPTION...",
	Short: "Add a schedule entry",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runScheduleAdd,
}

// scheduleDeleteCmd removes an entry.
var scheduleDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a schedule entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runScheduleDelete,
}

// scheduleNowCmd shows the current entry.
var scheduleNowCmd = &cobra.Command{
	Use:   "now",
	Short: "Show the entry scheduled for right now",
	Args:  cobra.NoArgs,
	RunE:  runScheduleNow,
}

func init() {
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleDeleteCmd)
	scheduleCmd.AddCommand(scheduleNowCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleList(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Snapshot()
	if err != nil {
		return err
	}
	return printSchedule(snap)
}

func runScheduleAdd(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Dispatch(action.ScheduleAdd, action.Args{
		action.ArgStart:       args[0],
		action.ArgEnd:         args[1],
		action.ArgDescription: strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}

	if ctx.IsCLI() {
		if i := model.FindEntry(snap.Schedule, snap.Added); i >= 0 {
			e := snap.Schedule[i]
			ctx.CLIFormatter().Success(fmt.Sprintf("Added %s %s", e.Span(), e.Description))
		}
	}
	return printSchedule(snap)
}

func runScheduleDelete(cmd *cobra.Command, args []string) error {
	id, err := parser.ParseID(args[0])
	if err != nil {
		return err
	}

	entries, err := ctx.Schedule.Load()
	if err != nil {
		return err
	}
	found := model.FindEntry(entries, id) >= 0

	snap, err := ctx.Dispatcher.Dispatch(action.ScheduleDelete, action.Args{action.ArgID: args[0]})
	if err != nil {
		return err
	}

	if ctx.IsCLI() {
		cli := ctx.CLIFormatter()
		if found {
			cli.Success(fmt.Sprintf("Deleted entry #%d", id))
		} else {
			cli.Warning(fmt.Sprintf("No schedule entry #%d", id))
		}
	}
	return printSchedule(snap)
}

// focusResponse is the JSON shape of 'schedule now'.
type focusResponse struct {
	Current *output.ScheduleEntryOutput `json:"current"`
}

func runScheduleNow(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Snapshot()
	if err != nil {
		return err
	}
	entry, ok := snap.FocusEntry()

	if ctx.IsJSON() {
		resp := focusResponse{}
		if ok {
			resp.Current = &output.NewScheduleResponse([]model.ScheduleEntry{entry}, 0).Entries[0]
		}
		return ctx.Formatter.JSON(resp)
	}

	ctx.CLIFormatter().PrintFocus(entry, ok)
	return nil
}

func printSchedule(snap action.Snapshot) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintSchedule(snap.Schedule, snap.Focus)
	}
	ctx.CLIFormatter().PrintSchedule(snap.Schedule, snap.Focus)
	return nil
}

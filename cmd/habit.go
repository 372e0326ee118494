package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/model"
)

// habitCmd represents the habit command.
var habitCmd = &cobra.Command{
	Use:     "habit",
	Aliases: []string{"habits", "h"},
	Short:   "Track daily habits",
	Long: `Show today's habits or toggle one. Completion resets at the start of
each local day.

Examples:
  stardeck habit
  stardeck habit toggle water`,
	RunE: runHabitList,
}

// habitListCmd lists habits.
var habitListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List today's habits",
	Args:    cobra.NoArgs,
	RunE:    runHabitList,
}

// habitToggleCmd toggles a habit.
var habitToggleCmd = &cobra.Command{
	Use:     "toggle ID",
	Aliases: []string{"done"},
	Short:   "Toggle a habit for today",
	Args:    cobra.ExactArgs(1),
	RunE:    runHabitToggle,
}

func init() {
	habitCmd.AddCommand(habitListCmd)
	habitCmd.AddCommand(habitToggleCmd)
	rootCmd.AddCommand(habitCmd)
}

func runHabitList(cmd *cobra.Command, args []string) error {
	today := model.DateKeyFor(ctx.Now())
	habits, err := ctx.Habits.Load(today)
	if err != nil {
		return err
	}
	return printHabits(habits, today)
}

func runHabitToggle(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Dispatch(action.HabitToggle, action.Args{action.ArgID: args[0]})
	if err != nil {
		return err
	}

	if ctx.IsCLI() {
		cli := ctx.CLIFormatter()
		found := false
		for _, h := range snap.Habits {
			if h.ID == args[0] {
				found = true
				state := "not done"
				if h.Done {
					state = "done"
				}
				cli.Success(fmt.Sprintf("%s: %s", h.Name, state))
			}
		}
		if !found {
			cli.Warning(fmt.Sprintf("No habit %q", args[0]))
		}
	}
	return printHabits(snap.Habits, snap.Today)
}

func printHabits(habits []model.HabitRecord, today model.DateKey) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintHabits(habits, today)
	}
	ctx.CLIFormatter().PrintHabits(habits, today)
	return nil
}

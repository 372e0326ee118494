package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/parser"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "todo", "t"},
	Short:   "Manage the to-do list",
	Long: `List, add, complete and remove tasks. Incomplete tasks are listed first.

Examples:
  stardeck task
  stardeck task add "Finish lab report"
  stardeck task done 1736938200000
  stardeck task delete 1736938200000
  stardeck task clear`,
	RunE: runTaskList,
}

// taskListCmd lists tasks.
var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runTaskList,
}

// taskAddCmd adds a task.
var taskAddCmd = &cobra.Command{
	Use:   "add TEXT...",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

// taskDoneCmd toggles completion.
var taskDoneCmd = &cobra.Command{
	Use:     "done ID",
	Aliases: []string{"toggle", "undone"},
	Short:   "Toggle a task between done and not done",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskToggle,
}

// taskDeleteCmd deletes a task.
var taskDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm", "del"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDelete,
}

// taskClearCmd removes completed tasks.
var taskClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Args:  cobra.NoArgs,
	RunE:  runTaskClear,
}

func init() {
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskClearCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskList(cmd *cobra.Command, args []string) error {
	tasks, err := ctx.Tasks.Load()
	if err != nil {
		return err
	}
	return printTasks(tasks)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Dispatch(action.TaskAdd, action.Args{
		action.ArgText: strings.Join(args, " "),
	})
	if err != nil {
		return err
	}
	if ctx.IsCLI() {
		if i := model.FindTask(snap.Tasks, snap.Added); i >= 0 {
			ctx.CLIFormatter().Success(fmt.Sprintf("Added task #%d", snap.Added))
		}
	}
	return printTasks(snap.Tasks)
}

func runTaskToggle(cmd *cobra.Command, args []string) error {
	return mutateTask(action.TaskToggle, args[0], "Toggled")
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	return mutateTask(action.TaskDelete, args[0], "Deleted")
}

// mutateTask runs an id-addressed task action, warning when the id is unknown.
func mutateTask(name, rawID, verb string) error {
	id, err := parser.ParseID(rawID)
	if err != nil {
		return err
	}
	tasks, err := ctx.Tasks.Load()
	if err != nil {
		return err
	}
	found := model.FindTask(tasks, id) >= 0

	snap, err := ctx.Dispatcher.Dispatch(name, action.Args{action.ArgID: rawID})
	if err != nil {
		return err
	}

	if ctx.IsCLI() {
		cli := ctx.CLIFormatter()
		if found {
			cli.Success(fmt.Sprintf("%s task #%d", verb, id))
		} else {
			cli.Warning(fmt.Sprintf("No task #%d", id))
		}
	}
	return printTasks(snap.Tasks)
}

func runTaskClear(cmd *cobra.Command, args []string) error {
	before, err := ctx.Tasks.Load()
	if err != nil {
		return err
	}
	snap, err := ctx.Dispatcher.Dispatch(action.TaskClear, nil)
	if err != nil {
		return err
	}
	if ctx.IsCLI() {
		ctx.CLIFormatter().Success(fmt.Sprintf("Cleared %d completed", len(before)-len(snap.Tasks)))
	}
	return printTasks(snap.Tasks)
}

func printTasks(tasks []model.Task) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintTasks(tasks)
	}
	ctx.CLIFormatter().PrintTasks(tasks)
	return nil
}

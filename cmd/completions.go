package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/parser"
)

func init() {
	scheduleAddCmd.ValidArgsFunction = completeClockArgs
	scheduleDeleteCmd.ValidArgsFunction = completeScheduleIDs
	taskDoneCmd.ValidArgsFunction = completeTaskIDs
	taskDeleteCmd.ValidArgsFunction = completeTaskIDs
	habitToggleCmd.ValidArgsFunction = completeHabitIDs
}

// completeScheduleIDs completes schedule entry ids, described by span and text.
func completeScheduleIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	entries, err := ctx.Schedule.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, e := range entries {
		id := fmt.Sprintf("%d", e.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+e.Span()+" "+e.Description)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeTaskIDs completes task ids, described by their text.
func completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	tasks, err := ctx.Tasks.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, t := range tasks {
		id := fmt.Sprintf("%d", t.ID)
		if strings.HasPrefix(id, toComplete) {
			completions = append(completions, id+"\t"+t.Text)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeHabitIDs completes configured habit ids.
func completeHabitIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 || ctx == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, h := range ctx.Config.HabitRecords() {
		if strings.HasPrefix(h.ID, toComplete) {
			completions = append(completions, h.ID+"\t"+h.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeClockArgs suggests times for the start and end of a new entry.
func completeClockArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) >= 2 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var suggestions []string
	if len(args) == 0 {
		suggestions = append(suggestions, "now\tcurrent time")
	} else if start, err := parser.ParseClock("start", args[0]); err == nil && model.ValidHHMM(start+100) {
		suggestions = append(suggestions, model.FormatHHMM(start+100)+"\tone hour later")
	}
	for h := 8; h <= 20; h += 2 {
		suggestions = append(suggestions, fmt.Sprintf("%02d00", h))
	}

	var filtered []string
	for _, s := range suggestions {
		if strings.HasPrefix(strings.Split(s, "\t")[0], toComplete) {
			filtered = append(filtered, s)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}

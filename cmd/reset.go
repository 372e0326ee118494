package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/logging"
)

var resetFlagForce bool

// resetCmd wipes all stored dashboard data.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all stored dashboard data",
	Long: `Delete every stored record: schedule, tasks, habits and notes. The next
run starts again from the default schedule and habits.

Examples:
  stardeck reset
  stardeck reset --force`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetFlagForce, "force", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	keys, err := ctx.DB.Keys("")
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]any{"status": "empty", "deleted": 0})
		}
		ctx.CLIFormatter().Muted("Nothing to reset")
		return nil
	}

	// Confirm deletion unless --force is used
	if !resetFlagForce {
		cli := ctx.CLIFormatter()
		cli.Printf("This deletes %d stored records: %s\n", len(keys), strings.Join(keys, ", "))
		confirmed, err := promptConfirmation(cmd, "Delete everything? (y/N): ")
		if err != nil {
			return err
		}
		if !confirmed {
			cli.Muted("Cancelled")
			return nil
		}
	}

	for _, key := range keys {
		if err := ctx.DB.Delete(key); err != nil {
			return err
		}
	}
	logging.Info("store reset", logging.KeyCount, len(keys))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{"status": "reset", "deleted": len(keys)})
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("Deleted %d records", len(keys)))
	return nil
}

// promptConfirmation asks a yes/no question on the command's input.
func promptConfirmation(cmd *cobra.Command, prompt string) (bool, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	var response string
	_, err := fmt.Fscanln(cmd.InOrStdin(), &response)
	if err != nil {
		// Empty input (just Enter) means no
		return false, nil
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

package cmd

import (
	"github.com/spf13/cobra"
)

// apodCmd represents the apod command.
var apodCmd = &cobra.Command{
	Use:     "apod",
	Aliases: []string{"picture", "sky"},
	Short:   "Show the astronomy picture of the day",
	Long: `Fetch the astronomy picture of the day and show its title, image link
and a shortened explanation. When the service cannot be reached an offline
notice is shown instead.

Set STARDECK_APOD_API_KEY to use your own API key.

Examples:
  stardeck apod
  stardeck apod --format json`,
	Args: cobra.NoArgs,
	RunE: runAPOD,
}

func init() {
	rootCmd.AddCommand(apodCmd)
}

func runAPOD(cmd *cobra.Command, args []string) error {
	d := ctx.FetchPicture(cmd.Context())

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintPicture(d)
	}
	ctx.CLIFormatter().PrintPicture(d)
	return nil
}

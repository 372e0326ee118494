package cmd

import (
	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/config"
	"github.com/manav03panchal/stardeck/internal/errors"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Inspect application configuration",
	Long: `Show the effective configuration after defaults, the config file and
STARDECK_* environment variables have been applied.

Environment:
  STARDECK_DATABASE         Database directory, or :memory:
  STARDECK_APOD_URL         Picture-of-the-day endpoint
  STARDECK_APOD_API_KEY     Picture-of-the-day API key
  STARDECK_HTTP_TIMEOUT     Fetch timeout (e.g. 10s)
  STARDECK_OFFLINE          Skip the picture fetch (1 or true)
  STARDECK_COUNTDOWN        Goal date as MM-DD
  STARDECK_COUNTDOWN_LABEL  Goal label

Examples:
  stardeck config show
  stardeck config path`,
	RunE: runConfigShow,
}

// configShowCmd prints the effective configuration.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(ctx.Config)
	}
	if err := toml.NewEncoder(ctx.Formatter.Writer).Encode(ctx.Config); err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"path": path})
	}
	ctx.Formatter.Println(path)
	return nil
}

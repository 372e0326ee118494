// Package cmd provides the CLI commands for Stardeck.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/stardeck/internal/config"
	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/output"
	"github.com/manav03panchal/stardeck/internal/runtime"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat    string
	flagColor     string
	flagDebug     bool
	flagEphemeral bool
	flagConfig    string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "stardeck",
	Short: "A personal mission-control dashboard for your terminal",
	Long: `Stardeck keeps your day in one place: a clock, an editable schedule,
a to-do list, daily habits, a notes pad, a goal countdown and the
astronomy picture of the day.

Run without arguments for a status summary, or open the live dashboard.

Examples:
  stardeck
  stardeck dashboard
  stardeck schedule add 9am 10:30 "Deep Work"
  stardeck task add "Finish lab report"
  stardeck habit toggle water
  stardeck countdown --watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for completion, help and version commands
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}

		if flagDebug {
			logging.Init(logging.DebugConfig())
		}

		opts := runtime.DefaultOptions()
		opts.Format = output.ParseFormat(flagFormat)
		opts.ColorMode = parseColorMode(flagColor)
		opts.Debug = flagDebug
		opts.InMemory = flagEphemeral
		if flagConfig != "" {
			opts.ConfigPath = flagConfig
		}

		var err error
		ctx, err = runtime.New(opts)
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		ctx.Debugf("session %s", logging.SessionID())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if ctx != nil {
			err := ctx.Close()
			ctx = nil
			return err
		}
		return nil
	},
	RunE: runStatus,
}

// parseColorMode maps the --color flag to a color mode.
func parseColorMode(s string) output.ColorMode {
	switch s {
	case "always":
		return output.ColorAlways
	case "never":
		return output.ColorNever
	default:
		return output.ColorAuto
	}
}

// runStatus shows the dashboard summary.
func runStatus(cmd *cobra.Command, args []string) error {
	snap, err := ctx.Dispatcher.Snapshot()
	if err != nil {
		return err
	}

	now := ctx.Now()
	goal := ctx.Countdown().Start(now)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintStatus(snap, goal, now)
	}

	ctx.CLIFormatter().PrintStatus(snap, goal, now)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "cli",
		"Output format: cli, json, plain")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", "auto",
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug output")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false,
		"Use an in-memory store; nothing is saved")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		fmt.Sprintf("Config file (default %s)", config.DefaultPath()))

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("stardeck %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
	},
}

// Die prints an error and exits.
func Die(err error) {
	if flagFormat == string(output.FormatJSON) {
		f := output.NewFormatter()
		f.Writer = os.Stderr
		_ = output.NewJSONFormatter(f).PrintError("error", err.Error(), runtime.FormatError(err), runtime.Suggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + runtime.FormatError(err) + "\n")
	}
	os.Exit(runtime.ExitCode(err))
}

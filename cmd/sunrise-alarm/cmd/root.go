package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/sunrise-alarm/internal/service/alarm"
	"github.com/oshokin/sunrise-alarm/internal/version"
)

var (
	// simulate drives a log-only strip instead of the LED hardware.
	simulate bool

	// rootCmd represents the base command for running the sunrise alarm.
	rootCmd = &cobra.Command{
		Use:   "sunrise-alarm <config-file>",
		Short: "Wake up to an LED strip that fades in like a sunrise.",
		Long: `Waits for the next configured alarm time, then slowly raises the brightness
of an addressable LED strip from off to full, keeps it on for a while,
switches it off and waits for the next alarm.

The configuration file is YAML or relaxed JSON, for example:

  {
    time: "07:00",
    days: ["monday", "wednesday"],
    fade_in_minutes: 10,
    last_for_minutes_after_alarm: 5,
    log_path: "/var/log/sunrise-alarm/alarm.log"
  }`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options := &alarm.Options{
				ConfigPath: args[0],
				Simulate:   simulate,
			}

			return alarm.Run(ctx, options)
		},
	}
)

// Execute runs the sunrise-alarm CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Hidden flag for running without LED hardware.
	rootCmd.Flags().BoolVar(&simulate, "simulate", false, "log brightness changes instead of driving the LED strip")

	err := rootCmd.Flags().MarkHidden("simulate")
	if err != nil {
		panic(err)
	}
}

package main

import (
	"time"

	"github.com/decker502/tavola/pkg/app"
	"github.com/decker502/tavola/pkg/trace"
	"github.com/spf13/cobra"
)

// NewTraceCmd creates the trace command.
func NewTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the timeline of every UI state change without opening a window",
		Long: `Trace runs the loading overlay, the intro and a scripted landing page scroll
on a virtual clock and prints every observable state change with its timestamp.

Examples:
  # Plain text timeline
  tavola trace

  # Markdown report for the first 5 seconds, 10ms frames
  tavola trace -f markdown --until 5s --step 10ms`,
		Args: cobra.NoArgs,
		RunE: runTraceCmd,
	}

	cmd.Flags().StringP("format", "f", string(trace.FormatText), "Output format (text, markdown)")
	cmd.Flags().Duration("until", 8*time.Second, "Virtual time to run")
	cmd.Flags().Duration("step", 16*time.Millisecond, "Host frame interval")
	cmd.Flags().Duration("load-at", 300*time.Millisecond, "When the environment load signal fires")

	return cmd
}

// runTraceCmd executes the trace command.
func runTraceCmd(cmd *cobra.Command, _ []string) error {
	formatName, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatName)
	if err != nil {
		return err
	}

	until, err := cmd.Flags().GetDuration("until")
	if err != nil {
		return err
	}
	step, err := cmd.Flags().GetDuration("step")
	if err != nil {
		return err
	}
	loadAt, err := cmd.Flags().GetDuration("load-at")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	siteConfig, err := app.LoadSiteConfig(configPath)
	if err != nil {
		return err
	}

	timeline, err := trace.Run(siteConfig, trace.Options{
		Until:  until,
		Step:   step,
		LoadAt: loadAt,
	})
	if err != nil {
		return err
	}

	return trace.Write(cmd.OutOrStdout(), timeline, format)
}

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/tavola/pkg/embedded"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for Tavola.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tavola",
		Short: "Animated landing page for a wood-fired restaurant",
		Long: `Tavola plays the restaurant site's front page: a loading overlay that
fades out once content is ready, a short brand intro, and a scrollable
landing page with floating buttons and counting statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if !verbose {
				log.SetOutput(io.Discard)
				log.SetFlags(0)
			}
		},
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Site config file (defaults to the embedded data/site.yaml)")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewTraceCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	embedded.Init(dataFS)

	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

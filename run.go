package main

import (
	"fmt"

	"github.com/decker502/tavola/pkg/app"
	"github.com/decker502/tavola/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the landing page in a window",
		Long: `Run opens a window and plays the loading overlay, the intro and the landing page.

Keys:
  Wheel / arrows / PageUp / PageDown / Space   scroll
  Home                                         smooth scroll to top
  F11                                          toggle fullscreen`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().Bool("skip-intro", false, "Go straight to the landing page once loaded")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	skipIntro, err := cmd.Flags().GetBool("skip-intro")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    verbose,
		SkipIntro:  skipIntro,
		ConfigPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}
	defer gameApp.Shutdown()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(gameApp)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/scenekit/internal/config"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <config.toml>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "scenekit: %v\n", err)
				return err
			}
			good.Fprintf(cmd.OutOrStdout(), "ok  %s\n", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "viewport  %gx%g\n", cfg.Viewport.Width, cfg.Viewport.Height)
			fmt.Fprintf(cmd.OutOrStdout(), "zoom      [%g, %g]\n", cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
			fmt.Fprintf(cmd.OutOrStdout(), "snap      enabled=%t tolerance=%gpx\n", cfg.Snap.Enabled, cfg.Snap.TolerancePx)
			fmt.Fprintf(cmd.OutOrStdout(), "history   max %d entries\n", cfg.History.MaxEntries)
			return nil
		},
	}
}

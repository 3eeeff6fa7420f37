package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/scenekit/internal/config"
	"github.com/dshills/scenekit/internal/config/watch"
	"github.com/dshills/scenekit/internal/engine"
	"github.com/dshills/scenekit/internal/script"
)

func runCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		timeout    time.Duration
		watchCfg   bool
	)

	cmd := &cobra.Command{
		Use:   "run <macro.lua> [macro.lua...]",
		Short: "Execute Lua macros against a fresh scene and print a summary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "scenekit: %v\n", err)
				return err
			}
			logger, err := buildLogger(cfg.Log.Level, verbose)
			if err != nil {
				bad.Fprintf(cmd.ErrOrStderr(), "scenekit: %v\n", err)
				return err
			}
			defer func() { _ = logger.Sync() }()

			store := engine.New(
				engine.WithConfig(cfg),
				engine.WithLogger(logger.Named("engine")),
			)

			if watchCfg && configPath != "" {
				w, err := watch.New(configPath, store.ApplyConfig,
					watch.WithLogger(logger.Named("config")))
				if err != nil {
					bad.Fprintf(cmd.ErrOrStderr(), "scenekit: watch: %v\n", err)
					return err
				}
				defer func() { _ = w.Close() }()
			}

			host := script.New(store,
				script.WithLogger(logger.Named("script")),
				script.WithTimeout(timeout))
			defer host.Close()

			for _, path := range args {
				if err := host.RunFile(path); err != nil {
					bad.Fprintf(cmd.ErrOrStderr(), "scenekit: %s: %v\n", path, err)
					return err
				}
				good.Fprintf(cmd.OutOrStdout(), "ok  %s\n", path)
			}

			printSummary(cmd, store)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().DurationVar(&timeout, "timeout", script.DefaultTimeout, "Per-macro execution limit")
	cmd.Flags().BoolVar(&watchCfg, "watch-config", false, "Reload configuration on change while running")
	return cmd
}

func printSummary(cmd *cobra.Command, store *engine.Store) {
	out := cmd.OutOrStdout()
	cam := store.Camera()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "nodes     %d\n", store.NodeCount())
	fmt.Fprintf(out, "selected  %d\n", len(store.Selected()))
	fmt.Fprintf(out, "groups    %d\n", len(store.VisualGroups()))
	fmt.Fprintf(out, "guides    %d\n", len(store.Guides()))
	fmt.Fprintf(out, "camera    zoom %.2f at (%.1f, %.1f)\n", cam.Zoom, cam.OffsetX, cam.OffsetY)
	fmt.Fprintf(out, "history   %d past / %d future\n", store.HistoryLen(), store.FutureLen())

	for _, n := range store.Nodes() {
		line := fmt.Sprintf("  %-20s (%.1f, %.1f) %gx%g", n.ID, n.X, n.Y, n.Width, n.Height)
		if n.ParentID != "" {
			line += "  parent=" + n.ParentID
		}
		subtle.Fprintln(out, line)
	}
}

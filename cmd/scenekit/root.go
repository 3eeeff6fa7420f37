package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

var (
	bad    = color.New(color.FgRed, color.Bold)
	good   = color.New(color.FgGreen)
	subtle = color.New(color.Faint)
)

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "scenekit",
		Short:         "Headless scene-graph engine for canvas macros",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		runCmd(),
		checkCmd(),
	)
	return cmd
}

// buildLogger creates a console logger at the configured level.
func buildLogger(level string, verbose bool) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

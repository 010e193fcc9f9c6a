// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/microcharts/base/logx"
	"github.com/spf13/cobra"
)

// NewRootCmd returns the microcharts root command with its subcommands.
func NewRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:   "microcharts",
		Short: "Render point, bar, and line charts from chart files",
		Long: `microcharts renders the charts described by TOML, YAML, or JSON
chart files to PNG, JPEG, GIF, TIFF, BMP, or SVG images.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(cfg.VeryVerbose, cfg.Verbose, cfg.Quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "log informational messages")
	pf.BoolVar(&cfg.VeryVerbose, "vv", false, "log debugging messages")
	pf.BoolVarP(&cfg.Quiet, "quiet", "q", false, "only log errors")

	root.AddCommand(newRenderCmd(cfg), newWatchCmd(cfg))
	return root
}

// addOutputFlags adds the flags shared by render and watch.
func addOutputFlags(cmd *cobra.Command, cfg *Config) {
	f := cmd.Flags()
	f.StringVarP(&cfg.Output, "output", "o", "", "output image file (default: input name with .png)")
	f.Float32Var(&cfg.Width, "width", 0, "surface width (default: from the chart file)")
	f.Float32Var(&cfg.Height, "height", 0, "surface height (default: from the chart file)")
	f.StringVar(&cfg.Tap, "tap", "", "select the point nearest to x,y")
	f.StringVar(&cfg.Font, "font", "sans", "text font: mono or sans")
}

func newRenderCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a chart file to an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = args[0]
			return Render(cfg)
		},
	}
	addOutputFlags(cmd, cfg)
	return cmd
}

func newWatchCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Render a chart file to an image whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Input = args[0]
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return Watch(ctx, cfg, nil)
		},
	}
	addOutputFlags(cmd, cfg)
	return cmd
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// Package cli provides the Cobra command structure for mdscan.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "mdscan",
		Short: "An incremental, character-level Markdown construct scanner",
		Long: `mdscan drives the incremental Markdown tokenizing engine over a piece
of input and prints the event stream a construct produces.

It recognizes one construct at a time - such as a quoted or parenthesized
title - and shows the enter/exit spans, source positions, content-type
tags, and subtokenization chains that later passes consume.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newConstructsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/helixos/lumina/driver"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "lumina",
		Short: "Inspect GPU resource descriptions",
		Long: `Lumina inspects GPU resource descriptions.

It lists texture formats and their native mappings, computes
compute dispatch sizes, compiles WGSL shaders to SPIR-V and
reports the limits of the host-memory backend.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose {
				h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
				driver.SetLogger(slog.New(h))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages to stderr")
	root.AddCommand(
		newFormatsCmd(),
		newDispatchCmd(),
		newCompileCmd(),
		newLimitsCmd(),
	)
	return root
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
}

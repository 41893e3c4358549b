// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/helixos/lumina/shader"
)

func newCompileCmd() *cobra.Command {
	var (
		output string
		opts   shader.Options
	)
	cmd := &cobra.Command{
		Use:   "compile FILE",
		Short: "Compile a WGSL shader to SPIR-V",
		Long: `Compile a WGSL shader to SPIR-V and list its entry points.

The SPIR-V binary is written to --output, if set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			m, err := shader.Compile(string(src), opts)
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, m.SPIRV, 0o644); err != nil {
					return err
				}
			}
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ENTRY\tSTAGE\tWORKGROUP")
			for _, e := range m.EntryPoints {
				wg := "-"
				if e.Workgroup.Invocations() != 0 {
					wg = fmt.Sprintf("%dx%dx%d", e.Workgroup.X, e.Workgroup.Y, e.Workgroup.Z)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Stage, wg)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d bytes of SPIR-V\n", len(m.SPIRV))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "SPIR-V output file")
	cmd.Flags().BoolVar(&opts.Validate, "validate", false, "validate the shader before generating code")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "emit debug information")
	return cmd
}

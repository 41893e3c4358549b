// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helixos/lumina/driver"
)

func newLimitsCmd() *cobra.Command {
	var config, format string
	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Show the limits of the host-memory backend",
		Long: `Show the configuration and limits of the host-memory backend,
as loaded from --config or the defaults.

With --format toml or --format yaml, the whole configuration is
printed in that format, suitable as a starting --config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if format != "" {
				b, err := cfg.Marshal(format)
				if err != nil {
					return err
				}
				_, err = out.Write(b)
				return err
			}
			l := cfg.Limits
			tw := newTable(out)
			fmt.Fprintf(tw, "name\t%s\n", cfg.Name)
			fmt.Fprintf(tw, "heap size\t%d\n", cfg.HeapSize)
			fmt.Fprintf(tw, "block size\t%d\n", cfg.BlockSize)
			fmt.Fprintf(tw, "max buffer size\t%d\n", l.MaxBufferSize)
			fmt.Fprintf(tw, "max texture 2D\t%d\n", l.MaxTexture2D)
			fmt.Fprintf(tw, "max texture 3D\t%d\n", l.MaxTexture3D)
			fmt.Fprintf(tw, "max mip levels\t%d\n", l.MaxMipLevels)
			fmt.Fprintf(tw, "samples\t%s\n", sampleCounts(l.Samples))
			fmt.Fprintf(tw, "max workgroup size\t%v\n", l.MaxWorkgroupSize)
			fmt.Fprintf(tw, "max workgroup invocations\t%d\n", l.MaxWorkgroupInvocations)
			fmt.Fprintf(tw, "max dispatch\t%v\n", l.MaxDispatch)
			fmt.Fprintf(tw, "max mesh output\t%d vertices, %d primitives\n", l.MaxMeshVertices, l.MaxMeshPrimitives)
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "backend configuration file (.toml or .yaml)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "print the configuration as toml or yaml")
	return cmd
}

func sampleCounts(s driver.SampleCount) string {
	var out string
	for n := driver.Sample1; n <= driver.Sample64; n <<= 1 {
		if s.Has(n) {
			if out != "" {
				out += ","
			}
			out += fmt.Sprint(n.Count())
		}
	}
	return out
}

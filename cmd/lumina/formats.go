// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixos/lumina/driver"
)

func newFormatsCmd() *cobra.Command {
	var buffers bool
	cmd := &cobra.Command{
		Use:   "formats [name...]",
		Short: "List texture formats",
		Long: `List texture formats with their size, channel count, Vulkan and
WebGPU mappings and flags. Names are matched ignoring case.

With --buffers, list buffer usages instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if buffers {
				return listBufferUsages(cmd)
			}
			return listFormats(cmd, args)
		},
	}
	cmd.Flags().BoolVar(&buffers, "buffers", false, "list buffer usages")
	return cmd
}

func listFormats(cmd *cobra.Command, names []string) error {
	fs := driver.Formats()
	if len(names) > 0 {
		var sel []driver.TextureFormat
	names:
		for _, n := range names {
			for _, f := range fs {
				if strings.EqualFold(f.String(), n) {
					sel = append(sel, f)
					continue names
				}
			}
			return fmt.Errorf("unknown format %q", n)
		}
		fs = sel
	}
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "NAME\tBYTES\tBLOCK\tCHANNELS\tVK\tWGPU\tFLAGS")
	for _, f := range fs {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			f, f.BytesPerPixel(), f.BlockSize(), f.Channels(), f.VkFormat(), f.WGPU(), formatFlags(f))
	}
	return tw.Flush()
}

func formatFlags(f driver.TextureFormat) string {
	var s []string
	if f.IsDepth() {
		s = append(s, "depth")
	}
	if f.HasStencil() {
		s = append(s, "stencil")
	}
	if f.IsCompressed() {
		s = append(s, "compressed")
	}
	if f.IsSRGB() {
		s = append(s, "srgb")
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, ",")
}

func listBufferUsages(cmd *cobra.Command) error {
	tw := newTable(cmd.OutOrStdout())
	fmt.Fprintln(tw, "USAGE\tVK\tWGPU")
	for _, u := range driver.BufferUsages() {
		fmt.Fprintf(tw, "%s\t%#x\t%#x\n", u, u.VkFlags(), uint64(u.WGPU()))
	}
	return tw.Flush()
}

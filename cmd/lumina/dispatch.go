// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/helixos/lumina/driver"
	"github.com/helixos/lumina/driver/memgpu"
)

func newDispatchCmd() *cobra.Command {
	var wg, config string
	cmd := &cobra.Command{
		Use:   "dispatch SIZE",
		Short: "Compute the workgroup count of a dispatch",
		Long: `Compute how many workgroups cover SIZE invocations.

SIZE and --workgroup take the form X, XxY or XxYxZ. Missing
dimensions are 1. The workgroup and dispatch sizes are checked
against the limits of the backend configured by --config, or
the default backend limits.`,
		Example: "  lumina dispatch 1920x1080 --workgroup 16x16",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := parseSize(args[0], false)
			if err != nil {
				return err
			}
			ws, err := parseSize(wg, true)
			if err != nil {
				return fmt.Errorf("workgroup: %w", err)
			}
			cfg, err := loadConfig(config)
			if err != nil {
				return err
			}
			w := driver.D3(ws[0], ws[1], ws[2])
			if err := cfg.Limits.CheckWorkgroup(w); err != nil {
				return err
			}
			d := driver.DispatchFor(size, w)
			if err := cfg.Limits.CheckDispatch(d); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "workgroup  %dx%dx%d (%d invocations)\n", w.X, w.Y, w.Z, w.Invocations())
			fmt.Fprintf(out, "dispatch   %dx%dx%d (%d groups)\n", d.X, d.Y, d.Z, d.Groups())
			return nil
		},
	}
	cmd.Flags().StringVarP(&wg, "workgroup", "w", "64", "workgroup size")
	cmd.Flags().StringVarP(&config, "config", "c", "", "backend configuration file (.toml or .yaml)")
	return cmd
}

// parseSize parses X, XxY or XxYxZ.
// Zero components are only allowed if !positive.
func parseSize(s string, positive bool) ([3]uint32, error) {
	v := [3]uint32{1, 1, 1}
	parts := strings.Split(strings.ToLower(s), "x")
	if len(parts) > 3 {
		return v, fmt.Errorf("invalid size %q", s)
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil || (positive && n == 0) {
			return v, fmt.Errorf("invalid size %q", s)
		}
		v[i] = uint32(n)
	}
	return v, nil
}

// loadConfig loads the memgpu configuration at path, or
// returns the default configuration if path is empty.
func loadConfig(path string) (memgpu.Config, error) {
	if path == "" {
		driver.Logger().Debug("lumina: using default config")
		return memgpu.DefaultConfig(), nil
	}
	cfg, err := memgpu.LoadConfig(path)
	if err != nil {
		return cfg, err
	}
	driver.Logger().Debug("lumina: config loaded", "path", path, "name", cfg.Name)
	return cfg, nil
}

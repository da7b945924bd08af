// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/johnbedeir/monokle/pkg/cmd/ui"
	"github.com/johnbedeir/monokle/pkg/files"
	"github.com/spf13/cobra"
)

// CommonFlags are shared by every command reading inputs.
type CommonFlags struct {
	Debug                    bool
	Color                    string
	AllowSymlinkDestinations []string
	DangerousAllowAllSymlink bool
}

func (f *CommonFlags) Set(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Debug, "debug", false, "Enable debug output")
	cmd.Flags().StringVar(&f.Color, "color", string(ui.ColorAuto), "Color output (auto, always, never)")
	cmd.Flags().StringSliceVar(&f.AllowSymlinkDestinations, "allow-symlink-destination", nil,
		"File paths to which symlinks are allowed to point to (can be specified multiple times)")
	cmd.Flags().BoolVar(&f.DangerousAllowAllSymlink, "dangerous-allow-all-symlink-destinations", false,
		"Symlinks to all destinations are allowed")
}

func (f *CommonFlags) UI() (ui.TTY, error) {
	mode := ui.ColorMode(f.Color)
	err := mode.Validate()
	if err != nil {
		return ui.TTY{}, err
	}
	return ui.NewTTY(f.Debug, mode), nil
}

func (f *CommonFlags) FileOpts(recursive bool) files.Opts {
	return files.Opts{
		Recursive: recursive,
		Symlinks: files.SymlinkAllowOpts{
			AllowAll:        f.DangerousAllowAllSymlink,
			AllowedDstPaths: f.AllowSymlinkDestinations,
		},
	}
}

// singleFile loads exactly one input named by path.
func singleFile(path, desc string, opts files.Opts) (*files.File, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("Expected %s file to be specified", desc)
	}
	result, err := files.NewFiles([]string{path}, opts)
	if err != nil {
		return nil, err
	}
	if len(result) != 1 {
		return nil, fmt.Errorf("Expected %s to be a single file", desc)
	}
	return result[0], nil
}

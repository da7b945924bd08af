// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("Unknown color mode '%s' (known: %s, %s, %s)", m, ColorAuto, ColorAlways, ColorNever)
	}
}

// Enabled decides whether to color output written to w. In auto mode
// only terminals get colors.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type SprintfFunc func(format string, args ...interface{}) string

type Colors struct {
	Added   SprintfFunc
	Removed SprintfFunc
	Header  SprintfFunc
	Faint   SprintfFunc
}

func NewColors(enabled bool) Colors {
	if !enabled {
		return Colors{fmt.Sprintf, fmt.Sprintf, fmt.Sprintf, fmt.Sprintf}
	}
	return Colors{
		Added:   sprintfFunc(color.FgGreen),
		Removed: sprintfFunc(color.FgRed),
		Header:  sprintfFunc(color.FgCyan, color.Bold),
		Faint:   sprintfFunc(color.Faint),
	}
}

func sprintfFunc(attrs ...color.Attribute) SprintfFunc {
	c := color.New(attrs...)
	// color.NoColor is decided from os.Stdout; the mode was already resolved
	c.EnableColor()
	return c.SprintfFunc()
}

// seehuhn.de/go/scribble - scribble strokes between glyph contours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Scribble draws zigzag strokes between pairs of glyph contours.
//
// Usage:
//
//	scribble preview JOB [-o out.png]
//	scribble generate JOB [-o out.yaml|out.toml|out.pdf]
//	scribble groups JOB
//	scribble groups add JOB A B [--width N] [--distance D] [--side A|B] [--offset N] [--noise N]
//	scribble groups remove JOB A B [A B]...
//	scribble groups set JOB [A B]... [--width N] [--distance D] [--side A|B] [--offset N] [--noise N]
//	scribble demo DIR
//
// JOB is a YAML or TOML job file describing the contours of one glyph and
// the contour groups to draw.  All commands accept --verbose (-v) for debug
// output.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/scribble"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "scribble",
		Short:         "Draw scribble strokes between glyph contours",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)
			scribble.SetLogger(slog.New(logger))
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPreviewCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newGroupsCmd())
	root.AddCommand(newDemoCmd())
	return root
}

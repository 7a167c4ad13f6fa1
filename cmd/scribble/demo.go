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

package main

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/testcases"
)

func newDemoCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "demo DIR",
		Short: "Render all built-in test cases to PNG files in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			dir := args[0]
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			prog := newProgress(logger)
			n := 0
			for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
				for _, tc := range testcases.All[category] {
					if err := ctx.Err(); err != nil {
						return err
					}
					name := category + "_" + tc.Name

					g, reg, err := tc.Glyph()
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					rng := rand.New(rand.NewPCG(seed, seed))
					res, err := g.Scribble(reg, scribble.WithRand(rng))
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}

					fname := filepath.Join(dir, name+".png")
					if err := renderGlyph(g, res.Strokes, fname); err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					logger.Debug("rendered test case", "file", fname)
					n++
				}
			}
			prog.done(fmt.Sprintf("Rendered %d test cases", n))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the noise generator")
	return cmd
}

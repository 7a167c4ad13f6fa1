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
	"image"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/scribble/glyph"
	"seehuhn.de/go/scribble/preview"
)

func newPreviewCmd() *cobra.Command {
	var (
		output string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "preview JOB",
		Short: "Render the strokes of a job file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := runJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !j.cfg.Preview {
				loggerFromContext(cmd.Context()).Info("Preview disabled in job file", "file", j.fname)
				return nil
			}

			opt := j.cfg.PreviewOptions
			if width > 0 {
				opt.Width = width
			}
			if height > 0 {
				opt.Height = height
			}
			if output == "" {
				output = outputName(j.fname, ".png")
			}

			img, err := preview.Render(j.cfg.Glyph, j.result.Strokes, opt)
			if err != nil {
				return err
			}
			if err := writePNG(output, img); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("Wrote preview", "file", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: JOB with .png extension)")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")
	return cmd
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", fname, err)
	}
	if err := preview.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// renderGlyph draws the strokes of a glyph with the default options.
func renderGlyph(g *glyph.Glyph, strokes []glyph.GroupStroke, fname string) error {
	img, err := preview.Render(g, strokes, preview.DefaultOptions())
	if err != nil {
		return err
	}
	return writePNG(fname, img)
}

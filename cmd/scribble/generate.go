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
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/scribble/config"
	"seehuhn.de/go/scribble/export"
)

func newGenerateCmd() *cobra.Command {
	var (
		output   string
		layer    string
		margin   float64
		outlines bool
	)

	cmd := &cobra.Command{
		Use:   "generate JOB",
		Short: "Write the generated strokes as a layer or a PDF file",
		Long: `Generate draws the strokes of all contour groups and stores them.

If the output file ends in .pdf, the glyph is written as a single page PDF.
Otherwise the job file is written to the output, with the strokes stored
as open contours in the named layer.  Without --output, the layer is
added to the job file itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			j, err := runJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if output == "" {
				output = j.fname
			}

			if strings.EqualFold(filepath.Ext(output), ".pdf") {
				doc := &export.Document{
					Glyph:    j.cfg.Glyph,
					Strokes:  j.result.Strokes,
					Margin:   margin,
					Outlines: outlines,
					Colour:   j.cfg.Colour,
				}
				if err := export.WritePDF(output, doc); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				logger.Info("Wrote PDF", "file", output)
				return nil
			}

			raw, err := config.Load(j.fname)
			if err != nil {
				return err
			}
			l := export.NewLayer(layer, j.result.Strokes)
			raw.SetLayer(l)
			if err := config.Save(output, raw); err != nil {
				return err
			}
			logger.Info("Wrote layer", "layer", l.Name, "contours", len(l.Contours), "file", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.yaml, .toml or .pdf)")
	cmd.Flags().StringVar(&layer, "layer", export.DefaultLayerName, "name of the generated layer")
	cmd.Flags().Float64Var(&margin, "margin", 50, "PDF page margin in font units")
	cmd.Flags().BoolVar(&outlines, "outlines", true, "include the source contours in PDF output")
	return cmd
}

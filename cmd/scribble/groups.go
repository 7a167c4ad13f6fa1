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
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"seehuhn.de/go/scribble"
	"seehuhn.de/go/scribble/config"
	"seehuhn.de/go/scribble/glyph"
)

var (
	colorGray = lipgloss.Color("245")
	colorDim  = lipgloss.Color("240")
	colorRed  = lipgloss.Color("167")
)

func newGroupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups JOB",
		Short: "List and edit the contour groups of a job file",
		Long: `Groups lists the contour groups of a job file, together with their
stroke parameters and the outcome of the stroke generation.

The subcommands edit the groups and write the job file back.  Groups are
named by the ids of their two contours.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := runJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), groupTable(j.cfg.Registry, j.result))
			return nil
		},
	}
	cmd.AddCommand(newGroupsAddCmd())
	cmd.AddCommand(newGroupsRemoveCmd())
	cmd.AddCommand(newGroupsSetCmd())
	return cmd
}

func newGroupsAddCmd() *cobra.Command {
	var pf paramFlags
	cmd := &cobra.Command{
		Use:   "add JOB A B",
		Short: "Pair two contours, or change the parameters of an existing pair",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			edit, err := pf.edit(cmd)
			if err != nil {
				return err
			}
			return editGroups(cmd.Context(), args[0], func(res *config.Resolved) error {
				p := scribble.DefaultParams()
				if old, ok := res.Registry.Get(glyph.Key(args[1], args[2])); ok {
					p = old.Params
				}
				edit(&p)
				_, err := res.Registry.Add(res.Glyph, args[1], args[2], p)
				return err
			})
		},
	}
	pf.register(cmd)
	return cmd
}

func newGroupsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove JOB A B [A B]...",
		Short: "Delete contour groups",
		Long: `Remove deletes the listed contour groups.  If any of the groups does not
exist, the job file is left unchanged.`,
		Args: groupArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := groupKeys(args[1:])
			return editGroups(cmd.Context(), args[0], func(res *config.Resolved) error {
				for _, key := range keys {
					if _, ok := res.Registry.Get(key); !ok {
						return fmt.Errorf("%w: %q", glyph.ErrUnknownGroup, key)
					}
				}
				for _, key := range keys {
					res.Registry.Remove(key)
				}
				return nil
			})
		},
	}
}

func newGroupsSetCmd() *cobra.Command {
	var pf paramFlags
	cmd := &cobra.Command{
		Use:   "set JOB [A B]...",
		Short: "Change the stroke parameters of contour groups",
		Long: `Set changes the given stroke parameters of the listed contour groups, or
of all groups if none are listed.  Parameters without a flag keep their
values.  If any group is unknown, or if the new values are out of range
for any group, the job file is left unchanged.`,
		Args: groupArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !pf.changed(cmd) {
				return errors.New("no parameters given")
			}
			edit, err := pf.edit(cmd)
			if err != nil {
				return err
			}
			keys := groupKeys(args[1:])
			return editGroups(cmd.Context(), args[0], func(res *config.Resolved) error {
				if len(keys) == 0 {
					for _, grp := range res.Registry.Groups() {
						keys = append(keys, grp.Key())
					}
				}
				return res.Registry.Update(edit, keys...)
			})
		},
	}
	pf.register(cmd)
	return cmd
}

// groupArgs accepts a job file name followed by at least n pairs of
// contour ids.
func groupArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1+2*n || len(args)%2 != 1 {
			return fmt.Errorf("expected JOB followed by pairs of contour ids, got %d args", len(args))
		}
		return nil
	}
}

func groupKeys(ids []string) []string {
	var keys []string
	for i := 0; i+1 < len(ids); i += 2 {
		keys = append(keys, glyph.Key(ids[i], ids[i+1]))
	}
	return keys
}

// editGroups applies edit to the groups of a job file and writes the
// file back.
func editGroups(ctx context.Context, fname string, edit func(*config.Resolved) error) error {
	raw, res, err := config.Open(fname)
	if err != nil {
		return err
	}
	if err := edit(res); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	raw.SetGroups(res.Registry)
	if err := config.Save(fname, raw); err != nil {
		return err
	}
	loggerFromContext(ctx).Info("Updated groups", "file", fname, "groups", res.Registry.Len())
	return nil
}

// paramFlags holds the stroke parameters given on the command line.
type paramFlags struct {
	width    int
	distance float64
	side     string
	offset   int
	noise    int
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	d := scribble.DefaultParams()
	f := cmd.Flags()
	f.IntVar(&pf.width, "width", d.Width, "stroke width in font units")
	f.Float64Var(&pf.distance, "distance", d.Distance, "spacing of the points on contour A")
	f.StringVar(&pf.side, "side", d.Side.String(), "contour the zigzag starts on (A or B)")
	f.IntVar(&pf.offset, "offset", d.Offset, "shift of contour B against contour A, in points")
	f.IntVar(&pf.noise, "noise", d.Noise, "jitter intensity")
}

var paramNames = []string{"width", "distance", "side", "offset", "noise"}

// changed reports whether any stroke parameter was given.
func (pf *paramFlags) changed(cmd *cobra.Command) bool {
	for _, name := range paramNames {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// edit returns a function which sets the parameters given on the command
// line.
func (pf *paramFlags) edit(cmd *cobra.Command) (func(*scribble.Params), error) {
	f := cmd.Flags()
	var side scribble.Side
	if f.Changed("side") {
		var err error
		side, err = config.ParseSide(pf.side)
		if err != nil {
			return nil, err
		}
	}
	return func(p *scribble.Params) {
		if f.Changed("width") {
			p.Width = pf.width
		}
		if f.Changed("distance") {
			p.Distance = pf.distance
		}
		if f.Changed("side") {
			p.Side = side
		}
		if f.Changed("offset") {
			p.Offset = pf.offset
		}
		if f.Changed("noise") {
			p.Noise = pf.noise
		}
	}, nil
}

// groupTable lists the groups of reg together with the outcome of the
// stroke generation.
func groupTable(reg *glyph.Registry, res *glyph.Result) string {
	status := make(map[string]string)
	for _, gs := range res.Strokes {
		status[gs.Group.Key()] = strconv.Itoa(len(gs.Stroke.Points)) + " points"
	}
	for _, s := range res.Skipped {
		status[s.Key] = "misaligned"
	}

	var rows [][]string
	var failed []bool
	for _, g := range reg.Groups() {
		st, ok := status[g.Key()]
		if !ok {
			st = "missing contour"
		}
		failed = append(failed, !ok || st == "misaligned")
		rows = append(rows, []string{
			g.A,
			g.B,
			strconv.Itoa(g.Params.Width),
			strconv.FormatFloat(g.Params.Distance, 'g', -1, 64),
			g.Params.Side.String(),
			strconv.Itoa(g.Params.Offset),
			strconv.Itoa(g.Params.Noise),
			st,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("A", "B", "WIDTH", "DISTANCE", "SIDE", "OFFSET", "NOISE", "STROKE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 7 && row < len(failed) && failed[row] {
				style = style.Foreground(colorRed)
			}
			return style
		})
	return t.String()
}

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

// Package config reads and writes job files.
//
// A job file describes one glyph: its contours, the contour groups with
// their stroke parameters, and the output settings.  Files ending in
// ".toml" use TOML, all other files use YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Job represents a job file.
type Job struct {
	Glyph    string          `yaml:"glyph,omitempty" toml:"glyph,omitempty"`
	Seed     *uint64         `yaml:"seed,omitempty" toml:"seed,omitempty"`
	Colour   string          `yaml:"colour,omitempty" toml:"colour,omitempty"`
	Preview  PreviewConfig   `yaml:"preview,omitempty" toml:"preview,omitempty"`
	Contours []ContourConfig `yaml:"contours" toml:"contours"`
	Groups   []GroupConfig   `yaml:"groups,omitempty" toml:"groups,omitempty"`
	Layers   []LayerConfig   `yaml:"layers,omitempty" toml:"layers,omitempty"`
}

// PreviewConfig contains the preview settings.
type PreviewConfig struct {
	Enabled *bool   `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	Width   int     `yaml:"width,omitempty" toml:"width,omitempty"`
	Height  int     `yaml:"height,omitempty" toml:"height,omitempty"`
	Margin  float64 `yaml:"margin,omitempty" toml:"margin,omitempty"`
}

// ContourConfig is a contour in a job file.
type ContourConfig struct {
	ID       string          `yaml:"id,omitempty" toml:"id,omitempty"`
	Segments []SegmentConfig `yaml:"segments" toml:"segments"`
}

// SegmentConfig is a single contour segment.  Cmd is one of "M", "L", "C",
// "Z" and "E"; Pts lists the points as [x, y] pairs.
type SegmentConfig struct {
	Cmd string      `yaml:"cmd" toml:"cmd"`
	Pts [][]float64 `yaml:"pts,omitempty,flow" toml:"pts,omitempty"`
}

// GroupConfig describes a contour group.  Unset parameters take the
// default values.
type GroupConfig struct {
	Contours []string `yaml:"contours,flow" toml:"contours"`
	Width    *int     `yaml:"width,omitempty" toml:"width,omitempty"`
	Distance *float64 `yaml:"distance,omitempty" toml:"distance,omitempty"`
	Side     string   `yaml:"side,omitempty" toml:"side,omitempty"`
	Offset   *int     `yaml:"offset,omitempty" toml:"offset,omitempty"`
	Noise    *int     `yaml:"noise,omitempty" toml:"noise,omitempty"`
}

// LayerConfig holds generated contours.
type LayerConfig struct {
	Name     string          `yaml:"name" toml:"name"`
	Contours []ContourConfig `yaml:"contours" toml:"contours"`
}

// Load reads a job file.
func Load(fname string) (*Job, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	job := &Job{}
	if isTOML(fname) {
		err = toml.Unmarshal(data, job)
	} else {
		err = yaml.Unmarshal(data, job)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", fname, err)
	}
	return job, nil
}

// Save writes job to fname, replacing any existing file.
func Save(fname string, job *Job) error {
	var data []byte
	if isTOML(fname) {
		buf := &bytes.Buffer{}
		if err := toml.NewEncoder(buf).Encode(job); err != nil {
			return fmt.Errorf("failed to encode %s: %w", fname, err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = yaml.Marshal(job)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", fname, err)
		}
	}

	if err := os.WriteFile(fname, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job file: %w", err)
	}
	return nil
}

// Resolve loads a job file and resolves defaults.
func Resolve(fname string) (*Resolved, error) {
	_, res, err := Open(fname)
	return res, err
}

// Open loads a job file and resolves defaults.  The returned job holds the
// file content as read, so that it can be modified and written back using
// Save.  If the file does not name the glyph, the base name of the file is
// used.
func Open(fname string) (*Job, *Resolved, error) {
	job, err := Load(fname)
	if err != nil {
		return nil, nil, err
	}
	withName := *job
	if strings.TrimSpace(withName.Glyph) == "" {
		withName.Glyph = strings.TrimSuffix(filepath.Base(fname), filepath.Ext(fname))
	}
	res, err := withName.Resolve()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return job, res, nil
}

// ErrInvalid is returned for job files with invalid content.
var ErrInvalid = errors.New("invalid job file")

func isTOML(fname string) bool {
	return strings.EqualFold(filepath.Ext(fname), ".toml")
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image/color"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/chart/base/errors"
	"cogentcore.org/chart/base/iox/tomlx"
	"cogentcore.org/chart/base/iox/yamlx"
	"cogentcore.org/chart/base/logx"
	"cogentcore.org/chart/colors"
)

// Settings are the library-wide defaults that new styles and panes
// start from. They can be loaded from TOML or YAML files.
type Settings struct {

	// LineWidth is the default line width in points.
	LineWidth float32 `toml:"line_width" yaml:"line_width"`

	// LineColor is the default line color, as a name or hex code.
	LineColor string `toml:"line_color" yaml:"line_color"`

	// Tension is the default smoothing tension for smoothed lines.
	Tension float32 `toml:"tension" yaml:"tension"`

	// BarFrameWidth is the default bar frame width in points.
	BarFrameWidth float32 `toml:"bar_frame_width" yaml:"bar_frame_width"`

	// BarFrameColor is the default bar frame color.
	BarFrameColor string `toml:"bar_frame_color" yaml:"bar_frame_color"`

	// BarFillColor is the default bar fill color.
	BarFillColor string `toml:"bar_fill_color" yaml:"bar_fill_color"`

	// ScreenLimit is the default [Pane.ScreenLimit].
	ScreenLimit float32 `toml:"screen_limit" yaml:"screen_limit"`

	// IgnoreMissing is the default [Pane.IgnoreMissing].
	IgnoreMissing bool `toml:"ignore_missing" yaml:"ignore_missing"`

	// LogLevel is the logging level installed by [Settings.Apply]:
	// debug, info, warn or error. Empty leaves logging unchanged.
	LogLevel string `toml:"log_level" yaml:"log_level"`
}

// CurrentSettings are the settings in effect, consulted by the
// Defaults methods. Use [Settings.Apply] to replace them.
var CurrentSettings = DefaultSettings()

// DefaultSettings returns a new [Settings] with default values.
func DefaultSettings() *Settings {
	st := &Settings{}
	st.Defaults()
	return st
}

func (st *Settings) Defaults() {
	st.LineWidth = 1
	st.LineColor = "black"
	st.Tension = 0.5
	st.BarFrameWidth = 1
	st.BarFrameColor = "black"
	st.BarFillColor = "red"
	st.ScreenLimit = DefaultScreenLimit
	st.IgnoreMissing = false
	st.LogLevel = ""
}

// OpenSettings returns settings read from the given file, starting
// from the defaults. The format is chosen by the file extension:
// .toml, or .yaml / .yml.
func OpenSettings(filename string) (*Settings, error) {
	st := DefaultSettings()
	if err := st.Open(filename); err != nil {
		return nil, err
	}
	return st, nil
}

// Open reads the settings from the given file, see [OpenSettings].
func (st *Settings) Open(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Open(st, filename)
	case ".yaml", ".yml":
		return yamlx.Open(st, filename)
	default:
		return fmt.Errorf("plot.Settings.Open: unsupported file extension %q", ext)
	}
}

// Save writes the settings to the given file, in the format
// given by its extension as in [Settings.Open].
func (st *Settings) Save(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return tomlx.Save(st, filename)
	case ".yaml", ".yml":
		return yamlx.Save(st, filename)
	default:
		return fmt.Errorf("plot.Settings.Save: unsupported file extension %q", ext)
	}
}

// Validate returns an error if any of the color strings cannot be parsed.
func (st *Settings) Validate() error {
	var errs []error
	for _, c := range []string{st.LineColor, st.BarFrameColor, st.BarFillColor} {
		if _, err := colors.FromString(c); err != nil {
			errs = append(errs, err)
		}
	}
	if st.LogLevel != "" {
		if _, err := logx.LevelFromString(st.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Apply installs a copy of these settings as [CurrentSettings],
// and sets the logging level if LogLevel is set.
func (st *Settings) Apply() {
	cp := *st
	CurrentSettings = &cp
	errors.Log(logx.SetLevel(st.LogLevel))
	slog.Debug("plot.Settings applied", "lineWidth", st.LineWidth, "screenLimit", st.ScreenLimit)
}

// Color returns the parsed value of one of the color setting strings,
// logging an error and returning the zero color if it is invalid.
func (st *Settings) Color(s string) color.RGBA {
	return errors.Log1(colors.FromString(s))
}

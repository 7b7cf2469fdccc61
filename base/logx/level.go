// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx sets up the default [slog] logger at a
// user-selected verbosity level.
package logx

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging messages should be shown. Messages at levels at or above
// this level will be shown. It is applied by [SetDefaultLogger].
var UserLevel = defaultUserLevel

// level is the level used by the default handler, so that
// it can be changed after the logger is installed.
var level slog.LevelVar

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString returns the level with the given name,
// which is one of debug, info, warn or error in any case.
func LevelFromString(s string) (slog.Level, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return UserLevel, fmt.Errorf("logx.LevelFromString: %w", err)
	}
	return lv, nil
}

// SetDefaultLogger installs a text logger on stderr as the [slog]
// default, showing messages at [UserLevel] and above.
func SetDefaultLogger() {
	level.Set(UserLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &level})))
}

// SetLevel sets [UserLevel] to the level with the given name and
// installs the default logger with it. An empty name leaves the
// current logger unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	lv, err := LevelFromString(name)
	if err != nil {
		return err
	}
	UserLevel = lv
	SetDefaultLogger()
	return nil
}

// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestSetLevel(t *testing.T) {
	prev, prevLogger := UserLevel, slog.Default()
	defer func() {
		UserLevel = prev
		slog.SetDefault(prevLogger)
	}()

	lv, err := LevelFromString("DEBUG")
	assert.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lv)
	_, err = LevelFromString("loud")
	assert.Error(t, err)

	assert.NoError(t, SetLevel(""))
	assert.Error(t, SetLevel("loud"))
	assert.NoError(t, SetLevel("error"))
	assert.Equal(t, slog.LevelError, UserLevel)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelError))
}

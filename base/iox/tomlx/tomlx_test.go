// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Width float32
	On    bool
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	ts := &testStruct{Name: "line", Width: 1.5, On: true}
	require.NoError(t, Save(ts, fn))

	res := &testStruct{}
	require.NoError(t, Open(res, fn))
	assert.Equal(t, ts, res)

	assert.Error(t, Open(res, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestReadBytes(t *testing.T) {
	res := &testStruct{}
	require.NoError(t, ReadBytes(res, []byte("Name = \"bar\"\nWidth = 2.0\n")))
	assert.Equal(t, "bar", res.Name)
	assert.Equal(t, float32(2), res.Width)

	b, err := WriteBytes(res)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "Name = 'bar'") || strings.Contains(string(b), `Name = "bar"`))

	assert.Error(t, ReadBytes(res, []byte("Name = ")))
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	f1 := filepath.Join(dir, "a.toml")
	f2 := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Width: 1}, f1))
	require.NoError(t, Save(&testStruct{Name: "b", Width: 2}, f2))
	res := &testStruct{}
	require.NoError(t, OpenFiles(res, f1, f2))
	assert.Equal(t, "b", res.Name)
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string  `yaml:"name"`
	Width float32 `yaml:"width"`
	On    bool    `yaml:"on"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.yaml")
	ts := &testStruct{Name: "line", Width: 1.5, On: true}
	require.NoError(t, Save(ts, fn))

	res := &testStruct{}
	require.NoError(t, Open(res, fn))
	assert.Equal(t, ts, res)

	assert.Error(t, Open(res, filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestRead(t *testing.T) {
	res := &testStruct{Name: "keep"}
	require.NoError(t, Read(res, bytes.NewReader(nil)))
	assert.Equal(t, "keep", res.Name)

	require.NoError(t, ReadBytes(res, []byte("name: bar\nwidth: 2\n")))
	assert.Equal(t, "bar", res.Name)
	assert.Equal(t, float32(2), res.Width)

	var buf bytes.Buffer
	require.NoError(t, Write(res, &buf))
	assert.Contains(t, buf.String(), "name: bar")
}

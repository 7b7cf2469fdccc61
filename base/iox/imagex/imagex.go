// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides image file helpers and
// golden-image test assertions.
package imagex

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Open opens an image from the given filename.
// The format is inferred from the file contents.
func Open(filename string) (image.Image, error) {
	return imgio.Open(filename)
}

// Save saves the image to the given filename,
// with the format inferred from the filename extension.
// png, jpeg and bmp are supported.
func Save(img image.Image, filename string) error {
	enc, err := encoder(filepath.Ext(filename))
	if err != nil {
		return err
	}
	return imgio.Save(filename, img, enc)
}

// encoder returns the bild encoder for the given filename extension,
// which can start with a . or not.
func encoder(ext string) (imgio.Encoder, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpg", "jpeg":
		return imgio.JPEGEncoder(95), nil
	case "bmp":
		return imgio.BMPEncoder(), nil
	}
	return nil, fmt.Errorf("imagex.Save: extension %q not recognized", ext)
}

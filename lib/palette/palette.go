// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package palette builds the (pixels, palette) pair consumed by the pixfmt
// package's Indexed8 expansion paths.
//
// Arbitrary images are reduced to at most 256 colors by median-cut
// quantization. Images that already hold 256 or fewer distinct colors come
// through losslessly, since every distinct color ends up in its own bucket.
package palette

import (
	"errors"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"

	"github.com/kojeomstudio/pixfmt/lib/pixfmt"
)

var ErrBadArgument = errors.New("palette: bad argument")

const maxColors = 256

// packColor packs a color.Color into the Palette's A8R8G8B8 entry layout.
func packColor(c color.Color) uint32 {
	r, g, b, a := c.RGBA()
	return (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | (b >> 8)
}

// FromImage quantizes m to at most 256 colors and returns the packed
// palette together with the Indexed8 pixel buffer: one palette index per
// pixel, row-major, no padding. Unused palette tail entries are zero.
func FromImage(m image.Image) (*pixfmt.Palette, []byte, error) {
	if m == nil {
		return nil, nil, ErrBadArgument
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()

	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, maxColors), m)
	if len(p) == 0 {
		// Degenerate input (zero-extent image); a single black entry keeps
		// the index mapping below well defined.
		p = color.Palette{color.RGBA{A: 0xFF}}
	}

	pal := &pixfmt.Palette{}
	for i, c := range p {
		pal[i] = packColor(c)
	}

	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pix[y*w+x] = uint8(p.Index(m.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return pal, pix, nil
}

// ToImage expands an Indexed8 pixel buffer through pal into an NRGBA image,
// the inverse of FromImage up to quantization loss.
func ToImage(pix []byte, pal *pixfmt.Palette, width int, height int) (*image.NRGBA, error) {
	if pal == nil || width < 0 || height < 0 || len(pix) < width*height {
		return nil, ErrBadArgument
	}

	argb := make([]byte, 4*width*height)
	pixfmt.Convert8BitTo32Bit(pix, argb, width, height, pal, 0, false)
	return pixfmt.ToImage(argb, pixfmt.FormatA8R8G8B8, width, height)
}

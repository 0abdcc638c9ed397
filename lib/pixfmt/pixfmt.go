// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package pixfmt converts raster pixel data between the packed pixel
// encodings used by a renderer's texture and image pipeline: 8-bit
// palettized, 16-bit (5-6-5 and 1-5-5-5), 24-bit tri-channel and 32-bit
// quad-channel layouts.
//
// Buffers are flat byte slices in the little-endian layouts documented on
// each Format constant. The package never retains, copies or frees a caller's
// buffer beyond the duration of one call, holds no mutable state between
// calls, and is safe for concurrent use on independent buffers.
//
// Two families of entry points exist. The stream codecs
// (ConvertA1R5G5B5ToR8G8B8 and friends, or ConvertViaFormat for runtime
// format pairs) transform a tightly packed run of pixels with no row
// structure. The scanline converters (Convert8BitTo24Bit and friends) walk a
// buffer row by row, honoring vertical flip and per-row padding.
package pixfmt

import (
	"errors"
	"image/color"
)

var (
	ErrBadArgument       = errors.New("pixfmt: bad argument")
	ErrUnsupportedFormat = errors.New("pixfmt: unsupported format")
)

// Format identifies one of the supported packed pixel layouts.
//
// Multi-byte layouts are little-endian in memory. The names spell the fields
// of the packed word from the most significant bit down: A8R8G8B8 is the
// 32-bit word 0xAARRGGBB, so memory bytes [B][G][R][A]. R8G8B8 is handled
// per byte and stored as [R][G][B] in memory.
type Format uint8

const (
	// FormatIndexed8 is one byte per pixel, an index into a 256-entry
	// Palette. It only appears as a conversion source, through the
	// Convert8BitTo24Bit and Convert8BitTo32Bit entry points; CanConvert
	// does not report it.
	FormatIndexed8 = Format(0x00)

	// FormatA1R5G5B5 is a 16-bit word: bit 15 = A, bits 14-10 = R,
	// bits 9-5 = G, bits 4-0 = B.
	FormatA1R5G5B5 = Format(0x01)

	// FormatR5G6B5 is a 16-bit word: bits 15-11 = R, bits 10-5 = G,
	// bits 4-0 = B. No alpha.
	FormatR5G6B5 = Format(0x02)

	// FormatR8G8B8 is three bytes per pixel: [R][G][B] in memory.
	FormatR8G8B8 = Format(0x03)

	// FormatA8R8G8B8 is a 32-bit word 0xAARRGGBB: memory bytes [B][G][R][A].
	FormatA8R8G8B8 = Format(0x04)

	// FormatB8G8R8 is three bytes per pixel: [B][G][R] in memory. It is
	// reachable only through Convert24BitTo24Bit's bgr flag and the
	// ...ToB8G8R8 stream codecs; CanConvert does not report it.
	FormatB8G8R8 = Format(0x05)
)

// BytesPerPixel returns the fixed per-pixel byte width of the Format, or
// zero if the Format is not one of the defined constants.
func (f Format) BytesPerPixel() int {
	switch f {
	case FormatIndexed8:
		return 1

	case FormatA1R5G5B5,
		FormatR5G6B5:
		return 2

	case FormatR8G8B8,
		FormatB8G8R8:
		return 3

	case FormatA8R8G8B8:
		return 4
	}

	return 0
}

// HasAlpha reports whether the Format carries an alpha field.
func (f Format) HasAlpha() bool {
	switch f {
	case FormatA1R5G5B5,
		FormatA8R8G8B8:
		return true
	}

	return false
}

// ColorModel returns the Go standard library's color model that best matches
// the Format, or nil for FormatIndexed8 (whose model depends on a Palette).
func (f Format) ColorModel() color.Model {
	switch f {
	case FormatA1R5G5B5,
		FormatR5G6B5,
		FormatR8G8B8,
		FormatB8G8R8:
		return color.RGBAModel

	case FormatA8R8G8B8:
		return color.NRGBAModel
	}

	return nil
}

func (f Format) String() string {
	switch f {
	case FormatIndexed8:
		return "Indexed8"
	case FormatA1R5G5B5:
		return "A1R5G5B5"
	case FormatR5G6B5:
		return "R5G6B5"
	case FormatR8G8B8:
		return "R8G8B8"
	case FormatA8R8G8B8:
		return "A8R8G8B8"
	case FormatB8G8R8:
		return "B8G8R8"
	}

	return "Invalid"
}

// Palette is a 256-entry table of packed A8R8G8B8 colors, indexed by the raw
// byte value of an Indexed8 source pixel.
type Palette [256]uint32

// CanConvert reports whether ConvertViaFormat has a codec for the ordered
// (srcFormat, dstFormat) pair. It is true exactly for the sixteen ordered
// pairs over {A1R5G5B5, R5G6B5, A8R8G8B8, R8G8B8}, same-to-same included.
//
// It is false for any pair touching Indexed8 or B8G8R8 even though dedicated
// entry points for some of those conversions exist; those conversions are
// reachable only by name, not through the runtime dispatch table.
func CanConvert(srcFormat Format, dstFormat Format) bool {
	_, ok := streamCodecs[codecKey{srcFormat, dstFormat}]
	return ok
}

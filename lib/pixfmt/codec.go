// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package pixfmt

import (
	"encoding/binary"
)

// The stream codecs below convert n pixels from a tightly packed source
// slice to a tightly packed destination slice, with no row structure, no
// padding and no flipping. Each reads exactly n*BytesPerPixel(src format)
// bytes and writes exactly n*BytesPerPixel(dst format) bytes; supplying
// shorter slices is a caller error.
//
// Narrowing a channel truncates its low bits; widening shifts the field to
// the top of the wider channel and zero-fills the rest. Neither direction
// rounds or replicates bits. Downstream consumers depend on these exact bit
// patterns, so the arithmetic here is load-bearing: an output that is merely
// visually equivalent is wrong.

// a1r5g5b5ToA8R8G8B8 widens each 5-bit field by three zero bits and expands
// the alpha bit to 0x00 or 0xFF.
func a1r5g5b5ToA8R8G8B8(p uint16) uint32 {
	a := uint32(0)
	if p&0x8000 != 0 {
		a = 0xFF000000
	}
	return a |
		(uint32(p&0x7C00) << 9) |
		(uint32(p&0x03E0) << 6) |
		(uint32(p&0x001F) << 3)
}

// a1r5g5b5ToR5G6B5 copies the R and B fields verbatim and widens G from 5 to
// 6 bits by one zero bit, discarding alpha.
func a1r5g5b5ToR5G6B5(p uint16) uint16 {
	return ((p & 0x7FE0) << 1) | (p & 0x001F)
}

// r5g6b5ToA8R8G8B8 widens the 5/6/5 fields with zero fill and forces alpha
// fully opaque.
func r5g6b5ToA8R8G8B8(p uint16) uint32 {
	return 0xFF000000 |
		(uint32(p&0xF800) << 8) |
		(uint32(p&0x07E0) << 5) |
		(uint32(p&0x001F) << 3)
}

// r5g6b5ToA1R5G5B5 drops the low bit of G and sets the alpha bit.
func r5g6b5ToA1R5G5B5(p uint16) uint16 {
	return 0x8000 | ((p & 0xFFC0) >> 1) | (p & 0x001F)
}

// a8r8g8b8ToA1R5G5B5 keeps the top bit of alpha and the top five bits of
// each color channel.
func a8r8g8b8ToA1R5G5B5(p uint32) uint16 {
	return uint16(
		(p&0x80000000)>>16 |
			(p&0x00F80000)>>9 |
			(p&0x0000F800)>>6 |
			(p&0x000000F8)>>3)
}

// ConvertA1R5G5B5ToR8G8B8 expands n A1R5G5B5 pixels to R8G8B8, discarding
// alpha. The low three bits of each output channel are zero.
func ConvertA1R5G5B5ToR8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		dst[3*x+0] = uint8((p & 0x7C00) >> 7)
		dst[3*x+1] = uint8((p & 0x03E0) >> 2)
		dst[3*x+2] = uint8((p & 0x001F) << 3)
	}
}

// ConvertA1R5G5B5ToB8G8R8 expands n A1R5G5B5 pixels to B8G8R8, discarding
// alpha.
func ConvertA1R5G5B5ToB8G8R8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		dst[3*x+0] = uint8((p & 0x001F) << 3)
		dst[3*x+1] = uint8((p & 0x03E0) >> 2)
		dst[3*x+2] = uint8((p & 0x7C00) >> 7)
	}
}

// ConvertA1R5G5B5ToA8R8G8B8 expands n A1R5G5B5 pixels to A8R8G8B8. The alpha
// bit becomes 0x00 or 0xFF.
func ConvertA1R5G5B5ToA8R8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		binary.LittleEndian.PutUint32(dst[4*x:], a1r5g5b5ToA8R8G8B8(p))
	}
}

// ConvertA1R5G5B5ToA1R5G5B5 copies n pixels unchanged.
func ConvertA1R5G5B5ToA1R5G5B5(src []byte, dst []byte, n int) {
	copy(dst[:2*n], src[:2*n])
}

// ConvertA1R5G5B5ToR5G6B5 converts n A1R5G5B5 pixels to R5G6B5, discarding
// alpha.
func ConvertA1R5G5B5ToR5G6B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		binary.LittleEndian.PutUint16(dst[2*x:], a1r5g5b5ToR5G6B5(p))
	}
}

// ConvertA1R5G5B5ToR5G5B5A1 rotates n A1R5G5B5 pixels into R5G5B5A1, moving
// the alpha bit from the top of the word to the bottom.
func ConvertA1R5G5B5ToR5G5B5A1(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		binary.LittleEndian.PutUint16(dst[2*x:], (p<<1)|(p>>15))
	}
}

// ConvertR5G6B5ToR5G6B5 copies n pixels unchanged.
func ConvertR5G6B5ToR5G6B5(src []byte, dst []byte, n int) {
	copy(dst[:2*n], src[:2*n])
}

// ConvertR5G6B5ToR8G8B8 expands n R5G6B5 pixels to R8G8B8.
func ConvertR5G6B5ToR8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		dst[3*x+0] = uint8((p & 0xF800) >> 8)
		dst[3*x+1] = uint8((p & 0x07E0) >> 3)
		dst[3*x+2] = uint8((p & 0x001F) << 3)
	}
}

// ConvertR5G6B5ToB8G8R8 expands n R5G6B5 pixels to B8G8R8.
func ConvertR5G6B5ToB8G8R8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		dst[3*x+0] = uint8((p & 0x001F) << 3)
		dst[3*x+1] = uint8((p & 0x07E0) >> 3)
		dst[3*x+2] = uint8((p & 0xF800) >> 8)
	}
}

// ConvertR5G6B5ToA8R8G8B8 expands n R5G6B5 pixels to A8R8G8B8 with alpha
// forced fully opaque.
func ConvertR5G6B5ToA8R8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		binary.LittleEndian.PutUint32(dst[4*x:], r5g6b5ToA8R8G8B8(p))
	}
}

// ConvertR5G6B5ToA1R5G5B5 converts n R5G6B5 pixels to A1R5G5B5, dropping the
// low bit of G and setting the alpha bit.
func ConvertR5G6B5ToA1R5G5B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint16(src[2*x:])
		binary.LittleEndian.PutUint16(dst[2*x:], r5g6b5ToA1R5G5B5(p))
	}
}

// ConvertA8R8G8B8ToR8G8B8 narrows n A8R8G8B8 pixels to R8G8B8, discarding
// alpha.
func ConvertA8R8G8B8ToR8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		// src[4*x+3] is alpha
		dst[3*x+0] = src[4*x+2]
		dst[3*x+1] = src[4*x+1]
		dst[3*x+2] = src[4*x+0]
	}
}

// ConvertA8R8G8B8ToB8G8R8 narrows n A8R8G8B8 pixels to B8G8R8, discarding
// alpha. The three color bytes keep their memory order.
func ConvertA8R8G8B8ToB8G8R8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		dst[3*x+0] = src[4*x+0]
		dst[3*x+1] = src[4*x+1]
		dst[3*x+2] = src[4*x+2]
	}
}

// ConvertA8R8G8B8ToA8R8G8B8 copies n pixels unchanged.
func ConvertA8R8G8B8ToA8R8G8B8(src []byte, dst []byte, n int) {
	copy(dst[:4*n], src[:4*n])
}

// ConvertA8R8G8B8ToA1R5G5B5 narrows n A8R8G8B8 pixels to A1R5G5B5.
func ConvertA8R8G8B8ToA1R5G5B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint32(src[4*x:])
		binary.LittleEndian.PutUint16(dst[2*x:], a8r8g8b8ToA1R5G5B5(p))
	}
}

// ConvertA8R8G8B8ToA1B5G5R5 narrows n A8R8G8B8 pixels to A1B5G5R5, the
// 16-bit layout with B in the high color field. Alpha is narrowed to five
// bits like the color channels, so only bit 3 of the source alpha survives
// into the destination's single alpha bit.
func ConvertA8R8G8B8ToA1B5G5R5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		b := uint16(src[4*x+0] >> 3)
		g := uint16(src[4*x+1] >> 3)
		r := uint16(src[4*x+2] >> 3)
		a := uint16(src[4*x+3] >> 3)
		binary.LittleEndian.PutUint16(dst[2*x:], (a<<15)|(b<<10)|(g<<5)|r)
	}
}

// ConvertA8R8G8B8ToR5G6B5 narrows n A8R8G8B8 pixels to R5G6B5, discarding
// alpha.
func ConvertA8R8G8B8ToR5G6B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		b := uint16(src[4*x+0] >> 3)
		g := uint16(src[4*x+1] >> 2)
		r := uint16(src[4*x+2] >> 3)
		binary.LittleEndian.PutUint16(dst[2*x:], (r<<11)|(g<<5)|b)
	}
}

// ConvertA8R8G8B8ToR3G3B2 narrows n A8R8G8B8 pixels to one byte each,
// keeping the top 3/3/2 bits of R/G/B.
func ConvertA8R8G8B8ToR3G3B2(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		r := src[4*x+2] & 0xE0
		g := (src[4*x+1] & 0xE0) >> 3
		b := (src[4*x+0] & 0xC0) >> 6
		dst[x] = r | g | b
	}
}

// ConvertA8R8G8B8ToR8G8B8A8 rotates each 32-bit word by one byte, moving
// alpha from the top lane to the bottom lane.
func ConvertA8R8G8B8ToR8G8B8A8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint32(src[4*x:])
		binary.LittleEndian.PutUint32(dst[4*x:], (p<<8)|(p>>24))
	}
}

// ConvertA8R8G8B8ToA8B8G8R8 swaps the R and B lanes of each 32-bit word,
// leaving A and G in place.
func ConvertA8R8G8B8ToA8B8G8R8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := binary.LittleEndian.Uint32(src[4*x:])
		binary.LittleEndian.PutUint32(dst[4*x:],
			(p&0xFF00FF00)|((p&0x00FF0000)>>16)|((p&0x000000FF)<<16))
	}
}

// ConvertR8G8B8ToR8G8B8 copies n pixels unchanged.
func ConvertR8G8B8ToR8G8B8(src []byte, dst []byte, n int) {
	copy(dst[:3*n], src[:3*n])
}

// ConvertR8G8B8ToA8R8G8B8 widens n R8G8B8 pixels to A8R8G8B8 with alpha
// forced fully opaque.
func ConvertR8G8B8ToA8R8G8B8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		p := 0xFF000000 |
			(uint32(src[3*x+0]) << 16) |
			(uint32(src[3*x+1]) << 8) |
			uint32(src[3*x+2])
		binary.LittleEndian.PutUint32(dst[4*x:], p)
	}
}

// ConvertR8G8B8ToA1R5G5B5 narrows n R8G8B8 pixels to A1R5G5B5 with the
// alpha bit set.
func ConvertR8G8B8ToA1R5G5B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		r := uint16(src[3*x+0] >> 3)
		g := uint16(src[3*x+1] >> 3)
		b := uint16(src[3*x+2] >> 3)
		binary.LittleEndian.PutUint16(dst[2*x:], 0x8000|(r<<10)|(g<<5)|b)
	}
}

// ConvertR8G8B8ToR5G6B5 narrows n R8G8B8 pixels to R5G6B5.
func ConvertR8G8B8ToR5G6B5(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		r := uint16(src[3*x+0] >> 3)
		g := uint16(src[3*x+1] >> 2)
		b := uint16(src[3*x+2] >> 3)
		binary.LittleEndian.PutUint16(dst[2*x:], (r<<11)|(g<<5)|b)
	}
}

// ConvertR8G8B8ToB8G8R8 reverses the byte order of n 24-bit pixels.
func ConvertR8G8B8ToB8G8R8(src []byte, dst []byte, n int) {
	for x := 0; x < n; x++ {
		dst[3*x+0] = src[3*x+2]
		dst[3*x+1] = src[3*x+1]
		dst[3*x+2] = src[3*x+0]
	}
}

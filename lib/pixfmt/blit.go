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

// The scanline converters below walk a source buffer row by row. Each source
// row is width pixels followed by linepad bytes of padding, which is skipped
// and never interpreted. The destination is always tightly packed. If flip
// is set, the first source row lands in the last destination row and the
// destination cursor walks backward; the source is always read forward.
//
// An empty source or destination slice, or a width or height of zero, is a
// no-op. Buffers shorter than the extents imply are a caller error.

// SwapCopies selects the byte-swapped element copy for the same-format
// 16-bit and 32-bit scanline paths. The packed layouts in this package are
// little-endian; a caller whose pixel words sit in big-endian memory order
// sets this once at startup, before any conversion runs. On little-endian
// data the default straight copy applies.
var SwapCopies = false

// Convert8BitTo24Bit expands an 8-bit source into R8G8B8. With a palette,
// each source byte indexes the palette and the entry's R, G, B components
// are written in that order. Without one, the source byte is replicated into
// all three channels (an 8-bit luminance source).
func Convert8BitTo24Bit(src []byte, dst []byte, width int, height int, palette *Palette, linepad int, flip bool) {
	if len(src) == 0 || len(dst) == 0 || width <= 0 || height <= 0 {
		return
	}

	rowBytes := 3 * width
	si := 0
	do := 0
	if flip {
		do = rowBytes * height
	}

	for y := 0; y < height; y++ {
		if flip {
			do -= rowBytes
		}
		for x := 0; x < width; x++ {
			if palette != nil {
				e := palette[src[si+x]]
				dst[do+3*x+0] = uint8(e >> 16)
				dst[do+3*x+1] = uint8(e >> 8)
				dst[do+3*x+2] = uint8(e)
			} else {
				c := src[si+x]
				dst[do+3*x+0] = c
				dst[do+3*x+1] = c
				dst[do+3*x+2] = c
			}
		}
		if !flip {
			do += rowBytes
		}
		si += width + linepad
	}
}

// Convert8BitTo32Bit expands an 8-bit source into A8R8G8B8. With a palette,
// each source byte indexes the palette and the packed entry is written
// whole. Without one, the source byte is replicated into R, G and B with
// alpha fully opaque.
func Convert8BitTo32Bit(src []byte, dst []byte, width int, height int, palette *Palette, linepad int, flip bool) {
	if len(src) == 0 || len(dst) == 0 || width <= 0 || height <= 0 {
		return
	}

	rowBytes := 4 * width
	si := 0
	do := 0
	if flip {
		do = rowBytes * height
	}

	for y := 0; y < height; y++ {
		if flip {
			do -= rowBytes
		}
		for x := 0; x < width; x++ {
			if palette != nil {
				binary.LittleEndian.PutUint32(dst[do+4*x:], palette[src[si+x]])
			} else {
				c := uint32(src[si+x])
				binary.LittleEndian.PutUint32(dst[do+4*x:],
					0xFF000000|c<<16|c<<8|c)
			}
		}
		if !flip {
			do += rowBytes
		}
		si += width + linepad
	}
}

// Convert16BitTo16Bit copies a 16-bit source into a 16-bit destination,
// byte-swapping each element when SwapCopies is set.
func Convert16BitTo16Bit(src []byte, dst []byte, width int, height int, linepad int, flip bool) {
	convert16BitTo16Bit(src, dst, width, height, linepad, flip, SwapCopies)
}

func convert16BitTo16Bit(src []byte, dst []byte, width int, height int, linepad int, flip bool, swap bool) {
	if len(src) == 0 || len(dst) == 0 || width <= 0 || height <= 0 {
		return
	}

	rowBytes := 2 * width
	si := 0
	do := 0
	if flip {
		do = rowBytes * height
	}

	for y := 0; y < height; y++ {
		if flip {
			do -= rowBytes
		}
		if swap {
			for x := 0; x < width; x++ {
				dst[do+2*x+0] = src[si+2*x+1]
				dst[do+2*x+1] = src[si+2*x+0]
			}
		} else {
			copy(dst[do:do+rowBytes], src[si:si+rowBytes])
		}
		if !flip {
			do += rowBytes
		}
		si += rowBytes + linepad
	}
}

// Convert24BitTo24Bit copies a 24-bit source into a 24-bit destination. With
// bgr set, the three bytes of every pixel are reversed, turning R8G8B8 into
// B8G8R8 or back.
func Convert24BitTo24Bit(src []byte, dst []byte, width int, height int, linepad int, flip bool, bgr bool) {
	if len(src) == 0 || len(dst) == 0 || width <= 0 || height <= 0 {
		return
	}

	rowBytes := 3 * width
	si := 0
	do := 0
	if flip {
		do = rowBytes * height
	}

	for y := 0; y < height; y++ {
		if flip {
			do -= rowBytes
		}
		if bgr {
			for x := 0; x < width; x++ {
				dst[do+3*x+0] = src[si+3*x+2]
				dst[do+3*x+1] = src[si+3*x+1]
				dst[do+3*x+2] = src[si+3*x+0]
			}
		} else {
			copy(dst[do:do+rowBytes], src[si:si+rowBytes])
		}
		if !flip {
			do += rowBytes
		}
		si += rowBytes + linepad
	}
}

// Convert32BitTo32Bit copies a 32-bit source into a 32-bit destination,
// byte-swapping each element when SwapCopies is set.
func Convert32BitTo32Bit(src []byte, dst []byte, width int, height int, linepad int, flip bool) {
	convert32BitTo32Bit(src, dst, width, height, linepad, flip, SwapCopies)
}

func convert32BitTo32Bit(src []byte, dst []byte, width int, height int, linepad int, flip bool, swap bool) {
	if len(src) == 0 || len(dst) == 0 || width <= 0 || height <= 0 {
		return
	}

	rowBytes := 4 * width
	si := 0
	do := 0
	if flip {
		do = rowBytes * height
	}

	for y := 0; y < height; y++ {
		if flip {
			do -= rowBytes
		}
		if swap {
			for x := 0; x < width; x++ {
				dst[do+4*x+0] = src[si+4*x+3]
				dst[do+4*x+1] = src[si+4*x+2]
				dst[do+4*x+2] = src[si+4*x+1]
				dst[do+4*x+3] = src[si+4*x+0]
			}
		} else {
			copy(dst[do:do+rowBytes], src[si:si+rowBytes])
		}
		if !flip {
			do += rowBytes
		}
		si += rowBytes + linepad
	}
}

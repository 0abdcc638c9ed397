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
	"image"
)

// FromImage packs m into a tightly packed buffer of the given Format, which
// must be one of the four catalog formats (A1R5G5B5, R5G6B5, R8G8B8,
// A8R8G8B8). Pixels go through the A8R8G8B8 intermediate with
// non-premultiplied alpha, then through the format's stream codec.
func FromImage(m image.Image, f Format) ([]byte, error) {
	if !CanConvert(FormatA8R8G8B8, f) {
		return nil, ErrUnsupportedFormat
	}

	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	argb := make([]byte, 4*w*h)

	switch m := m.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := m.NRGBAAt(b.Min.X+x, b.Min.Y+y)
				p := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
				binary.LittleEndian.PutUint32(argb[4*(y*w+x):], p)
			}
		}

	case *image.RGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := m.RGBAAt(b.Min.X+x, b.Min.Y+y)
				if (c.A != 0x00) && (c.A != 0xFF) {
					c.R = uint8((uint32(c.R) * 0xFF) / uint32(c.A))
					c.G = uint8((uint32(c.G) * 0xFF) / uint32(c.A))
					c.B = uint8((uint32(c.B) * 0xFF) / uint32(c.A))
				}
				p := uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
				binary.LittleEndian.PutUint32(argb[4*(y*w+x):], p)
			}
		}

	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl, a := m.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if (a != 0x0000) && (a != 0xFFFF) {
					r = (r * 0xFFFF) / a
					g = (g * 0xFFFF) / a
					bl = (bl * 0xFFFF) / a
				}
				p := (a>>8)<<24 | (r>>8)<<16 | (g>>8)<<8 | (bl >> 8)
				binary.LittleEndian.PutUint32(argb[4*(y*w+x):], p)
			}
		}
	}

	if f == FormatA8R8G8B8 {
		return argb, nil
	}
	out := make([]byte, f.BytesPerPixel()*w*h)
	ConvertViaFormat(argb, FormatA8R8G8B8, w*h, out, f)
	return out, nil
}

// ToImage expands a tightly packed buffer of the given catalog Format into
// an NRGBA image. It returns an error if the Format is off-catalog or the
// buffer is shorter than width*height pixels.
func ToImage(buf []byte, f Format, width int, height int) (*image.NRGBA, error) {
	if !CanConvert(f, FormatA8R8G8B8) {
		return nil, ErrUnsupportedFormat
	}
	if width < 0 || height < 0 || len(buf) < f.BytesPerPixel()*width*height {
		return nil, ErrBadArgument
	}

	n := width * height
	argb := buf
	if f != FormatA8R8G8B8 {
		argb = make([]byte, 4*n)
		ConvertViaFormat(buf, f, n, argb, FormatA8R8G8B8)
	}

	m := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < n; i++ {
		p := binary.LittleEndian.Uint32(argb[4*i:])
		m.Pix[4*i+0] = uint8(p >> 16)
		m.Pix[4*i+1] = uint8(p >> 8)
		m.Pix[4*i+2] = uint8(p)
		m.Pix[4*i+3] = uint8(p >> 24)
	}
	return m, nil
}

// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package pixfmt

import (
	"bytes"
	"image/color"
	"testing"
)

func TestCanConvert(tt *testing.T) {
	catalog := []Format{FormatA1R5G5B5, FormatR5G6B5, FormatR8G8B8, FormatA8R8G8B8}

	for _, src := range catalog {
		for _, dst := range catalog {
			if !CanConvert(src, dst) {
				tt.Errorf("CanConvert(%v, %v): got false, want true", src, dst)
			}
		}
	}

	// Indexed8 and B8G8R8 stay off-catalog even though dedicated entry
	// points exist for some of their conversions.
	all := append([]Format{FormatIndexed8, FormatB8G8R8}, catalog...)
	for _, other := range all {
		if CanConvert(FormatIndexed8, other) {
			tt.Errorf("CanConvert(Indexed8, %v): got true, want false", other)
		}
		if CanConvert(other, FormatIndexed8) {
			tt.Errorf("CanConvert(%v, Indexed8): got true, want false", other)
		}
		if CanConvert(FormatB8G8R8, other) {
			tt.Errorf("CanConvert(B8G8R8, %v): got true, want false", other)
		}
		if CanConvert(other, FormatB8G8R8) {
			tt.Errorf("CanConvert(%v, B8G8R8): got true, want false", other)
		}
	}
}

func TestConvertViaFormat(tt *testing.T) {
	src := u16LE(0x8000, 0x7FFF)

	got := make([]byte, 8)
	ConvertViaFormat(src, FormatA1R5G5B5, 2, got, FormatA8R8G8B8)
	want := u32LE(0xFF000000, 0x00F8F8F8)
	if !bytes.Equal(got, want) {
		tt.Errorf("got % 02X, want % 02X", got, want)
	}

	got = make([]byte, 6)
	ConvertViaFormat(src, FormatA1R5G5B5, 2, got, FormatR8G8B8)
	want = []byte{0x00, 0x00, 0x00, 0xF8, 0xF8, 0xF8}
	if !bytes.Equal(got, want) {
		tt.Errorf("got % 02X, want % 02X", got, want)
	}
}

func TestConvertViaFormatAgreesWithCodecs(tt *testing.T) {
	catalog := []Format{FormatA1R5G5B5, FormatR5G6B5, FormatR8G8B8, FormatA8R8G8B8}

	// Four pixels of mixed content, packed per source format.
	srcByFormat := map[Format][]byte{
		FormatA1R5G5B5: u16LE(0x8000, 0x7FFF, 0xFC10, 0x03E0),
		FormatR5G6B5:   u16LE(0x0000, 0xFFFF, 0xF800, 0x07E0),
		FormatR8G8B8:   {0x00, 0x00, 0x00, 0xF8, 0xFC, 0xF8, 0x11, 0x22, 0x33, 0xFF, 0x00, 0xFF},
		FormatA8R8G8B8: u32LE(0x00000000, 0xFFF8FCF8, 0x80112233, 0xFFFF00FF),
	}

	// Spelled out per pair, so a mis-wired dispatch table entry shows up
	// as a mismatch against the codec the pair is documented to use.
	named := map[codecKey]func(src []byte, dst []byte, n int){
		{FormatA1R5G5B5, FormatA1R5G5B5}: ConvertA1R5G5B5ToA1R5G5B5,
		{FormatA1R5G5B5, FormatR5G6B5}:   ConvertA1R5G5B5ToR5G6B5,
		{FormatA1R5G5B5, FormatR8G8B8}:   ConvertA1R5G5B5ToR8G8B8,
		{FormatA1R5G5B5, FormatA8R8G8B8}: ConvertA1R5G5B5ToA8R8G8B8,
		{FormatR5G6B5, FormatA1R5G5B5}:   ConvertR5G6B5ToA1R5G5B5,
		{FormatR5G6B5, FormatR5G6B5}:     ConvertR5G6B5ToR5G6B5,
		{FormatR5G6B5, FormatR8G8B8}:     ConvertR5G6B5ToR8G8B8,
		{FormatR5G6B5, FormatA8R8G8B8}:   ConvertR5G6B5ToA8R8G8B8,
		{FormatR8G8B8, FormatA1R5G5B5}:   ConvertR8G8B8ToA1R5G5B5,
		{FormatR8G8B8, FormatR5G6B5}:     ConvertR8G8B8ToR5G6B5,
		{FormatR8G8B8, FormatR8G8B8}:     ConvertR8G8B8ToR8G8B8,
		{FormatR8G8B8, FormatA8R8G8B8}:   ConvertR8G8B8ToA8R8G8B8,
		{FormatA8R8G8B8, FormatA1R5G5B5}: ConvertA8R8G8B8ToA1R5G5B5,
		{FormatA8R8G8B8, FormatR5G6B5}:   ConvertA8R8G8B8ToR5G6B5,
		{FormatA8R8G8B8, FormatR8G8B8}:   ConvertA8R8G8B8ToR8G8B8,
		{FormatA8R8G8B8, FormatA8R8G8B8}: ConvertA8R8G8B8ToA8R8G8B8,
	}

	for _, sf := range catalog {
		for _, df := range catalog {
			got := make([]byte, 4*df.BytesPerPixel())
			ConvertViaFormat(srcByFormat[sf], sf, 4, got, df)

			want := make([]byte, 4*df.BytesPerPixel())
			named[codecKey{sf, df}](srcByFormat[sf], want, 4)

			if !bytes.Equal(got, want) {
				tt.Errorf("%v -> %v: got % 02X, want % 02X", sf, df, got, want)
			}
		}
	}
}

func TestConvertViaFormatUnsupportedPairIsNoOp(tt *testing.T) {
	src := []byte{1, 2, 3, 4}
	dst := []byte{0xEE, 0xEE, 0xEE, 0xEE}

	ConvertViaFormat(src, FormatIndexed8, 4, dst, FormatR8G8B8)
	ConvertViaFormat(src, FormatA1R5G5B5, 2, dst, FormatB8G8R8)
	ConvertViaFormat(src, FormatB8G8R8, 1, dst, FormatA8R8G8B8)

	if want := []byte{0xEE, 0xEE, 0xEE, 0xEE}; !bytes.Equal(dst, want) {
		tt.Errorf("dst modified: % 02X", dst)
	}
}

func TestOutputLengths(tt *testing.T) {
	catalog := []Format{FormatA1R5G5B5, FormatR5G6B5, FormatR8G8B8, FormatA8R8G8B8}

	// Exactly sized source and destination slices: a codec that reads or
	// writes beyond sampleCount*BytesPerPixel panics.
	const n = 5
	for _, sf := range catalog {
		for _, df := range catalog {
			src := make([]byte, n*sf.BytesPerPixel())
			for i := range src {
				src[i] = byte(i * 37)
			}
			dst := make([]byte, n*df.BytesPerPixel())
			ConvertViaFormat(src[:len(src):len(src)], sf, n, dst[:len(dst):len(dst)], df)
		}
	}
}

func TestFormatProperties(tt *testing.T) {
	testCases := []struct {
		f     Format
		bpp   int
		alpha bool
		model color.Model
		name  string
	}{
		{FormatIndexed8, 1, false, nil, "Indexed8"},
		{FormatA1R5G5B5, 2, true, color.RGBAModel, "A1R5G5B5"},
		{FormatR5G6B5, 2, false, color.RGBAModel, "R5G6B5"},
		{FormatR8G8B8, 3, false, color.RGBAModel, "R8G8B8"},
		{FormatA8R8G8B8, 4, true, color.NRGBAModel, "A8R8G8B8"},
		{FormatB8G8R8, 3, false, color.RGBAModel, "B8G8R8"},
	}

	for _, tc := range testCases {
		if got := tc.f.BytesPerPixel(); got != tc.bpp {
			tt.Errorf("%s: BytesPerPixel: got %d, want %d", tc.name, got, tc.bpp)
		}
		if got := tc.f.HasAlpha(); got != tc.alpha {
			tt.Errorf("%s: HasAlpha: got %t, want %t", tc.name, got, tc.alpha)
		}
		if got := tc.f.ColorModel(); got != tc.model {
			tt.Errorf("%s: ColorModel: got %v, want %v", tc.name, got, tc.model)
		}
		if got := tc.f.String(); got != tc.name {
			tt.Errorf("String: got %q, want %q", got, tc.name)
		}
	}

	if got := Format(0x77).BytesPerPixel(); got != 0 {
		tt.Errorf("invalid format: BytesPerPixel: got %d, want 0", got)
	}
	if got := Format(0x77).ColorModel(); got != nil {
		tt.Errorf("invalid format: ColorModel: got %v, want nil", got)
	}
}

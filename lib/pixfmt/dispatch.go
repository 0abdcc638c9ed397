// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

package pixfmt

// A streamCodec converts n tightly packed pixels from src to dst.
type streamCodec func(src []byte, dst []byte, n int)

type codecKey struct {
	src Format
	dst Format
}

// streamCodecs is the runtime dispatch table, populated once at package init
// and read-only afterwards. It deliberately covers only the sixteen ordered
// pairs over {A1R5G5B5, R5G6B5, A8R8G8B8, R8G8B8}: the Indexed8, B8G8R8 and
// other off-catalog codecs stay reachable only by name. CanConvert reads the
// same table, so the two can never disagree.
var streamCodecs map[codecKey]streamCodec

func init() {
	streamCodecs = map[codecKey]streamCodec{
		{FormatA1R5G5B5, FormatA1R5G5B5}: ConvertA1R5G5B5ToA1R5G5B5,
		{FormatA1R5G5B5, FormatR5G6B5}:   ConvertA1R5G5B5ToR5G6B5,
		{FormatA1R5G5B5, FormatR8G8B8}:   ConvertA1R5G5B5ToR8G8B8,
		{FormatA1R5G5B5, FormatA8R8G8B8}: ConvertA1R5G5B5ToA8R8G8B8,

		{FormatR5G6B5, FormatA1R5G5B5}: ConvertR5G6B5ToA1R5G5B5,
		{FormatR5G6B5, FormatR5G6B5}:   ConvertR5G6B5ToR5G6B5,
		{FormatR5G6B5, FormatR8G8B8}:   ConvertR5G6B5ToR8G8B8,
		{FormatR5G6B5, FormatA8R8G8B8}: ConvertR5G6B5ToA8R8G8B8,

		{FormatR8G8B8, FormatA1R5G5B5}: ConvertR8G8B8ToA1R5G5B5,
		{FormatR8G8B8, FormatR5G6B5}:   ConvertR8G8B8ToR5G6B5,
		{FormatR8G8B8, FormatR8G8B8}:   ConvertR8G8B8ToR8G8B8,
		{FormatR8G8B8, FormatA8R8G8B8}: ConvertR8G8B8ToA8R8G8B8,

		{FormatA8R8G8B8, FormatA1R5G5B5}: ConvertA8R8G8B8ToA1R5G5B5,
		{FormatA8R8G8B8, FormatR5G6B5}:   ConvertA8R8G8B8ToR5G6B5,
		{FormatA8R8G8B8, FormatR8G8B8}:   ConvertA8R8G8B8ToR8G8B8,
		{FormatA8R8G8B8, FormatA8R8G8B8}: ConvertA8R8G8B8ToA8R8G8B8,
	}
}

// ConvertViaFormat converts n tightly packed pixels from srcFormat to
// dstFormat. If the ordered pair has no codec in the dispatch table the call
// writes nothing and returns silently; use CanConvert to probe beforehand.
func ConvertViaFormat(src []byte, srcFormat Format, n int, dst []byte, dstFormat Format) {
	if codec, ok := streamCodecs[codecKey{srcFormat, dstFormat}]; ok {
		codec(src, dst, n)
	}
}

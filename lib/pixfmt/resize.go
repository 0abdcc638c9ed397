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

// ResizeConvertA1R5G5B5ToA8R8G8B8 resamples an A1R5G5B5 source of
// currentWidth by currentHeight pixels to newWidth by newHeight and converts
// it to A8R8G8B8 in one pass. Sampling is nearest-neighbor: the fractional
// source step accumulates per destination pixel and is truncated, never
// rounded. A newWidth or newHeight of zero is a no-op.
//
// This is a one-shot surface-scaling path and makes no attempt to be fast.
func ResizeConvertA1R5G5B5ToA8R8G8B8(src []byte, dst []byte, newWidth int, newHeight int, currentWidth int, currentHeight int) {
	if newWidth <= 0 || newHeight <= 0 {
		return
	}

	sourceXStep := float32(currentWidth) / float32(newWidth)
	sourceYStep := float32(currentHeight) / float32(newHeight)

	for x := 0; x < newWidth; x++ {
		sy := float32(0)
		for y := 0; y < newHeight; y++ {
			i := int(float32(int(sy)*currentWidth) + float32(x)*sourceXStep)
			p := binary.LittleEndian.Uint16(src[2*i:])
			binary.LittleEndian.PutUint32(dst[4*(y*newWidth+x):],
				a1r5g5b5ToA8R8G8B8(p))
			sy += sourceYStep
		}
	}
}

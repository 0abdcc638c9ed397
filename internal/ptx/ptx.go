// Copyright 2025 The Pixfmt Authors.
//
// Licensed under the Apache License, Version 2.0 <LICENSE-APACHE or
// https://www.apache.org/licenses/LICENSE-2.0>. This file may not be copied,
// modified, or distributed except according to those terms.
//
// SPDX-License-Identifier: Apache-2.0

// ----------------

// Package ptx implements a minimal raw packed-texture dump: a fixed 16-byte
// header followed by the tightly packed pixel payload, in the same memory
// layout the pixfmt package operates on.
//
// It exists so the pixcvt tool has a lossless way to write and re-read
// converted buffers; it is not a public interchange format.
package ptx

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/kojeomstudio/pixfmt/lib/pixfmt"
)

// Magic is the byte string prefix of every PTX dump.
const Magic = "PTX."

const headerSize = 16

var (
	ErrBadArgument     = errors.New("ptx: bad argument")
	ErrNotAPTXFile     = errors.New("ptx: not a PTX file")
	ErrImageIsTooLarge = errors.New("ptx: image is too large")
)

// maxPayloadLen bounds what Decode will allocate for a dump's payload. The
// header's width and height are untrusted u32 fields, so the implied length
// is computed in uint64 and capped before any allocation happens.
const maxPayloadLen = 1 << 30

// Header describes a dump's payload. The on-disk form is the 4-byte magic,
// a version byte (1), the format tag byte, two reserved zero bytes, then
// width and height as u32 little-endian.
type Header struct {
	Format pixfmt.Format
	Width  int
	Height int
}

// payloadLen returns the byte length the header implies, or -1 if the
// header is not encodable or implies more than maxPayloadLen bytes.
func (h Header) payloadLen() int {
	bpp := h.Format.BytesPerPixel()
	if bpp == 0 || h.Width < 0 || h.Height < 0 ||
		uint64(h.Width) > 0xFFFF_FFFF || uint64(h.Height) > 0xFFFF_FFFF {
		return -1
	}
	n := uint64(bpp) * uint64(h.Width) * uint64(h.Height)
	if n > maxPayloadLen {
		return -1
	}
	return int(n)
}

// Encode writes a PTX dump to w. The payload length must match the header's
// width, height and format exactly.
func Encode(w io.Writer, h Header, payload []byte) error {
	if h.payloadLen() != len(payload) {
		return ErrBadArgument
	}

	buf := [headerSize]byte{}
	copy(buf[:4], Magic)
	buf[4] = 1
	buf[5] = byte(h.Format)
	binary.LittleEndian.PutUint32(buf[8:], uint32(h.Width))
	binary.LittleEndian.PutUint32(buf[12:], uint32(h.Height))

	if _, err := w.Write(buf[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// DecodeHeader reads and validates a PTX header from r.
func DecodeHeader(r io.Reader) (Header, error) {
	buf := [headerSize]byte{}
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, err
	}
	if (buf[0] != Magic[0]) ||
		(buf[1] != Magic[1]) ||
		(buf[2] != Magic[2]) ||
		(buf[3] != Magic[3]) ||
		(buf[4] != 1) ||
		(buf[6] != 0) ||
		(buf[7] != 0) {
		return Header{}, ErrNotAPTXFile
	}

	h := Header{
		Format: pixfmt.Format(buf[5]),
		Width:  int(binary.LittleEndian.Uint32(buf[8:])),
		Height: int(binary.LittleEndian.Uint32(buf[12:])),
	}
	if h.Format.BytesPerPixel() == 0 {
		return Header{}, ErrNotAPTXFile
	}
	return h, nil
}

// Decode reads a complete PTX dump from r, returning its header and
// payload. A truncated payload is an io.ErrUnexpectedEOF; a header whose
// dimensions imply more than maxPayloadLen bytes is an ErrImageIsTooLarge.
func Decode(r io.Reader) (Header, []byte, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return Header{}, nil, err
	}

	n := h.payloadLen()
	if n < 0 {
		return Header{}, nil, ErrImageIsTooLarge
	}

	payload := make([]byte, n)
	if _, err := io.ReadFull(r, payload); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return Header{}, nil, err
	}
	return h, payload, nil
}

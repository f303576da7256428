// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"
)

// byteReader is a forward-only cursor over a container's bytes. Every
// accessor is error-sticky: once a read fails the cursor stops
// advancing and every subsequent accessor returns a zero value, so
// callers can chain a whole struct's worth of fields and check Err()
// once at the end.
type byteReader struct {
	buf []byte
	pos int
	err error
}

func newByteReader(buf []byte) *byteReader {
	return &byteReader{buf: buf}
}

func (r *byteReader) Err() error { return r.err }

func (r *byteReader) fail() {
	if r.err == nil {
		r.err = errTruncated()
	}
}

// take returns the next n bytes and advances the cursor. It returns nil
// once the reader has failed or n exceeds what remains.
func (r *byteReader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 || n > len(r.buf)-r.pos {
		r.fail()
		return nil
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b
}

func (r *byteReader) skip(n int) {
	r.take(n)
}

func (r *byteReader) tag(want []byte) bool {
	got := r.take(len(want))
	if r.err != nil {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func (r *byteReader) u8() uint8 {
	b := r.take(1)
	if r.err != nil {
		return 0
	}
	return b[0]
}

func (r *byteReader) u32() uint32 {
	b := r.take(4)
	if r.err != nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *byteReader) f32() float32 {
	return math.Float32frombits(r.u32())
}

func (r *byteReader) bytes(n int) []byte {
	b := r.take(n)
	if r.err != nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

func (r *byteReader) rgb() RGB {
	red := r.u8()
	green := r.u8()
	blue := r.u8()
	return RGB{R: red, G: green, B: blue}
}

func (r *byteReader) matrix16() [16]float32 {
	var m [16]float32
	for i := range m {
		m[i] = r.f32()
	}
	return m
}

func (r *byteReader) rect4() [4]float32 {
	var rect [4]float32
	for i := range rect {
		rect[i] = r.f32()
	}
	return rect
}

// lengthPrefixedString reads a u32 byte count followed by that many
// UTF-8 bytes, with no padding or terminator.
func (r *byteReader) lengthPrefixedString() (string, error) {
	n := r.u32()
	b := r.take(int(n))
	if r.err != nil {
		return "", r.err
	}
	if !utf8.Valid(b) {
		return "", errUTF8(io.ErrUnexpectedEOF)
	}
	return string(b), nil
}

// fixedString256 reads a fixed 256 byte field, NUL-terminated: only the
// bytes before the first 0x00 are significant.
func (r *byteReader) fixedString256() (string, error) {
	b := r.take(256)
	if r.err != nil {
		return "", r.err
	}
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	if !utf8.Valid(b) {
		return "", errUTF8(io.ErrUnexpectedEOF)
	}
	return string(b), nil
}

// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import (
	"bytes"
	"strings"
)

var magicLE = [...]byte{0xc5, 0xb3, 0x8b, 0xe7}
var magicBE = [...]byte{0xc5, 0xb3, 0x8b, 0xe9}

// header holds everything read before the compressed payload: the
// version that selected how the fixed preamble was shaped, and the pin
// table, present only for version 0x82.
type header struct {
	version uint32
	pins    []ArtPin
	rawSize uint32
}

// readHeader consumes the magic, version-tagged preamble, and (for
// version 0x82) the pin table, then the trailing raw_size word: the
// byte length of the compressed payload that immediately follows.
func readHeader(r *byteReader) (header, error) {
	magic := r.take(4)
	if r.Err() != nil {
		return header{}, r.Err()
	}
	if !bytes.Equal(magic, magicLE[:]) && !bytes.Equal(magic, magicBE[:]) {
		return header{}, errBadMagic(leUint32(magic))
	}

	verTag := r.take(4)
	if r.Err() != nil {
		return header{}, r.Err()
	}

	var h header
	switch verTag[0] {
	case 0x00:
		h.version = 0x00
		r.skip(0x08)
	case 0x81:
		h.version = 0x81
		r.skip(0x1c)
	case 0x82:
		h.version = 0x82
		r.skip(0x21)
		pinCount := r.u32()
		if r.Err() != nil {
			return header{}, r.Err()
		}
		pins := make([]ArtPin, 0, pinCount)
		for i := uint32(0); i < pinCount; i++ {
			pin, err := readPin(r)
			if err != nil {
				return header{}, err
			}
			pins = append(pins, pin)
		}
		h.pins = pins
	default:
		return header{}, errBadVersion(leUint32(verTag))
	}
	if r.Err() != nil {
		return header{}, r.Err()
	}

	h.rawSize = r.u32()
	if r.Err() != nil {
		return header{}, r.Err()
	}
	return h, nil
}

// readPin reads one pin table entry: a camera matrix followed by a
// length-prefixed name string whose final byte is a trailing NUL,
// dropped before whitespace-trimming.
func readPin(r *byteReader) (ArtPin, error) {
	matrix := r.matrix16()
	name, err := r.lengthPrefixedString()
	if err != nil {
		return ArtPin{}, err
	}
	if len(name) > 0 {
		name = name[:len(name)-1]
	}
	return ArtPin{Matrix: matrix, Name: strings.TrimSpace(name)}, nil
}

func leUint32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import (
	"os"

	"github.com/m1el/mischief-re/internal/lzdec"
)

// ParseFromPath reads the file at path in full and parses it as an ART
// document.
//
//	af, err := mischief.ParseFromPath("drawing.art")
//	if err != nil {
//		var ae *mischief.ArtError
//		if errors.As(err, &ae) {
//			log.Fatalf("bad art file: %v (%v)", ae, ae.Kind)
//		}
//		log.Fatal(err)
//	}
func ParseFromPath(path string) (*ArtFile, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errIO(err)
	}
	return ParseFromBytes(buf)
}

// ParseFromBytes parses a complete ART document already held in
// memory: the fixed header (and, for version 0x82, the pin table),
// then the compressed body, then every field of the decompressed
// content.
func ParseFromBytes(buf []byte) (*ArtFile, error) {
	r := newByteReader(buf)

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	compressed := r.take(int(h.rawSize))
	if r.Err() != nil {
		return nil, r.Err()
	}
	decompressed, err := lzdec.Decompress(compressed)
	if err != nil {
		return nil, errDecompress(err)
	}

	af, err := readBody(decompressed)
	if err != nil {
		return nil, err
	}
	af.Pins = h.pins
	return af, nil
}

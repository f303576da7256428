// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief_test

import (
	"testing"

	"github.com/m1el/mischief-re"
)

func TestParseFromBytesBadMagic(t *testing.T) {
	_, err := mischief.ParseFromBytes([]byte{0, 0, 0, 0, 0, 0, 0, 0})
	if err == nil {
		t.Fatalf("expected an error for bad magic")
	}
	ae, ok := err.(*mischief.ArtError)
	if !ok || ae.Kind != mischief.KindBadMagic {
		t.Fatalf("got %v, want BadMagic", err)
	}
}

func TestParseFromBytesTruncated(t *testing.T) {
	_, err := mischief.ParseFromBytes([]byte{1, 2})
	if err == nil {
		t.Fatalf("expected a truncated-input error")
	}
}

func TestParseFromPathMissingFile(t *testing.T) {
	_, err := mischief.ParseFromPath("testdata/does-not-exist.art")
	if err == nil {
		t.Fatalf("expected an IO error")
	}
	ae, ok := err.(*mischief.ArtError)
	if !ok || ae.Kind != mischief.KindIO {
		t.Fatalf("got %v, want IO", err)
	}
}

func TestDecompressTooShort(t *testing.T) {
	if _, err := mischief.Decompress([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected an error for a too-short compressed payload")
	}
}

// TestParseFromBytesWiresRawSize builds a version-0x00 container whose
// compressed region is the arithmetic decoder's empty-output scenario
// (expected_len = 0, one pad byte, no stream bytes), to confirm
// ParseFromBytes hands the decoder the region that starts right after
// the raw_size word and passes its output on to readBody. The
// decompressed body is legitimately empty, so readBody fails parsing
// the (absent) version field: that failure, not a successful parse or
// a decode error, is what demonstrates the handoff started at the right
// offset. With expected_len = 0 the decoder reads nothing past its
// length word, so the trailing bytes do not change the outcome; this
// test does not distinguish whether they were sliced off.
func TestParseFromBytesWiresRawSize(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xc5, 0xb3, 0x8b, 0xe7) // magic (LE form)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00) // version tag
	buf = append(buf, make([]byte, 8)...)     // v00 padding
	buf = append(buf, 0x05, 0x00, 0x00, 0x00) // raw_size = 5
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0x00)
	buf = append(buf, 0xff, 0xff, 0xff) // trailing bytes raw_size excludes

	_, err := mischief.ParseFromBytes(buf)
	if err == nil {
		t.Fatalf("expected an error decoding the empty decompressed body")
	}
	ae, ok := err.(*mischief.ArtError)
	if !ok || ae.Kind != mischief.KindTruncatedInput {
		t.Fatalf("got %v, want TruncatedInput from readBody", err)
	}
}

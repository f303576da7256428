// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import "testing"

func buildHeaderV00() []byte {
	buf := append([]byte{}, magicLE[:]...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00) // version tag
	buf = append(buf, make([]byte, 8)...)     // v00 padding
	buf = append(buf, 0x00, 0x00, 0x00, 0x00) // declared length
	return buf
}

func TestReadHeaderVersion00(t *testing.T) {
	r := newByteReader(buildHeaderV00())
	h, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.version != 0x00 {
		t.Fatalf("version = %#x, want 0x00", h.version)
	}
	if len(h.pins) != 0 {
		t.Fatalf("pins = %v, want none", h.pins)
	}
}

func TestReadHeaderVersion81(t *testing.T) {
	buf := append([]byte{}, magicBE[:]...)
	buf = append(buf, 0x81, 0x00, 0x00, 0x00)
	buf = append(buf, make([]byte, 0x1c)...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)

	r := newByteReader(buf)
	h, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.version != 0x81 {
		t.Fatalf("version = %#x, want 0x81", h.version)
	}
}

func TestReadHeaderVersion82WithPin(t *testing.T) {
	buf := append([]byte{}, magicLE[:]...)
	buf = append(buf, 0x82, 0x00, 0x00, 0x00)
	buf = append(buf, make([]byte, 0x21)...)
	buf = append(buf, 0x01, 0x00, 0x00, 0x00) // one pin
	for i := 0; i < 16; i++ {
		buf = append(buf, 0, 0, 0x80, 0x3f) // 1.0f, 16 times
	}
	name := append([]byte("home"), 0x00) // trailing NUL, dropped on read
	buf = append(buf, byte(len(name)), 0, 0, 0)
	buf = append(buf, name...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00) // declared length

	r := newByteReader(buf)
	h, err := readHeader(r)
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.version != 0x82 {
		t.Fatalf("version = %#x, want 0x82", h.version)
	}
	if len(h.pins) != 1 {
		t.Fatalf("pins = %v, want 1 entry", h.pins)
	}
	if h.pins[0].Name != "home" {
		t.Fatalf("pin name = %q, want %q", h.pins[0].Name, "home")
	}
	if h.pins[0].Matrix[0] != 1.0 {
		t.Fatalf("pin matrix[0] = %v, want 1.0", h.pins[0].Matrix[0])
	}
}

func TestReadHeaderBadMagic(t *testing.T) {
	buf := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	r := newByteReader(buf)
	_, err := readHeader(r)
	if err == nil {
		t.Fatalf("expected BadMagic error")
	}
	ae, ok := err.(*ArtError)
	if !ok || ae.Kind != KindBadMagic {
		t.Fatalf("got %v, want BadMagic", err)
	}
}

func TestReadHeaderBadVersion(t *testing.T) {
	buf := append([]byte{}, magicLE[:]...)
	buf = append(buf, 0x7f, 0x00, 0x00, 0x00)
	r := newByteReader(buf)
	_, err := readHeader(r)
	if err == nil {
		t.Fatalf("expected BadVersion error")
	}
	ae, ok := err.(*ArtError)
	if !ok || ae.Kind != KindBadVersion {
		t.Fatalf("got %v, want BadVersion", err)
	}
}

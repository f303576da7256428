// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import "testing"

func TestReadActionPenColor(t *testing.T) {
	r := newByteReader([]byte{0x10, 0x20, 0x30})
	a, err := readAction(r, tagPenColor)
	if err != nil {
		t.Fatalf("readAction: %v", err)
	}
	pc, ok := a.(PenColor)
	if !ok {
		t.Fatalf("got %T, want PenColor", a)
	}
	if pc.Color != (RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Fatalf("color = %v", pc.Color)
	}
}

func TestReadActionUnknownTag(t *testing.T) {
	r := newByteReader(nil)
	_, err := readAction(r, 0x99)
	if err == nil {
		t.Fatalf("expected BadAction error")
	}
	ae, ok := err.(*ArtError)
	if !ok || ae.Kind != KindBadAction || ae.Value != 0x99 {
		t.Fatalf("got %v, want BadAction(0x99)", err)
	}
}

func TestReadActionPenIsEraser(t *testing.T) {
	r := newByteReader([]byte{1, 0, 0, 0})
	a, err := readAction(r, tagPenIsEraser)
	if err != nil {
		t.Fatalf("readAction: %v", err)
	}
	if pe, ok := a.(PenIsEraser); !ok || !pe.IsEraser {
		t.Fatalf("got %+v, want IsEraser=true", a)
	}
}

// TestReadActionStrokeDeltaDecode exercises the 5-byte delta record: a
// first absolute point, then one delta with a negative dx, a positive
// dy, and a non-trivial pressure value spanning both the packed word
// and the trailing byte.
func TestReadActionStrokeDeltaDecode(t *testing.T) {
	var buf []byte
	buf = appendU32(buf, 2) // point count
	buf = appendF32(buf, 10.0)
	buf = appendF32(buf, 20.0)
	buf = appendF32(buf, 0.5)

	// dx = 16 (negated via bit 14), dy = 32, pressure low bits = 0b11,
	// pressure high byte = 0x0A -> p = (0x0A<<2)|0b11 = 43.
	const dx = 16
	const dy = 32
	word := uint32(dx) | (1 << 14) | (uint32(dy) << 15) | (0b11 << 30)
	buf = appendU32(buf, word)
	buf = append(buf, 0x0A)

	r := newByteReader(buf)
	a, err := readActionStroke(r)
	if err != nil {
		t.Fatalf("readActionStroke: %v", err)
	}
	s, ok := a.(Stroke)
	if !ok {
		t.Fatalf("got %T, want Stroke", a)
	}
	if len(s.Points) != 2 {
		t.Fatalf("points = %d, want 2", len(s.Points))
	}
	want := StrokePoint{
		X: 10.0 - float32(dx)/32.0,
		Y: 20.0 + float32(dy)/32.0,
		P: float32((0x0A<<2)|0b11) / 1023.0,
	}
	got := s.Points[1]
	if got != want {
		t.Fatalf("second point = %+v, want %+v", got, want)
	}
}

func TestReadActionStrokeEmpty(t *testing.T) {
	buf := appendU32(nil, 0)
	r := newByteReader(buf)
	a, err := readActionStroke(r)
	if err != nil {
		t.Fatalf("readActionStroke: %v", err)
	}
	if s, ok := a.(Stroke); !ok || len(s.Points) != 0 {
		t.Fatalf("got %+v, want empty Stroke", a)
	}
}

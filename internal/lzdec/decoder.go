// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lzdec

import "encoding/binary"

// decoder is a binary arithmetic decoder (BAD) over a fixed input byte
// slice, together with the flat adaptive-context table it drives. An
// ill-formed stream that runs out of bytes before the main loop is done
// is reported once, via err: the first failure sticks and later reads
// become no-ops, so callers check err once.
type decoder struct {
	scale    uint32
	value    uint32
	input    []byte
	pos      int
	contexts []uint16
	err      error
}

func newDecoder(input []byte) *decoder {
	contexts := make([]uint16, numContexts)
	for i := range contexts {
		contexts[i] = contextInitial
	}
	var value uint32
	if len(input) >= 4 {
		value = binary.BigEndian.Uint32(input[:4])
		input = input[4:]
	} else {
		// Fewer than 4 bytes available: read what exists, big-endian,
		// and let the first renormalize report TruncatedInput once the
		// remainder is exhausted.
		for _, b := range input {
			value = value<<8 | uint32(b)
		}
		for i := len(input); i < 4; i++ {
			value <<= 8
		}
		input = nil
	}
	return &decoder{
		scale:    0xFFFFFFFF,
		value:    value,
		input:    input,
		contexts: contexts,
	}
}

func (d *decoder) nextByte() byte {
	if d.pos >= len(d.input) {
		if d.err == nil {
			d.err = errTruncatedInput()
		}
		return 0
	}
	b := d.input[d.pos]
	d.pos++
	return b
}

func (d *decoder) renormalize() {
	if d.scale < 0x01000000 {
		d.scale <<= 8
		d.value = d.value<<8 | uint32(d.nextByte())
	}
}

// getBit decodes one adaptive bit using the context at index ctx,
// updating its threshold in place.
func (d *decoder) getBit(ctx int) int {
	d.renormalize()
	t := d.contexts[ctx]
	st := (d.scale >> 11) * uint32(t)
	if d.value < st {
		d.scale = st
		d.contexts[ctx] = t - ((t + 0x1f) >> 5) + 0x40
		return 0
	}
	d.value -= st
	d.scale -= st
	d.contexts[ctx] = t - (t >> 5)
	return 1
}

// getRawBit decodes one unbiased bit, used for the high-order bits of
// long-form distances.
func (d *decoder) getRawBit() int {
	d.renormalize()
	d.scale >>= 1
	if d.value < d.scale {
		return 0
	}
	d.value -= d.scale
	return 1
}

// getNBits decodes an n-bit MSB-first value, one adaptive context per
// tree position under base.
func (d *decoder) getNBits(n, base int) uint32 {
	v := uint32(0)
	for i := 0; i < n; i++ {
		b := d.getBit(base + (1 << uint(i)) + int(v))
		v = v<<1 | uint32(b)
	}
	return v
}

// getNBitsFlipped decodes an n-bit value LSB-first, but walks the same
// context tree (MSB-first indexing) that getNBits uses.
func (d *decoder) getNBitsFlipped(n, base int) uint32 {
	ctxv := uint32(0)
	out := uint32(0)
	for i := 0; i < n; i++ {
		b := d.getBit(base + (1 << uint(i)) + int(ctxv))
		ctxv = ctxv<<1 | uint32(b)
		out |= uint32(b) << uint(i)
	}
	return out
}

// getByteWithReference decodes an 8-bit literal guided by a reference
// byte: bits agreeing with ref are coded against one context bank, the
// first disagreement switches decoding to the reference-free bank for
// all remaining bits.
func (d *decoder) getByteWithReference(ref byte, base int) uint32 {
	v := uint32(0)
	mismatch := false
	for i := 0; i < 8; i++ {
		offset := 1 << uint(i)
		var refBit uint32
		if !mismatch {
			refBit = uint32(ref>>(7-uint(i))) & 1
			if refBit == 0 {
				offset += 0x100
			} else {
				offset += 0x200
			}
		}
		b := d.getBit(base + offset + int(v))
		v = v<<1 | uint32(b)
		if !mismatch && uint32(b) != refBit {
			mismatch = true
		}
	}
	return v
}

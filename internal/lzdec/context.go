// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lzdec

// The decoder owns a single flat table of adaptive-bit contexts. The
// layout below is a fixed convention: each named base marks the start of
// a span, and callers add a state, byte-in-dword, or length-class index
// to reach a specific context. A flat []uint16 is preferred over a
// struct of named spans for cache locality and because it mirrors the
// wire format directly: every context is interchangeable storage for a
// single adaptive probability.
const (
	ctxLiteralVsRef       = 0x000 // (state<<4)|byte_in_dword, 0xC0 entries
	ctxUseNewDistance     = 0x0C0 // +state, per-state "fetch new distance"
	ctxUseMRU0            = 0x0CC // +state, per-state "reuse MRU[0]"
	ctxUseMRU1VsFurther   = 0x0D8 // +state, "reuse MRU[1] vs further"
	ctxUseMRU2VsMRU3      = 0x0E4 // +state, "reuse MRU[2] vs MRU[3]"
	ctxSingleByteMRU0Copy = 0x0F0 // +rs, single-byte MRU[0] copy shortcut
	ctxDistanceMagnitude  = 0x1B0 // distance magnitude decoding
	ctxLenNewDistance     = 0x332 // copy-length when a new distance was fetched
	ctxLenReused          = 0x534 // copy-length when a distance was reused
	ctxLiteral            = 0x736 // 8 groups of 3x256 literal-byte contexts

	numContexts = 0x1F36

	// contextInitial is the initial threshold for every adaptive bit
	// context: 0x400 out of a 0x800 scale, i.e. an unbiased coin.
	contextInitial = 0x400
)

// distLowBitsBase is the shared context base for the final 4 LSB-first
// bits of a long-form distance (§4.4).
const distLowBitsBase = 0x322

// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lzdec implements the adaptive binary arithmetic decoder and LZ77
// output machine used to expand an ART file's compressed payload.
package lzdec

// DecodeErrorKind enumerates the ways a compressed stream can be
// malformed or the ways the decoder can run off the end of its input.
type DecodeErrorKind uint8

const (
	// ReferencingEmpty means a back-reference was decoded before any
	// byte had been written to the output.
	ReferencingEmpty DecodeErrorKind = iota + 1
	// NegativeDistance means a freshly decoded distance exceeded
	// 0x7FFFFFFF, or referenced an empty output buffer.
	NegativeDistance
	// OutputTooBig means the decoder produced more bytes than the
	// declared expected length.
	OutputTooBig
	// TruncatedInput means the compressed byte stream ran out before
	// the decoder reached the expected length or the sentinel
	// distance.
	TruncatedInput
)

func (k DecodeErrorKind) String() string {
	switch k {
	case ReferencingEmpty:
		return "referencing empty output"
	case NegativeDistance:
		return "negative distance"
	case OutputTooBig:
		return "output too big"
	case TruncatedInput:
		return "truncated input"
	default:
		return "unknown decode error"
	}
}

// DecodeError is returned by Decompress when the compressed stream is
// ill-formed.
type DecodeError struct {
	Kind DecodeErrorKind
}

func (e *DecodeError) Error() string {
	return "lzdec: " + e.Kind.String()
}

func errReferencingEmpty() error { return &DecodeError{Kind: ReferencingEmpty} }
func errNegativeDistance() error { return &DecodeError{Kind: NegativeDistance} }
func errOutputTooBig() error     { return &DecodeError{Kind: OutputTooBig} }
func errTruncatedInput() error   { return &DecodeError{Kind: TruncatedInput} }

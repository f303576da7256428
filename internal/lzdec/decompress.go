// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lzdec

import "encoding/binary"

// Decompress expands a compressed ART payload. The first four bytes of
// input are the expected output length (little-endian), the fifth byte
// is an unexplained pad that is always skipped, and the rest feeds the
// arithmetic decoder (whose own 32-bit value field is read big-endian,
// unlike the little-endian fields of the container).
func Decompress(input []byte) ([]byte, error) {
	if len(input) < 5 {
		return nil, errTruncatedInput()
	}
	expectedLen := binary.LittleEndian.Uint32(input[0:4])
	d := newDecoder(input[5:])
	o := newOutput(expectedLen)

	state := 0
	for uint32(len(o.buf)) != expectedLen {
		if d.err != nil {
			return nil, d.err
		}
		if uint32(len(o.buf)) > expectedLen {
			return nil, errOutputTooBig()
		}

		rs := (state << 4) + int(o.byteInDword())
		if d.getBit(rs) == 0 {
			// Literal.
			base := ctxLiteral + int(o.lastByte()>>5)*0x300
			var b uint32
			if state < 7 {
				b = d.getNBits(8, base)
			} else {
				b = d.getByteWithReference(o.referencedByte(), base)
			}
			o.appendByte(byte(b))
			state = stateNext[state]
			continue
		}

		// Reference.
		fetchNew := d.getBit(ctxUseNewDistance+state) == 0
		var lenBase int
		if !fetchNew {
			if len(o.buf) == 0 {
				return nil, errReferencingEmpty()
			}
			if d.getBit(ctxUseMRU0+state) == 0 {
				if d.getBit(ctxSingleByteMRU0Copy+rs) == 0 {
					o.appendByte(o.referencedByte())
					state = nextStateSingleByte(state)
					continue
				}
				// MRU[0] reused but with an explicit coded length
				// rather than the single-byte shortcut; peek0 leaves
				// the list untouched since it's already at the front.
				lenBase = ctxLenReused
			} else {
				switch {
				case d.getBit(ctxUseMRU1VsFurther+state) == 0:
					o.mru.recall(1)
				case d.getBit(ctxUseMRU2VsMRU3+state) == 0:
					o.mru.recall(2)
				default:
					o.mru.recall(3)
				}
				lenBase = ctxLenReused
			}
			state = nextStateReused(state)
		} else {
			lenBase = ctxLenNewDistance
		}

		lengthCode := decodeLength(d, o, lenBase)

		if fetchNew {
			dist, sentinel := decodeDistance(d, lengthCode)
			if sentinel {
				return o.buf, nil
			}
			if err := o.setDistance(dist); err != nil {
				return nil, err
			}
			state = nextStateNewDistance(state)
		}

		o.copyReferencedBytes(lengthCode + 2)
	}

	if d.err != nil {
		return nil, d.err
	}
	return o.buf, nil
}

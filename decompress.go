// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package mischief

import "github.com/m1el/mischief-re/internal/lzdec"

// Decompress expands a compressed ART payload in isolation, without a
// surrounding container. It is exposed standalone because the
// compressed region of a file is also useful on its own, e.g. for
// fuzzing the arithmetic decoder or inspecting raw_size mismatches.
//
// Errors are always *lzdec.DecodeError, not *ArtError: callers that
// want the container-parser error taxonomy should go through
// ParseFromBytes instead, which wraps decode failures as
// ArtError{Kind: KindDecompress}.
func Decompress(compressed []byte) ([]byte, error) {
	return lzdec.Decompress(compressed)
}

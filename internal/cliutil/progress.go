// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cliutil

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v2"
	"golang.org/x/crypto/ssh/terminal"
)

// IsTTY reports whether stdout is attached to a terminal. Neither
// command currently calls it: artdecompress shows its progress bar
// whenever --progress is set and the input size is known.
func IsTTY() bool {
	return terminal.IsTerminal(int(os.Stdout.Fd()))
}

// NewReadProgressBar wraps r so that reading from it drives a progress
// bar of the given total size, written to stderr so it doesn't pollute
// piped stdout output.
func NewReadProgressBar(r io.Reader, size int64) io.Reader {
	bar := progressbar.NewOptions64(size,
		progressbar.OptionSetBytes64(size),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(true))
	return io.TeeReader(r, bar)
}

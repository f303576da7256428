// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command artdecompress extracts and expands the compressed payload of
// an ART file, writing the raw decompressed bytes to stdout.
package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"

	"cloudeng.io/errors"
	"github.com/spf13/cobra"

	"github.com/m1el/mischief-re"
	"github.com/m1el/mischief-re/internal/cliutil"
)

var (
	outputPath  string
	progressBar bool
)

var rootCmd = &cobra.Command{
	Use:   "artdecompress [path]",
	Short: "decompress an ART file's payload to stdout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDecompress(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.Flags().StringVar(&outputPath, "output", "", "output file, omit for stdout")
	rootCmd.Flags().BoolVar(&progressBar, "progress", true, "display a progress bar on stderr")
	cliutil.RegisterS3()
}

// splitCompressed locates the compressed region of a full ART file by
// mirroring the header layout far enough to skip it, without pulling
// in the whole container parser: callers that already want structured
// fields should use artparse instead.
func splitCompressed(buf []byte) ([]byte, error) {
	if len(buf) < 8 {
		return nil, fmt.Errorf("artdecompress: input too short")
	}
	if !bytes.Equal(buf[:4], []byte{0xc5, 0xb3, 0x8b, 0xe7}) &&
		!bytes.Equal(buf[:4], []byte{0xc5, 0xb3, 0x8b, 0xe9}) {
		return nil, fmt.Errorf("artdecompress: bad magic %#08x", binary.LittleEndian.Uint32(buf[:4]))
	}
	pos := 8
	switch buf[4] {
	case 0x00:
		pos += 8
	case 0x81:
		pos += 0x1c
	case 0x82:
		pos += 0x21
		if len(buf) < pos+4 {
			return nil, fmt.Errorf("artdecompress: truncated pin count")
		}
		pinCount := binary.LittleEndian.Uint32(buf[pos : pos+4])
		pos += 4
		for i := uint32(0); i < pinCount; i++ {
			if len(buf) < pos+16*4+4 {
				return nil, fmt.Errorf("artdecompress: truncated pin table")
			}
			pos += 16 * 4
			nameLen := binary.LittleEndian.Uint32(buf[pos : pos+4])
			pos += 4 + int(nameLen)
		}
	default:
		return nil, fmt.Errorf("artdecompress: bad version %#x", buf[4])
	}
	if len(buf) < pos+4 {
		return nil, fmt.Errorf("artdecompress: truncated declared length")
	}
	rawSize := binary.LittleEndian.Uint32(buf[pos : pos+4])
	pos += 4
	end := pos + int(rawSize)
	if end < pos || len(buf) < end {
		return nil, fmt.Errorf("artdecompress: truncated compressed payload")
	}
	return buf[pos:end], nil
}

func runDecompress(ctx context.Context, path string) error {
	r, size, closer, err := cliutil.OpenFileOrURL(ctx, path)
	if err != nil {
		return err
	}

	if progressBar && size > 0 {
		r = cliutil.NewReadProgressBar(r, size)
	}
	buf, err := io.ReadAll(r)

	errs := &errors.M{}
	errs.Append(err)
	errs.Append(closer(ctx))
	if err := errs.Err(); err != nil {
		return err
	}

	compressed, err := splitCompressed(buf)
	if err != nil {
		return err
	}

	out, err := mischief.Decompress(compressed)
	if err != nil {
		return err
	}

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

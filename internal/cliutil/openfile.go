// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package cliutil holds the remote-file plumbing shared by the
// artparse and artdecompress commands: ART files are small enough to
// read fully into memory, but may live locally, on S3, or behind a
// plain HTTP URL.
package cliutil

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v3"
	"github.com/grailbio/base/file"
)

// OpenFileOrURL opens name for reading, dispatching on its scheme: an
// "http"/"https" prefix goes through net/http with retry, anything
// else goes through grailbio/base/file, which in turn dispatches local
// paths and "s3://" URIs (registered in RegisterS3).  The returned
// closer must be called once the caller is done reading.
func OpenFileOrURL(ctx context.Context, name string) (r io.Reader, size int64, closer func(context.Context) error, err error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		var resp *http.Response
		op := func() error {
			var getErr error
			resp, getErr = http.Get(name)
			return getErr
		}
		if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3)); err != nil {
			return nil, 0, nil, err
		}
		return resp.Body, resp.ContentLength, func(context.Context) error {
			return resp.Body.Close()
		}, nil
	}

	info, err := file.Stat(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	f, err := file.Open(ctx, name)
	if err != nil {
		return nil, 0, nil, err
	}
	return f.Reader(ctx), info.Size(), f.Close, nil
}

// ReadAll fully drains an opened reader into memory, which is what
// every ART command needs: the container parser operates on a whole
// buffer, not a stream.
func ReadAll(ctx context.Context, name string) ([]byte, error) {
	r, _, closer, err := OpenFileOrURL(ctx, name)
	if err != nil {
		return nil, err
	}
	defer closer(ctx)
	return io.ReadAll(r)
}

// Copyright 2021 Cosmos Nicolaou. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package cliutil

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/grailbio/base/file"
	"github.com/grailbio/base/file/s3file"
)

// RegisterS3 wires grailbio/base/file's "s3://" scheme to the AWS SDK's
// default session provider. Commands call this once during init so
// OpenFileOrURL can transparently accept s3 paths alongside local ones.
func RegisterS3() {
	file.RegisterImplementation("s3", func() file.Implementation {
		return s3file.NewImplementation(
			s3file.NewDefaultProvider(session.Options{}), s3file.Options{})
	})
}

// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fileio

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// NewCompressWriter wraps w in an lz4 frame writer configured the way
// snapshots are stored: content checksum on, block checksums on. The caller
// must Close the writer to flush the final block.
func NewCompressWriter(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(
		lz4.ChecksumOption(true),
		lz4.BlockChecksumOption(true),
		lz4.CompressionLevelOption(lz4.Fast),
	); err != nil {
		return nil, err
	}
	return zw, nil
}

// NewDecompressReader returns a reader that inflates the lz4 stream in r
func NewDecompressReader(r io.Reader) io.Reader {
	return lz4.NewReader(r)
}

// Compress lz4 compresses in using the snapshot settings
func Compress(in []byte) ([]byte, error) {
	w := &bytes.Buffer{}
	zw, err := NewCompressWriter(w)
	if err != nil {
		return nil, err
	}

	if _, err := zw.Write(in); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Decompress reverses Compress
func Decompress(in []byte) ([]byte, error) {
	return io.ReadAll(NewDecompressReader(bytes.NewReader(in)))
}

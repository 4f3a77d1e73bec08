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

package fileio_test

import (
	"bytes"

	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/fileio"
)

var _ = Describe("Snapshot", func() {
	It("round trips a float frame", func() {
		df := revenueFrame()

		var buf bytes.Buffer
		info, err := fileio.WriteSnapshot(&buf, df)
		Expect(err).To(BeNil())
		Expect(info.Digest).To(HaveLen(64))

		res, readInfo, err := fileio.ReadSnapshot[float64](&buf)
		Expect(err).To(BeNil())
		Expect(res.Equal(df, floatEq)).To(BeTrue())
		Expect(readInfo.ID).To(Equal(info.ID))
		Expect(readInfo.Digest).To(Equal(info.Digest))
	})

	It("round trips a string frame", func() {
		df, err := dataframe.New([]string{"ticker"}, [][]string{{"VTI"}, {"<BND>"}})
		Expect(err).To(BeNil())

		var buf bytes.Buffer
		_, err = fileio.WriteSnapshot(&buf, df)
		Expect(err).To(BeNil())

		res, _, err := fileio.ReadSnapshot[string](&buf)
		Expect(err).To(BeNil())
		Expect(res.Equal(df, func(a, b string) bool { return a == b })).To(BeTrue())
	})

	It("gives every snapshot its own id", func() {
		var buf1, buf2 bytes.Buffer
		info1, err := fileio.WriteSnapshot(&buf1, revenueFrame())
		Expect(err).To(BeNil())
		info2, err := fileio.WriteSnapshot(&buf2, revenueFrame())
		Expect(err).To(BeNil())
		Expect(info1.ID).ToNot(Equal(info2.ID))
		Expect(info1.Digest).To(Equal(info2.Digest))
	})

	It("detects a tampered digest", func() {
		var buf bytes.Buffer
		_, err := fileio.WriteSnapshot(&buf, revenueFrame())
		Expect(err).To(BeNil())

		data, err := fileio.Decompress(buf.Bytes())
		Expect(err).To(BeNil())

		envelope := map[string]any{}
		Expect(json.Unmarshal(data, &envelope)).To(Succeed())
		envelope["digest"] = "00"
		data, err = json.Marshal(envelope)
		Expect(err).To(BeNil())

		tampered, err := fileio.Compress(data)
		Expect(err).To(BeNil())

		_, _, err = fileio.ReadSnapshot[float64](bytes.NewReader(tampered))
		Expect(err).To(MatchError(fileio.ErrChecksumMismatch))
	})

	It("streams through the compress writer", func() {
		var buf bytes.Buffer
		zw, err := fileio.NewCompressWriter(&buf)
		Expect(err).To(BeNil())
		_, err = zw.Write([]byte("year,revenue\n2015,70021.35\n"))
		Expect(err).To(BeNil())
		Expect(zw.Close()).To(Succeed())

		data, err := fileio.Decompress(buf.Bytes())
		Expect(err).To(BeNil())
		Expect(string(data)).To(Equal("year,revenue\n2015,70021.35\n"))
	})

	It("rejects a corrupted compressed stream", func() {
		var buf bytes.Buffer
		_, err := fileio.WriteSnapshot(&buf, revenueFrame())
		Expect(err).To(BeNil())

		corrupted := buf.Bytes()
		corrupted[len(corrupted)/2] ^= 0xff

		_, _, err = fileio.ReadSnapshot[float64](bytes.NewReader(corrupted))
		Expect(err).To(HaveOccurred())
	})

	It("fails on data that is not lz4", func() {
		_, _, err := fileio.ReadSnapshot[float64](bytes.NewReader([]byte("not a snapshot")))
		Expect(err).To(HaveOccurred())
	})
})

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
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pvframe/fileio"
)

var _ = Describe("Load and Save", func() {
	DescribeTable("detects the format from the extension",
		func(fn string, expected fileio.Format) {
			format, err := fileio.DetectFormat(fn)
			Expect(err).To(BeNil())
			Expect(format).To(Equal(expected))
		},
		Entry("xlsx", "a.xlsx", fileio.FormatXLSX),
		Entry("upper case", "A.XLSX", fileio.FormatXLSX),
		Entry("arrow", "a.arrow", fileio.FormatArrow),
		Entry("ipc", "dir/a.ipc", fileio.FormatArrow),
		Entry("db", "a.db", fileio.FormatSQLite),
		Entry("sqlite", "a.sqlite", fileio.FormatSQLite),
		Entry("snapshot", "a.pvdf", fileio.FormatSnapshot),
	)

	It("rejects unknown extensions", func() {
		_, err := fileio.DetectFormat("a.csv")
		Expect(err).To(MatchError(fileio.ErrUnsupportedFormat))

		err = fileio.Save(context.Background(), "a.csv", revenueFrame(), fileio.Options{})
		Expect(err).To(MatchError(fileio.ErrUnsupportedFormat))
	})

	DescribeTable("round trips through every format",
		func(name string) {
			ctx := context.Background()
			fn := filepath.Join(tempDir(), name)
			df := revenueFrame()

			Expect(fileio.Save(ctx, fn, df, fileio.Options{Table: "revenue"})).To(Succeed())
			res, err := fileio.Load(ctx, fn, fileio.Options{Table: "revenue"})
			Expect(err).To(BeNil())
			Expect(res.ColumnNames()).To(Equal(df.ColumnNames()))
			Expect(res.RowCount()).To(Equal(df.RowCount()))
			Expect(res.Equal(df, floatEq)).To(BeTrue())
		},
		Entry("xlsx", "frame.xlsx"),
		Entry("arrow", "frame.arrow"),
		Entry("sqlite", "frame.db"),
		Entry("snapshot", "frame.pvdf"),
	)
})

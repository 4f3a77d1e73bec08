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

package dataframe_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pvframe/dataframe"
)

var _ = Describe("DataFrame", func() {
	Context("with no values", func() {
		var (
			df *dataframe.DataFrame[float64]
		)

		BeforeEach(func() {
			var err error
			df, err = dataframe.New[float64](nil, nil)
			Expect(err).To(BeNil())
		})

		It("has zero length", func() {
			Expect(df.RowCount()).To(Equal(0))
		})

		It("has zero columns", func() {
			Expect(df.ColumnCount()).To(Equal(0))
			Expect(df.ColumnNames()).To(BeEmpty())
		})

		It("does not error on breakout", func() {
			Expect(df.Breakout()).To(BeEmpty())
		})

		It("can be expanded", func() {
			df2, err := df.Expand(2, "a")
			Expect(err).To(BeNil())
			Expect(df2.RowCount()).To(Equal(2))
			Expect(df2.ColumnNames()).To(Equal([]string{"a"}))
		})

		It("iterates over nothing", func() {
			cnt := 0
			for range df.All() {
				cnt++
			}
			Expect(cnt).To(Equal(0))
		})
	})

	Context("as a zero value", func() {
		It("behaves as an empty frame", func() {
			df := &dataframe.DataFrame[float64]{}
			Expect(df.ColumnCount()).To(Equal(0))
			Expect(df.RowCount()).To(Equal(0))
			Expect(df.ColumnNames()).To(BeEmpty())
			Expect(df.FormatMatrix(4)).To(Equal("    \n"))
			_, err := df.Column("year")
			Expect(err).To(MatchError(dataframe.ErrUnknownColumn))
		})

		It("can be concatenated and expanded", func() {
			df := &dataframe.DataFrame[float64]{}
			other, err := dataframe.New[float64]([]string{"a"}, nil)
			Expect(err).To(BeNil())

			res, err := df.Concat(other)
			Expect(err).To(BeNil())
			Expect(res.ColumnNames()).To(Equal([]string{"a"}))

			grown, err := df.Expand(2, "b")
			Expect(err).To(BeNil())
			Expect(grown.RowCount()).To(Equal(2))
			Expect(grown.ColumnNames()).To(Equal([]string{"b"}))
		})
	})

	Context("when constructing", func() {
		It("rejects duplicate column names", func() {
			_, err := dataframe.New([]string{"a", "a"}, [][]float64{{1, 2}})
			Expect(err).To(MatchError(dataframe.ErrDuplicateName))
		})

		It("rejects ragged rows", func() {
			_, err := dataframe.New([]string{"a", "b"}, [][]float64{{1, 2}, {3}})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})

		It("copies the input matrix", func() {
			data := [][]float64{{1, 2}}
			df, err := dataframe.New([]string{"a", "b"}, data)
			Expect(err).To(BeNil())
			data[0][0] = 10
			val, err := df.Value(0, "a")
			Expect(err).To(BeNil())
			Expect(val).To(Equal(1.0))
		})

		It("creates frames from columns", func() {
			df, err := dataframe.FromColumns([]string{"a", "b"}, [][]float64{{1, 2, 3}, {4, 5, 6}})
			Expect(err).To(BeNil())
			Expect(df.RowCount()).To(Equal(3))
			row, err := df.Row(2)
			Expect(err).To(BeNil())
			Expect(row.Values()).To(Equal([]float64{3, 6}))
		})

		It("rejects columns of different length", func() {
			_, err := dataframe.FromColumns([]string{"a", "b"}, [][]float64{{1, 2, 3}, {4}})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
			_, err = dataframe.FromColumns([]string{"a", "b"}, [][]float64{{1}})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})

		It("creates frames filled with the default value", func() {
			df, err := dataframe.Zeros[float64](3, []string{"a", "b"}, dataframe.WithDefault(-1.0))
			Expect(err).To(BeNil())
			Expect(df.RowCount()).To(Equal(3))
			Expect(df.Summarize("sum", dataframe.Sum[float64]).Values()).To(Equal([]float64{-3, -3}))
		})

		It("rejects a negative row count for Zeros", func() {
			_, err := dataframe.Zeros[float64](-1, []string{"a"})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})
	})

	Context("with the revenue example", func() {
		var (
			df *dataframe.DataFrame[float64]
		)

		BeforeEach(func() {
			df = revenueFrame()
		})

		It("has the expected shape", func() {
			Expect(df.RowCount()).To(Equal(2))
			Expect(df.ColumnCount()).To(Equal(3))
			Expect(df.ColumnNames()).To(Equal([]string{"year", "revenue", "costs"}))
		})

		It("gets and sets values", func() {
			val, err := df.Value(1, "year")
			Expect(err).To(BeNil())
			Expect(val).To(Equal(2016.0))

			Expect(df.SetValue(1, "revenue", 0)).To(Succeed())
			val, err = df.Value(1, "revenue")
			Expect(err).To(BeNil())
			Expect(val).To(Equal(0.0))
		})

		DescribeTable("rejects invalid addresses", func(rowIdx int, name string, expected error) {
			_, err := df.Value(rowIdx, name)
			Expect(err).To(MatchError(expected))
			Expect(df.SetValue(rowIdx, name, 1)).To(MatchError(expected))
		},
			Entry("negative row", -1, "year", dataframe.ErrRowIndex),
			Entry("row past the end", 2, "year", dataframe.ErrRowIndex),
			Entry("unknown column", 0, "profit", dataframe.ErrUnknownColumn),
		)

		It("extracts all rows and columns in order", func() {
			rows := df.Rows()
			Expect(rows).To(HaveLen(2))
			Expect(rows[1].Name()).To(Equal("row_1"))

			cols := df.Columns()
			Expect(cols).To(HaveLen(3))
			Expect(cols[2].Name()).To(Equal("costs"))
		})

		It("iterates over rows like Rows and can restart", func() {
			for pass := 0; pass < 2; pass++ {
				names := []string{}
				for idx, row := range df.All() {
					Expect(row.Row()).To(Equal(idx))
					names = append(names, row.Name())
				}
				Expect(names).To(Equal([]string{"row_0", "row_1"}))
			}
		})

		It("stops iterating when asked to", func() {
			cnt := 0
			for range df.All() {
				cnt++
				break
			}
			Expect(cnt).To(Equal(1))
		})

		It("copies without sharing storage", func() {
			df2 := df.Copy()
			Expect(df2.Equal(df, floatEq)).To(BeTrue())
			Expect(df2.SetValue(0, "year", 0)).To(Succeed())
			Expect(df2.Equal(df, floatEq)).To(BeFalse())
			val, _ := df.Value(0, "year")
			Expect(val).To(Equal(2015.0))
		})

		Describe("expand", func() {
			It("adds zero filled rows and columns", func() {
				bigger, err := df.Expand(1, "profit")
				Expect(err).To(BeNil())
				Expect(bigger.RowCount()).To(Equal(3))
				Expect(bigger.ColumnCount()).To(Equal(4))
				Expect(bigger.ColumnNames()).To(Equal([]string{"year", "revenue", "costs", "profit"}))

				lastRow, err := bigger.Row(2)
				Expect(err).To(BeNil())
				Expect(lastRow.Values()).To(Equal([]float64{0, 0, 0, 0}))

				profit, err := bigger.Column("profit")
				Expect(err).To(BeNil())
				Expect(profit.Values()).To(Equal([]float64{0, 0, 0}))

				revenue, err := bigger.Value(1, "revenue")
				Expect(err).To(BeNil())
				Expect(revenue).To(Equal(67008.12))
			})

			It("uses the frame default for new cells", func() {
				df2, err := dataframe.New([]string{"a"}, [][]string{{"x"}}, dataframe.WithDefault("n/a"))
				Expect(err).To(BeNil())
				bigger, err := df2.Expand(1, "b")
				Expect(err).To(BeNil())
				a, err := bigger.Column("a")
				Expect(err).To(BeNil())
				Expect(a.Values()).To(Equal([]string{"x", "n/a"}))
				b, err := bigger.Column("b")
				Expect(err).To(BeNil())
				Expect(b.Values()).To(Equal([]string{"n/a", "n/a"}))
				Expect(bigger.Default()).To(Equal("n/a"))
			})

			It("is the identity with no additions", func() {
				same, err := df.Expand(0)
				Expect(err).To(BeNil())
				Expect(same.Equal(df, floatEq)).To(BeTrue())
			})

			It("does not share storage with the source", func() {
				bigger, err := df.Expand(1, "profit")
				Expect(err).To(BeNil())
				Expect(bigger.SetValue(1, "costs", 0)).To(Succeed())
				costs, _ := df.Value(1, "costs")
				Expect(costs).To(Equal(108632.80))
			})

			It("rejects a negative row count", func() {
				_, err := df.Expand(-1)
				Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
			})

			It("rejects colliding column names", func() {
				_, err := df.Expand(0, "costs")
				Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
				Expect(err).To(MatchError(dataframe.ErrDuplicateName))
			})

			It("rejects duplicated new column names", func() {
				_, err := df.Expand(0, "profit", "profit")
				Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
			})
		})

		Describe("project", func() {
			It("keeps the requested columns in their original order", func() {
				smaller := df.Project("costs", "year")
				Expect(smaller.ColumnNames()).To(Equal([]string{"year", "costs"}))
				Expect(smaller.RowCount()).To(Equal(2))
				costs, err := smaller.Value(1, "costs")
				Expect(err).To(BeNil())
				Expect(costs).To(Equal(108632.80))
			})

			It("ignores unknown columns", func() {
				smaller := df.Project("year", "profit")
				Expect(smaller.ColumnNames()).To(Equal([]string{"year"}))
			})

			It("keeps the row count when no columns are retained", func() {
				empty := df.Project()
				Expect(empty.ColumnCount()).To(Equal(0))
				Expect(empty.RowCount()).To(Equal(2))
			})

			It("is idempotent", func() {
				once := df.Project("year", "costs")
				twice := once.Project("year", "costs")
				Expect(twice.Equal(once, floatEq)).To(BeTrue())
			})

			It("does not share storage with the source", func() {
				smaller := df.Project("year", "costs")
				Expect(smaller.SetValue(1, "costs", 0)).To(Succeed())
				costs, _ := df.Value(1, "costs")
				Expect(costs).To(Equal(108632.80))
			})
		})

		Describe("select", func() {
			It("keeps the rows accepted by the predicate", func() {
				smaller := df.Select(func(row dataframe.RowView[float64]) bool {
					year, err := row.Value("year")
					Expect(err).To(BeNil())
					return year != 2016
				})
				Expect(smaller.RowCount()).To(Equal(1))
				Expect(smaller.ColumnNames()).To(Equal([]string{"year", "revenue", "costs"}))
				row, err := smaller.Row(0)
				Expect(err).To(BeNil())
				Expect(row.Values()).To(Equal([]float64{2015, 70021.35, 25071.12}))
			})

			It("calls the predicate once per row in order", func() {
				seen := []string{}
				df.Select(func(row dataframe.RowView[float64]) bool {
					seen = append(seen, row.Name())
					return true
				})
				Expect(seen).To(Equal([]string{"row_0", "row_1"}))
			})

			It("does not share storage with the source", func() {
				all := df.Select(func(dataframe.RowView[float64]) bool { return true })
				Expect(all.SetValue(1, "costs", 0)).To(Succeed())
				costs, _ := df.Value(1, "costs")
				Expect(costs).To(Equal(108632.80))
			})
		})

		Describe("concat", func() {
			var (
				other *dataframe.DataFrame[float64]
			)

			BeforeEach(func() {
				var err error
				other, err = dataframe.New([]string{"tax", "staff"}, [][]float64{{10, 3}, {20, 4}})
				Expect(err).To(BeNil())
			})

			It("appends the columns of the other frame", func() {
				res, err := df.Concat(other)
				Expect(err).To(BeNil())
				Expect(res.ColumnCount()).To(Equal(df.ColumnCount() + other.ColumnCount()))
				Expect(res.ColumnNames()).To(Equal([]string{"year", "revenue", "costs", "tax", "staff"}))
				for rowIdx := 0; rowIdx < other.RowCount(); rowIdx++ {
					for _, name := range other.ColumnNames() {
						expected, _ := other.Value(rowIdx, name)
						actual, err := res.Value(rowIdx, name)
						Expect(err).To(BeNil())
						Expect(actual).To(Equal(expected))
					}
				}
			})

			It("fails when the row counts differ", func() {
				shorter := other.Select(func(row dataframe.RowView[float64]) bool { return row.Row() == 0 })
				_, err := df.Concat(shorter)
				Expect(err).To(MatchError(dataframe.ErrRowCountMismatch))
			})

			It("fails when column names collide", func() {
				_, err := df.Concat(df.Project("costs"))
				Expect(err).To(MatchError(dataframe.ErrDuplicateName))
			})
		})

		It("leaves the source untouched after every transform", func() {
			before := df.Copy()

			_, err := df.Expand(3, "x")
			Expect(err).To(BeNil())
			df.Project("year")
			df.Select(func(dataframe.RowView[float64]) bool { return false })
			_, err = df.ComputeColumn("x", func(dataframe.RowView[float64]) float64 { return 1 })
			Expect(err).To(BeNil())
			other, _ := dataframe.Zeros[float64](2, []string{"y"})
			_, err = df.Concat(other)
			Expect(err).To(BeNil())

			Expect(df.Equal(before, floatEq)).To(BeTrue())
		})

		It("appends rows of a frame with the same columns", func() {
			res, err := df.Append(df)
			Expect(err).To(BeNil())
			Expect(res.RowCount()).To(Equal(4))
			year, err := res.Value(2, "year")
			Expect(err).To(BeNil())
			Expect(year).To(Equal(2015.0))
			Expect(df.RowCount()).To(Equal(2))
		})

		It("refuses to append frames with different columns", func() {
			_, err := df.Append(df.Project("year"))
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})

		It("splits columns into two frames", func() {
			one, two := df.Split("costs")
			Expect(one.ColumnNames()).To(Equal([]string{"costs"}))
			Expect(two.ColumnNames()).To(Equal([]string{"year", "revenue"}))
			Expect(two.RowCount()).To(Equal(2))
		})

		It("breaks out into single column frames", func() {
			dfMap := df.Breakout()
			Expect(dfMap.Keys()).To(Equal([]string{"costs", "revenue", "year"}))
			year := dfMap["year"]
			Expect(year.ColumnNames()).To(Equal([]string{"year"}))
			Expect(year.SetValue(0, "year", 0)).To(Succeed())
			val, _ := df.Value(0, "year")
			Expect(val).To(Equal(2015.0))
		})
	})
})

// Copyright 2021-2022
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

package random_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/random"
)

func sameFloats(a, b float64) bool {
	return a == b
}

var _ = Describe("Generator", func() {
	DescribeTable("produces the requested shape", func(gen random.Generator) {
		df, err := gen.Generate(12345, 10, []string{"a", "b"})
		Expect(err).To(BeNil())
		Expect(df.RowCount()).To(Equal(10))
		Expect(df.ColumnNames()).To(Equal([]string{"a", "b"}))
	},
		Entry("uniform", random.Uniform(10, 20)),
		Entry("gaussian", random.Gaussian(0, 1)),
		Entry("exponential", random.Exponential(5)),
	)

	DescribeTable("is reproducible for a seed", func(gen random.Generator) {
		df1, err := gen.Generate(54321, 25, []string{"x"})
		Expect(err).To(BeNil())
		df2, err := gen.Generate(54321, 25, []string{"x"})
		Expect(err).To(BeNil())
		Expect(df1.Equal(df2, sameFloats)).To(BeTrue())

		df3, err := gen.Generate(1337, 25, []string{"x"})
		Expect(err).To(BeNil())
		Expect(df1.Equal(df3, sameFloats)).To(BeFalse())
	},
		Entry("uniform", random.Uniform(10, 20)),
		Entry("gaussian", random.Gaussian(0, 1)),
		Entry("exponential", random.Exponential(5)),
	)

	It("keeps uniform samples within bounds", func() {
		df, err := random.Uniform(10, 20).Generate(1, 200, []string{"u"})
		Expect(err).To(BeNil())
		for _, row := range df.Rows() {
			val, _ := row.Value("u")
			Expect(val).To(BeNumerically(">=", 10))
			Expect(val).To(BeNumerically("<", 20))
		}
	})

	It("keeps exponential samples positive", func() {
		df, err := random.Exponential(2).Generate(7, 200, []string{"e"})
		Expect(err).To(BeNil())
		mins := df.Summarize("min", dataframe.Min[float64])
		Expect(mins.Values()[0]).To(BeNumerically(">=", 0))
	})

	It("does not share state between generators", func() {
		gen := random.Gaussian(0, 1)
		first, err := gen.Generate(99, 5, []string{"g"})
		Expect(err).To(BeNil())
		_, err = random.Gaussian(0, 1).Generate(1, 50, []string{"g"})
		Expect(err).To(BeNil())
		again, err := gen.Generate(99, 5, []string{"g"})
		Expect(err).To(BeNil())
		Expect(again.Equal(first, sameFloats)).To(BeTrue())
	})

	DescribeTable("rejects invalid configuration", func(gen random.Generator, rows int, names []string, expected error) {
		_, err := gen.Generate(1, rows, names)
		Expect(err).To(MatchError(expected))
	},
		Entry("inverted uniform bounds", random.Uniform(20, 10), 1, []string{"a"}, dataframe.ErrInvalidArgument),
		Entry("zero standard deviation", random.Gaussian(0, 0), 1, []string{"a"}, dataframe.ErrInvalidArgument),
		Entry("negative rate", random.Exponential(-1), 1, []string{"a"}, dataframe.ErrInvalidArgument),
		Entry("negative rows", random.Uniform(0, 1), -1, []string{"a"}, dataframe.ErrInvalidArgument),
		Entry("duplicate names", random.Uniform(0, 1), 1, []string{"a", "a"}, dataframe.ErrDuplicateName),
	)

	Describe("FromParams", func() {
		It("builds generators by name", func() {
			gen, err := random.FromParams("Gaussian", []float64{1, 2})
			Expect(err).To(BeNil())
			Expect(gen.Distribution()).To(Equal(random.GaussianDist))
			Expect(gen.Params()).To(Equal([]float64{1, 2}))
		})

		It("rejects unknown distributions", func() {
			_, err := random.FromParams("poisson", []float64{1})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})

		It("rejects the wrong number of parameters", func() {
			_, err := random.FromParams(random.ExponentialDist, []float64{1, 2})
			Expect(err).To(MatchError(dataframe.ErrInvalidArgument))
		})
	})
})

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

package dataframe

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Row labels of the frame returned by Describe
var DescribeStats = []string{"count", "mean", "std", "min", "max"}

// Describe computes summary statistics for every column of df. The result has
// the same columns as df and one row per entry in DescribeStats. Columns
// without rows report a count of 0 and NaN for everything else; std is the
// sample standard deviation and is NaN for a single row.
func Describe(df *DataFrame[float64]) *DataFrame[float64] {
	vals := make([][]float64, len(df.vals))
	for colIdx, col := range df.vals {
		if len(col) == 0 {
			vals[colIdx] = []float64{0, math.NaN(), math.NaN(), math.NaN(), math.NaN()}
			continue
		}

		mean, std := stat.MeanStdDev(col, nil)
		vals[colIdx] = []float64{
			float64(len(col)),
			mean,
			std,
			floats.Min(col),
			floats.Max(col),
		}
	}

	res, _ := df.derive(df.index.list(), vals, len(DescribeStats))
	return res
}

// Mean returns the arithmetic mean of each column as a vector named "mean".
// Columns without rows yield NaN.
func Mean(df *DataFrame[float64]) ColumnView[float64] {
	means := make([]float64, len(df.vals))
	for colIdx, col := range df.vals {
		if len(col) == 0 {
			means[colIdx] = math.NaN()
			continue
		}
		means[colIdx] = stat.Mean(col, nil)
	}

	return ColumnView[float64]{
		snapshot: snapshot[float64]{entries: df.index.clone(), vals: means},
		name:     "mean",
	}
}

// Total returns the sum of each column as a vector named "sum"
func Total(df *DataFrame[float64]) ColumnView[float64] {
	sums := make([]float64, len(df.vals))
	for colIdx, col := range df.vals {
		sums[colIdx] = floats.Sum(col)
	}

	return ColumnView[float64]{
		snapshot: snapshot[float64]{entries: df.index.clone(), vals: sums},
		name:     "sum",
	}
}

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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any value type the built-in reducers can operate on
type Number interface {
	constraints.Integer | constraints.Float
}

// ComputeColumn returns a new dataframe with one additional column, name,
// whose value in each row is lambda applied to that row. Rows are visited
// in order.
func (df *DataFrame[E]) ComputeColumn(name string, lambda func(RowView[E]) E) (*DataFrame[E], error) {
	if df.index.Contains(name) {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidArgument, ErrDuplicateName, name)
	}

	res, err := df.Expand(0, name)
	if err != nil {
		return nil, err
	}

	newCol := res.vals[len(res.vals)-1]
	for rowIdx := 0; rowIdx < df.rows; rowIdx++ {
		newCol[rowIdx] = lambda(df.row(rowIdx))
	}

	return res, nil
}

// Summarize reduces every column to a single value with reduce, folding from
// the top row down: reduce(reduce(v0, v1), v2)... A column with a single row
// yields that row's value and a column with no rows yields the frame's
// default value. The result is a vector named name keyed by column name.
func (df *DataFrame[E]) Summarize(name string, reduce func(acc, val E) E) ColumnView[E] {
	res := make([]E, len(df.vals))
	for colIdx, col := range df.vals {
		if len(col) == 0 {
			res[colIdx] = df.fill
			continue
		}

		acc := col[0]
		for _, val := range col[1:] {
			acc = reduce(acc, val)
		}
		res[colIdx] = acc
	}

	return ColumnView[E]{
		snapshot: snapshot[E]{entries: df.index.clone(), vals: res},
		name:     name,
	}
}

// Sum adds two values; use with Summarize to total each column
func Sum[E Number](a, b E) E {
	return a + b
}

// Product multiplies two values
func Product[E Number](a, b E) E {
	return a * b
}

// Max returns the larger of two values
func Max[E Number](a, b E) E {
	if b > a {
		return b
	}
	return a
}

// Min returns the smaller of two values
func Min[E Number](a, b E) E {
	if b < a {
		return b
	}
	return a
}

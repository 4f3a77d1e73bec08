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
	"errors"
	"strconv"
)

// DataFrame stores a table of values with named columns. Values are stored
// column major - e.g.,
// year  revenue
// 2015  70021.35
// 2016  67008.12
//
// vals[0][1] = 2016
// vals[1][0] = 70021.35
//
// The number of rows is tracked separately so a frame without columns still
// knows how many rows it has.
//
// The zero value is an empty frame with no rows and no columns.
type DataFrame[E any] struct {
	index *NameIndex
	vals  [][]E
	rows  int
	fill  E
}

// Option configures a DataFrame at construction time
type Option[E any] func(*DataFrame[E])

// WithDefault sets the value used for newly introduced cells in Expand and
// for Summarize over a column with no rows. Without it the zero value of E is
// used.
func WithDefault[E any](val E) Option[E] {
	return func(df *DataFrame[E]) {
		df.fill = val
	}
}

// DefaultFormatWidth is the number of characters used for a single column
// by Print
const DefaultFormatWidth = 12

const rowPrefix = "row_"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrUnknownColumn    = errors.New("unknown column")
	ErrRowIndex         = errors.New("row index out of range")
	ErrRowCountMismatch = errors.New("row counts do not match")
	ErrUnknownEntry     = errors.New("unknown entry")
	ErrDuplicateName    = errors.New("duplicate name")
)

// RowName returns the synthetic name used for row idx, e.g. row_3
func RowName(idx int) string {
	return rowPrefix + strconv.Itoa(idx)
}

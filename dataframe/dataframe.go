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

package dataframe

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog/log"
)

// New creates a dataframe from a list of column names and a row major matrix
// of values. Every row must have exactly one value per column. The matrix is
// copied, the caller keeps ownership of rows.
func New[E any](names []string, rows [][]E, opts ...Option[E]) (*DataFrame[E], error) {
	index, err := NewNameIndex(names)
	if err != nil {
		return nil, err
	}

	vals := make([][]E, index.Len())
	for colIdx := range vals {
		vals[colIdx] = make([]E, len(rows))
	}

	for rowIdx, row := range rows {
		if len(row) != index.Len() {
			return nil, fmt.Errorf("%w: row %d has %d values, expected %d", ErrInvalidArgument, rowIdx, len(row), index.Len())
		}
		for colIdx, val := range row {
			vals[colIdx][rowIdx] = val
		}
	}

	df := &DataFrame[E]{
		index: index,
		vals:  vals,
		rows:  len(rows),
	}

	for _, opt := range opts {
		opt(df)
	}

	return df, nil
}

// FromColumns creates a dataframe from a list of column names and one slice
// of values per column. All columns must have the same length. The slices
// are copied.
func FromColumns[E any](names []string, cols [][]E, opts ...Option[E]) (*DataFrame[E], error) {
	index, err := NewNameIndex(names)
	if err != nil {
		return nil, err
	}

	if len(cols) != index.Len() {
		return nil, fmt.Errorf("%w: %d columns named but %d given", ErrInvalidArgument, index.Len(), len(cols))
	}

	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0])
	}

	vals := make([][]E, len(cols))
	for colIdx, col := range cols {
		if len(col) != rows {
			return nil, fmt.Errorf("%w: column %q has %d values, expected %d", ErrInvalidArgument, names[colIdx], len(col), rows)
		}
		vals[colIdx] = make([]E, rows)
		copy(vals[colIdx], col)
	}

	df := &DataFrame[E]{
		index: index,
		vals:  vals,
		rows:  rows,
	}

	for _, opt := range opts {
		opt(df)
	}

	return df, nil
}

// Zeros creates a dataframe with the requested shape where every cell holds
// the frame's default value
func Zeros[E any](rows int, names []string, opts ...Option[E]) (*DataFrame[E], error) {
	if rows < 0 {
		return nil, fmt.Errorf("%w: row count must be >= 0, got %d", ErrInvalidArgument, rows)
	}

	index, err := NewNameIndex(names)
	if err != nil {
		return nil, err
	}

	df := &DataFrame[E]{
		index: index,
		rows:  rows,
	}

	for _, opt := range opts {
		opt(df)
	}

	df.vals = make([][]E, index.Len())
	for colIdx := range df.vals {
		df.vals[colIdx] = filled(rows, df.fill)
	}

	return df, nil
}

// derive builds a new frame that shares no storage with df but keeps its
// default value
func (df *DataFrame[E]) derive(names []string, vals [][]E, rows int) (*DataFrame[E], error) {
	index, err := NewNameIndex(names)
	if err != nil {
		return nil, err
	}

	return &DataFrame[E]{
		index: index,
		vals:  vals,
		rows:  rows,
		fill:  df.fill,
	}, nil
}

func filled[E any](n int, val E) []E {
	col := make([]E, n)
	for idx := range col {
		col[idx] = val
	}
	return col
}

// All returns an iterator over every row as a RowView. The iterator may be
// used any number of times; each pass reads the frame as it is at that time.
func (df *DataFrame[E]) All() iter.Seq2[int, RowView[E]] {
	return func(yield func(int, RowView[E]) bool) {
		for rowIdx := 0; rowIdx < df.rows; rowIdx++ {
			if !yield(rowIdx, df.row(rowIdx)) {
				return
			}
		}
	}
}

// Append returns a new dataframe with the rows of other added below the rows
// of df. Both frames must have the same column names in the same order.
func (df *DataFrame[E]) Append(other *DataFrame[E]) (*DataFrame[E], error) {
	if df.index.Len() != other.index.Len() {
		return nil, fmt.Errorf("%w: cannot append %d columns to %d columns", ErrInvalidArgument, other.index.Len(), df.index.Len())
	}

	for colIdx, name := range df.index.list() {
		if other.index.list()[colIdx] != name {
			return nil, fmt.Errorf("%w: column %d is %q, expected %q", ErrInvalidArgument, colIdx, other.index.list()[colIdx], name)
		}
	}

	vals := make([][]E, len(df.vals))
	for colIdx := range vals {
		vals[colIdx] = make([]E, 0, df.rows+other.rows)
		vals[colIdx] = append(vals[colIdx], df.vals[colIdx]...)
		vals[colIdx] = append(vals[colIdx], other.vals[colIdx]...)
	}

	return &DataFrame[E]{
		index: df.index.clone(),
		vals:  vals,
		rows:  df.rows + other.rows,
		fill:  df.fill,
	}, nil
}

// Breakout takes a dataframe with multiple columns and returns a map of dataframes, one per column
func (df *DataFrame[E]) Breakout() Map[E] {
	dfMap := make(Map[E], len(df.vals))
	for colIdx, name := range df.index.list() {
		col := make([]E, df.rows)
		copy(col, df.vals[colIdx])
		dfMap[name] = &DataFrame[E]{
			index: &NameIndex{names: []string{name}, pos: map[string]int{name: 0}},
			vals:  [][]E{col},
			rows:  df.rows,
			fill:  df.fill,
		}
	}
	return dfMap
}

// Column returns a snapshot of the column called name
func (df *DataFrame[E]) Column(name string) (ColumnView[E], error) {
	colIdx, err := df.index.Position(name)
	if err != nil {
		return ColumnView[E]{}, err
	}
	return df.column(colIdx), nil
}

func (df *DataFrame[E]) column(colIdx int) ColumnView[E] {
	names := make([]string, df.rows)
	for rowIdx := range names {
		names[rowIdx] = RowName(rowIdx)
	}

	// row names are generated so they can never collide
	entries, _ := NewNameIndex(names)
	vals := make([]E, df.rows)
	copy(vals, df.vals[colIdx])

	return ColumnView[E]{
		snapshot: snapshot[E]{entries: entries, vals: vals},
		name:     df.index.list()[colIdx],
	}
}

// ColumnCount returns the number of columns in the dataframe
func (df *DataFrame[E]) ColumnCount() int {
	return df.index.Len()
}

// ColumnNames returns the names of the columns in order
func (df *DataFrame[E]) ColumnNames() []string {
	return df.index.Names()
}

// Columns returns a snapshot of every column in order
func (df *DataFrame[E]) Columns() []ColumnView[E] {
	cols := make([]ColumnView[E], len(df.vals))
	for colIdx := range df.vals {
		cols[colIdx] = df.column(colIdx)
	}
	return cols
}

// Concat returns a new dataframe holding the columns of df followed by the
// columns of other. Both frames must have the same number of rows and no
// column names in common.
func (df *DataFrame[E]) Concat(other *DataFrame[E]) (*DataFrame[E], error) {
	if df.rows != other.rows {
		return nil, fmt.Errorf("%w: cannot concatenate %d rows with %d rows", ErrRowCountMismatch, df.rows, other.rows)
	}

	expanded, err := df.Expand(0, other.index.list()...)
	if err != nil {
		return nil, err
	}

	for otherIdx, name := range other.index.list() {
		colIdx := expanded.index.pos[name]
		copy(expanded.vals[colIdx], other.vals[otherIdx])
	}

	return expanded, nil
}

// Copy creates a copy of the dataframe
func (df *DataFrame[E]) Copy() *DataFrame[E] {
	vals := make([][]E, len(df.vals))
	for colIdx := range vals {
		vals[colIdx] = make([]E, df.rows)
		copy(vals[colIdx], df.vals[colIdx])
	}

	return &DataFrame[E]{
		index: df.index.clone(),
		vals:  vals,
		rows:  df.rows,
		fill:  df.fill,
	}
}

// Default returns the value used to fill new cells
func (df *DataFrame[E]) Default() E {
	return df.fill
}

// Equal reports whether other has the same column names in the same order,
// the same number of rows and values that eq considers equal
func (df *DataFrame[E]) Equal(other *DataFrame[E], eq func(a, b E) bool) bool {
	if df.rows != other.rows || df.index.Len() != other.index.Len() {
		return false
	}

	for colIdx, name := range df.index.list() {
		if other.index.list()[colIdx] != name {
			return false
		}
		for rowIdx, val := range df.vals[colIdx] {
			if !eq(val, other.vals[colIdx][rowIdx]) {
				return false
			}
		}
	}

	return true
}

// Expand returns a larger copy of the dataframe with additionalRows rows added
// to the bottom and newCols appended to the right. Every newly introduced cell
// holds the frame's default value.
func (df *DataFrame[E]) Expand(additionalRows int, newCols ...string) (*DataFrame[E], error) {
	if additionalRows < 0 {
		return nil, fmt.Errorf("%w: additional rows must be >= 0, got %d", ErrInvalidArgument, additionalRows)
	}

	names := make([]string, 0, df.index.Len()+len(newCols))
	names = append(names, df.index.list()...)
	names = append(names, newCols...)

	rows := df.rows + additionalRows
	vals := make([][]E, len(names))
	for colIdx := range vals {
		vals[colIdx] = filled(rows, df.fill)
		if colIdx < len(df.vals) {
			copy(vals[colIdx], df.vals[colIdx])
		}
	}

	expanded, err := df.derive(names, vals, rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return expanded, nil
}

// Project returns a new dataframe that only keeps the columns named in
// retainColumns. Columns keep their original order; requested names that do
// not exist are ignored.
func (df *DataFrame[E]) Project(retainColumns ...string) *DataFrame[E] {
	retain := make(map[string]bool, len(retainColumns))
	for _, name := range retainColumns {
		if !df.index.Contains(name) {
			log.Debug().Str("Column", name).Msg("project ignoring unknown column")
			continue
		}
		retain[name] = true
	}

	names := make([]string, 0, len(retain))
	vals := make([][]E, 0, len(retain))
	for colIdx, name := range df.index.list() {
		if retain[name] {
			col := make([]E, df.rows)
			copy(col, df.vals[colIdx])
			names = append(names, name)
			vals = append(vals, col)
		}
	}

	// names are a subset of a valid index
	projected, _ := df.derive(names, vals, df.rows)
	return projected
}

// Row returns a snapshot of row rowIdx
func (df *DataFrame[E]) Row(rowIdx int) (RowView[E], error) {
	if err := df.checkRow(rowIdx); err != nil {
		return RowView[E]{}, err
	}
	return df.row(rowIdx), nil
}

func (df *DataFrame[E]) row(rowIdx int) RowView[E] {
	vals := make([]E, len(df.vals))
	for colIdx, col := range df.vals {
		vals[colIdx] = col[rowIdx]
	}

	return RowView[E]{
		snapshot: snapshot[E]{entries: df.index, vals: vals},
		row:      rowIdx,
	}
}

// RowCount returns the number of rows in the dataframe
func (df *DataFrame[E]) RowCount() int {
	return df.rows
}

// Rows returns a snapshot of every row in order
func (df *DataFrame[E]) Rows() []RowView[E] {
	rows := make([]RowView[E], df.rows)
	for rowIdx := range rows {
		rows[rowIdx] = df.row(rowIdx)
	}
	return rows
}

// Select returns a new dataframe holding, in order, the rows for which keep
// returns true. keep is called exactly once per row and should only depend on
// the values of the row it is given.
func (df *DataFrame[E]) Select(keep func(RowView[E]) bool) *DataFrame[E] {
	kept := make([]int, 0, df.rows)
	for rowIdx := 0; rowIdx < df.rows; rowIdx++ {
		if keep(df.row(rowIdx)) {
			kept = append(kept, rowIdx)
		}
	}

	vals := make([][]E, len(df.vals))
	for colIdx, col := range df.vals {
		vals[colIdx] = make([]E, len(kept))
		for newIdx, rowIdx := range kept {
			vals[colIdx][newIdx] = col[rowIdx]
		}
	}

	return &DataFrame[E]{
		index: df.index.clone(),
		vals:  vals,
		rows:  len(kept),
		fill:  df.fill,
	}
}

// SetValue stores val in row rowIdx of column name
func (df *DataFrame[E]) SetValue(rowIdx int, name string, val E) error {
	if err := df.checkRow(rowIdx); err != nil {
		return err
	}

	colIdx, err := df.index.Position(name)
	if err != nil {
		return err
	}

	df.vals[colIdx][rowIdx] = val
	return nil
}

// Split the dataframe into 2, with columns being in the first dataframe and
// all remaining columns in the second
func (df *DataFrame[E]) Split(columns ...string) (*DataFrame[E], *DataFrame[E]) {
	requested := make(map[string]bool, len(columns))
	for _, col := range columns {
		requested[col] = true
	}

	rest := make([]string, 0, df.index.Len())
	for _, name := range df.index.list() {
		if !requested[name] {
			rest = append(rest, name)
		}
	}

	return df.Project(columns...), df.Project(rest...)
}

// Value returns the value stored in row rowIdx of column name
func (df *DataFrame[E]) Value(rowIdx int, name string) (E, error) {
	var zero E

	if err := df.checkRow(rowIdx); err != nil {
		return zero, err
	}

	colIdx, err := df.index.Position(name)
	if err != nil {
		return zero, err
	}

	return df.vals[colIdx][rowIdx], nil
}

func (df *DataFrame[E]) checkRow(rowIdx int) error {
	if rowIdx < 0 || rowIdx >= df.rows {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRowIndex, rowIdx, df.rows)
	}
	return nil
}

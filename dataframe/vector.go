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
	"strings"
)

// Vector is a named, read-only snapshot of one row or one column of a
// DataFrame. Values are copied when the vector is extracted so changes made
// to the frame afterwards are not visible through it.
type Vector[E any] interface {
	// Name is row_<index> for a row and the column name for a column
	Name() string

	// EntryNames returns the names of the opposite axis in order
	EntryNames() []string

	// Value returns the entry called name
	Value(name string) (E, error)

	// Values returns all entries ordered like EntryNames
	Values() []E

	// AsMap returns the entries keyed by entry name
	AsMap() map[string]E
}

// snapshot holds the copied values and the lookup shared by both views
type snapshot[E any] struct {
	entries *NameIndex
	vals    []E
}

func (s snapshot[E]) EntryNames() []string {
	return s.entries.Names()
}

func (s snapshot[E]) Value(name string) (E, error) {
	pos, ok := s.entries.lookup(name)
	if !ok {
		var zero E
		return zero, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	return s.vals[pos], nil
}

func (s snapshot[E]) Values() []E {
	vals := make([]E, len(s.vals))
	copy(vals, s.vals)
	return vals
}

func (s snapshot[E]) AsMap() map[string]E {
	res := make(map[string]E, len(s.vals))
	for idx, name := range s.entries.list() {
		res[name] = s.vals[idx]
	}
	return res
}

// Len returns the number of entries
func (s snapshot[E]) Len() int {
	return len(s.vals)
}

// RowView is a vector extracted from a single row; entries are keyed by
// column name
type RowView[E any] struct {
	snapshot[E]
	row int
}

// Name returns row_<index>
func (v RowView[E]) Name() string {
	return RowName(v.row)
}

// Row returns the index of the row the view was taken from
func (v RowView[E]) Row() int {
	return v.row
}

// ColumnView is a vector extracted from a single column, keyed by row_<i>,
// or a per-column summary keyed by column name
type ColumnView[E any] struct {
	snapshot[E]
	name string
}

// Name returns the column (or summary) name
func (v ColumnView[E]) Name() string {
	return v.name
}

// FormatVector renders a vector as two lines: entry names then values, each
// field formatted to width characters
func FormatVector[E any](v Vector[E], width int) string {
	sb := &strings.Builder{}
	writeField(sb, v.Name(), width)
	for _, name := range v.EntryNames() {
		sb.WriteString(" ")
		writeField(sb, name, width)
	}
	sb.WriteString("\n")

	writeField(sb, "", width)
	for _, val := range v.Values() {
		sb.WriteString(" ")
		writeField(sb, formatValue(val), width)
	}
	sb.WriteString("\n")

	return sb.String()
}

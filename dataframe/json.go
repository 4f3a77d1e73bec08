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

	"github.com/goccy/go-json"
)

// Remember to update this, MarshalJSON and UnmarshalJSON when updating
// DataFrame.
type frameJSON[E any] struct {
	ColNames []string `json:"colNames"`
	Rows     int      `json:"rows"`
	Cols     [][]E    `json:"cols"`
}

// MarshalJSON serializes the dataframe column major. The default value is
// not part of the encoding.
func (df *DataFrame[E]) MarshalJSON() ([]byte, error) {
	d := frameJSON[E]{
		df.index.list(),
		df.rows,
		df.vals,
	}
	return json.Marshal(&d)
}

// UnmarshalJSON replaces the contents of df, validating names and shape
func (df *DataFrame[E]) UnmarshalJSON(data []byte) error {
	var d frameJSON[E]
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	index, err := NewNameIndex(d.ColNames)
	if err != nil {
		return err
	}

	if d.Rows < 0 {
		return fmt.Errorf("%w: row count must be >= 0, got %d", ErrInvalidArgument, d.Rows)
	}

	if len(d.Cols) != index.Len() {
		return fmt.Errorf("%w: %d columns named but %d present", ErrInvalidArgument, index.Len(), len(d.Cols))
	}

	for colIdx, col := range d.Cols {
		if len(col) != d.Rows {
			return fmt.Errorf("%w: column %q has %d values, expected %d", ErrInvalidArgument, index.names[colIdx], len(col), d.Rows)
		}
	}

	df.index = index
	df.vals = d.Cols
	df.rows = d.Rows
	return nil
}

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
	"sort"

	"github.com/rs/zerolog/log"
)

// Map holds a set of named dataframes, e.g. the result of Breakout
type Map[E any] map[string]*DataFrame[E]

// Keys returns the names in the map in sorted order
func (dfMap Map[E]) Keys() []string {
	keys := make([]string, 0, len(dfMap))
	for k := range dfMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DataFrame concatenates every dataframe in the map, in sorted key order, into
// a single dataframe. All frames must have the same number of rows and
// distinct column names. An empty map yields an empty frame.
func (dfMap Map[E]) DataFrame() (*DataFrame[E], error) {
	var df *DataFrame[E]
	for _, k := range dfMap.Keys() {
		v := dfMap[k]
		if df == nil {
			df = v.Copy()
			continue
		}

		merged, err := df.Concat(v)
		if err != nil {
			log.Error().Err(err).Str("Key", k).Int("Rows", v.RowCount()).Int("ExpectedRows", df.RowCount()).Msg("could not merge dataframe")
			return nil, fmt.Errorf("merging %q: %w", k, err)
		}
		df = merged
	}

	if df == nil {
		return New[E](nil, nil)
	}

	return df, nil
}

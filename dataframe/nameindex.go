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

import "fmt"

// NameIndex resolves column names to their position. It is built once and
// never changed afterwards. A nil *NameIndex behaves as an empty index.
type NameIndex struct {
	names []string
	pos   map[string]int
}

// NewNameIndex builds an index over names, which must be unique
func NewNameIndex(names []string) (*NameIndex, error) {
	idx := &NameIndex{
		names: make([]string, len(names)),
		pos:   make(map[string]int, len(names)),
	}

	copy(idx.names, names)
	for ii, name := range idx.names {
		if _, ok := idx.pos[name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		idx.pos[name] = ii
	}

	return idx, nil
}

// Position returns the position of name
func (idx *NameIndex) Position(name string) (int, error) {
	if pos, ok := idx.lookup(name); ok {
		return pos, nil
	}
	return -1, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// Contains reports whether name is in the index
func (idx *NameIndex) Contains(name string) bool {
	_, ok := idx.lookup(name)
	return ok
}

// Len returns the number of names
func (idx *NameIndex) Len() int {
	return len(idx.list())
}

// Names returns a copy of the names in order
func (idx *NameIndex) Names() []string {
	names := make([]string, idx.Len())
	copy(names, idx.list())
	return names
}

// list returns the names without copying them
func (idx *NameIndex) list() []string {
	if idx == nil {
		return nil
	}
	return idx.names
}

func (idx *NameIndex) lookup(name string) (int, bool) {
	if idx == nil {
		return -1, false
	}
	pos, ok := idx.pos[name]
	return pos, ok
}

// clone builds a new index over the same names
func (idx *NameIndex) clone() *NameIndex {
	// names of an existing index are already unique
	res, _ := NewNameIndex(idx.list())
	return res
}

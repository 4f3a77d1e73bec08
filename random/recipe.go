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

package random

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
)

// Recipe describes a dataframe built from several generators. Each group
// produces its own columns and the groups are concatenated in order, e.g.
//
//	rows = 10
//
//	[[group]]
//	distribution = "uniform"
//	params = [10.0, 20.0]
//	seed = 12345
//	columns = ["uniform1", "uniform2"]
type Recipe struct {
	Rows   int     `toml:"rows"`
	Groups []Group `toml:"group"`
}

// Group is a set of columns sampled from one distribution
type Group struct {
	Distribution Distribution `toml:"distribution"`
	Params       []float64    `toml:"params"`
	Seed         uint64       `toml:"seed"`
	Columns      []string     `toml:"columns"`
}

// ParseRecipe decodes a TOML recipe
func ParseRecipe(data []byte) (*Recipe, error) {
	recipe := &Recipe{}
	if err := toml.Unmarshal(data, recipe); err != nil {
		return nil, fmt.Errorf("parse recipe: %w", err)
	}
	return recipe, nil
}

// LoadRecipe reads and decodes the TOML recipe stored at fn
func LoadRecipe(fn string) (*Recipe, error) {
	data, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	return ParseRecipe(data)
}

// Generate builds the dataframe described by the recipe
func (r *Recipe) Generate() (*dataframe.DataFrame[float64], error) {
	df, err := dataframe.Zeros[float64](r.Rows, nil)
	if err != nil {
		return nil, err
	}

	for idx, group := range r.Groups {
		gen, err := FromParams(group.Distribution, group.Params)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", idx, err)
		}

		part, err := gen.Generate(group.Seed, r.Rows, group.Columns)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", idx, err)
		}

		df, err = df.Concat(part)
		if err != nil {
			log.Error().Err(err).Int("Group", idx).Strs("Columns", group.Columns).Msg("could not add group to recipe output")
			return nil, fmt.Errorf("group %d: %w", idx, err)
		}
	}

	return df, nil
}

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

// Package random fills dataframes with values sampled from a probability
// distribution. Generators are plain values holding their own parameters;
// every call to Generate uses a fresh source seeded with the given seed, so
// the same seed always yields the same frame.
package random

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution names a supported probability distribution
type Distribution string

const (
	UniformDist     Distribution = "uniform"
	GaussianDist    Distribution = "gaussian"
	ExponentialDist Distribution = "exponential"
)

// Generator samples cells from one distribution
type Generator struct {
	dist   Distribution
	params []float64
}

type rander interface {
	Rand() float64
}

// Uniform samples uniformly from [lo, hi)
func Uniform(lo, hi float64) Generator {
	return Generator{dist: UniformDist, params: []float64{lo, hi}}
}

// Gaussian samples from a normal distribution
func Gaussian(mean, sd float64) Generator {
	return Generator{dist: GaussianDist, params: []float64{mean, sd}}
}

// Exponential samples from an exponential distribution with the given rate
// (the mean is 1/rate)
func Exponential(rate float64) Generator {
	return Generator{dist: ExponentialDist, params: []float64{rate}}
}

// FromParams builds a generator by distribution name, e.g. from a recipe or
// command line flags
func FromParams(dist Distribution, params []float64) (Generator, error) {
	want := map[Distribution]int{UniformDist: 2, GaussianDist: 2, ExponentialDist: 1}

	dist = Distribution(strings.ToLower(string(dist)))
	cnt, ok := want[dist]
	if !ok {
		return Generator{}, fmt.Errorf("%w: unknown distribution %q", dataframe.ErrInvalidArgument, dist)
	}
	if len(params) != cnt {
		return Generator{}, fmt.Errorf("%w: %s takes %d parameters, got %d", dataframe.ErrInvalidArgument, dist, cnt, len(params))
	}

	switch dist {
	case UniformDist:
		return Uniform(params[0], params[1]), nil
	case GaussianDist:
		return Gaussian(params[0], params[1]), nil
	default:
		return Exponential(params[0]), nil
	}
}

// Distribution returns the name of the distribution sampled by g
func (g Generator) Distribution() Distribution {
	return g.dist
}

// Params returns a copy of the distribution parameters
func (g Generator) Params() []float64 {
	params := make([]float64, len(g.params))
	copy(params, g.params)
	return params
}

func (g Generator) String() string {
	return fmt.Sprintf("%s%v", g.dist, g.params)
}

// Validate checks the distribution parameters
func (g Generator) Validate() error {
	switch g.dist {
	case UniformDist:
		if !(g.params[0] < g.params[1]) {
			return fmt.Errorf("%w: uniform lower bound %v must be below upper bound %v", dataframe.ErrInvalidArgument, g.params[0], g.params[1])
		}
	case GaussianDist:
		if !(g.params[1] > 0) {
			return fmt.Errorf("%w: gaussian standard deviation must be > 0, got %v", dataframe.ErrInvalidArgument, g.params[1])
		}
	case ExponentialDist:
		if !(g.params[0] > 0) {
			return fmt.Errorf("%w: exponential rate must be > 0, got %v", dataframe.ErrInvalidArgument, g.params[0])
		}
	default:
		return fmt.Errorf("%w: generator has no distribution", dataframe.ErrInvalidArgument)
	}
	return nil
}

func (g Generator) rander(src rand.Source) rander {
	switch g.dist {
	case UniformDist:
		return distuv.Uniform{Min: g.params[0], Max: g.params[1], Src: src}
	case GaussianDist:
		return distuv.Normal{Mu: g.params[0], Sigma: g.params[1], Src: src}
	default:
		return distuv.Exponential{Rate: g.params[0], Src: src}
	}
}

// Generate creates a dataframe with rows rows and one column per name, every
// cell sampled independently. Cells are drawn row by row, left to right.
func (g Generator) Generate(seed uint64, rows int, names []string) (*dataframe.DataFrame[float64], error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	if rows < 0 {
		return nil, fmt.Errorf("%w: row count must be >= 0, got %d", dataframe.ErrInvalidArgument, rows)
	}

	log.Debug().Str("Distribution", g.String()).Uint64("Seed", seed).Int("Rows", rows).Strs("Columns", names).Msg("generating dataframe")

	dist := g.rander(rand.NewPCG(seed, seed))
	data := make([][]float64, rows)
	for rowIdx := range data {
		data[rowIdx] = make([]float64, len(names))
		for colIdx := range data[rowIdx] {
			data[rowIdx][colIdx] = dist.Rand()
		}
	}

	return dataframe.New(names, data)
}

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

package cmd

import (
	"context"
	"time"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/fileio"
	"github.com/penny-vault/pvframe/random"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	generateRecipe  string
	generateDist    string
	generateParams  []float64
	generateSeed    uint64
	generateRows    int
	generateColumns []string
	generateOut     string
)

func init() {
	generateCmd.Flags().StringVar(&generateRecipe, "recipe", "", "TOML recipe describing groups of columns to generate")
	generateCmd.Flags().StringVar(&generateDist, "dist", string(random.UniformDist), "Distribution to sample: uniform, gaussian or exponential")
	generateCmd.Flags().Float64SliceVar(&generateParams, "params", []float64{0, 1}, "Distribution parameters (lo,hi | mean,sd | rate)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Random seed; 0 picks one from the clock")
	generateCmd.Flags().IntVar(&generateRows, "rows", 10, "Number of rows")
	generateCmd.Flags().StringSliceVar(&generateColumns, "columns", []string{"value"}, "Column names")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Save the frame to this file instead of printing it")

	rootCmd.AddCommand(generateCmd)
}

// generateFrame builds a frame from a recipe file or from the distribution
// flags
func generateFrame() (*dataframe.DataFrame[float64], error) {
	if generateRecipe != "" {
		recipe, err := random.LoadRecipe(generateRecipe)
		if err != nil {
			return nil, err
		}
		return recipe.Generate()
	}

	gen, err := random.FromParams(random.Distribution(generateDist), generateParams)
	if err != nil {
		return nil, err
	}

	seed := generateSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
		log.Info().Uint64("Seed", seed).Msg("no seed given, using the clock")
	}

	return gen.Generate(seed, generateRows, generateColumns)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a frame of random values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		df, err := generateFrame()
		if err != nil {
			log.Error().Stack().Err(err).Msg("could not generate frame")
			return err
		}

		if generateOut == "" {
			printFrame(cmd.OutOrStdout(), df)
			return nil
		}

		if err := fileio.Save(context.Background(), generateOut, df, fileOptions()); err != nil {
			log.Error().Stack().Err(err).Str("FileName", generateOut).Msg("could not save frame")
			return err
		}

		log.Info().Str("FileName", generateOut).Int("Rows", df.RowCount()).Int("Columns", df.ColumnCount()).Msg("saved frame")
		return nil
	},
}

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
	"fmt"
	"strings"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/fileio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	summarizeOp   string
	summarizeName string
)

func init() {
	summarizeCmd.Flags().StringVar(&summarizeOp, "op", "sum", "Reduction to apply to every column: sum, product, max, min, mean or total")
	summarizeCmd.Flags().StringVar(&summarizeName, "name", "", "Name of the summary (defaults to the op)")
	rootCmd.AddCommand(summarizeCmd)
}

// reducer returns the fold named by op
func reducer(op string) (func(acc, val float64) float64, error) {
	switch strings.ToLower(op) {
	case "sum":
		return dataframe.Sum[float64], nil
	case "product":
		return dataframe.Product[float64], nil
	case "max":
		return dataframe.Max[float64], nil
	case "min":
		return dataframe.Min[float64], nil
	default:
		return nil, fmt.Errorf("%w: unknown op %q", dataframe.ErrInvalidArgument, op)
	}
}

// statistics are whole-column summaries computed with gonum rather than by
// folding values pairwise
var statistics = map[string]func(*dataframe.DataFrame[float64]) dataframe.ColumnView[float64]{
	"mean":  dataframe.Mean,
	"total": dataframe.Total,
}

// renamed replaces the name of a summary vector
type renamed struct {
	dataframe.Vector[float64]
	name string
}

func (r renamed) Name() string {
	return r.name
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Reduce every column of a frame to a single value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		op := strings.ToLower(summarizeOp)
		stat, isStat := statistics[op]
		var reduce func(acc, val float64) float64
		if !isStat {
			var err error
			if reduce, err = reducer(op); err != nil {
				return err
			}
		}

		df, err := fileio.Load(context.Background(), args[0], fileOptions())
		if err != nil {
			log.Error().Stack().Err(err).Str("FileName", args[0]).Msg("could not load frame")
			return err
		}

		var summary dataframe.Vector[float64]
		if isStat {
			summary = stat(df)
		} else {
			summary = df.Summarize(op, reduce)
		}

		name := summarizeName
		if name == "" {
			name = op
		}
		if summary.Name() != name {
			summary = renamed{Vector: summary, name: name}
		}

		fmt.Fprint(cmd.OutOrStdout(), dataframe.FormatVector(summary, viper.GetInt("format.width")))
		return nil
	},
}

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
	"io"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/dfextras"
	"github.com/penny-vault/pvframe/fileio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	showColumns  []string
	showSplit    []string
	showBreakout bool
	showDropNaN  bool
)

func init() {
	showCmd.Flags().StringSliceVar(&showColumns, "columns", nil, "Only show these columns")
	showCmd.Flags().StringSliceVar(&showSplit, "split", nil, "Show these columns and the remaining columns as two frames")
	showCmd.Flags().BoolVar(&showBreakout, "breakout", false, "Show every column as its own frame")
	showCmd.Flags().BoolVar(&showDropNaN, "drop-nan", false, "Drop rows holding NaN before printing")
	rootCmd.AddCommand(showCmd)
}

// dropNaN removes every row that holds a NaN by round tripping through a
// rocketlaunchr frame
func dropNaN(ctx context.Context, df *dataframe.DataFrame[float64]) (*dataframe.DataFrame[float64], error) {
	cleaned, err := dfextras.DropNA(ctx, dfextras.ToRocket(df))
	if err != nil {
		return nil, err
	}
	return dfextras.FromRocket(ctx, cleaned)
}

// printSections prints each named frame under a "== name" heading
func printSections(out io.Writer, names []string, frames map[string]*dataframe.DataFrame[float64]) {
	for idx, name := range names {
		if idx > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintf(out, "== %s\n", name)
		printFrame(out, frames[name])
	}
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print the frame stored in a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		df, err := fileio.Load(ctx, args[0], fileOptions())
		if err != nil {
			log.Error().Stack().Err(err).Str("FileName", args[0]).Msg("could not load frame")
			return err
		}

		if showDropNaN && df.ColumnCount() > 0 {
			before := df.RowCount()
			if df, err = dropNaN(ctx, df); err != nil {
				log.Error().Stack().Err(err).Msg("could not drop NaN rows")
				return err
			}
			log.Info().Int("Dropped", before-df.RowCount()).Msg("dropped rows holding NaN")
		}

		if len(showColumns) > 0 {
			df = df.Project(showColumns...)
		}

		out := cmd.OutOrStdout()
		switch {
		case showBreakout:
			frames := df.Breakout()
			printSections(out, frames.Keys(), frames)
		case len(showSplit) > 0:
			selected, rest := df.Split(showSplit...)
			printSections(out, []string{"selected", "rest"}, map[string]*dataframe.DataFrame[float64]{
				"selected": selected,
				"rest":     rest,
			})
		default:
			printFrame(out, df)
		}
		return nil
	},
}

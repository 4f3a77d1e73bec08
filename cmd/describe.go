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
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/fileio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(describeCmd)
}

// writeDescription prints the rows of a Describe result labeled by statistic
func writeDescription(out io.Writer, stats *dataframe.DataFrame[float64]) {
	width := viper.GetInt("format.width")
	if viper.GetBool("format.table") {
		table := tablewriter.NewWriter(out)
		table.SetHeader(append([]string{"Stat"}, stats.ColumnNames()...))
		table.SetBorder(false)
		for rowIdx, row := range stats.All() {
			line := []string{dataframe.DescribeStats[rowIdx]}
			for _, val := range row.Values() {
				line = append(line, fmt.Sprintf("%.4f", val))
			}
			table.Append(line)
		}
		table.Render()
		return
	}

	sb := &strings.Builder{}
	fmt.Fprintf(sb, "%-*s", width, "")
	for _, name := range stats.ColumnNames() {
		fmt.Fprintf(sb, " %-*.*s", width, width, name)
	}
	sb.WriteString("\n")
	for rowIdx, row := range stats.All() {
		fmt.Fprintf(sb, "%-*.*s", width, width, dataframe.DescribeStats[rowIdx])
		for _, val := range row.Values() {
			fmt.Fprintf(sb, " %-*.*s", width, width, fmt.Sprint(val))
		}
		sb.WriteString("\n")
	}
	fmt.Fprint(out, sb.String())
}

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Print count, mean, std, min and max of every column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := fileio.Load(context.Background(), args[0], fileOptions())
		if err != nil {
			log.Error().Stack().Err(err).Str("FileName", args[0]).Msg("could not load frame")
			return err
		}

		writeDescription(cmd.OutOrStdout(), dataframe.Describe(df))
		return nil
	},
}

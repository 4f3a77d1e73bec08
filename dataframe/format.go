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
	"strings"

	"github.com/olekukonko/tablewriter"
)

// FormatMatrix renders the dataframe as fixed width text. The first line
// holds the column names, every following line is labeled row_<i> and holds
// that row's values. Each field is padded or truncated to width characters
// and fields are separated by a single space.
func (df *DataFrame[E]) FormatMatrix(width int) string {
	sb := &strings.Builder{}

	writeField(sb, "", width)
	for _, name := range df.index.list() {
		sb.WriteString(" ")
		writeField(sb, name, width)
	}
	sb.WriteString("\n")

	for rowIdx := 0; rowIdx < df.rows; rowIdx++ {
		writeField(sb, RowName(rowIdx), width)
		for _, col := range df.vals {
			sb.WriteString(" ")
			writeField(sb, formatValue(col[rowIdx]), width)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Print writes the dataframe to stdout using DefaultFormatWidth
func (df *DataFrame[E]) Print() {
	fmt.Print(df.FormatMatrix(DefaultFormatWidth))
}

// Table prints an ASCII formatted table
func (df *DataFrame[E]) Table() string {
	if df.rows == 0 {
		return "<NO DATA>" // nothing to do as there is no data available in the dataframe
	}

	// construct table header
	tableCols := append([]string{"Row"}, df.index.list()...)

	// initialize table
	s := &strings.Builder{}
	table := tablewriter.NewWriter(s)
	table.SetHeader(tableCols)
	footer := make([]string, len(tableCols))
	footer[0] = "Num Rows"
	if len(footer) > 1 {
		footer[1] = fmt.Sprintf("%d", df.rows)
	}
	table.SetFooter(footer)
	table.SetBorder(false) // Set Border to false

	for rowIdx := 0; rowIdx < df.rows; rowIdx++ {
		row := make([]string, 0, len(df.vals)+1)
		row = append(row, RowName(rowIdx))
		for _, col := range df.vals {
			row = append(row, tableValue(col[rowIdx]))
		}
		table.Append(row)
	}

	table.Render()
	return s.String()
}

func writeField(sb *strings.Builder, s string, width int) {
	fmt.Fprintf(sb, "%-*.*s", width, width, s)
}

func formatValue(val any) string {
	return fmt.Sprint(val)
}

func tableValue(val any) string {
	switch v := val.(type) {
	case float64:
		return fmt.Sprintf("%.4f", v)
	case float32:
		return fmt.Sprintf("%.4f", v)
	default:
		return fmt.Sprint(v)
	}
}

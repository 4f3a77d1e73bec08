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

package fileio

import (
	"fmt"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
	"github.com/tealeg/xlsx/v3"
)

// DefaultSheet is the name of the sheet written by WriteXLSX when none is
// given
const DefaultSheet = "Sheet1"

// WriteXLSX saves df to an Excel workbook with a single sheet. The first row
// of the sheet holds the column names, each following row one frame row.
func WriteXLSX(fn string, sheetName string, df *dataframe.DataFrame[float64]) error {
	if sheetName == "" {
		sheetName = DefaultSheet
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("adding sheet %q: %w", sheetName, err)
	}

	header := sheet.AddRow()
	for _, name := range df.ColumnNames() {
		header.AddCell().SetString(name)
	}

	for _, row := range df.All() {
		xlRow := sheet.AddRow()
		for _, val := range row.Values() {
			xlRow.AddCell().SetFloat(val)
		}
	}

	if err := file.Save(fn); err != nil {
		log.Error().Err(err).Str("FileName", fn).Msg("could not save workbook")
		return err
	}

	log.Debug().Str("FileName", fn).Int("Rows", df.RowCount()).Int("Columns", df.ColumnCount()).Msg("wrote workbook")
	return nil
}

// ReadXLSX loads the first sheet of an Excel workbook. The first row is read
// as column names and every following row as values.
func ReadXLSX(fn string) (*dataframe.DataFrame[float64], error) {
	file, err := xlsx.OpenFile(fn)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", fn, err)
	}

	if len(file.Sheets) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWorkbook, fn)
	}

	sheet := file.Sheets[0]
	if sheet.MaxRow == 0 {
		return dataframe.New[float64](nil, nil)
	}

	names := make([]string, sheet.MaxCol)
	for colIdx := range names {
		cell, err := sheet.Cell(0, colIdx)
		if err != nil {
			return nil, fmt.Errorf("reading header cell %d: %w", colIdx, err)
		}
		names[colIdx] = cell.Value
	}

	rows := make([][]float64, 0, sheet.MaxRow-1)
	for rowIdx := 1; rowIdx < sheet.MaxRow; rowIdx++ {
		row := make([]float64, sheet.MaxCol)
		for colIdx := range row {
			cell, err := sheet.Cell(rowIdx, colIdx)
			if err != nil {
				return nil, fmt.Errorf("reading cell (%d, %d): %w", rowIdx, colIdx, err)
			}
			if cell.Value == "" {
				continue
			}
			row[colIdx], err = cell.Float()
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d, %d) in column %q: %w", dataframe.ErrInvalidArgument, rowIdx, colIdx, names[colIdx], err)
			}
		}
		rows = append(rows, row)
	}

	return dataframe.New(names, rows)
}

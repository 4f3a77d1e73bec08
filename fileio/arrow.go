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
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
)

// Schema returns an arrow schema with one float64 field per name
func Schema(names []string) *arrow.Schema {
	fields := make([]arrow.Field, len(names))
	for idx, name := range names {
		fields[idx] = arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64}
	}
	return arrow.NewSchema(fields, nil)
}

// ToRecord converts df into an arrow record. The caller must Release it.
func ToRecord(df *dataframe.DataFrame[float64]) arrow.Record {
	builder := array.NewRecordBuilder(memory.DefaultAllocator, Schema(df.ColumnNames()))
	defer builder.Release()

	for colIdx, col := range df.Columns() {
		builder.Field(colIdx).(*array.Float64Builder).AppendValues(col.Values(), nil)
	}

	return builder.NewRecord()
}

// FromRecord copies an arrow record into a new dataframe. Every column must
// be a float64 array without nulls.
func FromRecord(rec arrow.Record) (*dataframe.DataFrame[float64], error) {
	schema := rec.Schema()
	names := make([]string, rec.NumCols())
	cols := make([][]float64, rec.NumCols())

	for colIdx := range cols {
		names[colIdx] = schema.Field(colIdx).Name
		arr, ok := rec.Column(colIdx).(*array.Float64)
		if !ok {
			return nil, fmt.Errorf("%w: %q has type %s", ErrNotFloat64Column, names[colIdx], rec.Column(colIdx).DataType())
		}
		if arr.NullN() > 0 {
			return nil, fmt.Errorf("%w: column %q has %d null values", dataframe.ErrInvalidArgument, names[colIdx], arr.NullN())
		}
		cols[colIdx] = make([]float64, arr.Len())
		copy(cols[colIdx], arr.Float64Values())
	}

	return dataframe.FromColumns(names, cols)
}

// WriteIPC writes df to w as an arrow IPC stream holding a single record batch
func WriteIPC(w io.Writer, df *dataframe.DataFrame[float64]) error {
	rec := ToRecord(df)
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(rec.Schema()))
	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close writer: %w", err)
	}

	return nil
}

// ReadIPC reads every record batch of an arrow IPC stream. Batches are
// appended row-wise, in stream order.
func ReadIPC(r io.Reader) (*dataframe.DataFrame[float64], error) {
	reader, err := ipc.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Release()

	var df *dataframe.DataFrame[float64]
	batches := 0
	for reader.Next() {
		part, err := FromRecord(reader.Record())
		if err != nil {
			return nil, fmt.Errorf("batch %d: %w", batches, err)
		}

		if df == nil {
			df = part
		} else if df, err = df.Append(part); err != nil {
			return nil, fmt.Errorf("batch %d: %w", batches, err)
		}
		batches++
	}

	if reader.Err() != nil {
		return nil, reader.Err()
	}

	if df == nil {
		// stream with a schema but no batches
		return dataframe.Zeros[float64](0, fieldNames(reader.Schema()))
	}

	log.Debug().Int("Batches", batches).Int("Rows", df.RowCount()).Msg("read arrow stream")
	return df, nil
}

func fieldNames(schema *arrow.Schema) []string {
	names := make([]string, schema.NumFields())
	for idx := range names {
		names[idx] = schema.Field(idx).Name
	}
	return names
}

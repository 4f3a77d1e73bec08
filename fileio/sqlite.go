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
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"

	_ "modernc.org/sqlite"
)

// DefaultTable is the table used by Load and Save when none is configured
const DefaultTable = "frame"

// OpenSQLite opens (creating if needed) the sqlite database at fn
func OpenSQLite(fn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", fn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite only supports a single writer
	db.SetMaxOpenConns(1)
	return db, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// WriteTable replaces table with the contents of df. Each column becomes a
// REAL column of the same name; rows are inserted in order inside a single
// transaction.
func WriteTable(ctx context.Context, db *sql.DB, table string, df *dataframe.DataFrame[float64]) error {
	names := df.ColumnNames()
	if len(names) == 0 {
		return fmt.Errorf("%w: cannot create table %q", ErrNoColumns, table)
	}

	colDefs := make([]string, len(names))
	quoted := make([]string, len(names))
	params := make([]string, len(names))
	for idx, name := range names {
		quoted[idx] = quoteIdent(name)
		colDefs[idx] = quoted[idx] + " REAL NOT NULL"
		params[idx] = "?"
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("could not start transaction")
		return err
	}
	defer func() {
		// returns sql.ErrTxDone after a successful commit
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(table))); err != nil {
		return fmt.Errorf("dropping table %q: %w", table, err)
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(colDefs, ", "))); err != nil {
		return fmt.Errorf("creating table %q: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(table), strings.Join(quoted, ", "), strings.Join(params, ", ")))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(names))
	for rowIdx, row := range df.All() {
		for idx, val := range row.Values() {
			args[idx] = val
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", rowIdx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Str("Table", table).Msg("could not commit transaction")
		return err
	}

	log.Debug().Str("Table", table).Int("Rows", df.RowCount()).Msg("wrote sqlite table")
	return nil
}

// ReadTable loads every row of table ordered by rowid. Every column must hold
// numeric values.
func ReadTable(ctx context.Context, db *sql.DB, table string) (*dataframe.DataFrame[float64], error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("querying table %q: %w", table, err)
	}
	defer rows.Close()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	vals := make([][]float64, 0)
	dest := make([]any, len(names))
	for rows.Next() {
		row := make([]float64, len(names))
		for idx := range row {
			dest[idx] = &row[idx]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: row %d of %q: %w", ErrNotFloat64Column, len(vals), table, err)
		}
		vals = append(vals, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dataframe.New(names, vals)
}

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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
)

// Format is an on-disk representation of a dataframe
type Format string

const (
	FormatXLSX     Format = "xlsx"
	FormatArrow    Format = "arrow"
	FormatSQLite   Format = "sqlite"
	FormatSnapshot Format = "snapshot"
)

// Options tune Load and Save for formats that hold more than one table
type Options struct {
	Sheet string
	Table string
}

// DetectFormat maps the extension of fn to a Format
func DetectFormat(fn string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".xlsx":
		return FormatXLSX, nil
	case ".arrow", ".ipc":
		return FormatArrow, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	case ".pvdf":
		return FormatSnapshot, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fn)
	}
}

func (o Options) table() string {
	if o.Table == "" {
		return DefaultTable
	}
	return o.Table
}

// Load reads the dataframe stored in fn, picking the format from the file
// extension
func Load(ctx context.Context, fn string, opts Options) (*dataframe.DataFrame[float64], error) {
	format, err := DetectFormat(fn)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("FileName", fn).Str("Format", string(format)).Msg("loading dataframe")

	switch format {
	case FormatXLSX:
		return ReadXLSX(fn)
	case FormatSQLite:
		db, err := OpenSQLite(fn)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return ReadTable(ctx, db, opts.table())
	}

	fh, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	if format == FormatArrow {
		return ReadIPC(fh)
	}

	df, _, err := ReadSnapshot[float64](fh)
	return df, err
}

// Save writes df to fn, picking the format from the file extension. Existing
// files are overwritten; for sqlite only the target table is replaced.
func Save(ctx context.Context, fn string, df *dataframe.DataFrame[float64], opts Options) error {
	format, err := DetectFormat(fn)
	if err != nil {
		return err
	}

	log.Debug().Str("FileName", fn).Str("Format", string(format)).Msg("saving dataframe")

	switch format {
	case FormatXLSX:
		return WriteXLSX(fn, opts.Sheet, df)
	case FormatSQLite:
		db, err := OpenSQLite(fn)
		if err != nil {
			return err
		}
		defer db.Close()
		return WriteTable(ctx, db, opts.table(), df)
	}

	fh, err := os.Create(fn)
	if err != nil {
		return err
	}

	if format == FormatArrow {
		err = WriteIPC(fh, df)
	} else {
		_, err = WriteSnapshot(fh, df)
	}

	if closeErr := fh.Close(); err == nil {
		err = closeErr
	}
	return err
}

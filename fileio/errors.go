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

// Package fileio reads and writes float64 dataframes in a handful of
// on-disk formats: Excel workbooks, Arrow IPC streams, SQLite tables and
// pvframe snapshots.
package fileio

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrChecksumMismatch  = errors.New("snapshot checksum mismatch")
	ErrNotFloat64Column  = errors.New("column is not float64")
	ErrEmptyWorkbook     = errors.New("workbook has no sheets")
	ErrNoColumns         = errors.New("frame has no columns")
)

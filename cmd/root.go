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
	"fmt"
	"io"
	"os"

	"github.com/penny-vault/pvframe/common"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/penny-vault/pvframe/fileio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var logCloser io.Closer

func bindFlag(key, env, flag string) {
	if err := viper.BindEnv(key, env); err != nil {
		log.Panic().Err(err).Str("Key", key).Msg("could not bind environment variable")
	}
	if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		log.Panic().Err(err).Str("Key", key).Msg("could not bind flag")
	}
}

func init() {
	// Logging configuration
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	bindFlag("log.level", "PVFRAME_LOG_LEVEL", "log-level")

	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	bindFlag("log.report_caller", "PVFRAME_LOG_REPORT_CALLER", "log-report-caller")

	rootCmd.PersistentFlags().String("log-output", "stderr", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	bindFlag("log.output", "PVFRAME_LOG_OUTPUT", "log-output")

	rootCmd.PersistentFlags().Bool("log-pretty", true, "Format logs for humans instead of as JSON")
	bindFlag("log.pretty", "PVFRAME_LOG_PRETTY", "log-pretty")

	// File formats
	rootCmd.PersistentFlags().String("sqlite-table", fileio.DefaultTable, "Table read from and written to sqlite databases")
	bindFlag("sqlite.table", "PVFRAME_SQLITE_TABLE", "sqlite-table")

	rootCmd.PersistentFlags().String("xlsx-sheet", fileio.DefaultSheet, "Sheet name used when writing workbooks")
	bindFlag("xlsx.sheet", "PVFRAME_XLSX_SHEET", "xlsx-sheet")

	// Output
	rootCmd.PersistentFlags().Int("width", dataframe.DefaultFormatWidth, "Characters per column when printing frames")
	bindFlag("format.width", "PVFRAME_FORMAT_WIDTH", "width")

	rootCmd.PersistentFlags().Bool("table", false, "Print frames as a bordered table")
	bindFlag("format.table", "PVFRAME_FORMAT_TABLE", "table")
}

var rootCmd = &cobra.Command{
	Use:          "pvframe",
	Version:      common.CurrentVersion.String(),
	Short:        "pvframe generates, inspects and converts dataframes",
	Long:         `A small toolkit for named-column dataframes: generate synthetic data, print and summarize frames, and convert between xlsx, arrow, sqlite and snapshot files.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		logCloser, err = common.SetupLogging()
		return err
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fileOptions collects the configured table and sheet names
func fileOptions() fileio.Options {
	return fileio.Options{
		Sheet: viper.GetString("xlsx.sheet"),
		Table: viper.GetString("sqlite.table"),
	}
}

// printFrame writes df to out honouring format.width and format.table
func printFrame(out io.Writer, df *dataframe.DataFrame[float64]) {
	if viper.GetBool("format.table") {
		fmt.Fprint(out, df.Table())
		return
	}
	fmt.Fprint(out, df.FormatMatrix(viper.GetInt("format.width")))
}

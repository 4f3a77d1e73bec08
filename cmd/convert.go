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

	"github.com/penny-vault/pvframe/fileio"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Convert a frame between file formats",
	Long:  `Convert a frame between file formats. Formats are picked from the file extension: .xlsx, .arrow/.ipc, .db/.sqlite/.sqlite3 and .pvdf`,
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx := context.Background()
		opts := fileOptions()

		df, err := fileio.Load(ctx, args[0], opts)
		if err != nil {
			log.Error().Stack().Err(err).Str("FileName", args[0]).Msg("could not load frame")
			return err
		}

		if err := fileio.Save(ctx, args[1], df, opts); err != nil {
			log.Error().Stack().Err(err).Str("FileName", args[1]).Msg("could not save frame")
			return err
		}

		log.Info().Str("From", args[0]).Str("To", args[1]).Int("Rows", df.RowCount()).Msg("converted frame")
		return nil
	},
}

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
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/penny-vault/pvframe/dataframe"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/blake3"
)

// SnapshotInfo identifies a saved snapshot
type SnapshotInfo struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
	Digest  string    `json:"digest"`
}

type snapshotEnvelope struct {
	SnapshotInfo
	Frame []byte `json:"frame"`
}

func digest(frame []byte) string {
	sum := blake3.Sum256(frame)
	return hex.EncodeToString(sum[:])
}

// WriteSnapshot serializes df as JSON, wraps it in an envelope carrying a
// fresh id, the creation time and a blake3 digest of the frame, and writes
// the lz4 compressed envelope to w.
func WriteSnapshot[E any](w io.Writer, df *dataframe.DataFrame[E]) (*SnapshotInfo, error) {
	frame, err := json.Marshal(df)
	if err != nil {
		return nil, fmt.Errorf("marshal frame: %w", err)
	}

	env := snapshotEnvelope{
		SnapshotInfo: SnapshotInfo{
			ID:      uuid.New(),
			Created: time.Now().UTC(),
			Digest:  digest(frame),
		},
		Frame: frame,
	}

	zw, err := NewCompressWriter(w)
	if err != nil {
		return nil, err
	}

	if err := json.NewEncoder(zw).Encode(&env); err != nil {
		zw.Close()
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}

	if err := zw.Close(); err != nil {
		log.Error().Err(err).Msg("could not compress snapshot")
		return nil, err
	}

	log.Debug().Str("ID", env.ID.String()).Int("FrameBytes", len(frame)).Msg("wrote snapshot")
	return &env.SnapshotInfo, nil
}

// ReadSnapshot reads a snapshot written by WriteSnapshot. The frame digest is
// verified before the frame is decoded.
func ReadSnapshot[E any](r io.Reader) (*dataframe.DataFrame[E], *SnapshotInfo, error) {
	var env snapshotEnvelope
	if err := json.NewDecoder(NewDecompressReader(r)).Decode(&env); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}

	if got := digest(env.Frame); got != env.Digest {
		log.Warn().Str("ID", env.ID.String()).Str("Expected", env.Digest).Str("Actual", got).Msg("snapshot digest does not match")
		return nil, nil, fmt.Errorf("%w: expected %s got %s", ErrChecksumMismatch, env.Digest, got)
	}

	df := &dataframe.DataFrame[E]{}
	if err := json.Unmarshal(env.Frame, df); err != nil {
		return nil, nil, fmt.Errorf("unmarshal frame: %w", err)
	}

	return df, &env.SnapshotInfo, nil
}

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

// Package dfextras moves float64 frames between pvframe and
// github.com/rocketlaunchr/dataframe-go
package dfextras

import (
	"context"
	"errors"
	"fmt"
	"math"

	pvdf "github.com/penny-vault/pvframe/dataframe"
	"github.com/rocketlaunchr/dataframe-go"
)

var (
	ErrUnsupportedSeries = errors.New("series must be float64")
)

// ToRocket builds a rocketlaunchr dataframe with one SeriesFloat64 per
// column of df, in column order
func ToRocket(df *pvdf.DataFrame[float64]) *dataframe.DataFrame {
	cols := df.Columns()
	series := make([]dataframe.Series, len(cols))
	for idx, col := range cols {
		vals := col.Values()
		series[idx] = dataframe.NewSeriesFloat64(col.Name(), &dataframe.SeriesInit{Capacity: len(vals)}, vals)
	}
	return dataframe.NewDataFrame(series...)
}

// FromRocket copies every series of rdf into a new frame. Each series must be
// a SeriesFloat64. The context is checked before each series is copied.
func FromRocket(ctx context.Context, rdf *dataframe.DataFrame) (*pvdf.DataFrame[float64], error) {
	rdf.Lock()
	defer rdf.Unlock()

	dontLock := dataframe.Options{DontLock: true}
	names := make([]string, len(rdf.Series))
	cols := make([][]float64, len(rdf.Series))

	for idx, series := range rdf.Series {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		names[idx] = series.Name(dontLock)
		floatSeries, ok := series.(*dataframe.SeriesFloat64)
		if !ok {
			return nil, fmt.Errorf("%w: %q is %s", ErrUnsupportedSeries, names[idx], series.Type())
		}
		cols[idx] = floatSeries.Values
	}

	return pvdf.FromColumns(names, cols)
}

// DropNA returns a copy of rdf without the rows that hold a nil value or a
// NaN in any series
func DropNA(ctx context.Context, rdf *dataframe.DataFrame, opts ...dataframe.FilterOptions) (*dataframe.DataFrame, error) {
	filterFn := dataframe.FilterDataFrameFn(func(vals map[interface{}]interface{}, row, nRows int) (dataframe.FilterAction, error) {
		for _, val := range vals {
			if val == nil {
				return dataframe.DROP, nil
			}
			if v, ok := val.(float64); ok && math.IsNaN(v) {
				return dataframe.DROP, nil
			}
		}
		return dataframe.KEEP, nil
	})

	res, err := dataframe.Filter(ctx, rdf, filterFn, opts...)
	if err != nil {
		return nil, err
	}

	if res == nil {
		// filtered in place
		return rdf, nil
	}
	return res.(*dataframe.DataFrame), nil
}

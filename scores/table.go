/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package scores

import (
	"fmt"
	"slices"
	"sort"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/internal"
	"github.com/apache/quantify-go/internal/ratebounds"
)

const (
	// GridSize is the number of thresholds swept by Tabulate.
	GridSize = 101

	rateDigits = 4
)

// Row is the operating point of a classifier at one decision threshold,
// with the counts the rates were measured from.
type Row struct {
	Threshold float64
	FPR       float64
	TPR       float64

	TruePositives  int
	FalsePositives int
	Positives      int
	Negatives      int
}

// TPRInterval returns approximate confidence bounds on the true positive
// rate, numStdDevs standard deviations wide.
func (r Row) TPRInterval(numStdDevs float64) (float64, float64, error) {
	return ratebounds.Interval(r.TruePositives, r.Positives, numStdDevs)
}

// FPRInterval returns approximate confidence bounds on the false positive
// rate, numStdDevs standard deviations wide.
func (r Row) FPRInterval(numStdDevs float64) (float64, float64, error) {
	return ratebounds.Interval(r.FalsePositives, r.Negatives, numStdDevs)
}

// Table holds one Row per grid threshold, in ascending threshold order.
type Table []Row

// Thresholds returns the grid 0.00, 0.01, ..., 1.00. Points are computed as
// i/100 so that two-decimal thresholds compare equal to their literals.
func Thresholds() []float64 {
	t := make([]float64, GridSize)
	for i := range t {
		t[i] = float64(i) / float64(GridSize-1)
	}
	return t
}

// Tabulate sweeps the threshold grid over s. At threshold t, TPR is the share
// of positives scoring strictly above t and FPR the share of negatives doing
// so. A rate is 0 when its class is absent from s. Rates are rounded to four
// decimal digits.
func Tabulate(s Sample) Table {
	pos := s.Positives()
	neg := s.Negatives()
	slices.Sort(pos)
	slices.Sort(neg)

	table := make(Table, 0, GridSize)
	for _, t := range Thresholds() {
		tp, fp := countAbove(pos, t), countAbove(neg, t)
		table = append(table, Row{
			Threshold:      t,
			FPR:            common.Round(internal.SafeDiv(fp, len(neg)), rateDigits),
			TPR:            common.Round(internal.SafeDiv(tp, len(pos)), rateDigits),
			TruePositives:  tp,
			FalsePositives: fp,
			Positives:      len(pos),
			Negatives:      len(neg),
		})
	}
	return table
}

// countAbove returns how many entries of the ascending slice exceed t.
func countAbove(sorted []float64, t float64) int {
	return len(sorted) - sort.Search(len(sorted), func(i int) bool { return sorted[i] > t })
}

// Lookup returns the row whose threshold equals threshold exactly.
func (t Table) Lookup(threshold float64) (Row, error) {
	i := sort.Search(len(t), func(i int) bool { return t[i].Threshold >= threshold })
	if i == len(t) || t[i].Threshold != threshold {
		return Row{}, fmt.Errorf("%w: %v", common.ErrThresholdNotFound, threshold)
	}
	return t[i], nil
}

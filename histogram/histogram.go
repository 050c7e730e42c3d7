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

// Package histogram bins scores from [0, 1] into equal-width buckets.
package histogram

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/apache/quantify-go/internal"
)

var ErrNaN = errors.New("score is NaN")

// Bins converts a possibly fractional bin count to an integer of at least 1
// by truncation. NaN and infinite counts give a single bin.
func Bins(bins float64) int {
	if !internal.IsFinite(bins) || bins < 1 {
		return 1
	}
	return int(bins)
}

// Counts partitions [0, 1] into equal-width bins and counts the scores in
// each. A score of exactly 1 falls in the last bin. Scores outside [0, 1] are
// counted in the nearest edge bin, so the counts always sum to len(scores).
func Counts(scores []float64, bins float64) ([]float64, error) {
	n := Bins(bins)
	counts := make([]float64, n)
	for _, s := range scores {
		if math.IsNaN(s) {
			return nil, ErrNaN
		}
		counts[index(s, n)]++
	}
	return counts, nil
}

// Density returns Counts divided by the sample size. An empty sample yields
// all zeros.
func Density(scores []float64, bins float64) ([]float64, error) {
	counts, err := Counts(scores, bins)
	if err != nil {
		return nil, err
	}
	if len(scores) > 0 {
		floats.Scale(1/float64(len(scores)), counts)
	}
	return counts, nil
}

func index(score float64, bins int) int {
	if score <= 0 {
		return 0
	}
	if score >= 1 {
		return bins - 1
	}
	i := int(score * float64(bins))
	if i >= bins {
		i = bins - 1
	}
	return i
}

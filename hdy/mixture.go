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

package hdy

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/apache/quantify-go/distance"
	"github.com/apache/quantify-go/histogram"
	"github.com/apache/quantify-go/internal"
	"github.com/apache/quantify-go/search"
)

var ErrEmptyScores = errors.New("positive and negative score samples must both be non-empty")

// binCounts is the fixed sweep of histogram resolutions: ten values from 2
// to 20 plus 30.
var binCounts = []float64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 30}

// BinCounts returns the histogram resolutions swept by MixtureEstimate.
func BinCounts() []float64 {
	return append([]float64(nil), binCounts...)
}

// MixtureEstimates returns, for each bin count of BinCounts, the weight
// alpha in [0, 1] for which alpha*H(pos) + (1-alpha)*H(neg) is closest to
// H(test) under dist, where H is the normalized histogram.
func MixtureEstimates(pos, neg, test []float64, dist distance.Func) ([]float64, error) {
	if len(pos) == 0 || len(neg) == 0 {
		return nil, ErrEmptyScores
	}
	out := make([]float64, 0, len(binCounts))
	for _, bins := range binCounts {
		alpha, err := mixtureWeight(pos, neg, test, bins, dist)
		if err != nil {
			return nil, fmt.Errorf("%v bins: %w", bins, err)
		}
		out = append(out, alpha)
	}
	return out, nil
}

// MixtureEstimate is the median of MixtureEstimates.
func MixtureEstimate(pos, neg, test []float64, dist distance.Func) (float64, error) {
	estimates, err := MixtureEstimates(pos, neg, test, dist)
	if err != nil {
		return 0, err
	}
	return internal.Median(estimates), nil
}

func mixtureWeight(pos, neg, test []float64, bins float64, dist distance.Func) (float64, error) {
	posHist, err := histogram.Density(pos, bins)
	if err != nil {
		return 0, err
	}
	negHist, err := histogram.Density(neg, bins)
	if err != nil {
		return 0, err
	}
	testHist, err := histogram.Density(test, bins)
	if err != nil {
		return 0, err
	}

	// mix = neg + alpha*(pos - neg)
	diff := floats.SubTo(make([]float64, len(posHist)), posHist, negHist)
	mix := make([]float64, len(posHist))
	f := func(alpha float64) float64 {
		floats.AddScaledTo(mix, negHist, alpha, diff)
		return dist(mix, testHist)
	}
	return search.Ternary(0, 1, f)
}

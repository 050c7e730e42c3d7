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

package common

import (
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Prevalence maps each class label to its estimated fraction of the
// population.
type Prevalence map[int]float64

// Sum returns the total over all classes.
func (p Prevalence) Sum() float64 {
	return floats.Sum(slices.Collect(maps.Values(p)))
}

// Labels returns the labels in ascending order.
func (p Prevalence) Labels() []int {
	return slices.Sorted(maps.Keys(p))
}

// NormalizePrevalence rescales values to sum to 1. A vector summing to zero
// becomes uniform.
func NormalizePrevalence(values []float64) []float64 {
	out := make([]float64, len(values))
	if sum := floats.Sum(values); sum > 0 {
		floats.ScaleTo(out, 1/sum, values)
		return out
	}
	for i := range out {
		out[i] = 1 / float64(len(values))
	}
	return out
}

// RoundPrevalence rounds each value to the given number of decimal digits.
// The rounding residual is assigned to the largest entry so the result still
// sums to 1 when the input does.
func RoundPrevalence(values []float64, digits int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	for i, v := range values {
		out[i] = Round(v, digits)
	}
	largest := floats.MaxIdx(values)
	residual := Round(floats.Sum(values), digits) - floats.Sum(out)
	out[largest] = Round(out[largest]+residual, digits)
	out[largest] = math.Max(0, math.Min(1, out[largest]))
	return out
}

// Round rounds v half away from zero to digits decimal places.
func Round(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// NewPrevalence pairs values with the labels of classes.
func NewPrevalence(classes *ClassSet, values []float64) Prevalence {
	p := make(Prevalence, len(values))
	for i, v := range values {
		p[classes.Label(i)] = v
	}
	return p
}

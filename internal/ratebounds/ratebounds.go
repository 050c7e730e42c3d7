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

// Package ratebounds computes approximate Clopper-Pearson confidence bounds
// for a rate observed as k hits out of n trials, such as a true or false
// positive rate measured on a finite score sample.
//
// The width of the interval is given as a number of standard deviations of a
// standard normal: 1, 2 and 3 correspond to roughly 68%, 95% and 99.7%
// two-sided coverage. The approximation is not strictly conservative.
package ratebounds

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var ErrInvalidCounts = errors.New("hits must be between 0 and trials")

// Interval returns the lower and upper bound on the rate underlying k hits
// in n trials. With no trials nothing is known and the interval is [0, 1].
func Interval(k, n int, numStdDevs float64) (float64, float64, error) {
	lo, err := Lower(k, n, numStdDevs)
	if err != nil {
		return 0, 0, err
	}
	hi, err := Upper(k, n, numStdDevs)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// Lower returns the lower confidence bound on the rate.
func Lower(k, n int, numStdDevs float64) (float64, error) {
	if k < 0 || k > n {
		return 0, ErrInvalidCounts
	}
	delta := rightTail(numStdDevs)
	switch {
	case n == 0, k == 0:
		return 0, nil
	case k == 1:
		return 1 - math.Pow(1-delta, 1/float64(n)), nil
	case k == n:
		return math.Pow(delta, 1/float64(n)), nil
	}
	// solve I_x(n-k+1, k) = 1 - delta for x = 1 - p
	return 1 - inverseIncompleteBeta(float64(n-k+1), float64(k), -numStdDevs), nil
}

// Upper returns the upper confidence bound on the rate.
func Upper(k, n int, numStdDevs float64) (float64, error) {
	if k < 0 || k > n {
		return 0, ErrInvalidCounts
	}
	delta := rightTail(numStdDevs)
	switch {
	case n == 0, k == n:
		return 1, nil
	case k == n-1:
		return math.Pow(1-delta, 1/float64(n)), nil
	case k == 0:
		return 1 - math.Pow(delta, 1/float64(n)), nil
	}
	// solve I_x(n-k, k+1) = delta for x = 1 - p
	return 1 - inverseIncompleteBeta(float64(n-k), float64(k+1), numStdDevs), nil
}

func rightTail(numStdDevs float64) float64 {
	return distuv.UnitNormal.CDF(-numStdDevs)
}

// inverseIncompleteBeta approximates the x solving I_x(a, b) = delta, where
// delta is the right-tail mass of a standard normal beyond yp. This is
// Abramowitz & Stegun formula 26.5.22; names follow the book.
func inverseIncompleteBeta(a, b, yp float64) float64 {
	b2m1 := 2*b - 1
	a2m1 := 2*a - 1
	lambda := (yp*yp - 3) / 6
	h := 2 / (1/a2m1 + 1/b2m1)
	w := yp*math.Sqrt(h+lambda)/h - (1/b2m1-1/a2m1)*(lambda+5.0/6.0-2/(3*h))
	return a / (a + b*math.Exp(2*w))
}

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

// Package search minimizes scalar functions over a closed interval.
package search

import (
	"errors"

	"github.com/apache/quantify-go/internal"
)

const (
	DefaultTolerance = 1e-4
	DefaultMaxIter   = 200
)

var (
	ErrInvalidInterval  = errors.New("interval must be finite with lo < hi")
	ErrInvalidTolerance = errors.New("tolerance must be positive and iterations at least 1")
)

// Ternary returns the point of [lo, hi] minimizing f, to within
// DefaultTolerance or after DefaultMaxIter steps, whichever comes first.
// The result is exact only when f is unimodal on the interval.
func Ternary(lo, hi float64, f func(float64) float64) (float64, error) {
	return TernaryWithTolerance(lo, hi, f, DefaultTolerance, DefaultMaxIter)
}

// TernaryWithTolerance is Ternary with explicit stopping bounds. Each step
// evaluates f at the two interior third-points and discards the outer third
// next to the larger value. It returns the midpoint of the final interval.
func TernaryWithTolerance(lo, hi float64, f func(float64) float64, tol float64, maxIter int) (float64, error) {
	if !internal.IsFinite(lo) || !internal.IsFinite(hi) || lo >= hi {
		return 0, ErrInvalidInterval
	}
	if !(tol > 0) || maxIter < 1 {
		return 0, ErrInvalidTolerance
	}
	for i := 0; i < maxIter && hi-lo >= tol; i++ {
		third := (hi - lo) / 3
		m1 := lo + third
		m2 := hi - third
		if f(m1) > f(m2) {
			lo = m1
		} else {
			hi = m2
		}
	}
	return (lo + hi) / 2, nil
}

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

// Package distance provides divergences between two discrete distributions
// given as equal-length, non-negative vectors. The vectors need not be
// normalized.
package distance

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const (
	NameSquaredEuclidean = "sqeuclidean"
	NameProbSymmetric    = "probsymm"
	NameHellinger        = "hellinger"
	NameTopsoe           = "topsoe"
)

var (
	ErrUnknownDistance = errors.New("unknown distance")
	ErrLengthMismatch  = errors.New("vectors have different lengths")
)

// Func computes a non-negative distance between p and q.
type Func func(p, q []float64) float64

var byName = map[string]Func{
	NameSquaredEuclidean: SquaredEuclidean,
	NameProbSymmetric:    ProbSymmetric,
	NameHellinger:        Hellinger,
	NameTopsoe:           Topsoe,
}

// Get returns the distance registered under name. Matching ignores case and
// surrounding whitespace.
func Get(name string) (Func, error) {
	f, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDistance, name)
	}
	return f, nil
}

// Measure looks up name and applies it to p and q.
func Measure(name string, p, q []float64) (float64, error) {
	f, err := Get(name)
	if err != nil {
		return 0, err
	}
	if len(p) != len(q) {
		return 0, ErrLengthMismatch
	}
	return f(p, q), nil
}

func mustMatch(p, q []float64) {
	if len(p) != len(q) {
		panic("distance: slice length mismatch")
	}
}

// SquaredEuclidean returns sum((p_i - q_i)^2).
func SquaredEuclidean(p, q []float64) float64 {
	mustMatch(p, q)
	s := 0.0
	for i := range p {
		d := p[i] - q[i]
		s += d * d
	}
	return s
}

// ProbSymmetric returns the probabilistic symmetric chi-square distance,
// sum(2(p_i - q_i)^2 / (p_i + q_i)). Bins where both are zero contribute 0.
func ProbSymmetric(p, q []float64) float64 {
	mustMatch(p, q)
	s := 0.0
	for i := range p {
		den := p[i] + q[i]
		if den == 0 {
			continue
		}
		d := p[i] - q[i]
		s += 2 * d * d / den
	}
	return s
}

// Hellinger returns sqrt(sum((sqrt(p_i) - sqrt(q_i))^2)).
func Hellinger(p, q []float64) float64 {
	mustMatch(p, q)
	s := 0.0
	for i := range p {
		d := math.Sqrt(p[i]) - math.Sqrt(q[i])
		s += d * d
	}
	return math.Sqrt(s)
}

// Topsoe returns sum(p_i ln(2p_i/(p_i+q_i)) + q_i ln(2q_i/(p_i+q_i))) with
// 0 ln 0 = 0.
func Topsoe(p, q []float64) float64 {
	mustMatch(p, q)
	s := 0.0
	for i := range p {
		den := p[i] + q[i]
		if den == 0 {
			continue
		}
		s += xlog(p[i], 2*p[i]/den) + xlog(q[i], 2*q[i]/den)
	}
	return s
}

func xlog(x, ratio float64) float64 {
	if x == 0 {
		return 0
	}
	return x * math.Log(ratio)
}

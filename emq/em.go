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

package emq

import (
	"errors"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
)

const (
	MaxIter = 1000
	Epsilon = 1e-6

	// convergence is not tested before this iteration index
	warmupIterations = 10
)

var ErrDimensionMismatch = errors.New("posterior columns do not match the number of priors")

// Result is the outcome of EM prior re-estimation.
type Result struct {
	// Prevalences is the final class prior estimate.
	Prevalences []float64
	// Posteriors holds the per-instance posteriors corrected for Prevalences.
	Posteriors *mat.Dense
	Iterations int
	Converged  bool
}

// EM re-estimates class priors on a test set from classifier posteriors
// obtained under the training priors. Each iteration rescales every
// posterior by the ratio of current to training prior and renormalizes the
// rows (E-step), then takes the column means as the new priors (M-step). It
// stops once the mean absolute change of the priors drops below epsilon,
// tested only after the first ten iterations, or after maxIter iterations.
// Hitting maxIter is logged as a warning through log and is not an error.
func EM(priors []float64, posteriors mat.Matrix, epsilon float64, maxIter int, log *slog.Logger) (Result, error) {
	rows, cols := posteriors.Dims()
	if cols != len(priors) {
		return Result{}, ErrDimensionMismatch
	}
	if rows == 0 || cols == 0 {
		return Result{}, common.ErrEmptyInput
	}
	if log == nil {
		log = slog.Default()
	}

	ratio := make([]float64, cols)
	running := append([]float64(nil), priors...)
	var previous []float64
	current := mat.NewDense(rows, cols, nil)
	row := make([]float64, cols)

	iteration, converged := 0, false
	for !converged && iteration < maxIter {
		// E-step
		for c := range ratio {
			ratio[c] = 0
			if priors[c] != 0 {
				ratio[c] = running[c] / priors[c]
			}
		}
		for i := 0; i < rows; i++ {
			for c := 0; c < cols; c++ {
				row[c] = ratio[c] * posteriors.At(i, c)
			}
			if s := floats.Sum(row); s > 0 {
				floats.Scale(1/s, row)
			}
			current.SetRow(i, row)
		}

		// M-step
		running = columnMeans(current)

		if previous != nil && iteration > warmupIterations && meanAbsDiff(running, previous) < epsilon {
			converged = true
		}
		previous = running
		iteration++
	}

	if !converged {
		log.Warn("EM reached the maximum number of iterations; it might not have converged",
			"iterations", iteration)
	}
	return Result{
		Prevalences: running,
		Posteriors:  current,
		Iterations:  iteration,
		Converged:   converged,
	}, nil
}

func columnMeans(m *mat.Dense) []float64 {
	rows, cols := m.Dims()
	means := make([]float64, cols)
	if rows == 0 {
		return means
	}
	for c := 0; c < cols; c++ {
		means[c] = floats.Sum(mat.Col(nil, c, m)) / float64(rows)
	}
	return means
}

func meanAbsDiff(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += math.Abs(a[i] - b[i])
	}
	return s / float64(len(a))
}

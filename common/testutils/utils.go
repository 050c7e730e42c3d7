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

// Package testutils provides deterministic classifiers and synthetic data
// for exercising the quantifiers in tests and examples.
package testutils

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Blobs draws sizes[c] instances around centers[c] with isotropic Gaussian
// noise of the given standard deviation. Labels are the class indexes. The
// instances of each class are contiguous in the output.
func Blobs(sizes []int, centers [][]float64, std float64, seed int64) (*mat.Dense, []int) {
	rng := rand.New(rand.NewSource(seed))
	total := 0
	for _, n := range sizes {
		total += n
	}
	dims := len(centers[0])
	X := mat.NewDense(total, dims, nil)
	y := make([]int, 0, total)
	row := 0
	for c, n := range sizes {
		for i := 0; i < n; i++ {
			for j := 0; j < dims; j++ {
				X.Set(row, j, centers[c][j]+rng.NormFloat64()*std)
			}
			y = append(y, c)
			row++
		}
	}
	return X, y
}

// RelabelInts maps every label through m.
func RelabelInts(y []int, m map[int]int) []int {
	out := make([]int, len(y))
	for i, l := range y {
		out[i] = m[l]
	}
	return out
}

// ScoresMatrix wraps a slice of scores as a one-column feature matrix, for
// use with ScoreClassifier.
func ScoresMatrix(scores []float64) *mat.Dense {
	if len(scores) == 0 {
		return &mat.Dense{}
	}
	return mat.NewDense(len(scores), 1, append([]float64(nil), scores...))
}

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
	"gonum.org/v1/gonum/mat"
)

// CheckInput verifies that X has one row per label.
func CheckInput(X mat.Matrix, y []int) error {
	if X == nil || len(y) == 0 {
		return ErrEmptyInput
	}
	r, _ := X.Dims()
	if r != len(y) {
		return ErrLengthMismatch
	}
	return nil
}

// SelectRows copies the rows of X at idx, in order, into a new matrix.
func SelectRows(X mat.Matrix, idx []int) *mat.Dense {
	_, c := X.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for i, r := range idx {
		for j := 0; j < c; j++ {
			out.Set(i, j, X.At(r, j))
		}
	}
	return out
}

// SelectLabels returns the labels at idx, in order.
func SelectLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, r := range idx {
		out[i] = y[r]
	}
	return out
}

// Column copies column j of m into a slice.
func Column(m mat.Matrix, j int) []float64 {
	r, _ := m.Dims()
	return mat.Col(make([]float64, r), j, m)
}

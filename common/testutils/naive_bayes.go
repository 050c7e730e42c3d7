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

package testutils

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
)

const defaultVarSmoothing = 1e-9

var (
	ErrNotFitted       = errors.New("classifier is not fitted")
	ErrFeatureMismatch = errors.New("feature count differs from training data")
)

// GaussianNB is a Gaussian naive Bayes classifier. It is deterministic, so
// quantifier outputs built on it are reproducible.
type GaussianNB struct {
	VarSmoothing float64

	classes  []int
	logPrior []float64
	means    [][]float64
	vars     [][]float64
}

// NewGaussianNB returns an unfitted classifier.
func NewGaussianNB() *GaussianNB {
	return &GaussianNB{VarSmoothing: defaultVarSmoothing}
}

func (g *GaussianNB) Clone() common.Classifier {
	return &GaussianNB{VarSmoothing: g.VarSmoothing}
}

func (g *GaussianNB) Fit(X mat.Matrix, y []int) error {
	if err := common.CheckInput(X, y); err != nil {
		return err
	}
	classes, err := common.NewClassSet(y)
	if err != nil {
		return err
	}
	rows, cols := X.Dims()

	// smoothing is relative to the largest feature variance
	maxVar := 0.0
	for j := 0; j < cols; j++ {
		col := common.Column(X, j)
		maxVar = math.Max(maxVar, variance(col, floats.Sum(col)/float64(rows)))
	}
	eps := g.VarSmoothing * maxVar
	if eps == 0 {
		eps = g.VarSmoothing
	}

	k := classes.Len()
	g.classes = classes.Labels()
	g.logPrior = make([]float64, k)
	g.means = make([][]float64, k)
	g.vars = make([][]float64, k)
	for c := 0; c < k; c++ {
		g.logPrior[c] = math.Log(float64(classes.Count(c)) / float64(rows))
		g.means[c] = make([]float64, cols)
		g.vars[c] = make([]float64, cols)
	}
	for i := 0; i < rows; i++ {
		c := classes.Index(y[i])
		for j := 0; j < cols; j++ {
			g.means[c][j] += X.At(i, j)
		}
	}
	for c := 0; c < k; c++ {
		floats.Scale(1/float64(classes.Count(c)), g.means[c])
	}
	for i := 0; i < rows; i++ {
		c := classes.Index(y[i])
		for j := 0; j < cols; j++ {
			d := X.At(i, j) - g.means[c][j]
			g.vars[c][j] += d * d
		}
	}
	for c := 0; c < k; c++ {
		floats.Scale(1/float64(classes.Count(c)), g.vars[c])
		floats.AddConst(eps, g.vars[c])
	}
	return nil
}

func (g *GaussianNB) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	if g.classes == nil {
		return nil, ErrNotFitted
	}
	rows, cols := X.Dims()
	if cols != len(g.means[0]) {
		return nil, ErrFeatureMismatch
	}
	k := len(g.classes)
	out := mat.NewDense(rows, k, nil)
	logJoint := make([]float64, k)
	for i := 0; i < rows; i++ {
		for c := 0; c < k; c++ {
			lj := g.logPrior[c]
			for j := 0; j < cols; j++ {
				d := X.At(i, j) - g.means[c][j]
				lj -= 0.5*math.Log(2*math.Pi*g.vars[c][j]) + d*d/(2*g.vars[c][j])
			}
			logJoint[c] = lj
		}
		norm := floats.LogSumExp(logJoint)
		for c := 0; c < k; c++ {
			out.Set(i, c, math.Exp(logJoint[c]-norm))
		}
	}
	return out, nil
}

// Classes returns the labels seen by the last Fit.
func (g *GaussianNB) Classes() []int {
	return slices.Clone(g.classes)
}

func variance(x []float64, mean float64) float64 {
	s := 0.0
	for _, v := range x {
		d := v - mean
		s += d * d
	}
	return s / float64(len(x))
}

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

// Package emq implements EMQ, which adjusts a classifier's posteriors to a
// shifted class distribution by Expectation-Maximization over the priors.
package emq

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/config"
)

var _ common.Quantifier = (*EMQ)(nil)

// EMQ is an EM-based quantifier. It also exposes the corrected per-instance
// posteriors through PredictProba.
type EMQ struct {
	clf common.Classifier
	cfg config.Config

	classes *common.ClassSet
	priors  []float64
}

// New returns an unfitted EMQ over clf. The EM stopping rule comes from
// cfg.Epsilon and cfg.MaxIter.
func New(clf common.Classifier, cfg config.Config) (*EMQ, error) {
	if err := common.CheckClassifier(clf); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &EMQ{clf: clf, cfg: cfg}, nil
}

// Fit fits the classifier on (X, y) and records the training class priors.
func (e *EMQ) Fit(ctx context.Context, X mat.Matrix, y []int) error {
	return e.fit(ctx, X, y, true)
}

// FitPriors records the training class priors of y for a classifier that was
// already fitted on (X, y). The classifier is left untouched.
func (e *EMQ) FitPriors(ctx context.Context, X mat.Matrix, y []int) error {
	return e.fit(ctx, X, y, false)
}

func (e *EMQ) fit(ctx context.Context, X mat.Matrix, y []int, fitLearner bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := common.CheckInput(X, y); err != nil {
		return err
	}
	classes, err := common.NewClassSet(y)
	if err != nil {
		return err
	}
	if fitLearner {
		if err := e.clf.Fit(X, y); err != nil {
			return err
		}
	}
	e.classes, e.priors = classes, classes.Priors()
	e.cfg.Log().Debug("emq priors", "classes", classes.Labels(), "priors", e.priors)
	return nil
}

// Predict estimates the class prevalences of X.
func (e *EMQ) Predict(X mat.Matrix) (common.Prevalence, error) {
	r, err := e.run(X)
	if err != nil {
		return nil, err
	}
	return common.NewPrevalence(e.classes, r.Prevalences), nil
}

// PredictProba returns the posteriors of X corrected for the estimated
// prevalences, one column per class in ascending label order.
func (e *EMQ) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	r, err := e.run(X)
	if err != nil {
		return nil, err
	}
	return r.Posteriors, nil
}

// Estimate returns the full EM result for X, including iteration count and
// convergence.
func (e *EMQ) Estimate(X mat.Matrix) (Result, error) {
	return e.run(X)
}

// Classes returns the labels discovered by Fit.
func (e *EMQ) Classes() []int {
	if e.classes == nil {
		return nil
	}
	return e.classes.Labels()
}

// Priors returns the training class priors.
func (e *EMQ) Priors() []float64 {
	return append([]float64(nil), e.priors...)
}

func (e *EMQ) run(X mat.Matrix) (Result, error) {
	if e.classes == nil {
		return Result{}, common.ErrNotFitted
	}
	if X == nil {
		return Result{}, common.ErrEmptyInput
	}
	if r, _ := X.Dims(); r == 0 {
		return Result{}, common.ErrEmptyInput
	}
	posteriors, err := e.clf.PredictProba(X)
	if err != nil {
		return Result{}, err
	}
	return EM(e.priors, posteriors, e.cfg.Epsilon, e.cfg.MaxIter, e.cfg.Log())
}

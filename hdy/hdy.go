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

// Package hdy implements HDy, which estimates prevalence as the mixture
// weight of the class-conditional score histograms that best matches the
// test score histogram under the Hellinger distance.
package hdy

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/config"
	"github.com/apache/quantify-go/distance"
	"github.com/apache/quantify-go/scores"
)

const prevalenceDigits = 3

var _ common.Quantifier = (*HDy)(nil)

// HDy is a histogram-mixture quantifier. Two-class problems use a single
// binary model; more classes are handled one-vs-all and the per-class
// estimates normalized. Reported prevalences are rounded to three decimals.
type HDy struct {
	clf  common.Classifier
	cfg  config.Config
	dist distance.Func

	classes *common.ClassSet
	models  []*scores.Binary
}

// New returns an unfitted HDy over clf. cfg.Distance selects the distance
// minimized, Hellinger by default.
func New(clf common.Classifier, cfg config.Config) (*HDy, error) {
	if err := common.CheckClassifier(clf); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dist, err := distance.Get(cfg.Distance)
	if err != nil {
		return nil, err
	}
	return &HDy{clf: clf, cfg: cfg, dist: dist}, nil
}

// Fit collects the out-of-fold positive and negative score samples, once for
// two classes and once per class otherwise.
func (h *HDy) Fit(ctx context.Context, X mat.Matrix, y []int) error {
	if err := common.CheckInput(X, y); err != nil {
		return err
	}
	classes, err := common.NewClassSet(y)
	if err != nil {
		return err
	}
	if classes.Len() < 2 {
		return common.ErrSingleClass
	}

	var models []*scores.Binary
	if classes.Len() == 2 {
		m, err := scores.FitBinary(ctx, X, y, classes.PositiveLabel(), h.clf, h.cfg)
		if err != nil {
			return err
		}
		models = []*scores.Binary{m}
	} else {
		models, err = scores.FitOneVsAll(ctx, X, y, h.clf, h.cfg)
		if err != nil {
			return err
		}
	}
	for _, m := range models {
		h.cfg.Log().Debug("hdy score sample",
			"class", m.Class, "positives", len(m.Sample.Positives()), "negatives", len(m.Sample.Negatives()))
	}

	h.classes, h.models = classes, models
	return nil
}

// Predict estimates the class prevalences of X. In the two-class case the
// search runs for the positive class only and the other class receives the
// complement.
func (h *HDy) Predict(X mat.Matrix) (common.Prevalence, error) {
	if h.classes == nil {
		return nil, common.ErrNotFitted
	}
	if X == nil {
		return nil, common.ErrEmptyInput
	}
	if r, _ := X.Dims(); r == 0 {
		return nil, common.ErrEmptyInput
	}

	estimates := make([]float64, len(h.models))
	for i, m := range h.models {
		test, err := scores.PositiveScores(m.Classifier, X)
		if err != nil {
			return nil, err
		}
		estimates[i], err = MixtureEstimate(m.Sample.Positives(), m.Sample.Negatives(), test, h.dist)
		if err != nil {
			return nil, err
		}
	}

	if len(h.models) == 1 {
		positive := h.models[0].Class
		p := common.Round(estimates[0], prevalenceDigits)
		out := make(common.Prevalence, 2)
		for _, l := range h.classes.Labels() {
			if l == positive {
				out[l] = p
			} else {
				out[l] = common.Round(1-p, prevalenceDigits)
			}
		}
		return out, nil
	}
	values := common.RoundPrevalence(common.NormalizePrevalence(estimates), prevalenceDigits)
	return common.NewPrevalence(h.classes, values), nil
}

// Classes returns the labels discovered by Fit.
func (h *HDy) Classes() []int {
	if h.classes == nil {
		return nil
	}
	return h.classes.Labels()
}

// Sample returns the out-of-fold score sample collected for class. In the
// two-class case only the positive class has one.
func (h *HDy) Sample(class int) (scores.Sample, bool) {
	for _, m := range h.models {
		if m.Class == class {
			return m.Sample, true
		}
	}
	return nil, false
}

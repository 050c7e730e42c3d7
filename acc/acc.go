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

// Package acc implements Adjusted Classify and Count: the share of instances
// a classifier labels positive, corrected by the classifier's true and false
// positive rates at the decision threshold.
package acc

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/config"
	"github.com/apache/quantify-go/internal"
	"github.com/apache/quantify-go/scores"
)

var _ common.Quantifier = (*ACC)(nil)

// ACC is an Adjusted Classify and Count quantifier. Two-class problems use a
// single binary model; more classes are handled one-vs-all and the per-class
// estimates normalized.
type ACC struct {
	clf common.Classifier
	cfg config.Config

	classes *common.ClassSet
	models  []*scores.Binary
	tables  []scores.Table
	points  []scores.Row
}

// New returns an unfitted ACC over clf.
func New(clf common.Classifier, cfg config.Config) (*ACC, error) {
	if err := common.CheckClassifier(clf); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ACC{clf: clf, cfg: cfg}, nil
}

// Fit cross-validates the classifier on (X, y), tabulates its operating
// points and records the one at the configured threshold. A threshold that
// is not on the grid fails with common.ErrThresholdNotFound.
func (a *ACC) Fit(ctx context.Context, X mat.Matrix, y []int) error {
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
		m, err := scores.FitBinary(ctx, X, y, classes.PositiveLabel(), a.clf, a.cfg)
		if err != nil {
			return err
		}
		models = []*scores.Binary{m}
	} else {
		models, err = scores.FitOneVsAll(ctx, X, y, a.clf, a.cfg)
		if err != nil {
			return err
		}
	}

	tables := make([]scores.Table, len(models))
	points := make([]scores.Row, len(models))
	for i, m := range models {
		tables[i] = scores.Tabulate(m.Sample)
		points[i], err = tables[i].Lookup(a.cfg.Threshold)
		if err != nil {
			return err
		}
		a.cfg.Log().Debug("acc operating point",
			"class", m.Class, "threshold", points[i].Threshold, "tpr", points[i].TPR, "fpr", points[i].FPR)
	}

	a.classes, a.models, a.tables, a.points = classes, models, tables, points
	return nil
}

// Predict estimates the class prevalences of X.
func (a *ACC) Predict(X mat.Matrix) (common.Prevalence, error) {
	if a.classes == nil {
		return nil, common.ErrNotFitted
	}
	if X == nil {
		return nil, common.ErrEmptyInput
	}
	if r, _ := X.Dims(); r == 0 {
		return nil, common.ErrEmptyInput
	}

	estimates := make([]float64, len(a.models))
	for i, m := range a.models {
		s, err := scores.PositiveScores(m.Classifier, X)
		if err != nil {
			return nil, err
		}
		cc := ClassifyCount(s, a.cfg.Threshold)
		estimates[i] = Adjust(cc, a.points[i].TPR, a.points[i].FPR)
	}

	if len(a.models) == 1 {
		positive := a.models[0].Class
		p := make(common.Prevalence, 2)
		for _, l := range a.classes.Labels() {
			if l == positive {
				p[l] = estimates[0]
			} else {
				p[l] = 1 - estimates[0]
			}
		}
		return p, nil
	}
	return common.NewPrevalence(a.classes, common.NormalizePrevalence(estimates)), nil
}

// Classes returns the labels discovered by Fit.
func (a *ACC) Classes() []int {
	if a.classes == nil {
		return nil
	}
	return a.classes.Labels()
}

// OperatingPoint returns the TPR/FPR row used to adjust estimates of class.
// In the two-class case only the positive class has one.
func (a *ACC) OperatingPoint(class int) (scores.Row, bool) {
	for i, m := range a.models {
		if m.Class == class {
			return a.points[i], true
		}
	}
	return scores.Row{}, false
}

// Table returns the full threshold sweep computed for class.
func (a *ACC) Table(class int) (scores.Table, bool) {
	for i, m := range a.models {
		if m.Class == class {
			return a.tables[i], true
		}
	}
	return nil, false
}

// ClassifyCount returns the fraction of scores strictly above threshold,
// matching the comparison used by scores.Tabulate.
func ClassifyCount(s []float64, threshold float64) float64 {
	above := 0
	for _, v := range s {
		if v > threshold {
			above++
		}
	}
	return internal.SafeDiv(above, len(s))
}

// Adjust corrects a classify-and-count rate with the operating point's TPR
// and FPR, clipped to [0, 1]. When TPR equals FPR there is nothing to correct
// with and cc is returned unchanged.
func Adjust(cc, tpr, fpr float64) float64 {
	if tpr == fpr {
		return cc
	}
	return internal.Clip((cc-fpr)/(tpr-fpr), 0, 1)
}

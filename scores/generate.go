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

package scores

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/config"
)

var (
	ErrNotBinary        = errors.New("labels must be 0 or 1")
	ErrClassifierOutput = errors.New("classifier output does not have two columns and one row per instance")
)

// Generate runs stratified k-fold cross-validation of clf on (X, y) and
// returns the held-out positive-class probabilities paired with their true
// labels. Each fold fits its own clone of clf. Once every fold is done, clf
// itself is fitted on all of (X, y).
//
// y must be a 0/1 vector; column 1 of PredictProba is the positive class.
// With cfg.Workers > 1 folds run concurrently. The sample lists folds in
// order either way.
func Generate(ctx context.Context, X mat.Matrix, y []int, clf common.Classifier, cfg config.Config) (Sample, error) {
	if err := common.CheckClassifier(clf); err != nil {
		return nil, err
	}
	if err := common.CheckInput(X, y); err != nil {
		return nil, err
	}
	for _, l := range y {
		if l != 0 && l != 1 {
			return nil, fmt.Errorf("%w: found %d", ErrNotBinary, l)
		}
	}
	folds, err := StratifiedFolds(y, cfg.Folds, cfg.Shuffle, cfg.Seed)
	if err != nil {
		return nil, err
	}

	log := cfg.Log()
	results := make([]Sample, len(folds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for f, held := range folds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := scoreFold(X, y, held, clf.Clone())
			if err != nil {
				return fmt.Errorf("fold %d: %w", f, err)
			}
			results[f] = s
			log.Debug("scored fold", "fold", f, "held_out", len(held))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := clf.Fit(X, y); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

func scoreFold(X mat.Matrix, y []int, held []int, clf common.Classifier) (Sample, error) {
	train := complement(len(y), held)
	if err := clf.Fit(common.SelectRows(X, train), common.SelectLabels(y, train)); err != nil {
		return nil, err
	}
	scores, err := PositiveScores(clf, common.SelectRows(X, held))
	if err != nil {
		return nil, err
	}
	if len(scores) != len(held) {
		return nil, ErrClassifierOutput
	}
	return NewSample(scores, common.SelectLabels(y, held)), nil
}

// PositiveColumn returns column 1 of a binary classifier's output, or nil when
// the output has fewer than two columns.
func PositiveColumn(proba mat.Matrix) []float64 {
	if _, c := proba.Dims(); c < 2 {
		return nil
	}
	return common.Column(proba, 1)
}

// PositiveScores predicts X with a binary classifier and returns the
// positive-class column.
func PositiveScores(clf common.Classifier, X mat.Matrix) ([]float64, error) {
	proba, err := clf.PredictProba(X)
	if err != nil {
		return nil, err
	}
	s := PositiveColumn(proba)
	if s == nil {
		return nil, ErrClassifierOutput
	}
	return s, nil
}

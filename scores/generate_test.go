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
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/common/testutils"
	"github.com/apache/quantify-go/config"
)

type oneColumnClassifier struct{}

func (oneColumnClassifier) Fit(mat.Matrix, []int) error { return nil }

func (oneColumnClassifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	r, _ := X.Dims()
	return mat.NewDense(r, 1, nil), nil
}

func (oneColumnClassifier) Clone() common.Classifier { return oneColumnClassifier{} }

func separable(n int) (*mat.Dense, []int) {
	scores := make([]float64, 0, 2*n)
	labels := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		scores = append(scores, 0.6+0.3*float64(i)/float64(n))
		labels = append(labels, 1)
		scores = append(scores, 0.1+0.3*float64(i)/float64(n))
		labels = append(labels, 0)
	}
	return testutils.ScoresMatrix(scores), labels
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	X, y := separable(20)

	t.Run("Every Instance Scored Once", func(t *testing.T) {
		clf := testutils.NewScoreClassifier()
		s, err := Generate(ctx, X, y, clf, config.Default())
		assert.NoError(t, err)
		assert.Len(t, s, 40)
		assert.Len(t, s.Positives(), 20)
		assert.Len(t, s.Negatives(), 20)
		for _, ls := range s {
			if ls.Label == 1 {
				assert.GreaterOrEqual(t, ls.Score, 0.6)
			} else {
				assert.Less(t, ls.Score, 0.6)
			}
		}
		// ten folds plus the final refit
		assert.Equal(t, int64(11), clf.Fits())
	})

	t.Run("Parallel Matches Sequential", func(t *testing.T) {
		seq, err := Generate(ctx, X, y, testutils.NewScoreClassifier(), config.Default())
		assert.NoError(t, err)
		cfg := config.Default()
		cfg.Workers = 4
		par, err := Generate(ctx, X, y, testutils.NewScoreClassifier(), cfg)
		assert.NoError(t, err)
		assert.Equal(t, seq, par)
	})

	t.Run("Leaves Classifier Fitted On All Data", func(t *testing.T) {
		Xb, yb := testutils.Blobs([]int{30, 30}, [][]float64{{0}, {3}}, 0.5, 5)
		nb := testutils.NewGaussianNB()
		_, err := Generate(ctx, Xb, yb, nb, config.Default())
		assert.NoError(t, err)
		proba, err := nb.PredictProba(mat.NewDense(1, 1, []float64{3}))
		assert.NoError(t, err)
		assert.Greater(t, proba.At(0, 1), 0.9)
	})

	t.Run("Custom Folds", func(t *testing.T) {
		clf := testutils.NewScoreClassifier()
		cfg := config.Default()
		cfg.Folds = 4
		s, err := Generate(ctx, X, y, clf, cfg)
		assert.NoError(t, err)
		assert.Len(t, s, 40)
		assert.Equal(t, int64(5), clf.Fits())
	})

	t.Run("Not Binary", func(t *testing.T) {
		bad := slices.Clone(y)
		bad[0] = 2
		_, err := Generate(ctx, X, bad, testutils.NewScoreClassifier(), config.Default())
		assert.ErrorIs(t, err, ErrNotBinary)
	})

	t.Run("Insufficient Data", func(t *testing.T) {
		Xs, ys := separable(5)
		_, err := Generate(ctx, Xs, ys, testutils.NewScoreClassifier(), config.Default())
		assert.ErrorIs(t, err, common.ErrInsufficientData)
	})

	t.Run("Nil Classifier", func(t *testing.T) {
		_, err := Generate(ctx, X, y, nil, config.Default())
		assert.ErrorIs(t, err, common.ErrNotAnEstimator)
	})

	t.Run("Length Mismatch", func(t *testing.T) {
		_, err := Generate(ctx, X, y[:10], testutils.NewScoreClassifier(), config.Default())
		assert.ErrorIs(t, err, common.ErrLengthMismatch)
	})

	t.Run("Fit Error Propagates", func(t *testing.T) {
		clf := testutils.NewScoreClassifier()
		clf.FailFit = true
		_, err := Generate(ctx, X, y, clf, config.Default())
		assert.ErrorIs(t, err, testutils.ErrFitFailed)
	})

	t.Run("Classifier Output", func(t *testing.T) {
		_, err := Generate(ctx, X, y, oneColumnClassifier{}, config.Default())
		assert.ErrorIs(t, err, ErrClassifierOutput)
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		clf := testutils.NewScoreClassifier()
		_, err := Generate(cctx, X, y, clf, config.Default())
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int64(0), clf.Fits())
	})
}

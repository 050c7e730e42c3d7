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

package hdy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/common/testutils"
	"github.com/apache/quantify-go/config"
	"github.com/apache/quantify-go/distance"
)

func separableScores(n int) ([]float64, []int) {
	s := make([]float64, 0, 2*n)
	y := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		s = append(s, 0.6+0.3*float64(i)/float64(n), 0.1+0.3*float64(i)/float64(n))
		y = append(y, 1, 0)
	}
	return s, y
}

func TestNew(t *testing.T) {
	_, err := New(nil, config.Default())
	assert.ErrorIs(t, err, common.ErrNotAnEstimator)

	var nb *testutils.GaussianNB
	_, err = New(nb, config.Default())
	assert.ErrorIs(t, err, common.ErrNotAnEstimator)

	cfg := config.Default()
	cfg.Distance = "cosine"
	_, err = New(testutils.NewScoreClassifier(), cfg)
	assert.ErrorIs(t, err, distance.ErrUnknownDistance)
}

func TestHDy_Binary(t *testing.T) {
	ctx := context.Background()
	s, y := separableScores(20)
	X := testutils.ScoresMatrix(s)

	t.Run("Test Drawn Like Positives", func(t *testing.T) {
		q, err := New(testutils.NewScoreClassifier(), config.Default())
		assert.NoError(t, err)
		assert.NoError(t, q.Fit(ctx, X, y))

		sample, ok := q.Sample(1)
		assert.True(t, ok)
		p, err := q.Predict(testutils.ScoresMatrix(sample.Positives()))
		assert.NoError(t, err)
		assert.InDelta(t, 1.0, p[1], 0.05)
		assert.InDelta(t, 0.0, p[0], 0.05)
		assert.InDelta(t, 1.0, p.Sum(), 1e-3)
	})

	t.Run("Mixture", func(t *testing.T) {
		q, err := New(testutils.NewScoreClassifier(), config.Default())
		assert.NoError(t, err)
		assert.NoError(t, q.Fit(ctx, X, y))

		sample, ok := q.Sample(1)
		assert.True(t, ok)
		// one positive for every three negatives
		test := sample.Positives()
		for i := 0; i < 3; i++ {
			test = append(test, sample.Negatives()...)
		}
		p, err := q.Predict(testutils.ScoresMatrix(test))
		assert.NoError(t, err)
		assert.InDelta(t, 0.25, p[1], 1e-3)
		assert.Equal(t, common.Round(1-p[1], 3), p[0])
	})

	t.Run("Rounded To Three Decimals", func(t *testing.T) {
		q, err := New(testutils.NewScoreClassifier(), config.Default())
		assert.NoError(t, err)
		assert.NoError(t, q.Fit(ctx, X, y))
		p, err := q.Predict(testutils.ScoresMatrix([]float64{0.15, 0.65, 0.33, 0.81, 0.22}))
		assert.NoError(t, err)
		for _, v := range p {
			assert.Equal(t, common.Round(v, 3), v)
		}
	})

	t.Run("Non Binary Labels", func(t *testing.T) {
		q, err := New(testutils.NewScoreClassifier(), config.Default())
		assert.NoError(t, err)
		relabeled := testutils.RelabelInts(y, map[int]int{1: 5, 0: 6})
		assert.NoError(t, q.Fit(ctx, X, relabeled))
		assert.Equal(t, []int{5, 6}, q.Classes())

		sample, ok := q.Sample(5)
		assert.True(t, ok)
		p, err := q.Predict(testutils.ScoresMatrix(sample.Negatives()))
		assert.NoError(t, err)
		assert.InDelta(t, 0.0, p[5], 0.05)
		assert.InDelta(t, 1.0, p[6], 0.05)
	})
}

func TestHDy_Multiclass(t *testing.T) {
	centers := [][]float64{{0, 0}, {5, 0}, {0, 5}}
	X, y := testutils.Blobs([]int{80, 80, 80}, centers, 1, 7)
	cfg := config.Default()
	cfg.Workers = 4
	cfg.Shuffle = true
	cfg.Seed = 3
	q, err := New(testutils.NewGaussianNB(), cfg)
	assert.NoError(t, err)
	assert.NoError(t, q.Fit(context.Background(), X, y))
	for _, c := range []int{0, 1, 2} {
		_, ok := q.Sample(c)
		assert.True(t, ok)
	}

	test, _ := testutils.Blobs([]int{500, 300, 200}, centers, 1, 8)
	p, err := q.Predict(test)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, p.Sum(), 1e-3)
	for c, want := range map[int]float64{0: 0.5, 1: 0.3, 2: 0.2} {
		assert.GreaterOrEqual(t, p[c], 0.0)
		assert.LessOrEqual(t, p[c], 1.0)
		assert.InDelta(t, want, p[c], 0.07)
	}
}

func TestHDy_Errors(t *testing.T) {
	ctx := context.Background()
	s, y := separableScores(20)
	X := testutils.ScoresMatrix(s)

	q, err := New(testutils.NewScoreClassifier(), config.Default())
	assert.NoError(t, err)
	_, err = q.Predict(X)
	assert.ErrorIs(t, err, common.ErrNotFitted)
	assert.Nil(t, q.Classes())

	assert.ErrorIs(t, q.Fit(ctx, X, make([]int, len(y))), common.ErrSingleClass)
	assert.ErrorIs(t, q.Fit(ctx, X, y[:3]), common.ErrLengthMismatch)

	assert.NoError(t, q.Fit(ctx, X, y))
	_, err = q.Predict(testutils.ScoresMatrix(nil))
	assert.ErrorIs(t, err, common.ErrEmptyInput)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/common/testutils"
	"github.com/apache/quantify-go/config"
)

func TestFitBinary(t *testing.T) {
	X, y := testutils.Blobs([]int{30, 20}, [][]float64{{0}, {4}}, 0.5, 9)
	y = testutils.RelabelInts(y, map[int]int{0: 7, 1: 3})

	nb := testutils.NewGaussianNB()
	b, err := FitBinary(context.Background(), X, y, 7, nb, config.Default())
	assert.NoError(t, err)
	assert.Equal(t, 7, b.Class)
	assert.Same(t, nb, b.Classifier)
	assert.Len(t, b.Sample.Positives(), 30)
	assert.Len(t, b.Sample.Negatives(), 20)
	assert.Equal(t, []int{0, 1}, nb.Classes())
}

func TestFitOneVsAll(t *testing.T) {
	X, y := testutils.Blobs([]int{20, 20, 20}, [][]float64{{0, 0}, {4, 0}, {0, 4}}, 0.5, 2)
	nb := testutils.NewGaussianNB()

	models, err := FitOneVsAll(context.Background(), X, y, nb, config.Default())
	assert.NoError(t, err)
	assert.Len(t, models, 3)
	for i, m := range models {
		assert.Equal(t, i, m.Class)
		assert.NotSame(t, nb, m.Classifier)
		assert.Len(t, m.Sample.Positives(), 20)
		assert.Len(t, m.Sample.Negatives(), 40)

		center := mat.NewDense(1, 2, []float64{[]float64{0, 4, 0}[i], []float64{0, 0, 4}[i]})
		s, err := PositiveScores(m.Classifier, center)
		assert.NoError(t, err)
		assert.Greater(t, s[0], 0.5)
	}
	assert.Nil(t, nb.Classes(), "prototype classifier is not fitted")

	_, err = FitOneVsAll(context.Background(), X, y[:59], nb, config.Default())
	assert.ErrorIs(t, err, common.ErrLengthMismatch)
}

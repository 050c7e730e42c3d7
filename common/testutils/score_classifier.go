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
	"sync/atomic"

	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
)

var ErrFitFailed = errors.New("fit failed")

// ScoreClassifier reads the positive-class probability straight from the
// first feature column and returns [1-x, x]. Fit only records that it was
// called; the counter is shared with every clone.
type ScoreClassifier struct {
	fits *atomic.Int64
	// FailFit makes every Fit return ErrFitFailed.
	FailFit bool
}

func NewScoreClassifier() *ScoreClassifier {
	return &ScoreClassifier{fits: new(atomic.Int64)}
}

func (s *ScoreClassifier) Clone() common.Classifier {
	return &ScoreClassifier{fits: s.fits, FailFit: s.FailFit}
}

func (s *ScoreClassifier) Fit(X mat.Matrix, y []int) error {
	if s.FailFit {
		return ErrFitFailed
	}
	s.fits.Add(1)
	return common.CheckInput(X, y)
}

func (s *ScoreClassifier) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	rows, _ := X.Dims()
	out := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		p := X.At(i, 0)
		out.Set(i, 0, 1-p)
		out.Set(i, 1, p)
	}
	return out, nil
}

// Fits returns how many times Fit succeeded across this classifier and its
// clones.
func (s *ScoreClassifier) Fits() int64 {
	return s.fits.Load()
}

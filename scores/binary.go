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
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/config"
)

// Binary is a classifier trained to separate one class from all others,
// together with its out-of-fold score sample.
type Binary struct {
	Class      int
	Classifier common.Classifier
	Sample     Sample
}

// FitBinary binarizes y against positive, generates the out-of-fold sample
// with clf and leaves clf fitted on the binarized labels.
func FitBinary(ctx context.Context, X mat.Matrix, y []int, positive int, clf common.Classifier, cfg config.Config) (*Binary, error) {
	s, err := Generate(ctx, X, common.Binarize(y, positive), clf, cfg)
	if err != nil {
		return nil, fmt.Errorf("class %d: %w", positive, err)
	}
	return &Binary{Class: positive, Classifier: clf, Sample: s}, nil
}

// FitOneVsAll fits one Binary per class of y, in ascending label order, each
// on its own clone of clf.
func FitOneVsAll(ctx context.Context, X mat.Matrix, y []int, clf common.Classifier, cfg config.Config) ([]*Binary, error) {
	var models []*Binary
	for class, binary := range common.OneVsAll(y) {
		member := clf.Clone()
		s, err := Generate(ctx, X, binary, member, cfg)
		if err != nil {
			return nil, fmt.Errorf("class %d: %w", class, err)
		}
		models = append(models, &Binary{Class: class, Classifier: member, Sample: s})
	}
	return models, nil
}

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

package common

import (
	"reflect"

	"gonum.org/v1/gonum/mat"
)

// Classifier is the probabilistic classifier capability the quantifiers
// consume. PredictProba returns one row per instance and one column per class
// seen by the last Fit, in ascending label order. Rows sum to 1.
//
// Clone returns an unfitted copy carrying the same hyperparameters. It is used
// for the transient per-fold classifiers of cross-validation, so the copy must
// not share mutable state with the receiver.
type Classifier interface {
	Fit(X mat.Matrix, y []int) error
	PredictProba(X mat.Matrix) (*mat.Dense, error)
	Clone() Classifier
}

// CheckClassifier returns ErrNotAnEstimator when clf is missing, including a
// non-nil interface holding a nil pointer, map, func or chan.
func CheckClassifier(clf Classifier) error {
	if clf == nil {
		return ErrNotAnEstimator
	}
	switch v := reflect.ValueOf(clf); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Slice, reflect.Interface:
		if v.IsNil() {
			return ErrNotAnEstimator
		}
	}
	return nil
}

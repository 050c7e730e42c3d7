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
	"errors"
	"fmt"

	"github.com/apache/quantify-go/common"
	"github.com/apache/quantify-go/internal"
)

var ErrInvalidFolds = errors.New("number of folds must be at least 2")

// StratifiedFolds splits the instance indexes of labels into k folds that
// preserve the class proportions. Within each class, instances are dealt
// round-robin, continuing from the fold where the previous class stopped, so
// fold sizes differ by at most one. Without shuffle the instance order is kept;
// with shuffle it is permuted per class by a seeded hash.
func StratifiedFolds(labels []int, k int, shuffle bool, seed uint64) ([][]int, error) {
	if k < 2 {
		return nil, ErrInvalidFolds
	}
	classes, err := common.NewClassSet(labels)
	if err != nil {
		return nil, err
	}
	if classes.MinCount() < k {
		return nil, fmt.Errorf("%w: smallest class has %d instances, %d folds requested",
			common.ErrInsufficientData, classes.MinCount(), k)
	}

	byClass := make([][]int, classes.Len())
	for i, l := range labels {
		c := classes.Index(l)
		byClass[c] = append(byClass[c], i)
	}

	folds := make([][]int, k)
	next := 0
	for _, members := range byClass {
		if shuffle {
			internal.HashOrder(members, seed)
		}
		for _, idx := range members {
			folds[next] = append(folds[next], idx)
			next = (next + 1) % k
		}
	}
	return folds, nil
}

// complement returns every index in [0, n) that is not in fold, ascending.
func complement(n int, fold []int) []int {
	held := make([]bool, n)
	for _, i := range fold {
		held[i] = true
	}
	out := make([]int, 0, n-len(fold))
	for i := 0; i < n; i++ {
		if !held[i] {
			out = append(out, i)
		}
	}
	return out
}

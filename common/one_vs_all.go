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

import "iter"

// Binarize marks every instance carrying positive with 1 and all others with 0.
func Binarize(labels []int, positive int) []int {
	binary := make([]int, len(labels))
	for i, l := range labels {
		if l == positive {
			binary[i] = 1
		}
	}
	return binary
}

// OneVsAll returns the one-vs-all decomposition of labels: for each class in
// ascending label order, the class and its 0/1 membership vector. Vectors are
// built on demand, and ranging over the sequence again starts from the first
// class.
func OneVsAll(labels []int) iter.Seq2[int, []int] {
	return func(yield func(int, []int) bool) {
		classes, err := NewClassSet(labels)
		if err != nil {
			return
		}
		for _, c := range classes.labels {
			if !yield(c, Binarize(labels, c)) {
				return
			}
		}
	}
}

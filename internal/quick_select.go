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

package internal

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Select returns the k-th smallest (0-based) element of values. The slice is
// partially reordered in place: afterwards nothing before index k is larger
// than values[k] and nothing after it is smaller.
func Select[T constraints.Float](values []T, k int) T {
	lo, hi := 0, len(values)-1
	for lo < hi {
		p := partition(values, lo, hi)
		switch {
		case p == k:
			return values[k]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return values[k]
}

// partition places the middle element of values[lo..hi] at its sorted
// position and returns that position.
func partition[T constraints.Float](values []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	values[mid], values[hi] = values[hi], values[mid]
	pivot := values[hi]
	p := lo
	for i := lo; i < hi; i++ {
		if values[i] < pivot {
			values[i], values[p] = values[p], values[i]
			p++
		}
	}
	values[p], values[hi] = values[hi], values[p]
	return p
}

// Median returns the median of values without modifying them. For an even
// count it is the mean of the two middle values. Empty input yields 0.
func Median[T constraints.Float](values []T) T {
	n := len(values)
	if n == 0 {
		return 0
	}
	work := slices.Clone(values)
	upper := Select(work, n/2)
	if n%2 == 1 {
		return upper
	}
	// after selecting n/2 everything left of it is <= upper
	lower := slices.Max(work[:n/2])
	return (lower + upper) / 2
}

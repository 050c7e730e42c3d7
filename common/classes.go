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
	"slices"
)

// ClassSet is the sorted, deduplicated set of labels discovered at fit time.
type ClassSet struct {
	labels []int
	counts []int
	total  int
}

// NewClassSet discovers the classes present in labels.
func NewClassSet(labels []int) (*ClassSet, error) {
	if len(labels) == 0 {
		return nil, ErrEmptyInput
	}
	counts := make(map[int]int)
	for _, l := range labels {
		counts[l]++
	}
	cs := &ClassSet{
		labels: make([]int, 0, len(counts)),
		total:  len(labels),
	}
	for l := range counts {
		cs.labels = append(cs.labels, l)
	}
	slices.Sort(cs.labels)
	cs.counts = make([]int, len(cs.labels))
	for i, l := range cs.labels {
		cs.counts[i] = counts[l]
	}
	return cs, nil
}

// Len returns the number of classes.
func (c *ClassSet) Len() int {
	return len(c.labels)
}

// Labels returns a copy of the labels in ascending order.
func (c *ClassSet) Labels() []int {
	return slices.Clone(c.labels)
}

// Label returns the i-th label.
func (c *ClassSet) Label(i int) int {
	return c.labels[i]
}

// Index returns the position of label in the set, or -1.
func (c *ClassSet) Index(label int) int {
	i, ok := slices.BinarySearch(c.labels, label)
	if !ok {
		return -1
	}
	return i
}

// Count returns the number of training instances carrying the i-th label.
func (c *ClassSet) Count(i int) int {
	return c.counts[i]
}

// MinCount returns the size of the smallest class.
func (c *ClassSet) MinCount() int {
	return slices.Min(c.counts)
}

// Priors returns the empirical class distribution, count over sample size.
func (c *ClassSet) Priors() []float64 {
	priors := make([]float64, len(c.counts))
	for i, n := range c.counts {
		priors[i] = float64(n) / float64(c.total)
	}
	return priors
}

// IsBinary01 reports whether the set is exactly {0, 1}.
func (c *ClassSet) IsBinary01() bool {
	return len(c.labels) == 2 && c.labels[0] == 0 && c.labels[1] == 1
}

// PositiveLabel returns the label treated as positive in the two-class case:
// 1 when the labels are already {0, 1}, otherwise the first class.
func (c *ClassSet) PositiveLabel() int {
	if c.IsBinary01() {
		return 1
	}
	return c.labels[0]
}

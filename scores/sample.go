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

// Package scores produces out-of-fold classifier scores and the operating
// point statistics derived from them.
package scores

// LabeledScore pairs a held-out positive-class probability with the
// instance's true 0/1 label.
type LabeledScore struct {
	Score float64
	Label int
}

// Sample is an ordered collection of out-of-fold scores.
type Sample []LabeledScore

// Positives returns the scores of instances labeled 1, in sample order.
func (s Sample) Positives() []float64 {
	return s.side(1)
}

// Negatives returns the scores of instances labeled 0, in sample order.
func (s Sample) Negatives() []float64 {
	return s.side(0)
}

func (s Sample) side(label int) []float64 {
	out := make([]float64, 0, len(s))
	for _, ls := range s {
		if ls.Label == label {
			out = append(out, ls.Score)
		}
	}
	return out
}

// NewSample pairs each score with its label. The slices must have the same
// length.
func NewSample(scores []float64, labels []int) Sample {
	if len(scores) != len(labels) {
		panic("scores: slice length mismatch")
	}
	s := make(Sample, len(scores))
	for i := range scores {
		s[i] = LabeledScore{Score: scores[i], Label: labels[i]}
	}
	return s
}

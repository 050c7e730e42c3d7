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

package ratebounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterval(t *testing.T) {
	testCases := []struct {
		name string
		k    int
		n    int
	}{
		{"no trials", 0, 0},
		{"no hits", 0, 100},
		{"one hit", 1, 100},
		{"all but one", 99, 100},
		{"all hits", 100, 100},
		{"half", 50, 100},
		{"small sample", 3, 10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lo, hi, err := Interval(tc.k, tc.n, 2)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, lo, 0.0)
			assert.LessOrEqual(t, hi, 1.0)
			assert.LessOrEqual(t, lo, hi)
			if tc.n > 0 {
				rate := float64(tc.k) / float64(tc.n)
				assert.LessOrEqual(t, lo, rate)
				assert.GreaterOrEqual(t, hi, rate)
			}
		})
	}
}

func TestIntervalSpecialCases(t *testing.T) {
	lo, hi, err := Interval(0, 0, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	lo, hi, err = Interval(0, 100, 2)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Greater(t, hi, 0.0)
	assert.Less(t, hi, 0.1)

	lo, hi, err = Interval(100, 100, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, hi)
	assert.Greater(t, lo, 0.9)
}

func TestIntervalNarrowsWithTrials(t *testing.T) {
	lo10, hi10, err := Interval(5, 10, 2)
	assert.NoError(t, err)
	lo1000, hi1000, err := Interval(500, 1000, 2)
	assert.NoError(t, err)
	assert.Less(t, hi1000-lo1000, hi10-lo10)
	// normal approximation: 0.5 +- 2*sqrt(0.25/1000)
	assert.InDelta(t, 0.468, lo1000, 0.005)
	assert.InDelta(t, 0.532, hi1000, 0.005)
}

func TestIntervalWidensWithStdDevs(t *testing.T) {
	lo1, hi1, err := Interval(30, 100, 1)
	assert.NoError(t, err)
	lo3, hi3, err := Interval(30, 100, 3)
	assert.NoError(t, err)
	assert.Less(t, lo3, lo1)
	assert.Greater(t, hi3, hi1)
}

func TestInvalidCounts(t *testing.T) {
	_, _, err := Interval(101, 100, 2)
	assert.ErrorIs(t, err, ErrInvalidCounts)
	_, err = Lower(-1, 100, 2)
	assert.ErrorIs(t, err, ErrInvalidCounts)
	_, err = Upper(5, 4, 2)
	assert.ErrorIs(t, err, ErrInvalidCounts)
}

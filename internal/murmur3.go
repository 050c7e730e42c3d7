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
	"encoding/binary"
	"slices"

	"github.com/twmb/murmur3"
)

// HashIndex returns the seeded 64-bit murmur3 hash of an instance index.
func HashIndex(index int, seed uint64) uint64 {
	var scratch [8]byte
	binary.LittleEndian.PutUint64(scratch[:], uint64(index))
	return murmur3.SeedSum64(seed, scratch[:])
}

// HashOrder reorders idx in place by the seeded hash of each index. The
// permutation depends only on the seed and the index values, so it is
// reproducible across runs and platforms.
func HashOrder(idx []int, seed uint64) {
	slices.SortStableFunc(idx, func(a, b int) int {
		ha, hb := HashIndex(a, seed), HashIndex(b, seed)
		switch {
		case ha < hb:
			return -1
		case ha > hb:
			return 1
		}
		return a - b
	})
}

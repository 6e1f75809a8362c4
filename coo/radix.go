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


package coo

import (
	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/internal"
)

// radixGroupBits returns the digit width for n records: the largest width b
// with 2^(3*b) <= n, and at least 1. This keeps the bucket table well below
// the record count.
func radixGroupBits(n int) int {
	b := 1
	for 3*(b+1) < 63 && uint64(1)<<(3*(b+1)) <= uint64(n) {
		b++
	}
	return b
}

// radixSort sorts s by row, or by (row, col), using stable counting passes
// from the least significant digit of the column key up to the most
// significant digit of the row key. All keys must be non-negative.
func radixSort[T common.IDType](s tuples[T], sortColumn bool) {
	n := s.Len()
	if n < 2 {
		return
	}
	groupBits := radixGroupBits(n)
	keys := []int{0}
	if sortColumn {
		keys = []int{1, 0}
	}

	src, dst := s, newTuples[T](n)
	count := make([]int, 1<<groupBits)
	inScratch := false
	for _, k := range keys {
		// Only the significant bits of the largest key need a pass.
		keyBits := internal.SignificantBits(int64(common.Max(s.key(k))))
		if keyBits == 0 {
			continue
		}
		numGroups := (keyBits + groupBits - 1) / groupBits
		for g := 0; g < numGroups; g++ {
			start := g * keyBits / numGroups
			end := (g + 1) * keyBits / numGroups
			radixPass(src, dst, k, start, end, count)
			src, dst = dst, src
			inScratch = !inScratch
		}
	}
	if inScratch {
		s.copyFrom(src)
	}
}

// radixPass scatters src into dst by bits [start, end) of key k.
func radixPass[T common.IDType](src, dst tuples[T], k, start, end int, count []int) {
	mask := internal.MaskBits(end - start)
	count = count[:mask+1]
	clear(count)

	keys := src.key(k)
	for _, v := range keys {
		count[(uint64(v)>>start)&mask]++
	}
	sum := 0
	for i, c := range count {
		count[i] = sum
		sum += c
	}
	for i, v := range keys {
		b := (uint64(v) >> start) & mask
		dst.assign(count[b], src, i)
		count[b]++
	}
}

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
	"sort"

	"github.com/apache/graphprep-go/common"
)

// tuples views three parallel arrays as one array of (row, col, data)
// records. Swapping or assigning a record moves all three fields, which lets
// the standard sort routines permute the arrays without building an array
// of combined records.
type tuples[T common.IDType] struct {
	row, col, data []T
}

func newTuples[T common.IDType](n int) tuples[T] {
	return tuples[T]{
		row:  make([]T, n),
		col:  make([]T, n),
		data: make([]T, n),
	}
}

func (s tuples[T]) Len() int { return len(s.row) }

func (s tuples[T]) Swap(i, j int) {
	s.row[i], s.row[j] = s.row[j], s.row[i]
	s.col[i], s.col[j] = s.col[j], s.col[i]
	s.data[i], s.data[j] = s.data[j], s.data[i]
}

func (s tuples[T]) slice(lo, hi int) tuples[T] {
	return tuples[T]{row: s.row[lo:hi], col: s.col[lo:hi], data: s.data[lo:hi]}
}

// assign copies record j of src into slot i.
func (s tuples[T]) assign(i int, src tuples[T], j int) {
	s.row[i] = src.row[j]
	s.col[i] = src.col[j]
	s.data[i] = src.data[j]
}

func (s tuples[T]) copyFrom(src tuples[T]) {
	copy(s.row, src.row)
	copy(s.col, src.col)
	copy(s.data, src.data)
}

// key returns the row array for k == 0 and the column array otherwise.
func (s tuples[T]) key(k int) []T {
	if k == 0 {
		return s.row
	}
	return s.col
}

func (s tuples[T]) sorter(sortColumn bool) sort.Interface {
	if sortColumn {
		return byRowCol[T]{s}
	}
	return byRow[T]{s}
}

type byRow[T common.IDType] struct{ tuples[T] }

func (s byRow[T]) Less(i, j int) bool { return s.row[i] < s.row[j] }

type byRowCol[T common.IDType] struct{ tuples[T] }

func (s byRowCol[T]) Less(i, j int) bool {
	if s.row[i] != s.row[j] {
		return s.row[i] < s.row[j]
	}
	return s.col[i] < s.col[j]
}

// recordLess compares record i of a with record j of b.
func recordLess[T common.IDType](a tuples[T], i int, b tuples[T], j int, sortColumn bool) bool {
	if a.row[i] != b.row[j] {
		return a.row[i] < b.row[j]
	}
	return sortColumn && a.col[i] < b.col[j]
}

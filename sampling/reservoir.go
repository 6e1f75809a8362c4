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


package sampling

import (
	"github.com/apache/graphprep-go/random"
)

// reservoir keeps a uniform random sample of len(data) items from a stream
// of unknown length. The sample is stored in a caller-provided buffer.
//
// The algorithm works in two phases:
//   - Initial phase (n < k): all items are stored
//   - Steady state (n >= k): each new item replaces a random item with probability k/(n+1)
//
// This ensures each item has equal probability k/n of being in the final sample.
type reservoir[T any] struct {
	n    int64 // total items seen
	data []T   // reservoir storage, k = len(data)
}

func newReservoir[T any](buf []T) *reservoir[T] {
	return &reservoir[T]{data: buf}
}

// update adds an item to the reservoir.
func (r *reservoir[T]) update(rng random.Source, item T) {
	k := int64(len(r.data))
	if r.n < k {
		r.data[r.n] = item
	} else {
		j := rng.RandInt(r.n + 1)
		if j < k {
			r.data[j] = item
		}
	}
	r.n++
}

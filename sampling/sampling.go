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


// Package sampling draws indices from a population, either in proportion to
// per-index weights or uniformly, with or without replacement.
//
// Every routine takes its randomness from a random.Source and writes into a
// caller-provided buffer. Nothing is cached between calls. Arguments are
// validated before the first draw, so a failed call leaves the output buffer
// untouched.
package sampling

import (
	"fmt"
	"math"

	"github.com/apache/graphprep-go/common"
)

// uniformRejectionRatio picks the uniform without-replacement algorithm.
// Requests for fewer than population/uniformRejectionRatio indices use
// rejection against a set of drawn indices. Larger requests use reservoir
// selection over the whole population.
const uniformRejectionRatio = 10

func checkCount[I common.IDType](num I, out []I) error {
	if num < 0 {
		return fmt.Errorf("%w: negative sample count %d", common.ErrInvalidArgument, num)
	}
	if int64(len(out)) < int64(num) {
		return fmt.Errorf("%w: output holds %d indices, %d requested", common.ErrInvalidArgument, len(out), num)
	}
	return nil
}

// checkWeights returns the number of positive weights in prob.
func checkWeights[F common.FloatType](prob []F) (int, error) {
	if len(prob) == 0 {
		return 0, fmt.Errorf("%w: empty probability array", common.ErrInvalidArgument)
	}
	positive := 0
	for i, p := range prob {
		w := float64(p)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return 0, fmt.Errorf("%w: weight %d is %v", common.ErrInvalidArgument, i, w)
		}
		if w > 0 {
			positive++
		}
	}
	if positive == 0 {
		return 0, fmt.Errorf("%w: all weights are zero", common.ErrInvalidArgument)
	}
	return positive, nil
}

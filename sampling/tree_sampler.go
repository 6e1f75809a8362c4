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
	"fmt"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/internal"
	"github.com/apache/graphprep-go/random"
)

// TreeSampler draws indices in proportion to their weights.
//
// The weights sit in the leaves of a complete binary tree and every inner
// node holds the sum of its children, so a draw walks from the root to a
// leaf in O(log N). Without replacement a drawn leaf is zeroed and the sums
// on its path are recomputed, which removes the index from later draws.
type TreeSampler[I common.IDType, F common.FloatType] struct {
	rng       random.Source
	replace   bool
	numLeaves int
	// weights[1] is the root; the children of node i are 2i and 2i+1 and
	// leaf j is stored at numLeaves+j.
	weights   []float64
	remaining int
}

// NewTreeSampler builds a sampler over prob in O(N). Weights must be finite
// and non-negative with at least one positive weight. prob is not retained.
func NewTreeSampler[I common.IDType, F common.FloatType](rng random.Source, prob []F, replace bool) (*TreeSampler[I, F], error) {
	positive, err := checkWeights(prob)
	if err != nil {
		return nil, err
	}
	numLeaves := int(internal.CeilPowerOf2(int64(len(prob))))
	weights := make([]float64, 2*numLeaves)
	for i, p := range prob {
		weights[numLeaves+i] = float64(p)
	}
	for i := numLeaves - 1; i > 0; i-- {
		weights[i] = weights[2*i] + weights[2*i+1]
	}
	return &TreeSampler[I, F]{
		rng:       rng,
		replace:   replace,
		numLeaves: numLeaves,
		weights:   weights,
		remaining: positive,
	}, nil
}

// Remaining returns how many indices can still be drawn without
// replacement. With replacement it is the number of positive weights.
func (s *TreeSampler[I, F]) Remaining() int {
	return s.remaining
}

// Draw returns one index. Without replacement, drawing after every positive
// weight has been drawn fails with common.ErrInvalidArgument.
func (s *TreeSampler[I, F]) Draw() (I, error) {
	if s.remaining == 0 || s.weights[1] <= 0 {
		return 0, fmt.Errorf("%w: no weight left to draw from", common.ErrInvalidArgument)
	}
	p := s.rng.Uniform() * s.weights[1]
	i := 1
	for i < s.numLeaves {
		left := 2 * i
		wl, wr := s.weights[left], s.weights[left+1]
		if p < wl || wr <= 0 {
			i = left
		} else {
			p -= wl
			i = left + 1
		}
	}
	if !s.replace {
		s.remove(i)
	}
	return I(i - s.numLeaves), nil
}

func (s *TreeSampler[I, F]) remove(leaf int) {
	s.weights[leaf] = 0
	for i := leaf / 2; i > 0; i /= 2 {
		s.weights[i] = s.weights[2*i] + s.weights[2*i+1]
	}
	s.remaining--
}

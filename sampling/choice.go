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
	"github.com/apache/graphprep-go/random"
)

// ChoiceOne draws a single index in proportion to prob. It scans prob
// twice and builds no tree, which is cheaper than a TreeSampler for one
// draw.
func ChoiceOne[I common.IDType, F common.FloatType](rng random.Source, prob []F) (I, error) {
	if _, err := checkWeights(prob); err != nil {
		return 0, err
	}
	var total float64
	for _, p := range prob {
		total += float64(p)
	}
	target := rng.Uniform() * total
	last := 0
	for i, p := range prob {
		w := float64(p)
		if w <= 0 {
			continue
		}
		if target < w {
			return I(i), nil
		}
		target -= w
		last = i
	}
	// Rounding left target at or past the final positive weight.
	return I(last), nil
}

// Choice draws num indices in proportion to prob and writes them to
// out[:num]. Without replacement each index is drawn at most once and num
// may not exceed the number of positive weights, except that num == len(prob)
// yields the identity 0..N-1.
func Choice[I common.IDType, F common.FloatType](rng random.Source, num I, prob []F, out []I, replace bool) error {
	if err := checkCount(num, out); err != nil {
		return err
	}
	if num == 0 {
		return nil
	}
	population := int64(len(prob))
	if population == 0 {
		return fmt.Errorf("%w: empty probability array", common.ErrInvalidArgument)
	}
	if !replace && int64(num) > population {
		return fmt.Errorf("%w: cannot take more sample than population when 'replace=false'",
			common.ErrInvalidArgument)
	}
	if !replace && int64(num) == population {
		common.Iota(out[:num], 0)
		return nil
	}

	sampler, err := NewTreeSampler[I](rng, prob, replace)
	if err != nil {
		return err
	}
	if !replace && int(num) > sampler.Remaining() {
		return fmt.Errorf("%w: %d samples requested but only %d weights are positive",
			common.ErrInvalidArgument, num, sampler.Remaining())
	}
	for i := range out[:num] {
		if out[i], err = sampler.Draw(); err != nil {
			return err
		}
	}
	return nil
}

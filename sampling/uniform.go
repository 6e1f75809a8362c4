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

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/random"
)

// UniformChoice draws num indices uniformly from [0, population) and writes
// them to out[:num]. Without replacement the indices are distinct and every
// subset of size num is equally likely; their order depends on which of the
// two algorithms ran and carries no meaning.
func UniformChoice[I common.IDType](rng random.Source, num, population I, out []I, replace bool) error {
	if err := checkCount(num, out); err != nil {
		return err
	}
	if population < 0 {
		return fmt.Errorf("%w: negative population %d", common.ErrInvalidArgument, population)
	}
	if !replace && num > population {
		return fmt.Errorf("%w: cannot take more sample than population when 'replace=false'",
			common.ErrInvalidArgument)
	}
	if num == 0 {
		return nil
	}
	if population == 0 {
		return fmt.Errorf("%w: cannot sample from an empty population", common.ErrInvalidArgument)
	}

	out = out[:num]
	switch {
	case replace:
		for i := range out {
			out[i] = I(rng.RandInt(int64(population)))
		}
	case num < population/uniformRejectionRatio:
		rejectionChoice(rng, population, out)
	default:
		r := newReservoir(out)
		for i := I(0); i < population; i++ {
			r.update(rng, i)
		}
	}
	return nil
}

// rejectionChoice fills out with distinct indices by drawing until a new one
// comes up. Indices are written in the order they are first drawn.
func rejectionChoice[I common.IDType](rng random.Source, population I, out []I) {
	drawn := roaring64.New()
	for k := 0; k < len(out); {
		v := rng.RandInt(int64(population))
		if drawn.CheckedAdd(uint64(v)) {
			out[k] = I(v)
			k++
		}
	}
}

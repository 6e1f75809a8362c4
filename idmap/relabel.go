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


package idmap

import (
	"fmt"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/tensor"
)

// RelabelSlices compacts the union of arrays. It returns each array mapped to
// new ids, plus the original ids ordered by new id. Inputs are not modified.
func RelabelSlices[T common.IDType](arrays ...[]T) (mapped [][]T, induced []T) {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	m, err := New[T](WithCapacity(total))
	if err != nil {
		// Only reachable with invalid options, and none are passed.
		panic(err)
	}
	for _, a := range arrays {
		m.Update(a)
	}
	mapped = make([][]T, len(arrays))
	for i, a := range arrays {
		mapped[i] = m.MapSlice(a, -1)
	}
	return mapped, m.Values()
}

// Relabel is RelabelSlices over tensors. All arrays must hold the same
// identifier type and live on the CPU.
func Relabel(arrays ...*tensor.Array) ([]*tensor.Array, *tensor.Array, error) {
	if len(arrays) == 0 {
		return nil, nil, fmt.Errorf("%w: no arrays to relabel", common.ErrInvalidArgument)
	}
	for i, a := range arrays {
		if a == nil {
			return nil, nil, fmt.Errorf("%w: array %d is nil", common.ErrInvalidArgument, i)
		}
	}
	dtype := arrays[0].DType()
	ctx := arrays[0].Context()
	if !dtype.IsID() {
		return nil, nil, fmt.Errorf("%w: identifiers must be int32 or int64, got %s",
			common.ErrUnsupportedType, dtype)
	}
	for _, a := range arrays {
		if a.DType() != dtype {
			return nil, nil, fmt.Errorf("%w: mixed identifier types %s and %s",
				common.ErrInvalidArgument, dtype, a.DType())
		}
		if a.Context().Device != tensor.CPU {
			return nil, nil, fmt.Errorf("%w: relabel on %s", common.ErrUnsupportedDevice, a.Context())
		}
	}
	if dtype == tensor.Int32 {
		return relabelTyped[int32](arrays, ctx)
	}
	return relabelTyped[int64](arrays, ctx)
}

func relabelTyped[T int32 | int64](arrays []*tensor.Array, ctx tensor.Context) ([]*tensor.Array, *tensor.Array, error) {
	views := make([][]T, len(arrays))
	for i, a := range arrays {
		v, err := tensor.Values[T](a)
		if err != nil {
			return nil, nil, err
		}
		views[i] = v
	}
	mapped, induced := RelabelSlices(views...)
	out := make([]*tensor.Array, len(mapped))
	for i, v := range mapped {
		out[i] = tensor.FromSlice(v, ctx)
	}
	return out, tensor.FromSlice(induced, ctx), nil
}

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


// Package tensor provides the typed, contiguous, device-tagged arrays that the
// identifier, coordinate and sampling packages accept and return.
//
// An Array wraps an Apache Arrow array of a fixed-width numeric type together
// with a device Context. Values returns a typed view that aliases the Arrow
// buffer, so in-place algorithms (such as the coordinate sort) mutate the
// array itself.
package tensor

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/apache/graphprep-go/common"
)

// Array is a one-dimensional typed array tagged with a device.
type Array struct {
	arr   arrow.Array
	dtype DType
	ctx   Context
}

// New wraps arr. Only fixed-width numeric arrays without nulls are accepted.
// New retains arr; call Release when done with the result.
func New(arr arrow.Array, ctx Context) (*Array, error) {
	dtype, ok := dtypeOf(arr.DataType())
	if !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedType, arr.DataType())
	}
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("%w: array has %d nulls", common.ErrInvalidArgument, arr.NullN())
	}
	arr.Retain()
	return &Array{arr: arr, dtype: dtype, ctx: ctx}, nil
}

// FromSlice wraps vals without copying. The array aliases vals.
func FromSlice[T common.Element](vals []T, ctx Context) *Array {
	var (
		dt    arrow.DataType
		raw   []byte
		dtype DType
	)
	switch v := any(vals).(type) {
	case []int32:
		dt, raw, dtype = arrow.PrimitiveTypes.Int32, arrow.Int32Traits.CastToBytes(v), Int32
	case []int64:
		dt, raw, dtype = arrow.PrimitiveTypes.Int64, arrow.Int64Traits.CastToBytes(v), Int64
	case []float32:
		dt, raw, dtype = arrow.PrimitiveTypes.Float32, arrow.Float32Traits.CastToBytes(v), Float32
	case []float64:
		dt, raw, dtype = arrow.PrimitiveTypes.Float64, arrow.Float64Traits.CastToBytes(v), Float64
	}
	data := array.NewData(dt, len(vals), []*memory.Buffer{nil, memory.NewBufferBytes(raw)}, nil, 0, 0)
	defer data.Release()
	return &Array{arr: array.MakeFromData(data), dtype: dtype, ctx: ctx}
}

// Empty returns a zero-filled array of n elements.
func Empty(n int, dtype DType, ctx Context) (*Array, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", common.ErrInvalidArgument, n)
	}
	switch dtype {
	case Int32:
		return FromSlice(make([]int32, n), ctx), nil
	case Int64:
		return FromSlice(make([]int64, n), ctx), nil
	case Float32:
		return FromSlice(make([]float32, n), ctx), nil
	case Float64:
		return FromSlice(make([]float64, n), ctx), nil
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedType, dtype)
	}
}

// Range returns the identifier array start, start+1, ..., stop-1.
func Range(start, stop int64, bits int, ctx Context) (*Array, error) {
	if stop < start {
		return nil, fmt.Errorf("%w: range end %d is before start %d", common.ErrInvalidArgument, stop, start)
	}
	dtype, err := IDType(bits)
	if err != nil {
		return nil, err
	}
	n := stop - start
	if dtype == Int32 {
		if start < -1<<31 || stop > 1<<31 {
			return nil, fmt.Errorf("%w: range [%d, %d) overflows int32", common.ErrInvalidArgument, start, stop)
		}
		vals := make([]int32, n)
		common.Iota(vals, int32(start))
		return FromSlice(vals, ctx), nil
	}
	vals := make([]int64, n)
	common.Iota(vals, start)
	return FromSlice(vals, ctx), nil
}

// Values returns a typed view of a's elements. T must match the array's
// element type exactly.
func Values[T common.Element](a *Array) ([]T, error) {
	var vals any
	switch arr := a.arr.(type) {
	case *array.Int32:
		vals = arr.Int32Values()
	case *array.Int64:
		vals = arr.Int64Values()
	case *array.Float32:
		vals = arr.Float32Values()
	case *array.Float64:
		vals = arr.Float64Values()
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedType, a.dtype)
	}
	out, ok := vals.([]T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("%w: array holds %s, requested %T", common.ErrUnsupportedType, a.dtype, zero)
	}
	return out, nil
}

// Len returns the number of elements.
func (a *Array) Len() int {
	return a.arr.Len()
}

// DType returns the element type.
func (a *Array) DType() DType {
	return a.dtype
}

// Context returns the device the array lives on.
func (a *Array) Context() Context {
	return a.ctx
}

// Arrow returns the underlying Arrow array.
func (a *Array) Arrow() arrow.Array {
	return a.arr
}

// Release drops this handle's reference to the Arrow array.
func (a *Array) Release() {
	a.arr.Release()
}

func (a *Array) String() string {
	return fmt.Sprintf("tensor(%s, len=%d, %s)", a.dtype, a.Len(), a.ctx)
}

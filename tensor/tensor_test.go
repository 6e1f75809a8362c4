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


package tensor

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/graphprep-go/common"
)

func TestFromSliceAliasesValues(t *testing.T) {
	vals := []int64{4, 5, 6}
	a := FromSlice(vals, CPUContext)
	defer a.Release()

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, Int64, a.DType())
	assert.Equal(t, CPUContext, a.Context())

	view, err := Values[int64](a)
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 6}, view)

	view[0] = 40
	assert.Equal(t, int64(40), vals[0])
}

func TestValuesTypeMismatch(t *testing.T) {
	a := FromSlice([]int32{1, 2}, CPUContext)
	defer a.Release()

	_, err := Values[int64](a)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)

	v, err := Values[int32](a)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, v)
}

func TestNewFromArrow(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		b := array.NewFloat64Builder(memory.NewGoAllocator())
		defer b.Release()
		b.AppendValues([]float64{0.5, 0.25}, nil)
		arr := b.NewArray()
		defer arr.Release()

		a, err := New(arr, Context{Device: GPU, DeviceID: 1})
		require.NoError(t, err)
		defer a.Release()
		assert.Equal(t, Float64, a.DType())
		assert.Equal(t, GPU, a.Context().Device)
		assert.Equal(t, "gpu:1", a.Context().String())

		v, err := Values[float64](a)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5, 0.25}, v)
	})

	t.Run("RejectsNulls", func(t *testing.T) {
		b := array.NewInt64Builder(memory.NewGoAllocator())
		defer b.Release()
		b.Append(1)
		b.AppendNull()
		arr := b.NewArray()
		defer arr.Release()

		_, err := New(arr, CPUContext)
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("RejectsNonNumeric", func(t *testing.T) {
		b := array.NewStringBuilder(memory.NewGoAllocator())
		defer b.Release()
		b.Append("x")
		arr := b.NewArray()
		defer arr.Release()

		_, err := New(arr, CPUContext)
		assert.ErrorIs(t, err, common.ErrUnsupportedType)
	})

	t.Run("NarrowIntegersHaveNoView", func(t *testing.T) {
		b := array.NewInt8Builder(memory.NewGoAllocator())
		defer b.Release()
		b.AppendValues([]int8{1, 2}, nil)
		arr := b.NewArray()
		defer arr.Release()

		a, err := New(arr, CPUContext)
		require.NoError(t, err)
		defer a.Release()
		assert.Equal(t, "int8", a.DType().String())
		assert.False(t, a.DType().IsID())

		_, err = Values[int32](a)
		assert.ErrorIs(t, err, common.ErrUnsupportedType)
	})
}

func TestRange(t *testing.T) {
	a, err := Range(2, 6, 32, CPUContext)
	require.NoError(t, err)
	v, err := Values[int32](a)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 3, 4, 5}, v)

	a, err = Range(0, 0, 64, CPUContext)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())

	_, err = Range(5, 1, 64, CPUContext)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)

	_, err = Range(0, 3, 16, CPUContext)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)

	_, err = Range(0, 1<<32, 32, CPUContext)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestEmpty(t *testing.T) {
	a, err := Empty(3, Float32, CPUContext)
	require.NoError(t, err)
	v, err := Values[float32](a)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0}, v)

	_, err = Empty(3, DType{Code: UInt, Bits: 8}, CPUContext)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
	_, err = Empty(-1, Int64, CPUContext)
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
}

func TestDType(t *testing.T) {
	assert.True(t, Int32.IsID())
	assert.True(t, Int64.IsID())
	assert.True(t, Float32.IsFloat())
	assert.False(t, Int64.IsFloat())
	assert.Equal(t, "float64", Float64.String())

	d, err := IDType(64)
	require.NoError(t, err)
	assert.Equal(t, Int64, d)
	_, err = IDType(8)
	assert.ErrorIs(t, err, common.ErrUnsupportedType)
}

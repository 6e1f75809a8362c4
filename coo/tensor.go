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
	"fmt"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/tensor"
)

// TensorMatrix is a coordinate-format matrix whose arrays are tensors. Row,
// Col and Data (when present) must share one identifier type and live on
// the CPU. Sorting rewrites the tensors' buffers in place.
type TensorMatrix struct {
	NumRows int64
	NumCols int64
	Row     *tensor.Array
	Col     *tensor.Array
	Data    *tensor.Array

	RowSorted bool
	ColSorted bool
}

func (m *TensorMatrix) check() (tensor.DType, error) {
	if m.Row == nil || m.Col == nil {
		return tensor.DType{}, fmt.Errorf("%w: row and col are required", common.ErrInvalidArgument)
	}
	dtype := m.Row.DType()
	if !dtype.IsID() {
		return dtype, fmt.Errorf("%w: indices must be int32 or int64, got %s", common.ErrUnsupportedType, dtype)
	}
	arrays := []*tensor.Array{m.Row, m.Col}
	if m.Data != nil {
		arrays = append(arrays, m.Data)
	}
	for _, a := range arrays {
		if a.DType() != dtype {
			return dtype, fmt.Errorf("%w: mixed index types %s and %s", common.ErrUnsupportedType, dtype, a.DType())
		}
		if a.Context().Device != tensor.CPU {
			return dtype, fmt.Errorf("%w: coo sort on %s", common.ErrUnsupportedDevice, a.Context())
		}
	}
	return dtype, nil
}

// SortTensor sorts m in place the way Matrix.Sort does. When m.Data is nil
// it is replaced with the range 0..nnz-1 before sorting.
func SortTensor(m *TensorMatrix, sortColumn bool, opts ...SortOption) error {
	dtype, err := m.check()
	if err != nil {
		return err
	}
	if dtype == tensor.Int32 {
		return sortTensorTyped[int32](m, sortColumn, opts)
	}
	return sortTensorTyped[int64](m, sortColumn, opts)
}

func sortTensorTyped[T int32 | int64](m *TensorMatrix, sortColumn bool, opts []SortOption) error {
	mat, err := matrixView[T](m)
	if err != nil {
		return err
	}
	if _, err := mat.SortStrategy(sortColumn, opts...); err != nil {
		return err
	}
	if m.Data == nil {
		data, err := tensor.Range(0, int64(mat.NNZ()), m.Row.DType().Bits, m.Row.Context())
		if err != nil {
			return err
		}
		if mat.Data, err = tensor.Values[T](data); err != nil {
			return err
		}
		m.Data = data
	}
	if err := mat.Sort(sortColumn, opts...); err != nil {
		return err
	}
	m.RowSorted, m.ColSorted = mat.RowSorted, mat.ColSorted
	return nil
}

// IsSortedTensor reports the sortedness of m's current order. The flags
// stored in m are not consulted or updated.
func IsSortedTensor(m *TensorMatrix) (rowSorted, colSorted bool, err error) {
	dtype, err := m.check()
	if err != nil {
		return false, false, err
	}
	if dtype == tensor.Int32 {
		return isSortedTyped[int32](m)
	}
	return isSortedTyped[int64](m)
}

func isSortedTyped[T int32 | int64](m *TensorMatrix) (bool, bool, error) {
	mat, err := matrixView[T](m)
	if err != nil {
		return false, false, err
	}
	rowSorted, colSorted := IsSorted(mat)
	return rowSorted, colSorted, nil
}

// matrixView returns a Matrix aliasing the tensors' buffers.
func matrixView[T int32 | int64](m *TensorMatrix) (*Matrix[T], error) {
	row, err := tensor.Values[T](m.Row)
	if err != nil {
		return nil, err
	}
	col, err := tensor.Values[T](m.Col)
	if err != nil {
		return nil, err
	}
	var data []T
	if m.Data != nil {
		if data, err = tensor.Values[T](m.Data); err != nil {
			return nil, err
		}
	}
	mat := &Matrix[T]{
		NumRows:   m.NumRows,
		NumCols:   m.NumCols,
		Row:       row,
		Col:       col,
		Data:      data,
		RowSorted: m.RowSorted,
		ColSorted: m.ColSorted,
	}
	if err := mat.validate(); err != nil {
		return nil, err
	}
	return mat, nil
}

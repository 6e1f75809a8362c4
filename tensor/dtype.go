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
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/apache/graphprep-go/common"
)

// DeviceType identifies where an array's memory lives.
type DeviceType int8

const (
	// CPU is host memory. It is the only device the array operations run on.
	CPU DeviceType = iota + 1
	// GPU is accelerator memory. Arrays may carry it but operations reject it.
	GPU
)

func (d DeviceType) String() string {
	switch d {
	case CPU:
		return "cpu"
	case GPU:
		return "gpu"
	default:
		return fmt.Sprintf("device(%d)", int8(d))
	}
}

// Context tags an array with its device.
type Context struct {
	Device   DeviceType
	DeviceID int
}

// CPUContext is the host context.
var CPUContext = Context{Device: CPU}

func (c Context) String() string {
	return fmt.Sprintf("%s:%d", c.Device, c.DeviceID)
}

// TypeCode is the kind of an element type.
type TypeCode uint8

// Element kinds.
const (
	Int TypeCode = iota
	UInt
	Float
)

// DType is an element type: its kind and its width in bits.
type DType struct {
	Code TypeCode
	Bits int
}

var (
	Int32   = DType{Code: Int, Bits: 32}
	Int64   = DType{Code: Int, Bits: 64}
	Float32 = DType{Code: Float, Bits: 32}
	Float64 = DType{Code: Float, Bits: 64}
)

func (d DType) String() string {
	switch d.Code {
	case Int:
		return fmt.Sprintf("int%d", d.Bits)
	case UInt:
		return fmt.Sprintf("uint%d", d.Bits)
	case Float:
		return fmt.Sprintf("float%d", d.Bits)
	default:
		return fmt.Sprintf("dtype(%d,%d)", d.Code, d.Bits)
	}
}

// IsID returns true for the identifier types, int32 and int64.
func (d DType) IsID() bool {
	return d == Int32 || d == Int64
}

// IsFloat returns true for the probability types, float32 and float64.
func (d DType) IsFloat() bool {
	return d == Float32 || d == Float64
}

// IDType returns the identifier type with the given width.
func IDType(bits int) (DType, error) {
	switch bits {
	case 32:
		return Int32, nil
	case 64:
		return Int64, nil
	default:
		return DType{}, fmt.Errorf("%w: identifier width must be 32 or 64 bits, got %d",
			common.ErrUnsupportedType, bits)
	}
}

func dtypeOf(dt arrow.DataType) (DType, bool) {
	switch dt.ID() {
	case arrow.INT8:
		return DType{Code: Int, Bits: 8}, true
	case arrow.INT16:
		return DType{Code: Int, Bits: 16}, true
	case arrow.INT32:
		return Int32, true
	case arrow.INT64:
		return Int64, true
	case arrow.UINT8:
		return DType{Code: UInt, Bits: 8}, true
	case arrow.UINT16:
		return DType{Code: UInt, Bits: 16}, true
	case arrow.UINT32:
		return DType{Code: UInt, Bits: 32}, true
	case arrow.UINT64:
		return DType{Code: UInt, Bits: 64}, true
	case arrow.FLOAT16:
		return DType{Code: Float, Bits: 16}, true
	case arrow.FLOAT32:
		return Float32, true
	case arrow.FLOAT64:
		return Float64, true
	default:
		return DType{}, false
	}
}

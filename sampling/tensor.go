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
	"math"

	"github.com/apache/graphprep-go/common"
	"github.com/apache/graphprep-go/random"
	"github.com/apache/graphprep-go/tensor"
)

// ChoiceTensor is Choice over a probability tensor. The result holds num
// indices of the identifier type with idBits bits, on prob's device.
func ChoiceTensor(rng random.Source, num int64, prob *tensor.Array, idBits int, replace bool) (*tensor.Array, error) {
	if prob == nil {
		return nil, fmt.Errorf("%w: nil probability tensor", common.ErrInvalidArgument)
	}
	if prob.Context().Device != tensor.CPU {
		return nil, fmt.Errorf("%w: weighted sampling on %s", common.ErrUnsupportedDevice, prob.Context())
	}
	if !prob.DType().IsFloat() {
		return nil, fmt.Errorf("%w: probabilities must be float32 or float64, got %s",
			common.ErrUnsupportedType, prob.DType())
	}
	idType, err := tensor.IDType(idBits)
	if err != nil {
		return nil, err
	}
	if err := checkTensorCount(num, int64(prob.Len()), idType); err != nil {
		return nil, err
	}
	switch {
	case idType == tensor.Int32 && prob.DType() == tensor.Float32:
		return choiceTyped[int32, float32](rng, num, prob, replace)
	case idType == tensor.Int32:
		return choiceTyped[int32, float64](rng, num, prob, replace)
	case prob.DType() == tensor.Float32:
		return choiceTyped[int64, float32](rng, num, prob, replace)
	default:
		return choiceTyped[int64, float64](rng, num, prob, replace)
	}
}

func choiceTyped[I int32 | int64, F float32 | float64](rng random.Source, num int64, prob *tensor.Array, replace bool) (*tensor.Array, error) {
	weights, err := tensor.Values[F](prob)
	if err != nil {
		return nil, err
	}
	out := make([]I, num)
	if err := Choice(rng, I(num), weights, out, replace); err != nil {
		return nil, err
	}
	return tensor.FromSlice(out, prob.Context()), nil
}

// UniformChoiceTensor is UniformChoice returning a tensor of the identifier
// type with idBits bits on ctx.
func UniformChoiceTensor(rng random.Source, num, population int64, idBits int, ctx tensor.Context, replace bool) (*tensor.Array, error) {
	if ctx.Device != tensor.CPU {
		return nil, fmt.Errorf("%w: uniform sampling on %s", common.ErrUnsupportedDevice, ctx)
	}
	idType, err := tensor.IDType(idBits)
	if err != nil {
		return nil, err
	}
	if err := checkTensorCount(num, population, idType); err != nil {
		return nil, err
	}
	if idType == tensor.Int32 {
		return uniformChoiceTyped[int32](rng, num, population, ctx, replace)
	}
	return uniformChoiceTyped[int64](rng, num, population, ctx, replace)
}

func uniformChoiceTyped[I int32 | int64](rng random.Source, num, population int64, ctx tensor.Context, replace bool) (*tensor.Array, error) {
	out := make([]I, num)
	if err := UniformChoice(rng, I(num), I(population), out, replace); err != nil {
		return nil, err
	}
	return tensor.FromSlice(out, ctx), nil
}

// checkTensorCount rejects counts the result buffer or identifier type
// cannot hold.
func checkTensorCount(num, population int64, idType tensor.DType) error {
	if num < 0 {
		return fmt.Errorf("%w: negative sample count %d", common.ErrInvalidArgument, num)
	}
	if idType == tensor.Int32 && (num > math.MaxInt32 || population > math.MaxInt32) {
		return fmt.Errorf("%w: %d samples from %d do not fit int32 identifiers",
			common.ErrInvalidArgument, num, population)
	}
	return nil
}

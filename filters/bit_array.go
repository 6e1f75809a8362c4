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


package filters

// bitArray is a dense bit vector stored in 64-bit words.
type bitArray []uint64

func newBitArray(numBits uint64) bitArray {
	return make(bitArray, (numBits+63)>>6)
}

func (b bitArray) get(index uint64) bool {
	return b[index>>6]&(1<<(index&0x3F)) != 0
}

// testAndSet sets the bit at index and returns its previous value.
func (b bitArray) testAndSet(index uint64) bool {
	word := &b[index>>6]
	mask := uint64(1) << (index & 0x3F)
	wasSet := *word&mask != 0
	*word |= mask
	return wasSet
}

func (b bitArray) clear() {
	clear(b)
}

func (b bitArray) clone() bitArray {
	return append(bitArray(nil), b...)
}

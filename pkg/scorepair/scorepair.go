// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scorepair implements the (midgame, endgame) scored-pair
// arithmetic (C1) the rest of the evaluator is built on. A pair is packed
// into a single int64 so that adding two pairs is a single add instruction
// instead of two, at the cost of having to guard the boundary between the
// two packed halves.
package scorepair

// Score is a packed (mg, eg) pair, stored as the int64 value eg<<32 + mg:
// the low 32 bits hold mg as a two's complement int32, and the high 32
// bits hold eg less the borrow a negative mg takes from them. The packing
// is linear, so addition and subtraction of Scores is ordinary int64
// addition/subtraction: as long as neither half ever overflows an int32
// (guaranteed for any legal position per the data model's bound of +-300
// per piece, <=16 pieces), MG and EG recover the summed halves exactly.
type Score int64

// S packs a midgame and an endgame value into a Score.
func S(mg, eg int32) Score {
	return Score(int64(eg)<<32 + int64(mg))
}

// MG extracts the midgame half.
func (s Score) MG() int32 {
	return int32(uint32(uint64(s)))
}

// EG extracts the endgame half. The +2^31 bias before the shift carries
// back the borrow that a negative midgame half takes from the endgame
// half.
func (s Score) EG() int32 {
	return int32(uint32(uint64(s+(1<<31)) >> 32))
}

// Add returns a + b.
func Add(a, b Score) Score {
	return a + b
}

// Scale returns a scaled by the integer factor k.
func Scale(a Score, k int32) Score {
	return S(a.MG()*k, a.EG()*k)
}

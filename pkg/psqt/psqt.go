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

// Package psqt builds the expanded, per-square piece-square tables (C2)
// consumed by the board's incremental material/position accumulator.
//
// The tables are authored once, compactly, in the "white" orientation
// with file symmetry: 32 entries per piece indexed by square.Relative32
// instead of 64. At init, the piece's base material value is folded in
// and the black half mirrored, producing the full [piece.N][square.N]
// table Expanded that Board.FillSquare/ClearSquare index directly; the
// evaluator itself never touches these tables.
package psqt

import (
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/scorepair"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// baseValue holds the material value of a piece type in the mg/eg phases.
var baseValue = [piece.TypeN]scorepair.Score{
	piece.Pawn:   scorepair.S(82, 94),
	piece.Knight: scorepair.S(337, 281),
	piece.Bishop: scorepair.S(365, 297),
	piece.Rook:   scorepair.S(477, 512),
	piece.Queen:  scorepair.S(1025, 936),
	piece.King:   scorepair.S(0, 0),
}

// relative32 tables: one row per relative rank (0 = own back rank, 7 =
// promotion rank), one column per edge-distance (0 = a/h-file, 3 =
// d/e-file). Values are additional-to-base positional offsets in
// centipawns, (mg, eg).
type table32 [32][2]int32

var pawnTable = table32{
	{0, 0}, {0, 0}, {0, 0}, {0, 0},
	{-10, 10}, {-2, 6}, {8, 2}, {14, 0},
	{-12, 16}, {0, 12}, {6, 8}, {18, 6},
	{-8, 26}, {4, 20}, {14, 14}, {24, 10},
	{4, 44}, {16, 36}, {22, 26}, {30, 18},
	{24, 78}, {36, 70}, {44, 58}, {50, 48},
	{60, 120}, {72, 110}, {80, 96}, {88, 84},
	{0, 0}, {0, 0}, {0, 0}, {0, 0},
}

var knightTable = table32{
	{-60, -50}, {-24, -34}, {-12, -22}, {-8, -18},
	{-30, -28}, {0, -12}, {10, -2}, {16, 4},
	{-18, -18}, {12, -2}, {24, 10}, {30, 18},
	{-10, -10}, {18, 4}, {30, 20}, {38, 26},
	{-6, -10}, {20, 4}, {32, 20}, {40, 28},
	{-12, -16}, {14, 0}, {26, 14}, {34, 20},
	{-30, -26}, {-2, -10}, {8, 2}, {14, 8},
	{-70, -56}, {-32, -34}, {-20, -22}, {-16, -16},
}

var bishopTable = table32{
	{-18, -14}, {-10, -8}, {-6, -4}, {-4, -2},
	{-10, -8}, {6, 0}, {10, 4}, {14, 6},
	{-6, -4}, {12, 2}, {18, 8}, {20, 10},
	{-4, -2}, {14, 4}, {22, 12}, {26, 14},
	{-4, -4}, {12, 4}, {20, 12}, {24, 16},
	{-2, -6}, {10, 0}, {16, 8}, {20, 10},
	{-8, -10}, {4, -2}, {8, 2}, {12, 6},
	{-22, -18}, {-6, -10}, {-10, -4}, {-10, -8},
}

var rookTable = table32{
	{-6, 8}, {-2, 6}, {2, 4}, {4, 2},
	{-14, 4}, {-6, 4}, {-2, 4}, {0, 2},
	{-14, 4}, {-6, 4}, {-2, 4}, {0, 2},
	{-14, 2}, {-6, 2}, {-2, 2}, {0, 1},
	{-14, 1}, {-6, 1}, {-2, 1}, {0, 0},
	{-14, -2}, {-6, -2}, {-2, -2}, {0, -4},
	{-10, -2}, {-2, -2}, {2, 0}, {6, 0},
	{0, 2}, {4, 1}, {8, 2}, {12, 1},
}

var queenTable = table32{
	{-10, -18}, {-4, -8}, {0, -2}, {4, 4},
	{-6, -10}, {0, 6}, {4, 12}, {8, 18},
	{-4, -6}, {4, 10}, {10, 20}, {14, 28},
	{-2, -2}, {6, 14}, {14, 26}, {18, 36},
	{-2, -2}, {6, 14}, {14, 26}, {18, 36},
	{-6, -8}, {0, 8}, {6, 16}, {10, 20},
	{-10, -12}, {-4, -4}, {2, 4}, {4, 8},
	{-16, -20}, {-8, -12}, {-6, -6}, {-4, -2},
}

var kingTable = table32{
	{24, -48}, {34, -24}, {10, -10}, {0, -6},
	{20, -20}, {20, 4}, {-4, 16}, {-14, 18},
	{-10, -8}, {-4, 16}, {-14, 26}, {-26, 28},
	{-22, -10}, {-18, 16}, {-26, 28}, {-36, 30},
	{-38, -14}, {-30, 10}, {-38, 24}, {-48, 28},
	{-42, -18}, {-34, 4}, {-42, 14}, {-52, 20},
	{-46, -22}, {-38, -2}, {-46, 8}, {-56, 12},
	{-50, -30}, {-42, -14}, {-50, -6}, {-60, -2},
}

var tables = [piece.TypeN]*table32{
	piece.Pawn:   &pawnTable,
	piece.Knight: &knightTable,
	piece.Bishop: &bishopTable,
	piece.Rook:   &rookTable,
	piece.Queen:  &queenTable,
	piece.King:   &kingTable,
}

// Expanded is the full [piece][square] scored-pair table, built once at
// init from the compact relative32 tables above.
var Expanded [piece.N][square.N]scorepair.Score

func init() {
	for t := piece.Pawn; t < piece.TypeN; t++ {
		tbl := tables[t]
		white := piece.New(t, piece.White)
		black := piece.New(t, piece.Black)

		// pass 1: fill every white square from the relative32 table
		for s := square.Square(0); s < square.N; s++ {
			offset := tbl[square.Relative32(true, s)]
			Expanded[white][s] = scorepair.Add(baseValue[t], scorepair.S(offset[0], offset[1]))
		}

		// pass 2: black is white's table mirrored vertically and negated
		for s := square.Square(0); s < square.N; s++ {
			Expanded[black][s] = scorepair.Scale(Expanded[white][s.Flip()], -1)
		}
	}
}

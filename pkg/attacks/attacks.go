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

// Package attacks dispatches to the right bitboard attack generator for
// a given piece. It is a thin seam between the evaluator and the
// underlying leaper tables / hyperbola-quintessence sliders in package
// bitboard, kept separate so the evaluator reads as piece-oriented code.
package attacks

import (
	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// Of returns the attack set of piece p standing on square s, given the
// board occupancy blockers. blockers is unused for leaper pieces.
func Of(p piece.Piece, s square.Square, blockers bitboard.Board) bitboard.Board {
	switch p.Type() {
	case piece.Pawn:
		return bitboard.PawnAttacks[p.Color()][s]
	case piece.Knight:
		return bitboard.KnightAttacks[s]
	case piece.Bishop:
		return bitboard.BishopAttacks(s, blockers)
	case piece.Rook:
		return bitboard.RookAttacks(s, blockers)
	case piece.Queen:
		return bitboard.QueenAttacks(s, blockers)
	case piece.King:
		return bitboard.KingAttacks[s]
	default:
		panic("attacks: unknown piece type")
	}
}

// PawnPush returns the single-step push of every pawn in pawns, for the
// given colour, without checking for blockers.
func PawnPush(pawns bitboard.Board, c piece.Color) bitboard.Board {
	return pawns.Up(c)
}

// Pawns returns the squares attacked by every pawn in pawns.
func Pawns(pawns bitboard.Board, c piece.Color) bitboard.Board {
	up := pawns.Up(c)
	return up.East() | up.West()
}

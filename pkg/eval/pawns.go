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

package eval

import (
	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// pawnsPass scores the pure pawn-structure term for colour c (isolated,
// doubled, backward, connected) and marks passed pawns. It is skipped
// for scoring purposes when a warm pawn-cache entry is available, but
// the shared attack maps still need pawnAttacks folded in regardless;
// that happens in accumulatePawnAttacks, called unconditionally by
// Evaluate before this function runs.
func pawnsPass(b *board.Board, e *info, c piece.Color) {
	if e.haveEntry {
		return
	}

	other := c.Other()
	ownPawns := b.PawnsBB(c)
	enemyPawns := b.PawnsBB(other)

	pawns := ownPawns
	for pawns != bitboard.Empty {
		s := pawns.Pop()
		file := s.File()

		if bitboard.Files[file]&ownPawns&^bitboard.Squares[s] != bitboard.Empty {
			e.addPawn(c, DoubledPawnPenalty)
		}

		isolated := bitboard.IsolatedPawnMask[s]&ownPawns == bitboard.Empty
		if isolated {
			e.addPawn(c, IsolatedPawnPenalty)
		} else if isBackward(b, s, c, ownPawns, enemyPawns) {
			e.addPawn(c, BackwardPawnPenalty)
		}

		if bitboard.PawnConnectedMask[c][s]&ownPawns != bitboard.Empty {
			e.addPawn(c, ConnectedPawnBonus[square.Relative32(c == piece.White, s)])
		}

		if bitboard.PassedPawnMask[c][s]&enemyPawns == bitboard.Empty {
			e.passedPawns.Set(s)
		}
	}
}

// isBackward reports whether the pawn on s has no pawn of its own colour
// able to defend it from behind, while the square in front of it is
// covered by an enemy pawn: semi-open in front, undefended behind.
func isBackward(b *board.Board, s square.Square, c piece.Color, ownPawns, enemyPawns bitboard.Board) bool {
	file := s.File()

	behindMask := bitboard.IsolatedPawnMask[s] | bitboard.Files[file]
	rank := s.Rank()

	var behind bitboard.Board
	if c == piece.White {
		for r := square.Rank(0); r <= rank; r++ {
			behind |= bitboard.Ranks[r]
		}
	} else {
		for r := rank; r < square.RankN; r++ {
			behind |= bitboard.Ranks[r]
		}
	}

	defenders := behindMask & behind &^ bitboard.Files[file] & ownPawns
	if defenders != bitboard.Empty {
		return false
	}

	stop := bitboard.Squares[s].Up(c)
	return stop&enemyPawnAttackSquares(enemyPawns, c.Other()) != bitboard.Empty
}

func enemyPawnAttackSquares(pawns bitboard.Board, c piece.Color) bitboard.Board {
	up := pawns.Up(c)
	return up.East() | up.West()
}

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
)

func queensPass(b *board.Board, e *info, c piece.Color) {
	other := c.Other()
	enemyPawns := b.PawnsBB(other)

	queens := b.QueensBB(c)
	for queens != bitboard.Empty {
		s := queens.Pop()
		newAttacks := bitboard.BishopAttacks(s, e.occupiedMinusBishops[c]) | bitboard.RookAttacks(s, e.occupiedMinusRooks[c])

		e.accumulateAttacks(c, newAttacks, true, attackWeightQueen)

		if bitboard.PawnAttacks[c][s]&enemyPawns != bitboard.Empty {
			e.add(c, QueenPawnThreatPenalty)
		} else if e.attackedNoQueen[other]&bitboard.Squares[s] != bitboard.Empty {
			e.add(c, QueenMinorThreatPenalty)
		}

		mobility := (newAttacks & e.mobilityAreas[c]).Count()
		e.add(c, QueenMobility[mobility])
	}
}

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
	"github.com/arbiter-chess/arbiter/pkg/attacks"
	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

func rooksPass(b *board.Board, e *info, c piece.Color) {
	other := c.Other()
	ownPawns := b.PawnsBB(c)
	enemyPawns := b.PawnsBB(other)
	white := c == piece.White

	rooks := b.RooksBB(c)
	for rooks != bitboard.Empty {
		s := rooks.Pop()
		newAttacks := attacks.Of(piece.New(piece.Rook, c), s, e.occupiedMinusRooks[c])

		e.accumulateAttacks(c, newAttacks, false, attackWeightRook)

		file := bitboard.Files[s.File()]
		ownAbsent := file&ownPawns == bitboard.Empty
		enemyAbsent := file&enemyPawns == bitboard.Empty
		switch {
		case ownAbsent && enemyAbsent:
			e.add(c, RookOpenFileBonus)
		case ownAbsent:
			e.add(c, RookSemiOpenFileBonus)
		}

		if square.RelativeRank(white, s) == square.Rank7 {
			e.add(c, RookSeventhRankBonus)
		}

		mobility := (newAttacks & e.mobilityAreas[c]).Count()
		e.add(c, RookMobility[mobility])
	}
}

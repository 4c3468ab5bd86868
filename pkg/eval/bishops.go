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

// lightSquare reports which of the two bishop colour complexes s
// belongs to: light squares have (file+rank) odd under this a1=0
// indexing convention, a1 being a dark square.
func lightSquare(s square.Square) bool {
	return (int(s.File())+int(s.Rank()))%2 == 1
}

func bishopsPass(b *board.Board, e *info, c piece.Color) {
	other := c.Other()
	ownPawns := b.PawnsBB(c)
	enemyPawns := b.PawnsBB(other)

	bishops := b.BishopsBB(c)

	haveLight, haveDark := false, false
	for scan := bishops; scan != bitboard.Empty; {
		s := scan.Pop()
		if lightSquare(s) {
			haveLight = true
		} else {
			haveDark = true
		}
	}
	if haveLight && haveDark {
		e.add(c, BishopPairBonus)
	}

	if ownPawns&bitboard.Files[square.FileA] != bitboard.Empty && ownPawns&bitboard.Files[square.FileH] != bitboard.Empty {
		e.add(c, BishopWingsBonus)
	}

	for bishops != bitboard.Empty {
		s := bishops.Pop()
		newAttacks := attacks.Of(piece.New(piece.Bishop, c), s, e.occupiedMinusBishops[c])

		e.accumulateAttacks(c, newAttacks, false, attackWeightMinor)

		if bitboard.PawnAttacks[c][s]&enemyPawns != bitboard.Empty {
			e.add(c, PawnAttackedPenalty)
		}

		if isOutpost, defended := outpostTier(s, c, ownPawns, enemyPawns); isOutpost {
			if defended {
				e.add(c, BishopOutpostDefendedBonus)
			} else {
				e.add(c, BishopOutpostBonus)
			}
		}

		mobility := (newAttacks & e.mobilityAreas[c]).Count()
		e.add(c, BishopMobility[mobility])
	}
}

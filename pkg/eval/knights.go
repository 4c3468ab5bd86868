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
)

func knightsPass(b *board.Board, e *info, c piece.Color) {
	other := c.Other()
	ownPawns := b.PawnsBB(c)
	enemyPawns := b.PawnsBB(other)

	knights := b.KnightsBB(c)
	for knights != bitboard.Empty {
		s := knights.Pop()
		newAttacks := attacks.Of(piece.New(piece.Knight, c), s, b.Occupied())

		e.accumulateAttacks(c, newAttacks, false, attackWeightMinor)

		if bitboard.PawnAttacks[c][s]&enemyPawns != bitboard.Empty {
			e.add(c, PawnAttackedPenalty)
		}

		if isOutpost, defended := outpostTier(s, c, ownPawns, enemyPawns); isOutpost {
			if defended {
				e.add(c, KnightOutpostDefendedBonus)
			} else {
				e.add(c, KnightOutpostBonus)
			}
		}

		mobility := (newAttacks & e.mobilityAreas[c]).Count()
		e.add(c, KnightMobility[mobility])
	}
}

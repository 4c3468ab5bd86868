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
	"math"

	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/scorepair"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

func kingsPass(b *board.Board, e *info, c piece.Color) {
	other := c.Other()
	king := b.King(c)

	defenders := (b.PawnsBB(c) | b.KnightsBB(c) | b.BishopsBB(c)) & e.kingAreas[c]
	count := defenders.Count()
	if count > 7 {
		count = 7
	}
	e.add(c, KingDefenders[count])

	if e.attackerCounts[other] >= 2 {
		scale := KingDangerScale[minInt(e.attackerCounts[other], 7)]
		x := float64(e.attackCounts[other]) * 2 * scale

		if b.QueensBB(other) == bitboard.Empty {
			x *= 0.25
		}
		if b.RooksBB(other) == bitboard.Empty {
			x *= 0.80
		}

		linear := scorepair.Scale(KingDangerLinear, int32(x))
		quadFactor := int32(math.Pow(x, KingDangerExponent))
		quad := scorepair.Scale(KingDangerQuad, quadFactor)

		e.add(c, scorepair.Add(linear, quad))
	}

	white := c == piece.White
	onCentre := 0
	if king.File() >= square.FileC && king.File() <= square.FileF {
		onCentre = 1
	}

	ownPawns := b.PawnsBB(c)
	for f := king.File() - 1; f <= king.File()+1; f++ {
		if f < square.FileA || f >= square.FileN {
			continue
		}

		isKingFile := 0
		if f == king.File() {
			isKingFile = 1
		}

		var d int
		if white {
			d = shelterDistance(bitboard.Files[f], ownPawns, king, piece.White)
		} else {
			d = shelterDistance(bitboard.Files[f], ownPawns, king, piece.Black)
		}

		e.add(c, KingShelter[isKingFile][onCentre][d])
	}
}

func minInt(a int32, b int) int {
	if int(a) < b {
		return int(a)
	}
	return b
}

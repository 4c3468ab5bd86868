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

// passedPawnsPass scores every passed pawn of colour c recorded in
// e.passedPawns, which by this point holds either the pawn pass's fresh
// findings or the pawn cache entry's copy.
func passedPawnsPass(b *board.Board, e *info, c piece.Color) {
	own := e.passedPawns & b.PawnsBB(c)
	occupied := b.Occupied()

	for own != bitboard.Empty {
		s := own.Pop()

		stop := attacks.PawnPush(bitboard.Squares[s], c)
		canAdvance := 0
		if stop&occupied == bitboard.Empty {
			canAdvance = 1
		}

		safeAdvance := 0
		if stop&e.attacked[c.Other()] == bitboard.Empty {
			safeAdvance = 1
		}

		rank := square.RelativeRank(c == piece.White, s)
		e.add(c, PassedPawn[canAdvance][safeAdvance][rank])
	}
}

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
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// outpostTier reports whether s is an outpost for colour c given
// ownPawns/enemyPawns, and whether it is additionally defended by one of
// ownPawns. An outpost square lies in the colour's forward rank range
// and cannot be challenged by any enemy pawn.
func outpostTier(s square.Square, c piece.Color, ownPawns, enemyPawns bitboard.Board) (isOutpost, defended bool) {
	if bitboard.OutpostRank[c]&bitboard.Squares[s] == bitboard.Empty {
		return false, false
	}
	if bitboard.OutpostSquareMask[c][s]&enemyPawns != bitboard.Empty {
		return false, false
	}

	defenders := bitboard.PawnAttacks[c.Other()][s] & ownPawns
	return true, defenders != bitboard.Empty
}

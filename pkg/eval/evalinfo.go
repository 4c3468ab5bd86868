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
	"github.com/arbiter-chess/arbiter/pkg/pawncache"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/scorepair"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// weights applied to a piece type's intrusion into the enemy king area,
// for the king-danger attackCounts accumulator. Pawns are handled
// separately: they contribute their weight once in aggregate, not once
// per attacking pawn.
const (
	attackWeightMinor = 2
	attackWeightRook  = 3
	attackWeightQueen = 4
	attackWeightPawns = 2
)

// info is the call-scoped scratch state threaded through one evaluation.
// It is never shared across goroutines: a fresh instance is built for
// every call to Evaluate.
type info struct {
	pawnAttacks     [piece.ColorN]bitboard.Board
	attacked        [piece.ColorN]bitboard.Board
	attackedBy2     [piece.ColorN]bitboard.Board
	attackedNoQueen [piece.ColorN]bitboard.Board

	blockedPawns         [piece.ColorN]bitboard.Board
	mobilityAreas        [piece.ColorN]bitboard.Board
	kingAreas            [piece.ColorN]bitboard.Board
	occupiedMinusBishops [piece.ColorN]bitboard.Board
	occupiedMinusRooks   [piece.ColorN]bitboard.Board

	passedPawns bitboard.Board

	midgame     [piece.ColorN]int32
	endgame     [piece.ColorN]int32
	pawnMidgame [piece.ColorN]int32
	pawnEndgame [piece.ColorN]int32

	attackCounts   [piece.ColorN]int32
	attackerCounts [piece.ColorN]int32

	pentry    pawncache.Entry
	haveEntry bool
}

func (e *info) add(c piece.Color, s scorepair.Score) {
	e.midgame[c] += s.MG()
	e.endgame[c] += s.EG()
}

func (e *info) addPawn(c piece.Color, s scorepair.Score) {
	e.pawnMidgame[c] += s.MG()
	e.pawnEndgame[c] += s.EG()
}

// seed builds a fresh info for b, computing everything step 2 of the
// evaluation algorithm derives before any per-piece pass runs.
func seed(b *board.Board, cache *pawncache.Table) *info {
	e := &info{}

	for c := piece.White; c < piece.ColorN; c++ {
		pawns := b.PawnsBB(c)
		e.pawnAttacks[c] = attacks.Pawns(pawns, c)
	}

	for c := piece.White; c < piece.ColorN; c++ {
		other := c.Other()
		push := attacks.PawnPush(b.PawnsBB(c), c)
		e.blockedPawns[c] = (push & b.Occupied()).Down(c)

		king := b.King(c)
		e.kingAreas[c] = bitboard.KingAreaMask[king]

		e.mobilityAreas[c] = ^(e.pawnAttacks[other] | bitboard.Squares[king] | e.blockedPawns[c])

		e.attacked[c] = bitboard.KingAttacks[king]
		e.attackedNoQueen[c] = bitboard.KingAttacks[king]

		e.occupiedMinusBishops[c] = b.Occupied() &^ (b.BishopsBB(c) | b.QueensBB(c))
		e.occupiedMinusRooks[c] = b.Occupied() &^ (b.RooksBB(c) | b.QueensBB(c))
	}

	if entry, ok := cache.Probe(b.PawnHash); ok {
		e.pentry = entry
		e.haveEntry = true
	}

	return e
}

// accumulateAttacks folds newAttacks from one piece into the shared
// attack maps and, if it reaches into the enemy king area, into the
// king-danger accumulators. queen is true for queen attacks, which are
// excluded from attackedNoQueen.
func (e *info) accumulateAttacks(c piece.Color, newAttacks bitboard.Board, queen bool, weight int32) {
	e.attackedBy2[c] |= e.attacked[c] & newAttacks
	e.attacked[c] |= newAttacks
	if !queen {
		e.attackedNoQueen[c] |= newAttacks
	}

	other := c.Other()
	if hit := newAttacks & e.kingAreas[other]; hit != bitboard.Empty {
		e.attackCounts[c] += weight * int32(hit.Count())
		e.attackerCounts[c]++
	}
}

// accumulatePawnAttacks folds the aggregate pawn attack map into the
// shared attack state for colour c. Per §9's preserved ordering, the
// by-two update reads attacked before pawnAttacks is folded in, so a
// square attacked by exactly one pawn and nothing else is not counted
// as attacked twice.
func (e *info) accumulatePawnAttacks(c piece.Color) {
	e.attackedBy2[c] |= e.attacked[c] & e.pawnAttacks[c]
	e.attacked[c] |= e.pawnAttacks[c]
	e.attackedNoQueen[c] |= e.pawnAttacks[c]

	other := c.Other()
	if hit := e.pawnAttacks[c] & e.kingAreas[other]; hit != bitboard.Empty {
		e.attackCounts[c] += attackWeightPawns
		e.attackerCounts[c]++
	}
}

func shelterDistance(file bitboard.Board, ownPawns bitboard.Board, king square.Square, c piece.Color) int {
	onFile := file & ownPawns
	if onFile == bitboard.Empty {
		return 0
	}

	var pawnSquare square.Square
	if c == piece.White {
		pawnSquare = onFile.FirstOne()
	} else {
		pawnSquare = square.Square(63 - onFile.Reverse().FirstOne())
	}

	d := int(pawnSquare.Rank()) - int(king.Rank())
	if d < 0 {
		d = -d
	}
	if d > 7 {
		d = 7
	}
	if d == 0 {
		d = 1
	}
	return d
}

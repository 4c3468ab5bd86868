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

// Package eval implements the position evaluator (C6): the single
// entry point the search calls on every leaf node. It seeds a
// call-scoped EvalInfo from the board, runs a fixed-order sweep of
// per-piece-type passes that accumulate into shared attack bitboards
// and per-colour mid/endgame totals, consults the pawn-structure cache
// to skip redundant pawn-only work, and interpolates a single scalar
// from the resulting material-derived phase.
//
// Evaluate is pure with respect to the board: it never mutates it.
// Its only side effect is a possible write into the pawn cache, which
// is itself safe because the cache is meant to be owned by a single
// calling goroutine (see pawncache's package doc).
package eval

import (
	"github.com/arbiter-chess/arbiter/pkg/bitboard"
	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/pawncache"
	"github.com/arbiter-chess/arbiter/pkg/piece"
)

// Tune, when true, disables the pawn-cache write on every call: useful
// for a tuning harness that wants every call to recompute from scratch.
// The off path costs one branch.
var Tune = false

// Evaluate scores b from the perspective of the side to move.
func Evaluate(b *board.Board, cache *pawncache.Table) int32 {
	if insufficientMaterial(b) {
		return 0
	}

	e := seed(b, cache)

	for c := piece.White; c < piece.ColorN; c++ {
		e.accumulatePawnAttacks(c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		pawnsPass(b, e, c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		knightsPass(b, e, c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		bishopsPass(b, e, c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		rooksPass(b, e, c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		queensPass(b, e, c)
	}
	for c := piece.White; c < piece.ColorN; c++ {
		kingsPass(b, e, c)
	}

	var pawnMG, pawnEG int32
	if e.haveEntry {
		e.passedPawns = bitboard.Board(e.pentry.Passed)
		pawnMG = int32(e.pentry.MG)
		pawnEG = int32(e.pentry.EG)
	} else {
		pawnMG = e.pawnMidgame[piece.White] - e.pawnMidgame[piece.Black]
		pawnEG = e.pawnEndgame[piece.White] - e.pawnEndgame[piece.Black]
		if !Tune {
			cache.Store(b.PawnHash, int16(clampI16(pawnMG)), int16(clampI16(pawnEG)), uint64(e.passedPawns))
		}
	}

	for c := piece.White; c < piece.ColorN; c++ {
		passedPawnsPass(b, e, c)
	}

	// the board keeps each running total in the low half of its Score
	mg := b.Midgame.MG() + (e.midgame[piece.White] - e.midgame[piece.Black]) + pawnMG
	eg := b.Endgame.MG() + (e.endgame[piece.White] - e.endgame[piece.Black]) + pawnEG

	mg += Tempo[b.SideToMove].MG()
	eg += Tempo[b.SideToMove].EG()

	phase := computePhase(b)
	raw := (mg*(256-phase) + eg*phase) / 256

	if b.SideToMove == piece.White {
		return raw
	}
	return -raw
}

// computePhase derives the 0..256 interpolation factor from the
// remaining major/minor material: 0 is full midgame, 256 is full
// endgame.
func computePhase(b *board.Board) int32 {
	q := b.BitboardPiece(piece.Queen).Count()
	r := b.BitboardPiece(piece.Rook).Count()
	n := b.BitboardPiece(piece.Knight).Count()
	bi := b.BitboardPiece(piece.Bishop).Count()

	units := 24 - 4*q - 2*r - (n + bi)
	if units < 0 {
		units = 0
	}
	if units > 24 {
		units = 24
	}

	return int32(units*256+12) / 24
}

func clampI16(v int32) int32 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return v
}

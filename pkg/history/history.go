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

// Package history implements the move-ordering heuristics built from a
// search's own history (C5): a gravity-damped score per (colour, from,
// to) square pair, and a one-slot-per-context counter-move table.
//
// Both tables are meant to be owned by a single search worker; nothing
// here is safe for concurrent use, the same way pawncache is not.
package history

import (
	"github.com/arbiter-chess/arbiter/pkg/move"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

// clampDelta bounds the magnitude of a single update.
const clampDelta = 400

// bound is the domain every table entry is kept within.
const bound = 16384

// Table is the history-heuristic table: one gravity-damped score per
// (colour, from-square, to-square), plus a counter-move slot per
// (colour-to-move, previous piece kind, previous to-square).
type Table struct {
	scores   [piece.ColorN][square.N][square.N]int16
	counters [piece.ColorN][piece.TypeN][square.N]move.Move
}

// New returns an empty history table.
func New() *Table {
	return &Table{}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Update applies a single gravity-damped adjustment to the (colour,
// from, to) entry. delta is clamped to [-400,400] before being applied,
// and the entry itself never leaves [-16384,16384]: the self-damping
// term e·|delta|/512 shrinks the update as e approaches either bound.
func (t *Table) Update(c piece.Color, from, to square.Square, delta int) {
	delta = clamp(delta, -clampDelta, clampDelta)

	e := &t.scores[c][from][to]
	adjusted := int(*e) + 32*delta - int(*e)*abs(delta)/512
	*e = int16(clamp(adjusted, -bound, bound))
}

// Score returns the current history score for (colour, from, to).
func (t *Table) Score(c piece.Color, from, to square.Square) int16 {
	return t.scores[c][from][to]
}

// StoreCounter records m as the reply to the opponent's previous move,
// which brought prevPiece to prevTo. c is the colour to move now (the
// side that played m, i.e. the opponent of the piece that moved to
// prevTo).
func (t *Table) StoreCounter(c piece.Color, prevPiece piece.Type, prevTo square.Square, m move.Move) {
	t.counters[c][prevPiece][prevTo] = m
}

// Counter returns the stored reply to the opponent move that brought
// prevPiece to prevTo, for the side to move now. If prevMove is
// move.None (no previous move, e.g. at the root), Counter returns
// move.None.
func (t *Table) Counter(c piece.Color, prevPiece piece.Type, prevTo square.Square, prevMove move.Move) move.Move {
	if prevMove == move.None {
		return move.None
	}
	return t.counters[c][prevPiece][prevTo]
}

// Clear empties both tables.
func (t *Table) Clear() {
	*t = Table{}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

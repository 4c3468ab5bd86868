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

// Package move implements the compact 16-bit move encoding shared by the
// transposition table, the history heuristic, and the board.
package move

import "github.com/arbiter-chess/arbiter/pkg/square"

// Move packs a from-square, a to-square, and a small set of flags into a
// single 16-bit value: [flags:4][to:6][from:6].
type Move uint16

// None represents the absence of a move, e.g. an empty TT slot or a
// counter-move lookup that found nothing.
const None Move = 0

// flag values
const (
	Quiet Move = iota
	Capture
	Promotion
	CapturePromotion
	EnPassant
	Castle
)

// New builds a Move from its components.
func New(from, to square.Square, flag Move) Move {
	return Move(from)&0x3f | (Move(to)&0x3f)<<6 | (flag&0xf)<<12
}

// Source returns the move's origin square.
func (m Move) Source() square.Square {
	return square.Square(m & 0x3f)
}

// Target returns the move's destination square.
func (m Move) Target() square.Square {
	return square.Square((m >> 6) & 0x3f)
}

// Flag returns the move's flag bits.
func (m Move) Flag() Move {
	return (m >> 12) & 0xf
}

// IsCapture reports whether the move removes an enemy piece, which
// excludes it from quiet-move ordering heuristics like history.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case Capture, CapturePromotion, EnPassant:
		return true
	default:
		return false
	}
}

func (m Move) String() string {
	if m == None {
		return "0000"
	}
	return m.Source().String() + m.Target().String()
}

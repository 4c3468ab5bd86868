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

package history_test

import (
	"testing"

	"github.com/arbiter-chess/arbiter/pkg/history"
	"github.com/arbiter-chess/arbiter/pkg/move"
	"github.com/arbiter-chess/arbiter/pkg/piece"
	"github.com/arbiter-chess/arbiter/pkg/square"
)

func TestUpdateStaysInBounds(t *testing.T) {
	h := history.New()

	for i := 0; i < 1000; i++ {
		h.Update(piece.White, square.NewFromString("e2"), square.NewFromString("e4"), 400)
	}
	got := h.Score(piece.White, square.NewFromString("e2"), square.NewFromString("e4"))
	if got < 16000 || got > 16384 {
		t.Errorf("positive gravity update out of expected range: got %d", got)
	}

	h2 := history.New()
	for i := 0; i < 1000; i++ {
		h2.Update(piece.White, square.NewFromString("e2"), square.NewFromString("e4"), -400)
	}
	got2 := h2.Score(piece.White, square.NewFromString("e2"), square.NewFromString("e4"))
	if got2 < -16384 || got2 > -16000 {
		t.Errorf("negative gravity update out of expected range: got %d", got2)
	}
}

func TestUpdateClampsDelta(t *testing.T) {
	h := history.New()
	h.Update(piece.White, square.NewFromString("a1"), square.NewFromString("a2"), 100000)
	clamped := h.Score(piece.White, square.NewFromString("a1"), square.NewFromString("a2"))

	h2 := history.New()
	h2.Update(piece.White, square.NewFromString("a1"), square.NewFromString("a2"), 400)
	wantEquivalent := h2.Score(piece.White, square.NewFromString("a1"), square.NewFromString("a2"))

	if clamped != wantEquivalent {
		t.Errorf("delta not clamped to 400: got %d, want %d", clamped, wantEquivalent)
	}
}

func TestCounterNoneOnNilPrevMove(t *testing.T) {
	h := history.New()
	h.StoreCounter(piece.White, piece.Knight, square.NewFromString("f3"), move.New(square.NewFromString("e2"), square.NewFromString("e4"), move.Quiet))

	if got := h.Counter(piece.White, piece.Knight, square.NewFromString("f3"), move.None); got != move.None {
		t.Errorf("Counter with move.None previous move: got %v, want None", got)
	}
}

func TestCounterRoundTrip(t *testing.T) {
	h := history.New()
	reply := move.New(square.NewFromString("d7"), square.NewFromString("d5"), move.Quiet)
	prevMove := move.New(square.NewFromString("g1"), square.NewFromString("f3"), move.Quiet)

	h.StoreCounter(piece.Black, piece.Knight, square.NewFromString("f3"), reply)

	got := h.Counter(piece.Black, piece.Knight, square.NewFromString("f3"), prevMove)
	if got != reply {
		t.Errorf("counter round-trip: got %v, want %v", got, reply)
	}
}

func TestClear(t *testing.T) {
	h := history.New()
	h.Update(piece.White, square.NewFromString("b1"), square.NewFromString("c3"), 400)
	h.StoreCounter(piece.White, piece.Pawn, square.NewFromString("e4"), move.New(square.NewFromString("g8"), square.NewFromString("f6"), move.Quiet))

	h.Clear()

	if got := h.Score(piece.White, square.NewFromString("b1"), square.NewFromString("c3")); got != 0 {
		t.Errorf("score after Clear: got %d, want 0", got)
	}
	if got := h.Counter(piece.White, piece.Pawn, square.NewFromString("e4"), move.New(square.NewFromString("a2"), square.NewFromString("a4"), move.Quiet)); got != move.None {
		t.Errorf("counter after Clear: got %v, want None", got)
	}
}

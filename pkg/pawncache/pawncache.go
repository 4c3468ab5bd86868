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

// Package pawncache implements the pawn-structure hash table (C3): a
// small, direct-mapped, overwrite-on-collision cache of the pure
// pawn-only sub-evaluation, keyed by the board's pawn-only Zobrist hash.
//
// Pawn structure is the same for both sides' other pieces, doesn't change
// on every move, and is comparatively expensive to recompute (stacked,
// isolated, backward, connected, and passed-pawn detection). Caching it
// amortises that cost across the many nodes of a search tree that share a
// pawn skeleton. The table is meant to be owned by a single search worker:
// concurrent access is intentionally unsupported, see the package doc of
// eval for why that is safe.
package pawncache

import "github.com/arbiter-chess/arbiter/pkg/zobrist"

// Entry is one slot of the pawn cache: the pure pawn evaluation of a
// pawn structure, plus the combined passed-pawn bitmask for both
// colours.
type Entry struct {
	Hash    zobrist.Key
	MG, EG  int16
	Passed  uint64
	inUse   bool
}

// defaultSize is the number of slots in a freshly-constructed Table; it
// is a power of two so indexing is a plain mask.
const defaultSize = 1 << 16

// Table is a direct-mapped pawn-hash table: every probe/store touches
// exactly one slot, chosen by the low bits of the pawn hash, and a
// collision simply overwrites whatever was there. No chaining, no probe
// sequence: the entry is cheap enough to recompute that correctness
// never depends on retention.
type Table struct {
	slots []Entry
	mask  uint64
}

// New creates a pawn cache with the given number of slots, rounded down
// to the nearest power of two (at least 1024).
func New(slots int) *Table {
	if slots < 1024 {
		slots = 1024
	}

	size := 1
	for size*2 <= slots {
		size *= 2
	}

	return &Table{
		slots: make([]Entry, size),
		mask:  uint64(size - 1),
	}
}

// NewDefault creates a pawn cache of the default size.
func NewDefault() *Table {
	return New(defaultSize)
}

// Probe looks up hash. ok is false if the slot is empty or holds a
// different pawn structure, in which case entry is the zero value and
// must not be used.
func (t *Table) Probe(hash zobrist.Key) (entry Entry, ok bool) {
	slot := &t.slots[uint64(hash)&t.mask]
	if slot.inUse && slot.Hash == hash {
		return *slot, true
	}
	return Entry{}, false
}

// Store writes (or overwrites) the slot for hash with a fresh pawn
// evaluation.
func (t *Table) Store(hash zobrist.Key, mg, eg int16, passed uint64) {
	slot := &t.slots[uint64(hash)&t.mask]
	*slot = Entry{Hash: hash, MG: mg, EG: eg, Passed: passed, inUse: true}
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = Entry{}
	}
}

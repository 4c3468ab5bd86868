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

// Command arbiter evaluates one or more FENs against the core tables
// and prints the resulting scores. It exists to exercise the evaluator
// end to end, the way a search driver would, without implementing a
// search itself.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"

	"github.com/arbiter-chess/arbiter/pkg/board"
	"github.com/arbiter-chess/arbiter/pkg/eval"
	"github.com/arbiter-chess/arbiter/pkg/pawncache"
)

var log = logging.MustGetLogger("arbiter")

// config is the on-disk configuration loaded from arbiter.toml, if
// present. Every field has a usable zero/default, so a missing file is
// not an error.
type config struct {
	PawnCacheSlots int  `toml:"pawn_cache_slots"`
	Tune           bool `toml:"tune"`
	Profile        bool `toml:"profile"`
}

func loadConfig(path string) config {
	cfg := config{PawnCacheSlots: 1 << 16}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		log.Warningf("could not read %s: %v", path, err)
	}
	return cfg
}

func main() {
	logging.SetFormatter(logging.MustStringFormatter(`%{level:.4s} %{message}`))

	cfg := loadConfig("arbiter.toml")
	eval.Tune = cfg.Tune

	if cfg.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	fens := os.Args[1:]
	if len(fens) == 0 {
		fens = readStdinFens()
	}

	if err := evaluateAll(fens, cfg); err != nil {
		log.Errorf("evaluation failed: %v", err)
		os.Exit(1)
	}
}

// evaluateAll scores every FEN in fens concurrently, each worker owning
// its own pawn cache the way independent search threads would, and
// prints results in input order once all workers finish.
func evaluateAll(fens []string, cfg config) error {
	scores := make([]int32, len(fens))

	var g errgroup.Group
	for i, fen := range fens {
		i, fen := i, fen
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("evaluating %q: %v", fen, r)
				}
			}()
			cache := pawncache.New(cfg.PawnCacheSlots)
			b := board.NewFromFEN(fen)
			scores[i] = eval.Evaluate(b, cache)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, fen := range fens {
		fmt.Printf("%d\t%s\n", scores[i], fen)
	}
	return nil
}

func readStdinFens() []string {
	var fens []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			fens = append(fens, line)
		}
	}
	if len(fens) == 0 {
		fens = []string{board.StartFEN}
	}
	return fens
}

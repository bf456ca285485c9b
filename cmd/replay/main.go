// Command replay plays every game of a PGN file through board.Apply, checks
// each position against notnil/chess, then unwinds each game back to its
// start with board.Undo.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/notnil/chess"

	"chess-core/board"
	"chess-core/movegen"
)

var errReplay = errors.New("replay mismatch")

func main() {
	pgnPath := flag.String("pgn", "", "PGN file to replay (defaults to stdin)")
	verbose := flag.Bool("v", false, "Print one line per game")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *pgnPath != "" {
		f, err := os.Open(*pgnPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open pgn: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		r = f
	}

	games, err := chess.GamesFromPGN(r)
	if err != nil {
		log.Fatalf("read pgn: %v", err)
	}

	var plies, failed int
	for i, g := range games {
		n, err := replay(g)
		plies += n
		if err != nil {
			failed++
			log.Printf("game %d: %v", i+1, err)
			continue
		}
		if *verbose {
			log.Printf("game %d: %d plies ok", i+1, n)
		}
	}
	fmt.Printf("games %d \tplies %d \tfailed %d\n", len(games), plies, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// replay applies the moves of g and returns the number of plies played.
func replay(g *chess.Game) (int, error) {
	positions := g.Positions()
	moves := g.Moves()

	b, side, err := board.ParseFEN(positions[0].String())
	if err != nil {
		return 0, err
	}
	start := *b
	st := board.NewStack(len(moves))

	for i, nm := range moves {
		want := movegen.FromNotnil(positions[i], nm)
		m := movegen.Classify(b, side, want.From(), want.To(), want.Flag().PromotionType())
		if m != want {
			return i, fmt.Errorf("%w: ply %d %v classified as %v, notnil says %v", errReplay, i+1, m, m.Flag(), want.Flag())
		}
		st.Push(b, m, side)
		side = side.Other()
		if err := b.Validate(); err != nil {
			return i + 1, fmt.Errorf("ply %d %v: %w", i+1, m, err)
		}
		if got, want := b.FEN(), positions[i+1].Board().String(); got != want {
			return i + 1, fmt.Errorf("%w: ply %d %v gives %s, want %s", errReplay, i+1, m, got, want)
		}
	}

	st.Unwind(b)
	if *b != start {
		return len(moves), fmt.Errorf("%w: unwinding did not restore %s", errReplay, start.FEN())
	}
	return len(moves), nil
}

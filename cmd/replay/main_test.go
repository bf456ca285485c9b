package main

import (
	"strings"
	"testing"

	"github.com/notnil/chess"
)

// En passant, promotion with capture and castling on both sides.
const samplePGN = `[Event "sample"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. e4 Nf6 2. e5 d5 3. exd6 Bf5 4. dxc7 Nc6 5. cxd8=Q+ Rxd8 6. Nf3 e6 7. Be2 Bd6 8. O-O O-O *

[Event "short"]
[Site "?"]
[Date "????.??.??"]
[Round "?"]
[White "?"]
[Black "?"]
[Result "*"]

1. d4 d5 2. Nc3 Nc6 3. Bf4 Bf5 4. Qd2 Qd7 5. O-O-O O-O-O *
`

func TestReplay(t *testing.T) {
	games, err := chess.GamesFromPGN(strings.NewReader(samplePGN))
	if err != nil {
		t.Fatalf("GamesFromPGN: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	for i, want := range []int{16, 10} {
		n, err := replay(games[i])
		if err != nil {
			t.Fatalf("game %d: %v", i+1, err)
		}
		if n != want {
			t.Fatalf("game %d: %d plies, want %d", i+1, n, want)
		}
	}
}

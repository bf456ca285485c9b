package movegen_test

import (
	"errors"
	"testing"

	"chess-core/board"
	"chess-core/movegen"
)

const (
	kiwipete  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	position3 = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	position4 = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	position5 = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

var perftCases = []struct {
	name string
	fen  string
	want []uint64 // indexed by depth-1
}{
	{"start", board.StartFEN, []uint64{20, 400, 8902}},
	{"kiwipete", kiwipete, []uint64{48, 2039, 97862}},
	{"position3", position3, []uint64{14, 191, 2812}},
	{"position4", position4, []uint64{6, 264, 9467}},
	{"position5", position5, []uint64{44, 1486, 62379}},
}

func mustGame(t testing.TB, fen, gen string) *movegen.Game {
	t.Helper()
	g, err := movegen.NewGame(fen, gen)
	if err != nil {
		t.Fatalf("NewGame(%q, %s): %v", fen, gen, err)
	}
	return g
}

func TestPerft(t *testing.T) {
	for _, gen := range movegen.Names() {
		for _, tc := range perftCases {
			t.Run(gen+"/"+tc.name, func(t *testing.T) {
				maxDepth := len(tc.want)
				if testing.Short() || gen == movegen.NameNotnil {
					// notnil rebuilds positions per move and is much slower.
					maxDepth = 2
				}
				g := mustGame(t, tc.fen, gen)
				start := *g.Board()
				for depth := 1; depth <= maxDepth; depth++ {
					if got := g.Perft(depth); got != tc.want[depth-1] {
						t.Fatalf("perft depth%d: got %d want %d", depth, got, tc.want[depth-1])
					}
				}
				if *g.Board() != start {
					t.Fatalf("board not restored after perft:\n%v", g.Board())
				}
				if g.Ply() != 0 {
					t.Fatalf("ply after perft = %d", g.Ply())
				}
			})
		}
	}
}

func TestVerifiedPerft(t *testing.T) {
	for _, gen := range movegen.Names() {
		for _, tc := range perftCases {
			t.Run(gen+"/"+tc.name, func(t *testing.T) {
				g := mustGame(t, tc.fen, gen)
				got, err := g.VerifiedPerft(2)
				if err != nil {
					t.Fatalf("VerifiedPerft: %v", err)
				}
				if got != tc.want[1] {
					t.Fatalf("verified perft depth2: got %d want %d", got, tc.want[1])
				}
			})
		}
	}
}

func TestGeneratorsAgree(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			var ref map[string]uint64
			for _, gen := range movegen.Names() {
				div := mustGame(t, tc.fen, gen).Divide(2)
				if ref == nil {
					ref = div
					continue
				}
				if len(div) != len(ref) {
					t.Fatalf("%s: %d root moves, want %d", gen, len(div), len(ref))
				}
				for m, n := range ref {
					if div[m] != n {
						t.Errorf("%s: %s = %d, want %d", gen, m, div[m], n)
					}
				}
			}
		})
	}
}

// Every generator must translate a root move into the same board.Move,
// including flag and captured piece.
func TestTranslationsAgree(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			var ref map[string]board.Move
			for _, gen := range movegen.Names() {
				moves := mustGame(t, tc.fen, gen).Moves()
				got := make(map[string]board.Move, len(moves))
				for _, m := range moves {
					got[m.String()] = m
				}
				if ref == nil {
					ref = got
					continue
				}
				for s, m := range ref {
					if got[s] != m {
						t.Errorf("%s: %s translated as %v/%v, want %v/%v", gen, s, got[s].Flag(), got[s].Captured(), m.Flag(), m.Captured())
					}
				}
			}
		})
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name     string
		fen      string
		from, to board.Square
		promo    board.PieceType
		flag     board.Flag
		captured board.Piece
	}{
		{"quiet", board.StartFEN, board.G1, board.F3, board.NoPieceType, board.Quiet, board.NoPiece},
		{"single push", board.StartFEN, board.E2, board.E3, board.NoPieceType, board.Quiet, board.NoPiece},
		{"double push", board.StartFEN, board.E2, board.E4, board.NoPieceType, board.PawnDouble, board.NoPiece},
		{"black double push", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", board.D7, board.D5, board.NoPieceType, board.PawnDouble, board.NoPiece},
		{"capture", kiwipete, board.D5, board.E6, board.NoPieceType, board.Capture, board.BlackPawn},
		{"short castle", kiwipete, board.E1, board.G1, board.NoPieceType, board.ShortCastle, board.NoPiece},
		{"long castle", kiwipete, board.E1, board.C1, board.NoPieceType, board.LongCastle, board.NoPiece},
		{"black long castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", board.E8, board.C8, board.NoPieceType, board.LongCastle, board.NoPiece},
		{"en passant", "k7/8/8/3Pp3/8/8/8/7K w - e6 0 2", board.D5, board.E6, board.NoPieceType, board.EnPassant, board.BlackPawn},
		{"black en passant", "k7/8/8/8/3pP3/8/8/7K b - e3 0 1", board.D4, board.E3, board.NoPieceType, board.EnPassant, board.WhitePawn},
		{"promotion", "k7/4P3/8/8/8/8/8/7K w - - 0 1", board.E7, board.E8, board.Queen, board.QueenPromo, board.NoPiece},
		{"underpromotion", "k7/4P3/8/8/8/8/8/7K w - - 0 1", board.E7, board.E8, board.Knight, board.KnightPromo, board.NoPiece},
		{"promotion capture", "k4r2/4P3/8/8/8/8/8/7K w - - 0 1", board.E7, board.F8, board.Rook, board.RookPromoCapture, board.BlackRook},
		{"black promotion capture", "k7/8/8/8/8/8/1p6/R6K b - - 0 1", board.B2, board.A1, board.Bishop, board.BishopPromoCapture, board.WhiteRook},
		{"king step is not castle", "k7/8/8/8/8/8/8/4K3 w - - 0 1", board.E1, board.F1, board.NoPieceType, board.Quiet, board.NoPiece},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, s, err := board.ParseFEN(tc.fen)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			m := movegen.Classify(b, s, tc.from, tc.to, tc.promo)
			if m.Flag() != tc.flag || m.Captured() != tc.captured {
				t.Fatalf("Classify %v%v = %v/%v, want %v/%v", tc.from, tc.to, m.Flag(), m.Captured(), tc.flag, tc.captured)
			}
			if m.From() != tc.from || m.To() != tc.to {
				t.Fatalf("Classify squares = %v%v, want %v%v", m.From(), m.To(), tc.from, tc.to)
			}
		})
	}
}

func TestPushPopKeepsGeneratorInStep(t *testing.T) {
	for _, gen := range movegen.Names() {
		t.Run(gen, func(t *testing.T) {
			g := mustGame(t, kiwipete, gen)
			start := *g.Board()
			var played []board.Move
			for i := 0; i < 6; i++ {
				moves := g.Moves()
				if len(moves) == 0 {
					break
				}
				m := moves[i%len(moves)]
				g.Push(m)
				played = append(played, m)
				if err := g.Board().Validate(); err != nil {
					t.Fatalf("after %v: %v", played, err)
				}
			}
			if g.Side() != board.SideOf(board.Color(len(played)%2)) {
				t.Fatalf("side to move = %v after %d plies", g.Side().Color, len(played))
			}
			for i := len(played) - 1; i >= 0; i-- {
				if m := g.Pop(); m != played[i] {
					t.Fatalf("Pop = %v, want %v", m, played[i])
				}
			}
			if *g.Board() != start || g.Side() != board.WhiteSide {
				t.Fatalf("game not restored:\n%v", g.Board())
			}
			if got := g.Perft(1); got != 48 {
				t.Fatalf("perft after unwinding = %d, want 48", got)
			}
		})
	}
}

func TestNewGameErrors(t *testing.T) {
	if _, err := movegen.NewGame(board.StartFEN, "stockfish"); !errors.Is(err, movegen.ErrUnknownGenerator) {
		t.Fatalf("unknown generator: err = %v, want ErrUnknownGenerator", err)
	}
	if _, err := movegen.NewGenerator("stockfish", board.StartFEN); !errors.Is(err, movegen.ErrUnknownGenerator) {
		t.Fatalf("NewGenerator: err = %v, want ErrUnknownGenerator", err)
	}
	if _, err := movegen.NewGame("not a fen", movegen.NameGoose); err == nil {
		t.Fatalf("NewGame accepted a bad FEN")
	}
}

func TestDivideSumsToPerft(t *testing.T) {
	g := mustGame(t, kiwipete, movegen.NameGoose)
	div := g.Divide(2)
	if len(div) != 48 {
		t.Fatalf("divide has %d root moves, want 48", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 2039 {
		t.Fatalf("divide sum = %d, want 2039", sum)
	}
	if n := div["e1g1"]; n == 0 {
		t.Fatalf("divide missing e1g1: %v", div)
	}
}

package movegen_test

import (
	"testing"

	"chess-core/board"
	"chess-core/movegen"
)

func benchPerft(b *testing.B, gen, fen string, depth int) {
	g := mustGame(b, fen, gen)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Perft(depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	for _, gen := range []string{movegen.NameDragontooth, movegen.NameGoose} {
		b.Run(gen, func(b *testing.B) { benchPerft(b, gen, board.StartFEN, 4) })
	}
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	for _, gen := range movegen.Names() {
		b.Run(gen, func(b *testing.B) { benchPerft(b, gen, kiwipete, 3) })
	}
}

func BenchmarkMoves_Kiwipete(b *testing.B) {
	for _, gen := range movegen.Names() {
		b.Run(gen, func(b *testing.B) {
			g := mustGame(b, kiwipete, gen)
			buf := make([]board.Move, 0, 256)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf = g.Generator().Moves(g.Board(), g.Side(), buf[:0])
			}
		})
	}
}

package movegen_test

import (
	"context"
	"errors"
	"testing"

	"chess-core/movegen"
)

func TestParallelPerft(t *testing.T) {
	for _, tc := range perftCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := movegen.ParallelPerft(context.Background(), tc.fen, movegen.NameGoose, 3, 4)
			if err != nil {
				t.Fatalf("ParallelPerft: %v", err)
			}
			if got != tc.want[2] {
				t.Fatalf("parallel perft depth3: got %d want %d", got, tc.want[2])
			}
		})
	}
}

func TestParallelDivideMatchesDivide(t *testing.T) {
	want := mustGame(t, kiwipete, movegen.NameDragontooth).Divide(2)
	got, err := movegen.ParallelDivide(context.Background(), kiwipete, movegen.NameDragontooth, 2, 0)
	if err != nil {
		t.Fatalf("ParallelDivide: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("%d root moves, want %d", len(got), len(want))
	}
	for m, n := range want {
		if got[m] != n {
			t.Errorf("%s = %d, want %d", m, got[m], n)
		}
	}
}

func TestParallelPerftCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := movegen.ParallelPerft(ctx, kiwipete, movegen.NameGoose, 3, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestParallelPerftUnknownGenerator(t *testing.T) {
	if _, err := movegen.ParallelPerft(context.Background(), kiwipete, "nope", 2, 2); !errors.Is(err, movegen.ErrUnknownGenerator) {
		t.Fatalf("err = %v, want ErrUnknownGenerator", err)
	}
}

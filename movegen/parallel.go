package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelDivide splits the perft below fen across root moves. Each root
// move is searched on its own Game, with at most workers running at once
// (unlimited when workers <= 0).
func ParallelDivide(ctx context.Context, fen, genName string, depth, workers int) (map[string]uint64, error) {
	root, err := NewGame(fen, genName)
	if err != nil {
		return nil, err
	}
	if depth <= 0 {
		return map[string]uint64{}, nil
	}
	moves := root.Moves()
	counts := make([]uint64, len(moves))

	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, m := range moves {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g, err := NewGame(fen, genName)
			if err != nil {
				return err
			}
			g.Push(m)
			counts[i] = g.Perft(depth - 1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]uint64, len(moves))
	for i, m := range moves {
		out[m.String()] = counts[i]
	}
	return out, nil
}

// ParallelPerft is Perft spread over root moves. See ParallelDivide.
func ParallelPerft(ctx context.Context, fen, genName string, depth, workers int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	div, err := ParallelDivide(ctx, fen, genName, depth, workers)
	if err != nil {
		return 0, err
	}
	var nodes uint64
	for _, n := range div {
		nodes += n
	}
	return nodes, nil
}

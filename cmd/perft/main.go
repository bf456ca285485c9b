package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"chess-core/board"
	"chess-core/movegen"
	"chess-core/perftcache"
)

// envDefault returns the environment value for key, loading ./.env once if
// the variable is not already set.
func envDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	if err := godotenv.Load("./.env"); err == nil {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
	}
	return def
}

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	gen := flag.String("gen", envDefault("PERFT_GEN", movegen.NameGoose), "Move generator: dragontooth, goose or notnil")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	verify := flag.Bool("verify", false, "Validate the board after every apply and undo")
	workers := flag.Int("workers", 1, "Split root moves across N goroutines")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	cacheDir := flag.String("cache", envDefault("PERFT_CACHE", ""), "BadgerDB directory for cached node counts")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	memProf := flag.String("memprofile", "", "Write heap profile to file after run")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	game, err := movegen.NewGame(*fen, *gen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		var div map[string]uint64
		if *workers > 1 {
			div, err = movegen.ParallelDivide(context.Background(), *fen, *gen, *depth, *workers)
			if err != nil {
				log.Fatalf("divide: %v", err)
			}
		} else {
			div = game.Divide(*depth)
		}
		keys := maps.Keys(div)
		slices.Sort(keys)
		var sum uint64
		for _, m := range keys {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	if *verify {
		nodes, err := game.VerifiedPerft(*depth)
		if err != nil {
			log.Fatalf("verify failed after %d nodes: %v", nodes, err)
		}
		fmt.Printf("%s \t%d \t\t%d \t\tverified\n", *label, *depth, nodes)
		return
	}

	var cache *perftcache.Cache
	if *cacheDir != "" {
		cache, err = perftcache.Open(*cacheDir)
		if err != nil {
			log.Fatalf("cache: %v", err)
		}
		defer cache.Close()
		if nodes, ok, err := cache.Get(*fen, *depth); err != nil {
			log.Printf("cache read: %v", err)
		} else if ok {
			fmt.Printf("%s \t%d \t\t%d \t\tcached\n", *label, *depth, nodes)
			return
		}
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes, nodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		if *workers > 1 {
			nodes, err = movegen.ParallelPerft(context.Background(), *fen, *gen, *depth, *workers)
			if err != nil {
				log.Fatalf("perft: %v", err)
			}
		} else {
			nodes = game.Perft(*depth)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if cache != nil {
		if err := cache.Put(*fen, *depth, nodes); err != nil {
			log.Printf("cache write: %v", err)
		}
	}

	// Optional heap profile after run
	if *memProf != "" {
		f, err := os.Create(*memProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating memprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.WriteHeapProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "write heap profile: %v\n", err)
			os.Exit(2)
		}
		_ = f.Close()
	}
}

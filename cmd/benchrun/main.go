package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"chess-core/movegen"
)

const kiwipete = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// run executes a command and prints its combined output. Returns exit code.
func run(name string, args ...string) int {
	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error running %s: %v\n", name, err)
	return 1
}

func main() {
	maxDepth := flag.Int("maxdepth", 5, "Deepest start position perft to time")
	workers := flag.Int("workers", 1, "Passed through to cmd/perft")
	flag.Parse()

	// Apply/Undo and generator micro benchmarks.
	// Format: BenchmarkName  Iterations  ns/op  B/op  allocs/op
	fmt.Println("Columns: BENCHMARK  N  ns/op  B/op  allocs/op")
	code := run("go", "test", "./board", "./movegen", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s")
	if code != 0 {
		os.Exit(code)
	}

	// Perft throughput per generator with one-line outputs
	fmt.Println("\nPerft Performance:")
	fmt.Println("TEST \t\tDepth \t\tNodes \t\tTime \tNPS")
	w := strconv.Itoa(*workers)
	for _, gen := range movegen.Names() {
		for depth := 3; depth <= *maxDepth; depth++ {
			run("go", "run", "./cmd/perft", "-gen", gen, "-workers", w,
				"-depth", strconv.Itoa(depth), "-label", "Initial/"+gen)
		}
		_ = run("go", "run", "./cmd/perft", "-gen", gen, "-workers", w,
			"-fen", kiwipete, "-depth", "3", "-label", "Kiwipete/"+gen)
	}
	os.Exit(0)
}

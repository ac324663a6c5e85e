// perft counts the leaf nodes of the move tree of a reference position and
// optionally checks the counts against an independent move generator.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/lgbarn/chessai-go/internal/engine"
)

var (
	positionName = flag.String("position", "start", "Reference position: start, kiwipete, endgame, promotion")
	depth        = flag.Int("depth", 3, "Depth in plies")
	divide       = flag.Bool("divide", false, "Print the count below each root move")
	verify       = flag.Bool("verify", false, "Check every root move count against dragontoothmg")
	workers      = flag.Int("workers", 1, "Number of root moves counted at once")
	list         = flag.Bool("list", false, "List the reference positions")
	verbose      = flag.Bool("v", false, "Report timing")
)

func main() {
	flag.Parse()

	if *list {
		listPositions(os.Stdout)
		return
	}

	pos, ok := engine.FindPosition(*positionName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown position %q\n", *positionName)
		os.Exit(1)
	}
	if *depth < 1 {
		fmt.Fprintf(os.Stderr, "Error: depth %d must be at least 1\n", *depth)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	mismatches, err := run(ctx, os.Stdout, pos, *depth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if mismatches > 0 {
		fmt.Fprintf(os.Stderr, "%d root move(s) disagree with dragontoothmg\n", mismatches)
		os.Exit(1)
	}
}

// run counts pos to depth, writing the report to w. It returns the number
// of root moves whose count differs from the reference generator.
func run(ctx context.Context, w io.Writer, pos engine.Position, depth int) (int, error) {
	board, err := pos.Board()
	if err != nil {
		return 0, err
	}

	start := time.Now()
	counts, err := engine.DivideParallel(ctx, board, depth, *workers)
	if err != nil {
		return 0, err
	}
	elapsed := time.Since(start)

	var reference map[string]uint64
	if *verify {
		reference = engine.ReferenceDivide(pos.FEN, depth)
	}

	moves := make([]string, 0, len(counts))
	var total uint64
	for m, n := range counts {
		moves = append(moves, m)
		total += n
	}
	sort.Strings(moves)

	mismatches := 0
	for _, m := range moves {
		want, known := reference[m]
		bad := *verify && (!known || want != counts[m])
		if bad {
			mismatches++
		}
		if *divide || bad {
			fmt.Fprintf(w, "%s: %d", m, counts[m])
			if bad {
				fmt.Fprintf(w, " (dragontoothmg %d)", want)
			}
			fmt.Fprintln(w)
		}
	}
	for m, n := range reference {
		if _, ok := counts[m]; !ok {
			fmt.Fprintf(w, "%s: missing (dragontoothmg %d)\n", m, n)
			mismatches++
		}
	}

	fmt.Fprintf(w, "perft(%s, %d) = %d\n", pos.Name, depth, total)
	if depth <= len(pos.Perft) && pos.Perft[depth-1] != total {
		fmt.Fprintf(w, "expected %d\n", pos.Perft[depth-1])
		mismatches++
	}
	if *verbose {
		fmt.Fprintf(w, "%v, %.0f nodes/s\n", elapsed, float64(total)/max(elapsed.Seconds(), 1e-9))
	}
	return mismatches, nil
}

func listPositions(w io.Writer) {
	for _, p := range engine.Positions {
		fmt.Fprintf(w, "%-10s %s\n", p.Name, p.FEN)
	}
}

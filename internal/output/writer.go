package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
)

// GameWriter is the interface for writing finished games.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(r *Record) error

	// Close writes anything still pending.
	Close() error
}

// TextWriter writes games as move lists. It is safe for use by several
// goroutines; each game is written in one piece.
type TextWriter struct {
	mu    sync.Mutex
	w     io.Writer
	cfg   *config.Config
	tally Tally
}

// NewTextWriter creates a writer using the output settings of cfg.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game and counts its outcome.
func (tw *TextWriter) WriteGame(r *Record) error {
	cfg := *tw.cfg
	cfg.OutputFile = tw.w

	tw.mu.Lock()
	defer tw.mu.Unlock()
	OutputGame(r, &cfg)
	outcome, _ := r.Game.Outcome()
	tw.tally.Add(outcome)
	return nil
}

// Tally returns the outcomes of the games written so far.
func (tw *TextWriter) Tally() Tally {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	return tw.tally
}

// Close writes the outcome summary.
func (tw *TextWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.tally.Games() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(tw.w, "%s\n", tw.tally)
	return err
}

// Tally counts game outcomes.
type Tally struct {
	WhiteWins  int
	BlackWins  int
	Draws      int
	Unfinished int
}

// Add counts one outcome.
func (t *Tally) Add(o engine.Outcome) {
	switch o {
	case engine.WhiteWins:
		t.WhiteWins++
	case engine.BlackWins:
		t.BlackWins++
	case engine.Drawn:
		t.Draws++
	default:
		t.Unfinished++
	}
}

// Games returns the number of outcomes counted.
func (t Tally) Games() int {
	return t.WhiteWins + t.BlackWins + t.Draws + t.Unfinished
}

// String summarizes the tally.
func (t Tally) String() string {
	return fmt.Sprintf("%d games: White won %d, Black won %d, drawn %d, unfinished %d",
		t.Games(), t.WhiteWins, t.BlackWins, t.Draws, t.Unfinished)
}

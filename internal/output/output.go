// Package output renders boards and games as text.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, preceded by a space or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// Record is a finished or abandoned game with its presentation details.
type Record struct {
	Title string
	Game  *engine.Game

	// Scores holds one formatted search score per move, or is empty
	Scores []string
}

// OutputGame writes a game as a title line, a wrapped move list and,
// optionally, the final board.
func OutputGame(r *Record, cfg *config.Config) {
	w := cfg.OutputFile
	if r.Title != "" {
		fmt.Fprintf(w, "%s\n", r.Title)
	}
	outputMoves(r, cfg, w)
	if cfg.Output.ShowBoard {
		fmt.Fprintln(w)
		fmt.Fprint(w, FormatBoard(r.Game.Board(), cfg.Output.ShowCoordinates))
	}
	fmt.Fprintln(w)
}

func outputMoves(r *Record, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))
	boards := r.Game.Boards()
	showScores := cfg.Output.ShowScores && len(r.Scores) > 0

	// A move number is needed for White, and for Black at the start or
	// after a comment.
	needNumber := true
	for i, m := range r.Game.Moves() {
		before := boards[i]
		if cfg.Output.KeepMoveNumbers {
			n := strconv.Itoa(before.FullmoveNumber())
			if before.SideToMove() == chess.White {
				ow.Write(n + ".")
			} else if needNumber {
				ow.Write(n + "...")
			}
		}
		ow.Write(m.String())
		needNumber = false

		if showScores && i < len(r.Scores) && r.Scores[i] != "" {
			ow.Write("{" + r.Scores[i] + "}")
			needNumber = true
		}
	}

	if cfg.Output.KeepResults {
		outcome, method := r.Game.Outcome()
		if method != engine.NoMethod {
			ow.Write("{" + method.String() + "}")
		}
		ow.Write(outcome.String())
	}
	ow.NewLine()
}

// MoveList returns the coordinate text of the moves of a game on one line.
func MoveList(g *engine.Game) string {
	moves := g.Moves()
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	return strings.Join(texts, " ")
}

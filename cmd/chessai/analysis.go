package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/search"
)

// replayMoves plays space-separated coordinate moves from the standard
// starting position.
func replayMoves(moves string) (*engine.Game, error) {
	g := engine.NewGame()
	for _, text := range strings.Fields(moves) {
		m, err := chess.ParseMove(g.Board(), text)
		if err != nil {
			return nil, err
		}
		if err := g.PlayMove(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// analyse searches the position reached after moves and reports the best
// move and its score.
func analyse(ctx context.Context, cfg *config.Config, moves string) error {
	g, err := replayMoves(moves)
	if err != nil {
		return err
	}
	w := cfg.OutputFile
	board := g.Board()

	if cfg.Output.ShowBoard {
		fmt.Fprint(w, output.FormatBoard(board, cfg.Output.ShowCoordinates))
	}
	if outcome, method := g.Outcome(); outcome != engine.Ongoing {
		fmt.Fprintf(w, "game over: %s by %s\n", outcome, method)
		return nil
	}

	res, err := search.NewStrategy(cfg).BestMove(ctx, board)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s to move: best %s\n", board.SideToMove(), search.FormatResult(res))
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "depth %d, %d nodes in %v\n", res.Depth, res.Nodes, res.Elapsed)
	}
	return nil
}

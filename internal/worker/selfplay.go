package worker

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/search"
)

// PlayGame plays one engine-versus-engine game. The first RandomPlies
// half-moves are drawn at random from the legal moves; the search picks the
// rest. The game stops when it is over or MaxPlies half-moves were played.
func PlayGame(ctx context.Context, cfg *config.Config, item WorkItem) ProcessResult {
	board := item.Board
	if board == nil {
		board = chess.CreateStandardBoard()
	}
	g := engine.NewGameFromBoard(board)
	result := ProcessResult{
		Index:  item.Index,
		Record: &output.Record{Title: fmt.Sprintf("Game %d", item.Index+1), Game: g},
	}

	strategy := search.NewStrategy(cfg)
	rng := rand.New(rand.NewPCG(uint64(cfg.SelfPlay.Seed), uint64(item.Index)))
	for g.Ply() < cfg.SelfPlay.MaxPlies && !g.IsOver() {
		var m chess.Move
		score := ""
		if g.Ply() < cfg.SelfPlay.RandomPlies {
			moves := g.LegalMoves()
			m = moves[rng.IntN(len(moves))]
		} else {
			res, err := strategy.BestMove(ctx, g.Board())
			if err != nil {
				result.Error = fmt.Errorf("game %d ply %d: %w", item.Index+1, g.Ply()+1, err)
				return result
			}
			m = res.Move
			result.Nodes += res.Nodes
			score = search.FormatEvaluation(res.Evaluation())
		}
		if err := g.PlayMove(m); err != nil {
			result.Error = fmt.Errorf("game %d: %w", item.Index+1, err)
			return result
		}
		result.Record.Scores = append(result.Record.Scores, score)
	}

	if cfg.Verbosity > 0 {
		outcome, method := g.Outcome()
		summary := outcome.String()
		if method != engine.NoMethod {
			summary += " by " + method.String()
		}
		fmt.Fprintf(cfg.LogFile, "Game %d: %s after %d plies, %d nodes\n",
			item.Index+1, summary, g.Ply(), result.Nodes)
	}
	return result
}

// RunSelfPlay plays cfg.SelfPlay.Games games on cfg.SelfPlay.Workers
// workers and writes them to w in game order. It returns the first game
// error, after writing the games that finished.
func RunSelfPlay(ctx context.Context, cfg *config.Config, w output.GameWriter) error {
	pool := NewPool(func(item WorkItem) ProcessResult {
		return PlayGame(ctx, cfg, item)
	}, WithWorkers(cfg.SelfPlay.Workers), WithBufferSize(cfg.SelfPlay.Games))
	pool.Start()

	go func() {
		for i := 0; i < cfg.SelfPlay.Games; i++ {
			pool.Submit(WorkItem{Index: i})
		}
		pool.Close()
	}()

	var results []ProcessResult
	var firstErr error
	for res := range pool.Results() {
		if res.Error != nil {
			if firstErr == nil {
				firstErr = res.Error
			}
			pool.Stop()
			continue
		}
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	for _, res := range results {
		if err := w.WriteGame(res.Record); err != nil {
			return err
		}
	}
	if err := w.Close(); err != nil {
		return err
	}
	return firstErr
}

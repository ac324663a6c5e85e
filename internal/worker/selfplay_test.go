package worker

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chessai-go/internal/chess"
	"github.com/lgbarn/chessai-go/internal/config"
	"github.com/lgbarn/chessai-go/internal/engine"
	"github.com/lgbarn/chessai-go/internal/output"
	"github.com/lgbarn/chessai-go/internal/testutil"
)

func quietConfig(depth, maxPlies, randomPlies int) *config.Config {
	return config.NewConfigBuilder().
		WithDepth(depth).
		WithAlgorithm(config.AlphaBeta).
		WithMaxPlies(maxPlies).
		WithRandomOpening(randomPlies, 7).
		WithLog(io.Discard).
		WithVerbosity(0).
		Build()
}

func TestPlayGame_Deterministic(t *testing.T) {
	cfg := quietConfig(1, 6, 0)

	first := PlayGame(context.Background(), cfg, WorkItem{Index: 0})
	testutil.AssertNoError(t, first.Error)
	testutil.AssertEqual(t, first.Record.Game.Ply(), 6)
	testutil.AssertEqual(t, len(first.Record.Scores), 6)
	for i, s := range first.Record.Scores {
		testutil.AssertTrue(t, s != "", "ply %d has no score", i+1)
	}
	testutil.AssertTrue(t, first.Nodes > 0, "nodes counted")

	second := PlayGame(context.Background(), cfg, WorkItem{Index: 3})
	testutil.AssertEqual(t, output.MoveList(second.Record.Game), output.MoveList(first.Record.Game))
	testutil.AssertEqual(t, second.Record.Title, "Game 4")
}

func TestPlayGame_RandomOpening(t *testing.T) {
	cfg := quietConfig(1, 4, 4)

	a := PlayGame(context.Background(), cfg, WorkItem{Index: 1})
	b := PlayGame(context.Background(), cfg, WorkItem{Index: 1})
	testutil.AssertNoError(t, a.Error)
	testutil.AssertEqual(t, output.MoveList(a.Record.Game), output.MoveList(b.Record.Game))
	testutil.AssertEqual(t, a.Record.Scores, []string{"", "", "", ""})
	testutil.AssertEqual(t, a.Nodes, uint64(0))
}

func TestPlayGame_FinishesMate(t *testing.T) {
	var log bytes.Buffer
	cfg := quietConfig(1, 10, 0)
	cfg.SetLog(&log)
	cfg.Verbosity = 1

	board := testutil.PlayMoves(t, chess.CreateStandardBoard(), "f2f3", "e7e5", "g2g4")
	res := PlayGame(context.Background(), cfg, WorkItem{Board: board})
	testutil.AssertNoError(t, res.Error)

	outcome, method := res.Record.Game.Outcome()
	testutil.AssertEqual(t, outcome, engine.BlackWins)
	testutil.AssertEqual(t, method, engine.Checkmate)
	testutil.AssertEqual(t, output.MoveList(res.Record.Game), "d8h4")
	testutil.AssertEqual(t, res.Record.Scores, []string{"-M1"})
	testutil.AssertContains(t, log.String(), "Game 1: 0-1 by checkmate after 1 plies")
}

func TestPlayGame_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := PlayGame(ctx, quietConfig(2, 10, 0), WorkItem{Index: 0})
	testutil.AssertErrorIs(t, res.Error, context.Canceled)
	testutil.AssertEqual(t, res.Record.Game.Ply(), 0)
}

func TestRunSelfPlay(t *testing.T) {
	var buf bytes.Buffer
	cfg := quietConfig(1, 4, 2)
	cfg.SelfPlay.Games = 3
	cfg.SelfPlay.Workers = 2
	cfg.SetOutput(&buf)

	writer := output.NewTextWriter(&buf, cfg)
	testutil.AssertNoError(t, RunSelfPlay(context.Background(), cfg, writer))

	out := buf.String()
	first := strings.Index(out, "Game 1\n")
	second := strings.Index(out, "Game 2\n")
	third := strings.Index(out, "Game 3\n")
	testutil.AssertTrue(t, first >= 0 && first < second && second < third, "games out of order:\n%s", out)
	testutil.AssertEqual(t, writer.Tally(), output.Tally{Unfinished: 3})
	testutil.AssertContains(t, out, "3 games: White won 0, Black won 0, drawn 0, unfinished 3\n")
}

func TestRunSelfPlay_Error(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	cfg := quietConfig(1, 4, 0)
	cfg.SelfPlay.Games = 2
	err := RunSelfPlay(ctx, cfg, output.NewTextWriter(&buf, cfg))
	testutil.AssertErrorIs(t, err, context.Canceled)
}

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/lgbarn/chessai-go/internal/engine"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestRun(t *testing.T) {
	defer saveRestoreBool(verify, true)()
	defer saveRestoreBool(divide, true)()

	for _, name := range []string{"start", "kiwipete", "endgame", "promotion"} {
		t.Run(name, func(t *testing.T) {
			pos, ok := engine.FindPosition(name)
			if !ok {
				t.Fatalf("position %s not found", name)
			}

			var buf bytes.Buffer
			mismatches, err := run(context.Background(), &buf, pos, 2)
			if err != nil {
				t.Fatalf("run: %v", err)
			}
			if mismatches != 0 {
				t.Errorf("%d mismatches:\n%s", mismatches, buf.String())
			}
			want := "perft(" + name + ", 2) = "
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output %q lacks %q", buf.String(), want)
			}
		})
	}
}

func TestRun_DivideLines(t *testing.T) {
	defer saveRestoreBool(verify, false)()
	defer saveRestoreBool(divide, true)()

	pos, _ := engine.FindPosition("start")
	var buf bytes.Buffer
	if _, err := run(context.Background(), &buf, pos, 1); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d lines; want 20 moves and a total:\n%s", len(lines), buf.String())
	}
	if lines[0] != "a2a3: 1" {
		t.Errorf("first line = %q; want a2a3: 1", lines[0])
	}
	if lines[20] != "perft(start, 1) = 20" {
		t.Errorf("last line = %q", lines[20])
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pos, _ := engine.FindPosition("kiwipete")
	if _, err := run(ctx, &bytes.Buffer{}, pos, 3); err == nil {
		t.Error("run with cancelled context should fail")
	}
}

func TestListPositions(t *testing.T) {
	var buf bytes.Buffer
	listPositions(&buf)
	if got := strings.Count(buf.String(), "\n"); got != len(engine.Positions) {
		t.Errorf("listed %d positions; want %d", got, len(engine.Positions))
	}
}

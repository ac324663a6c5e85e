// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessai-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	noNumbers    = flag.Bool("nonumbers", false, "Don't output move numbers")
	noResults    = flag.Bool("noresults", false, "Don't output results")
	showBoard    = flag.Bool("board", false, "Print the final board of each game")
	noCoords     = flag.Bool("nocoords", false, "Don't label the board with files and ranks")
	showScores   = flag.Bool("scores", false, "Print the search score after each engine move")

	// Search options
	depth     = flag.Int("depth", 4, "Search depth in plies")
	algorithm = flag.String("algorithm", "minimax", "Search algorithm: minimax, alphabeta")
	useCache  = flag.Bool("cache", false, "Cache evaluations")
	cacheSize = flag.Int("cache-capacity", 0, "Maximum cached evaluations (0 = unlimited)")

	// Evaluation weights
	mobilityWeight = flag.Int("mobility", 5, "Centipawns per pseudo-legal move")
	checkWeight    = flag.Int("check", 50, "Centipawns for giving check")
	shieldWeight   = flag.Int("shield", 10, "Centipawns per pawn next to the king")
	centreWeight   = flag.Int("centre", 15, "Centipawns per piece on a centre square")

	// Self-play options
	games       = flag.Int("games", 1, "Number of self-play games")
	workers     = flag.Int("workers", 1, "Number of games played at once")
	maxPlies    = flag.Int("maxplies", 200, "Abandon a game after this many half-moves")
	randomPlies = flag.Int("random", 0, "Random opening half-moves before the search takes over")
	seed        = flag.Int64("seed", 1, "Seed for the random opening moves")

	// Analysis
	analyseMoves = flag.String("moves", "", "Analyse the position after these moves (e.g. \"e2e4 e7e5\") instead of self-play")
	analyseOnly  = flag.Bool("analyse", false, "Analyse the starting position instead of self-play")

	// Logging and general
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Verbose mode (search statistics)")
	quiet     = flag.Bool("s", false, "Silent mode (no game summaries)")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applySearchFlags(cfg); err != nil {
		return err
	}
	applyEvalFlags(cfg)
	applySelfPlayFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applySearchFlags configures the search.
func applySearchFlags(cfg *config.Config) error {
	alg, err := config.ParseAlgorithm(*algorithm)
	if err != nil {
		return err
	}
	cfg.Search.Algorithm = alg
	cfg.Search.Depth = *depth
	return nil
}

// applyEvalFlags configures the evaluation weights and cache.
func applyEvalFlags(cfg *config.Config) {
	cfg.Eval.Mobility = *mobilityWeight
	cfg.Eval.Check = *checkWeight
	cfg.Eval.PawnShield = *shieldWeight
	cfg.Eval.Centre = *centreWeight
	cfg.Eval.UseCache = *useCache
	cfg.Eval.CacheCapacity = *cacheSize
}

// applySelfPlayFlags configures self-play.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.Games = *games
	cfg.SelfPlay.Workers = *workers
	cfg.SelfPlay.MaxPlies = *maxPlies
	cfg.SelfPlay.RandomPlies = *randomPlies
	cfg.SelfPlay.Seed = *seed
}

// applyOutputFlags configures output formatting.
func applyOutputFlags(cfg *config.Config) {
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.KeepResults = !*noResults
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowCoordinates = !*noCoords
	cfg.Output.ShowScores = *showScores
}

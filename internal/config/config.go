// Package config provides configuration for the search, the evaluator and
// the command-line tools.
package config

import (
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// Algorithm selects the search strategy.
type Algorithm int

const (
	Minimax Algorithm = iota
	AlphaBeta
)

// String returns the flag spelling of the algorithm.
func (a Algorithm) String() string {
	if a == AlphaBeta {
		return "alphabeta"
	}
	return "minimax"
}

// ParseAlgorithm reads an algorithm name as given on the command line.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "minimax", "mm":
		return Minimax, nil
	case "alphabeta", "ab", "alpha-beta":
		return AlphaBeta, nil
	}
	return Minimax, errors.Wrapf(errors.ErrInvalidConfig, "unknown algorithm %q", name)
}

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	Search   *SearchConfig
	Eval     *EvalConfig
	SelfPlay *SelfPlayConfig
	Output   *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Eval:       NewEvalConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d", c.Verbosity)
	}
	if err := c.Search.Validate(); err != nil {
		return err
	}
	if err := c.Eval.Validate(); err != nil {
		return err
	}
	return c.SelfPlay.Validate()
}

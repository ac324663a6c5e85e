package config

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// MaxDepth is the deepest search the tools accept.
const MaxDepth = 8

// SearchConfig holds settings for move selection.
type SearchConfig struct {
	// Depth is the number of plies searched
	Depth int

	// Algorithm chooses plain minimax or alpha-beta pruning
	Algorithm Algorithm
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     4,
		Algorithm: Minimax,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("search depth %d outside 1..%d: %w", s.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Algorithm != Minimax && s.Algorithm != AlphaBeta {
		return fmt.Errorf("unknown algorithm %d: %w", s.Algorithm, errors.ErrInvalidConfig)
	}
	return nil
}

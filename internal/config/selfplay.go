package config

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// SelfPlayConfig holds settings for engine-versus-engine games.
type SelfPlayConfig struct {
	// Games is the number of games to play
	Games int

	// Workers is the number of games played at once
	Workers int

	// MaxPlies ends a game as unfinished after this many half-moves
	MaxPlies int

	// RandomPlies is the number of random opening half-moves played before
	// the search takes over, so that games differ
	RandomPlies int

	// Seed seeds the random opening moves
	Seed int64
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:    1,
		Workers:  1,
		MaxPlies: 200,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.Games < 1 {
		return fmt.Errorf("games %d: %w", s.Games, errors.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if s.MaxPlies < 1 {
		return fmt.Errorf("max plies %d: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	if s.RandomPlies < 0 || s.RandomPlies > s.MaxPlies {
		return fmt.Errorf("random plies %d outside 0..%d: %w", s.RandomPlies, s.MaxPlies, errors.ErrInvalidConfig)
	}
	return nil
}

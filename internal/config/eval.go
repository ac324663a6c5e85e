package config

import (
	"fmt"

	"github.com/lgbarn/chessai-go/internal/errors"
)

// EvalConfig holds the weights of the static evaluation terms, in
// centipawns per unit.
type EvalConfig struct {
	Mobility   int // per pseudo-legal move
	Check      int // for giving check
	PawnShield int // per own pawn next to the king
	Centre     int // per piece on the four centre tiles

	// UseCache enables the evaluation cache
	UseCache bool
	// CacheCapacity bounds the cache, 0 for no limit
	CacheCapacity int
}

// NewEvalConfig creates an EvalConfig with default values.
func NewEvalConfig() *EvalConfig {
	return &EvalConfig{
		Mobility:   5,
		Check:      50,
		PawnShield: 10,
		Centre:     15,
	}
}

// Validate checks that the evaluation configuration is valid.
func (e *EvalConfig) Validate() error {
	if e.Mobility < 0 || e.Check < 0 || e.PawnShield < 0 || e.Centre < 0 {
		return fmt.Errorf("negative evaluation weight: %w", errors.ErrInvalidConfig)
	}
	if e.CacheCapacity < 0 {
		return fmt.Errorf("cache capacity %d: %w", e.CacheCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

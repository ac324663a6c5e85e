// Package hashing provides position hashing, repetition counting and a
// concurrent evaluation cache.
package hashing

import (
	"github.com/lgbarn/chessai-go/internal/chess"
)

// PositionCounter tracks how many times each position has been reached.
// It is not safe for concurrent use; each game owns its own counter.
type PositionCounter struct {
	counts map[uint64]int
	// maxCount is the highest count seen since the last Reset.
	maxCount int
}

// NewPositionCounter creates an empty counter.
func NewPositionCounter() *PositionCounter {
	return &PositionCounter{counts: make(map[uint64]int)}
}

// Add records one occurrence of board and returns how many times it has now
// been seen.
func (c *PositionCounter) Add(board *chess.Board) int {
	h := Zobrist(board)
	c.counts[h]++
	if c.counts[h] > c.maxCount {
		c.maxCount = c.counts[h]
	}
	return c.counts[h]
}

// Remove forgets one occurrence of board, used when a move is taken back.
func (c *PositionCounter) Remove(board *chess.Board) {
	h := Zobrist(board)
	switch c.counts[h] {
	case 0:
		return
	case 1:
		delete(c.counts, h)
	default:
		c.counts[h]--
	}
	c.maxCount = 0
	for _, n := range c.counts {
		c.maxCount = max(c.maxCount, n)
	}
}

// Count returns how many times board has been seen.
func (c *PositionCounter) Count(board *chess.Board) int {
	return c.counts[Zobrist(board)]
}

// MaxCount returns the highest repetition count of any position.
func (c *PositionCounter) MaxCount() int {
	return c.maxCount
}

// UniqueCount returns the number of distinct positions seen.
func (c *PositionCounter) UniqueCount() int {
	return len(c.counts)
}

// Reset clears the counter.
func (c *PositionCounter) Reset() {
	c.counts = make(map[uint64]int)
	c.maxCount = 0
}

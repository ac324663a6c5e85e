package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth in plies.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithAlgorithm sets the search algorithm.
func (b *ConfigBuilder) WithAlgorithm(a Algorithm) *ConfigBuilder {
	b.cfg.Search.Algorithm = a
	return b
}

// WithWeights sets the evaluation weights.
func (b *ConfigBuilder) WithWeights(mobility, check, pawnShield, centre int) *ConfigBuilder {
	b.cfg.Eval.Mobility = mobility
	b.cfg.Eval.Check = check
	b.cfg.Eval.PawnShield = pawnShield
	b.cfg.Eval.Centre = centre
	return b
}

// WithEvalCache enables the evaluation cache with the given capacity.
func (b *ConfigBuilder) WithEvalCache(enabled bool, capacity int) *ConfigBuilder {
	b.cfg.Eval.UseCache = enabled
	b.cfg.Eval.CacheCapacity = capacity
	return b
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Games = n
	return b
}

// WithWorkers sets the number of games played at once.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.SelfPlay.Workers = n
	return b
}

// WithMaxPlies sets the half-move limit of a self-play game.
func (b *ConfigBuilder) WithMaxPlies(n int) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = n
	return b
}

// WithRandomOpening sets the number of random opening plies and their seed.
func (b *ConfigBuilder) WithRandomOpening(plies int, seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.RandomPlies = plies
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithBoard enables printing the final board.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithScores enables printing search scores.
func (b *ConfigBuilder) WithScores(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowScores = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// MaxLineLength is the maximum line length for move lists
	MaxLineLength uint

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether the game result ends the move list
	KeepResults bool

	// ShowBoard prints the final board of each game
	ShowBoard bool

	// ShowCoordinates labels the board diagram with files and ranks
	ShowCoordinates bool

	// ShowScores prints the search score after each engine move
	ShowScores bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		ShowCoordinates: true,
	}
}

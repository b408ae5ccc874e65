package systems

// Settings tunes the turn structure.
type Settings struct {
	// ActionsPerTurn is granted to a player each time the turn passes to them.
	ActionsPerTurn int
	// StartingHandSize is drawn by each player when the game begins.
	StartingHandSize int
	// DrawPerTurn is drawn by the player whose turn starts.
	DrawPerTurn int
	// FirstPlayer takes the first turn.
	FirstPlayer int
}

// DefaultSettings returns the standard rules.
func DefaultSettings() Settings {
	return Settings{
		ActionsPerTurn:   2,
		StartingHandSize: 7,
		DrawPerTurn:      1,
		FirstPlayer:      0,
	}
}

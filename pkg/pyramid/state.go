package pyramid

import "pyramid-solitaire-server/pkg/deck"

// GameState is the full game state as seen by a client.
// Solitaire has no hidden per-player information, so everything is safe to send
type GameState struct {
	Pyramid       [][]*deck.Card `json:"pyramid"`
	Draws         []*deck.Card   `json:"draws"`
	StockLeft     int            `json:"stockLeft"`
	Removed       int            `json:"removed"`
	Score         int            `json:"score"`
	RemovalTarget int            `json:"removalTarget"`
	Won           bool           `json:"won"`
	GameOver      bool           `json:"gameOver"`
}

// State returns a snapshot of the current game state.
// All card slices are defensive copies
func (g *Game) State() (*GameState, error) {
	if !g.started {
		return nil, ErrNotStarted
	}

	grid, _ := g.GetPyramid()
	draws, _ := g.GetDrawCards()
	score, _ := g.Score()
	gameOver, _ := g.IsGameOver()

	return &GameState{
		Pyramid:       grid,
		Draws:         draws,
		StockLeft:     len(g.stock),
		Removed:       g.removed,
		Score:         score,
		RemovalTarget: g.options.RemovalTarget,
		Won:           g.isWon(),
		GameOver:      gameOver,
	}, nil
}

package pyramid

import (
	"github.com/sirupsen/logrus"

	"pyramid-solitaire-server/pkg/deck"
)

// Game is a single game of pyramid solitaire
//
// A Game is fully dealt by NewGame and never restarts; a new game means a new
// instance. The zero value is unusable and every operation on it returns
// ErrNotStarted
type Game struct {
	options   Options
	grid      [][]*deck.Card
	draws     []*deck.Card
	stock     []*deck.Card
	removed   int
	discarded int
	started   bool
	logger    logrus.FieldLogger
}

// NewGame validates the deck and layout, then deals a new game.
// The caller's card slice is never mutated; the deal operates on a private copy
func NewGame(logger logrus.FieldLogger, cards []*deck.Card, options Options) (*Game, error) {
	if options.RemovalTarget == 0 {
		options.RemovalTarget = DefaultRemovalTarget
	}

	validator := options.Validator
	if validator == nil {
		validator = standardDeckValidator{}
	}

	if len(cards) == 0 || !validator.Valid(cards) {
		return nil, ErrInvalidDeck
	}

	d := deck.FromCards(cards)

	if !d.CanDraw(options.Rows*(options.Rows+1)/2 + options.Draws) {
		return nil, ErrInsufficientCards
	}

	if options.Rows <= 0 || options.Draws < 0 {
		return nil, ErrInvalidLayout
	}

	if options.Shuffle {
		if options.Seed > 0 {
			d.SetSeed(options.Seed)
		}

		d.Shuffle()
	}

	// the hash identifies the dealt permutation for reproducing a game
	hash := d.HashCode()

	dealer := options.Dealer
	if dealer == nil {
		dealer = standardDeal{}
	}

	grid, drawPile, stock, err := dealer.Deal(d, options.Rows, options.Draws)
	if err != nil {
		return nil, err
	}

	g := &Game{
		options: options,
		grid:    grid,
		draws:   drawPile,
		stock:   stock,
		started: true,
		logger:  logger,
	}

	logger.WithFields(logrus.Fields{
		"rows":     options.Rows,
		"draws":    options.Draws,
		"stock":    len(stock),
		"target":   options.RemovalTarget,
		"deckHash": hash,
	}).Info("dealt new game")

	return g, nil
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "Pyramid Solitaire"
}

// checkPosition validates a pyramid coordinate and requires a card there
func (g *Game) checkPosition(row, col int) error {
	if row < 0 || row >= len(g.grid) || col < 0 || col > row {
		return ErrOutOfBounds
	}

	if g.grid[row][col] == nil {
		return ErrEmptySlot
	}

	return nil
}

// isUncovered returns true if the slot is in the last row or both slots
// directly beneath it are empty
func (g *Game) isUncovered(row, col int) bool {
	if row == len(g.grid)-1 {
		return true
	}

	return g.grid[row+1][col] == nil && g.grid[row+1][col+1] == nil
}

// isWon returns true if every pyramid slot is empty
func (g *Game) isWon() bool {
	for _, row := range g.grid {
		for _, card := range row {
			if card != nil {
				return false
			}
		}
	}

	return true
}

// replenishDraw moves the front of the stock into the draw slot, or leaves a
// permanent hole once the stock is exhausted. The pile never shrinks
func (g *Game) replenishDraw(drawIndex int) {
	if len(g.stock) > 0 {
		g.draws[drawIndex] = g.stock[0]
		g.stock = g.stock[1:]
		return
	}

	g.draws[drawIndex] = nil
}

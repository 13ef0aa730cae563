package pyramid

import "pyramid-solitaire-server/pkg/deck"

// DealingStrategy fills the pyramid grid, the draw pile, and the stock by
// consuming from the front of an already-validated, already-shuffled deck.
// Implementations must not retain the deck
type DealingStrategy interface {
	Deal(d *deck.Deck, rows, draws int) (grid [][]*deck.Card, drawPile []*deck.Card, stock []*deck.Card, err error)
}

// DeckValidator decides what counts as a legal deck for a game variant
type DeckValidator interface {
	Valid(cards []*deck.Card) bool
}

// standardDeal deals row 0 first, left to right, then each wider row, then the
// draw pile front to back; whatever remains becomes the stock in order
type standardDeal struct{}

func (standardDeal) Deal(d *deck.Deck, rows, draws int) ([][]*deck.Card, []*deck.Card, []*deck.Card, error) {
	grid := make([][]*deck.Card, rows)
	for row := range grid {
		grid[row] = make([]*deck.Card, row+1)
		for col := range grid[row] {
			card, err := d.Draw()
			if err != nil {
				return nil, nil, nil, err
			}

			grid[row][col] = card
		}
	}

	drawPile := make([]*deck.Card, draws)
	for i := range drawPile {
		card, err := d.Draw()
		if err != nil {
			return nil, nil, nil, err
		}

		drawPile[i] = card
	}

	stock := make([]*deck.Card, d.CardsLeft())
	copy(stock, d.Cards)

	return grid, drawPile, stock, nil
}

// standardDeckValidator accepts exactly the 52-card permutations
type standardDeckValidator struct{}

func (standardDeckValidator) Valid(cards []*deck.Card) bool {
	return deck.Valid(cards)
}

package pyramid

import "pyramid-solitaire-server/pkg/deck"

// Score returns 0 once the pyramid is cleared, otherwise the sum of the ranks
// still in the pyramid. Draw and stock cards never contribute
func (g *Game) Score() (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}

	score := 0
	for _, row := range g.grid {
		for _, card := range row {
			if card != nil {
				score += card.Rank
			}
		}
	}

	return score, nil
}

// IsGameOver returns true if the pyramid is cleared, or if no single removal,
// pair removal, draw-assisted removal, or discard remains possible.
//
// Candidates are the uncovered pyramid cards plus every non-empty draw card;
// a draw card has nothing beneath it, so it is always available for pairing
func (g *Game) IsGameOver() (bool, error) {
	if !g.started {
		return false, ErrNotStarted
	}

	if g.isWon() {
		return true, nil
	}

	// a discard is a legal last-resort move while the stock can still refill
	if len(g.stock) > 0 && len(g.draws) > 0 {
		return false, nil
	}

	candidates := make([]int, 0, len(g.draws)+len(g.grid))
	for row := range g.grid {
		for col, card := range g.grid[row] {
			if card != nil && g.isUncovered(row, col) {
				candidates = append(candidates, card.Rank)
			}
		}
	}

	for _, card := range g.draws {
		if card != nil {
			candidates = append(candidates, card.Rank)
		}
	}

	for i, rank := range candidates {
		if rank == g.options.RemovalTarget {
			return false, nil
		}

		for _, other := range candidates[i+1:] {
			if rank+other == g.options.RemovalTarget {
				return false, nil
			}
		}
	}

	return true, nil
}

// GetCardAt returns a copy of the card at the given pyramid position, or nil
// if the slot is empty
func (g *Game) GetCardAt(row, col int) (*deck.Card, error) {
	if !g.started {
		return nil, ErrNotStarted
	}

	if row < 0 || row >= len(g.grid) || col < 0 || col > row {
		return nil, ErrOutOfBounds
	}

	return cloneCard(g.grid[row][col]), nil
}

// GetPyramid returns a row-major copy of the pyramid; empty slots are nil
func (g *Game) GetPyramid() ([][]*deck.Card, error) {
	if !g.started {
		return nil, ErrNotStarted
	}

	grid := make([][]*deck.Card, len(g.grid))
	for row := range g.grid {
		grid[row] = cloneCards(g.grid[row])
	}

	return grid, nil
}

// GetDrawCards returns a copy of the draw pile; empty slots are nil
func (g *Game) GetDrawCards() ([]*deck.Card, error) {
	if !g.started {
		return nil, ErrNotStarted
	}

	return cloneCards(g.draws), nil
}

// GetNumRows returns the number of pyramid rows
func (g *Game) GetNumRows() (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}

	return len(g.grid), nil
}

// GetNumDraw returns the fixed size of the draw pile
func (g *Game) GetNumDraw() (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}

	return len(g.draws), nil
}

// GetRowWidth returns the number of slots in the given row
func (g *Game) GetRowWidth(row int) (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}

	if row < 0 || row >= len(g.grid) {
		return 0, ErrOutOfBounds
	}

	return len(g.grid[row]), nil
}

// StockLeft returns the number of undealt cards remaining in the stock
func (g *Game) StockLeft() (int, error) {
	if !g.started {
		return 0, ErrNotStarted
	}

	return len(g.stock), nil
}

func cloneCard(card *deck.Card) *deck.Card {
	if card == nil {
		return nil
	}

	cp := *card
	return &cp
}

func cloneCards(cards []*deck.Card) []*deck.Card {
	cp := make([]*deck.Card, len(cards))
	for i, card := range cards {
		cp[i] = cloneCard(card)
	}

	return cp
}

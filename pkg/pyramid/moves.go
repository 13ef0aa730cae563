package pyramid

import "github.com/sirupsen/logrus"

// Remove removes a single uncovered card whose rank equals the removal target
func (g *Game) Remove(row, col int) error {
	if !g.started {
		return ErrNotStarted
	}

	if err := g.checkPosition(row, col); err != nil {
		return err
	}

	if g.grid[row][col].Rank != g.options.RemovalTarget {
		return ErrInvalidMove
	}

	if !g.isUncovered(row, col) {
		return ErrCovered
	}

	g.logger.WithFields(logrus.Fields{
		"row":  row,
		"col":  col,
		"card": g.grid[row][col].String(),
	}).Debug("removed card")

	g.grid[row][col] = nil
	g.removed++

	return nil
}

// RemoveTwo removes a pair of uncovered cards whose ranks sum to the removal
// target. Validation happens fully before mutation, so either both slots clear
// or neither does
func (g *Game) RemoveTwo(row1, col1, row2, col2 int) error {
	if !g.started {
		return ErrNotStarted
	}

	if err := g.checkPosition(row1, col1); err != nil {
		return err
	}

	if err := g.checkPosition(row2, col2); err != nil {
		return err
	}

	if row1 == row2 && col1 == col2 {
		return ErrInvalidMove
	}

	if g.grid[row1][col1].Rank+g.grid[row2][col2].Rank != g.options.RemovalTarget {
		return ErrInvalidMove
	}

	if !g.isUncovered(row1, col1) || !g.isUncovered(row2, col2) {
		return ErrCovered
	}

	g.logger.WithFields(logrus.Fields{
		"card1": g.grid[row1][col1].String(),
		"card2": g.grid[row2][col2].String(),
	}).Debug("removed pair")

	g.grid[row1][col1] = nil
	g.grid[row2][col2] = nil
	g.removed += 2

	return nil
}

// RemoveUsingDraw removes an uncovered pyramid card together with a draw card
// whose ranks sum to the removal target. The pyramid slot clears first and the
// draw slot is then discarded; the clear is never rolled back
func (g *Game) RemoveUsingDraw(drawIndex, row, col int) error {
	if !g.started {
		return ErrNotStarted
	}

	if drawIndex < 0 || drawIndex >= len(g.draws) {
		return ErrOutOfBounds
	}

	if g.draws[drawIndex] == nil {
		return ErrEmptySlot
	}

	if err := g.checkPosition(row, col); err != nil {
		return err
	}

	if g.draws[drawIndex].Rank+g.grid[row][col].Rank != g.options.RemovalTarget {
		return ErrInvalidMove
	}

	if !g.isUncovered(row, col) {
		return ErrCovered
	}

	g.logger.WithFields(logrus.Fields{
		"card": g.grid[row][col].String(),
		"draw": g.draws[drawIndex].String(),
	}).Debug("removed card with draw")

	g.grid[row][col] = nil
	g.removed += 2
	g.replenishDraw(drawIndex)

	return nil
}

// DiscardDraw discards the card in the given draw slot. The slot refills from
// the front of the stock; once the stock is empty the slot stays empty for the
// rest of the game
func (g *Game) DiscardDraw(drawIndex int) error {
	if !g.started {
		return ErrNotStarted
	}

	if drawIndex < 0 || drawIndex >= len(g.draws) {
		return ErrOutOfBounds
	}

	if g.draws[drawIndex] == nil {
		return ErrEmptySlot
	}

	g.logger.WithFields(logrus.Fields{
		"drawIndex": drawIndex,
		"card":      g.draws[drawIndex].String(),
	}).Debug("discarded draw")

	g.discarded++
	g.replenishDraw(drawIndex)

	return nil
}

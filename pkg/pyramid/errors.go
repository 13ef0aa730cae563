package pyramid

import "errors"

// ErrInvalidDeck is an error when the supplied deck is not a valid 52-card permutation
var ErrInvalidDeck = errors.New("deck is not a valid 52-card deck")

// ErrInsufficientCards is an error when the layout requires more cards than the deck provides
var ErrInsufficientCards = errors.New("not enough cards for the requested layout")

// ErrInvalidLayout is an error when the row or draw counts are not playable
var ErrInvalidLayout = errors.New("layout must have at least one row and zero or more draw slots")

// ErrNotStarted is an error when an operation is attempted on a game that was never dealt
var ErrNotStarted = errors.New("game has not started")

// ErrOutOfBounds is an error when a row, column, or draw index is outside the layout
var ErrOutOfBounds = errors.New("position is out of bounds")

// ErrEmptySlot is an error when the referenced slot no longer holds a card
var ErrEmptySlot = errors.New("slot is empty")

// ErrInvalidMove is an error when the card values do not meet the removal target
var ErrInvalidMove = errors.New("cards do not meet the removal target")

// ErrCovered is an error when a pyramid card still has cards beneath it
var ErrCovered = errors.New("card is covered")

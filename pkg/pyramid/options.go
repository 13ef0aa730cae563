package pyramid

// DefaultRemovalTarget is the value single cards must equal, or pairs must sum to, for removal
const DefaultRemovalTarget = 13

// Options are options for creating a new pyramid solitaire game
type Options struct {
	// Rows is the number of pyramid rows; row r holds r+1 cards
	Rows int

	// Draws is the fixed size of the draw pile
	Draws int

	// RemovalTarget overrides the standard removal target of 13
	RemovalTarget int

	// Shuffle deals from a shuffled copy of the deck instead of its given order
	Shuffle bool

	// Seed makes a shuffled deal deterministic. Only used by tests
	Seed int64

	// Dealer overrides how the pyramid, draw pile, and stock are filled
	Dealer DealingStrategy

	// Validator overrides what counts as a legal deck
	Validator DeckValidator
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Rows:          7,
		Draws:         3,
		RemovalTarget: DefaultRemovalTarget,
		Shuffle:       true,
	}
}

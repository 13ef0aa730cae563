package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"

	"pyramid-solitaire-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
		rng:  rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// FromCards returns a deck holding a copy of the given cards, in their
// given order. Use Shuffle if that order should not stand
func FromCards(cards []*Card) *Deck {
	cp := make([]*Card, len(cards))
	copy(cp, cards)

	return &Deck{
		Cards: cp,
		seed:  -1,
		rng:   rng.Crypto{},
	}
}

// SetSeed will swap the random source for a seeded one
// This should only be used by tests that need a deterministic shuffle
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Seed returns the seed, or -1 if the deck uses the crypto source
func (d *Deck) Seed() int64 {
	return d.seed
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards in place with a uniform Fisher–Yates pass
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) <= 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// Valid returns true if cards is a permutation of the standard 52-card deck:
// no nils, no duplicates, every suit and rank combination present
func Valid(cards []*Card) bool {
	if len(cards) != 52 {
		return false
	}

	seen := make(map[Card]bool, 52)
	for _, card := range cards {
		if card == nil || card.Rank < Ace || card.Rank > King {
			return false
		}

		switch card.Suit {
		case Clubs, Diamonds, Hearts, Spades:
		default:
			return false
		}

		if seen[*card] {
			return false
		}
		seen[*card] = true
	}

	return len(seen) == 52
}

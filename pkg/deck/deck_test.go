package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: Ace, Suit: Clubs}, *deck.Cards[0])
	assert.Equal(t, Card{Rank: King, Suit: Spades}, *deck.Cards[51])
	assert.True(t, Valid(deck.Cards))
	assert.Equal(t, int64(-1), deck.Seed())
}

func TestDeck_Shuffle(t *testing.T) {
	deck := New()
	deck.SetSeed(1)
	deck.Shuffle()

	assert.Equal(t, int64(1), deck.Seed())
	assert.True(t, Valid(deck.Cards))

	other := New()
	other.SetSeed(1)
	other.Shuffle()

	assert.Equal(t, deck.HashCode(), other.HashCode())

	other.Shuffle()
	assert.NotEqual(t, deck.HashCode(), other.HashCode())
	assert.True(t, Valid(other.Cards))
}

func TestFromCards(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("1c,2c,3c")
	d := FromCards(cards)

	a.Equal(3, d.CardsLeft())
	a.Equal(int64(-1), d.Seed())

	card, err := d.Draw()
	a.NoError(err)
	a.True(card.Equal(cards[0]))
	a.Equal(2, d.CardsLeft())

	// the deck owns its own slice
	d.Cards[0] = nil
	a.NotNil(cards[1])
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	if !deck.CanDraw(52) {
		t.Errorf("expected CanDraw(52) to be true")
	}

	if deck.CanDraw(53) {
		t.Errorf("expected CanDraw(53) to be false")
	}

	for i := 0; i < 52; i++ {
		card, err := deck.Draw()
		if card == nil {
			t.Error("expected card, got nil")
		}

		if err != nil {
			t.Errorf("expected err to be nil, got %v", err)
		}
	}

	if deck.CanDraw(1) {
		t.Errorf("expected CanDraw(1) to be false")
	}

	card, err := deck.Draw()
	if card != nil {
		t.Errorf("expected card to be nil, got %#v", card)
	}

	if err != ErrEndOfDeck {
		t.Errorf("expected err to be ErrEndOfDeck, got %#v", err)
	}
}

func TestValid(t *testing.T) {
	a := assert.New(t)

	a.False(Valid(nil))
	a.False(Valid([]*Card{}))

	cards := New().Cards
	a.True(Valid(cards))

	a.False(Valid(cards[:51]))

	dupe := make([]*Card, 52)
	copy(dupe, cards)
	dupe[51] = dupe[0]
	a.False(Valid(dupe))

	withNil := make([]*Card, 52)
	copy(withNil, cards)
	withNil[13] = nil
	a.False(Valid(withNil))

	badRank := make([]*Card, 52)
	copy(badRank, cards)
	badRank[0] = &Card{Rank: 14, Suit: Clubs}
	a.False(Valid(badRank))

	badSuit := make([]*Card, 52)
	copy(badSuit, cards)
	badSuit[0] = &Card{Rank: Ace, Suit: Suit("stars")}
	a.False(Valid(badSuit))
}

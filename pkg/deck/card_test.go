package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)

	a.Equal("A♦", (&Card{Rank: Ace, Suit: Diamonds}).String())
	a.Equal("2♣", (&Card{Rank: 2, Suit: Clubs}).String())
	a.Equal("10♥", (&Card{Rank: 10, Suit: Hearts}).String())
	a.Equal("J♣", (&Card{Rank: Jack, Suit: Clubs}).String())
	a.Equal("Q♦", (&Card{Rank: Queen, Suit: Diamonds}).String())
	a.Equal("K♠", (&Card{Rank: King, Suit: Spades}).String())

	a.Panics(func() {
		_ = (&Card{Rank: 2, Suit: Suit("stars")}).String()
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)

	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)

	a.Equal(Card{Rank: King, Suit: Spades}, *CardFromString("13s"))
	a.Equal(Card{Rank: Ace, Suit: Diamonds}, *CardFromString("1d"))
	a.Equal(Card{Rank: 10, Suit: Hearts}, *CardFromString("10h"))
	a.Nil(CardFromString(""))

	a.Panics(func() {
		CardFromString("14s")
	})

	a.Panics(func() {
		CardFromString("0c")
	})
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("1c,10h,13s")
	assert.Equal(t, "1c,10h,13s", CardsToString(cards))

	cards[1] = nil
	assert.Equal(t, "1c,,13s", CardsToString(cards))
}

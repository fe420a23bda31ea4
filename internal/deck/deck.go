package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a Tichu deck
const Size = 56

// Deck is an ordered sequence of cards. It is a value: drawing returns
// the remaining deck and leaves the receiver untouched.
type Deck struct {
	cards []Card
}

// Canonical returns the unshuffled deck: every regular rank in each
// standard suit, then the four specials.
func Canonical() []Card {
	cards := make([]Card, 0, Size)
	for _, rank := range StandardRanks {
		for _, suit := range StandardSuits {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	for _, rank := range SpecialRanks {
		cards = append(cards, NewCard(rank, Special))
	}
	return cards
}

// New creates a full deck shuffled once with rng
func New(rng *rand.Rand) Deck {
	cards := Canonical()

	// Fisher-Yates
	for i := len(cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}

	return Deck{cards: cards}
}

// FromCards creates a deck holding a copy of cards in the given order.
// The last card is drawn first.
func FromCards(cards []Card) Deck {
	return Deck{cards: append([]Card(nil), cards...)}
}

// Len returns the number of cards left in the deck
func (d Deck) Len() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards in deck order
func (d Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Draw takes the card at the back of the deck and returns it with the
// remaining deck.
func (d Deck) Draw() (Card, Deck, bool) {
	n := len(d.cards)
	if n == 0 {
		return Card{}, d, false
	}
	// Capped capacity so appends to the remainder never overwrite d.
	return d.cards[n-1], Deck{cards: d.cards[:n-1 : n-1]}, true
}

package deal

import (
	"slices"

	"github.com/lox/tichudeal/internal/deck"
)

// Hand holds the cards dealt to one player in a round
type Hand struct {
	Player string

	// Cards is the full hand
	Cards []deck.Card

	// Opening holds the first cards the player received, in dealt order,
	// captured during the initial phase and never touched afterwards.
	Opening []deck.Card
}

// Clone returns a deep copy of the hand
func (h Hand) Clone() Hand {
	return Hand{
		Player:  h.Player,
		Cards:   slices.Clone(h.Cards),
		Opening: slices.Clone(h.Opening),
	}
}

// Sorted returns a copy with the full hand and the opening cards sorted
// independently.
func (h Hand) Sorted() Hand {
	return Hand{
		Player:  h.Player,
		Cards:   deck.Sort(h.Cards),
		Opening: deck.Sort(h.Opening),
	}
}

// Round is one complete deal of the deck, one hand per player in seat order
type Round struct {
	Board int
	Seed  int64
	Hands []Hand
}

// Players returns the player labels in seat order
func (r Round) Players() []string {
	players := make([]string, len(r.Hands))
	for i, h := range r.Hands {
		players[i] = h.Player
	}
	return players
}

// Hand returns the hand dealt to player
func (r Round) Hand(player string) (Hand, bool) {
	for _, h := range r.Hands {
		if h.Player == player {
			return h, true
		}
	}
	return Hand{}, false
}

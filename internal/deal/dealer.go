// Package deal distributes a shuffled Tichu deck to players.
//
// Dealing happens in two phases. DealInitial hands out the first batch
// round-robin and records each player's opening cards; DealRemaining
// continues the same rotation on the leftover deck. Both take values and
// return new ones, the caller composes them:
//
//	hands, rest, err := deal.DealInitial(d, players, 8)
//	hands, rest, err = deal.DealRemaining(rest, hands, 6)
package deal

import (
	"errors"
	"fmt"

	"github.com/lox/tichudeal/internal/deck"
)

var (
	// ErrDeckExhausted is returned when a deal asks for more cards than
	// the deck holds. Nothing is dealt in that case.
	ErrDeckExhausted = errors.New("deck exhausted")

	// ErrNoPlayers is returned when dealing to an empty table
	ErrNoPlayers = errors.New("no players")

	// ErrDuplicatePlayer is returned when a player label repeats
	ErrDuplicatePlayer = errors.New("duplicate player")
)

// DealInitial deals count passes round-robin over players, drawing from
// the back of d. Every card also goes to the player's opening list while
// the hand holds at most count cards.
func DealInitial(d deck.Deck, players []string, count int) ([]Hand, deck.Deck, error) {
	if len(players) == 0 {
		return nil, d, ErrNoPlayers
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p] {
			return nil, d, fmt.Errorf("%w: %q", ErrDuplicatePlayer, p)
		}
		seen[p] = true
	}

	hands := make([]Hand, len(players))
	for i, p := range players {
		hands[i] = Hand{
			Player:  p,
			Cards:   make([]deck.Card, 0, count),
			Opening: make([]deck.Card, 0, count),
		}
	}

	return dealPasses(d, hands, count, count)
}

// DealRemaining deals count more passes to hands, appending only to the
// full hands. hands must come from DealInitial on the same deck.
func DealRemaining(d deck.Deck, hands []Hand, count int) ([]Hand, deck.Deck, error) {
	if len(hands) == 0 {
		return nil, d, ErrNoPlayers
	}

	next := make([]Hand, len(hands))
	for i, h := range hands {
		next[i] = h.Clone()
	}

	return dealPasses(d, next, count, 0)
}

// dealPasses mutates hands, which callers own. openingLimit is the hand
// size up to which dealt cards are also recorded as opening cards.
func dealPasses(d deck.Deck, hands []Hand, passes, openingLimit int) ([]Hand, deck.Deck, error) {
	if passes < 0 {
		return nil, d, fmt.Errorf("invalid card count %d", passes)
	}
	need := passes * len(hands)
	if d.Len() < need {
		return nil, d, fmt.Errorf("%w: need %d cards for %d players, %d remaining",
			ErrDeckExhausted, need, len(hands), d.Len())
	}

	rest := d
	for range passes {
		for i := range hands {
			var card deck.Card
			card, rest, _ = rest.Draw()
			hands[i].Cards = append(hands[i].Cards, card)
			if len(hands[i].Cards) <= openingLimit {
				hands[i].Opening = append(hands[i].Opening, card)
			}
		}
	}

	return hands, rest, nil
}

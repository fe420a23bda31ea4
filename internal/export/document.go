package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

// Document is a batch of rounds ready for export
type Document struct {
	ID          string
	GeneratedAt time.Time
	Players     []string
	Rounds      []deal.Round
}

// NewDocument stamps rounds with a fresh UUIDv7 and the clock's time
func NewDocument(players []string, rounds []deal.Round, clock quartz.Clock) (Document, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Document{}, fmt.Errorf("generate document id: %w", err)
	}
	return Document{
		ID:          id.String(),
		GeneratedAt: clock.Now().UTC(),
		Players:     append([]string(nil), players...),
		Rounds:      rounds,
	}, nil
}

// SuitGroup is one row of a hand summary
type SuitGroup struct {
	Suit  deck.Suit
	Ranks []deck.Rank
}

// GroupBySuit splits cards into one row per suit, Jade through Special,
// keeping the order the cards appear in. Empty suits still get a row.
func GroupBySuit(cards []deck.Card) []SuitGroup {
	groups := make([]SuitGroup, len(deck.AllSuits))
	index := make(map[deck.Suit]int, len(deck.AllSuits))
	for i, s := range deck.AllSuits {
		groups[i] = SuitGroup{Suit: s}
		index[s] = i
	}
	for _, c := range cards {
		i, ok := index[c.Suit]
		if !ok {
			continue
		}
		groups[i].Ranks = append(groups[i].Ranks, c.Rank)
	}
	return groups
}

// RankCodes joins ranks with spaces, e.g. "2 T K"
func RankCodes(ranks []deck.Rank) string {
	codes := make([]string, len(ranks))
	for i, r := range ranks {
		codes[i] = r.String()
	}
	return strings.Join(codes, " ")
}

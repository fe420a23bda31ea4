package deck

import (
	"cmp"
	"fmt"
	"slices"
)

// suitPriority orders suits for display.
var suitPriority = map[Suit]int{
	Jade:    0,
	Pagoda:  1,
	Star:    2,
	Sword:   3,
	Special: 4,
}

// rankPriority orders ranks from weakest to strongest.
var rankPriority = map[Rank]int{
	Dog:     0,
	Mahjong: 1,
	Two:     2,
	Three:   3,
	Four:    4,
	Five:    5,
	Six:     6,
	Seven:   7,
	Eight:   8,
	Nine:    9,
	Ten:     10,
	Jack:    11,
	Queen:   12,
	King:    13,
	Ace:     14,
	Phoenix: 15,
	Dragon:  16,
}

// SuitPriority returns the sort priority of s. It panics if s is not
// part of the suit vocabulary.
func SuitPriority(s Suit) int {
	p, ok := suitPriority[s]
	if !ok {
		panic(fmt.Sprintf("deck: suit %d has no sort priority", int(s)))
	}
	return p
}

// RankPriority returns the sort priority of r. It panics if r is not
// part of the rank vocabulary.
func RankPriority(r Rank) int {
	p, ok := rankPriority[r]
	if !ok {
		panic(fmt.Sprintf("deck: rank %d has no sort priority", int(r)))
	}
	return p
}

// Compare orders cards by suit priority, then rank priority
func Compare(a, b Card) int {
	if c := cmp.Compare(SuitPriority(a.Suit), SuitPriority(b.Suit)); c != 0 {
		return c
	}
	return cmp.Compare(RankPriority(a.Rank), RankPriority(b.Rank))
}

// Sort returns a sorted copy of cards. The input is not modified.
// Cards outside the vocabulary cause a panic.
func Sort(cards []Card) []Card {
	sorted := slices.Clone(cards)
	// Validate up front so a single card still fails loudly.
	for _, c := range sorted {
		SuitPriority(c.Suit)
		RankPriority(c.Rank)
	}
	slices.SortFunc(sorted, Compare)
	return sorted
}

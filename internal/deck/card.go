package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The four specials share the Special suit.
type Suit int

const (
	Jade Suit = iota + 1
	Pagoda
	Star
	Sword
	Special
)

// StandardSuits lists the four regular suits in priority order
var StandardSuits = []Suit{Jade, Pagoda, Star, Sword}

// AllSuits lists every suit, Special last
var AllSuits = []Suit{Jade, Pagoda, Star, Sword, Special}

// String returns the suit name
func (s Suit) String() string {
	switch s {
	case Jade:
		return "Jade"
	case Pagoda:
		return "Pagoda"
	case Star:
		return "Star"
	case Sword:
		return "Sword"
	case Special:
		return "Special"
	default:
		return "?"
	}
}

// Valid reports whether s is part of the suit vocabulary
func (s Suit) Valid() bool {
	return s >= Jade && s <= Special
}

// ParseSuit parses a suit name, ignoring case
func ParseSuit(s string) (Suit, error) {
	for _, suit := range AllSuits {
		if strings.EqualFold(s, suit.String()) {
			return suit, nil
		}
	}
	return 0, fmt.Errorf("invalid suit: %q", s)
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 1
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Mahjong
	Dog
	Phoenix
	Dragon
)

// StandardRanks lists the thirteen regular ranks from Two to Ace
var StandardRanks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// SpecialRanks lists the four special cards in deck order
var SpecialRanks = []Rank{Mahjong, Dog, Phoenix, Dragon}

var rankCodes = map[Rank]string{
	Two: "2", Three: "3", Four: "4", Five: "5", Six: "6", Seven: "7", Eight: "8",
	Nine: "9", Ten: "T", Jack: "J", Queen: "Q", King: "K", Ace: "A",
	Mahjong: "1", Dog: "Dog", Phoenix: "Ph", Dragon: "Dr",
}

var rankNames = map[Rank]string{
	Mahjong: "Mahjong", Dog: "Dog", Phoenix: "Phoenix", Dragon: "Dragon",
}

// String returns the compact rank code ("T", "1", "Ph", ...)
func (r Rank) String() string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "?"
}

// Name returns the long form of the rank. Specials use their card
// names, regular ranks use their code.
func (r Rank) Name() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return r.String()
}

// Valid reports whether r is part of the rank vocabulary
func (r Rank) Valid() bool {
	return r >= Two && r <= Dragon
}

// IsSpecial returns true for Mahjong, Dog, Phoenix and Dragon
func (r Rank) IsSpecial() bool {
	return r >= Mahjong && r <= Dragon
}

// ParseRank parses a rank code or special card name, ignoring case.
// "10" is accepted for Ten.
func ParseRank(s string) (Rank, error) {
	if s == "10" {
		return Ten, nil
	}
	for r := Two; r <= Dragon; r++ {
		if strings.EqualFold(s, r.String()) || strings.EqualFold(s, r.Name()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("invalid rank: %q", s)
}

// Card represents a Tichu card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether the card exists in the 56-card deck. Specials
// only pair with the Special suit and regular ranks never do.
func (c Card) Valid() bool {
	if !c.Rank.Valid() || !c.Suit.Valid() {
		return false
	}
	return c.Rank.IsSpecial() == (c.Suit == Special)
}

// String returns the card in "{code}_of_{suit}" form, e.g. "T_of_jade"
func (c Card) String() string {
	return c.Key()
}

// Key returns the image key used by the exporters: the rank code and
// the lowercased suit name.
func (c Card) Key() string {
	return fmt.Sprintf("%s_of_%s", c.Rank, strings.ToLower(c.Suit.String()))
}

// ParseCard parses the "{code}_of_{suit}" form produced by Key
func ParseCard(s string) (Card, error) {
	rankStr, suitStr, ok := strings.Cut(s, "_of_")
	if !ok {
		return Card{}, fmt.Errorf("invalid card %q: expected {rank}_of_{suit}", s)
	}
	rank, err := ParseRank(rankStr)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	suit, err := ParseSuit(suitStr)
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q: %w", s, err)
	}
	card := NewCard(rank, suit)
	if !card.Valid() {
		return Card{}, fmt.Errorf("invalid card %q: not in the deck", s)
	}
	return card, nil
}

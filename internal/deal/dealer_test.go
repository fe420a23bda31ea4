package deal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tichudeal/internal/deck"
	"github.com/lox/tichudeal/internal/randutil"
)

func TestFullDealIsExhaustive(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{1, 2, 3, 42, 8675309} {
		d := deck.New(randutil.New(seed))
		original := d.Cards()

		hands, rest, err := DealInitial(d, []string{"A", "B", "C", "D"}, 8)
		require.NoError(t, err)
		require.Equal(t, 24, rest.Len())
		for _, h := range hands {
			require.Len(t, h.Cards, 8)
			require.Len(t, h.Opening, 8)
		}

		hands, rest, err = DealRemaining(rest, hands, 6)
		require.NoError(t, err)
		assert.True(t, rest.IsEmpty(), "seed %d", seed)

		var all []deck.Card
		for _, h := range hands {
			assert.Len(t, h.Cards, 14)
			assert.Len(t, h.Opening, 8)
			all = append(all, h.Cards...)
		}
		assert.ElementsMatch(t, original, all, "seed %d", seed)
	}
}

func TestDealRoundRobinFromBack(t *testing.T) {
	t.Parallel()
	cards := deck.Canonical()
	d := deck.FromCards(cards)

	hands, rest, err := DealInitial(d, []string{"North", "South", "East", "West"}, 8)
	require.NoError(t, err)

	// Last card of the deck goes to the first seat, next to the second.
	assert.Equal(t, cards[55], hands[0].Cards[0])
	assert.Equal(t, cards[54], hands[1].Cards[0])
	assert.Equal(t, cards[53], hands[2].Cards[0])
	assert.Equal(t, cards[52], hands[3].Cards[0])
	assert.Equal(t, cards[51], hands[0].Cards[1])
	assert.Equal(t, cards[:24], rest.Cards())

	order := []string{"North", "South", "East", "West"}
	for i, h := range hands {
		assert.Equal(t, order[i], h.Player)
	}
}

func TestOpeningIsFirstEightDealt(t *testing.T) {
	t.Parallel()
	d := deck.New(randutil.New(11))

	initial, rest, err := DealInitial(d, []string{"A", "B", "C", "D"}, 8)
	require.NoError(t, err)
	snapshot := make([]Hand, len(initial))
	for i, h := range initial {
		snapshot[i] = h.Clone()
	}

	full, _, err := DealRemaining(rest, initial, 6)
	require.NoError(t, err)

	for i, h := range full {
		assert.Equal(t, h.Cards[:8], h.Opening, "opening is the dealt prefix")
		assert.Equal(t, snapshot[i].Opening, h.Opening, "unaffected by the second phase")
		assert.Equal(t, snapshot[i], initial[i], "DealRemaining must not mutate its input")
	}
}

func TestDealInitialExhausted(t *testing.T) {
	t.Parallel()
	d := deck.FromCards(deck.Canonical()[:31])

	hands, rest, err := DealInitial(d, []string{"A", "B", "C", "D"}, 8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDeckExhausted))
	assert.Nil(t, hands, "no partial hands")
	assert.Equal(t, 31, rest.Len(), "deck untouched")
}

func TestDealRemainingExhausted(t *testing.T) {
	t.Parallel()
	d := deck.New(randutil.New(3))
	hands, rest, err := DealInitial(d, []string{"A", "B", "C", "D"}, 8)
	require.NoError(t, err)

	_, after, err := DealRemaining(rest, hands, 7)
	require.ErrorIs(t, err, ErrDeckExhausted)
	assert.Equal(t, 24, after.Len())
	for _, h := range hands {
		assert.Len(t, h.Cards, 8)
	}
}

func TestDealInitialPlayerErrors(t *testing.T) {
	t.Parallel()
	d := deck.New(randutil.New(1))

	_, _, err := DealInitial(d, nil, 8)
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, _, err = DealInitial(d, []string{"A", "B", "A", "D"}, 8)
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, _, err = DealRemaining(d, nil, 6)
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestHandSortedIndependently(t *testing.T) {
	t.Parallel()
	h := Hand{
		Player: "North",
		Cards: []deck.Card{
			deck.NewCard(deck.Dragon, deck.Special),
			deck.NewCard(deck.Five, deck.Jade),
			deck.NewCard(deck.King, deck.Sword),
			deck.NewCard(deck.Two, deck.Star),
		},
		Opening: []deck.Card{
			deck.NewCard(deck.Dragon, deck.Special),
			deck.NewCard(deck.King, deck.Sword),
		},
	}

	sorted := h.Sorted()
	assert.Equal(t, []deck.Card{
		deck.NewCard(deck.Five, deck.Jade),
		deck.NewCard(deck.Two, deck.Star),
		deck.NewCard(deck.King, deck.Sword),
		deck.NewCard(deck.Dragon, deck.Special),
	}, sorted.Cards)
	assert.Equal(t, []deck.Card{
		deck.NewCard(deck.King, deck.Sword),
		deck.NewCard(deck.Dragon, deck.Special),
	}, sorted.Opening)
	assert.Equal(t, deck.NewCard(deck.Dragon, deck.Special), h.Cards[0], "receiver unchanged")
}

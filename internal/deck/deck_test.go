package deck

import (
	"testing"

	"github.com/lox/tichudeal/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	t.Parallel()
	cards := Canonical()
	require.Len(t, cards, Size)

	seen := make(map[Card]bool, Size)
	for _, c := range cards {
		require.True(t, c.Valid(), "card %v", c)
		require.False(t, seen[c], "duplicate card %v", c)
		seen[c] = true
	}

	assert.Equal(t, NewCard(Two, Jade), cards[0])
	assert.Equal(t, NewCard(Two, Pagoda), cards[1])
	assert.Equal(t, NewCard(Ace, Sword), cards[51])
	assert.Equal(t, []Card{
		NewCard(Mahjong, Special),
		NewCard(Dog, Special),
		NewCard(Phoenix, Special),
		NewCard(Dragon, Special),
	}, cards[52:])
}

func TestNewDeckIsPermutationOfCanonical(t *testing.T) {
	t.Parallel()
	canonical := Canonical()

	for _, seed := range []int64{1, 2, 42, 1337, -7} {
		d := New(randutil.New(seed))
		require.Equal(t, Size, d.Len())
		assert.ElementsMatch(t, canonical, d.Cards(), "seed %d", seed)
	}
}

func TestNewDeckDeterministic(t *testing.T) {
	t.Parallel()
	d1 := New(randutil.New(42))
	d2 := New(randutil.New(42))
	d3 := New(randutil.New(43))

	assert.Equal(t, d1.Cards(), d2.Cards())
	assert.NotEqual(t, d1.Cards(), d3.Cards())
	assert.NotEqual(t, Canonical(), d1.Cards(), "deck should be shuffled")
}

func TestDeckDraw(t *testing.T) {
	t.Parallel()
	d := FromCards([]Card{NewCard(Two, Jade), NewCard(Three, Jade), NewCard(Dragon, Special)})

	card, rest, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Dragon, Special), card, "draw takes from the back")
	assert.Equal(t, 2, rest.Len())
	assert.Equal(t, 3, d.Len(), "original deck is unchanged")

	_, rest, _ = rest.Draw()
	_, rest, _ = rest.Draw()
	assert.True(t, rest.IsEmpty())

	_, after, ok := rest.Draw()
	assert.False(t, ok, "draw on empty deck")
	assert.True(t, after.IsEmpty())
}

func TestDeckCardsIsCopy(t *testing.T) {
	t.Parallel()
	d := New(randutil.New(9))
	cards := d.Cards()
	cards[0] = Card{}
	assert.True(t, d.Cards()[0].Valid())
}

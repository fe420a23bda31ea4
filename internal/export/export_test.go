package export

import (
	"bytes"
	"context"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

var fixtureTime = time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

func testDocument(t *testing.T, rounds int) Document {
	t.Helper()
	opts := deal.DefaultOptions()
	opts.Rounds = rounds
	opts.Seed = 2024

	dealt, err := deal.Generate(context.Background(), opts)
	require.NoError(t, err)

	clock := quartz.NewMock(t)
	clock.Set(fixtureTime)

	doc, err := NewDocument(opts.Players, dealt, clock)
	require.NoError(t, err)
	return doc
}

func cloneDocument(doc Document) Document {
	out := doc
	out.Players = append([]string(nil), doc.Players...)
	out.Rounds = make([]deal.Round, len(doc.Rounds))
	for i, r := range doc.Rounds {
		rc := r
		rc.Hands = make([]deal.Hand, len(r.Hands))
		for j, h := range r.Hands {
			rc.Hands[j] = h.Clone()
		}
		out.Rounds[i] = rc
	}
	return out
}

func TestNewDocument(t *testing.T) {
	t.Parallel()
	doc := testDocument(t, 2)

	assert.True(t, fixtureTime.Equal(doc.GeneratedAt))
	assert.Equal(t, deal.DefaultPlayers(), doc.Players)
	assert.Len(t, doc.Rounds, 2)

	id, err := uuid.Parse(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestGroupBySuit(t *testing.T) {
	t.Parallel()
	cards := []deck.Card{
		deck.NewCard(deck.Five, deck.Jade),
		deck.NewCard(deck.Ten, deck.Jade),
		deck.NewCard(deck.King, deck.Sword),
		deck.NewCard(deck.Dog, deck.Special),
		deck.NewCard(deck.Dragon, deck.Special),
	}

	groups := GroupBySuit(cards)
	require.Len(t, groups, 5)

	want := []struct {
		suit  deck.Suit
		ranks string
	}{
		{deck.Jade, "5 T"},
		{deck.Pagoda, ""},
		{deck.Star, ""},
		{deck.Sword, "K"},
		{deck.Special, "Dog Dr"},
	}
	for i, w := range want {
		assert.Equal(t, w.suit, groups[i].Suit)
		assert.Equal(t, w.ranks, RankCodes(groups[i].Ranks))
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"json", "pdf", "text", "toml", "xml"}, Formats())

	for _, format := range Formats() {
		e, err := New(format, Settings{})
		require.NoError(t, err)
		assert.Equal(t, format, e.Format())
		assert.NotEmpty(t, e.Extension())
	}

	e, err := New("JSON", Settings{})
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, e.Format())

	_, err = New("docx", Settings{})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()
	doc := testDocument(t, 3)
	before := cloneDocument(doc)

	var buf bytes.Buffer
	require.NoError(t, JSONExporter{}.Export(&buf, doc))
	assert.Equal(t, before, doc, "exporter must not mutate the document")
	assert.Contains(t, buf.String(), `"generated_at": "2026-03-14T15:09:26Z"`)
	assert.Contains(t, buf.String(), `"suit": "Special"`)

	got, err := Decode(&buf, "hands.json")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.True(t, doc.GeneratedAt.Equal(got.GeneratedAt))
	assert.Equal(t, doc.Players, got.Players)
	assert.Equal(t, doc.Rounds, got.Rounds)
}

func TestTOMLRoundTrip(t *testing.T) {
	t.Parallel()
	doc := testDocument(t, 2)

	var buf bytes.Buffer
	require.NoError(t, TOMLExporter{}.Export(&buf, doc))
	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "[[round]]"))
	assert.Equal(t, 8, strings.Count(out, "[[round.hand]]"))
	assert.Contains(t, out, "_of_special")

	got, err := Decode(strings.NewReader(out), "hands.toml")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)
	assert.True(t, doc.GeneratedAt.Equal(got.GeneratedAt))
	assert.Equal(t, doc.Players, got.Players)
	assert.Equal(t, doc.Rounds, got.Rounds)
}

func TestXMLExport(t *testing.T) {
	t.Parallel()
	doc := testDocument(t, 2)

	var buf bytes.Buffer
	require.NoError(t, XMLExporter{}.Export(&buf, doc))
	assert.True(t, strings.HasPrefix(buf.String(), xml.Header))

	var rec documentRecord
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, doc.ID, rec.ID)
	require.Len(t, rec.Rounds, 2)
	assert.Equal(t, doc.Rounds[1].Seed, rec.Rounds[1].Seed)
	for _, r := range rec.Rounds {
		require.Len(t, r.Hands, 4)
		for _, h := range r.Hands {
			assert.Len(t, h.Cards, 14)
			assert.Len(t, h.Opening, 8)
		}
	}

	back, err := fromDocumentRecord(rec)
	require.NoError(t, err)
	assert.Equal(t, doc.Rounds, back.Rounds)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()
	_, err := Decode(strings.NewReader("{}"), "hands.xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = DecodeJSON(strings.NewReader("not json"))
	assert.Error(t, err)

	bad := `{"rounds":[{"board":1,"hands":[{"player":"North","cards":[{"rank":"Dr","suit":"Jade"}]}]}]}`
	_, err = DecodeJSON(strings.NewReader(bad))
	assert.Error(t, err, "special rank in a regular suit")

	_, err = DecodeTOML(strings.NewReader("[[round]]\nboard = 1\n[[round.hand]]\nplayer = \"N\"\ncards = [\"Z_of_jade\"]\n"))
	assert.Error(t, err)
}

func TestTextExport(t *testing.T) {
	t.Parallel()
	doc := testDocument(t, 2)

	var buf bytes.Buffer
	require.NoError(t, TextExporter{}.Export(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "Board 1")
	assert.Contains(t, out, "Board 2")
	for _, p := range doc.Players {
		assert.Equal(t, 2, strings.Count(out, p), "player %s once per board", p)
	}
	assert.Equal(t, 8, strings.Count(out, "First 8:"))
	assert.Contains(t, out, "Special")
}

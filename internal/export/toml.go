package export

import (
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

// tomlDocument is the TOML archive layout: one [[round]] table per board
// with a [[round.hand]] table per player. Cards use their image keys.
type tomlDocument struct {
	ID          string      `toml:"id"`
	GeneratedAt time.Time   `toml:"generated_at"`
	Players     []string    `toml:"players"`
	Rounds      []tomlRound `toml:"round"`
}

type tomlRound struct {
	Board int        `toml:"board"`
	Seed  int64      `toml:"seed"`
	Hands []tomlHand `toml:"hand"`
}

type tomlHand struct {
	Player  string   `toml:"player"`
	Cards   []string `toml:"cards"`
	Opening []string `toml:"opening"`
}

// TOMLExporter writes the batch as a TOML archive
type TOMLExporter struct{}

func (TOMLExporter) Format() string    { return FormatTOML }
func (TOMLExporter) Extension() string { return "toml" }

func (TOMLExporter) Export(w io.Writer, doc Document) error {
	out := tomlDocument{
		ID:          doc.ID,
		GeneratedAt: doc.GeneratedAt,
		Players:     doc.Players,
		Rounds:      make([]tomlRound, len(doc.Rounds)),
	}
	for i, r := range doc.Rounds {
		tr := tomlRound{Board: r.Board, Seed: r.Seed, Hands: make([]tomlHand, len(r.Hands))}
		for j, h := range r.Hands {
			tr.Hands[j] = tomlHand{Player: h.Player, Cards: cardKeys(h.Cards), Opening: cardKeys(h.Opening)}
		}
		out.Rounds[i] = tr
	}

	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	return enc.Encode(out)
}

// DecodeTOML reads a document written by TOMLExporter
func DecodeTOML(r io.Reader) (Document, error) {
	var in tomlDocument
	if _, err := toml.NewDecoder(r).Decode(&in); err != nil {
		return Document{}, fmt.Errorf("decode toml archive: %w", err)
	}

	doc := Document{
		ID:          in.ID,
		GeneratedAt: in.GeneratedAt,
		Players:     in.Players,
		Rounds:      make([]deal.Round, len(in.Rounds)),
	}
	for i, tr := range in.Rounds {
		round := deal.Round{Board: tr.Board, Seed: tr.Seed, Hands: make([]deal.Hand, len(tr.Hands))}
		for j, th := range tr.Hands {
			cards, err := parseCardKeys(th.Cards)
			if err != nil {
				return Document{}, fmt.Errorf("board %d, %s: %w", tr.Board, th.Player, err)
			}
			opening, err := parseCardKeys(th.Opening)
			if err != nil {
				return Document{}, fmt.Errorf("board %d, %s opening: %w", tr.Board, th.Player, err)
			}
			round.Hands[j] = deal.Hand{Player: th.Player, Cards: cards, Opening: opening}
		}
		doc.Rounds[i] = round
	}
	if len(doc.Players) == 0 && len(doc.Rounds) > 0 {
		doc.Players = doc.Rounds[0].Players()
	}
	return doc, nil
}

func cardKeys(cards []deck.Card) []string {
	keys := make([]string, len(cards))
	for i, c := range cards {
		keys[i] = c.Key()
	}
	return keys
}

func parseCardKeys(keys []string) ([]deck.Card, error) {
	cards := make([]deck.Card, len(keys))
	for i, k := range keys {
		c, err := deck.ParseCard(k)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

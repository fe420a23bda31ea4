package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

// Wire records shared by the json and xml archives.

type cardRecord struct {
	Rank string `json:"rank" xml:"rank,attr"`
	Suit string `json:"suit" xml:"suit,attr"`
}

type handRecord struct {
	Player  string       `json:"player" xml:"player,attr"`
	Cards   []cardRecord `json:"cards" xml:"cards>card"`
	Opening []cardRecord `json:"opening" xml:"opening>card"`
}

type roundRecord struct {
	Board int          `json:"board" xml:"board,attr"`
	Seed  int64        `json:"seed" xml:"seed,attr"`
	Hands []handRecord `json:"hands" xml:"hand"`
}

type documentRecord struct {
	XMLName     xml.Name      `json:"-" xml:"deals"`
	ID          string        `json:"id" xml:"id,attr"`
	GeneratedAt time.Time     `json:"generated_at" xml:"generated_at,attr"`
	Players     []string      `json:"players" xml:"players>player"`
	Rounds      []roundRecord `json:"rounds" xml:"round"`
}

func toCardRecords(cards []deck.Card) []cardRecord {
	out := make([]cardRecord, len(cards))
	for i, c := range cards {
		out[i] = cardRecord{Rank: c.Rank.String(), Suit: c.Suit.String()}
	}
	return out
}

func toDocumentRecord(doc Document) documentRecord {
	rec := documentRecord{
		ID:          doc.ID,
		GeneratedAt: doc.GeneratedAt,
		Players:     append([]string(nil), doc.Players...),
		Rounds:      make([]roundRecord, len(doc.Rounds)),
	}
	for i, r := range doc.Rounds {
		rr := roundRecord{Board: r.Board, Seed: r.Seed, Hands: make([]handRecord, len(r.Hands))}
		for j, h := range r.Hands {
			rr.Hands[j] = handRecord{
				Player:  h.Player,
				Cards:   toCardRecords(h.Cards),
				Opening: toCardRecords(h.Opening),
			}
		}
		rec.Rounds[i] = rr
	}
	return rec
}

func fromCardRecords(records []cardRecord) ([]deck.Card, error) {
	cards := make([]deck.Card, len(records))
	for i, rec := range records {
		rank, err := deck.ParseRank(rec.Rank)
		if err != nil {
			return nil, err
		}
		suit, err := deck.ParseSuit(rec.Suit)
		if err != nil {
			return nil, err
		}
		card := deck.NewCard(rank, suit)
		if !card.Valid() {
			return nil, fmt.Errorf("card %s is not in the deck", card)
		}
		cards[i] = card
	}
	return cards, nil
}

func fromDocumentRecord(rec documentRecord) (Document, error) {
	doc := Document{
		ID:          rec.ID,
		GeneratedAt: rec.GeneratedAt,
		Players:     rec.Players,
		Rounds:      make([]deal.Round, len(rec.Rounds)),
	}
	for i, rr := range rec.Rounds {
		round := deal.Round{Board: rr.Board, Seed: rr.Seed, Hands: make([]deal.Hand, len(rr.Hands))}
		for j, hr := range rr.Hands {
			cards, err := fromCardRecords(hr.Cards)
			if err != nil {
				return Document{}, fmt.Errorf("board %d, %s: %w", rr.Board, hr.Player, err)
			}
			opening, err := fromCardRecords(hr.Opening)
			if err != nil {
				return Document{}, fmt.Errorf("board %d, %s opening: %w", rr.Board, hr.Player, err)
			}
			round.Hands[j] = deal.Hand{Player: hr.Player, Cards: cards, Opening: opening}
		}
		doc.Rounds[i] = round
	}
	if len(doc.Players) == 0 && len(doc.Rounds) > 0 {
		doc.Players = doc.Rounds[0].Players()
	}
	return doc, nil
}

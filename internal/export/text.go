package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

var suitHex = map[deck.Suit]string{
	deck.Jade:    "#2D7538",
	deck.Pagoda:  "#0000FF",
	deck.Star:    "#FF0000",
	deck.Sword:   "#626262",
	deck.Special: "#800080",
}

// TextExporter renders boards for a terminal. Colors are used only when
// the writer is a terminal that supports them.
type TextExporter struct{}

func (TextExporter) Format() string    { return FormatText }
func (TextExporter) Extension() string { return "txt" }

func (TextExporter) Export(w io.Writer, doc Document) error {
	styles := newTextStyles(lipgloss.NewRenderer(w))

	for i, round := range doc.Rounds {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, styles.render(round)); err != nil {
			return err
		}
	}
	return nil
}

type textStyles struct {
	header lipgloss.Style
	player lipgloss.Style
	label  lipgloss.Style
	box    lipgloss.Style
	suits  map[deck.Suit]lipgloss.Style
}

func newTextStyles(r *lipgloss.Renderer) textStyles {
	s := textStyles{
		header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		player: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(44),
		suits: make(map[deck.Suit]lipgloss.Style, len(suitHex)),
	}
	for suit, hex := range suitHex {
		s.suits[suit] = r.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
	}
	return s
}

func (s textStyles) render(round deal.Round) string {
	header := s.header.Render(fmt.Sprintf("Board %d", round.Board)) +
		s.label.Render(fmt.Sprintf("  seed %d", round.Seed))

	blocks := make([]string, len(round.Hands))
	for i, h := range round.Hands {
		blocks[i] = s.box.Render(s.hand(h))
	}

	// Same arrangement as the PDF: seats 0 and 1 on the left, 2 and 3 on the right.
	var columns []string
	for i := 0; i < len(blocks); i += 2 {
		end := min(i+2, len(blocks))
		columns = append(columns, lipgloss.JoinVertical(lipgloss.Left, blocks[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, columns...))
}

func (s textStyles) hand(h deal.Hand) string {
	var b strings.Builder
	b.WriteString(s.player.Render(h.Player))
	b.WriteString("\n")
	b.WriteString(s.label.Render("First 8: "))
	b.WriteString(s.cards(h.Opening))
	b.WriteString("\n")
	b.WriteString(s.label.Render("Full Hand"))
	for _, group := range GroupBySuit(h.Cards) {
		b.WriteString("\n")
		b.WriteString(s.suits[group.Suit].Render(fmt.Sprintf("%-8s", group.Suit)))
		b.WriteString(RankCodes(group.Ranks))
	}
	return b.String()
}

func (s textStyles) cards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = s.suits[c.Suit].Render(c.Rank.String())
	}
	return strings.Join(parts, " ")
}

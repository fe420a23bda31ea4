package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lox/tichudeal/internal/deal"
	"github.com/lox/tichudeal/internal/deck"
)

// Page layout in points, origin top-left on US Letter.
const (
	cardWidth   = 38.0
	cardHeight  = 55.0
	gridSpacing = 5.0
	gridColumns = 4

	iconSize    = 10.0
	labelHeight = 14.0
	rowHeight   = 14.0
	suitColumn  = 40.0
	ranksColumn = 145.0
)

// seatOrigins places seats 0..3 at top-left, bottom-left, top-right and
// bottom-right, the North/South/East/West arrangement of the board sheet.
var seatOrigins = [deal.NumPlayers][2]float64{
	{10, 40},
	{10, 310},
	{205, 40},
	{205, 310},
}

type rgb struct{ r, g, b int }

var suitColors = map[deck.Suit]rgb{
	deck.Jade:    {0x2d, 0x75, 0x38},
	deck.Pagoda:  {0x00, 0x00, 0xff},
	deck.Star:    {0xff, 0x00, 0x00},
	deck.Sword:   {0x00, 0x00, 0x00},
	deck.Special: {0x80, 0x00, 0x80},
}

// PDFExporter draws one page per round: for each seat the opening cards
// as an image grid and the full hand as a suit table.
type PDFExporter struct {
	images   string
	imageExt string
	exists   map[string]bool
}

// NewPDFExporter creates a PDF exporter reading images per settings
func NewPDFExporter(s Settings) *PDFExporter {
	ext := strings.TrimPrefix(s.ImageExt, ".")
	if ext == "" {
		ext = "JPG"
	}
	return &PDFExporter{images: s.Images, imageExt: ext, exists: map[string]bool{}}
}

func (e *PDFExporter) Format() string    { return FormatPDF }
func (e *PDFExporter) Extension() string { return "pdf" }

func (e *PDFExporter) Export(w io.Writer, doc Document) error {
	pdf, err := e.build(doc)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func (e *PDFExporter) build(doc Document) (*fpdf.Fpdf, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("tichudeal", true)
	pdf.SetTitle("Tichu hands", true)
	if !doc.GeneratedAt.IsZero() {
		pdf.SetCreationDate(doc.GeneratedAt)
	}

	for _, round := range doc.Rounds {
		if len(round.Hands) > len(seatOrigins) {
			return nil, fmt.Errorf("board %d: %d hands do not fit on a page of %d seats",
				round.Board, len(round.Hands), len(seatOrigins))
		}
		pdf.AddPage()
		for seat, hand := range round.Hands {
			x, y := seatOrigins[seat][0], seatOrigins[seat][1]
			e.drawHand(pdf, round.Board, hand, x, y)
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

func (e *PDFExporter) drawHand(pdf *fpdf.Fpdf, board int, hand deal.Hand, x, y float64) {
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(x, y, fmt.Sprintf("Board %d - %s - First 8", board, hand.Player))

	top := y + 6
	for i, card := range hand.Opening {
		cx := x + float64(i%gridColumns)*(cardWidth+gridSpacing)
		cy := top + float64(i/gridColumns)*(cardHeight+gridSpacing)
		e.drawCard(pdf, card, cx, cy)
	}
	rows := (len(hand.Opening) + gridColumns - 1) / gridColumns
	if rows == 0 {
		rows = 1
	}
	tableTop := top + float64(rows)*(cardHeight+gridSpacing) + gridSpacing

	e.drawSummary(pdf, board, hand, x, tableTop)
}

// drawCard places the card image, or an outlined box with the card code
// when no image file is available.
func (e *PDFExporter) drawCard(pdf *fpdf.Fpdf, card deck.Card, x, y float64) {
	path := e.imagePath(card.Key() + "." + e.imageExt)
	if e.hasImage(path) {
		pdf.ImageOptions(path, x, y, cardWidth, cardHeight, false, imageOptions(path), 0, "")
		return
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")
	c := suitColors[card.Suit]
	pdf.SetTextColor(c.r, c.g, c.b)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(x, y)
	pdf.CellFormat(cardWidth, cardHeight/2, card.Rank.String(), "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(x, y+cardHeight/2)
	pdf.CellFormat(cardWidth, cardHeight/4, card.Suit.String(), "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func (e *PDFExporter) drawSummary(pdf *fpdf.Fpdf, board int, hand deal.Hand, x, y float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x, y)
	pdf.CellFormat(suitColumn+ranksColumn, labelHeight,
		fmt.Sprintf("Board %d - %s - Full Hand", board, hand.Player), "1", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for i, group := range GroupBySuit(hand.Cards) {
		rowY := y + labelHeight + float64(i)*rowHeight
		c := suitColors[group.Suit]
		pdf.SetTextColor(c.r, c.g, c.b)

		pdf.SetXY(x, rowY)
		label := ""
		if group.Suit != deck.Special {
			icon := e.imagePath(strings.ToLower(group.Suit.String()) + "_icon.jpg")
			if e.hasImage(icon) {
				pdf.ImageOptions(icon, x+suitColumn-iconSize-2, rowY+(rowHeight-iconSize)/2,
					iconSize, iconSize, false, imageOptions(icon), 0, "")
			} else {
				label = group.Suit.String()
			}
		}
		pdf.CellFormat(suitColumn, rowHeight, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(ranksColumn, rowHeight, RankCodes(group.Ranks), "1", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

func (e *PDFExporter) imagePath(name string) string {
	if e.images == "" {
		return ""
	}
	return filepath.Join(e.images, name)
}

func (e *PDFExporter) hasImage(path string) bool {
	if path == "" {
		return false
	}
	ok, cached := e.exists[path]
	if !cached {
		info, err := os.Stat(path)
		ok = err == nil && !info.IsDir()
		e.exists[path] = ok
	}
	return ok
}

func imageOptions(path string) fpdf.ImageOptions {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	return fpdf.ImageOptions{ImageType: ext}
}

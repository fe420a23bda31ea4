package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnknownFormat is returned for a format with no registered exporter
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter renders a Document in one format
type Exporter interface {
	Format() string
	Extension() string
	Export(w io.Writer, doc Document) error
}

// Settings configures exporters that need more than the document
type Settings struct {
	// Images is the directory holding card and suit icon images
	Images string

	// ImageExt is the card image file extension, without the dot
	ImageExt string
}

var exporters = map[string]func(Settings) Exporter{}

// Register adds an exporter constructor. Later registrations win.
func Register(format string, fn func(Settings) Exporter) {
	exporters[format] = fn
}

func init() {
	Register(FormatPDF, func(s Settings) Exporter { return NewPDFExporter(s) })
	Register(FormatJSON, func(Settings) Exporter { return JSONExporter{} })
	Register(FormatXML, func(Settings) Exporter { return XMLExporter{} })
	Register(FormatTOML, func(Settings) Exporter { return TOMLExporter{} })
	Register(FormatText, func(Settings) Exporter { return TextExporter{} })
}

// Format names
const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatTOML = "toml"
	FormatText = "text"
)

// New returns the exporter for format
func New(format string, settings Settings) (Exporter, error) {
	fn, ok := exporters[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	return fn(settings), nil
}

// Formats lists the registered format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode reads an archive, choosing the decoder from the file extension
func Decode(r io.Reader, filename string) (Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return DecodeJSON(r)
	case ".toml":
		return DecodeTOML(r)
	default:
		return Document{}, fmt.Errorf("%w: cannot decode %s (want .json or .toml)", ErrUnknownFormat, filename)
	}
}

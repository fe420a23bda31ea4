package export

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONExporter writes the batch as a single indented JSON object
type JSONExporter struct{}

func (JSONExporter) Format() string    { return FormatJSON }
func (JSONExporter) Extension() string { return "json" }

func (JSONExporter) Export(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocumentRecord(doc))
}

// DecodeJSON reads a document written by JSONExporter
func DecodeJSON(r io.Reader) (Document, error) {
	var rec documentRecord
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Document{}, fmt.Errorf("decode json archive: %w", err)
	}
	return fromDocumentRecord(rec)
}

package export

import (
	"encoding/xml"
	"io"
)

// XMLExporter writes the batch as an indented <deals> document
type XMLExporter struct{}

func (XMLExporter) Format() string    { return FormatXML }
func (XMLExporter) Extension() string { return "xml" }

func (XMLExporter) Export(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(toDocumentRecord(doc)); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

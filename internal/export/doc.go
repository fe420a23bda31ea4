// Package export writes dealt rounds to files.
//
// Every exporter receives a Document and treats it as read-only. The
// pdf format is the printable board sheet; json, xml and toml are
// archives, and json and toml can be decoded back into a Document so a
// batch can be re-rendered without re-dealing. The text format is a
// terminal rendering.
package export

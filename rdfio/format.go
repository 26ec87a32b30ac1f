// Package rdfio is the boundary to the RDF library: syntax detection,
// triple decoding into an indexed in-memory set, and serialization with
// namespace bindings. Text parsing and term representation are delegated
// to github.com/knakk/rdf; nothing outside this package and the transform
// term helpers touches that library directly.
package rdfio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knakk/rdf"
)

// Format is an RDF serialization syntax.
type Format int

const (
	// FormatUnknown is the zero value; DetectFormat never returns it
	// without an error.
	FormatUnknown Format = iota
	// FormatTurtle is the Turtle syntax (.ttl), the default output.
	FormatTurtle
	// FormatRDFXML is RDF/XML (.rdf, .owl, .xml).
	FormatRDFXML
	// FormatNTriples is N-Triples (.nt).
	FormatNTriples
)

// String returns the canonical lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatTurtle:
		return "turtle"
	case FormatRDFXML:
		return "rdfxml"
	case FormatNTriples:
		return "ntriples"
	default:
		return "unknown"
	}
}

// Encodable reports whether the format can be written by Encode. RDF/XML
// is decode-only.
func (f Format) Encodable() bool {
	return f == FormatTurtle || f == FormatNTriples
}

func (f Format) decoderFormat() rdf.Format {
	switch f {
	case FormatRDFXML:
		return rdf.RDFXML
	case FormatNTriples:
		return rdf.NTriples
	default:
		return rdf.Turtle
	}
}

// FormatError reports input whose syntax could not be determined or is
// not supported. It is fatal to the current transform (not retried).
type FormatError struct {
	Name     string // filename, if any
	Declared string // declared format, if any
}

func (e *FormatError) Error() string {
	switch {
	case e.Name != "" && e.Declared != "":
		return fmt.Sprintf("unrecognized RDF format %q for %s", e.Declared, e.Name)
	case e.Name != "":
		return fmt.Sprintf("cannot determine RDF format of %s", e.Name)
	default:
		return fmt.Sprintf("unrecognized RDF format %q", e.Declared)
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "turtle", "ttl":
		return FormatTurtle, true
	case "xml", "rdfxml", "rdf-xml", "rdf/xml", "owl":
		return FormatRDFXML, true
	case "ntriples", "n-triples", "nt":
		return FormatNTriples, true
	default:
		return FormatUnknown, false
	}
}

// DetectFormat resolves the syntax of an input. A recognized declared
// format wins; otherwise the filename extension decides (.ttl, .nt,
// .rdf/.owl/.xml). When both are absent or unrecognized a *FormatError
// is returned.
func DetectFormat(filename, declared string) (Format, error) {
	if declared != "" {
		if f, ok := ParseFormat(declared); ok {
			return f, nil
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".ttl":
		return FormatTurtle, nil
	case ".nt":
		return FormatNTriples, nil
	case ".rdf", ".owl", ".xml":
		return FormatRDFXML, nil
	}
	return FormatUnknown, &FormatError{Name: filename, Declared: declared}
}

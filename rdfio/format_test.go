package rdfio

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		declared string
		want     Format
		wantErr  bool
	}{
		{"ttl extension", "graph.ttl", "", FormatTurtle, false},
		{"nt extension", "graph.nt", "", FormatNTriples, false},
		{"rdf extension", "graph.rdf", "", FormatRDFXML, false},
		{"owl extension", "mondo.owl", "", FormatRDFXML, false},
		{"declared wins", "graph.bin", "turtle", FormatTurtle, false},
		{"declared alias", "graph.bin", "nt", FormatNTriples, false},
		{"unknown declared falls back to extension", "graph.ttl", "parquet", FormatTurtle, false},
		{"nothing to go on", "graph.bin", "", FormatUnknown, true},
		{"unsupported both", "graph", "parquet", FormatUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.filename, tt.declared)
			if tt.wantErr {
				var fe *FormatError
				if !errors.As(err, &fe) {
					t.Fatalf("expected *FormatError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatEncodable(t *testing.T) {
	if !FormatTurtle.Encodable() || !FormatNTriples.Encodable() {
		t.Error("turtle and ntriples are writable formats")
	}
	if FormatRDFXML.Encodable() {
		t.Error("rdfxml is decode-only")
	}
}

func TestParseFormat(t *testing.T) {
	if f, ok := ParseFormat("Turtle"); !ok || f != FormatTurtle {
		t.Error("Turtle should parse case-insensitively")
	}
	if _, ok := ParseFormat("json-ld"); ok {
		t.Error("json-ld is not a supported format")
	}
}

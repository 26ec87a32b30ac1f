package curie

import (
	"testing"

	"github.com/c360studio/obangraph/vocabulary"
	"github.com/stretchr/testify/assert"
)

func TestToCURIE(t *testing.T) {
	r := DefaultResolver()

	tests := []struct {
		name string
		iri  string
		want string
	}{
		{"obo ontology term", "http://purl.obolibrary.org/obo/SO_0000704", "SO:0000704"},
		{"obo term without specific prefix", "http://purl.obolibrary.org/obo/FOO_123", "OBO:FOO_123"},
		{"oban vocabulary", "http://purl.org/oban/association", "OBAN:association"},
		{"orphanet", "http://www.orpha.net/ORDO/Orphanet_93926", "Orphanet:93926"},
		{"monarch association", "https://monarchinitiative.org/MONARCH_08830", "MONARCH:08830"},
		{"unknown namespace passes through", "http://example.org/widget/1", "http://example.org/widget/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ToCURIE(tt.iri))
		})
	}
}

func TestToIRIReservedNames(t *testing.T) {
	r := DefaultResolver()

	assert.Equal(t, vocabulary.AssociationHasSubject, r.ToIRI("subject"))
	assert.Equal(t, vocabulary.RDFType, r.ToIRI("type"))
	assert.Equal(t, vocabulary.HasDbXref, r.ToIRI("xrefs"))
	assert.Equal(t, vocabulary.RDFSSubClassOf, r.ToIRI("category"))
}

func TestToIRICURIEExpansion(t *testing.T) {
	r := DefaultResolver()

	assert.Equal(t, "http://purl.obolibrary.org/obo/ECO_0000001", r.ToIRI("ECO:0000001"))
	assert.Equal(t, "http://www.orpha.net/ORDO/Orphanet_93926", r.ToIRI("Orphanet:93926"))
	// Neither reserved nor a known prefix: opaque pass-through.
	assert.Equal(t, "urn:uuid:1234", r.ToIRI("urn:uuid:1234"))
	assert.Equal(t, "relatedTo", r.ToIRI("relatedTo"))
}

func TestCURIEIdempotence(t *testing.T) {
	r := DefaultResolver()

	iris := []string{
		"http://purl.obolibrary.org/obo/SO_0000704",
		"http://purl.obolibrary.org/obo/MONDO_0000001",
		"http://www.orpha.net/ORDO/Orphanet_93926",
		"http://purl.org/oban/association_has_subject",
	}
	for _, iri := range iris {
		assert.Equal(t, iri, r.ToIRI(r.ToCURIE(iri)), "to_iri(to_curie(x)) must equal x for %s", iri)
	}
}

func TestResolverDeterminism(t *testing.T) {
	// Two resolvers over the same maps must contract identically even
	// though map iteration order varies.
	a := DefaultResolver()
	b := DefaultResolver()
	for _, iri := range []string{
		"http://purl.obolibrary.org/obo/GO_0008150",
		"http://purl.obolibrary.org/obo/UBERON_0000955",
	} {
		assert.Equal(t, a.ToCURIE(iri), b.ToCURIE(iri))
	}
}

func TestConfiguredOrderWins(t *testing.T) {
	r := NewResolver([]map[string]string{
		{"first": "http://example.org/ns/"},
		{"second": "http://example.org/ns/"},
	})
	assert.Equal(t, "first:x", r.ToCURIE("http://example.org/ns/x"))
}

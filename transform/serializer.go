package transform

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/c360studio/obangraph/curie"
	"github.com/c360studio/obangraph/graph"
	"github.com/c360studio/obangraph/rdfio"
	"github.com/c360studio/obangraph/vocabulary"
)

// Serializer turns a property graph back into OBAN-reified triples.
type Serializer struct {
	resolver *curie.Resolver
	logger   *slog.Logger
}

// NewSerializer creates a Serializer.
func NewSerializer(resolver *curie.Resolver, logger *slog.Logger) *Serializer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Serializer{resolver: resolver, logger: logger}
}

// Serialize emits one reified association per edge plus one triple per
// auxiliary property value. The returned set carries the OBAN namespace
// binding and an explicit OBO binding: without the latter some
// serializers contract http://purl.obolibrary.org/obo/RO_0002558 under
// the wrong prefix (RDFLib issue 632), so OBO terms are pinned to the
// OBO: form.
func (s *Serializer) Serialize(g *graph.Graph) (*rdfio.TripleSet, error) {
	if g == nil {
		return nil, ErrNoGraph
	}

	ts := rdfio.NewTripleSet()
	ts.Bind("OBAN", vocabulary.OBANNamespace)
	ts.Bind("OBO", vocabulary.OBONamespace)

	for _, edge := range g.Edges() {
		if err := s.serializeEdge(ts, edge); err != nil {
			return nil, err
		}
	}

	s.logger.Info("serialized graph",
		slog.Int("nodes", g.Len()),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("triples", ts.Len()))
	return ts, nil
}

func (s *Serializer) serializeEdge(ts *rdfio.TripleSet, edge *graph.Edge) error {
	assocIRI := s.associationIRI(edge)

	predicate := edge.Predicate
	if predicate == "" {
		predicate = vocabulary.DefaultPredicate
	}

	if err := ts.AddIRITriple(assocIRI, vocabulary.RDFType, vocabulary.Association); err != nil {
		return err
	}
	if err := ts.AddIRITriple(assocIRI, vocabulary.AssociationHasSubject, s.resolver.ToIRI(edge.Subject)); err != nil {
		return err
	}
	if err := ts.AddIRITriple(assocIRI, vocabulary.AssociationHasPred, s.resolver.ToIRI(predicate)); err != nil {
		return err
	}
	if err := ts.AddIRITriple(assocIRI, vocabulary.AssociationHasObject, s.resolver.ToIRI(edge.Object)); err != nil {
		return err
	}

	keys := make([]string, 0, len(edge.Properties))
	for key := range edge.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if vocabulary.IsReservedEdgeProperty(key) {
			continue
		}
		predIRI := s.resolver.ToIRI(key)
		for _, v := range edge.Properties[key].Strings() {
			// Values that resolve to an IRI are emitted as such; anything
			// the term model rejects (comments, names, synonyms and other
			// free text) degrades to a literal rather than failing the
			// transform.
			if err := ts.AddIRITriple(assocIRI, predIRI, s.resolver.ToIRI(v)); err != nil {
				if err := ts.AddLiteralTriple(assocIRI, predIRI, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// associationIRI reuses the edge's stored association identifier when
// present; an edge born outside an RDF load gets a fresh urn:uuid IRI.
func (s *Serializer) associationIRI(edge *graph.Edge) string {
	if edge.AssociationID != "" {
		return s.resolver.ToIRI(edge.AssociationID)
	}
	return "urn:uuid:" + uuid.NewString()
}

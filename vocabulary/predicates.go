package vocabulary

// Property names understood by the rest of the system. These are the graph
// side of the predicate dictionary; every other predicate round-trips as a
// CURIE.
const (
	PropSubject     = "subject"
	PropPredicate   = "predicate"
	PropObject      = "object"
	PropType        = "type"
	PropComment     = "comment"
	PropName        = "name"
	PropDescription = "description"
	PropHasEvidence = "has_evidence"
	PropExactMatch  = "exact_match"
	PropXrefs       = "xrefs"
	PropCategory    = "category"
	PropSynonyms    = "synonyms"
	PropProvidedBy  = "provided_by"
	PropID          = "id"
)

// DefaultPredicate is used for an edge whose association carried no
// predicate triple.
const DefaultPredicate = "relatedTo"

// propertyToPredicate is the fixed dictionary from property names to
// predicate IRIs. It is consulted before generic CURIE expansion on both
// the load and save paths.
var propertyToPredicate = map[string]string{
	PropSubject:     AssociationHasSubject,
	PropObject:      AssociationHasObject,
	PropPredicate:   AssociationHasPred,
	PropType:        RDFType,
	PropComment:     RDFSComment,
	PropName:        RDFSLabel,
	PropDescription: DCDescription,
	PropHasEvidence: HasEvidence,
	PropExactMatch:  SKOSExactMatch,
	PropXrefs:       HasDbXref,
	PropCategory:    RDFSSubClassOf,
	PropSynonyms:    HasExactSynonym,
}

var predicateToProperty = func() map[string]string {
	m := make(map[string]string, len(propertyToPredicate))
	for prop, pred := range propertyToPredicate {
		m[pred] = prop
	}
	return m
}()

// PredicateForProperty returns the predicate IRI for a reserved property
// name. The second return is false for names outside the dictionary.
func PredicateForProperty(name string) (string, bool) {
	iri, ok := propertyToPredicate[name]
	return iri, ok
}

// PropertyForPredicate returns the reserved property name for a predicate
// IRI, or false when the predicate is not part of the dictionary.
func PropertyForPredicate(iri string) (string, bool) {
	name, ok := predicateToProperty[iri]
	return name, ok
}

// reservedEdgeProperties are never emitted as auxiliary property triples;
// they are either structural (subject, predicate, object) or provenance
// carried on the edge itself.
var reservedEdgeProperties = map[string]bool{
	PropSubject:    true,
	PropPredicate:  true,
	PropObject:     true,
	PropProvidedBy: true,
	PropID:         true,
	PropType:       true,
	RDFType:        true,
}

// IsReservedEdgeProperty reports whether a property name is excluded from
// an edge's auxiliary property set.
func IsReservedEdgeProperty(name string) bool {
	return reservedEdgeProperties[name]
}

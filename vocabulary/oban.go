package vocabulary

// Base namespaces used by the OBAN reification model.
const (
	// OBANNamespace is the base IRI of the OBAN vocabulary.
	OBANNamespace = "http://purl.org/oban/"

	// OBONamespace hosts OBO Foundry terms. It is bound explicitly on
	// output; see transform.Serializer for why.
	OBONamespace = "http://purl.obolibrary.org/obo/"

	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"
	DCNamespace   = "http://purl.org/dc/elements/1.1/"
	OBOInOwlNS    = "http://www.geneontology.org/formats/oboInOwl#"
)

// OBAN association terms. An edge is stored in RDF as an entity of type
// Association carrying one triple per endpoint and predicate.
const (
	Association           = OBANNamespace + "association"
	AssociationHasSubject = OBANNamespace + "association_has_subject"
	AssociationHasPred    = OBANNamespace + "association_has_predicate"
	AssociationHasObject  = OBANNamespace + "association_has_object"
)

// Well-known term IRIs referenced by the predicate dictionary and the
// OWL subsumption loader.
const (
	RDFType        = RDFNamespace + "type"
	RDFSComment    = RDFSNamespace + "comment"
	RDFSLabel      = RDFSNamespace + "label"
	RDFSSubClassOf = RDFSNamespace + "subClassOf"

	OWLOnProperty     = OWLNamespace + "onProperty"
	OWLSomeValuesFrom = OWLNamespace + "someValuesFrom"

	SKOSExactMatch  = SKOSNamespace + "exactMatch"
	DCDescription   = DCNamespace + "description"
	HasDbXref       = OBOInOwlNS + "hasDbXref"
	HasExactSynonym = OBOInOwlNS + "hasExactSynonym"
	HasEvidence     = OBONamespace + "RO_0002558"
)

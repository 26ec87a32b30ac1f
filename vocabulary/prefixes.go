package vocabulary

// DefaultPrefixMaps returns the ordered list of prefix→namespace maps used
// for CURIE contraction and expansion when no configuration overrides
// them. Order matters: earlier maps win when two prefixes share a
// namespace, and within a map the longest matching namespace wins.
//
// The per-ontology OBO prefixes precede the bare OBO prefix so that
// http://purl.obolibrary.org/obo/SO_0000704 contracts to SO:0000704 rather
// than OBO:SO_0000704.
func DefaultPrefixMaps() []map[string]string {
	return []map[string]string{
		{
			"OBAN":        OBANNamespace,
			"ECO":         OBONamespace + "ECO_",
			"RO":          OBONamespace + "RO_",
			"SO":          OBONamespace + "SO_",
			"GO":          OBONamespace + "GO_",
			"CL":          OBONamespace + "CL_",
			"UBERON":      OBONamespace + "UBERON_",
			"MONDO":       OBONamespace + "MONDO_",
			"PATO":        OBONamespace + "PATO_",
			"CHEBI":       OBONamespace + "CHEBI_",
			"GENO":        OBONamespace + "GENO_",
			"UPHENO":      OBONamespace + "UPHENO_",
			"ZFA":         OBONamespace + "ZFA_",
			"WBbt":        OBONamespace + "WBbt_",
			"WBPhenotype": OBONamespace + "WBPhenotype_",
			"OBO":         OBONamespace,
		},
		{
			"rdf":      RDFNamespace,
			"rdfs":     RDFSNamespace,
			"owl":      OWLNamespace,
			"skos":     SKOSNamespace,
			"dc":       DCNamespace,
			"oboInOwl": OBOInOwlNS,
		},
		{
			"Orphanet": "http://www.orpha.net/ORDO/Orphanet_",
			"MONARCH":  "https://monarchinitiative.org/MONARCH_",
			"biolink":  "https://w3id.org/biolink/vocab/",
		},
	}
}

package vocabulary

// DefaultCategoryLabels maps ontology class IRIs to the human-readable
// category labels the property graph carries. A resolved category IRI
// absent from this table is dropped rather than stored verbatim; category
// values are labels, not IRIs.
func DefaultCategoryLabels() map[string]string {
	return map[string]string{
		OBONamespace + "CL_0000000":          "cell",
		OBONamespace + "UBERON_0001062":      "anatomical entity",
		OBONamespace + "ZFA_0009000":         "cell",
		OBONamespace + "UBERON_0004529":      "anatomical projection",
		OBONamespace + "UBERON_0000468":      "multi-cellular organism",
		OBONamespace + "UBERON_0000955":      "brain",
		OBONamespace + "PATO_0000001":        "quality",
		OBONamespace + "GO_0005623":          "cell",
		OBONamespace + "WBbt_0007833":        "organism",
		OBONamespace + "WBbt_0004017":        "cell",
		OBONamespace + "MONDO_0000001":       "disease",
		OBONamespace + "PATO_0000003":        "assay",
		OBONamespace + "PATO_0000006":        "process",
		OBONamespace + "PATO_0000011":        "age",
		OBONamespace + "ZFA_0000008":         "brain",
		OBONamespace + "ZFA_0001637":         "bony projection",
		OBONamespace + "WBPhenotype_0000061": "extended life span",
		OBONamespace + "WBPhenotype_0000039": "life span variant",
		OBONamespace + "WBPhenotype_0001171": "shortened life span",
		OBONamespace + "CHEBI_23367":         "molecular entity",
		OBONamespace + "CHEBI_23888":         "drug",
		OBONamespace + "CHEBI_51086":         "chemical role",
		OBONamespace + "UPHENO_0001001":      "Phenotype",
		OBONamespace + "GO_0008150":          "biological_process",
		OBONamespace + "GO_0005575":          "cellular component",
		OBONamespace + "SO_0000704":          "gene",
		OBONamespace + "SO_0000110":          "sequence feature",
		OBONamespace + "GENO_0000536":        "genotype",
	}
}

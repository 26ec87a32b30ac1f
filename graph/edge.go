package graph

// Edge is a directed relationship between two nodes, identified by their
// IDs. AssociationID preserves the identifier of the reified entity the
// edge came from so re-serialization is stable; it is empty for edges
// created outside an RDF load.
type Edge struct {
	Subject       string
	Object        string
	Predicate     string
	AssociationID string
	ProvidedBy    string
	Properties    map[string]Value
}

// NewEdge creates an edge with an initialized property map.
func NewEdge(subject, object, predicate string) *Edge {
	return &Edge{
		Subject:    subject,
		Object:     object,
		Predicate:  predicate,
		Properties: make(map[string]Value),
	}
}

// SetProperty records a value for a key, accumulating into an ordered
// list when the key already holds a value.
func (e *Edge) SetProperty(key, value string) {
	if existing, ok := e.Properties[key]; ok {
		e.Properties[key] = existing.Append(value)
		return
	}
	e.Properties[key] = String(value)
}

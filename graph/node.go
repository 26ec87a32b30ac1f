package graph

// Node is a vertex in the property graph. ID is the node's CURIE and the
// graph's unique key; IRI is the expanded form. Category holds resolved
// semantic labels and may be empty until (or despite) resolution.
type Node struct {
	ID         string
	IRI        string
	Category   []string
	Properties map[string]Value
}

// NewNode creates a node with an initialized property map.
func NewNode(id, iri string) *Node {
	return &Node{
		ID:         id,
		IRI:        iri,
		Properties: make(map[string]Value),
	}
}

// SetProperty records a value for a key, accumulating into an ordered
// list when the key already holds a value.
func (n *Node) SetProperty(key, value string) {
	if existing, ok := n.Properties[key]; ok {
		n.Properties[key] = existing.Append(value)
		return
	}
	n.Properties[key] = String(value)
}

// Property returns the value for a key.
func (n *Node) Property(key string) (Value, bool) {
	v, ok := n.Properties[key]
	return v, ok
}

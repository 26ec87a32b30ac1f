// Package graph holds the in-memory labeled property graph the RDF
// transforms read and write. A Graph is exclusively owned by the active
// transform for its duration; it is not safe for concurrent mutation.
package graph

import "fmt"

// Graph is a node store plus an ordered edge list. Nodes are unique by
// ID (lookup-before-create); edges are deliberately not deduplicated, so
// loading the same triples twice doubles the edge list while leaving the
// node set unchanged.
type Graph struct {
	nodes map[string]*Node
	order []string
	edges []*Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode returns the existing node for id or creates one. The returned
// node is live: property mutations are visible in the graph.
func (g *Graph) AddNode(id, iri string) *Node {
	if n, ok := g.nodes[id]; ok {
		if n.IRI == "" {
			n.IRI = iri
		}
		return n
	}
	n := NewNode(id, iri)
	g.nodes[id] = n
	g.order = append(g.order, id)
	return n
}

// Node returns the node for id, or nil.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// HasNode reports whether id is present.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// AddEdge appends an edge. Both endpoints must already be present.
func (g *Graph) AddEdge(e *Edge) error {
	if !g.HasNode(e.Subject) {
		return fmt.Errorf("subject %q: %w", e.Subject, ErrUnknownEndpoint)
	}
	if !g.HasNode(e.Object) {
		return fmt.Errorf("object %q: %w", e.Object, ErrUnknownEndpoint)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}
	return out
}

// Edges returns all edges in insertion order. The slice is shared; the
// caller must not append to it.
func (g *Graph) Edges() []*Edge {
	return g.edges
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the edge count.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

package graph

import (
	"errors"
	"testing"
)

func TestAddNodeLookupBeforeCreate(t *testing.T) {
	g := New()

	a := g.AddNode("SO:0000704", "http://purl.obolibrary.org/obo/SO_0000704")
	a.SetProperty("name", "gene")

	b := g.AddNode("SO:0000704", "http://purl.obolibrary.org/obo/SO_0000704")
	if a != b {
		t.Fatal("AddNode must return the existing node for a known id")
	}
	if g.Len() != 1 {
		t.Errorf("expected 1 node, got %d", g.Len())
	}
	if v, ok := b.Property("name"); !ok || v.First() != "gene" {
		t.Error("properties on the original node must survive re-add")
	}
}

func TestAddNodeBackfillsIRI(t *testing.T) {
	g := New()
	g.AddNode("X:1", "")
	n := g.AddNode("X:1", "http://example.org/X_1")
	if n.IRI != "http://example.org/X_1" {
		t.Errorf("expected IRI backfill, got %q", n.IRI)
	}
}

func TestAddEdgeRequiresEndpoints(t *testing.T) {
	g := New()
	g.AddNode("A:1", "http://example.org/A_1")

	err := g.AddEdge(NewEdge("A:1", "B:1", "relatedTo"))
	if !errors.Is(err, ErrUnknownEndpoint) {
		t.Fatalf("expected ErrUnknownEndpoint, got %v", err)
	}

	g.AddNode("B:1", "http://example.org/B_1")
	if err := g.AddEdge(NewEdge("A:1", "B:1", "relatedTo")); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected 1 edge, got %d", g.EdgeCount())
	}
}

func TestEdgesAreNotDeduplicated(t *testing.T) {
	g := New()
	g.AddNode("A:1", "http://example.org/A_1")
	g.AddNode("B:1", "http://example.org/B_1")

	for i := 0; i < 2; i++ {
		if err := g.AddEdge(NewEdge("A:1", "B:1", "relatedTo")); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	if g.EdgeCount() != 2 {
		t.Errorf("duplicate edges must be kept, got %d", g.EdgeCount())
	}
}

func TestNodesInsertionOrder(t *testing.T) {
	g := New()
	for _, id := range []string{"C:3", "A:1", "B:2"} {
		g.AddNode(id, "")
	}
	got := g.Nodes()
	want := []string{"C:3", "A:1", "B:2"}
	for i, n := range got {
		if n.ID != want[i] {
			t.Errorf("node %d = %q, want %q", i, n.ID, want[i])
		}
	}
}

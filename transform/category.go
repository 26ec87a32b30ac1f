package transform

import (
	"sort"

	"github.com/knakk/rdf"

	"github.com/c360studio/obangraph/rdfio"
	"github.com/c360studio/obangraph/vocabulary"
)

// attrSet accumulates multi-valued node attributes during category
// resolution. Values are sets: several triples may supply the same
// property, and merged results from neighboring nodes must union cleanly.
type attrSet map[string]map[string]bool

func (a attrSet) add(key, value string) {
	set, ok := a[key]
	if !ok {
		set = make(map[string]bool)
		a[key] = set
	}
	set[value] = true
}

func (a attrSet) merge(other attrSet) {
	for key, set := range other {
		for value := range set {
			a.add(key, value)
		}
	}
}

// sorted returns the values of a key in lexical order, so resolution is
// deterministic per run regardless of set iteration order.
func (a attrSet) sorted(key string) []string {
	set := a[key]
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// relation predicates used as fallback paths for attribute inheritance.
var equivalencePredicates = []string{
	vocabulary.SKOSExactMatch,
	vocabulary.HasDbXref,
}

// nodeAttributes gathers a node's named properties from its outgoing
// triples, and, when no category was found, recursively pulls attributes
// across exact-match and cross-reference relations in both directions.
//
// visited is keyed by node IRI and threaded through the recursion; a node
// is never expanded twice, so resolution terminates on any input graph,
// cyclic equivalence clusters included. A node reached over a relation
// stops further recursion down that path as soon as it contributes a
// category; all discovered categories are retained.
func (l *Loader) nodeAttributes(ts *rdfio.TripleSet, nodeIRI string, visited map[string]bool) attrSet {
	attrs := make(attrSet)
	if visited[nodeIRI] {
		return attrs
	}
	visited[nodeIRI] = true

	for _, t := range ts.About(nodeIRI) {
		pred := t.Pred.String()
		if name, ok := vocabulary.PropertyForPredicate(pred); ok {
			attrs.add(name, t.Obj.String())
			continue
		}
		// Unmapped predicates contribute only literal values, keyed by
		// their CURIE so they survive a round trip.
		if t.Obj.Type() == rdf.TermLiteral {
			attrs.add(l.resolver.ToCURIE(pred), t.Obj.String())
		}
	}

	if len(attrs[vocabulary.PropCategory]) > 0 {
		return attrs
	}

	for _, pred := range equivalencePredicates {
		for _, obj := range ts.ObjectsOf(nodeIRI, pred) {
			attrs.merge(l.nodeAttributes(ts, obj.String(), visited))
		}
		for _, subj := range ts.SubjectsWith(pred, nodeIRI) {
			attrs.merge(l.nodeAttributes(ts, subj, visited))
		}
	}

	return attrs
}

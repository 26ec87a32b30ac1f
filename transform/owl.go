package transform

import (
	"log/slog"

	"github.com/knakk/rdf"

	"github.com/c360studio/obangraph/graph"
	"github.com/c360studio/obangraph/rdfio"
	"github.com/c360studio/obangraph/vocabulary"
)

// LoadOWL loads class-subsumption edges from an OWL ontology, retaining
// class-class relationships. Two patterns are handled:
//
//	C rdfs:subClassOf D            -> edge D -> C, predicate owl:subClassOf
//	C rdfs:subClassOf [R some D]   -> edge D -> C, predicate R
//
// An existential restriction missing owl:onProperty or owl:someValuesFrom
// is skipped with a warning; anonymous subclasses are skipped silently.
func (l *Loader) LoadOWL(ts *rdfio.TripleSet, providedBy string, g *graph.Graph) error {
	if ts == nil {
		return ErrNoInput
	}
	if g == nil {
		return ErrNoGraph
	}

	var loaded int
	for _, t := range ts.Triples() {
		if t.Pred.String() != vocabulary.RDFSSubClassOf {
			continue
		}
		if t.Subj.Type() == rdf.TermBlank {
			continue
		}

		child := t.Subj.String()
		predicate := "owl:subClassOf"
		parent := t.Obj.String()

		if t.Obj.Type() == rdf.TermBlank {
			// C SubClassOf R some D
			restriction := t.Obj.String()
			props := ts.ObjectsOf(restriction, vocabulary.OWLOnProperty)
			fillers := ts.ObjectsOf(restriction, vocabulary.OWLSomeValuesFrom)
			if len(props) == 0 || len(fillers) == 0 {
				l.logger.Warn("malformed existential restriction, skipping",
					slog.String("subclass", child),
					slog.String("restriction", restriction))
				continue
			}
			predicate = l.resolver.ToCURIE(props[len(props)-1].String())
			parent = fillers[len(fillers)-1].String()
		}

		parentID := l.resolver.ToCURIE(parent)
		childID := l.resolver.ToCURIE(child)
		g.AddNode(parentID, parent)
		g.AddNode(childID, child)

		edge := graph.NewEdge(parentID, childID, predicate)
		edge.ProvidedBy = providedBy
		if err := g.AddEdge(edge); err != nil {
			return err
		}
		loaded++
	}

	l.logger.Info("loaded subclass edges", slog.Int("count", loaded))
	return nil
}

// Package transform implements the bidirectional transform between
// OBAN-reified RDF triples and the in-memory property graph: unpacking
// association entities into edges, resolving node categories, and
// re-serializing edges as reified associations.
package transform

import (
	"log/slog"

	"github.com/c360studio/obangraph/curie"
	"github.com/c360studio/obangraph/graph"
	"github.com/c360studio/obangraph/rdfio"
	"github.com/c360studio/obangraph/vocabulary"
)

// Loader turns a triple set into property-graph nodes and edges.
type Loader struct {
	resolver   *curie.Resolver
	categories map[string]string
	logger     *slog.Logger
}

// NewLoader creates a Loader. categoryLabels maps ontology class IRIs to
// the labels stored on nodes; pass vocabulary.DefaultCategoryLabels() or
// the configured table.
func NewLoader(resolver *curie.Resolver, categoryLabels map[string]string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		resolver:   resolver,
		categories: categoryLabels,
		logger:     logger,
	}
}

// association is the transient record of one reified entity while its
// outgoing triples are being collected, before projection into edges.
type association struct {
	id    string
	iri   string
	props map[string][]string
	order []string
}

func (a *association) add(key, value string) {
	if _, ok := a.props[key]; !ok {
		a.order = append(a.order, key)
	}
	a.props[key] = append(a.props[key], value)
}

// Load scans ts for subjects typed as OBAN associations and unpacks each
// into graph edges, creating endpoint nodes as needed. providedBy tags
// every edge with its source.
//
// Loading is idempotent per node (lookup-before-create) but NOT per edge:
// reprocessing the same triples appends duplicate edges. Callers needing
// strict idempotence must load into a fresh graph.
func (l *Loader) Load(ts *rdfio.TripleSet, providedBy string, g *graph.Graph) error {
	if ts == nil {
		return ErrNoInput
	}
	if g == nil {
		return ErrNoGraph
	}

	associations := ts.SubjectsWith(vocabulary.RDFType, vocabulary.Association)
	l.logger.Info("loading associations",
		slog.Int("count", len(associations)),
		slog.String("provided_by", providedBy))

	for _, subject := range associations {
		assoc := l.collectAssociation(ts, subject)

		subjects := assoc.props[vocabulary.PropSubject]
		objects := assoc.props[vocabulary.PropObject]
		if len(subjects) == 0 || len(objects) == 0 {
			l.logger.Warn("association lacks subject or object, skipping",
				slog.String("association", assoc.iri),
				slog.Int("subjects", len(subjects)),
				slog.Int("objects", len(objects)))
			continue
		}

		idByIRI := make(map[string]string, len(subjects)+len(objects))
		for _, iri := range append(append([]string(nil), subjects...), objects...) {
			if _, ok := idByIRI[iri]; ok {
				continue
			}
			idByIRI[iri] = l.resolveNode(ts, g, iri)
		}

		l.projectEdges(g, assoc, subjects, objects, idByIRI, providedBy)
	}
	return nil
}

// collectAssociation builds the transient association record from the
// subject's outgoing triples, mapping predicates through the reverse
// dictionary and accumulating multi-valued properties.
func (l *Loader) collectAssociation(ts *rdfio.TripleSet, subjectIRI string) *association {
	assoc := &association{
		id:    l.resolver.ToCURIE(subjectIRI),
		iri:   subjectIRI,
		props: make(map[string][]string),
	}
	for _, t := range ts.About(subjectIRI) {
		pred := t.Pred.String()
		name, ok := vocabulary.PropertyForPredicate(pred)
		if !ok {
			name = l.resolver.ToCURIE(pred)
		}
		assoc.add(name, t.Obj.String())
	}
	return assoc
}

// resolveNode looks a node up by CURIE, creating it with resolved
// attributes on first sight, and returns its id.
func (l *Loader) resolveNode(ts *rdfio.TripleSet, g *graph.Graph, iri string) string {
	id := l.resolver.ToCURIE(iri)
	if g.HasNode(id) {
		g.AddNode(id, iri) // backfills an empty IRI
		return id
	}

	attrs := l.nodeAttributes(ts, iri, make(map[string]bool))
	node := g.AddNode(id, iri)

	for key := range attrs {
		if key == vocabulary.PropCategory {
			continue
		}
		if values := attrs.sorted(key); len(values) > 1 {
			node.Properties[key] = graph.List(values...)
		} else {
			node.SetProperty(key, values[0])
		}
	}

	node.Category = l.translateCategories(iri, attrs.sorted(vocabulary.PropCategory))
	return id
}

// translateCategories maps raw category IRIs to human-readable labels.
// An IRI absent from the table is dropped, not stored verbatim; a node
// left without any label is a data-quality condition, not an error.
func (l *Loader) translateCategories(nodeIRI string, rawIRIs []string) []string {
	var labels []string
	for _, raw := range rawIRIs {
		if label, ok := l.categories[raw]; ok {
			labels = append(labels, label)
		} else {
			l.logger.Debug("category IRI not in label table, dropping",
				slog.String("node", nodeIRI),
				slog.String("category", raw))
		}
	}
	if len(labels) == 0 {
		l.logger.Warn("node has no resolvable category",
			slog.String("node", nodeIRI))
	}
	return labels
}

// projectEdges emits the Cartesian product of the association's subject
// and object sets, every edge sharing the association's non-reserved
// properties.
func (l *Loader) projectEdges(g *graph.Graph, assoc *association, subjects, objects []string, idByIRI map[string]string, providedBy string) {
	predicate := vocabulary.DefaultPredicate
	if preds := assoc.props[vocabulary.PropPredicate]; len(preds) > 0 {
		predicate = l.resolver.ToCURIE(preds[0])
	}

	for _, subjIRI := range subjects {
		for _, objIRI := range objects {
			edge := graph.NewEdge(idByIRI[subjIRI], idByIRI[objIRI], predicate)
			edge.AssociationID = assoc.id
			edge.ProvidedBy = providedBy
			for _, key := range assoc.order {
				if vocabulary.IsReservedEdgeProperty(key) {
					continue
				}
				if values := assoc.props[key]; len(values) > 1 {
					edge.Properties[key] = graph.List(values...)
				} else {
					edge.SetProperty(key, values[0])
				}
			}
			if err := g.AddEdge(edge); err != nil {
				// Endpoints were created above; this indicates a bug.
				l.logger.Error("failed to add edge",
					slog.String("association", assoc.iri),
					slog.String("error", err.Error()))
			}
		}
	}
}

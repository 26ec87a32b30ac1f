package rdfio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/knakk/rdf"
)

// Prefix is a namespace binding registered on a TripleSet for output.
type Prefix struct {
	Name      string
	Namespace string
}

// TripleSet is a finite, ordered collection of triples with lookup
// indexes. It is built once (by Decode or by a serializer) and then only
// read; the indexes make the category resolver's reverse lookups plain
// in-memory map hits.
type TripleSet struct {
	triples   []rdf.Triple
	bySubject map[string][]int
	byPredObj map[string][]int
	prefixes  []Prefix
}

// NewTripleSet creates an empty set.
func NewTripleSet() *TripleSet {
	return &TripleSet{
		bySubject: make(map[string][]int),
		byPredObj: make(map[string][]int),
	}
}

func predObjKey(pred, obj string) string {
	return pred + "\x00" + obj
}

// Add appends a triple and indexes it.
func (ts *TripleSet) Add(t rdf.Triple) {
	i := len(ts.triples)
	ts.triples = append(ts.triples, t)
	subj := t.Subj.String()
	ts.bySubject[subj] = append(ts.bySubject[subj], i)
	key := predObjKey(t.Pred.String(), t.Obj.String())
	ts.byPredObj[key] = append(ts.byPredObj[key], i)
}

// AddIRITriple builds and appends a triple whose three components are
// IRIs.
func (ts *TripleSet) AddIRITriple(subj, pred, obj string) error {
	s, err := rdf.NewIRI(subj)
	if err != nil {
		return fmt.Errorf("subject %q: %w", subj, err)
	}
	p, err := rdf.NewIRI(pred)
	if err != nil {
		return fmt.Errorf("predicate %q: %w", pred, err)
	}
	o, err := rdf.NewIRI(obj)
	if err != nil {
		return fmt.Errorf("object %q: %w", obj, err)
	}
	ts.Add(rdf.Triple{Subj: s, Pred: p, Obj: o})
	return nil
}

// AddLiteralTriple builds and appends a triple with a literal object.
func (ts *TripleSet) AddLiteralTriple(subj, pred, value string) error {
	s, err := rdf.NewIRI(subj)
	if err != nil {
		return fmt.Errorf("subject %q: %w", subj, err)
	}
	p, err := rdf.NewIRI(pred)
	if err != nil {
		return fmt.Errorf("predicate %q: %w", pred, err)
	}
	o, err := rdf.NewLiteral(value)
	if err != nil {
		return fmt.Errorf("literal %q: %w", value, err)
	}
	ts.Add(rdf.Triple{Subj: s, Pred: p, Obj: o})
	return nil
}

// Bind registers a namespace prefix for output serialization. Later
// binds with the same name override earlier ones at encode time.
func (ts *TripleSet) Bind(name, namespace string) {
	ts.prefixes = append(ts.prefixes, Prefix{Name: name, Namespace: namespace})
}

// Triples returns all triples in insertion order. Shared slice; callers
// must not append.
func (ts *TripleSet) Triples() []rdf.Triple {
	return ts.triples
}

// Len returns the triple count.
func (ts *TripleSet) Len() int {
	return len(ts.triples)
}

// About returns all triples whose subject serializes to subj.
func (ts *TripleSet) About(subj string) []rdf.Triple {
	idx := ts.bySubject[subj]
	out := make([]rdf.Triple, 0, len(idx))
	for _, i := range idx {
		out = append(out, ts.triples[i])
	}
	return out
}

// SubjectsWith returns the distinct subjects having (subject, pred, obj),
// in first-seen order.
func (ts *TripleSet) SubjectsWith(pred, obj string) []string {
	idx := ts.byPredObj[predObjKey(pred, obj)]
	seen := make(map[string]bool, len(idx))
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		s := ts.triples[i].Subj.String()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// ObjectsOf returns the object terms of all (subj, pred, *) triples.
func (ts *TripleSet) ObjectsOf(subj, pred string) []rdf.Object {
	var out []rdf.Object
	for _, i := range ts.bySubject[subj] {
		if ts.triples[i].Pred.String() == pred {
			out = append(out, ts.triples[i].Obj)
		}
	}
	return out
}

// Decode reads every triple from r in the given syntax. Any parse error
// is terminal for the whole transform; a partially decoded set is never
// returned.
func Decode(r io.Reader, f Format) (*TripleSet, error) {
	ts := NewTripleSet()
	dec := rdf.NewTripleDecoder(r, f.decoderFormat())
	for t, err := dec.Decode(); err != io.EOF; t, err = dec.Decode() {
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", f, err)
		}
		ts.Add(t)
	}
	return ts, nil
}

// Encode writes the set to w. Turtle output consists of the registered
// @prefix directives followed by the triples in N-Triples form, which is
// a valid Turtle subset; the library has no prefix-compressing writer.
// N-Triples output omits the directives. RDF/XML output is not supported.
func (ts *TripleSet) Encode(w io.Writer, f Format) error {
	bw := bufio.NewWriter(w)
	switch f {
	case FormatTurtle:
		for _, p := range ts.prefixes {
			if _, err := fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p.Name, p.Namespace); err != nil {
				return err
			}
		}
		if len(ts.prefixes) > 0 {
			if _, err := fmt.Fprintln(bw); err != nil {
				return err
			}
		}
	case FormatNTriples:
		// No directives in N-Triples.
	default:
		return &FormatError{Declared: f.String()}
	}
	for _, t := range ts.triples {
		if _, err := bw.WriteString(t.Serialize(rdf.NTriples)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

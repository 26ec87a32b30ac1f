// Package curie maps between compact prefixed identifiers (CURIEs) and
// full IRIs using an ordered list of prefix→namespace maps, consulting the
// fixed predicate dictionary before generic expansion so that reserved
// property names resolve to their well-known IRIs.
package curie

import (
	"sort"
	"strings"

	"github.com/c360studio/obangraph/vocabulary"
)

// Resolver contracts IRIs to CURIEs and expands CURIEs to IRIs. Its
// tables are fixed at construction; a Resolver is safe for concurrent
// readers.
type Resolver struct {
	// maps preserves configuration order; earlier maps win.
	maps []map[string]string

	// expansions ordered longest-namespace-first per map, so contraction
	// picks the most specific prefix.
	contractions [][]prefixEntry
}

type prefixEntry struct {
	prefix    string
	namespace string
}

// NewResolver builds a Resolver from an ordered list of prefix maps. The
// maps are copied; later mutation of the argument does not affect the
// Resolver.
func NewResolver(prefixMaps []map[string]string) *Resolver {
	r := &Resolver{
		maps:         make([]map[string]string, 0, len(prefixMaps)),
		contractions: make([][]prefixEntry, 0, len(prefixMaps)),
	}
	for _, pm := range prefixMaps {
		cp := make(map[string]string, len(pm))
		entries := make([]prefixEntry, 0, len(pm))
		for prefix, ns := range pm {
			cp[prefix] = ns
			entries = append(entries, prefixEntry{prefix: prefix, namespace: ns})
		}
		sort.Slice(entries, func(i, j int) bool {
			if len(entries[i].namespace) != len(entries[j].namespace) {
				return len(entries[i].namespace) > len(entries[j].namespace)
			}
			// Stable tie-break so repeated runs contract identically.
			return entries[i].prefix < entries[j].prefix
		})
		r.maps = append(r.maps, cp)
		r.contractions = append(r.contractions, entries)
	}
	return r
}

// DefaultResolver returns a Resolver over the built-in prefix maps.
func DefaultResolver() *Resolver {
	return NewResolver(vocabulary.DefaultPrefixMaps())
}

// ToCURIE contracts an IRI to a CURIE using the longest matching namespace
// across the configured maps, in configured order. An IRI matched by no
// namespace is returned unchanged; unknown vocabularies must not halt a
// transform.
func (r *Resolver) ToCURIE(iri string) string {
	for _, entries := range r.contractions {
		for _, e := range entries {
			if strings.HasPrefix(iri, e.namespace) && len(iri) > len(e.namespace) {
				return e.prefix + ":" + iri[len(e.namespace):]
			}
		}
	}
	return iri
}

// ToIRI expands a CURIE or reserved property name to a full IRI. Reserved
// names (subject, predicate, type, ...) resolve through the predicate
// dictionary before any prefix lookup. Input that is neither reserved nor
// a known CURIE is returned as an opaque IRI.
func (r *Resolver) ToIRI(s string) string {
	if iri, ok := vocabulary.PredicateForProperty(s); ok {
		return iri
	}
	prefix, local, ok := splitCURIE(s)
	if !ok {
		return s
	}
	for _, pm := range r.maps {
		if ns, ok := pm[prefix]; ok {
			return ns + local
		}
	}
	return s
}

// splitCURIE splits "PREFIX:local" into its parts. Full IRIs (containing
// "://" or starting with a known scheme-like prefix such as urn:) are not
// CURIEs for our purposes unless the prefix table says otherwise, but the
// distinction is made by table lookup, not here; this only rejects strings
// without a colon.
func splitCURIE(s string) (prefix, local string, ok bool) {
	i := strings.Index(s, ":")
	if i <= 0 || i == len(s)-1 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

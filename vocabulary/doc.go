// Package vocabulary defines the OBAN reification vocabulary, the fixed
// dictionary between graph property names and RDF predicate IRIs, and the
// default CURIE prefix and category-label tables.
//
// Everything in this package is static data. Components receive these
// tables through config and the curie.Resolver; nothing here is mutated
// after process start.
package vocabulary

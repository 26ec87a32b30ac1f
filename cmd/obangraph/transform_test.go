package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/obangraph/rdfio"
)

const sampleAssociation = `
<https://monarchinitiative.org/MONARCH_1> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://purl.org/oban/association> .
<https://monarchinitiative.org/MONARCH_1> <http://purl.org/oban/association_has_subject> <http://purl.obolibrary.org/obo/SO_0000704> .
<https://monarchinitiative.org/MONARCH_1> <http://purl.org/oban/association_has_predicate> <http://purl.obolibrary.org/obo/RO_0002200> .
<https://monarchinitiative.org/MONARCH_1> <http://purl.org/oban/association_has_object> <http://purl.obolibrary.org/obo/MONDO_0000001> .
`

func TestRunTransformEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "monarch.ttl")
	output := filepath.Join(dir, "out.ttl")
	require.NoError(t, os.WriteFile(input, []byte(sampleAssociation), 0o644))

	opts := &transformOptions{
		inputs:       []string{input},
		output:       output,
		outputFormat: "turtle",
		providedBy:   "monarch-test",
	}
	require.NoError(t, runTransform(opts, discardLogger()))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "@prefix OBAN: <http://purl.org/oban/> .")
	assert.Contains(t, out, "http://purl.org/oban/association_has_subject")
	assert.Contains(t, out, "http://purl.obolibrary.org/obo/SO_0000704")
	assert.Contains(t, out, "https://monarchinitiative.org/MONARCH_1")
}

func TestRunTransformUnknownInputFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "monarch.bin")
	require.NoError(t, os.WriteFile(input, []byte(sampleAssociation), 0o644))

	opts := &transformOptions{
		inputs:       []string{input},
		outputFormat: "turtle",
	}
	assert.Error(t, runTransform(opts, discardLogger()))
}

func TestRunTransformRejectsUnwritableOutputFormat(t *testing.T) {
	// RDF/XML parses but cannot be written; the run must fail before any
	// input is touched. The input path does not even exist.
	opts := &transformOptions{
		inputs:       []string{filepath.Join(t.TempDir(), "never-read.ttl")},
		outputFormat: "rdfxml",
	}
	err := runTransform(opts, discardLogger())
	var fe *rdfio.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestExpandInputsGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	for _, name := range []string{"a.ttl", "b.ttl", filepath.Join("nested", "c.ttl")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{}, 0o644))
	}

	files, err := expandInputs([]string{filepath.Join(dir, "**", "*.ttl")})
	require.NoError(t, err)
	assert.Len(t, files, 3)

	_, err = expandInputs([]string{filepath.Join(dir, "missing.ttl")})
	assert.Error(t, err)
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/c360studio/obangraph/config"
	"github.com/c360studio/obangraph/curie"
	"github.com/c360studio/obangraph/graph"
	"github.com/c360studio/obangraph/rdfio"
	"github.com/c360studio/obangraph/transform"
)

// transformOptions carries the flags shared by transform and watch.
type transformOptions struct {
	configPath   string
	inputs       []string
	output       string
	inputFormat  string
	outputFormat string
	providedBy   string
	owl          bool
}

func (o *transformOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringSliceVarP(&o.inputs, "input", "i", nil, "Input file or glob (repeatable, ** supported)")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&o.inputFormat, "input-format", "", "Force the input syntax (turtle, rdfxml, ntriples)")
	cmd.Flags().StringVar(&o.outputFormat, "output-format", "turtle", "Output syntax (turtle, ntriples)")
	cmd.Flags().StringVar(&o.providedBy, "provided-by", "", "Source tag stored on every edge (default: input filename)")
	cmd.Flags().BoolVar(&o.owl, "owl", false, "Also load rdfs:subClassOf axioms as class-class edges")
	_ = cmd.MarkFlagRequired("input")
}

func transformCmd() *cobra.Command {
	opts := &transformOptions{}
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Load reified RDF into a property graph and re-serialize it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(opts, slog.Default())
		},
	}
	opts.register(cmd)
	return cmd
}

func runTransform(opts *transformOptions, logger *slog.Logger) error {
	cfg, err := config.NewLoader(logger).Load(opts.configPath)
	if err != nil {
		return err
	}

	// Reject an unwritable output syntax before any input is parsed.
	outFormat, ok := rdfio.ParseFormat(opts.outputFormat)
	if !ok || !outFormat.Encodable() {
		return &rdfio.FormatError{Declared: opts.outputFormat}
	}

	files, err := expandInputs(opts.inputs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no input files match %v", opts.inputs)
	}

	resolver := curie.NewResolver(cfg.Prefixes)
	loader := transform.NewLoader(resolver, cfg.CategoryLabels, logger)

	g := graph.New()
	for _, file := range files {
		if err := loadFile(loader, opts, file, g, logger); err != nil {
			return err
		}
	}

	ts, err := transform.NewSerializer(resolver, logger).Serialize(g)
	if err != nil {
		return err
	}
	return writeOutput(ts, opts.output, outFormat)
}

func loadFile(loader *transform.Loader, opts *transformOptions, file string, g *graph.Graph, logger *slog.Logger) error {
	format, err := rdfio.DetectFormat(file, opts.inputFormat)
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	ts, err := rdfio.Decode(f, format)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	logger.Info("parsed input",
		slog.String("file", file),
		slog.String("format", format.String()),
		slog.Int("triples", ts.Len()))

	providedBy := opts.providedBy
	if providedBy == "" {
		providedBy = filepath.Base(file)
	}

	if err := loader.Load(ts, providedBy, g); err != nil {
		return err
	}
	if opts.owl {
		return loader.LoadOWL(ts, providedBy, g)
	}
	return nil
}

// expandInputs resolves glob patterns to a sorted, de-duplicated file
// list. A pattern without glob metacharacters must name an existing file.
func expandInputs(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("input %q: %w", pattern, err)
			}
			matches = []string{pattern}
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func writeOutput(ts *rdfio.TripleSet, path string, format rdfio.Format) error {
	if path == "" {
		return ts.Encode(os.Stdout, format)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ts.Encode(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

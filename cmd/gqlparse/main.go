// Command gqlparse parses GraphQL documents, values or type references
// from files or standard input and reports syntax errors with a caret
// under the offending character.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/Protocol-Lattice/gqlparser/ast"
	"github.com/Protocol-Lattice/gqlparser/ast/kinds"
	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/lexer"
	"github.com/Protocol-Lattice/gqlparser/loader"
	"github.com/Protocol-Lattice/gqlparser/parser"
)

const stdinName = "<stdin>"

type opts struct {
	Mode              string
	NoLocation        bool
	DumpTokens        bool
	DumpTree          bool
	Stats             bool
	MaxDepth          int
	LegacyEmptyFields bool
	LegacyImplements  bool
	FragmentVariables bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	op := &opts{}
	flags := pflag.NewFlagSet("gqlparse", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&op.Mode, "mode", "document", "What the input holds: document, value or type.")
	flags.BoolVar(&op.NoLocation, "no-location", false, "Omit source locations from the tree.")
	flags.BoolVar(&op.DumpTokens, "dump-tokens", false, "Output the token stream before parsing.")
	flags.BoolVar(&op.DumpTree, "dump-tree", false, "Output the parse tree as JSON after parsing.")
	flags.BoolVar(&op.Stats, "stats", false, "Output the number of nodes of each kind.")
	flags.IntVar(&op.MaxDepth, "max-depth", 0, "Maximum nesting depth, 0 for the default, negative for no limit.")
	flags.BoolVar(&op.LegacyEmptyFields, "legacy-empty-fields", false, "Accept empty field sets such as type T {}.")
	flags.BoolVar(&op.LegacyImplements, "legacy-implements", false, "Accept interfaces separated by spaces instead of &.")
	flags.BoolVar(&op.FragmentVariables, "fragment-variables", false, "Accept variable definitions on fragments.")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	bundle, err := readInput(flags.Args(), stdin)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	src := bundle.Source

	if op.DumpTokens {
		tokens, err := lexer.Tokenize(src)
		for _, tok := range tokens {
			fmt.Fprintln(stdout, tok.String())
		}
		if err != nil {
			return report(stderr, bundle, err)
		}
	}

	parseOpts := parser.Options{
		NoLocation:                         op.NoLocation,
		MaxDepth:                           op.MaxDepth,
		AllowLegacySDLEmptyFields:          op.LegacyEmptyFields,
		AllowLegacySDLImplementsInterfaces: op.LegacyImplements,
		ExperimentalFragmentVariables:      op.FragmentVariables,
	}
	var node ast.Node
	switch op.Mode {
	case "document":
		node, err = parser.Parse(src, parseOpts)
	case "value":
		node, err = parser.ParseValue(src, parseOpts)
	case "type":
		node, err = parser.ParseType(src, parseOpts)
	default:
		fmt.Fprintf(stderr, "unknown mode %q\n", op.Mode)
		return 2
	}
	if err != nil {
		return report(stderr, bundle, err)
	}

	if op.DumpTree {
		out, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
		fmt.Fprintln(stdout, string(out))
	}
	if op.Stats {
		printStats(stdout, node)
	}
	if !op.DumpTokens && !op.DumpTree && !op.Stats {
		fmt.Fprintf(stdout, "%s: ok\n", src.Name)
	}
	return 0
}

// readInput loads the named files, or standard input when there are none.
func readInput(names []string, stdin io.Reader) (*loader.Bundle, error) {
	if len(names) > 0 {
		return loader.OS().Files(names...)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, xerrors.Errorf("read %s: %w", stdinName, err)
	}
	return loader.Concat(loader.Part{Name: stdinName, Body: string(data)}), nil
}

// report prints err and returns the exit status for it. Syntax errors in
// a multi-file bundle also name the file and its local position.
func report(stderr io.Writer, bundle *loader.Bundle, err error) int {
	var serr *gqlerrors.SyntaxError
	if !errors.As(err, &serr) {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	fmt.Fprint(stderr, serr.Snippet())
	if len(bundle.Segments) > 1 {
		if seg, loc, ok := bundle.Locate(serr.Position); ok {
			fmt.Fprintf(stderr, "\nin %s:%d:%d\n", seg.Name, loc.Line, loc.Column)
		}
	}
	return 1
}

func printStats(w io.Writer, node ast.Node) {
	counts := map[kinds.Kind]int{}
	ast.Walk(node, func(n ast.Node) bool {
		counts[n.Kind()]++
		return true
	})
	seen := make([]kinds.Kind, 0, len(counts))
	for kind := range counts {
		seen = append(seen, kind)
	}
	sort.Slice(seen, func(i, j int) bool { return seen[i] < seen[j] })
	for _, kind := range seen {
		fmt.Fprintf(w, "%-26s %d\n", kind, counts[kind])
	}
}

package gqlerrors

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparser/source"
)

func TestSyntaxErrorMessage(t *testing.T) {
	t.Parallel()
	src := source.New("query.graphql", "{\n  a(\n}")
	err := NewSyntaxError(src, 7, "Expected Name, found }.")
	require.Equal(t, []source.Location{{Line: 3, Column: 1}}, err.Locations)
	require.Equal(t, "Syntax Error: Expected Name, found }. (query.graphql:3:1)", err.Error())
}

func TestSyntaxErrorSnippet(t *testing.T) {
	t.Parallel()
	src := source.New("", "{\n  a(\n}")
	err := NewSyntaxError(src, 5, "Unexpected (.")
	want := "Syntax Error: Unexpected (. (GraphQL request:2:4)\n\n" +
		"   1 | {\n" +
		"   2 |   a(\n" +
		"     |    ^\n" +
		"   3 | }\n"
	require.Equal(t, want, err.Snippet())
}

func TestSyntaxErrorOffset(t *testing.T) {
	t.Parallel()
	src, err := source.NewWithOffset("embedded", "{ a(", source.LocationOffset{Line: 4, Column: 9})
	require.NoError(t, err)
	serr := NewSyntaxError(src, 4, "Expected Name, found <EOF>.")
	require.Equal(t, source.Location{Line: 4, Column: 13}, serr.Location())
	require.Contains(t, serr.Snippet(), "   4 | { a(\n")
}

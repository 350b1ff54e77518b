package loader

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/parser"
	"github.com/Protocol-Lattice/gqlparser/source"
)

var schemaFS = fstest.MapFS{
	"query.graphql":    {Data: []byte("type Query {\n  user(id: ID!): User\n}")},
	"user.graphql":     {Data: []byte("type User {\n  id: ID!\n  name: String\n}")},
	"broken.graphql":   {Data: []byte("type Broken {\n  field: \n}")},
	"nested/a.graphql": {Data: []byte("scalar A")},
}

func TestLoader_File(t *testing.T) {
	t.Parallel()
	src, err := New(schemaFS).File("nested/a.graphql")
	require.NoError(t, err)
	require.Equal(t, "nested/a.graphql", src.Name)
	require.Equal(t, "scalar A", src.Body)
	require.Equal(t, source.LocationOffset{Line: 1, Column: 1}, src.LocationOffset)
}

func TestLoader_FileMissing(t *testing.T) {
	t.Parallel()
	_, err := New(schemaFS).File("missing.graphql")
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
	require.Contains(t, err.Error(), "missing.graphql")
}

func TestLoader_Files(t *testing.T) {
	t.Parallel()
	bundle, err := New(schemaFS).Files("query.graphql", "user.graphql")
	require.NoError(t, err)
	require.Equal(t, "query.graphql,user.graphql", bundle.Source.Name)
	require.Equal(t, "type Query {\n  user(id: ID!): User\n}\ntype User {\n  id: ID!\n  name: String\n}", bundle.Source.Body)
	require.Equal(t, []Segment{
		{Name: "query.graphql", Start: 0, End: 36},
		{Name: "user.graphql", Start: 37, End: 75},
	}, bundle.Segments)

	doc, err := parser.Parse(bundle.Source, parser.Options{})
	require.NoError(t, err)
	require.Len(t, doc.Definitions, 2)
}

func TestLoader_FilesErrors(t *testing.T) {
	t.Parallel()
	_, err := New(schemaFS).Files()
	require.Error(t, err)

	_, err = New(schemaFS).Files("query.graphql", "nope.graphql")
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestBundle_Locate(t *testing.T) {
	t.Parallel()
	bundle := Concat(
		Part{Name: "a", Body: "ab\ncd"},
		Part{Name: "b", Body: "ef"},
	)
	require.Equal(t, "ab\ncd\nef", bundle.Source.Body)

	tests := []struct {
		offset int
		name   string
		loc    source.Location
	}{
		{0, "a", source.Location{Line: 1, Column: 1}},
		{4, "a", source.Location{Line: 2, Column: 2}},
		{5, "a", source.Location{Line: 2, Column: 3}},
		{6, "b", source.Location{Line: 1, Column: 1}},
		{8, "b", source.Location{Line: 1, Column: 3}},
	}
	for _, tt := range tests {
		seg, loc, ok := bundle.Locate(tt.offset)
		require.True(t, ok, tt.offset)
		require.Equal(t, tt.name, seg.Name, tt.offset)
		require.Equal(t, tt.loc, loc, tt.offset)
	}

	_, _, ok := bundle.Locate(9)
	require.False(t, ok)
}

func TestBundle_LocateSyntaxError(t *testing.T) {
	t.Parallel()
	bundle, err := New(schemaFS).Files("query.graphql", "broken.graphql")
	require.NoError(t, err)

	_, err = parser.Parse(bundle.Source, parser.Options{})
	var serr *gqlerrors.SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, source.Location{Line: 6, Column: 1}, serr.Location())

	seg, loc, ok := bundle.Locate(serr.Position)
	require.True(t, ok)
	require.Equal(t, "broken.graphql", seg.Name)
	require.Equal(t, source.Location{Line: 3, Column: 1}, loc)
}

func TestConcat_Empty(t *testing.T) {
	t.Parallel()
	bundle := Concat()
	require.Equal(t, "", bundle.Source.Body)
	require.Equal(t, source.DefaultName, bundle.Source.Name)
	require.Empty(t, bundle.Segments)
}

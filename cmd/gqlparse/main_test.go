package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runWith(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runWith(t, "{ hello }")
	require.Equal(t, 0, code, stderr)
	require.Equal(t, "<stdin>: ok\n", stdout)
}

func TestRun_DumpTree(t *testing.T) {
	t.Parallel()
	code, stdout, _ := runWith(t, "[Int!]", "--mode", "type", "--dump-tree", "--no-location")
	require.Equal(t, 0, code)

	var tree map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &tree))
	require.Equal(t, "ListType", tree["kind"])
	require.NotContains(t, tree, "loc")
}

func TestRun_DumpTokens(t *testing.T) {
	t.Parallel()
	code, stdout, _ := runWith(t, "{ a }", "--dump-tokens")
	require.Equal(t, 0, code)
	require.Equal(t, "0:0 <SOF>\n1:1 {\n1:3 Name \"a\"\n1:5 }\n1:6 <EOF>\n", stdout)
}

func TestRun_Stats(t *testing.T) {
	t.Parallel()
	code, stdout, _ := runWith(t, "{ a b }", "--stats")
	require.Equal(t, 0, code)
	require.Equal(t, strings.Join([]string{
		"Document                   1",
		"Field                      2",
		"Name                       2",
		"OperationDefinition        1",
		"SelectionSet               1",
		"",
	}, "\n"), stdout)
}

func TestRun_SyntaxError(t *testing.T) {
	t.Parallel()
	code, stdout, stderr := runWith(t, "{\n  a(\n}")
	require.Equal(t, 1, code)
	require.Empty(t, stdout)
	require.Equal(t, "Syntax Error: Expected Name, found } (<stdin>:3:1)\n\n"+
		"   2 |   a(\n"+
		"   3 | }\n"+
		"     | ^\n", stderr)
}

func TestRun_Files(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	query := filepath.Join(dir, "query.graphql")
	user := filepath.Join(dir, "user.graphql")
	require.NoError(t, os.WriteFile(query, []byte("type Query { user: User }"), 0o644))
	require.NoError(t, os.WriteFile(user, []byte("type User {\n  id:\n}"), 0o644))

	code, stdout, stderr := runWith(t, "", query)
	require.Equal(t, 0, code, stderr)
	require.Equal(t, query+": ok\n", stdout)

	code, _, stderr = runWith(t, "", query, user)
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "in "+user+":3:1\n")

	code, _, stderr = runWith(t, "", filepath.Join(dir, "missing.graphql"))
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "missing.graphql")
}

func TestRun_Options(t *testing.T) {
	t.Parallel()
	code, _, _ := runWith(t, "type T {}")
	require.Equal(t, 1, code)

	code, _, stderr := runWith(t, "type T {}", "--legacy-empty-fields")
	require.Equal(t, 0, code, stderr)

	code, _, stderr = runWith(t, "type T implements A B { f: Int }", "--legacy-implements")
	require.Equal(t, 0, code, stderr)

	code, _, stderr = runWith(t, "fragment F($a: Int) on T { f }", "--fragment-variables")
	require.Equal(t, 0, code, stderr)

	code, _, stderr = runWith(t, "[[1]]", "--mode", "value", "--max-depth", "1")
	require.Equal(t, 1, code)
	require.Contains(t, stderr, "Exceeded maximum nesting depth of 1")
}

func TestRun_BadFlags(t *testing.T) {
	t.Parallel()
	code, _, _ := runWith(t, "", "--mode", "selection")
	require.Equal(t, 2, code)

	code, _, _ = runWith(t, "", "--no-such-flag")
	require.Equal(t, 2, code)
}

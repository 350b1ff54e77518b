package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/source"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// lexOne returns the first token of input.
func lexOne(t *testing.T, input string) (token.Token, error) {
	t.Helper()
	return New(source.New("", input)).Advance()
}

// requireSyntaxError asserts err is a SyntaxError with the given description
// and location.
func requireSyntaxError(t *testing.T, err error, desc string, line, col int) {
	t.Helper()
	var serr *gqlerrors.SyntaxError
	require.True(t, errors.As(err, &serr), "expected a syntax error, got %v", err)
	require.Equal(t, desc, serr.Description)
	require.Equal(t, source.Location{Line: line, Column: col}, serr.Location())
}

func TestLexer_SkipsWhitespaceAndComments(t *testing.T) {
	t.Parallel()
	tok, err := lexOne(t, "\uFEFF\n\r\n\r  \t,,\n    foo\n\n")
	require.NoError(t, err)
	require.Equal(t, token.NAME, tok.Type)
	require.Equal(t, "foo", tok.Value)
	require.Equal(t, 5, tok.Line)
	require.Equal(t, 5, tok.Column)

	tok, err = lexOne(t, "\n    #comment\n    foo#comment\n")
	require.NoError(t, err)
	require.Equal(t, "foo", tok.Value)
	require.Equal(t, 3, tok.Line)
}

func TestLexer_Punctuation(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize(source.New("", "! $ & ( ) ... : = @ [ ] { | }"))
	require.NoError(t, err)
	var got []token.TokenType
	for _, tok := range toks {
		got = append(got, tok.Type)
	}
	require.Equal(t, []token.TokenType{
		token.SOF, token.BANG, token.DOLLAR, token.AMP, token.LPAREN, token.RPAREN,
		token.SPREAD, token.COLON, token.ASSIGN, token.AT, token.LBRACKET,
		token.RBRACKET, token.LBRACE, token.PIPE, token.RBRACE, token.EOF,
	}, got)
	require.Equal(t, 3, toks[6].End-toks[6].Start)
}

func TestLexer_Numbers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		typ   token.TokenType
	}{
		{"0", token.INT},
		{"-0", token.INT},
		{"4", token.INT},
		{"-4", token.INT},
		{"9007199254740993", token.INT},
		{"1.0", token.FLOAT},
		{"-1.123", token.FLOAT},
		{"0.123", token.FLOAT},
		{"1e10", token.FLOAT},
		{"123E4", token.FLOAT},
		{"123e-4", token.FLOAT},
		{"-1.123e+4", token.FLOAT},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tok, err := lexOne(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.typ, tok.Type)
			require.Equal(t, tt.input, tok.Value)
			require.Equal(t, len(tt.input), tok.End)
		})
	}
}

func TestLexer_NumberErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		desc  string
		col   int
	}{
		{"00", `Invalid number, unexpected digit after 0: "0".`, 2},
		{"+1", `Cannot parse the unexpected character "+".`, 1},
		{"1.", "Invalid number, expected digit but got: <EOF>.", 3},
		{".123", `Cannot parse the unexpected character ".".`, 1},
		{"1.A", `Invalid number, expected digit but got: "A".`, 3},
		{"-A", `Invalid number, expected digit but got: "A".`, 2},
		{"1.0e", "Invalid number, expected digit but got: <EOF>.", 5},
		{"1.0eA", `Invalid number, expected digit but got: "A".`, 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := lexOne(t, tt.input)
			requireSyntaxError(t, err, tt.desc, 1, tt.col)
		})
	}
}

func TestLexer_Strings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{`"simple"`, "simple"},
		{`" white space "`, " white space "},
		{`"quote \""`, `quote "`},
		{`"escaped \n\r\b\t\f"`, "escaped \n\r\b\t\f"},
		{`"slashes \\ \/"`, `slashes \ /`},
		{`"a\nb"`, "a\nb"},
		{`"\u0041"`, "A"},
		{`"unicode \u1234\u5678\u90AB\uCDEF"`, "unicode \u1234\u5678\u90AB\uCDEF"},
		{`"\uD83D\uDE00"`, "\U0001F600"},
		{`"\uD83D"`, "\uFFFD"},
		{`"h\u00e9llo"`, "h\u00e9llo"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tok, err := lexOne(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, token.STRING, tok.Type)
			require.Equal(t, tt.want, tok.Value)
			require.Equal(t, len(tt.input), tok.End)
		})
	}
}

func TestLexer_StringErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		desc  string
		col   int
	}{
		{`"`, "Unterminated string.", 2},
		{`"no end quote`, "Unterminated string.", 14},
		{"\"multi\nline\"", "Unterminated string.", 7},
		{"\"contains \x07 bell\"", `Invalid character within String: "\u0007".`, 11},
		{`"bad \z esc"`, `Invalid character escape sequence: \z.`, 7},
		{`"bad \u1 esc"`, `Invalid character escape sequence: \u1 es.`, 7},
		{`"bad \uXXXF esc"`, `Invalid character escape sequence: \uXXXF.`, 7},
		{`'single'`, `Unexpected single quote character ('), did you mean to use a double quote (")?`, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			_, err := lexOne(t, tt.input)
			requireSyntaxError(t, err, tt.desc, 1, tt.col)
		})
	}
}

func TestLexer_BlockStrings(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{`"""simple"""`, "simple"},
		{`""" white space """`, " white space "},
		{`"""contains " quote"""`, `contains " quote`},
		{`"""contains \""" triplequote"""`, `contains """ triplequote`},
		{"\"\"\"multi\nline\"\"\"", "multi\nline"},
		{"\"\"\"multi\rline\r\nnormalized\"\"\"", "multi\nline\nnormalized"},
		{`"""unescaped \n\r\b\t\f\u1234"""`, `unescaped \n\r\b\t\f\u1234`},
		{"\"\"\"\n\n        spans\n          multiple\n            lines\n\n        \"\"\"", "spans\n  multiple\n    lines"},
		{`"""   """`, ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			tok, err := lexOne(t, tt.input)
			require.NoError(t, err)
			require.Equal(t, token.BLOCKSTRING, tok.Type)
			require.Equal(t, tt.want, tok.Value)
			require.Equal(t, len(tt.input), tok.End)
		})
	}
}

func TestLexer_BlockStringErrors(t *testing.T) {
	t.Parallel()
	_, err := lexOne(t, `"""no end`)
	requireSyntaxError(t, err, "Unterminated string.", 1, 10)

	_, err = lexOne(t, "\"\"\"contains \x07 bell\"\"\"")
	requireSyntaxError(t, err, `Invalid character within String: "\u0007".`, 1, 13)
}

func TestLexer_BlockStringAdvancesLines(t *testing.T) {
	t.Parallel()
	l := New(source.New("", "\"\"\"a\nb\r\nc\"\"\" next"))
	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, 1, tok.Line)
	tok, err = l.Advance()
	require.NoError(t, err)
	require.Equal(t, "next", tok.Value)
	require.Equal(t, 3, tok.Line)
	require.Equal(t, 6, tok.Column)
}

func TestLexer_UnexpectedCharacters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		desc  string
	}{
		{"..", `Cannot parse the unexpected character ".".`},
		{"?", `Cannot parse the unexpected character "?".`},
		{"\u203B", `Cannot parse the unexpected character "\u203B".`},
		{"\u200B", `Cannot parse the unexpected character "\u200B".`},
		{"\x07", `Cannot contain the invalid character "\u0007".`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()
			_, err := lexOne(t, tt.input)
			requireSyntaxError(t, err, tt.desc, 1, 1)
		})
	}
}

func TestLexer_ErrorCarriesSourceAndPosition(t *testing.T) {
	t.Parallel()
	src := source.New("foo.graphql", "\n\n    ?\n\n")
	_, err := New(src).Advance()
	var serr *gqlerrors.SyntaxError
	require.ErrorAs(t, err, &serr)
	require.Same(t, src, serr.Source)
	require.Equal(t, 6, serr.Position)
	require.Equal(t, source.Location{Line: 3, Column: 5}, serr.Location())
}

func TestLexer_LookaheadIsIdempotent(t *testing.T) {
	t.Parallel()
	l := New(source.New("", "foo # comment\n bar"))
	first, err := l.Lookahead()
	require.NoError(t, err)
	buffered := len(l.Tokens())
	second, err := l.Lookahead()
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, l.Tokens(), buffered)
	require.Equal(t, token.SOF, l.Token().Type)

	tok, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, first, tok)

	tok, err = l.Advance()
	require.NoError(t, err)
	require.Equal(t, "bar", tok.Value)
	require.Equal(t, "foo", l.LastToken().Value)
	prev := l.Tokens()[tok.Prev]
	require.Equal(t, token.COMMENT, prev.Type)
	require.Equal(t, " comment", prev.Value)
}

func TestLexer_EOFIsSticky(t *testing.T) {
	t.Parallel()
	l := New(source.New("", "a"))
	_, err := l.Advance()
	require.NoError(t, err)
	eof, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, token.EOF, eof.Type)
	again, err := l.Advance()
	require.NoError(t, err)
	require.Equal(t, eof, again)
	require.Equal(t, 1, eof.Start)
	require.Equal(t, 2, eof.Column)
}

func TestTokenize(t *testing.T) {
	t.Parallel()
	toks, err := Tokenize(source.New("", "{ a # c\n}"))
	require.NoError(t, err)
	var got []string
	for _, tok := range toks {
		got = append(got, token.Desc(tok))
	}
	require.Equal(t, []string{"<SOF>", "{", `Name "a"`, `Comment " c"`, "}", "<EOF>"}, got)
	for i := 1; i < len(toks); i++ {
		require.Equal(t, i-1, toks[i].Prev)
		require.Equal(t, i, toks[i-1].Next)
	}
}

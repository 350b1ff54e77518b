package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/source"
	"github.com/Protocol-Lattice/gqlparser/token"
)

// bom is the UTF-8 encoding of U+FEFF.
const bom = "\uFEFF"

// Lexer tokenizes GraphQL source code on demand.
//
// Tokens live in an append-only buffer and refer to each other by index.
// The lexer only ever reads past the last buffered token, so line tracking
// stays correct no matter how often Lookahead is called.
type Lexer struct {
	source    *source.Source // The source being tokenized
	body      string         // source.Body
	line      int            // Line of the read cursor
	lineStart int            // Byte offset where that line begins
	tokens    []token.Token  // Every token read so far, comments included
	lastToken int            // Index of the previously focused token
	token     int            // Index of the currently focused token
}

// New creates a new Lexer for the given source, focused on a <SOF> token.
func New(src *source.Source) *Lexer {
	sof := token.Token{
		Type:   token.SOF,
		Line:   0,
		Column: 0,
		Prev:   token.None,
		Next:   token.None,
	}
	return &Lexer{
		source: src,
		body:   src.Body,
		line:   1,
		tokens: []token.Token{sof},
	}
}

// Source returns the source being tokenized.
func (l *Lexer) Source() *source.Source {
	return l.source
}

// Token returns the currently focused token.
func (l *Lexer) Token() token.Token {
	return l.tokens[l.token]
}

// LastToken returns the token focused before the last Advance.
func (l *Lexer) LastToken() token.Token {
	return l.tokens[l.lastToken]
}

// Tokens returns every token read so far, including comments.
func (l *Lexer) Tokens() []token.Token {
	return l.tokens
}

// Advance moves focus to the next non-comment token and returns it.
func (l *Lexer) Advance() (token.Token, error) {
	next, err := l.lookahead()
	if err != nil {
		return token.Token{}, err
	}
	l.lastToken = l.token
	l.token = next
	return l.tokens[next], nil
}

// Lookahead returns the next non-comment token without moving focus.
// Repeated calls return the same buffered token.
func (l *Lexer) Lookahead() (token.Token, error) {
	next, err := l.lookahead()
	if err != nil {
		return token.Token{}, err
	}
	return l.tokens[next], nil
}

// lookahead follows the Next chain from the focused token, reading new
// tokens only at the end of the buffer.
func (l *Lexer) lookahead() (int, error) {
	idx := l.token
	if l.tokens[idx].Type == token.EOF {
		return idx, nil
	}
	for {
		next := l.tokens[idx].Next
		if next == token.None {
			tok, err := l.readToken(l.tokens[idx].End)
			if err != nil {
				return 0, err
			}
			tok.Prev = idx
			tok.Next = token.None
			l.tokens = append(l.tokens, tok)
			next = len(l.tokens) - 1
			l.tokens[idx].Next = next
		}
		idx = next
		if l.tokens[idx].Type != token.COMMENT {
			return idx, nil
		}
	}
}

// Tokenize reads the whole source and returns every token, comments
// included, from <SOF> to <EOF>.
func Tokenize(src *source.Source) ([]token.Token, error) {
	l := New(src)
	for l.Token().Type != token.EOF {
		if _, err := l.Advance(); err != nil {
			return nil, err
		}
	}
	return l.Tokens(), nil
}

// readToken reads one token starting at byte offset from.
func (l *Lexer) readToken(from int) (token.Token, error) {
	pos := l.skipWhitespace(from)
	line := l.line
	col := pos - l.lineStart + 1

	if pos >= len(l.body) {
		return token.Token{Type: token.EOF, Start: len(l.body), End: len(l.body), Line: line, Column: col}, nil
	}

	ch := l.body[pos]
	if ch < 0x20 && ch != '\t' && ch != '\n' && ch != '\r' {
		return token.Token{}, l.errorf(pos, "Cannot contain the invalid character %s.", printChar(rune(ch)))
	}

	punct := func(t token.TokenType, width int) (token.Token, error) {
		return token.Token{Type: t, Start: pos, End: pos + width, Line: line, Column: col}, nil
	}

	switch ch {
	case '!':
		return punct(token.BANG, 1)
	case '#':
		return l.readComment(pos, line, col), nil
	case '$':
		return punct(token.DOLLAR, 1)
	case '&':
		return punct(token.AMP, 1)
	case '(':
		return punct(token.LPAREN, 1)
	case ')':
		return punct(token.RPAREN, 1)
	case '.':
		if strings.HasPrefix(l.body[pos:], "...") {
			return punct(token.SPREAD, 3)
		}
	case ':':
		return punct(token.COLON, 1)
	case '=':
		return punct(token.ASSIGN, 1)
	case '@':
		return punct(token.AT, 1)
	case '[':
		return punct(token.LBRACKET, 1)
	case ']':
		return punct(token.RBRACKET, 1)
	case '{':
		return punct(token.LBRACE, 1)
	case '|':
		return punct(token.PIPE, 1)
	case '}':
		return punct(token.RBRACE, 1)
	case '"':
		if strings.HasPrefix(l.body[pos:], `"""`) {
			return l.readBlockString(pos, line, col)
		}
		return l.readString(pos, line, col)
	}

	switch {
	case isNameStart(ch):
		return l.readName(pos, line, col), nil
	case ch == '-' || isDigit(ch):
		return l.readNumber(pos, line, col)
	}

	r, _ := utf8.DecodeRuneInString(l.body[pos:])
	return token.Token{}, l.errorf(pos, "%s", unexpectedCharacterMessage(r))
}

// skipWhitespace returns the offset of the first significant character at
// or after pos, counting lines on the way.
func (l *Lexer) skipWhitespace(pos int) int {
	for pos < len(l.body) {
		switch ch := l.body[pos]; {
		case ch == '\t' || ch == ' ' || ch == ',':
			pos++
		case ch == '\n':
			pos++
			l.line++
			l.lineStart = pos
		case ch == '\r':
			if pos+1 < len(l.body) && l.body[pos+1] == '\n' {
				pos += 2
			} else {
				pos++
			}
			l.line++
			l.lineStart = pos
		case strings.HasPrefix(l.body[pos:], bom):
			pos += len(bom)
		default:
			return pos
		}
	}
	return pos
}

// readComment reads a # comment through the end of the line.
func (l *Lexer) readComment(start, line, col int) token.Token {
	pos := start + 1
	for pos < len(l.body) {
		ch := l.body[pos]
		if ch <= 0x1F && ch != '\t' {
			break
		}
		pos++
	}
	return token.Token{
		Type:   token.COMMENT,
		Start:  start,
		End:    pos,
		Line:   line,
		Column: col,
		Value:  l.body[start+1 : pos],
	}
}

// readName reads /[_A-Za-z][_0-9A-Za-z]*/.
func (l *Lexer) readName(start, line, col int) token.Token {
	pos := start + 1
	for pos < len(l.body) && isNameContinue(l.body[pos]) {
		pos++
	}
	return token.Token{
		Type:   token.NAME,
		Start:  start,
		End:    pos,
		Line:   line,
		Column: col,
		Value:  l.body[start:pos],
	}
}

// readNumber reads an Int or Float token:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func (l *Lexer) readNumber(start, line, col int) (token.Token, error) {
	pos := start
	isFloat := false

	if l.body[pos] == '-' {
		pos++
	}
	if pos < len(l.body) && l.body[pos] == '0' {
		pos++
		if pos < len(l.body) && isDigit(l.body[pos]) {
			return token.Token{}, l.errorf(pos, "Invalid number, unexpected digit after 0: %s.", l.printCharAt(pos))
		}
	} else {
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return token.Token{}, err
		}
	}

	if pos < len(l.body) && l.body[pos] == '.' {
		isFloat = true
		var err error
		if pos, err = l.readDigits(pos + 1); err != nil {
			return token.Token{}, err
		}
	}

	if pos < len(l.body) && (l.body[pos] == 'e' || l.body[pos] == 'E') {
		isFloat = true
		pos++
		if pos < len(l.body) && (l.body[pos] == '+' || l.body[pos] == '-') {
			pos++
		}
		var err error
		if pos, err = l.readDigits(pos); err != nil {
			return token.Token{}, err
		}
	}

	typ := token.INT
	if isFloat {
		typ = token.FLOAT
	}
	return token.Token{
		Type:   typ,
		Start:  start,
		End:    pos,
		Line:   line,
		Column: col,
		Value:  l.body[start:pos],
	}, nil
}

// readDigits consumes one or more digits starting at pos.
func (l *Lexer) readDigits(pos int) (int, error) {
	if pos >= len(l.body) || !isDigit(l.body[pos]) {
		return 0, l.errorf(pos, "Invalid number, expected digit but got: %s.", l.printCharAt(pos))
	}
	for pos < len(l.body) && isDigit(l.body[pos]) {
		pos++
	}
	return pos, nil
}

// errorf builds a syntax error at a byte offset.
func (l *Lexer) errorf(pos int, format string, args ...any) error {
	return gqlerrors.NewSyntaxError(l.source, pos, fmt.Sprintf(format, args...))
}

// printCharAt prints the character at pos, or <EOF> past the end.
func (l *Lexer) printCharAt(pos int) string {
	if pos >= len(l.body) {
		return string(token.EOF)
	}
	r, _ := utf8.DecodeRuneInString(l.body[pos:])
	return printChar(r)
}

// unexpectedCharacterMessage explains why a character cannot start a token.
func unexpectedCharacterMessage(r rune) string {
	if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
		return fmt.Sprintf("Cannot contain the invalid character %s.", printChar(r))
	}
	if r == '\'' {
		return `Unexpected single quote character ('), did you mean to use a double quote (")?`
	}
	return fmt.Sprintf("Cannot parse the unexpected character %s.", printChar(r))
}

// printChar quotes a character the way it appears in error messages:
// JSON style for ASCII, a \uXXXX escape for everything else.
func printChar(r rune) string {
	switch {
	case r == '"':
		return `"\""`
	case r == '\\':
		return `"\\"`
	case r == '\b':
		return `"\b"`
	case r == '\f':
		return `"\f"`
	case r == '\n':
		return `"\n"`
	case r == '\r':
		return `"\r"`
	case r == '\t':
		return `"\t"`
	case r < 0x20:
		return fmt.Sprintf(`"\u%04x"`, r)
	case r < 0x7F:
		return `"` + string(r) + `"`
	}
	return fmt.Sprintf(`"\u%04X"`, r)
}

// isNameStart checks if a byte can start a name.
func isNameStart(ch byte) bool {
	return ch == '_' || ('A' <= ch && ch <= 'Z') || ('a' <= ch && ch <= 'z')
}

// isNameContinue checks if a byte can continue a name.
func isNameContinue(ch byte) bool {
	return isNameStart(ch) || isDigit(ch)
}

// isDigit checks if a byte is a digit.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

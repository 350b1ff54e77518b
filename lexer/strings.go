package lexer

import (
	"strings"
	"unicode/utf16"

	"github.com/Protocol-Lattice/gqlparser/token"
)

// readString reads a "quoted" string and decodes its escape sequences.
func (l *Lexer) readString(start, line, col int) (token.Token, error) {
	var value strings.Builder
	pos := start + 1
	chunkStart := pos

	for pos < len(l.body) {
		ch := l.body[pos]
		if ch == '\n' || ch == '\r' {
			break
		}
		if ch == '"' {
			value.WriteString(l.body[chunkStart:pos])
			return token.Token{
				Type:   token.STRING,
				Start:  start,
				End:    pos + 1,
				Line:   line,
				Column: col,
				Value:  value.String(),
			}, nil
		}
		if ch < 0x20 && ch != '\t' {
			return token.Token{}, l.errorf(pos, "Invalid character within String: %s.", printChar(rune(ch)))
		}
		pos++
		if ch != '\\' {
			continue
		}

		value.WriteString(l.body[chunkStart : pos-1])
		if pos >= len(l.body) {
			break
		}
		switch esc := l.body[pos]; esc {
		case '"':
			value.WriteByte('"')
		case '/':
			value.WriteByte('/')
		case '\\':
			value.WriteByte('\\')
		case 'b':
			value.WriteByte('\b')
		case 'f':
			value.WriteByte('\f')
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'u':
			r, ok := l.readHex4(pos + 1)
			if !ok {
				return token.Token{}, l.errorf(pos, `Invalid character escape sequence: \u%s.`, l.slice(pos+1, pos+5))
			}
			pos += 4
			if utf16.IsSurrogate(r) && r < 0xDC00 {
				if lo, ok := l.readSurrogateLow(pos + 1); ok {
					r = utf16.DecodeRune(r, lo)
					pos += 6
				}
			}
			value.WriteRune(r)
		default:
			return token.Token{}, l.errorf(pos, `Invalid character escape sequence: \%s.`, l.slice(pos, pos+1))
		}
		pos++
		chunkStart = pos
	}

	return token.Token{}, l.errorf(pos, "Unterminated string.")
}

// readSurrogateLow reads a `\uDC00`-`\uDFFF` escape at pos, if present.
func (l *Lexer) readSurrogateLow(pos int) (rune, bool) {
	if !strings.HasPrefix(l.body[pos:], `\u`) {
		return 0, false
	}
	r, ok := l.readHex4(pos + 2)
	if !ok || r < 0xDC00 || r > 0xDFFF {
		return 0, false
	}
	return r, true
}

// readHex4 reads exactly four hex digits at pos.
func (l *Lexer) readHex4(pos int) (rune, bool) {
	if pos+4 > len(l.body) {
		return 0, false
	}
	var r rune
	for i := pos; i < pos+4; i++ {
		d, ok := hexValue(l.body[i])
		if !ok {
			return 0, false
		}
		r = r<<4 | d
	}
	return r, true
}

// slice returns body[from:to] clamped to the body.
func (l *Lexer) slice(from, to int) string {
	if to > len(l.body) {
		to = len(l.body)
	}
	if from > to {
		from = to
	}
	return l.body[from:to]
}

// readBlockString reads a """block string""" and dedents its content.
// Line terminators inside the block advance the line counter.
func (l *Lexer) readBlockString(start, line, col int) (token.Token, error) {
	var raw strings.Builder
	pos := start + 3
	chunkStart := pos

	for pos < len(l.body) {
		ch := l.body[pos]
		switch {
		case strings.HasPrefix(l.body[pos:], `"""`):
			raw.WriteString(l.body[chunkStart:pos])
			return token.Token{
				Type:   token.BLOCKSTRING,
				Start:  start,
				End:    pos + 3,
				Line:   line,
				Column: col,
				Value:  BlockStringValue(raw.String()),
			}, nil
		case ch < 0x20 && ch != '\t' && ch != '\n' && ch != '\r':
			return token.Token{}, l.errorf(pos, "Invalid character within String: %s.", printChar(rune(ch)))
		case ch == '\\' && strings.HasPrefix(l.body[pos+1:], `"""`):
			raw.WriteString(l.body[chunkStart:pos])
			raw.WriteString(`"""`)
			pos += 4
			chunkStart = pos
		case ch == '\n':
			pos++
			l.line++
			l.lineStart = pos
		case ch == '\r':
			if strings.HasPrefix(l.body[pos:], "\r\n") {
				pos += 2
			} else {
				pos++
			}
			l.line++
			l.lineStart = pos
		default:
			pos++
		}
	}

	return token.Token{}, l.errorf(pos, "Unterminated string.")
}

// hexValue converts one hex digit.
func hexValue(ch byte) (rune, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return rune(ch - '0'), true
	case 'a' <= ch && ch <= 'f':
		return rune(ch-'a') + 10, true
	case 'A' <= ch && ch <= 'F':
		return rune(ch-'A') + 10, true
	}
	return 0, false
}

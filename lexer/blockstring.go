package lexer

import (
	"strings"

	"github.com/Protocol-Lattice/gqlparser/source"
)

// BlockStringValue normalizes the raw content of a block string.
//
// The common indentation of every line after the first is removed, then
// leading and trailing blank lines are dropped. Lines are rejoined with \n.
func BlockStringValue(raw string) string {
	lines := source.SplitLines(raw)

	commonIndent := -1
	for _, line := range lines[1:] {
		indent := leadingWhitespace(line)
		if indent < len(line) && (commonIndent < 0 || indent < commonIndent) {
			commonIndent = indent
			if commonIndent == 0 {
				break
			}
		}
	}

	if commonIndent > 0 {
		for i := 1; i < len(lines); i++ {
			if len(lines[i]) < commonIndent {
				lines[i] = ""
				continue
			}
			lines[i] = lines[i][commonIndent:]
		}
	}

	for len(lines) > 0 && isBlank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// leadingWhitespace counts the spaces and tabs that start a line.
func leadingWhitespace(line string) int {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return i
}

func isBlank(line string) bool {
	return leadingWhitespace(line) == len(line)
}

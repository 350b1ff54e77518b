package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockStringValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "removes uniform indentation",
			lines: []string{"", "    Hello,", "      World!", "", "    Yours,", "      GraphQL."},
			want:  []string{"Hello,", "  World!", "", "Yours,", "  GraphQL."},
		},
		{
			name:  "removes empty leading and trailing lines",
			lines: []string{"", "", "    Hello,", "      World!", "", "    Yours,", "      GraphQL.", "", ""},
			want:  []string{"Hello,", "  World!", "", "Yours,", "  GraphQL."},
		},
		{
			name:  "removes blank leading and trailing lines",
			lines: []string{"  ", "        ", "    Hello,", "      World!", "", "    Yours,", "      GraphQL.", "        ", "  "},
			want:  []string{"Hello,", "  World!", "", "Yours,", "  GraphQL."},
		},
		{
			name:  "retains indentation from first line",
			lines: []string{"    Hello,", "      World!", "", "    Yours,", "      GraphQL."},
			want:  []string{"    Hello,", "  World!", "", "Yours,", "  GraphQL."},
		},
		{
			name:  "does not alter trailing spaces",
			lines: []string{"               ", "    Hello,     ", "      World!   ", "               ", "    Yours,     ", "      GraphQL. ", "               "},
			want:  []string{"Hello,     ", "  World!   ", "           ", "Yours,     ", "  GraphQL. "},
		},
		{
			name:  "single line is untouched",
			lines: []string{"   indented single line  "},
			want:  []string{"   indented single line  "},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := BlockStringValue(strings.Join(tt.lines, "\n"))
			require.Equal(t, strings.Join(tt.want, "\n"), got)
		})
	}
}

func TestBlockStringValueSplitsAllTerminators(t *testing.T) {
	t.Parallel()
	raw := "\r\n  Hello,\r    World!\n\r\n  Yours,\n    GraphQL.\n"
	require.Equal(t, "Hello,\n  World!\n\nYours,\n  GraphQL.", BlockStringValue(raw))
}

package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultsName(t *testing.T) {
	t.Parallel()
	s := New("", "{ a }")
	require.Equal(t, DefaultName, s.Name)
	require.Equal(t, LocationOffset{Line: 1, Column: 1}, s.LocationOffset)
}

func TestNewWithOffsetRejectsNonPositive(t *testing.T) {
	t.Parallel()
	_, err := NewWithOffset("x", "", LocationOffset{Line: 0, Column: 1})
	require.Error(t, err)
	_, err = NewWithOffset("x", "", LocationOffset{Line: 1, Column: 0})
	require.Error(t, err)
	s, err := NewWithOffset("x", "", LocationOffset{Line: 3, Column: 5})
	require.NoError(t, err)
	require.Equal(t, 3, s.LocationOffset.Line)
}

func TestPosition(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		body   string
		offset int
		want   Location
	}{
		{name: "start", body: "abc", offset: 0, want: Location{1, 1}},
		{name: "same line", body: "abc", offset: 2, want: Location{1, 3}},
		{name: "lf", body: "a\nbc", offset: 3, want: Location{2, 2}},
		{name: "crlf", body: "a\r\nbc", offset: 4, want: Location{2, 2}},
		{name: "cr", body: "a\rbc", offset: 2, want: Location{2, 1}},
		{name: "several", body: "a\n\r\n\rx", offset: 5, want: Location{4, 1}},
		{name: "past end", body: "ab", offset: 10, want: Location{1, 3}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, New("", tt.body).Position(tt.offset))
		})
	}
}

func TestDisplayPosition(t *testing.T) {
	t.Parallel()
	s, err := NewWithOffset("x", "ab\ncd", LocationOffset{Line: 10, Column: 4})
	require.NoError(t, err)
	require.Equal(t, Location{Line: 10, Column: 5}, s.DisplayPosition(1))
	require.Equal(t, Location{Line: 11, Column: 2}, s.DisplayPosition(4))
}

func TestLineText(t *testing.T) {
	t.Parallel()
	s := New("", "one\r\ntwo\rthree")
	require.Equal(t, "two", s.LineText(2))
	require.Equal(t, "three", s.LineText(3))
	require.Equal(t, "", s.LineText(4))
}

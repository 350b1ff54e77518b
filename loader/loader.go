// Package loader builds Sources from files and in-memory parts.
//
// Several inputs can be concatenated into one Source so that a schema
// split over many files parses as a single document. The returned Bundle
// keeps track of where each input landed, so positions reported against
// the combined Source can be mapped back to the file they came from.
package loader

import (
	"io/fs"
	"os"
	"strings"

	"golang.org/x/xerrors"

	"github.com/Protocol-Lattice/gqlparser/source"
)

// Loader reads GraphQL documents from a file system.
type Loader struct {
	FS fs.FS
}

// New returns a Loader reading from fsys.
func New(fsys fs.FS) *Loader {
	return &Loader{FS: fsys}
}

// Dir returns a Loader rooted at a directory on the host.
func Dir(root string) *Loader {
	return New(os.DirFS(root))
}

// OS returns a Loader that accepts host paths, absolute or relative to the
// working directory.
func OS() *Loader {
	return New(osFS{})
}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }

func (osFS) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }

// File reads a single file into a Source named after it.
func (l *Loader) File(name string) (*source.Source, error) {
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, xerrors.Errorf("load %s: %w", name, err)
	}
	return source.New(name, string(data)), nil
}

// Files reads every named file and concatenates them in order.
func (l *Loader) Files(names ...string) (*Bundle, error) {
	if len(names) == 0 {
		return nil, xerrors.New("load: no files given")
	}
	parts := make([]Part, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(l.FS, name)
		if err != nil {
			return nil, xerrors.Errorf("load %s: %w", name, err)
		}
		parts = append(parts, Part{Name: name, Body: string(data)})
	}
	return Concat(parts...), nil
}

// Part is one named input of a Bundle.
type Part struct {
	Name string
	Body string
}

// Segment is the byte range [Start, End) a Part occupies in a Bundle's
// combined body.
type Segment struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Bundle is a Source built from several parts.
type Bundle struct {
	Source   *source.Source
	Segments []Segment
}

// Concat joins parts with a newline between each into a single Source
// named by the comma-separated part names.
func Concat(parts ...Part) *Bundle {
	var (
		body     strings.Builder
		names    = make([]string, 0, len(parts))
		segments = make([]Segment, 0, len(parts))
	)
	for i, part := range parts {
		if i > 0 {
			body.WriteByte('\n')
		}
		start := body.Len()
		body.WriteString(part.Body)
		segments = append(segments, Segment{Name: part.Name, Start: start, End: body.Len()})
		names = append(names, part.Name)
	}
	return &Bundle{
		Source:   source.New(strings.Join(names, ","), body.String()),
		Segments: segments,
	}
}

// Locate maps an offset in the combined body to the segment holding it
// and the 1-based line and column within that segment. The separator
// after a segment, and the end of input, belong to the segment before it.
func (b *Bundle) Locate(offset int) (Segment, source.Location, bool) {
	for _, seg := range b.Segments {
		if offset < seg.Start || offset > seg.End {
			continue
		}
		local := source.New(seg.Name, b.Source.Body[seg.Start:seg.End])
		return seg, local.Position(offset - seg.Start), true
	}
	return Segment{}, source.Location{}, false
}

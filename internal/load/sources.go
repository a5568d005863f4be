package load

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Opener opens a resolved path for reading. Both afero.Fs and
// includepath.Search satisfy it.
type Opener interface {
	Open(path string) (afero.File, error)
}

// Source is a required file and its contents.
type Source struct {
	Path string
	Data []byte
}

// SourceSet is a Requirer that reads every path at most once.
type SourceSet struct {
	opener Opener
	byPath map[string]*Source
	order  []string
}

// NewSourceSet creates an empty SourceSet reading through opener.
func NewSourceSet(opener Opener) *SourceSet {
	return &SourceSet{
		opener: opener,
		byPath: make(map[string]*Source),
	}
}

// Require reads path unless it has been required before.
func (s *SourceSet) Require(path string) error {
	if _, ok := s.byPath[path]; ok {
		return nil
	}

	f, err := s.opener.Open(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	s.byPath[path] = &Source{Path: path, Data: data}
	s.order = append(s.order, path)

	return nil
}

// Get returns the source for a required path.
func (s *SourceSet) Get(path string) (*Source, bool) {
	src, ok := s.byPath[path]
	return src, ok
}

// Loaded returns the required paths in the order they were first required.
func (s *SourceSet) Loaded() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of required files.
func (s *SourceSet) Len() int {
	return len(s.order)
}

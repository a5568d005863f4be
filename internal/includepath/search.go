package includepath

import (
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Search resolves relative paths against an ordered list of directories.
type Search struct {
	fs   afero.Fs
	dirs []string
}

// New creates a Search over fs. Dirs are tried in order.
func New(fs afero.Fs, dirs ...string) *Search {
	return &Search{
		fs:   fs,
		dirs: append([]string(nil), dirs...),
	}
}

// Dirs returns the include directories in search order.
func (s *Search) Dirs() []string {
	return append([]string(nil), s.dirs...)
}

// Resolve returns the first existing match for p. Absolute paths and
// paths starting with "./" or "../" are checked as given, everything
// else is joined with each include dir in turn.
func (s *Search) Resolve(p string) (string, bool) {
	if p == "" {
		return "", false
	}

	if isDirect(p) {
		if s.Exists(p) {
			return path.Clean(p), true
		}

		return "", false
	}

	for _, dir := range s.dirs {
		full := path.Join(dir, p)
		if s.Exists(full) {
			return full, true
		}
	}

	return "", false
}

// Exists reports whether p names an existing file or directory.
func (s *Search) Exists(p string) bool {
	_, err := s.fs.Stat(p)
	return err == nil
}

// Open opens a resolved path for reading.
func (s *Search) Open(p string) (afero.File, error) {
	f, err := s.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "include file %s vanished", p)
		}

		return nil, errors.Wrapf(err, "opening include file %s", p)
	}

	return f, nil
}

func isDirect(p string) bool {
	return path.IsAbs(p) || strings.HasPrefix(p, "./") || strings.HasPrefix(p, "../")
}

package load

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Finder returns candidate paths for a class identifier.
type Finder interface {
	FindClass(class string) []string
}

// PathResolver turns a candidate into an existing path.
type PathResolver interface {
	Resolve(path string) (string, bool)
}

// Requirer makes a resolved file available to the caller.
type Requirer interface {
	Require(path string) error
}

// RequireFunc adapts a function to the Requirer interface.
type RequireFunc func(path string) error

// Require calls f(path).
func (f RequireFunc) Require(path string) error {
	return f(path)
}

// Result describes a single Load call.
type Result struct {
	Class      string
	Candidates []string
	// Path is the resolved file that was required, empty if none.
	Path string
}

// Loaded reports whether a file was required.
func (r Result) Loaded() bool {
	return r.Path != ""
}

// Loader requires the first resolvable candidate of a class.
type Loader struct {
	finder   Finder
	paths    PathResolver
	requirer Requirer
	logger   log.Logger
}

// NewLoader creates a new Loader. A nil logger discards output.
func NewLoader(finder Finder, paths PathResolver, requirer Requirer, logger log.Logger) *Loader {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Loader{
		finder:   finder,
		paths:    paths,
		requirer: requirer,
		logger:   logger,
	}
}

// Load requires the first candidate of class that exists on the include
// path. It reports whether a file was required.
func (l *Loader) Load(class string) (bool, error) {
	res, err := l.LoadResult(class)
	return res.Loaded(), err
}

// LoadResult is Load with the candidate list and chosen path reported.
func (l *Loader) LoadResult(class string) (Result, error) {
	res := Result{
		Class:      class,
		Candidates: l.finder.FindClass(class),
	}

	for _, candidate := range res.Candidates {
		full, ok := l.paths.Resolve(candidate)
		if !ok {
			level.Debug(l.logger).Log("msg", "candidate not on include path", "class", class, "candidate", candidate)
			continue
		}

		if err := l.requirer.Require(full); err != nil {
			return res, errors.Wrapf(err, "requiring %s for class %s", full, class)
		}

		level.Debug(l.logger).Log("msg", "class loaded", "class", class, "path", full)
		res.Path = full

		return res, nil
	}

	return res, nil
}

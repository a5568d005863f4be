package config

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"classloader/internal/diagnostic"
	"classloader/internal/includepath"
	"classloader/internal/load"
	"classloader/internal/resolve"
)

// Setup is a resolver and loader wired from a config.
type Setup struct {
	Search   *includepath.Search
	Resolver *resolve.Resolver
	Sources  *load.SourceSet
	Loader   *load.Loader
}

// Environment returns the resolver environment described by f.
func (f *File) Environment(prober resolve.Prober) resolve.Environment {
	return resolve.Environment{
		ClassPath: lo.Assign(f.ClassPath),
		AppRoots: lo.Map(f.AppsRoots, func(r AppRoot, _ int) resolve.AppRoot {
			return resolve.AppRoot{Path: r.Path, URL: r.URL, Writable: r.Writable}
		}),
		Prober: prober,
	}
}

// Build wires the include path, resolver, and loader over fs.
func (f *File) Build(fs afero.Fs, logger log.Logger) *Setup {
	if logger == nil {
		logger = log.NewNopLogger()
	}

	search := includepath.New(fs, f.IncludePath...)

	resolver := resolve.NewResolver(f.Environment(search), resolve.Config{
		UseGlobalClassPath: f.GlobalClassPathEnabled(),
		Logger:             log.With(logger, "component", "resolver"),
	})

	for class, path := range f.Classes {
		resolver.RegisterClass(class, path)
	}

	for _, p := range f.Prefixes {
		resolver.RegisterPrefix(p.Prefix, p.Dir)
	}

	sources := load.NewSourceSet(search)

	return &Setup{
		Search:   search,
		Resolver: resolver,
		Sources:  sources,
		Loader:   load.NewLoader(resolver, search, sources, log.With(logger, "component", "loader")),
	}
}

// Verify warns about every class none of whose candidates exists on the
// include path.
func (s *Setup) Verify(classes []string) *diagnostic.Diagnostics {
	d := &diagnostic.Diagnostics{}

	for _, class := range classes {
		candidates := s.Resolver.FindClass(class)

		found := lo.ContainsBy(candidates, func(c string) bool {
			_, ok := s.Search.Resolve(c)
			return ok
		})
		if found {
			continue
		}

		d.AddWarning(diagnostic.CodeClassFileMissing,
			"no candidate exists on the include path", class, strings.Join(candidates, ", "))
	}

	return d
}

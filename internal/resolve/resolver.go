package resolve

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/samber/lo"

	"classloader/internal/classid"
	"classloader/internal/common"
	"classloader/internal/diagnostic"
	"classloader/internal/match"
)

const legacyAppsDir = "apps/"

// Config holds resolver settings.
type Config struct {
	// UseGlobalClassPath enables the Environment class path fallback.
	UseGlobalClassPath bool
	// Logger receives debug notes about deprecated paths.
	Logger log.Logger
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{
		UseGlobalClassPath: true,
		Logger:             log.NewNopLogger(),
	}
}

// Resolver derives candidate file paths for class identifiers.
// It is not safe for concurrent registration and lookup.
type Resolver struct {
	env                Environment
	logger             log.Logger
	useGlobalClassPath bool
	classPaths         map[string]string
	prefixes           []Prefix
}

// NewResolver creates a new Resolver over env.
func NewResolver(env Environment, config Config) *Resolver {
	logger := config.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}

	return &Resolver{
		env:                env,
		logger:             logger,
		useGlobalClassPath: config.UseGlobalClassPath,
		classPaths:         make(map[string]string),
	}
}

// RegisterPrefix maps every class starting with prefix to dir.
// Registering the same prefix again replaces its dir but keeps its
// position in the table.
func (r *Resolver) RegisterPrefix(prefix, dir string) {
	for i := range r.prefixes {
		if r.prefixes[i].Prefix == prefix {
			r.prefixes[i].Dir = dir
			return
		}
	}

	r.prefixes = append(r.prefixes, Prefix{Prefix: prefix, Dir: dir})
}

// RegisterClass pins class to an explicit path.
func (r *Resolver) RegisterClass(class, path string) {
	r.classPaths[class] = path
}

// EnableGlobalClassPath turns on the Environment class path fallback.
func (r *Resolver) EnableGlobalClassPath() {
	r.useGlobalClassPath = true
}

// DisableGlobalClassPath turns off the Environment class path fallback.
func (r *Resolver) DisableGlobalClassPath() {
	r.useGlobalClassPath = false
}

// GlobalClassPathEnabled reports whether the fallback is on.
func (r *Resolver) GlobalClassPathEnabled() bool {
	return r.useGlobalClassPath
}

// Classes returns a copy of the explicit class table.
func (r *Resolver) Classes() map[string]string {
	return lo.Assign(r.classPaths)
}

// Prefixes returns the prefix table in registration order.
func (r *Resolver) Prefixes() []Prefix {
	return append([]Prefix(nil), r.prefixes...)
}

// FindClass returns the candidate paths for class, possibly none.
func (r *Resolver) FindClass(class string) []string {
	return r.resolve(class, false).Candidates
}

// Explain resolves class and reports which branch was taken along with
// any diagnostics. Unmatched classes get "did you mean" suggestions.
func (r *Resolver) Explain(class string) Resolution {
	return r.resolve(class, true)
}

func (r *Resolver) resolve(class string, suggest bool) Resolution {
	res := Resolution{Class: classid.Trim(class)}

	switch {
	case r.findExplicit(&res):
	case r.findGlobal(&res):
	case r.findConvention(&res):
	case r.findPrefixed(&res):
	default:
		res.Kind = classid.KindUnmatched
		diag := diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeUnmatchedClass,
			Message:  "no override, convention, or prefix matches",
			Class:    res.Class,
		}

		if suggest {
			diag.Suggestions = match.Suggest(res.Class, r.knownClasses(), match.DefaultMaxSuggestions, match.DefaultMinScore)
		}

		res.Diagnostics.Add(diag)
	}

	return res
}

// knownClasses lists every identifier with a pinned path.
func (r *Resolver) knownClasses() []string {
	known := lo.Keys(r.classPaths)
	if r.useGlobalClassPath {
		known = append(known, lo.Keys(r.env.ClassPath)...)
	}

	return lo.Uniq(known)
}

func (r *Resolver) findExplicit(res *Resolution) bool {
	path, ok := r.classPaths[res.Class]
	if !ok {
		return false
	}

	res.Kind = classid.KindExplicit
	res.Candidates = []string{path}

	return true
}

func (r *Resolver) findGlobal(res *Resolution) bool {
	if !r.useGlobalClassPath {
		return false
	}

	path, ok := r.env.ClassPath[res.Class]
	if !ok {
		return false
	}

	res.Kind = classid.KindGlobalOverride
	res.Candidates = []string{path}

	if strings.HasPrefix(path, legacyAppsDir) {
		level.Debug(r.logger).Log("msg", "include path starts with apps/", "class", res.Class, "path", path)

		stripped := strings.ReplaceAll(path, legacyAppsDir, "")
		res.Candidates = append(res.Candidates, stripped)
		res.Diagnostics.AddInfo(diagnostic.CodeDeprecatedAppsPath,
			fmt.Sprintf("include path starts with %q, also trying %q", legacyAppsDir, stripped), res.Class, path)
	}

	return true
}

func (r *Resolver) findConvention(res *Resolution) bool {
	conv, rest, ok := classid.Classify(res.Class)
	if !ok {
		return false
	}

	res.Kind = conv.Kind

	if conv.Kind == classid.KindAppNamespace {
		res.Candidates = r.appPaths(res, rest)
	} else {
		res.Candidates = conv.Paths(rest)
	}

	return true
}

// appPaths emits two candidates per app root holding the app directory:
// one at the root and one under its lib directory.
func (r *Resolver) appPaths(res *Resolution, rest string) []string {
	app := strings.ToLower(classid.AppName(rest))
	rel := classid.ToPath(rest, classid.NamespaceSeparator)

	var paths []string

	for _, root := range r.env.AppRoots {
		appDir := root.Path + "/" + app
		if r.env.Prober == nil || !r.env.Prober.Exists(appDir) {
			res.Diagnostics.AddWarning(diagnostic.CodeAppDirMissing,
				"app directory not found, skipping app root", res.Class, appDir)

			continue
		}

		paths = append(paths,
			root.Path+"/"+rel,
			root.Path+"/lib/"+rel,
		)
	}

	return paths
}

func (r *Resolver) findPrefixed(res *Resolution) bool {
	var paths []string

	for _, p := range r.prefixes {
		if strings.HasPrefix(res.Class, p.Prefix) {
			paths = append(paths, classid.PrefixPath(p.Dir, res.Class))
		}
	}

	if common.IsEmpty(paths) {
		return false
	}

	res.Kind = classid.KindUserPrefix
	res.Candidates = paths

	return true
}

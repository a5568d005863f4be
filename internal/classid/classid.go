package classid

import "strings"

const (
	// NamespaceSeparator separates namespace segments.
	NamespaceSeparator = `\`
	// LegacySeparator separates segments of pre-namespace class names.
	LegacySeparator = "_"
	// Extension is appended to every derived path.
	Extension = ".php"
)

// Convention is one fixed namespace marker and the directories its
// paths are placed under, in emission order. An empty dir means the
// path is emitted as is.
type Convention struct {
	Marker    string
	Kind      Kind
	Separator string
	Dirs      []string
}

// Conventions lists the fixed markers in match order.
var Conventions = []Convention{
	{Marker: "OC_", Kind: KindLegacyUnderscore, Separator: LegacySeparator, Dirs: []string{"legacy", ""}},
	{Marker: `OC\`, Kind: KindStructuralNamespace, Separator: NamespaceSeparator, Dirs: []string{""}},
	{Marker: `OCP\`, Kind: KindStructuralNamespace, Separator: NamespaceSeparator, Dirs: []string{"public"}},
	{Marker: `OCA\`, Kind: KindAppNamespace, Separator: NamespaceSeparator},
	{Marker: "Test_", Kind: KindTestNamespace, Separator: LegacySeparator, Dirs: []string{"tests/lib"}},
	{Marker: `Test\`, Kind: KindTestNamespace, Separator: NamespaceSeparator, Dirs: []string{"tests/lib"}},
}

// Trim strips leading and trailing namespace separators.
func Trim(class string) string {
	return strings.Trim(class, NamespaceSeparator)
}

// Classify finds the convention whose marker prefixes class and returns it
// together with the remainder after the marker.
func Classify(class string) (Convention, string, bool) {
	for _, c := range Conventions {
		if rest, ok := strings.CutPrefix(class, c.Marker); ok {
			return c, rest, true
		}
	}

	return Convention{}, "", false
}

// Paths builds the candidate paths for rest under every dir of the
// convention. App conventions have no dirs and yield nothing here.
func (c Convention) Paths(rest string) []string {
	if len(c.Dirs) == 0 {
		return nil
	}

	rel := ToPath(rest, c.Separator)
	paths := make([]string, 0, len(c.Dirs))

	for _, dir := range c.Dirs {
		if dir == "" {
			paths = append(paths, rel)
			continue
		}

		paths = append(paths, dir+"/"+rel)
	}

	return paths
}

// ToPath lower-cases name and turns every sep into a path separator,
// then appends the extension.
func ToPath(name, sep string) string {
	return strings.ToLower(strings.ReplaceAll(name, sep, "/")) + Extension
}

// AppName returns the app id of an app-namespace remainder, i.e. the
// segment before the first namespace separator.
func AppName(rest string) string {
	name, _, _ := strings.Cut(rest, NamespaceSeparator)
	return name
}

// PrefixPath builds the path for a class under a user prefix dir. Both
// namespace and legacy separators become path separators and case is kept.
func PrefixPath(dir, class string) string {
	rel := strings.ReplaceAll(class, NamespaceSeparator, "/") + Extension
	rel = strings.ReplaceAll(rel, LegacySeparator, "/")

	return dir + "/" + rel
}

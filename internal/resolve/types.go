package resolve

import (
	"classloader/internal/classid"
	"classloader/internal/diagnostic"
)

// AppRoot is a directory holding installed apps.
type AppRoot struct {
	Path     string
	URL      string
	Writable bool
}

// Prober checks whether a path exists.
type Prober interface {
	Exists(path string) bool
}

// Environment carries the process-wide tables the resolver consults.
type Environment struct {
	// ClassPath maps class identifiers to paths, consulted when the
	// global class path is enabled.
	ClassPath map[string]string
	// AppRoots are searched, in order, for app namespace classes.
	AppRoots []AppRoot
	// Prober verifies app directories. A nil Prober means no app
	// directory exists.
	Prober Prober
}

// Prefix is one entry of the user prefix table.
type Prefix struct {
	Prefix string
	Dir    string
}

// Resolution describes how a class identifier was resolved.
type Resolution struct {
	// Class is the trimmed identifier.
	Class string
	// Kind is the branch that produced the candidates.
	Kind classid.Kind
	// Candidates are the paths to try, in order.
	Candidates []string
	// Diagnostics collects notes about skipped or deprecated paths.
	Diagnostics diagnostic.Diagnostics
}

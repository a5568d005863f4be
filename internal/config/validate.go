package config

import (
	"fmt"
	"path"

	"classloader/internal/diagnostic"
)

// Validate checks a config for entries the resolver cannot use.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("config_is_nil", "config is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported config version %q", f.Version), "", "version")
	}

	if len(f.IncludePath) == 0 {
		res.AddWarning("empty_include_path", "include path is empty, only absolute candidates can load", "", "include_path")
	}

	for i, dir := range f.IncludePath {
		if dir == "" {
			res.AddError("empty_include_dir", "include directory is empty", "", fmt.Sprintf("include_path[%d]", i))
		}
	}

	for i, root := range f.AppsRoots {
		key := fmt.Sprintf("apps_roots[%d]", i)

		switch {
		case root.Path == "":
			res.AddError("empty_app_root", "app root path is empty", "", key)
		case !path.IsAbs(root.Path):
			res.AddError("relative_app_root", fmt.Sprintf("app root %q must be absolute", root.Path), "", key)
		}
	}

	validateTable(res, "class_path", f.ClassPath)
	validateTable(res, "classes", f.Classes)

	for _, p := range f.Prefixes {
		key := "prefixes." + p.Prefix

		if p.Prefix == "" {
			res.AddWarning("empty_prefix", "empty prefix matches every class", "", key)
		}

		if p.Dir == "" {
			res.AddError("empty_prefix_dir", "prefix directory is empty", "", key)
		}
	}

	return res
}

func validateTable(res *diagnostic.Diagnostics, section string, table map[string]string) {
	for class, p := range table {
		if class == "" {
			res.AddError("empty_class", "class identifier is empty", "", section)
			continue
		}

		if p == "" {
			res.AddError("empty_class_path", "class path is empty", class, section)
		}
	}
}

package config

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"classloader/internal/resolve"
)

// File is the parsed configuration file.
type File struct {
	Version            string            `yaml:"version"`
	UseGlobalClassPath *bool             `yaml:"use_global_class_path,omitempty"`
	IncludePath        []string          `yaml:"include_path,omitempty"`
	AppsRoots          []AppRoot         `yaml:"apps_roots,omitempty"`
	ClassPath          map[string]string `yaml:"class_path,omitempty"`
	Classes            map[string]string `yaml:"classes,omitempty"`
	Prefixes           PrefixMap         `yaml:"prefixes,omitempty"`
}

// AppRoot is one apps directory entry.
type AppRoot struct {
	Path     string `yaml:"path"`
	URL      string `yaml:"url,omitempty"`
	Writable bool   `yaml:"writable,omitempty"`
}

// GlobalClassPathEnabled returns the effective global fallback setting.
func (f *File) GlobalClassPathEnabled() bool {
	return f.UseGlobalClassPath == nil || *f.UseGlobalClassPath
}

// PrefixMap is an ordered prefix -> dir table.
type PrefixMap []resolve.Prefix

// Set inserts or overwrites prefix, keeping the original position.
func (p *PrefixMap) Set(prefix, dir string) {
	for i := range *p {
		if (*p)[i].Prefix == prefix {
			(*p)[i].Dir = dir
			return
		}
	}

	*p = append(*p, resolve.Prefix{Prefix: prefix, Dir: dir})
}

// UnmarshalYAML implements custom YAML unmarshaling for PrefixMap.
// Accepts:
//   - Mapping: {Foo_: /src, Bar_: /lib}, in document order
//   - Sequence: [{prefix: Foo_, dir: /src}]
func (p *PrefixMap) UnmarshalYAML(node *yaml.Node) error {
	*p = PrefixMap{}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var prefix, dir string

			if err := node.Content[i].Decode(&prefix); err != nil {
				return err
			}

			if err := node.Content[i+1].Decode(&dir); err != nil {
				return errors.Wrapf(err, "prefix %q", prefix)
			}

			p.Set(prefix, dir)
		}

		return nil

	case yaml.SequenceNode:
		var entries []struct {
			Prefix string `yaml:"prefix"`
			Dir    string `yaml:"dir"`
		}

		if err := node.Decode(&entries); err != nil {
			return err
		}

		for _, e := range entries {
			p.Set(e.Prefix, e.Dir)
		}

		return nil

	default:
		return errors.Errorf("expected mapping or sequence of prefixes, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for PrefixMap.
// Outputs a mapping in table order.
func (p PrefixMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range p {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Prefix},
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Dir},
		)
	}

	return node, nil
}

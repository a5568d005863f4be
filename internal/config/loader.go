package config

import (
	"github.com/drone/envsubst"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const filePerm = 0o644

// DefaultFile is the config path used when none is given.
const DefaultFile = "classloader.yaml"

// LoadFile loads and parses a YAML config file from fs.
func LoadFile(fs afero.Fs, path string, expandEnv bool) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	f, err := Parse(data, expandEnv)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte, expandEnv bool) (*File, error) {
	if expandEnv {
		expanded, err := envsubst.EvalEnv(string(data))
		if err != nil {
			return nil, errors.Wrap(err, "failed to expand environment variables")
		}

		data = []byte(expanded)
	}

	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse config YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	if f.UseGlobalClassPath == nil {
		enabled := true
		f.UseGlobalClassPath = &enabled
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to path on fs.
func WriteFile(fs afero.Fs, f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := afero.WriteFile(fs, path, data, filePerm); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}

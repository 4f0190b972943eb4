package config

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// SupportedConfigVersions is the semver range of override-file schemas this
// build accepts.
const SupportedConfigVersions = "^1.0"

// fileConfig is the on-disk override format: a version stamp plus any subset
// of EngineConfig fields. Fields not present in the file keep their default
// values because decoding happens over a prepopulated struct.
type fileConfig struct {
	Version string       `yaml:"version"`
	Engine  EngineConfig `yaml:",inline"`
}

// Load builds a configuration from the defaults overlaid with the YAML
// override file at path. The file's version field is required and checked
// against SupportedConfigVersions. The result passes the same exhaustiveness
// verification as New, so an override cannot remove a rate table entry.
func Load(path string) (*EngineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	fc := fileConfig{Engine: *Default()}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.Version == "" {
		return nil, fmt.Errorf("%w: %s", ErrConfigVersionMissing, path)
	}
	if err := checkVersion(fc.Version); err != nil {
		return nil, err
	}

	cfg := fc.Engine
	if err := cfg.verify(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return &cfg, nil
}

func checkVersion(version string) error {
	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: cannot parse %q: %v", ErrConfigVersionUnsupported, version, err)
	}
	constraint, err := semver.NewConstraint(SupportedConfigVersions)
	if err != nil {
		// The constraint is a compile-time literal; failing to parse it is a
		// programming error.
		panic(fmt.Sprintf("invalid version constraint %q: %v", SupportedConfigVersions, err))
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrConfigVersionUnsupported, version, SupportedConfigVersions)
	}
	return nil
}

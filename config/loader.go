package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lovelyyoshino/bron-kerbosch/core"
)

// file mirrors core.Params' field names in YAML/snake_case, per §4.4.
type file struct {
	Resolution     float64 `yaml:"resolution"`
	MinClusterSize int     `yaml:"min_cluster_size"`
	MaxModelRadius float64 `yaml:"max_model_radius"`
}

// Load reads path as YAML and returns the core.Params it describes. The
// result is validated before being returned, so callers never receive a
// Params that would make core.Params.Validate fail downstream.
func Load(path string) (core.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Params{}, fmt.Errorf("config file not found: %s", path)
		}
		return core.Params{}, fmt.Errorf("reading config file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return core.Params{}, fmt.Errorf("parsing config YAML: %w", err)
	}

	params := core.Params{
		Resolution:     f.Resolution,
		MinClusterSize: f.MinClusterSize,
		MaxModelRadius: f.MaxModelRadius,
	}
	if err := params.Validate(); err != nil {
		return core.Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

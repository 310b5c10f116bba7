/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads YAML-backed defaults for a synthesis run. The
// library packages (catalog, solve, exec, provenance) never read a
// Config, and no cmd/* binary loads one: they take these settings from
// their own flags and from package constants such as
// solve.DefaultMaxDepth and remote.MockValue.
package config

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Config holds the tunable defaults for a synthesis run.
type Config struct {
	// MaxDepth bounds solve.Solve's search depth.
	MaxDepth int `yaml:"maxDepth,omitempty"`

	// CostTolerance is the equal-cost comparison tolerance for ranking
	// candidate solutions. Package solve ranks with its own constant of
	// the same default and does not read this field.
	CostTolerance float64 `yaml:"costTolerance,omitempty"`

	// MockRemoteValue is the value for an unresolved sparql/rest call.
	// Package exec substitutes remote.MockValue and does not read this
	// field.
	MockRemoteValue float64 `yaml:"mockRemoteValue,omitempty"`

	// ProvenanceEnabled records whether provenance recording is wanted;
	// no cmd/* binary reads it.
	ProvenanceEnabled bool `yaml:"provenanceEnabled,omitempty"`

	// ProvenanceDBPath is the bbolt database path a recording run
	// persists its exported graph to.
	ProvenanceDBPath string `yaml:"provenanceDbPath,omitempty"`
}

// Default returns a Config populated with the documented default
// values.
func Default() *Config {
	return &Config{
		MaxDepth:        5,
		CostTolerance:   1e-3,
		MockRemoteValue: 100,
	}
}

// Load reads and parses a YAML config file, starting from Default and
// overriding only the fields present in filename.
func Load(filename string) (*Config, error) {
	c := Default()
	src, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(src, c); err != nil {
		return nil, err
	}
	return c, nil
}

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

package catalog

import "gopkg.in/yaml.v2"

// ToYAML renders the Catalog's Types and Functions as YAML, a
// structured snapshot of a parsed catalog alongside the native DSL.
func (c *Catalog) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// FromYAML reconstructs a Catalog previously written by ToYAML and
// rebuilds its indices. Unlike Parse, FromYAML does not re-validate
// type references: a YAML snapshot is assumed to have come from a
// Catalog that already parsed successfully.
func FromYAML(data []byte) (*Catalog, error) {
	c := New()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if c.Types == nil {
		c.Types = make(map[string]*TypeDefinition)
	}
	c.Index()
	return c, nil
}

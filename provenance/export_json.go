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

package provenance

import "encoding/json"

// doc is the JSON export shape: entities/activities/agents keyed by
// id (as the original Python to_dict does), the edge lists as plain
// arrays.
type doc struct {
	Namespace    string                  `json:"namespace"`
	Entities     map[string]*Entity      `json:"entities"`
	Activities   map[string]*Activity    `json:"activities"`
	Agents       map[string]*Agent       `json:"agents"`
	Usages       []Usage                 `json:"usages"`
	Generations  []Generation            `json:"generations"`
	Derivations  []Derivation            `json:"derivations"`
	Associations []Association           `json:"associations"`
	Attributions []Attribution           `json:"attributions"`
}

func (g *Graph) toDoc() *doc {
	entities := make(map[string]*Entity, len(g.entityIDs))
	for _, e := range g.Entities() {
		entities[e.ID] = e
	}
	activities := make(map[string]*Activity, len(g.activityIDs))
	for _, a := range g.Activities() {
		activities[a.ID] = a
	}
	agents := make(map[string]*Agent, len(g.agentIDs))
	for _, a := range g.Agents() {
		agents[a.ID] = a
	}
	return &doc{
		Namespace:    g.Namespace,
		Entities:     entities,
		Activities:   activities,
		Agents:       agents,
		Usages:       g.Usages,
		Generations:  g.Generations,
		Derivations:  g.Derivations,
		Associations: g.Associations,
		Attributions: g.Attributions,
	}
}

// ExportJSON renders the graph as the plain JSON document form.
func (g *Graph) ExportJSON(pretty bool) (string, error) {
	d := g.toDoc()
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(d, "", "  ")
	} else {
		b, err = json.Marshal(d)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

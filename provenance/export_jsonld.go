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

import (
	"encoding/json"
	"fmt"
)

var jsonLDContext = map[string]interface{}{
	"prov":              "http://www.w3.org/ns/prov#",
	"xsd":               "http://www.w3.org/2001/XMLSchema#",
	"Entity":            "prov:Entity",
	"Activity":          "prov:Activity",
	"Agent":             "prov:Agent",
	"used":              map[string]interface{}{"@id": "prov:used", "@type": "@id"},
	"wasGeneratedBy":    map[string]interface{}{"@id": "prov:wasGeneratedBy", "@type": "@id"},
	"wasDerivedFrom":    map[string]interface{}{"@id": "prov:wasDerivedFrom", "@type": "@id"},
	"wasAssociatedWith": map[string]interface{}{"@id": "prov:wasAssociatedWith", "@type": "@id"},
	"wasAttributedTo":   map[string]interface{}{"@id": "prov:wasAttributedTo", "@type": "@id"},
	"startedAtTime":     map[string]interface{}{"@id": "prov:startedAtTime", "@type": "xsd:dateTime"},
	"endedAtTime":       map[string]interface{}{"@id": "prov:endedAtTime", "@type": "xsd:dateTime"},
	"generatedAtTime":   map[string]interface{}{"@id": "prov:generatedAtTime", "@type": "xsd:dateTime"},
}

// ExportJSONLD renders the graph as JSON-LD: one @graph node per
// entity/activity/agent, with used/wasGeneratedBy/wasDerivedFrom/
// wasAssociatedWith/wasAttributedTo attached to the node they
// describe (found by id, since JSON-LD has no separate edge-list
// shape).
func (g *Graph) ExportJSONLD() (string, error) {
	nodes := make(map[string]map[string]interface{})
	var order []string
	add := func(id string) map[string]interface{} {
		n := make(map[string]interface{})
		nodes[id] = n
		order = append(order, id)
		return n
	}

	for _, e := range g.Entities() {
		n := add("ex:" + e.ID)
		n["@id"] = "ex:" + e.ID
		n["@type"] = "Entity"
		n["prov:type"] = e.TypeName
		n["prov:value"] = fmt.Sprintf("%v", e.Value)
		n["generatedAtTime"] = e.Timestamp
	}
	for _, a := range g.Activities() {
		n := add("ex:" + a.ID)
		n["@id"] = "ex:" + a.ID
		n["@type"] = "Activity"
		n["ex:funcId"] = a.FuncID
		n["ex:funcSignature"] = a.FuncSignature
		n["startedAtTime"] = a.StartTime
		if a.EndTime != "" {
			n["endedAtTime"] = a.EndTime
		}
	}
	for _, ag := range g.Agents() {
		n := add("ex:" + ag.ID)
		n["@id"] = "ex:" + ag.ID
		n["@type"] = "Agent"
		n["prov:name"] = ag.Name
		n["ex:agentType"] = ag.AgentType
	}

	for _, u := range g.Usages {
		if n, ok := nodes["ex:"+u.ActivityID]; ok {
			appendRef(n, "used", "ex:"+u.EntityID)
		}
	}
	for _, gen := range g.Generations {
		if n, ok := nodes["ex:"+gen.EntityID]; ok {
			n["wasGeneratedBy"] = "ex:" + gen.ActivityID
		}
	}
	for _, d := range g.Derivations {
		if n, ok := nodes["ex:"+d.DerivedEntityID]; ok {
			appendRef(n, "wasDerivedFrom", "ex:"+d.SourceEntityID)
		}
	}
	for _, a := range g.Associations {
		if n, ok := nodes["ex:"+a.ActivityID]; ok {
			appendRef(n, "wasAssociatedWith", "ex:"+a.AgentID)
		}
	}
	for _, a := range g.Attributions {
		if n, ok := nodes["ex:"+a.EntityID]; ok {
			appendRef(n, "wasAttributedTo", "ex:"+a.AgentID)
		}
	}

	graph := make([]map[string]interface{}, len(order))
	for i, id := range order {
		graph[i] = nodes[id]
	}

	out := map[string]interface{}{
		"@context": jsonLDContext,
		"@graph":   graph,
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func appendRef(node map[string]interface{}, key, ref string) {
	existing, ok := node[key].([]string)
	if !ok {
		node[key] = []string{ref}
		return
	}
	node[key] = append(existing, ref)
}

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

// Package provenance records the W3C PROV-O shaped execution history
// of a solved pipeline: entities (values), activities (function
// applications), and the used/generated/derivedFrom edges between
// them.
package provenance

import (
	"math/rand"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// gensym mirrors core.Gensym: a short random suffix, not a
// cryptographic identifier — provenance ids only need to be unique
// within one run's graph.
func gensym(prefix string) string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return prefix + "_" + string(b)
}

// timestamp mirrors core.Timestamp: RFC3339Nano, UTC.
func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

type Entity struct {
	ID         string                 `json:"id"`
	TypeName   string                 `json:"type"`
	Value      interface{}            `json:"value"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Timestamp  string                 `json:"generatedAtTime"`
}

type Activity struct {
	ID            string                 `json:"id"`
	FuncID        string                 `json:"funcId"`
	FuncSignature string                 `json:"funcSignature"`
	StartTime     string                 `json:"startedAtTime"`
	EndTime       string                 `json:"endedAtTime,omitempty"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
}

type Agent struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	AgentType  string                 `json:"agentType"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

type Usage struct {
	ActivityID string `json:"activity"`
	EntityID   string `json:"entity"`
	Role       string `json:"role,omitempty"`
	Timestamp  string `json:"time"`
}

type Generation struct {
	EntityID   string `json:"entity"`
	ActivityID string `json:"activity"`
	Role       string `json:"role,omitempty"`
	Timestamp  string `json:"time"`
}

type Derivation struct {
	DerivedEntityID string `json:"derived"`
	SourceEntityID  string `json:"source"`
	ActivityID      string `json:"activity,omitempty"`
}

type Association struct {
	ActivityID string `json:"activity"`
	AgentID    string `json:"agent"`
	Role       string `json:"role,omitempty"`
}

type Attribution struct {
	EntityID string `json:"entity"`
	AgentID  string `json:"agent"`
}

// Graph is a PROV-O shaped record of one execution. Entities,
// Activities, and Agents are kept both as lookup maps and as
// insertion-ordered id slices, since a Go map's iteration order is
// unspecified and callers (export, tests) expect Entities()/
// Activities() to come back in the order they were recorded.
type Graph struct {
	Namespace     string
	SystemAgentID string

	entities   map[string]*Entity
	entityIDs  []string
	activities map[string]*Activity
	activityIDs []string
	agents     map[string]*Agent
	agentIDs   []string

	Usages       []Usage
	Generations  []Generation
	Derivations  []Derivation
	Associations []Association
	Attributions []Attribution
}

// NewGraph creates an empty graph under namespace, registering the
// default system agent the way the original tracker does at
// construction time.
func NewGraph(namespace string) *Graph {
	g := &Graph{
		Namespace:  namespace,
		entities:   make(map[string]*Entity),
		activities: make(map[string]*Activity),
		agents:     make(map[string]*Agent),
	}
	g.SystemAgentID = g.AddAgent("TypeSynthesis System", "system", map[string]interface{}{"version": "1.0"})
	return g
}

func (g *Graph) AddEntity(typeName string, value interface{}, attrs map[string]interface{}) string {
	id := gensym("entity")
	g.entities[id] = &Entity{ID: id, TypeName: typeName, Value: value, Attributes: attrs, Timestamp: timestamp()}
	g.entityIDs = append(g.entityIDs, id)
	return id
}

func (g *Graph) AddActivity(funcID, funcSignature string, attrs map[string]interface{}) string {
	id := gensym("activity")
	g.activities[id] = &Activity{ID: id, FuncID: funcID, FuncSignature: funcSignature, StartTime: timestamp(), Attributes: attrs}
	g.activityIDs = append(g.activityIDs, id)
	return id
}

func (g *Graph) EndActivity(id string) {
	if a, ok := g.activities[id]; ok {
		a.EndTime = timestamp()
	}
}

func (g *Graph) AddAgent(name, agentType string, attrs map[string]interface{}) string {
	id := gensym("agent")
	g.agents[id] = &Agent{ID: id, Name: name, AgentType: agentType, Attributes: attrs}
	g.agentIDs = append(g.agentIDs, id)
	return id
}

func (g *Graph) AddUsage(activityID, entityID, role string) {
	g.Usages = append(g.Usages, Usage{ActivityID: activityID, EntityID: entityID, Role: role, Timestamp: timestamp()})
}

func (g *Graph) AddGeneration(entityID, activityID, role string) {
	g.Generations = append(g.Generations, Generation{EntityID: entityID, ActivityID: activityID, Role: role, Timestamp: timestamp()})
}

func (g *Graph) AddDerivation(derivedEntityID, sourceEntityID, activityID string) {
	g.Derivations = append(g.Derivations, Derivation{DerivedEntityID: derivedEntityID, SourceEntityID: sourceEntityID, ActivityID: activityID})
}

func (g *Graph) AddAssociation(activityID, agentID, role string) {
	g.Associations = append(g.Associations, Association{ActivityID: activityID, AgentID: agentID, Role: role})
}

func (g *Graph) AddAttribution(entityID, agentID string) {
	g.Attributions = append(g.Attributions, Attribution{EntityID: entityID, AgentID: agentID})
}

// Entities returns every recorded entity in the order it was added.
func (g *Graph) Entities() []*Entity {
	out := make([]*Entity, len(g.entityIDs))
	for i, id := range g.entityIDs {
		out[i] = g.entities[id]
	}
	return out
}

// Activities returns every recorded activity in the order it was
// added.
func (g *Graph) Activities() []*Activity {
	out := make([]*Activity, len(g.activityIDs))
	for i, id := range g.activityIDs {
		out[i] = g.activities[id]
	}
	return out
}

// Agents returns every recorded agent in the order it was added.
func (g *Graph) Agents() []*Agent {
	out := make([]*Agent, len(g.agentIDs))
	for i, id := range g.agentIDs {
		out[i] = g.agents[id]
	}
	return out
}

// EntityLineage walks Derivations backward from entityID, following
// the first matching derivation at each step, stopping on a cycle.
func (g *Graph) EntityLineage(entityID string) []string {
	var lineage []string
	visited := make(map[string]bool)
	current := entityID
	for current != "" && !visited[current] {
		lineage = append(lineage, current)
		visited[current] = true

		next := ""
		for _, d := range g.Derivations {
			if d.DerivedEntityID == current {
				next = d.SourceEntityID
				break
			}
		}
		current = next
	}
	return lineage
}

// ActivityChain returns the activity that generated each entity in
// EntityLineage(entityID), in the same order.
func (g *Graph) ActivityChain(entityID string) []string {
	var chain []string
	for _, id := range g.EntityLineage(entityID) {
		for _, gen := range g.Generations {
			if gen.EntityID == id {
				chain = append(chain, gen.ActivityID)
				break
			}
		}
	}
	return chain
}

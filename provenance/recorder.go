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
	"fmt"
	"strings"

	"github.com/typesynth/typesynth/exec"
	"github.com/typesynth/typesynth/solve"
)

// Recorder implements exec.Recorder (BeginActivity/RecordUsed/
// EndActivity). It imports package exec for the exec.Activity type;
// exec does not import provenance, so there is no import cycle
// between the two. Its BeginActivity return value is the
// activity id as a plain string; exec never inspects it, it just
// threads it back through RecordUsed/EndActivity.
type Recorder struct {
	Graph *Graph

	// entityOf memoizes the Entity id already recorded for a given
	// solution node by pointer identity, so a leaf or subtree shared
	// by a DAG is recorded as one Entity no matter how many times
	// it's used as an argument.
	entityOf map[*solve.SolutionNode]string

	// codomainOf remembers each activity's output type, parsed once
	// from its signature at BeginActivity, since EndActivity's
	// exec.Recorder signature doesn't carry the producing function.
	codomainOf map[string]string
}

// NewRecorder creates a Recorder backed by a fresh Graph.
func NewRecorder(namespace string) *Recorder {
	return &Recorder{
		Graph:      NewGraph(namespace),
		entityOf:   make(map[*solve.SolutionNode]string),
		codomainOf: make(map[string]string),
	}
}

func (r *Recorder) BeginActivity(funcID, signature string) exec.Activity {
	id := r.Graph.AddActivity(funcID, signature, nil)
	r.Graph.AddAssociation(id, r.Graph.SystemAgentID, "")
	r.codomainOf[id] = codomainOf(signature)
	return id
}

func (r *Recorder) RecordUsed(act exec.Activity, child *solve.SolutionNode, value interface{}, argIndex int) {
	activityID := act.(string)
	entityID, ok := r.entityOf[child]
	if !ok {
		entityID = r.Graph.AddEntity(child.Type, value, nil)
		r.entityOf[child] = entityID
	}
	r.Graph.AddUsage(activityID, entityID, fmt.Sprintf("input_%d", argIndex))
}

func (r *Recorder) EndActivity(act exec.Activity, output interface{}, children []*solve.SolutionNode) {
	activityID := act.(string)
	outputID := r.Graph.AddEntity(r.codomainOf[activityID], output, nil)
	r.Graph.AddGeneration(outputID, activityID, "output")
	for _, c := range children {
		if entityID, ok := r.entityOf[c]; ok {
			r.Graph.AddDerivation(outputID, entityID, activityID)
		}
	}
	r.Graph.EndActivity(activityID)
}

func codomainOf(signature string) string {
	if i := strings.LastIndex(signature, " -> "); i >= 0 {
		return signature[i+len(" -> "):]
	}
	return signature
}

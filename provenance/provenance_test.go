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
	"strings"
	"testing"

	"github.com/typesynth/typesynth/solve"
)

// Grounds the two-step fuel->energy->CO2 path from the original
// implementation's provenance test: a Recorder asked to trace that
// pipeline should produce one activity per function, one entity per
// distinct value, and a derivedFrom edge per input.
func TestRecorderTracksTwoStepPipeline(t *testing.T) {
	r := NewRecorder("http://example.org/provenance/")

	fuel := &solve.SolutionNode{Type: "Fuel"}
	act1 := r.BeginActivity("fuelToEnergy", "Fuel -> Energy")
	r.RecordUsed(act1, fuel, 100.0, 0)
	r.EndActivity(act1, 4200.0, []*solve.SolutionNode{fuel})

	energy := &solve.SolutionNode{Type: "Energy"}
	act2 := r.BeginActivity("energyToCO2", "Energy -> CO2")
	r.RecordUsed(act2, energy, 4200.0, 0)
	r.EndActivity(act2, 249.9, []*solve.SolutionNode{energy})

	if len(r.Graph.Activities()) != 2 {
		t.Fatalf("got %d activities, want 2", len(r.Graph.Activities()))
	}
	// 2 inputs + 2 outputs = 4 entities.
	if len(r.Graph.Entities()) != 4 {
		t.Fatalf("got %d entities, want 4", len(r.Graph.Entities()))
	}
	if len(r.Graph.Derivations) != 2 {
		t.Fatalf("got %d derivations, want 2", len(r.Graph.Derivations))
	}
	for _, a := range r.Graph.Activities() {
		if a.EndTime == "" {
			t.Fatalf("activity %s was never ended", a.ID)
		}
	}
}

// A value shared across two argument positions (a DAG leaf) is
// recorded as a single Entity.
func TestRecorderSharesEntityByNodeIdentity(t *testing.T) {
	r := NewRecorder("http://example.org/provenance/")
	shared := &solve.SolutionNode{Type: "Facility", SourceID: "f1"}

	act := r.BeginActivity("agg", "S1, S2, S3 -> Total")
	r.RecordUsed(act, shared, 10.0, 0)
	r.RecordUsed(act, shared, 10.0, 1)
	r.RecordUsed(act, shared, 10.0, 2)
	r.EndActivity(act, 30.0, []*solve.SolutionNode{shared, shared, shared})

	if len(r.Graph.Entities()) != 2 { // one shared input + one output
		t.Fatalf("got %d entities, want 2", len(r.Graph.Entities()))
	}
	if len(r.Graph.Usages) != 3 {
		t.Fatalf("got %d usages, want 3", len(r.Graph.Usages))
	}
	if len(r.Graph.Derivations) != 3 {
		t.Fatalf("got %d derivations, want 3 (one per usage of the shared entity)", len(r.Graph.Derivations))
	}
}

func TestEntityLineageFollowsDerivations(t *testing.T) {
	g := NewGraph("http://example.org/provenance/")
	a := g.AddEntity("Fuel", 100.0, nil)
	act1 := g.AddActivity("f1", "Fuel -> Energy", nil)
	b := g.AddEntity("Energy", 4200.0, nil)
	g.AddDerivation(b, a, act1)
	act2 := g.AddActivity("f2", "Energy -> CO2", nil)
	c := g.AddEntity("CO2", 249.9, nil)
	g.AddDerivation(c, b, act2)

	lineage := g.EntityLineage(c)
	if len(lineage) != 3 || lineage[0] != c || lineage[1] != b || lineage[2] != a {
		t.Fatalf("got %v", lineage)
	}
}

func TestExportJSONRoundTripsShape(t *testing.T) {
	r := NewRecorder("http://example.org/provenance/")
	leaf := &solve.SolutionNode{Type: "Fuel"}
	act := r.BeginActivity("f1", "Fuel -> Energy")
	r.RecordUsed(act, leaf, 100.0, 0)
	r.EndActivity(act, 4200.0, []*solve.SolutionNode{leaf})

	out, err := r.Graph.ExportJSON(true)
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	for _, want := range []string{`"entities"`, `"activities"`, `"agents"`, `"derivations"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %s", want, out)
		}
	}
}

func TestExportTurtleEscapesAndEmitsAllSections(t *testing.T) {
	r := NewRecorder("http://example.org/provenance/")
	leaf := &solve.SolutionNode{Type: "Fuel"}
	act := r.BeginActivity("f1", "Fuel -> Energy")
	r.RecordUsed(act, leaf, `has "quotes"`, 0)
	r.EndActivity(act, 4200.0, []*solve.SolutionNode{leaf})

	out := r.Graph.ExportTurtle()
	if !strings.Contains(out, `prov:value "has \"quotes\""`) {
		t.Fatalf("expected escaped quotes, got:\n%s", out)
	}
	if !strings.Contains(out, "a prov:Entity") || !strings.Contains(out, "a prov:Activity") || !strings.Contains(out, "a prov:Agent") {
		t.Fatalf("missing a section, got:\n%s", out)
	}
}

func TestExportJSONLDAttachesEdgesToNodes(t *testing.T) {
	r := NewRecorder("http://example.org/provenance/")
	leaf := &solve.SolutionNode{Type: "Fuel"}
	act := r.BeginActivity("f1", "Fuel -> Energy")
	r.RecordUsed(act, leaf, 100.0, 0)
	r.EndActivity(act, 4200.0, []*solve.SolutionNode{leaf})

	out, err := r.Graph.ExportJSONLD()
	if err != nil {
		t.Fatalf("ExportJSONLD: %v", err)
	}
	if !strings.Contains(out, `"@graph"`) || !strings.Contains(out, `"used"`) || !strings.Contains(out, `"wasGeneratedBy"`) {
		t.Fatalf("got %s", out)
	}
}

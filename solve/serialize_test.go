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

package solve

import (
	"encoding/json"
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestNodeFromJSONRoundTripsFuncByID(t *testing.T) {
	cat := catalog.New()
	cat.Types["Product"] = &catalog.TypeDefinition{Name: "Product"}
	cat.Types["Energy"] = &catalog.TypeDefinition{Name: "Energy"}
	fn := &catalog.FunctionDefinition{
		ID: "usesEnergy#1", Name: "usesEnergy", Domain: []string{"Product"}, Codomain: "Energy",
		Impl: catalog.Implementation{Kind: catalog.ImplFormula, Formula: "arg0"},
	}
	cat.Functions = []*catalog.FunctionDefinition{fn}
	cat.Index()

	original := &SolutionNode{
		Type: "Energy",
		Func: fn,
		Children: []*SolutionNode{
			{Type: "Product", SourceID: "p1", Cost: 0, Confidence: 1},
		},
		Cost:       1,
		Confidence: 0.9,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := NodeFromJSON(data, cat)
	if err != nil {
		t.Fatalf("NodeFromJSON: %v", err)
	}
	if got.Func != fn {
		t.Fatalf("expected the exact catalog *FunctionDefinition to be re-bound by ID")
	}
	if len(got.Children) != 1 || got.Children[0].SourceID != "p1" {
		t.Fatalf("got children %+v", got.Children)
	}
}

func TestNodeFromJSONErrorsOnUnknownFunctionID(t *testing.T) {
	cat := catalog.New()
	cat.Index()

	data := []byte(`{"type":"Energy","func":{"id":"nope","name":"usesEnergy","signature":"Product -> Energy","impl_kind":"formula"},"cost":1,"confidence":1}`)
	if _, err := NodeFromJSON(data, cat); err == nil {
		t.Fatalf("expected an error for an unresolvable function id")
	}
}

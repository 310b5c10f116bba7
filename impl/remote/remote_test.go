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

package remote

import (
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestEvaluatorReturnsMockValue(t *testing.T) {
	var e Evaluator
	compiled, err := e.Compile(catalog.Implementation{Kind: catalog.ImplSparql, Query: "SELECT ?x WHERE { ?x a :Thing }"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := e.Exec(compiled, nil)
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if v.(float64) != MockValue {
		t.Fatalf("got %v, want %v", v, MockValue)
	}
}

func TestEvaluatorCompilePicksQueryOrMethodAndURL(t *testing.T) {
	var e Evaluator
	compiled, err := e.Compile(catalog.Implementation{Kind: catalog.ImplRest, MethodAndURL: "GET http://example.invalid/thing"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if compiled.(string) != "GET http://example.invalid/thing" {
		t.Fatalf("got %v", compiled)
	}
}

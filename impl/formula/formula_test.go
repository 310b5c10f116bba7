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

package formula

import (
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestEvaluatorCompileExec(t *testing.T) {
	var e Evaluator
	compiled, err := e.Compile(catalog.Implementation{Kind: catalog.ImplFormula, Formula: "value * 9/5 + 32"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := e.Exec(compiled, []interface{}{float64(0)})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if v.(float64) != 32 {
		t.Fatalf("got %v, want 32", v)
	}
}

// An assignment-prefixed formula ("result = ...") is stripped at
// Compile time, not at every Exec call.
func TestEvaluatorStripsAssignmentPrefixOnce(t *testing.T) {
	var e Evaluator
	compiled, err := e.Compile(catalog.Implementation{Kind: catalog.ImplFormula, Formula: "result = arg0 + arg1"})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := e.Exec(compiled, []interface{}{float64(2), float64(3)})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if v.(float64) != 5 {
		t.Fatalf("got %v, want 5", v)
	}
}

func TestEvaluatorCompileRejectsSyntaxError(t *testing.T) {
	var e Evaluator
	if _, err := e.Compile(catalog.Implementation{Kind: catalog.ImplFormula, Formula: "value * ("}); err == nil {
		t.Fatalf("expected a syntax error")
	}
}

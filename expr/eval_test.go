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

package expr

import (
	"testing"
)

func TestEvalArithmetic(t *testing.T) {
	v, err := Eval("value * 9/5 + 32", BuildScope([]interface{}{float64(0)}))
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.(float64) != 32 {
		t.Fatalf("got %v, want 32", v)
	}
}

func TestEvalTernary(t *testing.T) {
	v, err := Eval("value > 75 ? 1 : 0", BuildScope([]interface{}{float64(80)}))
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.(float64) != 1 {
		t.Fatalf("got %v, want 1", v)
	}
}

func TestEvalThreeArgAggregation(t *testing.T) {
	scope := BuildScope([]interface{}{float64(1000), float64(1500), float64(120)})
	v, err := Eval("arg0 + arg1 + arg2", scope)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.(float64) != 2620 {
		t.Fatalf("got %v, want 2620", v)
	}
}

func TestEvalScopeAliases(t *testing.T) {
	scope := BuildScope([]interface{}{float64(1), float64(2), float64(3)})
	v, err := Eval("scope1 + scope2 + scope3", scope)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.(float64) != 6 {
		t.Fatalf("got %v, want 6", v)
	}
}

func TestEvalRecordSpreadThenPositionalOverride(t *testing.T) {
	// Positional arg{i} bindings win over spread record fields with
	// the same key.
	scope := BuildScope([]interface{}{
		map[string]interface{}{"arg1": "from-spread"},
		"from-positional",
	})
	v, err := Eval("arg1", scope)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if v.(string) != "from-positional" {
		t.Fatalf("got %q, want %q (positional arg1 should win)", v, "from-positional")
	}
}

func TestEvalMemberAndIndexAccess(t *testing.T) {
	scope := BuildScope([]interface{}{map[string]interface{}{
		"fuel": float64(400),
		"list": []interface{}{float64(10), float64(20), float64(30)},
	}})
	v, err := Eval("fuel", scope)
	if err != nil {
		t.Fatalf("Eval fuel: %v", err)
	}
	if v.(float64) != 400 {
		t.Fatalf("fuel = %v", v)
	}
	v, err = Eval("list[1]", scope)
	if err != nil {
		t.Fatalf("Eval list[1]: %v", err)
	}
	if v.(float64) != 20 {
		t.Fatalf("list[1] = %v", v)
	}
}

func TestEvalWhitelistedBuiltins(t *testing.T) {
	cases := []struct {
		src  string
		want float64
	}{
		{"abs(-5)", 5},
		{"round(2.6)", 3},
		{"min(3, 1, 2)", 1},
		{"max(3, 1, 2)", 3},
		{"sum(list(arg0))", 6},
		{"len(arg0)", 3},
		{"sqrt(16)", 4},
	}
	for _, c := range cases {
		scope := BuildScope([]interface{}{[]interface{}{float64(1), float64(2), float64(3)}})
		v, err := Eval(c.src, scope)
		if err != nil {
			t.Fatalf("Eval(%q): %v", c.src, err)
		}
		got, ok := v.(float64)
		if !ok || got != c.want {
			t.Fatalf("Eval(%q) = %v, want %v", c.src, v, c.want)
		}
	}
}

func TestEvalRejectsNonWhitelistedFunction(t *testing.T) {
	// Scenario 6: "system('rm -rf /')" must fail, not execute.
	_, err := Eval("system('rm -rf /')", Scope{})
	if err == nil {
		t.Fatalf("expected an error for a non-whitelisted function call")
	}
	if _, ok := err.(*EvaluationError); !ok {
		t.Fatalf("expected *EvaluationError, got %T: %v", err, err)
	}
}

func TestEvalRejectsUnknownIdentifier(t *testing.T) {
	_, err := Eval("mystery_name + 1", Scope{"x": float64(1)})
	if err == nil {
		t.Fatalf("expected an error for an unbound identifier")
	}
}

func TestStripAssignmentPrefix(t *testing.T) {
	cases := map[string]string{
		`co2 = fuel * emission_factor`: `fuel * emission_factor`,
		`total = scope1 + scope2`:      `scope1 + scope2`,
		`value * 9/5 + 32`:             `value * 9/5 + 32`,
		`value == 5`:                   `value == 5`,
	}
	for src, want := range cases {
		if got := StripAssignmentPrefix(src); got != want {
			t.Fatalf("StripAssignmentPrefix(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestEvalJSONTemplate(t *testing.T) {
	schema := map[string]interface{}{
		"x":    "arg0",
		"y":    "arg1 * 2",
		"flag": true,
	}
	scope := BuildScope([]interface{}{float64(3), float64(4)})
	v, err := EvalJSONTemplate(schema, scope)
	if err != nil {
		t.Fatalf("EvalJSONTemplate: %v", err)
	}
	out := v.(map[string]interface{})
	if out["x"].(float64) != 3 || out["y"].(float64) != 8 || out["flag"].(bool) != true {
		t.Fatalf("got %+v", out)
	}
}

func TestEvalTemplate(t *testing.T) {
	scope := BuildScope([]interface{}{map[string]interface{}{"n": "world"}})
	got, err := EvalTemplate("Hello, {{greeting}}!", map[string]string{"greeting": "n"}, scope)
	if err != nil {
		t.Fatalf("EvalTemplate: %v", err)
	}
	if got != "Hello, world!" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalTemplateUnknownPlaceholderRaises(t *testing.T) {
	_, err := EvalTemplate("{{missing}}", map[string]string{}, Scope{})
	if err == nil {
		t.Fatalf("expected error for unknown placeholder")
	}
}

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

import "testing"

func TestCatalogIndexByCodomainAndDomain(t *testing.T) {
	c := New()
	c.Types["Celsius"] = &TypeDefinition{Name: "Celsius", Attributes: map[string]string{}}
	c.Types["Fahrenheit"] = &TypeDefinition{Name: "Fahrenheit", Attributes: map[string]string{}}
	c.Functions = []*FunctionDefinition{
		{ID: "toF#0", Name: "toF", Domain: []string{"Celsius"}, Codomain: "Fahrenheit", Cost: 1, Confidence: 1},
	}
	c.Index()

	fns := c.FunctionsFor("Fahrenheit")
	if len(fns) != 1 || fns[0].Name != "toF" {
		t.Fatalf("FunctionsFor(Fahrenheit) = %v", fns)
	}
	if len(c.FunctionsFor("Celsius")) != 0 {
		t.Fatalf("FunctionsFor(Celsius) should be empty, a function's codomain, not its domain")
	}
	byDomain := c.FunctionsByDomain("Celsius")
	if len(byDomain) != 1 || byDomain[0].Name != "toF" {
		t.Fatalf("FunctionsByDomain(Celsius) = %v", byDomain)
	}
}

func TestTypeDefinitionIsProduct(t *testing.T) {
	atomic := &TypeDefinition{Name: "Celsius"}
	if atomic.IsProduct() {
		t.Fatalf("atomic type reported as product")
	}
	product := &TypeDefinition{Name: "Range", Components: []string{"Celsius", "Celsius"}}
	if !product.IsProduct() {
		t.Fatalf("product type not reported as product")
	}
}

func TestFunctionDefinitionSignature(t *testing.T) {
	f := &FunctionDefinition{Domain: []string{"Celsius", "Humidity"}, Codomain: "Comfort"}
	if got, want := f.Signature(), "Celsius, Humidity -> Comfort"; got != want {
		t.Fatalf("Signature() = %q, want %q", got, want)
	}
}

func TestCopyIsDeep(t *testing.T) {
	orig := &FunctionDefinition{
		Name:   "f",
		Domain: []string{"A"},
		Impl:   Implementation{Kind: ImplTemplate, Bindings: map[string]string{"x": "a.x"}},
	}
	cp := orig.Copy()
	cp.Domain[0] = "B"
	cp.Impl.Bindings["x"] = "mutated"
	if orig.Domain[0] != "A" {
		t.Fatalf("Copy shared Domain slice")
	}
	if orig.Impl.Bindings["x"] != "a.x" {
		t.Fatalf("Copy shared Bindings map")
	}
}

func TestToYAMLFromYAMLRoundTrip(t *testing.T) {
	src := `
type Celsius [unit="C"]
type Fahrenheit [unit="F"]

fn toFahrenheit {
  sig: Celsius -> Fahrenheit
  impl: formula("c * 9/5 + 32")
  cost: 1
  confidence: 1
}
`
	c, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := c.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	c2, err := FromYAML(data)
	if err != nil {
		t.Fatalf("FromYAML: %v", err)
	}
	if !c2.HasType("Celsius") || !c2.HasType("Fahrenheit") {
		t.Fatalf("round-tripped catalog missing types: %+v", c2.Types)
	}
	fns := c2.FunctionsFor("Fahrenheit")
	if len(fns) != 1 || fns[0].Impl.Formula != "c * 9/5 + 32" {
		t.Fatalf("round-tripped functions = %+v", fns)
	}
}

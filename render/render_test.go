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

package render

import (
	"strings"
	"testing"

	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/solve"
)

func testCatalog() *catalog.Catalog {
	c := catalog.New()
	c.Types["Product"] = &catalog.TypeDefinition{Name: "Product", Doc: "A *widget* for sale."}
	c.Types["Energy"] = &catalog.TypeDefinition{Name: "Energy"}
	c.Functions = []*catalog.FunctionDefinition{
		{
			ID: "usesEnergy#1", Name: "usesEnergy", Domain: []string{"Product"}, Codomain: "Energy",
			Doc:  "Estimates energy use.",
			Impl: catalog.Implementation{Kind: catalog.ImplFormula, Formula: "arg0"},
		},
	}
	c.Index()
	return c
}

func TestHTMLIncludesTypesAndFunctionsWithRenderedDoc(t *testing.T) {
	out := HTML(testCatalog())
	if !strings.Contains(out, `id="Product"`) {
		t.Fatalf("missing Product type anchor:\n%s", out)
	}
	if !strings.Contains(out, "<em>widget</em>") {
		t.Fatalf("expected markdown-rendered doc, got:\n%s", out)
	}
	if !strings.Contains(out, "usesEnergy") {
		t.Fatalf("missing usesEnergy function:\n%s", out)
	}
}

func testSolutionTree() *solve.SolutionNode {
	leaf := &solve.SolutionNode{Type: "Product", SourceID: "p1", Cost: 0, Confidence: 1}
	fn := &catalog.FunctionDefinition{ID: "usesEnergy#1", Name: "usesEnergy", Domain: []string{"Product"}, Codomain: "Energy"}
	return &solve.SolutionNode{Type: "Energy", Func: fn, Children: []*solve.SolutionNode{leaf}, Cost: 1, Confidence: 0.9}
}

func TestDOTEmitsOneNodePerTreeNodeAndEdges(t *testing.T) {
	out := DOT(testSolutionTree())
	if !strings.Contains(out, "digraph G {") {
		t.Fatalf("missing digraph header:\n%s", out)
	}
	if strings.Count(out, "->") != 1 {
		t.Fatalf("expected exactly one edge, got:\n%s", out)
	}
	if !strings.Contains(out, "usesEnergy") {
		t.Fatalf("missing function label:\n%s", out)
	}
}

func TestMermaidEmitsGraphHeaderAndEdges(t *testing.T) {
	out := Mermaid(testSolutionTree())
	if !strings.HasPrefix(out, "graph TB\n") {
		t.Fatalf("missing graph header:\n%s", out)
	}
	if strings.Count(out, "-->") != 1 {
		t.Fatalf("expected exactly one edge, got:\n%s", out)
	}
	if !strings.Contains(out, "p1") {
		t.Fatalf("expected leaf source id in label:\n%s", out)
	}
}

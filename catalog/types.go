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

// Package catalog provides the typed, textual catalog language: a
// named collection of TypeDefinitions and FunctionDefinitions, parsed
// from source text and indexed for use by package solve.
//
// A Catalog is built once (via Parse) and is never mutated afterward.
// Parsing, indexing, and lookups are all safe to share across
// concurrent solver invocations.
package catalog

import "fmt"

// ImplKind names one of the closed set of implementation-record cases.
type ImplKind string

const (
	ImplFormula  ImplKind = "formula"
	ImplJSON     ImplKind = "json"
	ImplTemplate ImplKind = "template"
	ImplSparql   ImplKind = "sparql"
	ImplRest     ImplKind = "rest"
	ImplBuiltin  ImplKind = "builtin"
)

// Implementation is a tagged union over the closed set of ways a
// function can be carried out.
//
// Exactly one of the Kind-indicated fields is meaningful for a given
// value; the others are zero. The six cases are closed, and each gets
// its own typed field instead of one opaque interface{}.
type Implementation struct {
	Kind ImplKind `json:"kind" yaml:"kind"`

	// Formula holds the expression source for ImplFormula.
	Formula string `json:"formula,omitempty" yaml:"formula,omitempty"`

	// Schema holds the structured literal for ImplJSON. String
	// leaves are expressions (evaluated at execution time); every
	// other leaf is preserved as data.
	Schema interface{} `json:"schema,omitempty" yaml:"schema,omitempty"`

	// Pattern and Bindings hold the template source and the
	// scope-binding map for ImplTemplate.
	Pattern  string            `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Bindings map[string]string `json:"bindings,omitempty" yaml:"bindings,omitempty"`

	// Query holds the query text for ImplSparql.
	Query string `json:"query,omitempty" yaml:"query,omitempty"`

	// MethodAndURL holds the "METHOD url" source for ImplRest.
	MethodAndURL string `json:"methodAndUrl,omitempty" yaml:"methodAndUrl,omitempty"`

	// BuiltinName holds the aggregate name for ImplBuiltin.
	BuiltinName string `json:"builtinName,omitempty" yaml:"builtinName,omitempty"`
}

// TypeDefinition is a named, declared type: atomic (attributes only)
// or a product (an ordered tuple of component type names).
type TypeDefinition struct {
	Name string `json:"name" yaml:"name"`

	// Attributes is string-keyed, string-valued metadata (unit,
	// range, format, doc, ...). Empty for product types.
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`

	// Components, when non-empty, makes this a product type: an
	// ordered sequence of other declared type names.
	Components []string `json:"components,omitempty" yaml:"components,omitempty"`

	// Doc is optional Markdown documentation, sourced from the
	// "doc" attribute key if present.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// IsProduct reports whether this type is a product (tuple) type.
func (t *TypeDefinition) IsProduct() bool {
	return len(t.Components) > 0
}

// Copy makes a deep copy of the TypeDefinition.
func (t *TypeDefinition) Copy() *TypeDefinition {
	if t == nil {
		return nil
	}
	attrs := make(map[string]string, len(t.Attributes))
	for k, v := range t.Attributes {
		attrs[k] = v
	}
	comps := make([]string, len(t.Components))
	copy(comps, t.Components)
	return &TypeDefinition{
		Name:       t.Name,
		Attributes: attrs,
		Components: comps,
		Doc:        t.Doc,
	}
}

// FunctionDefinition is a named operation: an ordered domain, a single
// codomain, a cost, a confidence, an implementation, and optional
// documentation/inverse reference.
//
// Function names need not be unique across a Catalog: multiple
// overloads producing the same codomain are allowed and become
// alternative proof terms for package solve.
type FunctionDefinition struct {
	// ID is a stable, catalog-unique identifier (Name plus "#" and the
	// function's zero-based declaration index, appended whether or not
	// Name repeats), used as the solver's
	// ranking tiebreaker and as the provenance activity key.
	ID string `json:"id" yaml:"id"`

	Name       string   `json:"name" yaml:"name"`
	Domain     []string `json:"domain" yaml:"domain"`
	Codomain   string   `json:"codomain" yaml:"codomain"`
	Cost       float64  `json:"cost" yaml:"cost"`
	Confidence float64  `json:"confidence" yaml:"confidence"`

	Impl Implementation `json:"impl" yaml:"impl"`

	Doc        string `json:"doc,omitempty" yaml:"doc,omitempty"`
	InverseOf  string `json:"inverseOf,omitempty" yaml:"inverseOf,omitempty"`
}

// Signature renders a human-readable "A, B -> C" signature string.
func (f *FunctionDefinition) Signature() string {
	s := ""
	for i, d := range f.Domain {
		if i > 0 {
			s += ", "
		}
		s += d
	}
	return s + " -> " + f.Codomain
}

// Copy makes a deep copy of the FunctionDefinition.
func (f *FunctionDefinition) Copy() *FunctionDefinition {
	if f == nil {
		return nil
	}
	domain := make([]string, len(f.Domain))
	copy(domain, f.Domain)
	impl := f.Impl
	if f.Impl.Bindings != nil {
		impl.Bindings = make(map[string]string, len(f.Impl.Bindings))
		for k, v := range f.Impl.Bindings {
			impl.Bindings[k] = v
		}
	}
	return &FunctionDefinition{
		ID:         f.ID,
		Name:       f.Name,
		Domain:     domain,
		Codomain:   f.Codomain,
		Cost:       f.Cost,
		Confidence: f.Confidence,
		Impl:       impl,
		Doc:        f.Doc,
		InverseOf:  f.InverseOf,
	}
}

// Catalog is a parsed, immutable collection of types and functions
// plus the derived indices used by package solve.
//
// Catalogs are built once by Parse and are never mutated afterward;
// they are safe to share across goroutines.
type Catalog struct {
	Types     map[string]*TypeDefinition `json:"types" yaml:"types"`
	Functions []*FunctionDefinition      `json:"functions" yaml:"functions"`

	byCodomain map[string][]*FunctionDefinition
	byDomain   map[string][]*FunctionDefinition
}

// New makes an empty Catalog. Exported mainly for tests and for
// callers building a Catalog programmatically rather than via Parse.
func New() *Catalog {
	return &Catalog{
		Types:      make(map[string]*TypeDefinition),
		Functions:  nil,
		byCodomain: make(map[string][]*FunctionDefinition),
		byDomain:   make(map[string][]*FunctionDefinition),
	}
}

// Index (re)builds the byCodomain/byDomain indices from Types and
// Functions. Parse calls this once; callers that build a Catalog by
// hand (rather than via Parse) must call it before using the Catalog
// with package solve.
func (c *Catalog) Index() {
	c.byCodomain = make(map[string][]*FunctionDefinition, len(c.Functions))
	c.byDomain = make(map[string][]*FunctionDefinition, len(c.Functions))
	for _, f := range c.Functions {
		c.byCodomain[f.Codomain] = append(c.byCodomain[f.Codomain], f)
		seen := make(map[string]bool, len(f.Domain))
		for _, d := range f.Domain {
			if seen[d] {
				continue
			}
			seen[d] = true
			c.byDomain[d] = append(c.byDomain[d], f)
		}
	}
}

// FunctionsFor returns the functions whose codomain is the given type
// name, in declaration order. O(1) lookup via the by-codomain index.
func (c *Catalog) FunctionsFor(codomain string) []*FunctionDefinition {
	return c.byCodomain[codomain]
}

// FunctionsByDomain returns the functions that take the given type
// name as (one of) their domain types, in declaration order.
func (c *Catalog) FunctionsByDomain(typeName string) []*FunctionDefinition {
	return c.byDomain[typeName]
}

// FunctionByID returns the function with the given catalog-unique ID,
// if any.
func (c *Catalog) FunctionByID(id string) (*FunctionDefinition, bool) {
	for _, f := range c.Functions {
		if f.ID == id {
			return f, true
		}
	}
	return nil, false
}

// HasType reports whether name is a declared type.
func (c *Catalog) HasType(name string) bool {
	_, have := c.Types[name]
	return have
}

// Type returns the declared TypeDefinition for name, if any.
func (c *Catalog) Type(name string) (*TypeDefinition, bool) {
	t, have := c.Types[name]
	return t, have
}

func (f *FunctionDefinition) String() string {
	return fmt.Sprintf("%s(%s): %s", f.Name, f.Signature(), f.Impl.Kind)
}

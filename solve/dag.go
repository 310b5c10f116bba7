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

import "github.com/typesynth/typesynth/catalog"

// Source names one value a DAG solution may draw on: an opaque,
// caller-chosen id and the declared type it supplies.
//
// The mapping is conceptually source_id -> type_name; this is modeled
// as an ordered slice, rather than a map, because the consumption
// policy below ("consume source ids in declaration order") needs a
// deterministic order to consume from, and Go map iteration order is
// deliberately unspecified.
type Source struct {
	ID   string
	Type string
}

// SolutionDAG is a solution tree whose leaves, when multiple source
// ids share a type name, are identified by source id rather than by
// type name alone, and whose repeated demands for the same source id
// share one leaf object.
type SolutionDAG struct {
	Sources []Source
	Root    *SolutionNode
}

// SolveDAG runs Solve over the type names present in sources, then
// assigns each leaf of the best resulting tree to a concrete source
// id, sharing leaf objects by source id per the following consumption
// policy: consume ids in declaration order of each function's domain;
// once a source id's supply is exhausted, further demands for its
// type reuse the most recently assigned leaf for that type rather
// than erroring or double-counting cost.
//
// SolveDAG returns (nil, nil) if no plan exists, rather than raising.
func SolveDAG(cat *catalog.Catalog, sources []Source, goal string, maxDepth int) (*SolutionDAG, error) {
	typeNames := make([]string, 0, len(sources))
	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if !seen[s.Type] {
			seen[s.Type] = true
			typeNames = append(typeNames, s.Type)
		}
	}

	roots, err := Solve(cat, typeNames, goal, maxDepth)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, nil
	}

	b := &dagBuilder{
		pools:       make(map[string][]string),
		leaves:      make(map[string]*SolutionNode),
		lastForType: make(map[string]string),
	}
	for _, s := range sources {
		b.pools[s.Type] = append(b.pools[s.Type], s.ID)
	}

	return &SolutionDAG{Sources: sources, Root: b.assign(roots[0])}, nil
}

type dagBuilder struct {
	pools       map[string][]string      // type name -> queue of unconsumed source ids
	leaves      map[string]*SolutionNode // source id -> the shared leaf object
	lastForType map[string]string        // type name -> most recently assigned source id
}

func (b *dagBuilder) assign(n *SolutionNode) *SolutionNode {
	if n.IsLeaf() {
		return b.assignLeaf(n.Type)
	}
	children := make([]*SolutionNode, len(n.Children))
	for i, c := range n.Children {
		children[i] = b.assign(c)
	}
	cost := n.Func.Cost
	conf := n.Func.Confidence
	for _, c := range children {
		cost += c.Cost
		conf *= c.Confidence
	}
	return &SolutionNode{
		Type:       n.Type,
		Func:       n.Func,
		Children:   children,
		Cost:       cost,
		Confidence: conf,
	}
}

func (b *dagBuilder) assignLeaf(typeName string) *SolutionNode {
	if q := b.pools[typeName]; len(q) > 0 {
		id := q[0]
		b.pools[typeName] = q[1:]
		leaf := &SolutionNode{Type: typeName, SourceID: id, Cost: 0, Confidence: 1}
		b.leaves[id] = leaf
		b.lastForType[typeName] = id
		return leaf
	}
	// Supply for this type is exhausted: the same source id is being
	// demanded again, so reuse its leaf object rather than minting a
	// new one.
	if id, ok := b.lastForType[typeName]; ok {
		return b.leaves[id]
	}
	// Unreachable: Solve already confirmed typeName is reachable from
	// the source set, which is derived from this same pool map.
	return leaf(typeName)
}

// Leaves returns the shared leaf objects of d, keyed by source id.
func (d *SolutionDAG) Leaves() map[string]*SolutionNode {
	out := make(map[string]*SolutionNode)
	var walk func(n *SolutionNode)
	walk = func(n *SolutionNode) {
		if n.IsLeaf() {
			if n.SourceID != "" {
				out[n.SourceID] = n
			}
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}

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

// Package solve implements the type-inhabitation search: given a
// Catalog, a set of source types (or source ids), and a goal type, it
// enumerates and ranks compositions of catalog functions that produce
// the goal.
package solve

import "github.com/typesynth/typesynth/catalog"

// SolutionNode is one node of a ranked candidate tree (or, for
// Solution DAGs, one node of a tree whose leaves may be shared by
// pointer identity across positions).
//
// A node is a leaf iff Func is nil: its value comes directly from an
// execution context rather than from evaluating a catalog function.
type SolutionNode struct {
	// Type is the type name this node produces.
	Type string

	// SourceID, for leaves produced by SolveDAG, names the source
	// that supplies this leaf's value. Empty for tree leaves (where
	// the type name itself is the context key) and for all non-leaf
	// nodes.
	SourceID string

	// Func is nil for a leaf, and otherwise the function whose
	// application this node represents.
	Func *catalog.FunctionDefinition

	// Children holds one entry per domain position of Func, in
	// declaration order. Empty for a leaf.
	Children []*SolutionNode

	Cost       float64
	Confidence float64
}

// IsLeaf reports whether n is supplied directly from a source rather
// than computed by a function.
func (n *SolutionNode) IsLeaf() bool {
	return n.Func == nil
}

// leaf builds the zero-cost, unity-confidence leaf candidate for a
// type directly available from a source.
func leaf(typeName string) *SolutionNode {
	return &SolutionNode{Type: typeName, Cost: 0, Confidence: 1}
}

// funcID returns a stable identifier for ranking purposes: the
// function's catalog id for a non-leaf, or the empty string for a
// leaf (which always sorts first, consistent with its zero cost).
func (n *SolutionNode) funcID() string {
	if n.Func == nil {
		return ""
	}
	return n.Func.ID
}

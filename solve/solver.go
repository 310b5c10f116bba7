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
	"fmt"

	"github.com/typesynth/typesynth/catalog"
)

// DefaultMaxDepth is the default bound on function applications from
// the root.
const DefaultMaxDepth = 5

// memoKey indexes the solver's (type_name, remaining_depth) table.
type memoKey struct {
	typeName       string
	remainingDepth int
}

// solveState carries the per-invocation, read-only inputs shared by
// every recursive call, plus the mutable memo table.
type solveState struct {
	cat     *catalog.Catalog
	sources map[string]bool
	memo    map[memoKey][]*SolutionNode
}

// Solve enumerates and ranks compositions of cat's functions that
// produce goal from the given source type names.
//
// Solve never returns an error for an unreachable goal: absence of a
// plan is an empty slice, not an error. An error is returned only for
// invalid input: an undeclared goal or source type name.
func Solve(cat *catalog.Catalog, sources []string, goal string, maxDepth int) ([]*SolutionNode, error) {
	if !cat.HasType(goal) {
		return nil, &UnknownGoalType{Name: goal}
	}
	srcSet := make(map[string]bool, len(sources))
	for _, s := range sources {
		if !cat.HasType(s) {
			return nil, &UnknownSourceType{Name: s}
		}
		srcSet[s] = true
	}
	st := &solveState{cat: cat, sources: srcSet, memo: make(map[memoKey][]*SolutionNode)}
	return st.solveType(goal, 0, maxDepth), nil
}

// solveType is the depth-bounded backtracking recursion, memoized on
// (type name, remaining depth budget).
func (st *solveState) solveType(typeName string, depth, maxDepth int) []*SolutionNode {
	remaining := maxDepth - depth
	key := memoKey{typeName: typeName, remainingDepth: remaining}
	if cached, ok := st.memo[key]; ok {
		return cached
	}

	var candidates []*SolutionNode

	// Base case: a source directly supplies this type, regardless of
	// remaining depth budget.
	if st.sources[typeName] {
		candidates = append(candidates, leaf(typeName))
	}

	// Recursive case: bounded by max_depth, measured in function
	// applications from the root.
	if depth < maxDepth {
		for _, f := range st.cat.FunctionsFor(typeName) {
			children := make([]*SolutionNode, len(f.Domain))
			complete := true
			for i, d := range f.Domain {
				sub := st.solveType(d, depth+1, maxDepth)
				if len(sub) == 0 {
					complete = false
					break
				}
				children[i] = sub[0] // best candidate for this position
			}
			if !complete {
				continue
			}
			cost := f.Cost
			conf := f.Confidence
			for _, c := range children {
				cost += c.Cost
				conf *= c.Confidence
			}
			candidates = append(candidates, &SolutionNode{
				Type:       typeName,
				Func:       f,
				Children:   children,
				Cost:       cost,
				Confidence: conf,
			})
		}
	}

	rank(candidates)
	st.memo[key] = candidates
	return candidates
}

// Best is a convenience wrapper returning the first (recommended)
// candidate, if any.
func Best(roots []*SolutionNode) (*SolutionNode, bool) {
	if len(roots) == 0 {
		return nil, false
	}
	return roots[0], true
}

func (n *SolutionNode) String() string {
	if n == nil {
		return "nil"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("leaf(%s)", n.Type)
	}
	return fmt.Sprintf("%s(%s)", n.Func.Name, n.Type)
}

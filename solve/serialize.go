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
	"fmt"

	"github.com/typesynth/typesynth/catalog"
)

// funcSummary is the "func: {name, signature, impl_kind}" shape of a
// serialized solution node, plus the catalog ID needed to reconstruct
// a live *catalog.FunctionDefinition reference via NodeFromJSON.
type funcSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Signature string `json:"signature"`
	ImplKind  string `json:"impl_kind"`
}

// nodeJSON is the recommended solution JSON shape: type, an optional
// func summary, children, cost, confidence.
type nodeJSON struct {
	Type       string       `json:"type"`
	SourceID   string       `json:"source_id,omitempty"`
	Func       *funcSummary `json:"func,omitempty"`
	Children   []*nodeJSON  `json:"children,omitempty"`
	Cost       float64      `json:"cost"`
	Confidence float64      `json:"confidence"`
}

func toNodeJSON(n *SolutionNode) *nodeJSON {
	nj := &nodeJSON{
		Type:       n.Type,
		SourceID:   n.SourceID,
		Cost:       n.Cost,
		Confidence: n.Confidence,
	}
	if n.Func != nil {
		nj.Func = &funcSummary{
			ID:        n.Func.ID,
			Name:      n.Func.Name,
			Signature: n.Func.Signature(),
			ImplKind:  string(n.Func.Impl.Kind),
		}
	}
	for _, c := range n.Children {
		nj.Children = append(nj.Children, toNodeJSON(c))
	}
	return nj
}

// MarshalJSON renders n in the recommended solution serialization
// form.
func (n *SolutionNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(toNodeJSON(n))
}

// dagJSON is the wire form of a SolutionDAG: the source table plus
// the root, which may reference shared leaves by repeated source_id.
type dagJSON struct {
	Sources []Source  `json:"sources"`
	Root    *nodeJSON `json:"root"`
}

// MarshalJSON renders d as its source table plus its root tree. Leaf
// sharing is represented the way JSON represents any DAG: by
// repeating the same source_id at each position that shares the
// leaf, not by a back-reference.
func (d *SolutionDAG) MarshalJSON() ([]byte, error) {
	return json.Marshal(dagJSON{Sources: d.Sources, Root: toNodeJSON(d.Root)})
}

// NodeFromJSON parses a previously-serialized solution tree and
// re-binds each node's Func by looking up its catalog ID in cat, so
// the result can be passed to exec.Execute. Errors if a referenced
// function id is no longer present in cat.
func NodeFromJSON(data []byte, cat *catalog.Catalog) (*SolutionNode, error) {
	var nj nodeJSON
	if err := json.Unmarshal(data, &nj); err != nil {
		return nil, err
	}
	return fromNodeJSON(&nj, cat)
}

func fromNodeJSON(nj *nodeJSON, cat *catalog.Catalog) (*SolutionNode, error) {
	n := &SolutionNode{
		Type:       nj.Type,
		SourceID:   nj.SourceID,
		Cost:       nj.Cost,
		Confidence: nj.Confidence,
	}
	if nj.Func != nil {
		f, ok := cat.FunctionByID(nj.Func.ID)
		if !ok {
			return nil, fmt.Errorf("solve: unknown function id %q in serialized solution", nj.Func.ID)
		}
		n.Func = f
	}
	for _, c := range nj.Children {
		child, err := fromNodeJSON(c, cat)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

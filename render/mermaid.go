/* Copyright 2018 Comcast Cable Communications Management, LLC
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
	"fmt"
	"strings"

	"github.com/typesynth/typesynth/solve"
)

// Mermaid renders n as Mermaid (https://mermaidjs.github.io/)
// flowchart source: a rounded node per leaf, a bracketed node per
// function application, one edge per child.
func Mermaid(n *solve.SolutionNode) string {
	var b strings.Builder
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	f("graph TB")

	num := 0
	var walk func(n *solve.SolutionNode) string
	walk = func(n *solve.SolutionNode) string {
		num++
		id := fmt.Sprintf("n%d", num)

		if n.IsLeaf() {
			label := n.Type
			if n.SourceID != "" {
				label += ": " + n.SourceID
			}
			f(`  %s("%s")`, id, label)
		} else {
			f(`  %s["%s: %s"]`, id, n.Type, n.Func.Name)
			f(`  style %s fill:#bcf2db`, id)
		}

		for _, c := range n.Children {
			childID := walk(c)
			f("  %s --> %s", id, childID)
		}
		return id
	}
	walk(n)

	return b.String()
}

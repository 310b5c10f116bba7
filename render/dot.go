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

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"strings"

	"github.com/typesynth/typesynth/solve"
)

// DOT renders n as Graphviz dot source: one node per SolutionNode (a
// record for a leaf, a note for a function application), labeled with
// its type and with the function applied or, for a leaf, its source id
// if set; one edge per child.
func DOT(n *solve.SolutionNode) string {
	var b strings.Builder
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	f(`digraph G {`)
	f(`  graph [ordering=out,rankdir=TB,nodesep=0.3,ranksep=0.6]`)
	f(`  node [shape="record" style="rounded,filled"]`)
	f(`  edge [fontsize = "12"]`)

	num := 0
	var walk func(n *solve.SolutionNode) string
	walk = func(n *solve.SolutionNode) string {
		num++
		id := fmt.Sprintf("n%d", num)

		label := n.Type
		fillcolor := "#99ddc8"
		shape := "record"
		if !n.IsLeaf() {
			fillcolor = "#2d93ad"
			shape = "note"
			label += `<BR/><FONT POINT-SIZE="8">` + n.Func.Name + `</FONT>`
		} else if n.SourceID != "" {
			label += `<BR/><FONT POINT-SIZE="8">` + escapeDot(n.SourceID) + `</FONT>`
		}
		f(`  %s [shape="%s", style="rounded,filled", fillcolor="%s", label=<%s> ]`,
			id, shape, fillcolor, label)

		for i, c := range n.Children {
			childID := walk(c)
			f(`  %s -> %s [ label = <%d> ]`, id, childID, i+1)
		}
		return id
	}
	walk(n)

	f(`}`)
	return b.String()
}

func escapeDot(s string) string {
	s = strings.Replace(s, "<", "&lt;", -1)
	s = strings.Replace(s, ">", "&gt;", -1)
	return s
}

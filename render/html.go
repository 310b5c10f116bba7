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

// Package render turns a Catalog or a solved SolutionNode tree into a
// human-viewable form: an HTML reference page, or Graphviz/Mermaid
// graph source for a solution.
package render

import (
	"fmt"
	"sort"
	"strings"

	md "github.com/russross/blackfriday/v2"

	"github.com/typesynth/typesynth/catalog"
)

// HTML renders c as a single self-contained HTML page: one section
// listing every declared type, one listing every declared function,
// each with its Doc field run through Markdown.
func HTML(c *catalog.Catalog) string {
	var b strings.Builder
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	f(`<!DOCTYPE html>`)
	f(`<meta charset="utf-8">`)
	f(`<html>`)
	f(`  <head><title>catalog</title></head>`)
	f(`  <body>`)

	f(`    <h1>Types</h1>`)
	f(`    <table class="types">`)
	for _, name := range sortedTypeNames(c) {
		t := c.Types[name]
		f(`<tr class="type"><td><span id="%s" class="typeName">%s</span></td><td>`, name, name)
		if t.Doc != "" {
			f(`<div class="typeDoc doc">%s</div>`, md.Run([]byte(t.Doc)))
		}
		if t.IsProduct() {
			f(`<div class="components">(%s)</div>`, strings.Join(t.Components, ", "))
		}
		f(`</td></tr>`)
	}
	f(`    </table>`)

	f(`    <h1>Functions</h1>`)
	f(`    <table class="functions">`)
	for _, fn := range c.Functions {
		f(`<tr class="function"><td><span id="%s" class="functionName">%s</span></td><td>`, fn.ID, fn.String())
		if fn.Doc != "" {
			f(`<div class="functionDoc doc">%s</div>`, md.Run([]byte(fn.Doc)))
		}
		f(`<div class="impl"><code>%s</code></div>`, implSource(fn.Impl))
		f(`</td></tr>`)
	}
	f(`    </table>`)

	f(`  </body>`)
	f(`</html>`)

	return b.String()
}

func sortedTypeNames(c *catalog.Catalog) []string {
	names := make([]string, 0, len(c.Types))
	for name := range c.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// implSource renders the single meaningful field of im as source
// text, for display inside a <pre>/<code> block.
func implSource(im catalog.Implementation) string {
	switch im.Kind {
	case catalog.ImplFormula:
		return im.Formula
	case catalog.ImplJSON:
		return fmt.Sprintf("%v", im.Schema)
	case catalog.ImplTemplate:
		return im.Pattern
	case catalog.ImplSparql:
		return im.Query
	case catalog.ImplRest:
		return im.MethodAndURL
	case catalog.ImplBuiltin:
		return "builtin(" + im.BuiltinName + ")"
	default:
		return ""
	}
}

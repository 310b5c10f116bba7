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

package provenance

import (
	"fmt"
	"strings"
)

// ExportTurtle renders the graph as Turtle/PROV-O, one block per
// record kind, in the same order the original Python exporter emits
// them.
func (g *Graph) ExportTurtle() string {
	var b strings.Builder
	fmt.Fprintln(&b, "@prefix prov: <http://www.w3.org/ns/prov#> .")
	fmt.Fprintf(&b, "@prefix ex: <%s> .\n", g.Namespace)
	fmt.Fprintln(&b, "@prefix xsd: <http://www.w3.org/2001/XMLSchema#> .")
	fmt.Fprintln(&b)

	for _, e := range g.Entities() {
		fmt.Fprintf(&b, "ex:%s a prov:Entity ;\n", e.ID)
		fmt.Fprintf(&b, "    prov:type \"%s\" ;\n", escapeTurtle(e.TypeName))
		fmt.Fprintf(&b, "    prov:value \"%s\" ;\n", escapeTurtle(fmt.Sprintf("%v", e.Value)))
		fmt.Fprintf(&b, "    prov:generatedAtTime \"%s\"^^xsd:dateTime .\n", e.Timestamp)
		fmt.Fprintln(&b)
	}

	for _, a := range g.Activities() {
		fmt.Fprintf(&b, "ex:%s a prov:Activity ;\n", a.ID)
		fmt.Fprintf(&b, "    ex:funcId \"%s\" ;\n", escapeTurtle(a.FuncID))
		fmt.Fprintf(&b, "    ex:funcSignature \"%s\" ;\n", escapeTurtle(a.FuncSignature))
		fmt.Fprintf(&b, "    prov:startedAtTime \"%s\"^^xsd:dateTime", a.StartTime)
		if a.EndTime != "" {
			fmt.Fprintf(&b, "\n    ; prov:endedAtTime \"%s\"^^xsd:dateTime", a.EndTime)
		}
		fmt.Fprintln(&b, "\n    .")
		fmt.Fprintln(&b)
	}

	for _, ag := range g.Agents() {
		fmt.Fprintf(&b, "ex:%s a prov:Agent ;\n", ag.ID)
		fmt.Fprintf(&b, "    prov:name \"%s\" ;\n", escapeTurtle(ag.Name))
		fmt.Fprintf(&b, "    ex:agentType \"%s\" .\n", escapeTurtle(ag.AgentType))
		fmt.Fprintln(&b)
	}

	for _, u := range g.Usages {
		fmt.Fprintf(&b, "ex:%s prov:used ex:%s ;\n", u.ActivityID, u.EntityID)
		if u.Role != "" {
			fmt.Fprintf(&b, "    prov:hadRole \"%s\" ;\n", escapeTurtle(u.Role))
		}
		fmt.Fprintf(&b, "    prov:atTime \"%s\"^^xsd:dateTime .\n", u.Timestamp)
		fmt.Fprintln(&b)
	}

	for _, gen := range g.Generations {
		fmt.Fprintf(&b, "ex:%s prov:wasGeneratedBy ex:%s ;\n", gen.EntityID, gen.ActivityID)
		if gen.Role != "" {
			fmt.Fprintf(&b, "    prov:hadRole \"%s\" ;\n", escapeTurtle(gen.Role))
		}
		fmt.Fprintf(&b, "    prov:atTime \"%s\"^^xsd:dateTime .\n", gen.Timestamp)
		fmt.Fprintln(&b)
	}

	for _, d := range g.Derivations {
		fmt.Fprintf(&b, "ex:%s prov:wasDerivedFrom ex:%s", d.DerivedEntityID, d.SourceEntityID)
		if d.ActivityID != "" {
			fmt.Fprintln(&b, "")
			fmt.Fprintln(&b, "    ; prov:qualifiedDerivation [")
			fmt.Fprintln(&b, "        a prov:Derivation ;")
			fmt.Fprintf(&b, "        prov:entity ex:%s ;\n", d.SourceEntityID)
			fmt.Fprintf(&b, "        prov:hadActivity ex:%s\n", d.ActivityID)
			fmt.Fprintln(&b, "    ]")
		}
		fmt.Fprintln(&b, "    .")
		fmt.Fprintln(&b)
	}

	for _, a := range g.Associations {
		fmt.Fprintf(&b, "ex:%s prov:wasAssociatedWith ex:%s", a.ActivityID, a.AgentID)
		if a.Role != "" {
			fmt.Fprintf(&b, "\n    ; prov:hadRole \"%s\"", escapeTurtle(a.Role))
		}
		fmt.Fprintln(&b, "\n    .")
		fmt.Fprintln(&b)
	}

	for _, at := range g.Attributions {
		fmt.Fprintf(&b, "ex:%s prov:wasAttributedTo ex:%s .\n", at.EntityID, at.AgentID)
		fmt.Fprintln(&b)
	}

	return b.String()
}

func escapeTurtle(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}

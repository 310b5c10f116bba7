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

package catalog

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var typeNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidTypeName reports whether name matches [A-Za-z_][A-Za-z0-9_]*.
func ValidTypeName(name string) bool {
	return typeNameRe.MatchString(name)
}

// pendingRef records a domain/codomain type reference that must be
// checked, after the whole file has been parsed, against the set of
// declared type names.
type pendingRef struct {
	TypeName string
	FuncName string
	Line     int
}

// Parse turns catalog source text into an indexed Catalog.
//
// Declaration order does not matter for type-reference validity: all
// type names are collected first, and signatures are checked against
// that complete set only after the whole file has been scanned.
func Parse(text string) (*Catalog, error) {
	lines := scan(text)
	c := New()

	var (
		pendingRefs    []pendingRef
		legacyTypeName string // name of the most recently opened bare "type Name" block, "" if none open
	)

	for i := 0; i < len(lines); i++ {
		ln := lines[i]

		switch {
		case strings.HasPrefix(ln.Text, "type "):
			name, typ, isLegacyOpen, err := parseTypeDecl(ln)
			if err != nil {
				return nil, err
			}
			if _, dup := c.Types[name]; dup {
				return nil, &DuplicateTypeName{Name: name, Line: ln.Num}
			}
			c.Types[name] = typ
			if isLegacyOpen {
				legacyTypeName = name
			} else {
				legacyTypeName = ""
			}

		case strings.HasPrefix(ln.Text, "attr "):
			if legacyTypeName == "" {
				return nil, &MalformedImpl{Source: ln.Text, Line: ln.Num}
			}
			key, typeRef, err := parseLegacyAttr(ln)
			if err != nil {
				return nil, err
			}
			c.Types[legacyTypeName].Attributes[key] = typeRef

		case strings.HasPrefix(ln.Text, "fn "):
			legacyTypeName = ""
			block, consumed, err := collectFunctionBlock(lines, i)
			if err != nil {
				return nil, err
			}
			fn, refs, err := parseFunctionBlock(block)
			if err != nil {
				return nil, err
			}
			fn.ID = fmt.Sprintf("%s#%d", fn.Name, len(c.Functions))
			c.Functions = append(c.Functions, fn)
			pendingRefs = append(pendingRefs, refs...)
			i += consumed - 1

		default:
			legacyTypeName = ""
			return nil, &MalformedSignature{Source: ln.Text, Line: ln.Num}
		}
	}

	for _, r := range pendingRefs {
		if !c.HasType(r.TypeName) {
			return nil, &UndeclaredTypeReference{Name: r.TypeName, Func: r.FuncName, Line: r.Line}
		}
	}

	for _, t := range c.Types {
		for _, comp := range t.Components {
			if !c.HasType(comp) {
				return nil, &UndeclaredTypeReference{Name: comp, Func: "type " + t.Name, Line: 0}
			}
		}
	}

	c.Index()
	return c, nil
}

var (
	productRe = regexp.MustCompile(`^type\s+([A-Za-z_][A-Za-z0-9_]*)\s*=\s*(.+)$`)
	atomicRe  = regexp.MustCompile(`^type\s+([A-Za-z_][A-Za-z0-9_]*)\s*(\[.*\])?\s*$`)
	splitXRe  = regexp.MustCompile(`\s*[x×]\s*`)
)

// parseTypeDecl parses a single "type ..." line. isLegacyOpen is true
// when the line is a bare atomic declaration with no inline attribute
// list, meaning subsequent "attr key:type" lines may extend it.
func parseTypeDecl(ln sourceLine) (name string, typ *TypeDefinition, isLegacyOpen bool, err error) {
	eq := strings.Index(ln.Text, "=")
	br := strings.Index(ln.Text, "[")

	isProduct := eq >= 0 && (br < 0 || eq < br)

	if isProduct {
		m := productRe.FindStringSubmatch(ln.Text)
		if m == nil {
			return "", nil, false, &MalformedSignature{Source: ln.Text, Line: ln.Num}
		}
		name = m[1]
		parts := splitXRe.Split(strings.TrimSpace(m[2]), -1)
		comps := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if !ValidTypeName(p) {
				return "", nil, false, &InvalidTypeName{Name: p, Line: ln.Num}
			}
			comps = append(comps, p)
		}
		if len(comps) < 2 {
			return "", nil, false, &MalformedSignature{Source: ln.Text, Line: ln.Num}
		}
		return name, &TypeDefinition{
			Name:       name,
			Attributes: map[string]string{},
			Components: comps,
		}, false, nil
	}

	m := atomicRe.FindStringSubmatch(ln.Text)
	if m == nil {
		return "", nil, false, &MalformedSignature{Source: ln.Text, Line: ln.Num}
	}
	name = m[1]
	if !ValidTypeName(name) {
		return "", nil, false, &InvalidTypeName{Name: name, Line: ln.Num}
	}
	attrs := map[string]string{}
	bracket := strings.TrimSpace(m[2])
	if bracket == "" {
		return name, &TypeDefinition{Name: name, Attributes: attrs}, true, nil
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(bracket, "["), "]")
	for _, pair := range splitTopLevelArgs(inner) {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return "", nil, false, &MalformedSignature{Source: ln.Text, Line: ln.Num}
		}
		attrs[strings.TrimSpace(kv[0])] = unquoteLoose(strings.TrimSpace(kv[1]))
	}
	t := &TypeDefinition{Name: name, Attributes: attrs}
	if d, have := attrs["doc"]; have {
		t.Doc = unquoteLoose(d)
	}
	return name, t, false, nil
}

var legacyAttrRe = regexp.MustCompile(`^attr\s+([A-Za-z_][A-Za-z0-9_]*)\s*:\s*([A-Za-z_][A-Za-z0-9_]*)\s*$`)

func parseLegacyAttr(ln sourceLine) (key, typeName string, err error) {
	m := legacyAttrRe.FindStringSubmatch(ln.Text)
	if m == nil {
		return "", "", &MalformedSignature{Source: ln.Text, Line: ln.Num}
	}
	return m[1], m[2], nil
}

var fnOpenRe = regexp.MustCompile(`^fn\s+([A-Za-z_][A-Za-z0-9_]*)\s*\{\s*$`)

// collectFunctionBlock gathers the lines of a "fn name { ... }" block
// starting at lines[start], returning the block (including the open
// and close lines) and the number of sourceLines consumed.
func collectFunctionBlock(lines []sourceLine, start int) ([]sourceLine, int, error) {
	open := fnOpenRe.FindStringSubmatch(lines[start].Text)
	if open == nil {
		return nil, 0, &MalformedSignature{Source: lines[start].Text, Line: lines[start].Num}
	}
	for j := start + 1; j < len(lines); j++ {
		if lines[j].Text == "}" {
			return lines[start : j+1], j - start + 1, nil
		}
	}
	return nil, 0, &UnterminatedFunctionBlock{Name: open[1], Line: lines[start].Num}
}

var (
	sigRe  = regexp.MustCompile(`^sig\s*:\s*(.+?)\s*->\s*([A-Za-z_][A-Za-z0-9_]*)\s*$`)
	implRe = regexp.MustCompile(`^impl\s*:\s*([A-Za-z_][A-Za-z0-9_]*)\s*\((.*)\)\s*$`)
)

// parseFunctionBlock parses the body of a "fn name { ... }" block
// (block[0] is the opening line, block[len-1] is "}").
func parseFunctionBlock(block []sourceLine) (*FunctionDefinition, []pendingRef, error) {
	open := fnOpenRe.FindStringSubmatch(block[0].Text)
	name := open[1]

	fn := &FunctionDefinition{
		Name:       name,
		Cost:       1,
		Confidence: 1,
	}

	var refs []pendingRef
	haveSig := false

	for _, ln := range block[1 : len(block)-1] {
		switch {
		case strings.HasPrefix(ln.Text, "sig"):
			m := sigRe.FindStringSubmatch(ln.Text)
			if m == nil {
				return nil, nil, &MalformedSignature{Source: ln.Text, Line: ln.Num}
			}
			domain, err := parseDomain(m[1])
			if err != nil {
				return nil, nil, &MalformedSignature{Source: ln.Text, Line: ln.Num}
			}
			if len(domain) == 0 {
				return nil, nil, &EmptyDomain{Name: name, Line: ln.Num}
			}
			fn.Domain = domain
			fn.Codomain = m[2]
			for _, d := range domain {
				if !ValidTypeName(d) {
					return nil, nil, &InvalidTypeName{Name: d, Line: ln.Num}
				}
				refs = append(refs, pendingRef{TypeName: d, FuncName: name, Line: ln.Num})
			}
			refs = append(refs, pendingRef{TypeName: m[2], FuncName: name, Line: ln.Num})
			haveSig = true

		case strings.HasPrefix(ln.Text, "impl"):
			m := implRe.FindStringSubmatch(ln.Text)
			if m == nil {
				return nil, nil, &MalformedImpl{Source: ln.Text, Line: ln.Num}
			}
			impl, err := parseImpl(ImplKind(m[1]), m[2], ln)
			if err != nil {
				return nil, nil, err
			}
			fn.Impl = impl

		case strings.HasPrefix(ln.Text, "cost"):
			v, err := parseNumberField(ln.Text, "cost")
			if err != nil {
				return nil, nil, &MalformedSignature{Source: ln.Text, Line: ln.Num}
			}
			fn.Cost = v

		case strings.HasPrefix(ln.Text, "confidence"):
			v, err := parseNumberField(ln.Text, "confidence")
			if err != nil {
				return nil, nil, &MalformedSignature{Source: ln.Text, Line: ln.Num}
			}
			fn.Confidence = v

		case strings.HasPrefix(ln.Text, "doc"):
			fn.Doc = unquoteLoose(strings.TrimSpace(strings.TrimPrefix(ln.Text, "doc")[1:]))

		case strings.HasPrefix(ln.Text, "inverse_of"):
			fn.InverseOf = strings.TrimSpace(strings.TrimPrefix(ln.Text, "inverse_of")[1:])

		default:
			// Unknown field names are ignored, for forward
			// compatibility.
		}
	}

	if !haveSig {
		return nil, nil, &MalformedSignature{Source: block[0].Text, Line: block[0].Num}
	}

	return fn, refs, nil
}

// parseDomain parses the domain portion of a signature: a single type
// name, a parenthesized comma list, or a bare comma list.
func parseDomain(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	parts := splitTopLevelArgs(s)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func parseNumberField(line, field string) (float64, error) {
	rest := strings.TrimSpace(line[len(field):])
	rest = strings.TrimPrefix(rest, ":")
	return strconv.ParseFloat(strings.TrimSpace(rest), 64)
}

// parseImpl parses the ARG portion of "impl: kind(ARG)" per kind.
func parseImpl(kind ImplKind, arg string, ln sourceLine) (Implementation, error) {
	arg = strings.TrimSpace(arg)
	switch kind {
	case ImplFormula:
		s, err := unquoteStrict(arg)
		if err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, Formula: s}, nil

	case ImplSparql:
		s, err := unquoteStrict(arg)
		if err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, Query: s}, nil

	case ImplRest:
		s, err := unquoteStrict(arg)
		if err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, MethodAndURL: s}, nil

	case ImplBuiltin:
		s, err := unquoteStrict(arg)
		if err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, BuiltinName: s}, nil

	case ImplJSON:
		var schema interface{}
		if err := json.Unmarshal([]byte(arg), &schema); err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, Schema: schema}, nil

	case ImplTemplate:
		parts := splitTopLevelArgs(arg)
		if len(parts) != 2 {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		pattern, err := unquoteStrict(strings.TrimSpace(parts[0]))
		if err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		var rawBindings map[string]string
		if err := json.Unmarshal([]byte(strings.TrimSpace(parts[1])), &rawBindings); err != nil {
			return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
		}
		return Implementation{Kind: kind, Pattern: pattern, Bindings: rawBindings}, nil

	default:
		return Implementation{}, &MalformedImpl{Source: ln.Text, Line: ln.Num}
	}
}

// unquoteStrict requires s to be a double-quoted string and returns
// its contents, processing Go/JSON-style backslash escapes.
func unquoteStrict(s string) (string, error) {
	return strconv.Unquote(s)
}

// unquoteLoose strips a single layer of surrounding double quotes if
// present, without requiring valid escape processing; used for type
// attribute values (including "doc") where we tolerate slightly freer
// text.
func unquoteLoose(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	}
	return s
}

// splitTopLevelArgs splits s on commas that are not nested inside
// (), [], {}, or a quoted string. Used for "(A, B)" domains, "[k=v,
// k=v]" attribute lists, and "pattern, {bindings}" template args.
func splitTopLevelArgs(s string) []string {
	var (
		out    []string
		depth  int
		inStr  bool
		escape bool
		start  int
	)
	for i, r := range s {
		switch {
		case escape:
			escape = false
		case inStr:
			switch r {
			case '\\':
				escape = true
			case '"':
				inStr = false
			}
		default:
			switch r {
			case '"':
				inStr = true
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			case ',':
				if depth == 0 {
					out = append(out, s[start:i])
					start = i + 1
				}
			}
		}
	}
	out = append(out, s[start:])
	return out
}

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

package expr

import (
	"fmt"
	"regexp"
)

// Scope is the name→value environment an expression is evaluated
// against. It is built fresh per invocation and never mutated by
// Eval; nothing in this package reads or writes ambient state outside
// of a Scope value.
type Scope map[string]interface{}

// BuildScope constructs the scope for one function invocation from
// its positional argument values, following these steps:
//
//  1. arg{i} binds to each positional input.
//  2. if an input is a record, its string keys are spread into the
//     scope first, so that positional arg{i} bindings (added after)
//     win on key collision.
//  3. if there is exactly one input, value/input/x all alias it.
//  4. for exactly three inputs, scope1/scope2/scope3 alias arg0/1/2.
func BuildScope(args []interface{}) Scope {
	scope := make(Scope)

	for _, a := range args {
		if rec, ok := a.(map[string]interface{}); ok {
			for k, v := range rec {
				scope[k] = v
			}
		}
	}

	for i, a := range args {
		scope[fmt.Sprintf("arg%d", i)] = a
	}

	if len(args) == 1 {
		scope["value"] = args[0]
		scope["input"] = args[0]
		scope["x"] = args[0]
	}

	if len(args) == 3 {
		scope["scope1"] = args[0]
		scope["scope2"] = args[1]
		scope["scope3"] = args[2]
	}

	return scope
}

var assignmentPrefixRe = regexp.MustCompile(`^\s*[A-Za-z_][A-Za-z0-9_]*\s*=\s*`)

// StripAssignmentPrefix implements the fifth scope-building step: for
// the formula kind, a leading "identifier =" is stripped before
// parsing, and the value of the expression becomes the value of the
// right-hand side. Only one such prefix is ever recognized. A prefix
// ending in "==" is a comparison, not an assignment, and is left
// alone.
func StripAssignmentPrefix(source string) string {
	loc := assignmentPrefixRe.FindStringIndex(source)
	if loc == nil {
		return source
	}
	rest := source[loc[1]:]
	if len(rest) > 0 && rest[0] == '=' {
		return source
	}
	return rest
}

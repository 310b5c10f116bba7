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

var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// EvalTemplate implements string template evaluation: each
// "{{name}}" placeholder in pattern is replaced by the string form of
// evaluating bindings[name] against scope. A placeholder with no
// matching binding is a runtime error, not a silent pass-through.
func EvalTemplate(pattern string, bindings map[string]string, scope Scope) (string, error) {
	var firstErr error
	result := placeholderRe.ReplaceAllStringFunc(pattern, func(match string) string {
		if firstErr != nil {
			return match
		}
		name := placeholderRe.FindStringSubmatch(match)[1]
		source, ok := bindings[name]
		if !ok {
			firstErr = fmt.Errorf("template: unknown placeholder %q", name)
			return match
		}
		v, err := Eval(source, scope)
		if err != nil {
			firstErr = err
			return match
		}
		return stringForm(v)
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

func stringForm(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

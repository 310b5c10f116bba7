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
	"sort"
	"strings"
)

// SyntaxError is raised by Parse when the expression text doesn't
// belong to the restricted sub-language.
type SyntaxError struct {
	Source string
	Pos    int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expr: syntax error at byte %d in %q: %s", e.Pos, e.Source, e.Reason)
}

// EvaluationError is the exported ExpressionEvaluationError of the
// component design: the failing expression, the scope keys visible at
// the time of failure, and the underlying cause.
type EvaluationError struct {
	Source    string
	ScopeKeys []string
	Cause     error
}

func (e *EvaluationError) Error() string {
	keys := make([]string, len(e.ScopeKeys))
	copy(keys, e.ScopeKeys)
	sort.Strings(keys)
	return fmt.Sprintf("expr: evaluating %q with scope {%s}: %v", e.Source, strings.Join(keys, ", "), e.Cause)
}

func (e *EvaluationError) Unwrap() error {
	return e.Cause
}

func newEvalError(source string, scope Scope, cause error) *EvaluationError {
	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	return &EvaluationError{Source: source, ScopeKeys: keys, Cause: cause}
}

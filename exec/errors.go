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

package exec

import "fmt"

// MissingSourceBinding is raised when a leaf's name (a type name or
// source id) has no entry in the Context.
type MissingSourceBinding struct {
	Name string
}

func (e *MissingSourceBinding) Error() string {
	return fmt.Sprintf("exec: missing source binding for %q", e.Name)
}

// UnknownBuiltin is raised when a function's implementation kind has
// no evaluator registered in impl.DefaultEvaluators; Name carries the
// kind. An unknown builtin aggregate name is reported by package
// impl/builtin, not by this type.
type UnknownBuiltin struct {
	Name string
}

func (e *UnknownBuiltin) Error() string {
	return fmt.Sprintf("exec: unknown builtin %q", e.Name)
}

// Error wraps any failure encountered while executing a specific
// function node: an expression evaluation error, a missing source
// binding, an unknown builtin, or an external resolver error.
//
// The first Error terminates the evaluation; there is no retry and no
// partial result.
type Error struct {
	FuncID string
	Expr   string
	Cause  error
}

func (e *Error) Error() string {
	if e.Expr != "" {
		return fmt.Sprintf("exec: function %q evaluating %q: %v", e.FuncID, e.Expr, e.Cause)
	}
	return fmt.Sprintf("exec: function %q: %v", e.FuncID, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

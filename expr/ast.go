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

// Package expr implements a restricted expression sub-language:
// literals, identifiers, member/index access, the usual
// arithmetic/comparison/logical operators, a ternary, and calls to a
// closed whitelist of functions. There is no path from expression
// text to arbitrary host code: Parse produces a static AST over the
// Node types below, and Eval walks it without ever invoking anything
// but the whitelisted builtins.
package expr

// Node is the sealed set of AST node kinds produced by Parse.
type Node interface {
	node()
}

// NumberLit is a literal number, e.g. "3.5".
type NumberLit struct {
	Value float64
}

// StringLit is a literal double- or single-quoted string.
type StringLit struct {
	Value string
}

// BoolLit is a literal "true" or "false".
type BoolLit struct {
	Value bool
}

// Ident is a bare identifier resolved against the scope.
type Ident struct {
	Name string
}

// MemberAccess is "obj.key" or "obj['key']".
type MemberAccess struct {
	Object Node
	Key    string
}

// IndexAccess is "seq[n]" where n is an arbitrary expression.
type IndexAccess struct {
	Object Node
	Index  Node
}

// UnaryOp is "+x", "-x", or "!x".
type UnaryOp struct {
	Op      string
	Operand Node
}

// BinaryOp covers arithmetic, comparison, and logical operators.
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

// Ternary is "cond ? then : else".
type Ternary struct {
	Cond Node
	Then Node
	Else Node
}

// Call is an invocation of a whitelisted function by name. The callee
// is always a bare identifier: there is no first-class function value
// in this language, so "in call position" is syntactically exactly
// this node.
type Call struct {
	Name string
	Args []Node
}

func (*NumberLit) node()    {}
func (*StringLit) node()    {}
func (*BoolLit) node()      {}
func (*Ident) node()        {}
func (*MemberAccess) node() {}
func (*IndexAccess) node()  {}
func (*UnaryOp) node()      {}
func (*BinaryOp) node()     {}
func (*Ternary) node()      {}
func (*Call) node()         {}

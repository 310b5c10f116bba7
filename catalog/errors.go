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

import "fmt"

// These are user errors (bad catalog source), not internal errors.
// Each carries the line number at fault.

// DuplicateTypeName occurs when a type name is declared twice.
type DuplicateTypeName struct {
	Name string
	Line int
}

func (e *DuplicateTypeName) Error() string {
	return fmt.Sprintf("line %d: type %q declared twice", e.Line, e.Name)
}

// UndeclaredTypeReference occurs when a signature references a type
// name that was never declared anywhere in the file.
//
// Reported after the whole file is parsed, so declaration order
// doesn't matter.
type UndeclaredTypeReference struct {
	Name string
	Func string
	Line int
}

func (e *UndeclaredTypeReference) Error() string {
	return fmt.Sprintf("line %d: function %q references undeclared type %q", e.Line, e.Func, e.Name)
}

// MalformedSignature occurs when a "sig:" field can't be parsed.
type MalformedSignature struct {
	Source string
	Line   int
}

func (e *MalformedSignature) Error() string {
	return fmt.Sprintf("line %d: malformed signature %q", e.Line, e.Source)
}

// MalformedImpl occurs when an "impl:" field can't be parsed.
type MalformedImpl struct {
	Source string
	Line   int
}

func (e *MalformedImpl) Error() string {
	return fmt.Sprintf("line %d: malformed impl %q", e.Line, e.Source)
}

// UnterminatedFunctionBlock occurs when a "fn name {" is never closed
// by a matching "}".
type UnterminatedFunctionBlock struct {
	Name string
	Line int
}

func (e *UnterminatedFunctionBlock) Error() string {
	return fmt.Sprintf("line %d: unterminated function block %q", e.Line, e.Name)
}

// InvalidTypeName occurs when a declared or referenced type name
// doesn't match [A-Za-z_][A-Za-z0-9_]*.
type InvalidTypeName struct {
	Name string
	Line int
}

func (e *InvalidTypeName) Error() string {
	return fmt.Sprintf("line %d: invalid type name %q", e.Line, e.Name)
}

// EmptyDomain occurs when a function declares a zero-length domain.
type EmptyDomain struct {
	Name string
	Line int
}

func (e *EmptyDomain) Error() string {
	return fmt.Sprintf("line %d: function %q has an empty domain", e.Line, e.Name)
}

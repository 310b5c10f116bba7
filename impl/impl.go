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

// Package impl is a registry of one Evaluator per catalog.ImplKind,
// self-registered into DefaultEvaluators by each subpackage's init().
// Package exec looks up a kind's Evaluator rather than hard-coding the
// implementation-kind switch itself.
package impl

import "github.com/typesynth/typesynth/catalog"

// Evaluator compiles and runs one catalog.ImplKind. Compile is called
// once per catalog.Implementation value and should do whatever
// up-front work (parsing, mostly) makes repeated Exec calls cheap;
// Exec is called once per function invocation with the already
// solved/executed argument values in domain order.
type Evaluator interface {
	Compile(impl catalog.Implementation) (interface{}, error)
	Exec(compiled interface{}, args []interface{}) (interface{}, error)
}

// DefaultEvaluators is populated by the init() function of each
// impl/* subpackage, keyed by the catalog.ImplKind it handles.
var DefaultEvaluators = make(map[catalog.ImplKind]Evaluator)

// Register adds an Evaluator to DefaultEvaluators under kind. Called
// from subpackage init() functions; panics on a duplicate
// registration since that can only be a programming error.
func Register(kind catalog.ImplKind, e Evaluator) {
	if _, exists := DefaultEvaluators[kind]; exists {
		panic("impl: Evaluator already registered for kind " + string(kind))
	}
	DefaultEvaluators[kind] = e
}

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

// Package exec walks a solve.SolutionNode against a concrete
// Context, dispatching on implementation kind to produce a final
// value.
package exec

// Context is a read-only mapping from name (a type name, for tree
// solutions, or a source id, for DAG solutions) to a runtime value.
// A single Context is owned by one Execute call and is never mutated
// during evaluation.
type Context map[string]interface{}

// Value is documentation-only shorthand for the runtime value kinds
// Context and expression evaluation traffic in: float64, string,
// bool, []interface{} (ordered tuple), or map[string]interface{}
// (string-keyed record).
type Value = interface{}

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

// Package jsontemplate implements impl.Evaluator for catalog.ImplJSON:
// a structured literal whose string leaves are expr expressions.
package jsontemplate

import (
	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/expr"
	"github.com/typesynth/typesynth/impl"
)

func init() {
	impl.Register(catalog.ImplJSON, Evaluator{})
}

// Evaluator has nothing worth precompiling: the schema tree is walked
// fresh against each call's scope, since string leaves may evaluate
// differently depending on which keys are present in scope.
type Evaluator struct{}

func (Evaluator) Compile(im catalog.Implementation) (interface{}, error) {
	return im.Schema, nil
}

func (Evaluator) Exec(compiled interface{}, args []interface{}) (interface{}, error) {
	scope := expr.BuildScope(args)
	return expr.EvalJSONTemplate(compiled, scope)
}

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

// Package stringtemplate implements impl.Evaluator for
// catalog.ImplTemplate: a {{name}}-placeholder string filled in from
// a bindings map of expr expressions.
package stringtemplate

import (
	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/expr"
	"github.com/typesynth/typesynth/impl"
)

func init() {
	impl.Register(catalog.ImplTemplate, Evaluator{})
}

type Evaluator struct{}

type compiled struct {
	pattern  string
	bindings map[string]string
}

func (Evaluator) Compile(im catalog.Implementation) (interface{}, error) {
	return compiled{pattern: im.Pattern, bindings: im.Bindings}, nil
}

func (Evaluator) Exec(c interface{}, args []interface{}) (interface{}, error) {
	cc := c.(compiled)
	scope := expr.BuildScope(args)
	return expr.EvalTemplate(cc.pattern, cc.bindings, scope)
}

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

// Package formula implements impl.Evaluator for catalog.ImplFormula,
// evaluating the restricted expression language of package expr.
package formula

import (
	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/expr"
	"github.com/typesynth/typesynth/impl"
)

func init() {
	impl.Register(catalog.ImplFormula, Evaluator{})
}

// Evaluator compiles a formula's source once into an AST, the same
// compile-then-exec split interpreters.ecmascript draws between goja's
// Compile and Program.Run.
type Evaluator struct{}

type compiled struct {
	source string
	ast    expr.Node
}

func (Evaluator) Compile(im catalog.Implementation) (interface{}, error) {
	source := expr.StripAssignmentPrefix(im.Formula)
	ast, err := expr.Parse(source)
	if err != nil {
		return nil, err
	}
	return compiled{source: source, ast: ast}, nil
}

func (Evaluator) Exec(c interface{}, args []interface{}) (interface{}, error) {
	cc := c.(compiled)
	scope := expr.BuildScope(args)
	return expr.EvalAST(cc.ast, cc.source, scope)
}

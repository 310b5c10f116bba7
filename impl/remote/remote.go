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

// Package remote implements impl.Evaluator for catalog.ImplSparql and
// catalog.ImplRest.
//
// Unlike the other four kinds, a real sparql/rest call needs state
// the Evaluator interface doesn't carry: a Context binding that might
// pre-empt the call entirely, and an exec.ExternalResolver to delegate
// to when one is registered. Package exec's engine therefore does not
// call this package's Exec on the normal path — it resolves those two
// kinds itself, the same way core's action runner handles some action
// sources inline rather than through an Interpreter. This package
// still registers the documented deterministic fallback, both so
// DefaultEvaluators stays total over every catalog.ImplKind and so
// callers outside exec (this package's tests) get the same mock value exec
// falls back to without depending on the exec package.
package remote

import (
	"github.com/typesynth/typesynth/catalog"
	"github.com/typesynth/typesynth/impl"
)

func init() {
	impl.Register(catalog.ImplSparql, Evaluator{})
	impl.Register(catalog.ImplRest, Evaluator{})
}

// MockValue is the deterministic stand-in returned for a sparql/rest
// call that has no Context binding and no registered resolver.
const MockValue = float64(100)

type Evaluator struct{}

func (Evaluator) Compile(im catalog.Implementation) (interface{}, error) {
	if im.Kind == catalog.ImplSparql {
		return im.Query, nil
	}
	return im.MethodAndURL, nil
}

func (Evaluator) Exec(compiled interface{}, args []interface{}) (interface{}, error) {
	return MockValue, nil
}

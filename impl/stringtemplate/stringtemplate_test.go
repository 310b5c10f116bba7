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

package stringtemplate

import (
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestEvaluatorCompileExec(t *testing.T) {
	var e Evaluator
	im := catalog.Implementation{
		Kind:     catalog.ImplTemplate,
		Pattern:  "Hello, {{name}}! You are {{age}}.",
		Bindings: map[string]string{"name": "arg0", "age": "arg1"},
	}
	compiled, err := e.Compile(im)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := e.Exec(compiled, []interface{}{"Ada", float64(36)})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	if v.(string) != "Hello, Ada! You are 36." {
		t.Fatalf("got %q", v)
	}
}

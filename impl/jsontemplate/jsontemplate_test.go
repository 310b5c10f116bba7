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

package jsontemplate

import (
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

func TestEvaluatorCompileExec(t *testing.T) {
	var e Evaluator
	schema := map[string]interface{}{"x": "arg0", "y": "arg1 * 2", "flag": true}
	compiled, err := e.Compile(catalog.Implementation{Kind: catalog.ImplJSON, Schema: schema})
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	v, err := e.Exec(compiled, []interface{}{float64(3), float64(4)})
	if err != nil {
		t.Fatalf("Exec: %v", err)
	}
	out := v.(map[string]interface{})
	if out["x"].(float64) != 3 || out["y"].(float64) != 8 || out["flag"].(bool) != true {
		t.Fatalf("got %+v", out)
	}
}

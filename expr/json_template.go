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

package expr

// EvalJSONTemplate walks schema recursively, implementing JSON
// template evaluation: a string leaf is evaluated as an expression
// against scope and replaced by its result; every other leaf (number,
// bool, nil, nested object, array) is preserved verbatim; objects and
// arrays are rebuilt with evaluated children.
func EvalJSONTemplate(schema interface{}, scope Scope) (interface{}, error) {
	switch t := schema.(type) {
	case string:
		return Eval(t, scope)
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, v := range t {
			ev, err := EvalJSONTemplate(v, scope)
			if err != nil {
				return nil, err
			}
			out[k] = ev
		}
		return out, nil
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, v := range t {
			ev, err := EvalJSONTemplate(v, scope)
			if err != nil {
				return nil, err
			}
			out[i] = ev
		}
		return out, nil
	default:
		return t, nil
	}
}

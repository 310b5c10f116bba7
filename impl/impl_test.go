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

package impl

import (
	"testing"

	"github.com/typesynth/typesynth/catalog"
)

type fakeEvaluator struct{}

func (fakeEvaluator) Compile(catalog.Implementation) (interface{}, error) { return nil, nil }
func (fakeEvaluator) Exec(interface{}, []interface{}) (interface{}, error) {
	return "fake", nil
}

func TestRegisterPanicsOnDuplicateKind(t *testing.T) {
	const kind = catalog.ImplKind("__test_only__")
	Register(kind, fakeEvaluator{})
	defer delete(DefaultEvaluators, kind)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Register to panic on a duplicate kind")
		}
	}()
	Register(kind, fakeEvaluator{})
}

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

package exec

import (
	"context"

	"github.com/typesynth/typesynth/catalog"
)

// ExternalResolver delegates sparql/rest implementations that aren't
// already bound in the Context. Package transport's httprest, mqtt,
// and ws subpackages each provide one; without a resolver, the engine
// falls back to a deterministic mock value.
//
// The bool result lets a resolver decline a call (returning false,
// nil) rather than error, falling through to the mock value exactly
// as if no resolver had been registered at all — useful for a
// resolver that only handles a subset of function names.
type ExternalResolver interface {
	Resolve(ctx context.Context, fn *catalog.FunctionDefinition, args []interface{}) (interface{}, bool, error)
}

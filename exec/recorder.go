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

import "github.com/typesynth/typesynth/solve"

// Activity is an opaque handle to one function invocation, minted by
// BeginActivity and threaded back through RecordUsed and EndActivity.
// Package provenance's Recorder implementation returns the activity id
// string as this value; the engine never inspects it.
type Activity interface{}

// Recorder is the optional provenance hook: package provenance's
// Recorder implements this interface. The engine is unaware of
// entities, usages, or generations as concepts — it only calls these
// three methods in order, once per non-leaf node evaluated.
//
// A nil Recorder disables provenance recording entirely; Execute
// treats it as a no-op rather than requiring a null-object
// implementation from callers.
type Recorder interface {
	// BeginActivity records an Activity carrying funcID and
	// signature plus a start timestamp, before the function's
	// children are evaluated.
	BeginActivity(funcID, signature string) Activity

	// RecordUsed records an Entity for a child's value (if not
	// already recorded by identity) and a used(activity, entity,
	// role) edge, once per child, after that child has been
	// evaluated.
	RecordUsed(act Activity, child *solve.SolutionNode, value interface{}, argIndex int)

	// EndActivity records an Entity for output, a generated(output,
	// activity, role="output") edge, and a derivedFrom(output,
	// child_i, activity) edge per child, then closes the activity
	// with an end timestamp.
	EndActivity(act Activity, output interface{}, children []*solve.SolutionNode)
}

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

package solve

import "fmt"

// UnknownGoalType is raised when the requested goal type isn't
// declared in the catalog. Absence of a *plan* is never an error
// (that's an empty result); only an invalid goal/source name is.
type UnknownGoalType struct {
	Name string
}

func (e *UnknownGoalType) Error() string {
	return fmt.Sprintf("solve: unknown goal type %q", e.Name)
}

// UnknownSourceType is raised when a named source type isn't declared
// in the catalog.
type UnknownSourceType struct {
	Name string
}

func (e *UnknownSourceType) Error() string {
	return fmt.Sprintf("solve: unknown source type %q", e.Name)
}

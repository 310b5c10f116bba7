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

import (
	"math"
	"sort"
)

// costTolerance is the total order's cost-comparison tolerance:
// candidates within this margin are treated as cost-tied and broken
// by confidence, then by function id.
const costTolerance = 1e-3

// rank sorts candidates in place by total order: cost ascending
// (within costTolerance), then confidence descending, then a stable
// tiebreak over function ids.
func rank(candidates []*SolutionNode) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
}

func less(a, b *SolutionNode) bool {
	if math.Abs(a.Cost-b.Cost) > costTolerance {
		return a.Cost < b.Cost
	}
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	return a.funcID() < b.funcID()
}

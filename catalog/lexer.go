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

package catalog

import "strings"

// sourceLine is one non-blank, non-comment line of catalog source,
// remembering its 1-based position in the original text so that
// parser errors can report line numbers.
type sourceLine struct {
	Num  int
	Text string
}

// scan strips comments and blank lines from raw catalog text, leaving
// an ordered list of sourceLines for the parser to consume.
//
// A line is a comment iff, after trimming leading whitespace, it
// begins with '#'. Trailing/inline comments are not recognized: only
// whole comment lines are, per the catalog language's grammar.
func scan(text string) []sourceLine {
	raw := strings.Split(text, "\n")
	out := make([]sourceLine, 0, len(raw))
	for i, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}
		out = append(out, sourceLine{Num: i + 1, Text: trimmed})
	}
	return out
}

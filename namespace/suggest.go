/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package namespace

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns up to n candidates closest to name by edit distance,
// nearest first. Comparison is case-insensitive, and candidates farther than
// a third of the name's length (minimum 2) are dropped.
func Suggest(name string, candidates []string, n int) []string {
	if n <= 0 || name == "" || len(candidates) == 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}

	lname := strings.ToLower(name)
	var hits []scored
	for _, c := range candidates {
		if c == name {
			continue
		}
		d := levenshtein.ComputeDistance(lname, strings.ToLower(c))
		if d <= limit {
			hits = append(hits, scored{name: c, dist: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}
		return strings.Compare(a.name, b.name)
	})

	if len(hits) > n {
		hits = hits[:n]
	}
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}
	return out
}

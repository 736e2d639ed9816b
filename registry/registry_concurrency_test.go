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

package registry_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/config"
	"dirpx.dev/nsx/oracle"
	"dirpx.dev/nsx/registry"
)

// TestConcurrentReads verifies that a built table is race-free under
// concurrent Lookup/Names/Submodules without any locking.
func TestConcurrentReads(t *testing.T) {
	var groups []apis.Group
	for i := 0; i < 10; i++ {
		g := apis.Group{Submodule: fmt.Sprintf("sub%d", i)}
		for j := 0; j < 10; j++ {
			g.Symbols = append(g.Symbols, fmt.Sprintf("S%d_%d", i, j))
		}
		if i%2 == 1 {
			g.Backend = "gpu"
		}
		groups = append(groups, g)
	}
	tbl, err := registry.Build(config.DefaultConfig(), apis.Declaration{Groups: groups},
		oracle.Static(map[apis.Backend]bool{"gpu": true}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				name := fmt.Sprintf("S%d_%d", (i+id)%10, i%10)
				d, ok := tbl.Lookup(name)
				if !ok || d.Submodule != fmt.Sprintf("sub%d", (i+id)%10) {
					t.Errorf("Lookup(%s) = (%+v, %v)", name, d, ok)
					return
				}
				_ = tbl.Names()
				_ = tbl.Submodules()
			}
		}(w)
	}
	wg.Wait()

	if tbl.Count() != 100 {
		t.Fatalf("Count() = %d, want 100", tbl.Count())
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Table = (*registry.Table)(nil)

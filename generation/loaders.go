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

package generation

import (
	"sync"
	"sync/atomic"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/importer"
	"dirpx.dev/nsx/strategy"
)

func init() {
	Register(importer.Default())
}

// loads counts successful loader runs per submodule.
var loads sync.Map // map[string]*atomic.Int64

// handwritten holds submodules whose handles are written out by hand
// rather than derived from the declaration.
var handwritten = map[string]apis.Loader{
	"configuration_utils": loadConfigurationUtils,
}

// Register adds a loader for every generation submodule to l.
func Register(l *importer.Loaders) {
	for _, g := range groups {
		load, ok := handwritten[g.Submodule]
		if !ok {
			load = loader(g)
		}
		l.Register(g.Submodule, counted(g.Submodule, load))
	}
}

// Importer returns a private loader table holding only the generation
// submodules.
func Importer() *importer.Loaders {
	l := importer.New()
	Register(l)
	return l
}

// Loads reports how many times submodule has been loaded in this process.
func Loads(submodule string) int64 {
	if c, ok := loads.Load(submodule); ok {
		return c.(*atomic.Int64).Load()
	}
	return 0
}

// counted wraps load so successful runs show up in Loads.
func counted(submodule string, load apis.Loader) apis.Loader {
	return func() (any, error) {
		h, err := load()
		if err != nil {
			return nil, err
		}
		c, _ := loads.LoadOrStore(submodule, new(atomic.Int64))
		c.(*atomic.Int64).Add(1)
		return h, nil
	}
}

// loader builds the bindings of g on every call.
func loader(g apis.Group) apis.Loader {
	return func() (any, error) {
		b := make(strategy.Bindings, len(g.Symbols))
		for _, s := range g.Symbols {
			b[s] = &Export{Name: s, Submodule: g.Submodule, Backend: g.Backend, Kind: kindOf(s)}
		}
		return b, nil
	}
}

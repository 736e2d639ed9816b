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

package nsx

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/builder"
	"dirpx.dev/nsx/config"
	nsxerrors "dirpx.dev/nsx/errors"
	"dirpx.dev/nsx/oracle"
)

// ---------------------- Test doubles (mocks) ----------------------

// countingImporter returns a fresh bindings map per import and counts calls.
type countingImporter struct {
	calls atomic.Int32
	fail  atomic.Bool
}

func (c *countingImporter) Import(sub string) (any, error) {
	c.calls.Add(1)
	if c.fail.Load() {
		return nil, errors.New("backend exploded")
	}
	switch sub {
	case "core":
		return map[string]any{"Foo": &struct{ n int }{1}, "Bar": &struct{ n int }{2}}, nil
	case "gpu_ext":
		return map[string]any{"Baz": &struct{ n int }{3}}, nil
	}
	return nil, errors.New("unknown submodule")
}

// mockBuilder wraps the default builder and records what it was handed.
type mockBuilder struct {
	mu       sync.Mutex
	inner    apis.Builder
	tables   int
	lastPrev apis.Namespace
	fail     error
}

func newMockBuilder() *mockBuilder {
	return &mockBuilder{inner: builder.New()}
}

func (b *mockBuilder) BuildTable(cfg apis.Config, decl apis.Declaration, o apis.Oracle) (apis.Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.fail != nil {
		return nil, b.fail
	}
	b.tables++
	return b.inner.BuildTable(cfg, decl, o)
}

func (b *mockBuilder) BuildNamespace(cfg apis.Config, name string, t apis.Table, imp apis.Importer, prev apis.Namespace) (apis.Namespace, error) {
	b.mu.Lock()
	b.lastPrev = prev
	b.mu.Unlock()
	return b.inner.BuildNamespace(cfg, name, t, imp, prev)
}

func demoDecl() apis.Declaration {
	return apis.Declaration{
		Name: "demo",
		Groups: []apis.Group{
			{Submodule: "core", Symbols: []string{"Foo", "Bar"}},
			{Submodule: "gpu_ext", Symbols: []string{"Baz"}, Backend: "gpu"},
		},
	}
}

// reset installs a clean snapshot using b and imp.
func reset(tb testing.TB, b apis.Builder, imp apis.Importer, gpu bool) {
	tb.Helper()
	cfg := config.DefaultConfig()
	decl := demoDecl()
	if err := SetAll(&cfg, &decl, oracle.Static(map[apis.Backend]bool{"gpu": gpu}), imp, b); err != nil {
		tb.Fatalf("SetAll: %v", err)
	}
}

// ---------------------- Tests ----------------------

func TestInitialSnapshotIsEmpty(t *testing.T) {
	if Namespace() == nil || Table() == nil {
		t.Fatal("initial snapshot must be populated")
	}
}

func TestInstall_PublishesNamespace(t *testing.T) {
	imp := &countingImporter{}
	reset(t, newMockBuilder(), imp, false)

	ns, err := Install(demoDecl(), oracle.Static(map[apis.Backend]bool{"gpu": true}), nil)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if ns != Namespace() {
		t.Fatal("Install must return the published namespace")
	}
	if !Has("Baz") {
		t.Fatal("Baz must be exported once gpu is available")
	}
	if got := Names(); len(got) != 3 {
		t.Fatalf("Names = %v", got)
	}
	if c := imp.calls.Load(); c != 0 {
		t.Fatalf("installing must not import, got %d imports", c)
	}
	if Declaration().Name != "demo" {
		t.Fatalf("Declaration = %+v", Declaration())
	}
}

func TestGet_Idempotent(t *testing.T) {
	imp := &countingImporter{}
	reset(t, newMockBuilder(), imp, true)

	a, err := Get("Foo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	b, err := Get("Foo")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if a != b {
		t.Fatal("second Get must return the cached value")
	}
	if c := imp.calls.Load(); c != 1 {
		t.Fatalf("imports = %d, want 1", c)
	}
	if _, err := Get("DoesNotExist"); !nsxerrors.IsUnknownSymbol(err) {
		t.Fatalf("want unknown symbol, got %v", err)
	}
}

func TestSetOracle_ReconsultsAndAdoptsHandles(t *testing.T) {
	imp := &countingImporter{}
	b := newMockBuilder()
	reset(t, b, imp, false)

	if Has("Baz") {
		t.Fatal("Baz must be absent without gpu")
	}
	foo, err := Get("Foo")
	if err != nil {
		t.Fatalf("Get(Foo): %v", err)
	}

	if err := SetOracle(oracle.Static(map[apis.Backend]bool{"gpu": true})); err != nil {
		t.Fatalf("SetOracle: %v", err)
	}
	if !Has("Baz") {
		t.Fatal("Baz must appear after the oracle changes")
	}
	if b.lastPrev == nil {
		t.Fatal("builder must be handed the previous namespace")
	}
	again, err := Get("Foo")
	if err != nil {
		t.Fatalf("Get(Foo): %v", err)
	}
	if again != foo {
		t.Fatal("Foo should resolve from the adopted handle to the same value")
	}
	if c := imp.calls.Load(); c != 1 {
		t.Fatalf("imports = %d, want 1", c)
	}
}

func TestSetImporter_DropsHandles(t *testing.T) {
	first := &countingImporter{}
	b := newMockBuilder()
	reset(t, b, first, true)
	if _, err := Get("Foo"); err != nil {
		t.Fatalf("Get: %v", err)
	}

	second := &countingImporter{}
	if err := SetImporter(second); err != nil {
		t.Fatalf("SetImporter: %v", err)
	}
	if b.lastPrev != nil {
		t.Fatal("handles from another importer must not be adopted")
	}
	if _, err := Get("Foo"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if c := second.calls.Load(); c != 1 {
		t.Fatalf("second importer calls = %d, want 1", c)
	}
	if Importer() != apis.Importer(second) {
		t.Fatal("Importer() must return the new importer")
	}
}

func TestNilSettersAreIgnored(t *testing.T) {
	reset(t, newMockBuilder(), &countingImporter{}, true)
	before := Namespace()
	if err := SetOracle(nil); err != nil {
		t.Fatal(err)
	}
	if err := SetImporter(nil); err != nil {
		t.Fatal(err)
	}
	if err := SetBuilder(nil); err != nil {
		t.Fatal(err)
	}
	if Namespace() != before {
		t.Fatal("nil setters must not republish")
	}
}

func TestFailedRebuildKeepsSnapshot(t *testing.T) {
	b := newMockBuilder()
	reset(t, b, &countingImporter{}, true)
	before := Namespace()

	boom := errors.New("boom")
	b.mu.Lock()
	b.fail = boom
	b.mu.Unlock()

	if err := Rebuild(); !errors.Is(err, boom) {
		t.Fatalf("Rebuild err = %v, want boom", err)
	}
	if Namespace() != before {
		t.Fatal("failed rebuild must keep the previous snapshot")
	}

	bad := demoDecl()
	bad.Groups[1].Symbols = []string{"Foo"}
	b.mu.Lock()
	b.fail = nil
	b.mu.Unlock()
	if _, err := Install(bad, nil, nil); !nsxerrors.IsCollision(err) {
		t.Fatalf("Install err = %v, want collision", err)
	}
	if Namespace() != before {
		t.Fatal("failed install must keep the previous snapshot")
	}
}

func TestSetConfig_EagerSurfacesImportFailure(t *testing.T) {
	imp := &countingImporter{}
	reset(t, newMockBuilder(), imp, true)
	imp.fail.Store(true)

	err := SetConfig(config.NewConfig(config.WithEager(true)))
	if !nsxerrors.IsBackendImport(err) {
		t.Fatalf("want backend import error, got %v", err)
	}
	if Config().Mode != apis.ModeLazy {
		t.Fatal("config must not change when the rebuild fails")
	}

	imp.fail.Store(false)
	if err := SetConfig(config.NewConfig(config.WithEager(true))); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}
	if Config().Mode != apis.ModeEager {
		t.Fatal("eager mode not published")
	}
}

func TestSetBuilder_Rebuilds(t *testing.T) {
	reset(t, newMockBuilder(), &countingImporter{}, true)
	b := newMockBuilder()
	if err := SetBuilder(b); err != nil {
		t.Fatalf("SetBuilder: %v", err)
	}
	if Builder() != apis.Builder(b) || b.tables != 1 {
		t.Fatalf("builder not used: tables=%d", b.tables)
	}
	if Oracle() == nil {
		t.Fatal("oracle must be kept")
	}
}

func TestGet_Concurrent_With_SetOracle(t *testing.T) {
	imp := &countingImporter{}
	reset(t, newMockBuilder(), imp, true)
	if _, err := Get("Foo"); err != nil {
		t.Fatalf("Get(Foo): %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if _, err := Get("Foo"); err != nil {
					t.Errorf("Get(Foo): %v", err)
					return
				}
				_ = Has("Baz")
				_ = Names()
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			if err := SetOracle(oracle.Static(map[apis.Backend]bool{"gpu": i%2 == 0})); err != nil {
				t.Errorf("SetOracle: %v", err)
			}
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done

	// Rebuilds adopt the core handle, so it is imported once.
	if c := imp.calls.Load(); c != 1 {
		t.Fatalf("imports = %d, want 1", c)
	}
}

func TestVersionInfo(t *testing.T) {
	v := GetVersionInfo()
	if v.Version == "" || v.GoVersion == "" || v.Platform == "" {
		t.Fatalf("incomplete version info: %+v", v)
	}
	if v.String() == "" {
		t.Fatal("empty version string")
	}
}

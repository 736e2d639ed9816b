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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"slices"
	"sync"
	"testing"

	"dirpx.dev/nsx/apis"
	uref "dirpx.dev/nsx/utils/reflect"
)

// Local test types.
type A struct {
	Name    string
	Limit   int
	private bool
}

func (A) Describe() string   { return "A" }
func (a *A) Rename(n string) { a.Name = n }

// cfg returns a convenient baseline Config for tests.
func cfg(opts ...func(*apis.Config)) apis.Config {
	c := apis.Config{MaxUnwrap: 8}
	for _, o := range opts {
		o(&c)
	}
	return c
}

func TestNormalize_Unwrap(t *testing.T) {
	a := A{Name: "x"}
	pa := &a
	ppa := &pa
	var iface any = pa

	cases := []struct {
		name string
		val  reflect.Value
	}{
		{"plain", reflect.ValueOf(a)},
		{"ptr", reflect.ValueOf(pa)},
		{"ptr_ptr", reflect.ValueOf(ppa)},
		{"iface_field", reflect.ValueOf(&iface).Elem()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.val, cfg())
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.val.Type(), err)
			}
			if got.Type() != reflect.TypeOf(A{}) {
				t.Fatalf("Normalize(%v) = %v, want A", tc.val.Type(), got.Type())
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	var nilPtr *A
	cases := []struct {
		name string
		val  reflect.Value
		want error
	}{
		{"invalid", reflect.Value{}, uref.ErrReflectNilValue},
		{"nil_ptr", reflect.ValueOf(nilPtr), uref.ErrReflectNilValue},
		{"map", reflect.ValueOf(map[string]any{}), uref.ErrReflectNotStruct},
		{"int", reflect.ValueOf(3), uref.ErrReflectNotStruct},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uref.Normalize(tc.val, cfg()); !errors.Is(err, tc.want) {
				t.Fatalf("Normalize err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestNormalize_MaxUnwrap(t *testing.T) {
	a := &A{}
	pa := &a
	ppa := &pa // ***A

	if _, err := uref.Normalize(reflect.ValueOf(ppa), cfg(func(c *apis.Config) { c.MaxUnwrap = 2 })); !errors.Is(err, uref.ErrReflectTooDeep) {
		t.Fatalf("MaxUnwrap=2 on ***A: err = %v, want ErrReflectTooDeep", err)
	}
	if _, err := uref.Normalize(reflect.ValueOf(ppa), cfg(func(c *apis.Config) { c.MaxUnwrap = 3 })); err != nil {
		t.Fatalf("MaxUnwrap=3 on ***A: %v", err)
	}
	// Zero falls back to the default depth.
	if _, err := uref.Normalize(reflect.ValueOf(ppa), cfg(func(c *apis.Config) { c.MaxUnwrap = 0 })); err != nil {
		t.Fatalf("MaxUnwrap=0 on ***A: %v", err)
	}
}

func TestMember(t *testing.T) {
	a := &A{Name: "beam", Limit: 4}

	if v, ok := uref.Member(a, "Name", cfg()); !ok || v != "beam" {
		t.Fatalf("Member(Name) = (%v, %v)", v, ok)
	}
	if v, ok := uref.Member(*a, "Limit", cfg()); !ok || v != 4 {
		t.Fatalf("Member(Limit) = (%v, %v)", v, ok)
	}
	v, ok := uref.Member(*a, "Describe", cfg())
	if !ok {
		t.Fatalf("Member(Describe) missing")
	}
	if fn, _ := v.(func() string); fn == nil || fn() != "A" {
		t.Fatalf("Member(Describe) = %T", v)
	}
	// Pointer-receiver methods are only reachable through a pointer.
	if _, ok := uref.Member(a, "Rename", cfg()); !ok {
		t.Fatalf("Member(Rename) via pointer missing")
	}
	if _, ok := uref.Member(*a, "Rename", cfg()); ok {
		t.Fatalf("Member(Rename) via value should be absent")
	}

	for _, sym := range []string{"private", "Missing", ""} {
		if _, ok := uref.Member(a, sym, cfg()); ok {
			t.Fatalf("Member(%q) ok, want absent", sym)
		}
	}
	if _, ok := uref.Member(nil, "Name", cfg()); ok {
		t.Fatalf("Member(nil) ok")
	}
}

func TestMembers(t *testing.T) {
	got := uref.Members(&A{}, cfg())
	want := []string{"Name", "Limit", "Describe", "Rename"}
	slices.Sort(got)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("Members = %v, want %v", got, want)
	}
	if uref.Members(42, cfg()) != nil {
		t.Fatalf("Members(int) should be nil")
	}
}

func TestMember_Concurrent(t *testing.T) {
	a := &A{Name: "x"}
	var wg sync.WaitGroup
	workers := runtime.GOMAXPROCS(0) * 4
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if v, ok := uref.Member(a, "Name", cfg()); !ok || v != "x" {
					t.Errorf("Member(Name) = (%v, %v)", v, ok)
					return
				}
			}
		}()
	}
	wg.Wait()
}

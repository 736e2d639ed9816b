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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/nsx/apis"
	"dirpx.dev/nsx/config"
)

var (
	// ErrReflectNilValue is returned when an invalid or nil value is provided.
	ErrReflectNilValue = errors.New("reflect: nil value provided")
	// ErrReflectNotStruct indicates that the value (after unwrapping pointers
	// and interfaces) is not a struct.
	ErrReflectNotStruct = errors.New("reflect: value is not a struct")
	// ErrReflectTooDeep indicates that MaxUnwrap was exhausted.
	ErrReflectTooDeep = errors.New("reflect: unwrap depth exceeded")
)

// Normalize unwraps pointers and interfaces according to cfg.MaxUnwrap and
// returns the struct value underneath, or an error if there is none.
//
// Unwrapping policy:
//   - ptr/interface -> Elem(); a nil pointer or interface is an error.
//   - struct        -> returned as is.
//   - anything else -> ErrReflectNotStruct.
//
// If MaxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(v reflect.Value, cfg apis.Config) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, ErrReflectNilValue
	}
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	for i := 0; i <= maxUnwrap; i++ {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}, ErrReflectNilValue
			}
			if i == maxUnwrap {
				return reflect.Value{}, ErrReflectTooDeep
			}
			v = v.Elem()

		case reflect.Struct:
			return v, nil

		default:
			return reflect.Value{}, ErrReflectNotStruct
		}
	}
	return reflect.Value{}, ErrReflectTooDeep
}

// Member returns the exported field or method of handle named symbol.
//
// Methods are looked up on the outermost addressable form first so that
// pointer-receiver methods are found when handle is a pointer; fields are
// looked up on the struct returned by Normalize. The returned value for a
// method is a bound method value.
func Member(handle any, symbol string, cfg apis.Config) (any, bool) {
	if handle == nil || symbol == "" || !isExported(symbol) {
		return nil, false
	}
	rv := reflect.ValueOf(handle)

	if m := rv.MethodByName(symbol); m.IsValid() {
		return m.Interface(), true
	}

	sv, err := Normalize(rv, cfg)
	if err != nil {
		return nil, false
	}
	if m := sv.MethodByName(symbol); m.IsValid() {
		return m.Interface(), true
	}
	sf, ok := sv.Type().FieldByName(symbol)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	f, err := sv.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, false
	}
	return f.Interface(), true
}

// Members lists the exported fields and methods reachable from handle,
// in the order reflect reports them.
func Members(handle any, cfg apis.Config) []string {
	if handle == nil {
		return nil
	}
	rv := reflect.ValueOf(handle)
	seen := make(map[string]struct{})
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}

	sv, err := Normalize(rv, cfg)
	if err != nil {
		return nil
	}
	st := sv.Type()
	for i := 0; i < st.NumField(); i++ {
		if f := st.Field(i); f.IsExported() && !f.Anonymous {
			add(f.Name)
		}
	}
	rt := rv.Type()
	for i := 0; i < rt.NumMethod(); i++ {
		add(rt.Method(i).Name)
	}
	return out
}

// isExported reports whether name starts with an upper-case ASCII letter.
// Non-ASCII identifiers are left to reflect to judge.
func isExported(name string) bool {
	c := name[0]
	if c >= 'a' && c <= 'z' || c == '_' {
		return false
	}
	return true
}

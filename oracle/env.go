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

package oracle

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"dirpx.dev/nsx/apis"
	nsxerrors "dirpx.dev/nsx/errors"
)

// DefaultEnvPrefix is the variable prefix used by FromEnv callers in this
// module: NSX_BACKEND_TORCH=off disables the "torch" backend.
const DefaultEnvPrefix = "NSX_BACKEND"

// FromEnv returns an Oracle that answers from environment variables named
// <prefix>_<BACKEND> and defers to fallback when a variable is unset.
//
// The optional files are read as .env files; they are parsed, not loaded,
// so the process environment is never modified. Real environment variables
// take precedence over file values. Missing files are ignored; unreadable
// or malformed files are returned as an error.
func FromEnv(prefix string, fallback apis.Oracle, files ...string) (apis.Oracle, error) {
	fileVals := make(map[string]string)
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		vals, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("nsx(oracle): read env file %s: %w", f, err)
		}
		for k, v := range vals {
			fileVals[k] = v
		}
	}

	return apis.OracleFunc(func(b apis.Backend) (bool, error) {
		key := envKey(prefix, b)
		raw, ok := os.LookupEnv(key)
		if !ok {
			raw, ok = fileVals[key]
		}
		if !ok {
			if fallback == nil {
				return false, nsxerrors.NewProbeError(string(b), ErrNoPredicate)
			}
			return fallback.Available(b)
		}
		v, err := parseSwitch(raw)
		if err != nil {
			return false, nsxerrors.NewProbeError(string(b), fmt.Errorf("%s: %w", key, err))
		}
		return v, nil
	}), nil
}

// envKey builds PREFIX_BACKEND with non-alphanumerics mapped to '_'.
func envKey(prefix string, b apis.Backend) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, string(b))
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}

// parseSwitch accepts the usual on/off spellings.
func parseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "enabled":
		return true, nil
	case "0", "false", "no", "off", "disabled":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized switch value %q", s)
	}
}

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

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"dirpx.dev/nsx/apis"
)

// EnvPrefix is the prefix for environment overrides of Settings keys.
const EnvPrefix = "NSX"

// Settings is the file/env-backed configuration of the nsx command.
type Settings struct {
	// Manifest is an optional YAML/HCL declaration replacing the built-in one.
	Manifest string `mapstructure:"manifest"`
	// Mode is "lazy" or "eager".
	Mode string `mapstructure:"mode"`
	// Suggestions caps "did you mean" candidates.
	Suggestions int `mapstructure:"suggestions"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
	// LogFormat is "text" or "json".
	LogFormat string `mapstructure:"log_format"`
	// EnvFiles are .env files consulted for backend overrides.
	EnvFiles []string `mapstructure:"env_files"`
	// Backends pins availability of individual backends.
	Backends map[string]bool `mapstructure:"backends"`
}

// LoadSettings reads settings from path (when non-empty) and the environment.
// Env var overrides use prefix NSX_, e.g. NSX_LOG_LEVEL=debug.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("manifest", "")
	v.SetDefault("mode", DefaultMode.String())
	v.SetDefault("suggestions", DefaultSuggestions)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("env_files", []string{})
	v.SetDefault("backends", map[string]bool{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}

// Config converts Settings into an apis.Config using logger.
func (s Settings) Config(logger *slog.Logger) (apis.Config, error) {
	mode, err := apis.ParseMode(s.Mode)
	if err != nil {
		return apis.Config{}, err
	}
	return NewConfig(
		WithMode(mode),
		WithSuggestions(s.Suggestions),
		WithLogger(logger),
	), nil
}

// BackendOverrides converts the Backends map into typed backend keys.
func (s Settings) BackendOverrides() map[apis.Backend]bool {
	out := make(map[apis.Backend]bool, len(s.Backends))
	for k, v := range s.Backends {
		out[apis.Backend(strings.ToLower(k))] = v
	}
	return out
}

// NewLogger creates a slog.Logger writing to w. Unknown levels fall back to
// info and unknown formats to text. It does not set the global logger.
func NewLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Package env builds the environment handed to the server process.
package env

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jeanlopezxyz/cncf-tech-advisor-mcp/internal/config"
)

// Keys read from the launcher's own environment.
const (
	LogLevelOverride = "CNCF_ADVISOR_LOG_LEVEL"
	JavaHome         = "JAVA_HOME"
)

// Keys always forced into the server environment.
const (
	StdioEnabled  = "QUARKUS_MCP_SERVER_STDIO_ENABLED"
	HTTPRootPath  = "QUARKUS_MCP_SERVER_HTTP_ROOT_PATH"
	BannerEnabled = "QUARKUS_BANNER_ENABLED"
	LogLevel      = "QUARKUS_LOG_LEVEL"
)

// Build returns base overlaid with the forced server keys. Later layers win:
//
//  1. base (every inherited key passes through unchanged)
//  2. StdioEnabled=true, HTTPRootPath=/mcp, BannerEnabled=false,
//     LogLevel=<CNCF_ADVISOR_LOG_LEVEL from base, else defaultLevel, else INFO>
//
// base is not modified.
func Build(base []string, defaultLevel string) []string {
	return Overlay(base, Forced(base, defaultLevel))
}

// Forced returns the four forced keys for base.
func Forced(base []string, defaultLevel string) map[string]string {
	level, ok := Get(base, LogLevelOverride)
	if !ok || level == "" {
		level = defaultLevel
	}
	if level == "" {
		level = config.DefaultLogLevel
	}
	return map[string]string{
		StdioEnabled:  "true",
		HTTPRootPath:  "/mcp",
		BannerEnabled: "false",
		LogLevel:      level,
	}
}

// Overlay returns a copy of base with each layer applied in order; later layers win.
// Keys within a layer are applied in sorted order so the result is deterministic.
func Overlay(base []string, layers ...map[string]string) []string {
	result := slices.Clone(base)
	for _, layer := range layers {
		keys := make([]string, 0, len(layer))
		for key := range layer {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			result = Set(result, key, layer[key])
		}
	}
	return result
}

// Get returns the value for the key from an env slice.
func Get(env []string, key string) (string, bool) {
	for _, entry := range env {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) == 2 && parts[0] == key {
			return parts[1], true
		}
	}
	return "", false
}

// Set sets or appends a key=value entry in an env slice.
// Duplicate entries for key are collapsed into the first one.
func Set(env []string, key string, value string) []string {
	entry := fmt.Sprintf("%s=%s", key, value)
	prefix := key + "="
	replaced := false
	result := env[:0]
	for _, existing := range env {
		if strings.HasPrefix(existing, prefix) {
			if replaced {
				continue
			}
			existing = entry
			replaced = true
		}
		result = append(result, existing)
	}
	if !replaced {
		result = append(result, entry)
	}
	return result
}

// Unset removes all entries for the given key from an env slice.
// If key is empty, it returns env unchanged.
func Unset(env []string, key string) []string {
	if key == "" {
		return env
	}
	prefix := key + "="
	result := make([]string, 0, len(env))
	for _, entry := range env {
		if !strings.HasPrefix(entry, prefix) {
			result = append(result, entry)
		}
	}
	return result
}

// ToMap converts an env slice to a map. Entries without '=' are skipped; the last duplicate wins.
func ToMap(env []string) map[string]string {
	result := make(map[string]string, len(env))
	for _, entry := range env {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

package config

import (
	"os"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
)

const saNamespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"

// Config holds all runtime configuration for homer-sync. It is assembled once
// at startup and never mutated afterwards.
type Config struct {
	GatewayNames       []string
	DomainSuffixes     []string
	ConfigMapName      string
	ConfigMapNamespace string
	Daemon             bool
	ScanInterval       time.Duration
	LogLevel           string
	Title              string
	Subtitle           string
	Columns            int
	TemplatePath       string
}

// HasFilters returns true when at least one opt-out filter is active.
func (c *Config) HasFilters() bool {
	return len(c.GatewayNames) > 0 || len(c.DomainSuffixes) > 0
}

// ParseLogLevel converts a level string (debug/info/warn/error) to a zap
// level. Unrecognised strings default to Info.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// SplitList splits a comma-separated string into a trimmed, non-empty slice.
func SplitList(s string) []string {
	var out []string
	for _, v := range strings.Split(s, ",") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// DetectNamespace reads the pod's own namespace from the service-account
// volume mount, falling back to "default".
func DetectNamespace() string {
	return detectNamespace(saNamespaceFile)
}

func detectNamespace(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "default"
	}
	ns := strings.TrimSpace(string(data))
	if ns == "" {
		return "default"
	}
	return ns
}

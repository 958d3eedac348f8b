// Package severity defines the levels attached to validator issues.
//
// Levels are ordered from least to most severe, so they compare with <:
//
//	Info < Warning < Error
package severity

import (
	"fmt"
	"strings"
)

// Severity indicates how serious a reported issue is.
type Severity int

const (
	// SeverityInfo marks a notice that needs no action.
	SeverityInfo Severity = iota

	// SeverityWarning marks a likely mistake that still yields a usable
	// document.
	SeverityWarning

	// SeverityError marks a document that third-party tooling would reject.
	SeverityError
)

// String returns the lowercase level name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Symbol returns the single-character marker used in text reports.
func (s Severity) Symbol() string {
	switch s {
	case SeverityError:
		return "✗"
	case SeverityWarning:
		return "⚠"
	case SeverityInfo:
		return "ℹ"
	default:
		return "?"
	}
}

// MarshalText implements encoding.TextMarshaler so levels render by name in
// JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Parse returns the level named by s, case-insensitively.
func Parse(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

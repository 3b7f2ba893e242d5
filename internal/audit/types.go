package audit

import (
	"encoding/json"
	"strings"
	"time"
)

// Severity classifies an issue. It is a closed set: anything the audit
// tool emits that we do not recognize degrades to SeverityInfo at the
// JSON boundary so rendering never sees an unconstrained string.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// ParseSeverity normalizes a raw severity string.
func ParseSeverity(raw string) Severity {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical":
		return SeverityCritical
	case "warning":
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

// UnmarshalJSON maps unrecognized severities to SeverityInfo.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseSeverity(raw)
	return nil
}

// Icon returns the list marker used for this severity.
func (s Severity) Icon() string {
	switch s {
	case SeverityCritical:
		return "●"
	case SeverityWarning:
		return "▲"
	default:
		return "○"
	}
}

// Result describes one completed audit. It is received once from the
// background worker and never mutated afterwards.
type Result struct {
	URL       string  `json:"url"`
	Timestamp string  `json:"timestamp"`
	Metrics   Metrics `json:"metrics"`
	Issues    []Issue `json:"issues"`
	Analysis  string  `json:"analysis,omitempty"`
}

// Metrics aggregates the numeric summary of an audit run. HealthScore is
// supplied by the audit tool, not derived from the issue counts.
type Metrics struct {
	PagesScanned   int `json:"pages_scanned"`
	TotalIssues    int `json:"total_issues"`
	CriticalIssues int `json:"critical_issues"`
	Warnings       int `json:"warnings"`
	Info           int `json:"info"`
	HealthScore    int `json:"health_score"`
}

// Issue is one finding. Slice position within Result.Issues is the stable
// index used for navigation.
type Issue struct {
	Severity       Severity `json:"severity"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	AffectedPages  []string `json:"affected_pages"`
	Recommendation string   `json:"recommendation"`
}

// ParsedTimestamp returns the result timestamp as time.Time when possible.
func (r Result) ParsedTimestamp() time.Time {
	if r.Timestamp == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, r.Timestamp); err == nil {
			return t
		}
	}
	return time.Time{}
}

package audit

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseSeverity(t *testing.T) {
	cases := []struct {
		in   string
		want Severity
	}{
		{"critical", SeverityCritical},
		{"CRITICAL", SeverityCritical},
		{" warning ", SeverityWarning},
		{"info", SeverityInfo},
		{"blocker", SeverityInfo},
		{"", SeverityInfo},
	}
	for _, tc := range cases {
		if got := ParseSeverity(tc.in); got != tc.want {
			t.Fatalf("ParseSeverity(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSeverityUnmarshalDegradesToInfo(t *testing.T) {
	var issue Issue
	payload := `{"severity":"catastrophic","category":"Links","title":"x","description":"y","affected_pages":[],"recommendation":"z"}`
	if err := json.Unmarshal([]byte(payload), &issue); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if issue.Severity != SeverityInfo {
		t.Fatalf("Severity = %q, want %q", issue.Severity, SeverityInfo)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		name    string
		current int
		total   int
		want    int
	}{
		{"zero", 0, 100, 0},
		{"half", 50, 100, 50},
		{"full", 100, 100, 100},
		{"truncates", 1, 3, 33},
		{"zero total clamped to one", 5, 0, 100},
		{"negative total clamped to one", 5, -1, 100},
		{"over total clamped", 250, 100, 100},
		{"negative current clamped", -5, 100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := Progress{Current: tc.current, Total: tc.total}
			if got := p.Percent(); got != tc.want {
				t.Fatalf("Percent() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProgressPercentAlwaysInRange(t *testing.T) {
	for total := 1; total <= 7; total++ {
		for current := 0; current <= total; current++ {
			got := Progress{Current: current, Total: total}.Percent()
			want := current * 100 / total
			if got != want {
				t.Fatalf("Percent(%d/%d) = %d, want %d", current, total, got, want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("Percent(%d/%d) = %d, out of [0,100]", current, total, got)
			}
		}
	}
}

func TestResultDecode(t *testing.T) {
	payload := `{
		"url": "https://example.com",
		"timestamp": "2026-08-30T10:00:00Z",
		"metrics": {"pages_scanned": 4, "total_issues": 3, "critical_issues": 1, "warnings": 1, "info": 1, "health_score": 88},
		"issues": [{"severity": "warning", "category": "Performance", "title": "t", "description": "d", "affected_pages": ["https://example.com/a"], "recommendation": "r"}],
		"analysis": "fine overall"
	}`
	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if result.Metrics.HealthScore != 88 {
		t.Fatalf("HealthScore = %d, want 88", result.Metrics.HealthScore)
	}
	if len(result.Issues) != 1 || result.Issues[0].Severity != SeverityWarning {
		t.Fatalf("Issues = %#v, want one warning issue", result.Issues)
	}
	want := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	if !result.ParsedTimestamp().Equal(want) {
		t.Fatalf("ParsedTimestamp() = %v, want %v", result.ParsedTimestamp(), want)
	}
}

func TestParsedTimestampBadInput(t *testing.T) {
	r := Result{Timestamp: "yesterday-ish"}
	if !r.ParsedTimestamp().IsZero() {
		t.Fatalf("ParsedTimestamp() = %v, want zero time", r.ParsedTimestamp())
	}
}

func TestPlaceholderResult(t *testing.T) {
	r := PlaceholderResult("https://example.com")

	if r.URL != "https://example.com" {
		t.Fatalf("URL = %q", r.URL)
	}
	if r.Metrics.PagesScanned != 15 || r.Metrics.CriticalIssues != 5 || r.Metrics.HealthScore != 73 {
		t.Fatalf("Metrics = %+v, want pages=15 critical=5 health=73", r.Metrics)
	}
	if len(r.Issues) != 5 {
		t.Fatalf("len(Issues) = %d, want 5", len(r.Issues))
	}
	if r.Analysis == "" {
		t.Fatal("Analysis is empty, want populated narrative")
	}
	if r.ParsedTimestamp().IsZero() {
		t.Fatalf("Timestamp %q did not parse", r.Timestamp)
	}
	for i, issue := range r.Issues {
		if issue.Title == "" || issue.Description == "" || issue.Recommendation == "" {
			t.Fatalf("issue %d has empty fields: %+v", i, issue)
		}
	}
	// The first affected page is derived from the target URL.
	if r.Issues[0].AffectedPages[0] != "https://example.com/about" {
		t.Fatalf("AffectedPages[0] = %q", r.Issues[0].AffectedPages[0])
	}
}

package audit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// writeScript drops an executable shell script into a temp dir and
// returns its path. The runner invokes it exactly like the real CLI:
// <command> <depth> <url> --output-json.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-audit")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// collect drains the channel to closure, failing the test if the worker
// never finishes.
func collect(t *testing.T, updates <-chan Update) []Update {
	t.Helper()
	var got []Update
	timeout := time.After(10 * time.Second)
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				return got
			}
			got = append(got, u)
		case <-timeout:
			t.Fatalf("worker did not finish; got %d updates", len(got))
		}
	}
}

func TestRunnerSuccess(t *testing.T) {
	script := writeScript(t, `cat <<'EOF'
{"url":"https://example.com","timestamp":"2026-08-30T10:00:00Z","metrics":{"pages_scanned":2,"total_issues":1,"critical_issues":0,"warnings":1,"info":0,"health_score":91},"issues":[{"severity":"warning","category":"Meta Tags","title":"t","description":"d","affected_pages":[],"recommendation":"r"}],"analysis":"ok"}
EOF`)

	r := Runner{Command: script, Depth: "audit-ai"}
	got := collect(t, r.Start("https://example.com"))

	if len(got) != 3 {
		t.Fatalf("got %d updates, want 3: %#v", len(got), got)
	}
	first, ok := got[0].(Progress)
	if !ok || first.Current != 0 || first.Message != "Starting audit..." {
		t.Fatalf("first update = %#v, want initial progress", got[0])
	}
	result, ok := got[1].(ResultUpdate)
	if !ok {
		t.Fatalf("second update = %#v, want ResultUpdate", got[1])
	}
	if result.Result.Metrics.HealthScore != 91 {
		t.Fatalf("HealthScore = %d, want 91", result.Result.Metrics.HealthScore)
	}
	if _, ok := got[2].(Done); !ok {
		t.Fatalf("last update = %#v, want Done", got[2])
	}
}

func TestRunnerMalformedOutputFallsBackToPlaceholder(t *testing.T) {
	script := writeScript(t, `echo "Audit complete! 27 issues found."`)

	r := Runner{Command: script, Depth: "audit-ai"}
	got := collect(t, r.Start("https://example.com"))

	if len(got) != 3 {
		t.Fatalf("got %d updates, want 3: %#v", len(got), got)
	}
	result, ok := got[1].(ResultUpdate)
	if !ok {
		t.Fatalf("second update = %#v, want ResultUpdate", got[1])
	}
	m := result.Result.Metrics
	if m.PagesScanned != 15 || m.CriticalIssues != 5 || m.HealthScore != 73 {
		t.Fatalf("Metrics = %+v, want placeholder values", m)
	}
	if len(result.Result.Issues) != 5 {
		t.Fatalf("len(Issues) = %d, want 5", len(result.Result.Issues))
	}
}

func TestRunnerNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo "crawler timeout" >&2
exit 3`)

	r := Runner{Command: script, Depth: "audit-ai"}
	got := collect(t, r.Start("https://example.com"))

	if len(got) != 3 {
		t.Fatalf("got %d updates, want 3: %#v", len(got), got)
	}
	errUpdate, ok := got[1].(ErrorUpdate)
	if !ok {
		t.Fatalf("second update = %#v, want ErrorUpdate", got[1])
	}
	if !strings.HasPrefix(errUpdate.Message, "Audit failed: ") {
		t.Fatalf("Message = %q, want Audit failed prefix", errUpdate.Message)
	}
	if !strings.Contains(errUpdate.Message, "crawler timeout") {
		t.Fatalf("Message = %q, want captured stderr", errUpdate.Message)
	}
	if _, ok := got[2].(Done); !ok {
		t.Fatalf("last update = %#v, want Done", got[2])
	}
}

func TestRunnerLaunchFailure(t *testing.T) {
	r := Runner{Command: filepath.Join(t.TempDir(), "does-not-exist"), Depth: "audit-ai"}
	got := collect(t, r.Start("https://example.com"))

	if len(got) != 3 {
		t.Fatalf("got %d updates, want 3: %#v", len(got), got)
	}
	errUpdate, ok := got[1].(ErrorUpdate)
	if !ok {
		t.Fatalf("second update = %#v, want ErrorUpdate", got[1])
	}
	if !strings.HasPrefix(errUpdate.Message, "Failed to run audit: ") {
		t.Fatalf("Message = %q, want launch failure prefix", errUpdate.Message)
	}
}

func TestRunnerPassesArguments(t *testing.T) {
	script := writeScript(t, `echo "$1 $2 $3" >&2
exit 1`)

	r := Runner{Command: script, Depth: "audit"}
	got := collect(t, r.Start("https://example.com"))

	errUpdate, ok := got[1].(ErrorUpdate)
	if !ok {
		t.Fatalf("second update = %#v, want ErrorUpdate", got[1])
	}
	if !strings.Contains(errUpdate.Message, "audit https://example.com --output-json") {
		t.Fatalf("Message = %q, want subcommand, url, and --output-json", errUpdate.Message)
	}
}

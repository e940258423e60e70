package doctor

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProfiles(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun_CleanFile(t *testing.T) {
	path := writeProfiles(t, "Host web\n  HostName 10.0.0.1\n  Port 22\n", 0o600)
	report, err := Run(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, issue := range report.Issues {
		if issue.Target == path {
			t.Fatalf("unexpected issue for clean file: %+v", issue)
		}
	}
	if report.HasHigh() {
		t.Fatalf("clean file should not raise high severity: %+v", report.Issues)
	}
}

func TestRun_FlagsBroadPermissions(t *testing.T) {
	path := writeProfiles(t, "Host web\n  HostName 10.0.0.1\n", 0o644)
	report, err := Run(path)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, issue := range report.Issues {
		if issue.Check == "perm" && issue.Target == path {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected perm issue for 0644 file, got %+v", report.Issues)
	}
}

func TestRun_FlagsDuplicateAliasesAndBadPorts(t *testing.T) {
	content := "Host web\n  HostName a\n  Port http\nHost web\n  HostName b\n"
	path := writeProfiles(t, content, 0o600)
	report, err := Run(path)
	if err != nil {
		t.Fatal(err)
	}
	var dup, badPort bool
	for _, issue := range report.Issues {
		switch issue.Check {
		case "duplicate-alias":
			dup = issue.Target == "web"
		case "bad-port":
			badPort = issue.Target == "web"
		}
	}
	if !dup {
		t.Fatalf("expected duplicate-alias issue, got %+v", report.Issues)
	}
	if !badPort {
		t.Fatalf("expected bad-port issue, got %+v", report.Issues)
	}
	if !report.HasHigh() {
		t.Fatal("duplicate aliases should be high severity")
	}
}

func TestRun_SortsBySeverity(t *testing.T) {
	content := "Host web\n  HostName a\n  Port 99999\nHost web\n  HostName b\n"
	path := writeProfiles(t, content, 0o600)
	report, err := Run(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Issues) < 2 {
		t.Fatalf("expected at least two issues, got %+v", report.Issues)
	}
	if report.Issues[0].Severity != SeverityHigh {
		t.Fatalf("expected high severity first, got %+v", report.Issues[0])
	}
}

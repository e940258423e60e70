// Package doctor runs read-only diagnostics over hostbook's files: the
// profiles file itself, its backup, and the application config directory.
package doctor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dperrin/hostbook/internal/appconfig"
	"github.com/dperrin/hostbook/internal/profile"
	"github.com/dperrin/hostbook/internal/util"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

type Issue struct {
	Severity       Severity `json:"severity"`
	Check          string   `json:"check"`
	Target         string   `json:"target"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation"`
}

type Report struct {
	Issues []Issue `json:"issues"`
}

func (r Report) HasHigh() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityHigh {
			return true
		}
	}
	return false
}

// Run executes local diagnostics against the profiles file at path.
func Run(path string) (Report, error) {
	var issues []Issue

	checkPathPerm(&issues, filepath.Dir(path), 0o700, false)
	checkPathPerm(&issues, path, 0o600, true)
	checkPathPerm(&issues, profile.BackupPath(path), 0o600, true)

	if dir, err := appconfig.ConfigDir(); err == nil {
		checkPathPerm(&issues, dir, 0o700, false)
		checkPathPerm(&issues, filepath.Join(dir, "config.yaml"), 0o600, true)
	}

	if lines, err := profile.ReadLines(path); err == nil {
		issues = append(issues, contentIssues(profile.ParseLines(lines))...)
	}

	sort.Slice(issues, func(i, j int) bool {
		ri := severityRank(issues[i].Severity)
		rj := severityRank(issues[j].Severity)
		if ri != rj {
			return ri > rj
		}
		if issues[i].Check != issues[j].Check {
			return issues[i].Check < issues[j].Check
		}
		if issues[i].Target != issues[j].Target {
			return issues[i].Target < issues[j].Target
		}
		return issues[i].Message < issues[j].Message
	})
	return Report{Issues: issues}, nil
}

// contentIssues flags duplicate aliases and non-numeric ports. Neither is an
// error on the write path, which stores values as written; doctor is where
// they surface.
func contentIssues(stanzas []profile.Stanza) []Issue {
	var issues []Issue
	seen := map[string]int{}
	for _, st := range stanzas {
		seen[st.Alias]++
	}
	for alias, n := range seen {
		if n < 2 {
			continue
		}
		issues = append(issues, Issue{
			Severity:       SeverityHigh,
			Check:          "duplicate-alias",
			Target:         alias,
			Message:        fmt.Sprintf("alias is declared by %d blocks", n),
			Recommendation: "remove the extra blocks; add refuses duplicates but hand edits can introduce them",
		})
	}
	for _, st := range stanzas {
		p, ok := st.Attrs["port"]
		if !ok {
			continue
		}
		if err := util.ValidatePort(p); err != nil {
			issues = append(issues, Issue{
				Severity:       SeverityMedium,
				Check:          "bad-port",
				Target:         st.Alias,
				Message:        err.Error(),
				Recommendation: "set Port to a number between 1 and 65535",
			})
		}
	}
	return issues
}

func severityRank(s Severity) int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	default:
		return 1
	}
}

func checkPathPerm(issues *[]Issue, path string, max os.FileMode, isFile bool) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		*issues = append(*issues, Issue{
			Severity:       SeverityLow,
			Check:          "perm",
			Target:         path,
			Message:        fmt.Sprintf("unable to inspect permissions: %v", err),
			Recommendation: "verify path and permissions manually",
		})
		return
	}
	mode := st.Mode().Perm()
	if mode > max {
		kind := "directory"
		if isFile {
			kind = "file"
		}
		*issues = append(*issues, Issue{
			Severity:       SeverityMedium,
			Check:          "perm",
			Target:         path,
			Message:        fmt.Sprintf("%s permissions are too broad (%#o)", kind, mode),
			Recommendation: fmt.Sprintf("restrict permissions to %#o or tighter", max),
		})
	}
}

package profile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dperrin/hostbook/internal/model"
)

var (
	// ErrDuplicateAlias is returned by Add when the requested alias is
	// already present. The comparison is case-sensitive and exact.
	ErrDuplicateAlias = errors.New("alias already exists")

	// ErrAliasNotFound is returned by Remove when no block carries the
	// requested alias.
	ErrAliasNotFound = errors.New("alias not found")
)

// Store edits one profiles file. The file is the only state: every operation
// reads it fresh and either discards the lines (List) or writes them back
// (Add appends, Remove rewrites). There is no caching across operations.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the profiles file path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// List parses the file and projects each stanza into a Profile. Missing
// attributes render as empty strings; row order matches file order.
func (s *Store) List() ([]model.Profile, error) {
	if err := EnsureFile(s.path); err != nil {
		return nil, err
	}
	lines, err := ReadLines(s.path)
	if err != nil {
		return nil, err
	}
	stanzas := ParseLines(lines)
	profiles := make([]model.Profile, 0, len(stanzas))
	for _, st := range stanzas {
		profiles = append(profiles, model.Profile{
			Alias:    st.Alias,
			HostName: st.Attrs["hostname"],
			User:     st.Attrs["user"],
			Port:     st.Attrs["port"],
		})
	}
	return profiles, nil
}

// Add appends a new block for the profile at the end of the file. The alias
// must not collide with an existing stanza; the check happens before any
// write, so a rejected add leaves the file untouched. Appends take no
// backup: they never alter existing content.
func (s *Store) Add(p model.Profile) error {
	if strings.TrimSpace(p.Alias) == "" {
		return fmt.Errorf("alias cannot be empty")
	}
	if strings.TrimSpace(p.HostName) == "" {
		return fmt.Errorf("target host cannot be empty")
	}
	if err := EnsureFile(s.path); err != nil {
		return err
	}
	lines, err := ReadLines(s.path)
	if err != nil {
		return err
	}
	for _, st := range ParseLines(lines) {
		if st.Alias == p.Alias {
			return fmt.Errorf("%w: %s", ErrDuplicateAlias, p.Alias)
		}
	}
	return appendBlock(s.path, FormatBlock(p))
}

// Remove deletes the block named by alias, operating on raw lines so that
// comments and malformed content inside other blocks are preserved
// byte-identically. The current file is moved to the backup path before the
// filtered lines are written.
func (s *Store) Remove(alias string) error {
	if err := EnsureFile(s.path); err != nil {
		return err
	}
	lines, err := ReadLines(s.path)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(lines))
	suppressing := false
	for _, raw := range lines {
		if matchesBlockStart(raw, alias) {
			suppressing = true
			continue
		}
		if suppressing {
			if _, ok := blockStart(strings.TrimSpace(raw)); ok {
				suppressing = false
			} else {
				continue
			}
		}
		kept = append(kept, raw)
	}
	if len(kept) == len(lines) {
		return fmt.Errorf("%w: %s", ErrAliasNotFound, alias)
	}
	return overwrite(s.path, kept)
}

// FormatBlock renders the block appended by Add: one leading blank line,
// the block-start line, then HostName, User, and Port attribute lines in
// that fixed order, each indented by two spaces. User and Port are emitted
// only when set.
func FormatBlock(p model.Profile) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", keyword, p.Alias))
	b.WriteString(fmt.Sprintf("  HostName %s\n", p.HostName))
	if p.User != "" {
		b.WriteString(fmt.Sprintf("  User %s\n", p.User))
	}
	if p.Port != "" {
		b.WriteString(fmt.Sprintf("  Port %s\n", p.Port))
	}
	return b.String()
}

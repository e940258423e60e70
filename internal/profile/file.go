package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	filePerm = 0o600
	dirPerm  = 0o700

	// backupSuffix replaces the original extension when the rewrite path
	// moves the current file aside.
	backupSuffix = ".bak"
)

// EnsureFile creates the parent directory and the profiles file if either is
// missing. New files are created owner read/write only.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("create profile dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("create profile file: %w", err)
	}
	return f.Close()
}

// ReadLines loads the whole file as an ordered line sequence. Each element
// keeps its trailing newline, so joining the slice reproduces the file
// byte-identically.
func ReadLines(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lines := strings.SplitAfter(string(b), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines, nil
}

// BackupPath returns the path the rewrite path moves the current file to
// before overwriting, with the fixed backup suffix substituted for the
// original extension.
func BackupPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + backupSuffix
}

// appendBlock opens the file in append mode and writes the block. Existing
// content and permissions are left alone; a separator newline is inserted
// when the file does not already end in one.
func appendBlock(path, block string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", path, err)
	}
	var prefix string
	if len(existing) > 0 && !strings.HasSuffix(string(existing), "\n") {
		prefix = "\n"
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("open %s for append: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(prefix + block); err != nil {
		return fmt.Errorf("append profile block: %w", err)
	}
	return nil
}

// overwrite replaces the file content after moving the current file to the
// backup path. Any prior backup is replaced. The new file is re-restricted
// to owner read/write.
func overwrite(path string, lines []string) error {
	if err := os.Rename(path, BackupPath(path)); err != nil {
		return fmt.Errorf("back up %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(strings.Join(lines, "")), filePerm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Chmod(path, filePerm); err != nil {
		return fmt.Errorf("restrict %s: %w", path, err)
	}
	return nil
}

// Package scaffold reads and updates the template repository's .gitignore:
// the ignore set used during traversal and the run-once sentinel entry.
package scaffold

import (
	"os"
	"strings"

	"github.com/rfrench3/initialize-repository/internal/fs"
)

const (
	// GitignoreName is the repository ignore file, relative to the root.
	GitignoreName = ".gitignore"

	// MarkerDir is the repository marker directory.
	MarkerDir = ".git"

	// BuildDir is the build output directory, always excluded.
	BuildDir = "build"

	// SentinelEntry is appended to .gitignore after a completed run.
	SentinelEntry = "initialize-repository"
)

// IgnoreSet holds entry names excluded from traversal.
// Membership is an exact match on a base name: no globs, no path prefixes.
type IgnoreSet map[string]struct{}

// Contains reports whether name is excluded.
func (s IgnoreSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Initialized reports whether the sentinel entry is present.
func (s IgnoreSet) Initialized() bool {
	return s.Contains(SentinelEntry)
}

// ComputeIgnored returns the built-in defaults plus every line of the
// .gitignore at gitignorePath. A missing file yields the defaults only.
func ComputeIgnored(fsys fs.FS, gitignorePath string) (IgnoreSet, error) {
	set := IgnoreSet{MarkerDir: {}, BuildDir: {}}

	content, err := fsys.ReadFile(gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return set, nil
		}
		return nil, err
	}

	for _, line := range splitLines(string(content)) {
		set[line] = struct{}{}
	}
	return set, nil
}

// GitignoreResult indicates what happened to .gitignore.
type GitignoreResult string

const (
	GitignoreUpdated   GitignoreResult = "updated"
	GitignoreUnchanged GitignoreResult = "unchanged"
)

// EnsureSentinel appends SentinelEntry to .gitignore unless a line already
// equals it. Creates the file if missing and keeps a trailing newline.
// Writes go through a temp file and rename, so a failed append leaves the
// existing .gitignore intact.
func EnsureSentinel(fsys fs.FS, gitignorePath string) (GitignoreResult, error) {
	content, err := fsys.ReadFile(gitignorePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", err
		}
		if err := fs.WriteFileAtomic(fsys, gitignorePath, []byte(SentinelEntry+"\n"), 0644); err != nil {
			return "", err
		}
		return GitignoreUpdated, nil
	}

	for _, line := range splitLines(string(content)) {
		if line == SentinelEntry {
			return GitignoreUnchanged, nil
		}
	}

	newContent := string(content)
	if len(newContent) > 0 && !strings.HasSuffix(newContent, "\n") {
		newContent += "\n"
	}
	newContent += SentinelEntry + "\n"

	info, err := fsys.Stat(gitignorePath)
	if err != nil {
		return "", err
	}
	if err := fs.WriteFileAtomic(fsys, gitignorePath, []byte(newContent), info.Mode().Perm()); err != nil {
		return "", err
	}
	return GitignoreUpdated, nil
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not
// produce an empty final line.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

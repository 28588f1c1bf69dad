package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/scaffold"
)

func TestRun_Help(t *testing.T) {
	tests := []string{"-h", "--help"}
	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := Run([]string{arg}, strings.NewReader(""), &stdout, &stderr)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stdout.String(), "Usage:") {
				t.Error("expected usage in stdout")
			}
			if !strings.Contains(stdout.String(), "--dir") {
				t.Error("expected --dir in usage")
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	tests := []string{"-v", "--version"}
	for _, arg := range tests {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := Run([]string{arg}, strings.NewReader(""), &stdout, &stderr)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(stdout.String(), "initialize-repository ") {
				t.Errorf("version output = %q", stdout.String())
			}
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run([]string{"--nope"}, strings.NewReader(""), &stdout, &stderr)

	if errors.GetCode(err) != errors.EUsage {
		t.Fatalf("code = %q, want %q (err=%v)", errors.GetCode(err), errors.EUsage, err)
	}
	if errors.ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", errors.ExitCode(err))
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Error("expected flag name in error")
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("expected usage in stderr")
	}
}

func TestRun_UnexpectedArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := Run([]string{"extra"}, strings.NewReader(""), &stdout, &stderr)

	if errors.GetCode(err) != errors.EUsage {
		t.Fatalf("code = %q, want %q (err=%v)", errors.GetCode(err), errors.EUsage, err)
	}
	if !strings.Contains(err.Error(), "extra") {
		t.Error("expected argument in error")
	}
}

// TestRun_NotInRepo verifies the CLI wiring; the gates are tested in internal/repo.
func TestRun_NotInRepo(t *testing.T) {
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	defer os.Chdir(originalWd)

	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}

	var stdout, stderr bytes.Buffer
	err = Run([]string{}, strings.NewReader("Foo\nJane\njane@x.com\ny\n"), &stdout, &stderr)

	if errors.GetCode(err) != errors.ENoRepo {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ENoRepo)
	}
	if errors.ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", errors.ExitCode(err))
	}
}

func TestRun_DirFlag(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "NewProject.txt"), []byte("newproject"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := Run([]string{"--dir", dir}, strings.NewReader("Foo Bar\nJane\njane@x.com\ny\n"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("Run failed: %v\nstderr: %s", err, stderr.String())
	}

	data, err := os.ReadFile(filepath.Join(dir, "FooBar.txt"))
	if err != nil {
		t.Fatalf("renamed file missing: %v", err)
	}
	if string(data) != "foobar" {
		t.Errorf("FooBar.txt = %q", string(data))
	}

	gitignore, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		t.Fatalf(".gitignore missing: %v", err)
	}
	if !strings.Contains(string(gitignore), scaffold.SentinelEntry) {
		t.Errorf(".gitignore = %q, want sentinel", string(gitignore))
	}

	// Second invocation is refused.
	stdout.Reset()
	err = Run([]string{"--dir", dir}, strings.NewReader("Foo Bar\nJane\njane@x.com\ny\n"), &stdout, &stderr)
	if errors.GetCode(err) != errors.EAlreadyInitialized {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EAlreadyInitialized)
	}
}

func TestRun_Cancel(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	err := Run([]string{"--dir", dir}, strings.NewReader("Foo Bar\nJane\njane@x.com\nn\n"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("cancel must exit 0, got %v", err)
	}
	if errors.ExitCode(err) != 0 {
		t.Errorf("ExitCode = %d, want 0", errors.ExitCode(err))
	}
	if !strings.Contains(stdout.String(), "Cancelled.") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

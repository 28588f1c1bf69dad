package render

import (
	"fmt"
	"io"
)

// Banner is printed before any prompt.
const Banner = "This initializer makes it much quicker to go from newproject to a ready-to-go starting template!\n" +
	"It is only intended to work on a fully untouched instance of the included newproject template.\n" +
	"Only alphabet characters and spaces are supported in the project name!\n"

// Prompts, in the order they are asked.
const (
	PromptProject = "Project name (alphabet and spaces only): "
	PromptAuthor  = "Author name: "
	PromptEmail   = "Author email: "
	PromptProceed = "Proceed? (y/N) "
)

// WriteBanner writes the explanatory banner followed by a blank line.
func WriteBanner(w io.Writer, p Palette) {
	fmt.Fprintf(w, "%s%s%s\n", p.Bold, Banner, p.Reset)
}

// WriteConfirmation writes the summary shown before the final yes/no prompt.
func WriteConfirmation(w io.Writer, project, author, email string) {
	fmt.Fprintf(w, "Project name: %s\n", project)
	fmt.Fprintf(w, "Author name: %s\n", author)
	fmt.Fprintf(w, "Email: %s\n", email)
	fmt.Fprint(w, PromptProceed)
}

// WriteCancelled reports that the user declined.
func WriteCancelled(w io.Writer, p Palette) {
	fmt.Fprintf(w, "%sCancelled.%s\n", p.Yellow, p.Reset)
}

// WriteDone reports that the traversal completed.
func WriteDone(w io.Writer, p Palette) {
	fmt.Fprintf(w, "%sDone!%s\n", p.Green, p.Reset)
}

// InitResult holds the outcome of a completed run.
type InitResult struct {
	RepoRoot          string
	DirsScanned       int
	FilesScanned      int
	ContentsRewritten int
	FilesRenamed      int
	BinarySkipped     int
	SymlinksSkipped   int
	GitignoreState    string
}

// WriteInitResult writes the stable key: value summary of a completed run.
func WriteInitResult(w io.Writer, r InitResult) {
	fmt.Fprintf(w, "repo_root: %s\n", r.RepoRoot)
	fmt.Fprintf(w, "dirs_scanned: %d\n", r.DirsScanned)
	fmt.Fprintf(w, "files_scanned: %d\n", r.FilesScanned)
	fmt.Fprintf(w, "contents_rewritten: %d\n", r.ContentsRewritten)
	fmt.Fprintf(w, "files_renamed: %d\n", r.FilesRenamed)
	fmt.Fprintf(w, "binary_skipped: %d\n", r.BinarySkipped)
	fmt.Fprintf(w, "symlinks_skipped: %d\n", r.SymlinksSkipped)
	fmt.Fprintf(w, "gitignore: %s\n", r.GitignoreState)
}

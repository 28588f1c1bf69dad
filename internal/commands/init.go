// Package commands implements initialize-repository commands.
package commands

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/rfrench3/initialize-repository/internal/core"
	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/fs"
	"github.com/rfrench3/initialize-repository/internal/render"
	"github.com/rfrench3/initialize-repository/internal/repo"
	"github.com/rfrench3/initialize-repository/internal/scaffold"
	"github.com/rfrench3/initialize-repository/internal/tree"
)

// InitOpts holds options for the init command.
type InitOpts struct {
	// Dir is the template repository root.
	Dir string

	// Now supplies the current year for %{CURRENT_YEAR}. Defaults to time.Now.
	Now func() time.Time
}

// Init renames the template in opts.Dir to the project described on stdin.
//
// Order of operations:
//  1. Repository gates (.git present, sentinel absent)
//  2. Prompt for project name and validate it
//  3. Prompt for author and email
//  4. Confirm; anything but "y" or "Y" cancels with no changes
//  5. Scan the tree, then rewrite contents and names
//  6. Append the sentinel to .gitignore
//
// Nothing is written before step 5. The sentinel is written only after the
// whole tree has been processed.
func Init(fsys fs.FS, opts InitOpts, stdin io.Reader, stdout io.Writer) error {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	rc, err := repo.CheckRepo(fsys, opts.Dir)
	if err != nil {
		return err
	}

	p := render.PaletteFor(stdout)
	render.WriteBanner(stdout, p)

	in := bufio.NewReader(stdin)

	project, err := prompt(in, stdout, render.PromptProject)
	if err != nil {
		return err
	}
	if err := core.ValidateDisplayName(project); err != nil {
		return err
	}

	author, err := prompt(in, stdout, render.PromptAuthor)
	if err != nil {
		return err
	}
	email, err := prompt(in, stdout, render.PromptEmail)
	if err != nil {
		return err
	}

	render.WriteConfirmation(stdout, project, author, email)
	answer, err := readLine(in)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		render.WriteCancelled(stdout, p)
		return nil
	}

	id, err := core.NewProjectIdentity(project, author, email)
	if err != nil {
		return err
	}

	walker := tree.NewWalker(fsys, rc.Ignored, stdout)
	root, err := walker.Build(rc.Root)
	if err != nil {
		return err
	}
	if err := walker.Process(root, id, now().Year()); err != nil {
		return err
	}
	render.WriteDone(stdout, p)

	gitignoreState, err := scaffold.EnsureSentinel(fsys, rc.GitignorePath)
	if err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to update .gitignore", err,
			map[string]string{"path": rc.GitignorePath})
	}

	stats := walker.Stats()
	render.WriteInitResult(stdout, render.InitResult{
		RepoRoot:          rc.Root,
		DirsScanned:       stats.DirsScanned,
		FilesScanned:      stats.FilesScanned,
		ContentsRewritten: stats.ContentsRewritten,
		FilesRenamed:      stats.FilesRenamed,
		BinarySkipped:     stats.BinarySkipped,
		SymlinksSkipped:   stats.SymlinksSkipped,
		GitignoreState:    string(gitignoreState),
	})

	return nil
}

func prompt(in *bufio.Reader, w io.Writer, text string) (string, error) {
	if _, err := io.WriteString(w, text); err != nil {
		return "", errors.Wrap(errors.EInternal, "failed to write prompt", err)
	}
	return readLine(in)
}

// readLine reads one line without its line terminator. EOF ends the line;
// an empty input yields "".
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.EReadInput, "failed to read input", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

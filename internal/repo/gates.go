// Package repo provides the safety gates checked before the template is renamed.
package repo

import (
	"os"
	"path/filepath"

	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/fs"
	"github.com/rfrench3/initialize-repository/internal/scaffold"
)

// RepoContext holds the resolved repository context after the gates pass.
type RepoContext struct {
	// Root is the absolute path to the template repository root.
	Root string

	// GitignorePath is Root/.gitignore (it may not exist).
	GitignorePath string

	// Ignored is the ignore set computed once for the whole run.
	Ignored scaffold.IgnoreSet
}

// CheckRepo verifies that dir is the template repository root and that the
// initializer has not completed there before. It only reads.
//
// Error codes:
//   - E_NO_REPO: no .git directory under dir
//   - E_ALREADY_INITIALIZED: the sentinel entry is in .gitignore
//   - E_INTERNAL: dir or .gitignore could not be read
func CheckRepo(fsys fs.FS, dir string) (*RepoContext, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to resolve repository root", err)
	}

	info, err := fsys.Stat(filepath.Join(root, scaffold.MarkerDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewWithDetails(errors.ENoRepo, ".git folder not found in repository root",
				map[string]string{"root": root})
		}
		return nil, errors.Wrap(errors.ENoRepo, "failed to check for .git folder", err)
	}
	if !info.IsDir() {
		return nil, errors.NewWithDetails(errors.ENoRepo, ".git folder not found in repository root",
			map[string]string{"root": root})
	}

	gitignorePath := filepath.Join(root, scaffold.GitignoreName)
	ignored, err := scaffold.ComputeIgnored(fsys, gitignorePath)
	if err != nil {
		return nil, errors.Wrap(errors.EInternal, "failed to read .gitignore", err)
	}

	if ignored.Initialized() {
		return nil, errors.New(errors.EAlreadyInitialized,
			"The initializer has already been used, and cannot be used again.")
	}

	return &RepoContext{
		Root:          root,
		GitignorePath: gitignorePath,
		Ignored:       ignored,
	}, nil
}

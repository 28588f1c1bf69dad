package tree

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/rfrench3/initialize-repository/internal/core"
	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/fs"
)

// ContentResult indicates what RewriteContents did to a file.
type ContentResult string

const (
	ContentRewritten ContentResult = "rewritten"
	ContentUnchanged ContentResult = "unchanged"
	ContentBinary    ContentResult = "binary"
)

// RewriteContents substitutes the placeholder tokens and the author, email
// and year markers in the file. Contents that are not valid UTF-8 are left
// untouched and reported as ContentBinary. The file is written only when
// the text changed, keeping its permission bits.
func (f *FileNode) RewriteContents(fsys fs.FS, id core.ProjectIdentity, year int) (ContentResult, error) {
	data, err := fsys.ReadFile(f.Path)
	if err != nil {
		return "", errors.WrapWithDetails(errors.ERewriteFailed, "failed to read "+f.Name, err,
			map[string]string{"path": f.Path})
	}

	if !utf8.Valid(data) {
		return ContentBinary, nil
	}

	contents := string(data)
	newContents := core.SubstituteContents(contents, id, year)
	if newContents == contents {
		return ContentUnchanged, nil
	}

	info, err := fsys.Stat(f.Path)
	if err != nil {
		return "", errors.WrapWithDetails(errors.ERewriteFailed, "failed to stat "+f.Name, err,
			map[string]string{"path": f.Path})
	}

	if err := fs.WriteFileAtomic(fsys, f.Path, []byte(newContents), info.Mode().Perm()); err != nil {
		return "", errors.WrapWithDetails(errors.ERewriteFailed, "failed to write "+f.Name, err,
			map[string]string{"path": f.Path})
	}
	return ContentRewritten, nil
}

// RewriteName substitutes the placeholder tokens in the file's base name and
// renames it within its directory. Returns false when the name has no tokens.
// An existing entry under the new name is never overwritten, unless it is
// the file itself reached through a case-insensitive lookup.
func (f *FileNode) RewriteName(fsys fs.FS, id core.ProjectIdentity) (bool, error) {
	newName := core.SubstituteTokens(f.Name, id)
	if newName == f.Name {
		return false, nil
	}

	newPath := filepath.Join(filepath.Dir(f.Path), newName)
	if existing, err := fsys.Lstat(newPath); err == nil {
		// A case-only rename on a case-insensitive filesystem finds the file itself.
		self, err := fsys.Lstat(f.Path)
		if err != nil || !os.SameFile(existing, self) {
			return false, errors.NewWithDetails(errors.ERewriteFailed,
				"cannot rename "+f.Name+": "+newName+" already exists",
				map[string]string{"path": f.Path, "target": newPath})
		}
	} else if !os.IsNotExist(err) {
		return false, errors.WrapWithDetails(errors.ERewriteFailed, "failed to check "+newName, err,
			map[string]string{"target": newPath})
	}

	if err := fsys.Rename(f.Path, newPath); err != nil {
		return false, errors.WrapWithDetails(errors.ERewriteFailed, "failed to rename "+f.Name, err,
			map[string]string{"path": f.Path, "target": newPath})
	}

	f.Path = newPath
	f.Name = newName
	return true, nil
}

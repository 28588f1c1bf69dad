package tree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rfrench3/initialize-repository/internal/core"
	"github.com/rfrench3/initialize-repository/internal/errors"
	"github.com/rfrench3/initialize-repository/internal/fs"
	"github.com/rfrench3/initialize-repository/internal/scaffold"
)

// Stats counts what a Walker saw and changed.
type Stats struct {
	FilesScanned      int
	DirsScanned       int
	SymlinksSkipped   int
	ContentsRewritten int
	FilesRenamed      int
	BinarySkipped     int
}

// Walker scans a directory tree once and then rewrites it once.
// Notices about skipped entries are written to out.
type Walker struct {
	fsys    fs.FS
	ignored scaffold.IgnoreSet
	out     io.Writer
	stats   Stats
}

// NewWalker returns a Walker that excludes entries named in ignored.
func NewWalker(fsys fs.FS, ignored scaffold.IgnoreSet, out io.Writer) *Walker {
	return &Walker{fsys: fsys, ignored: ignored, out: out}
}

// Stats returns the counters accumulated so far.
func (w *Walker) Stats() Stats {
	return w.stats
}

// Build scans root recursively. Entries whose base name is in the ignore
// set are dropped, symlinks are reported and dropped (never followed), and
// anything that is neither a regular file nor a directory is dropped silently.
func (w *Walker) Build(root string) (*DirNode, error) {
	entries, err := w.fsys.ReadDir(root)
	if err != nil {
		return nil, errors.WrapWithDetails(errors.EScanFailed, "failed to read directory "+root, err,
			map[string]string{"path": root})
	}
	w.stats.DirsScanned++

	dir := &DirNode{Path: root}
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(root, name)

		switch {
		case w.ignored.Contains(name):
			continue
		case entry.Type()&os.ModeSymlink != 0:
			fmt.Fprintf(w.out, "symlink %s detected, ignored!\n", name)
			w.stats.SymlinksSkipped++
		case entry.Type().IsRegular():
			dir.Children = append(dir.Children, fileNode(path, name))
			w.stats.FilesScanned++
		case entry.IsDir():
			child, err := w.Build(path)
			if err != nil {
				return nil, err
			}
			dir.Children = append(dir.Children, dirNode(child))
		}
	}
	return dir, nil
}

// Process rewrites every file under dir: contents first, then the name.
// It stops at the first error; files already rewritten stay rewritten.
func (w *Walker) Process(dir *DirNode, id core.ProjectIdentity, year int) error {
	for _, child := range dir.Children {
		switch child.Kind {
		case KindFile:
			if err := w.processFile(child.File, id, year); err != nil {
				return err
			}
		case KindDir:
			if err := w.Process(child.Dir, id, year); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *Walker) processFile(f *FileNode, id core.ProjectIdentity, year int) error {
	result, err := f.RewriteContents(w.fsys, id, year)
	if err != nil {
		return err
	}
	switch result {
	case ContentBinary:
		fmt.Fprintf(w.out, "Skipping binary file: %s\n", f.Name)
		w.stats.BinarySkipped++
	case ContentRewritten:
		w.stats.ContentsRewritten++
	}

	renamed, err := f.RewriteName(w.fsys, id)
	if err != nil {
		return err
	}
	if renamed {
		w.stats.FilesRenamed++
	}
	return nil
}

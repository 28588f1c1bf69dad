package fs

import (
	"os"
	"path/filepath"
)

// TempPrefix is the name prefix of the temp files WriteFileAtomic creates.
const TempPrefix = ".initialize-repository-tmp-"

// WriteFileAtomic writes data to path atomically using a temp file + rename.
// The temp file is created in the same directory as path so the rename stays on one filesystem.
// If the operation fails, the original file (if any) is left unchanged.
// The caller must ensure the parent directory exists.
func WriteFileAtomic(fs FS, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpPath, w, err := fs.CreateTemp(dir, TempPrefix+"*")
	if err != nil {
		return err
	}

	success := false
	defer func() {
		if !success {
			fs.Remove(tmpPath)
		}
	}()

	_, err = w.Write(data)
	if err != nil {
		w.Close()
		return err
	}

	if err := w.Close(); err != nil {
		return err
	}

	if err := fs.Chmod(tmpPath, perm); err != nil {
		return err
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

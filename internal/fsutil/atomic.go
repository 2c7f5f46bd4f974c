// Package fsutil holds filesystem helpers shared by the state store and the source list writer.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/topic-manager/internal/messages"
)

var (
	createTemp = os.CreateTemp
	rename     = os.Rename
)

// WriteFileAtomic writes data to filename by writing a temp file in the same directory,
// syncing it and renaming it over the target. Readers see either the old or the new content.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := createTemp(dir, "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFmt, dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFmt, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFmt, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFmt, tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFmt, tmpName, err)
	}
	if err := rename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameFmt, filename, err)
	}
	committed = true
	return nil
}

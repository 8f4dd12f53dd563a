package ipfsdeploy

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// DirSize returns the combined size of the regular files under dir.
// It stops at the first error, including dir not being a directory.
func DirSize(fsys afero.Fs, dir string) (int64, error) {
	info, err := fsys.Stat(dir)
	if err != nil {
		return 0, err
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%s is not a directory", dir)
	}

	// The trailing separator makes the walk follow a symlinked root.
	root := strings.TrimRight(dir, string(filepath.Separator)) + string(filepath.Separator)

	var total int64
	err = afero.Walk(fsys, root, func(_ string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// HumanSize formats n bytes with IEC units, e.g. "1.5 KiB".
func HumanSize(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

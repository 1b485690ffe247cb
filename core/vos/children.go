package vos

import (
	"io/fs"
	"strings"

	"github.com/spf13/afero"
)

// IsHidden reports whether a directory entry is hidden by convention.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ListChildren returns the entries of dir sorted by name. Hidden entries are
// dropped unless showHidden is set.
func ListChildren(fsys afero.Fs, dir string, showHidden bool) ([]fs.FileInfo, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	out := make([]fs.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if !showHidden && IsHidden(entry.Name()) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

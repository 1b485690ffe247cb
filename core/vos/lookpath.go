package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func findExecutable(fsys afero.Fs, file string) error {
	d, err := fsys.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches fsys for an executable named file in the directories
// named by the PATH variable of env. If file contains a slash, it is tried
// directly and the PATH is not consulted. The result may be an absolute path
// or a path relative to the current directory.
//
// An entry that exists but can't be executed is remembered; if no executable
// is found the search fails with fs.ErrPermission instead of ErrNotFound.
func LookPath(fsys afero.Fs, env VEnv, file string) (string, error) {
	if file == "" {
		return "", ErrNotFound
	}

	if strings.Contains(file, "/") {
		err := findExecutable(fsys, file)
		if err == nil {
			return file, nil
		}
		return "", err
	}

	var denied error
	for _, dir := range filepath.SplitList(env.Getenv(EnvPath)) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		switch err := findExecutable(fsys, path); {
		case err == nil:
			return path, nil
		case denied == nil && errors.Is(err, fs.ErrPermission):
			denied = err
		}
	}
	if denied != nil {
		return "", denied
	}
	return "", ErrNotFound
}

// PathResolver binds LookPath to a filesystem and environment, producing a
// function with the shape of exec.LookPath.
func PathResolver(fsys afero.Fs, env VEnv) func(string) (string, error) {
	return func(file string) (string, error) {
		return LookPath(fsys, env, file)
	}
}

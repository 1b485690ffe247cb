// Package vostest holds in-memory implementations of vos interfaces for tests.
package vostest

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/josephlewis42/trsh/core/vos"
	"github.com/spf13/afero"
)

// TestOS is a deterministic VOS whose working directory lives in Fs.
type TestOS struct {
	*vos.MapEnv

	Fs   afero.Fs
	Wd   string
	Host string
	UID  int
	User string
}

var _ vos.VOS = (*TestOS)(nil)

// NewTestOS creates a TestOS rooted at / for user "tr" on host "localhost".
// If fsys is nil a new in-memory filesystem is used.
func NewTestOS(fsys afero.Fs, environ ...string) *TestOS {
	if fsys == nil {
		fsys = afero.NewMemMapFs()
	}
	return &TestOS{
		MapEnv: vos.NewMapEnvFromEnvList(environ),
		Fs:     fsys,
		Wd:     "/",
		Host:   "localhost",
		UID:    1000,
		User:   "tr",
	}
}

func (t *TestOS) Getwd() (string, error) {
	return t.Wd, nil
}

// Chdir implements VOS.Chdir, relative paths resolve against Wd.
func (t *TestOS) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Join(t.Wd, dir)
	}
	dir = path.Clean(dir)

	info, err := t.Fs.Stat(dir)
	if err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: fmt.Errorf("not a directory")}
	}
	t.Wd = dir
	return nil
}

func (t *TestOS) Hostname() (string, error) {
	return t.Host, nil
}

func (t *TestOS) Getuid() int {
	return t.UID
}

func (t *TestOS) Username() string {
	return t.User
}

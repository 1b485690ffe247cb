package vos

import (
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func newPathFs(t *testing.T) afero.Fs {
	t.Helper()

	fsys := afero.NewMemMapFs()
	for path, mode := range map[string]fs.FileMode{
		"/bin/ls":          0755,
		"/usr/bin/ls":      0755,
		"/usr/bin/wc":      0755,
		"/usr/bin/notes":   0644,
		"/opt/bin/notes":   0755,
		"/home/tr/run.sh":  0700,
		"/home/tr/data.db": 0600,
	} {
		if err := afero.WriteFile(fsys, path, nil, mode); err != nil {
			t.Fatal(err)
		}
	}
	if err := fsys.MkdirAll("/usr/bin/dir", 0755); err != nil {
		t.Fatal(err)
	}
	return fsys
}

func TestLookPath(t *testing.T) {
	fsys := newPathFs(t)

	cases := map[string]struct {
		path    string
		file    string
		want    string
		wantErr error
	}{
		"first match wins": {
			path: "/bin:/usr/bin",
			file: "ls",
			want: "/bin/ls",
		},
		"later entry": {
			path: "/bin:/usr/bin",
			file: "wc",
			want: "/usr/bin/wc",
		},
		"skips non-executable": {
			path: "/usr/bin:/opt/bin",
			file: "notes",
			want: "/opt/bin/notes",
		},
		"only non-executable": {
			path:    "/usr/bin",
			file:    "notes",
			wantErr: fs.ErrPermission,
		},
		"directories are not commands": {
			path:    "/usr/bin",
			file:    "dir",
			wantErr: fs.ErrPermission,
		},
		"missing": {
			path:    "/bin:/usr/bin",
			file:    "nope",
			wantErr: ErrNotFound,
		},
		"empty PATH": {
			file:    "ls",
			wantErr: ErrNotFound,
		},
		"empty name": {
			path:    "/bin",
			file:    "",
			wantErr: ErrNotFound,
		},
		"slash bypasses PATH": {
			path: "/bin",
			file: "/home/tr/run.sh",
			want: "/home/tr/run.sh",
		},
		"slash not executable": {
			path:    "/bin",
			file:    "/home/tr/data.db",
			wantErr: fs.ErrPermission,
		},
		"slash missing": {
			path:    "/bin",
			file:    "/home/tr/missing",
			wantErr: fs.ErrNotExist,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			env := NewMapEnv()
			env.Setenv(EnvPath, tc.path)

			got, err := LookPath(fsys, env, tc.file)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPathResolver(t *testing.T) {
	env := NewMapEnvFromEnvList([]string{"PATH=/bin"})
	resolve := PathResolver(newPathFs(t), env)

	got, err := resolve("ls")
	assert.NoError(t, err)
	assert.Equal(t, "/bin/ls", got)

	// The environment is read on every call.
	env.Setenv(EnvPath, "/usr/bin")
	got, err = resolve("ls")
	assert.NoError(t, err)
	assert.Equal(t, "/usr/bin/ls", got)
}

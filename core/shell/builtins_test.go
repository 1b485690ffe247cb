package shell

import (
	"testing"

	"github.com/josephlewis42/trsh/core/vos"
	"github.com/stretchr/testify/assert"
)

func TestAllBuiltins(t *testing.T) {
	for _, name := range BuiltinNames() {
		t.Run(name, func(t *testing.T) {
			s, out, _ := newMemShell(t)

			assert.Equal(t, 0, AllBuiltins[name].Main(s, []string{name, "--help"}))
			assert.Contains(t, out.String(), "usage: ")
			assert.False(t, s.Quit, "--help shouldn't run the builtin")
		})
	}
}

func TestBuiltin_badFlag(t *testing.T) {
	s, out, _ := newMemShell(t)

	assert.Equal(t, 2, s.RunCommand("history -z"))
	assert.Contains(t, out.String(), "history: ")
	assert.Contains(t, out.String(), "usage: history [-c]")
}

func TestCd(t *testing.T) {
	t.Run("updates PWD and OLDPWD", func(t *testing.T) {
		s, _, testOS := newMemShell(t)

		assert.Equal(t, 0, s.RunCommand("cd /home/tr/src"))
		assert.Equal(t, "/home/tr/src", testOS.Getenv(vos.EnvPWD))
		assert.Equal(t, "/", testOS.Getenv(vos.EnvOldPWD))

		assert.Equal(t, 0, s.RunCommand("cd .."))
		assert.Equal(t, "/home/tr", testOS.Wd)
		assert.Equal(t, "/home/tr/src", testOS.Getenv(vos.EnvOldPWD))
	})

	t.Run("HOME not set", func(t *testing.T) {
		s, out, testOS := newMemShell(t)
		testOS.Unsetenv(vos.EnvHome)

		assert.Equal(t, 1, s.RunCommand("cd"))
		assert.Equal(t, "cd: HOME not set\n", out.String())
	})

	t.Run("OLDPWD not set", func(t *testing.T) {
		s, out, _ := newMemShell(t)

		assert.Equal(t, 1, s.RunCommand("cd -"))
		assert.Equal(t, "cd: OLDPWD not set\n", out.String())
	})

	t.Run("not a directory", func(t *testing.T) {
		s, out, testOS := newMemShell(t)

		assert.Equal(t, 1, s.RunCommand("cd /home/tr/notes.txt"))
		assert.Contains(t, out.String(), "cd: /home/tr/notes.txt: ")
		assert.Equal(t, "/", testOS.Wd)
		assert.Empty(t, testOS.Getenv(vos.EnvOldPWD))
	})
}

func TestChildren(t *testing.T) {
	t.Run("relative dir", func(t *testing.T) {
		s, out, _ := newMemShell(t)

		assert.Equal(t, 0, s.RunCommand("children home/tr"))
		assert.Equal(t, "notes.txt\nsrc/\n", out.String())
	})

	t.Run("colored dirs", func(t *testing.T) {
		s, out, _ := newMemShell(t)
		s.Color = ColorPrinter{Enabled: true}

		assert.Equal(t, 0, s.RunCommand("children /home"))
		assert.Contains(t, out.String(), "\x1b[")
		assert.Contains(t, out.String(), "tr/")
	})

	t.Run("too many arguments", func(t *testing.T) {
		s, out, _ := newMemShell(t)

		assert.Equal(t, 1, s.RunCommand("children / /tmp"))
		assert.Equal(t, "children: too many arguments\n", out.String())
	})
}

func TestHistory(t *testing.T) {
	s, out, _ := newMemShell(t)
	s.RunCommand("pwd")
	s.RunCommand("   ")
	s.RunCommand("history -c")

	assert.Empty(t, s.History())
	assert.Equal(t, 1, s.Reader.(*scriptedReader).resets)

	out.Reset()
	s.RunCommand("history")
	assert.Equal(t, "    1  history\n", out.String())
}

func TestHelp(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		s, out, _ := newMemShell(t)

		assert.Equal(t, 0, s.RunCommand("help cd"))
		assert.Contains(t, out.String(), "usage: cd [DIR]")
	})

	t.Run("unknown topic", func(t *testing.T) {
		s, out, _ := newMemShell(t)

		assert.Equal(t, 1, s.RunCommand("help ls"))
		assert.Equal(t, "help: no help topics match \"ls\"\n", out.String())
	})
}

func TestExit(t *testing.T) {
	for _, name := range []string{"exit", "quit"} {
		t.Run(name, func(t *testing.T) {
			s, _, _ := newMemShell(t)

			assert.Equal(t, 0, s.RunCommand(name))
			assert.True(t, s.Quit)
		})
	}
}

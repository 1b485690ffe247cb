package vos

import (
	"os"
	"os/user"
)

// HostOS is the VOS of the running process.
type HostOS struct{}

var _ VOS = HostOS{}

func (HostOS) UserHomeDir() (string, error) { return os.UserHomeDir() }
func (HostOS) Unsetenv(key string) error { return os.Unsetenv(key) }
func (HostOS) Setenv(key, value string) error { return os.Setenv(key, value) }
func (HostOS) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
func (HostOS) Getenv(key string) string { return os.Getenv(key) }
func (HostOS) Environ() []string { return os.Environ() }
func (HostOS) Getwd() (string, error) { return os.Getwd() }
func (HostOS) Chdir(dir string) error { return os.Chdir(dir) }
func (HostOS) Hostname() (string, error) { return os.Hostname() }
func (HostOS) Getuid() int { return os.Getuid() }

// Username looks up the current user, falling back to $USER.
func (HostOS) Username() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv(EnvUser)
}

// Package vos abstracts the parts of the host process a shell reads and
// changes: environment variables, the working directory and identity.
package vos

// VEnv represents a process environment.
type VEnv interface {
	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Setenv sets the value of the environment variable named by the key.
	// It returns an error, if any.
	Setenv(key, value string) error

	// LookupEnv retrieves the value of the environment variable named by the key.
	// If the variable is present in the environment the value (which may be
	// empty) is returned and the boolean is true. Otherwise the returned value
	// will be empty and the boolean will be false.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the key.
	// It returns the value, which will be empty if the variable is not present.
	Getenv(key string) string

	// Environ returns a copy of strings representing the environment, in the
	// form "key=value".
	Environ() []string
}

// VOS is the process a shell runs in. Children inherit its environment and
// working directory.
type VOS interface {
	VEnv

	// Getwd returns the working directory.
	Getwd() (string, error)
	// Chdir changes the working directory of the shell itself.
	Chdir(dir string) error

	Hostname() (string, error)
	Getuid() int
	// Username is the login name of the user running the shell.
	Username() string
}

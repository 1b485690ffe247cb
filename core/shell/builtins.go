package shell

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"

	"github.com/josephlewis42/trsh/core/vos"
	"github.com/pborman/getopt/v2"
)

// AllBuiltins holds a list of all registered shell builtins
var AllBuiltins = make(map[string]Builtin)

// Builtin is a command that runs inside the shell process.
type Builtin interface {
	Main(s *Shell, args []string) int
}

type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinNames returns the sorted names of all builtins.
func BuiltinNames() []string {
	var names []string
	for name := range AllBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinCommand parses the flags of a builtin.
type BuiltinCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (b *BuiltinCommand) Flags() *getopt.Set {
	if b.flags == nil {
		b.flags = getopt.New()
	}

	return b.flags
}

// PrintHelp writes help for the command to the given writer.
func (b *BuiltinCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, b.Use)
	fmt.Fprintln(w, b.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	b.Flags().PrintOptions(w)
}

// Run parses args and, if successful, calls the callback with the remaining
// operands.
func (b *BuiltinCommand) Run(s *Shell, args []string, callback func(operands []string) int) int {
	opts := b.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(s.Stderr, "%s: %s\n", args[0], err)
		b.PrintHelp(s.Stderr)
		return codeUsage
	}

	if *showHelp {
		b.PrintHelp(s.Stdout)
		return 0
	}

	return callback(opts.Args())
}

// Exit ends the shell.
func Exit(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   args[0],
		Short: "Exit the shell.",
	}

	return cmd.Run(s, args, func([]string) int {
		s.Quit = true
		return 0
	})
}

// Cd is the cd shell builtin
func Cd(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   "cd [DIR]",
		Short: "Change the working directory to DIR, $HOME by default. A DIR of - is $OLDPWD.",
	}

	return cmd.Run(s, args, func(operands []string) int {
		var dir string
		switch len(operands) {
		case 0:
			dir = s.OS.Getenv(vos.EnvHome)
			if dir == "" {
				fmt.Fprintf(s.Stderr, "%s: HOME not set\n", args[0])
				return 1
			}
		case 1:
			dir = operands[0]
			if dir == "-" {
				dir = s.OS.Getenv(vos.EnvOldPWD)
				if dir == "" {
					fmt.Fprintf(s.Stderr, "%s: OLDPWD not set\n", args[0])
					return 1
				}
				fmt.Fprintln(s.Stdout, dir)
			}
		default:
			fmt.Fprintf(s.Stderr, "%s: too many arguments\n", args[0])
			return 1
		}

		previous, _ := s.OS.Getwd()
		if err := s.OS.Chdir(dir); err != nil {
			var pathErr *fs.PathError
			if errors.As(err, &pathErr) {
				err = pathErr.Err
			}
			fmt.Fprintf(s.Stderr, "%s: %s: %v\n", args[0], dir, err)
			return 1
		}

		wd, _ := s.OS.Getwd()
		s.OS.Setenv(vos.EnvOldPWD, previous)
		s.OS.Setenv(vos.EnvPWD, wd)
		return 0
	})
}

// Pwd prints the working directory.
func Pwd(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(s, args, func([]string) int {
		wd, err := s.OS.Getwd()
		if err != nil {
			fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
			return 1
		}
		fmt.Fprintln(s.Stdout, wd)
		return 0
	})
}

// Children lists the entries of a directory.
func Children(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   "children [-a] [DIR]",
		Short: "List the entries of DIR, the working directory by default.",
	}
	all := cmd.Flags().BoolLong("all", 'a', "include hidden entries")

	return cmd.Run(s, args, func(operands []string) int {
		wd, err := s.OS.Getwd()
		if err != nil {
			fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
			return 1
		}

		var dir string
		switch len(operands) {
		case 0:
			dir = wd
		case 1:
			dir = operands[0]
			if !path.IsAbs(dir) {
				dir = path.Join(wd, dir)
			}
		default:
			fmt.Fprintf(s.Stderr, "%s: too many arguments\n", args[0])
			return 1
		}

		entries, err := vos.ListChildren(s.Fs, dir, *all)
		if err != nil {
			fmt.Fprintf(s.Stderr, "%s: %v\n", args[0], err)
			return 1
		}

		for _, entry := range entries {
			if entry.IsDir() {
				fmt.Fprintln(s.Stdout, s.Color.Sprintf(StyleBoldBlue, "%s/", entry.Name()))
			} else {
				fmt.Fprintln(s.Stdout, entry.Name())
			}
		}
		return 0
	})
}

// History prints or clears the lines read this session.
func History(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   "history [-c]",
		Short: "Display the history list with line numbers.",
	}
	clear := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(s, args, func([]string) int {
		if *clear {
			s.ClearHistory()
			return 0
		}

		for i, line := range s.History() {
			fmt.Fprintf(s.Stdout, "% 5d  %s\n", i+1, line)
		}
		return 0
	})
}

// Help lists the builtins.
func Help(s *Shell, args []string) int {
	cmd := &BuiltinCommand{
		Use:   "help [NAME]",
		Short: "List the builtins or show help for the builtin NAME.",
	}

	return cmd.Run(s, args, func(operands []string) int {
		if len(operands) > 0 {
			builtin, ok := AllBuiltins[operands[0]]
			if !ok {
				fmt.Fprintf(s.Stderr, "%s: no help topics match %q\n", args[0], operands[0])
				return 1
			}
			return builtin.Main(s, []string{operands[0], "--help"})
		}

		w := s.Stdout
		fmt.Fprintln(w, "These shell commands are defined internally.")
		fmt.Fprintln(w, "Type `help name' to find out more about the function `name'.")
		fmt.Fprintln(w)
		for _, name := range BuiltinNames() {
			fmt.Fprintf(w, "  %s\n", name)
		}
		return 0
	})
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["quit"] = BuiltinFunc(Exit)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["children"] = BuiltinFunc(Children)
	AllBuiltins["history"] = BuiltinFunc(History)
	AllBuiltins["help"] = BuiltinFunc(Help)
}

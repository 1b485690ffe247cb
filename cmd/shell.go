package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/josephlewis42/trsh/core/config"
	"github.com/josephlewis42/trsh/core/logger"
	"github.com/josephlewis42/trsh/core/shell"
	"github.com/spf13/cobra"
)

var (
	commandLine string
	noSplash    bool
)

// openEventLog returns the configured event logger and a function that
// releases it.
func openEventLog(cfg *config.Configuration) (*logger.Logger, func() error, error) {
	if cfg.EventLog == "" {
		return logger.NewNopLogger(), func() error { return nil }, nil
	}

	fd, err := cfg.OpenEventLog()
	if err != nil {
		return nil, nil, err
	}
	return logger.NewJsonLinesLogRecorder(fd), fd.Close, nil
}

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	diagnostics, err := logger.NewZap(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	defer diagnostics.Sync()

	events, closeEvents, err := openEventLog(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeEvents(); err != nil {
			log.Printf("Couldn't close event log: %v", err)
		}
	}()

	stdout := cmd.OutOrStdout()
	opts := shell.Options{
		Stdin:        cmd.InOrStdin(),
		Stdout:       stdout,
		Stderr:       cmd.ErrOrStderr(),
		Events:       events.NewSession(),
		Log:          diagnostics,
		Color:        shell.NewColorPrinter(cfg.Color, stdout),
		Prompt:       cfg.Prompt,
		MaxArgs:      cfg.MaxArgs,
		ShowStatus:   cfg.ShowStatus,
		RedirectPerm: cfg.RedirectMode(),
	}

	if cmd.Flags().Changed("command") {
		exitCode = shell.New(opts).RunCommand(commandLine)
		return nil
	}

	reader, err := shell.NewReadline(cmd.InOrStdin(), stdout, cmd.ErrOrStderr(), cfg.HistoryPath())
	if err != nil {
		return err
	}
	opts.Reader = reader

	sh := shell.New(opts)
	defer sh.Close()

	if cfg.Splash && !noSplash {
		shell.Splash(stdout, opts.Color, shell.IsTerminal(stdout))
	}

	exitCode = sh.Run()
	return nil
}

// writeBuiltins lists the shell builtins, one per line.
func writeBuiltins(w io.Writer) {
	for _, name := range shell.BuiltinNames() {
		fmt.Fprintln(w, name)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit with its status")
	rootCmd.Flags().BoolVar(&noSplash, "no-splash", false, "don't show the banner")
}

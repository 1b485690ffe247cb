package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephlewis42/trsh/core/config"
	"github.com/josephlewis42/trsh/core/logger"
	"github.com/josephlewis42/trsh/core/shell"
	"github.com/spf13/cobra"
)

// playgroundCmd runs the shell with a throwaway configuration
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the shell with a fresh configuration and debug logging.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir, err := os.MkdirTemp("", "playground")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		playgroundLogger := log.New(cmd.ErrOrStderr(), "[playground] ", 0)
		cfg, err := config.Initialize(dir, playgroundLogger)
		if err != nil {
			return err
		}
		cfg.Prompt = `[playground] \w\$ `
		cfg.Splash = false

		diagnostics, err := logger.NewZap("debug", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer diagnostics.Sync()

		logFd, err := cfg.OpenEventLog()
		if err != nil {
			return err
		}
		defer logFd.Close()
		logRecorder := logger.NewJsonLinesLogRecorder(logFd)

		playgroundLogger.Printf("Logging to: file://%s\n", dir)
		playgroundLogger.Printf("See logs with: tail -f %s\n", filepath.Join(dir, cfg.EventLog))
		playgroundLogger.Println(strings.Repeat("=", 80))

		reader, err := shell.NewReadline(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.HistoryPath())
		if err != nil {
			return err
		}

		sh := shell.New(shell.Options{
			Reader:       reader,
			Stdin:        cmd.InOrStdin(),
			Stdout:       cmd.OutOrStdout(),
			Stderr:       cmd.ErrOrStderr(),
			Events:       logRecorder.NewSession(),
			Log:          diagnostics,
			Color:        shell.NewColorPrinter(cfg.Color, cmd.OutOrStdout()),
			Prompt:       cfg.Prompt,
			MaxArgs:      cfg.MaxArgs,
			ShowStatus:   true,
			RedirectPerm: cfg.RedirectMode(),
		})
		defer sh.Close()

		code := sh.Run()
		fmt.Fprintf(cmd.OutOrStdout(), "Exit code: %d\n", code)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

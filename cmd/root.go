/*
Copyright © 2021 Joseph Lewis <joseph@josephlewis.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/josephlewis42/trsh/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	logLevel string

	// exitCode is returned to the OS after the command tree finishes.
	exitCode int
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Resolve(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config from %q: %w", cfgPath, err)
	}

	if logLevel != "" {
		configuration.LogLevel = logLevel
	}
	return configuration, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trsh",
	Short: "A tiny interactive shell",
	Long: `trsh reads command lines and runs them as child processes.

A line is split on white space into a command and its arguments. A single
"|" connects the output of one command to the input of another, a single
">" sends the output of a command to a file. There is no quoting, variable
expansion, globbing or job control.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	log.SetPrefix("[trsh] ")
	log.SetFlags(0)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "diagnostic log level (debug|info|warn|error), overrides the config")
}

// Package shell implements the interactive loop around the command pipeline.
//
// Each line goes through the same steps:
//
//  1. The line is split into words; there is no quoting, expansion or globbing.
//  2. The words are classified as a simple command, a pipe between two
//     commands or a command with its output redirected to a file.
//  3. Simple commands naming a builtin run inside the shell, everything else
//     is resolved on $PATH and run as child processes.
//  4. The shell waits for its children and reports failures before prompting
//     again.
package shell

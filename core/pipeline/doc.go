// Package pipeline turns a raw shell line into child processes.
//
// A line is tokenized into an Argv, classified into a Command (Simple, Pipe
// or Redirect) and handed to a Launcher which spawns at most two children,
// wires their standard descriptors and reaps them before returning.
package pipeline

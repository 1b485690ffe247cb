// Package logger records what happens in a shell session as newline delimited
// JSON events and aggregates those events into reports.
//
// Diagnostic logging for developers lives alongside it in zap.go.
package logger

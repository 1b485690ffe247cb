package logger

// LogEntry is a single event in the log. Exactly one of the event fields is
// set.
type LogEntry struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id,omitempty"`

	RunCommand        *RunCommand        `json:"run_command,omitempty"`
	UnknownCommand    *UnknownCommand    `json:"unknown_command,omitempty"`
	InvalidInvocation *InvalidInvocation `json:"invalid_invocation,omitempty"`
	Builtin           *Builtin           `json:"builtin,omitempty"`
}

// LogType is implemented by every event that can be stored in a LogEntry.
type LogType interface {
	setOn(le *LogEntry)
}

// GetLogType returns the event held by the entry or nil if there is none.
func (le *LogEntry) GetLogType() LogType {
	switch {
	case le.RunCommand != nil:
		return le.RunCommand
	case le.UnknownCommand != nil:
		return le.UnknownCommand
	case le.InvalidInvocation != nil:
		return le.InvalidInvocation
	case le.Builtin != nil:
		return le.Builtin
	}
	return nil
}

// RunCommand is logged when an external command was launched and reaped.
type RunCommand struct {
	Command  []string `json:"command"`
	Mode     string   `json:"mode"`
	Dir      string   `json:"dir,omitempty"`
	ExitKind string   `json:"exit_kind"`
	ExitCode int      `json:"exit_code"`
	Signal   string   `json:"signal,omitempty"`
}

func (e *RunCommand) setOn(le *LogEntry) { le.RunCommand = e }

// UnknownCommand is logged when a command couldn't be launched.
type UnknownCommand struct {
	Command      []string `json:"command"`
	Mode         string   `json:"mode"`
	Op           string   `json:"op,omitempty"`
	ErrorMessage string   `json:"error_message"`
}

func (e *UnknownCommand) setOn(le *LogEntry) { le.UnknownCommand = e }

// InvalidInvocation is logged when a line couldn't be turned into a command.
type InvalidInvocation struct {
	Command []string `json:"command"`
	Error   string   `json:"error"`
}

func (e *InvalidInvocation) setOn(le *LogEntry) { le.InvalidInvocation = e }

// Builtin is logged when a builtin ran inside the shell.
type Builtin struct {
	Command  []string `json:"command"`
	ExitCode int      `json:"exit_code"`
}

func (e *Builtin) setOn(le *LogEntry) { le.Builtin = e }

// Package clog provides the diagnostic log used by nom while it runs build
// steps. Every line is written as a fixed-width bracketed tag followed by the
// message:
//
//	[ERROR] command exited with exit code 7
//	[WARN ] step "lint" skipped on windows
//	[INFO ] Running Cmd: cc -Wall -c ./main.c
//
// Log levels:
//   - Debug: Verbose diagnostic information, only with --debug
//   - Info: Normal operational events, including every command launch
//   - Warn: Unexpected conditions that don't prevent the build
//   - Error: Failures of a launch, a wait, or a file operation
//
// Output destinations:
//   - Stdout: all enabled levels, untimestamped
//   - File: all enabled levels with an RFC3339 timestamp, when configured
package clog

import "strings"

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for verbose diagnostic information.
	// Only logged when debug mode is enabled.
	LevelDebug Level = iota
	// LevelInfo is for normal operational events.
	LevelInfo
	// LevelWarn is for unexpected conditions that don't prevent operation.
	LevelWarn
	// LevelError is for failures that affect functionality.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the bracketed prefix for the level, padded so that every
// known level occupies the same width.
func (l Level) Tag() string {
	switch l {
	case LevelDebug:
		return "[DEBUG]"
	case LevelInfo:
		return "[INFO ]"
	case LevelWarn:
		return "[WARN ]"
	case LevelError:
		return "[ERROR]"
	default:
		return "[?????]"
	}
}

// ParseLevel parses a level string (case-insensitive).
// Returns LevelInfo if the string is not recognized.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error", "err":
		return LevelError
	default:
		return LevelInfo
	}
}

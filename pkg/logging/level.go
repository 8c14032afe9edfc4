/*
Copyright (C) 2024 The CRIKit Authors.

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

package logging

import (
	"fmt"
	"log/slog"
	"strings"
)

// Level is a verbosity filter of the process-wide logger. Each level
// enables itself and every lower-severity level's output.
//
// The ordinal values are part of the C ABI (foreign callers compile
// against them), so they are fixed and must never be reordered.
type Level int32

const (
	// LevelOff is a level lower than all log levels: nothing is emitted.
	LevelOff Level = iota
	// LevelError enables error output only.
	LevelError
	// LevelWarn enables warning output and below.
	LevelWarn
	// LevelInfo enables informational output and below.
	LevelInfo
	// LevelDebug enables debugging output and below.
	LevelDebug
	// LevelTrace enables all output.
	LevelTrace
)

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= LevelOff && l <= LevelTrace
}

// String returns the lowercase name of the level, matching the snake-case
// identifiers of the C enum.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	case LevelTrace:
		return "trace"
	}
	return fmt.Sprintf("unknown(%d)", int32(l))
}

// ParseLevel parses a level by its name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// slog has no trace or off levels of its own, so the threshold is extended
// on both ends: trace sits below slog's debug, and off sits above anything
// a record can carry.
const (
	slogLevelTrace = slog.LevelDebug - 4
	slogLevelOff   = slog.LevelError + 128
)

// slogLevel returns the slog threshold that admits exactly the severities
// enabled by l.
func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelOff:
		return slogLevelOff
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	case LevelTrace:
		return slogLevelTrace
	}
	return slog.LevelInfo
}

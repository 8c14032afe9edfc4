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

// Package logging configures the process-wide diagnostic logger behind the
// log_init C symbol. The verbosity filter is a single shared value read by
// every thread and written rarely, so it is held in a slog.LevelVar and
// handler (re)installation is guarded by one mutex. Re-initialization is
// permitted and reconfigures the filter: the last writer wins.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// EnvLevel is the environment variable that, when set to a valid level
// name, pins the verbosity filter. While the pin is in place, Init calls
// asking for a different level fail without touching the active filter.
const EnvLevel = "CRIKIT_LOG"

// Format selects the output encoding of the installed handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var (
	mu        sync.Mutex
	levelVar  = &slog.LevelVar{}
	active    = LevelInfo
	format    Format
	installed bool
)

// Init installs level as the active verbosity filter, using the text
// handler on stderr. Calling it again reconfigures the filter
// (last-writer-wins). It returns an error when level is not a declared
// level, or when the filter is pinned by the EnvLevel environment variable
// to a different value; in both cases the active filter is left untouched.
func Init(level Level) error {
	return initialize(level, FormatText)
}

// Active returns the level currently filtering diagnostic output.
func Active() Level {
	mu.Lock()
	defer mu.Unlock()
	return active
}

// Enabled reports whether messages at severity l are currently emitted.
func Enabled(l Level) bool {
	if l == LevelOff {
		return false
	}
	return l <= Active()
}

func initialize(level Level, f Format) error {
	if !level.Valid() {
		return fmt.Errorf("invalid log level ordinal %d", int32(level))
	}

	mu.Lock()
	defer mu.Unlock()

	if env := os.Getenv(EnvLevel); env != "" {
		pinned, err := ParseLevel(env)
		if err != nil {
			return fmt.Errorf("%s environment override: %w", EnvLevel, err)
		}
		// The environment fixed the filter before we got a say. Make sure
		// the pinned configuration is in effect, then reject any attempt
		// to move away from it.
		ensureHandler(f)
		levelVar.Set(pinned.slogLevel())
		active = pinned
		if pinned != level {
			return fmt.Errorf("log level is fixed to %q by %s", pinned, EnvLevel)
		}
		return nil
	}

	ensureHandler(f)
	levelVar.Set(level.slogLevel())
	active = level
	return nil
}

// ensureHandler installs the slog default handler if missing or if the
// requested format differs from the installed one. The threshold lives in
// levelVar, so plain level changes never rebuild the handler.
func ensureHandler(f Format) {
	if installed && f == format {
		return
	}
	opts := &slog.HandlerOptions{Level: levelVar}
	var h slog.Handler
	if f == FormatJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	format = f
	installed = true
}

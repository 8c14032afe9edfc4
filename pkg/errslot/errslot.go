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

package errslot

/*
#include <pthread.h>

static unsigned long long errslot_thread_id()
{
	return (unsigned long long)pthread_self();
}
*/
import "C"
import (
	"log/slog"
	"sync"
)

// slots holds one message per OS thread, keyed by pthread identity.
// Each entry is only ever written and read from its own thread, so the
// map is the only shared state and sync.Map is all the locking needed.
var slots sync.Map // map[uint64]string

func threadID() uint64 {
	return uint64(C.errslot_thread_id())
}

// Update replaces the calling thread's last error with err. The event is
// also emitted at error level on the process logger.
func Update(err error) {
	slog.Error("setting last error", "err", err)
	slots.Store(threadID(), err.Error())
}

// UpdateIfErr records err into the calling thread's slot if it is non-nil,
// and is a no-op otherwise.
func UpdateIfErr(err error) {
	if err != nil {
		Update(err)
	}
}

// Message returns the calling thread's last error message. The second
// return value reports whether a message is stored. Reading does not
// clear the slot.
func Message() (string, bool) {
	v, ok := slots.Load(threadID())
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Length returns the byte length of the calling thread's message encoded
// as UTF-8, including one trailing null terminator byte, or 0 when no
// message is stored.
func Length() int {
	msg, ok := Message()
	if !ok {
		return 0
	}
	return len(msg) + 1
}

// Clear removes the calling thread's message, if any. This is a host-side
// facility (used mostly by tests and embedders); it is deliberately not
// exported over the C boundary, where a slot is only ever replaced by a
// newer failure.
func Clear() {
	slots.Delete(threadID())
}

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

// Package errslot stores the most recent error raised by a library call,
// scoped per OS thread, so that foreign callers can retrieve a failure
// description after the call has returned. Errors cannot cross the C
// boundary as rich values, so failing operations record a message here and
// return a plain sentinel to the caller, which then pulls the message
// through the accessors in symbols/lasterr.
//
// Slots are keyed by the calling thread's pthread identity. Calls arriving
// from C are pinned to their OS thread for their whole duration, so the
// identity observed while serving a call is stable. Go code using this
// package directly must hold runtime.LockOSThread() across the
// update-then-read sequence it cares about.
//
// A slot is empty until the first failure recorded on its thread, and a
// new failure fully replaces the previous message. Reads never clear the
// slot.
package errslot

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

package lasterr

/*
#include <stdint.h>
*/
import "C"
import (
	"unsafe"

	"github.com/crikit/ffi-sdk-go/pkg/errslot"
	"github.com/crikit/ffi-sdk-go/pkg/ptr"
)

//export last_error_length
func last_error_length() C.int {
	return C.int(errslot.Length())
}

//export last_error_message
func last_error_message(buffer *C.char, length C.int) C.int {
	if buffer == nil {
		return -1
	}

	msg, ok := errslot.Message()
	if !ok {
		// nothing to write
		return 0
	}

	required := len(msg) + 1
	if int(length) < required {
		return -1
	}

	buf, err := ptr.NewBytesReadWriter(unsafe.Pointer(buffer), int64(length), int64(length))
	if err != nil {
		return -1
	}
	if _, err := buf.Write(append([]byte(msg), 0)); err != nil {
		return -1
	}
	return C.int(required)
}

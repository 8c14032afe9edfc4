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

package ptr

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"reflect"
	"unsafe"
)

const cStringNullTerminator = byte(0)

// GoString returns a Go-friendly string view of a null-terminated C string.
// No memory is copied: the returned string aliases the C memory, so it is
// only valid as long as the underlying buffer is. A nil pointer yields the
// empty string.
func GoString(charPtr unsafe.Pointer) string {
	if charPtr == nil {
		return ""
	}
	len := int(C.strlen((*C.char)(charPtr)))
	var res string
	(*reflect.StringHeader)(unsafe.Pointer(&res)).Data = uintptr(charPtr)
	(*reflect.StringHeader)(unsafe.Pointer(&res)).Len = len
	return res
}

// StringBuffer is an owned, reusable, C-allocated buffer for null-terminated
// strings. It is meant to back C string return values whose lifetime must
// outlive the Go call that produced them. The zero value is an empty buffer
// ready for use. Buffers must be manually disposed of with Free().
type StringBuffer struct {
	charPtr unsafe.Pointer
	size    int
}

// Write copies str into the buffer, reallocating the underlying C memory
// if the current allocation is too small. A null terminator is appended.
func (s *StringBuffer) Write(str string) {
	strBytes := []byte(str)
	strSize := len(strBytes) + 1
	if s.charPtr == nil || s.size < strSize {
		s.Free()
		s.charPtr = unsafe.Pointer(C.malloc(C.size_t(strSize)))
		s.size = strSize
	}

	var buf []byte
	(*reflect.SliceHeader)(unsafe.Pointer(&buf)).Data = uintptr(s.charPtr)
	(*reflect.SliceHeader)(unsafe.Pointer(&buf)).Len = strSize
	(*reflect.SliceHeader)(unsafe.Pointer(&buf)).Cap = strSize
	copy(buf, strBytes)
	buf[strSize-1] = cStringNullTerminator
}

// CharPtr returns a pointer to the C-allocated string, or nil if the buffer
// is empty. The pointer stays valid until the next Write or Free.
func (s *StringBuffer) CharPtr() unsafe.Pointer {
	return s.charPtr
}

// String returns a Go string view of the buffer contents, with the same
// aliasing caveats as GoString.
func (s *StringBuffer) String() string {
	return GoString(s.charPtr)
}

// Free disposes of the C memory owned by the buffer. The buffer can be
// reused after being freed.
func (s *StringBuffer) Free() {
	if s.charPtr != nil {
		C.free(s.charPtr)
		s.charPtr = nil
		s.size = 0
	}
}

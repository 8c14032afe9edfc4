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

import (
	"io"
	"reflect"
	"testing"
	"unsafe"
)

// Creates a byte slice of the given length, fills it with the given value,
// and wraps it with a BytesReadWriter.
func createAndWrapBytes(length int, fill byte) ([]byte, BytesReadWriter, error) {
	bytes := make([]byte, length)
	for i := range bytes {
		bytes[i] = fill
	}
	bytesPtr := unsafe.Pointer((*reflect.SliceHeader)(unsafe.Pointer(&bytes)).Data)
	bytesReadWriter, err := NewBytesReadWriter(bytesPtr, int64(length), int64(length))
	return bytes, bytesReadWriter, err
}

func TestNewBytesReadWriter(t *testing.T) {
	var err error

	// Test nil buffer
	_, err = NewBytesReadWriter(nil, 10, 10)
	if err == nil {
		t.Errorf("Buffer argument is not properly checked")
	}

	// Test invalid capacity value
	bytes := make([]byte, 10)
	bytesPtr := unsafe.Pointer((*reflect.SliceHeader)(unsafe.Pointer(&bytes)).Data)
	_, err = NewBytesReadWriter(bytesPtr, 10, -1)
	if err == nil {
		t.Errorf("Capacity argument is not properly checked")
	}

	// Test invalid length value
	_, err = NewBytesReadWriter(bytesPtr, -1, 10)
	if err == nil {
		t.Errorf("Length argument is not properly checked")
	}

	_, err = NewBytesReadWriter(bytesPtr, 11, 10)
	if err == nil {
		t.Errorf("Length argument is not properly checked")
	}
}

func TestBytesReadWriterPointer(t *testing.T) {
	// Allocate a memory buffer and wrap it in a BytesReadWriter
	bytesFillValue := byte(10)
	bytes, bytesReadWriter, err := createAndWrapBytes(128, bytesFillValue)
	if err != nil {
		t.Error(err)
	}

	// The bytesReadWriter should read the contents of the buffer
	tmp := []byte{0}
	n, err := bytesReadWriter.Read(tmp)
	if err != nil {
		t.Error(err)
	} else if n != len(tmp) {
		t.Errorf("Expected %d bytes, but found %d", len(tmp), n)
	} else if tmp[0] != bytesFillValue {
		t.Errorf("Expected %d value, but found %d", bytesFillValue, tmp[0])
	}

	// Editing the buffer should make bytesReadWriter change too
	// because they point to the same memory location
	editPos := 0
	editByte := byte('X')
	bytes[editPos] = editByte
	_, err = bytesReadWriter.Seek(int64(editPos), io.SeekStart)
	if err != nil {
		t.Error(err)
	}
	_, err = bytesReadWriter.Read(tmp)
	if err != nil {
		t.Error(err)
	} else if tmp[0] != editByte {
		t.Errorf("Expected %d value, but found %d", editByte, tmp[0])
	}

	// Check that BufferPtr returns a correct pointer
	if unsafe.Pointer(&bytes[0]) != bytesReadWriter.BufferPtr() {
		t.Errorf("BufferPtr() does not return the correct pointer")
	}
}

func TestBytesReadWriterWrite(t *testing.T) {
	bytes, bytesReadWriter, err := createAndWrapBytes(8, byte(0))
	if err != nil {
		t.Error(err)
	}

	// Write within bounds
	n, err := bytesReadWriter.Write([]byte("abc"))
	if err != nil {
		t.Error(err)
	} else if n != 3 {
		t.Errorf("Expected writing %d bytes, but found %d", 3, n)
	} else if string(bytes[:3]) != "abc" {
		t.Errorf("Expected 'abc' in buffer, but found '%s'", string(bytes[:3]))
	}

	// Writing past the end of the buffer must be truncated and signaled
	n, err = bytesReadWriter.Write([]byte("0123456789"))
	if err != io.ErrShortWrite {
		t.Errorf("Expected %v, but found %v", io.ErrShortWrite, err)
	} else if n != 5 {
		t.Errorf("Expected writing %d bytes, but found %d", 5, n)
	}
}

func TestBytesReadWriterSeek(t *testing.T) {
	// Allocate a memory buffer and wrap it in a BytesReadWriter
	_, bytesReadWriter, err := createAndWrapBytes(128, byte(10))
	if err != nil {
		t.Error(err)
	}

	pos, err := bytesReadWriter.Seek(5, io.SeekStart)
	if err != nil {
		t.Error(err)
	} else if pos != 5 {
		t.Errorf("wrong seek result (SeekStart): expected %d, but found %d", 5, pos)
	}

	pos, err = bytesReadWriter.Seek(10, io.SeekCurrent)
	if err != nil {
		t.Error(err)
	} else if pos != 15 {
		t.Errorf("wrong seek result (SeekCurrent): expected %d, but found %d", 15, pos)
	}

	pos, err = bytesReadWriter.Seek(0, io.SeekEnd)
	if err != nil {
		t.Error(err)
	} else if pos != 128 {
		t.Errorf("wrong seek result (SeekEnd): expected %d, but found %d", 128, pos)
	}

	// Wrong whence
	_, err = bytesReadWriter.Seek(0, io.SeekEnd+1)
	if err == nil {
		t.Errorf("err should not be nil")
	}

	// Negative offset
	_, err = bytesReadWriter.Seek(-1, io.SeekStart)
	if err == nil {
		t.Errorf("err should not be nil")
	}

	// Going beyond the buffer len (SeekCurrent)
	_, err = bytesReadWriter.Seek(1, io.SeekCurrent)
	if err == nil {
		t.Errorf("err should not be nil")
	}

	// Going beyond the buffer len (SeekEnd)
	_, err = bytesReadWriter.Seek(129, io.SeekEnd)
	if err == nil {
		t.Errorf("err should not be nil")
	}

	// Going beyond the buffer len (SeekStart)
	_, err = bytesReadWriter.Seek(129, io.SeekStart)
	if err == nil {
		t.Errorf("err should not be nil")
	}
}

func TestBytesReadWriterReadAll(t *testing.T) {
	// Allocate a memory buffer and wrap it in a BytesReadWriter
	bytesFillValue := byte(10)
	bytes, bytesReadWriter, err := createAndWrapBytes(128, bytesFillValue)
	if err != nil {
		t.Error(err)
	}

	// Read the whole buffer and check for the expected content
	res, err := io.ReadAll(bytesReadWriter)
	if err != nil {
		t.Error(err)
	} else if len(res) != len(bytes) {
		t.Errorf("Expected reading %d bytes, but found %d", len(bytes), len(res))
	} else if int(bytesReadWriter.Offset()) != len(bytes) {
		t.Errorf("Expected offset %d, but found %d", len(bytes), len(res))
	}
	for i, b := range res {
		if b != bytesFillValue {
			t.Errorf("Expected %d value at position %d, but found %d", bytesFillValue, i, b)
		}
	}
}

func TestBytesReadWriterSetLen(t *testing.T) {
	// Create a BytesReadWriter with a given length
	length := 128
	_, bytesReadWriter, err := createAndWrapBytes(length, byte(0))
	if err != nil {
		t.Error(err)
	}

	// Check that length is properly set
	if int(bytesReadWriter.Len()) != length {
		t.Errorf("Expected %d value, but found %d", length, bytesReadWriter.Len())
	}

	// Check that a length larger than the capacity is properly bounded
	bytesReadWriter.SetLen(256)
	if int(bytesReadWriter.Len()) != length {
		t.Errorf("Expected %d value, but found %d", length, bytesReadWriter.Len())
	}

	// Check that a length below zero is properly bounded
	bytesReadWriter.SetLen(-5)
	if int(bytesReadWriter.Len()) != 0 {
		t.Errorf("Expected %d value, but found %d", 0, bytesReadWriter.Len())
	}

	// Check that a length smaller than the capacity is properly set
	bytesReadWriter.SetLen(64)
	if int(bytesReadWriter.Len()) != 64 {
		t.Errorf("Expected %d value, but found %d", 64, bytesReadWriter.Len())
	}
}

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
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"unsafe"
)

const (
	errCapacityFmt   = "invalid capacity value %d"
	errLengthFmt     = "invalid length value %d"
	errWhenceFmt     = "invalid whence value %d"
	errSeekOffsetFmt = "invalid seek offset %d"
)

var errNilBuffer = errors.New("invalid nil buffer pointer")

// BytesReadWriter is an opaque wrapper for fixed-size memory buffers, which
// can safely be used across the FFI boundary in a Go-friendly way. Its
// purpose is to provide safe random memory access through the read/write
// interface primitives, regardless of how the underlying buffer is
// physically allocated. For instance, this can be used to wrap a
// caller-provided C buffer, hiding both the type conversion magic and
// avoiding out-of-bounds memory operations. Read-only or write-only views
// of the memory can be obtained by casting this to either an io.Reader or
// an io.Writer.
type BytesReadWriter interface {
	io.ReadWriteSeeker
	//
	// BufferPtr returns an unsafe.Pointer to the underlying memory buffer.
	BufferPtr() unsafe.Pointer
	//
	// Len returns the number of valid bytes in the buffer.
	Len() int64
	//
	// SetLen changes the number of valid bytes in the buffer. Values are
	// clamped between zero and the buffer physical capacity.
	SetLen(len int64)
	//
	// Offset returns the current cursor position relative to the underlying
	// buffer. The cursor position represents the index of the next byte in
	// the buffer that will be available for read/write operations. This
	// value is altered through the usage of Seek, Read, and Write. By
	// definition, 0 <= Offset() <= Len().
	Offset() int64
}

// NewBytesReadWriter wraps a caller-owned memory buffer of the given
// physical capacity in a BytesReadWriter, with len valid bytes in it.
func NewBytesReadWriter(buffer unsafe.Pointer, len, cap int64) (BytesReadWriter, error) {
	if buffer == nil {
		return nil, errNilBuffer
	}
	if cap < 0 || cap > math.MaxInt {
		return nil, fmt.Errorf(errCapacityFmt, cap)
	}
	if len < 0 || len > cap {
		return nil, fmt.Errorf(errLengthFmt, len)
	}
	var bytes []byte
	(*reflect.SliceHeader)(unsafe.Pointer(&bytes)).Data = uintptr(buffer)
	(*reflect.SliceHeader)(unsafe.Pointer(&bytes)).Len = int(cap)
	(*reflect.SliceHeader)(unsafe.Pointer(&bytes)).Cap = int(cap)
	return &bytesReadWriter{
		buffer:     buffer,
		bytesAlias: bytes,
		offset:     0,
		len:        len,
		cap:        cap,
	}, nil
}

type bytesReadWriter struct {
	offset     int64
	len        int64
	cap        int64
	buffer     unsafe.Pointer
	bytesAlias []byte
}

func (b *bytesReadWriter) Read(p []byte) (n int, err error) {
	if b.offset >= b.len {
		return 0, io.EOF
	}
	n = copy(p, b.bytesAlias[b.offset:b.len])
	b.offset += int64(n)
	return n, nil
}

func (b *bytesReadWriter) Write(p []byte) (n int, err error) {
	for _, v := range p {
		if b.offset >= b.len {
			return n, io.ErrShortWrite
		}
		b.bytesAlias[b.offset] = v
		b.offset++
		n++
	}
	return n, nil
}

func (b *bytesReadWriter) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		// offset is relative to the buffer start
	case io.SeekCurrent:
		offset += b.offset
	case io.SeekEnd:
		offset = b.len - offset
	default:
		return 0, fmt.Errorf(errWhenceFmt, whence)
	}
	if offset < 0 || offset > b.len {
		return 0, fmt.Errorf(errSeekOffsetFmt, offset)
	}
	b.offset = offset
	return b.offset, nil
}

func (b *bytesReadWriter) BufferPtr() unsafe.Pointer {
	return b.buffer
}

func (b *bytesReadWriter) Len() int64 {
	return b.len
}

func (b *bytesReadWriter) SetLen(len int64) {
	if len < 0 {
		len = 0
	}
	if len > b.cap {
		len = b.cap
	}
	b.len = len
	if b.offset > b.len {
		b.offset = b.len
	}
}

func (b *bytesReadWriter) Offset() int64 {
	return b.offset
}

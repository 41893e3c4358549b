// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"github.com/helixos/lumina/driver"
)

// IndexBuffer is a buffer of 16-bit or 32-bit indices.
type IndexBuffer struct {
	typ driver.IndexType
	u16 *Buffer[uint16]
	u32 *Buffer[uint32]
}

// IndexBufferU16 creates an index buffer holding idx.
func IndexBufferU16(idx []uint16) *IndexBuffer {
	return &IndexBuffer{typ: driver.IndexU16, u16: BufferFrom(idx, driver.BIndex)}
}

// IndexBufferU32 creates an index buffer holding idx.
func IndexBufferU32(idx []uint32) *IndexBuffer {
	return &IndexBuffer{typ: driver.IndexU32, u32: BufferFrom(idx, driver.BIndex)}
}

// IndexType returns the type of the indices.
func (b *IndexBuffer) IndexType() driver.IndexType { return b.typ }

// Count returns the number of indices.
func (b *IndexBuffer) Count() int {
	if b.typ == driver.IndexU16 {
		return b.u16.Len()
	}
	return b.u32.Len()
}

// SizeBytes returns the size in bytes of the indices.
func (b *IndexBuffer) SizeBytes() int64 { return int64(b.Count()) * int64(b.typ.Size()) }

// Handle returns the native handle of b.
func (b *IndexBuffer) Handle() driver.BufferHandle {
	if b.typ == driver.IndexU16 {
		return b.u16.Handle()
	}
	return b.u32.Handle()
}

// SetHandle assigns the native handle of b.
// It panics if h is null or if b already has a handle.
func (b *IndexBuffer) SetHandle(h driver.BufferHandle) {
	if b.typ == driver.IndexU16 {
		b.u16.SetHandle(h)
	} else {
		b.u32.SetHandle(h)
	}
}

// HasPendingUpload returns whether b has staged bytes.
func (b *IndexBuffer) HasPendingUpload() bool {
	if b.typ == driver.IndexU16 {
		return b.u16.HasPendingUpload()
	}
	return b.u32.HasPendingUpload()
}

// TakeStaging returns a copy of the bytes pending upload
// and clears them.
func (b *IndexBuffer) TakeStaging() ([]byte, bool) {
	if b.typ == driver.IndexU16 {
		return b.u16.TakeStaging()
	}
	return b.u32.TakeStaging()
}

func (b *IndexBuffer) resource() Resource {
	if b.typ == driver.IndexU16 {
		return b.u16
	}
	return b.u32
}

// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gogpu/gputypes"
)

// IndexType describes the format of index buffer data.
type IndexType int

// Index types.
const (
	IndexU16 IndexType = iota
	IndexU32
)

// Size returns the size in bytes of a single index.
func (t IndexType) Size() int {
	if t == IndexU32 {
		return 4
	}
	return 2
}

// VkType returns the VkIndexType value of t.
func (t IndexType) VkType() uint32 { return uint32(t) }

// WGPU returns the WebGPU index format of t.
func (t IndexType) WGPU() gputypes.IndexFormat {
	switch t {
	case IndexU16:
		return gputypes.IndexFormatUint16
	case IndexU32:
		return gputypes.IndexFormatUint32
	}
	return gputypes.IndexFormatUndefined
}

// String returns the name of t.
func (t IndexType) String() string {
	switch t {
	case IndexU16:
		return "U16"
	case IndexU32:
		return "U32"
	}
	return "Unknown"
}

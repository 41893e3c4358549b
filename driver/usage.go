// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// BufferUsage indicates the intended use of a buffer.
type BufferUsage int

// Buffer usages.
const (
	// The buffer provides vertex data for draw calls.
	BVertex BufferUsage = iota
	// The buffer provides index data for draw calls.
	BIndex
	// The buffer provides constant data for shaders.
	BUniform
	// The buffer can be read and written in shaders.
	BStorage
	// The buffer provides indirect draw/dispatch arguments.
	BIndirect
	// The buffer is a copy source for uploads.
	BStaging
	// The buffer is a copy destination for downloads.
	BReadback
)

// Vulkan buffer usage bits.
const (
	vkBufTransferSrc = 0x1
	vkBufTransferDst = 0x2
	vkBufUniform     = 0x10
	vkBufStorage     = 0x20
	vkBufIndex       = 0x40
	vkBufVertex      = 0x80
	vkBufIndirect    = 0x100
)

var bufferUsages = [...]struct {
	name string
	vk   uint32
	wgpu gputypes.BufferUsage
}{
	BVertex: {"Vertex", vkBufVertex | vkBufTransferDst,
		gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst},
	BIndex: {"Index", vkBufIndex | vkBufTransferDst,
		gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst},
	BUniform: {"Uniform", vkBufUniform | vkBufTransferDst,
		gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst},
	BStorage: {"Storage", vkBufStorage | vkBufTransferDst | vkBufTransferSrc,
		gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst | gputypes.BufferUsageCopySrc},
	BIndirect: {"Indirect", vkBufIndirect | vkBufStorage | vkBufTransferDst,
		gputypes.BufferUsageIndirect | gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst},
	BStaging: {"Staging", vkBufTransferSrc,
		gputypes.BufferUsageMapWrite | gputypes.BufferUsageCopySrc},
	BReadback: {"Readback", vkBufTransferDst,
		gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst},
}

// BufferUsages returns every BufferUsage.
func BufferUsages() []BufferUsage {
	return []BufferUsage{BVertex, BIndex, BUniform, BStorage, BIndirect, BStaging, BReadback}
}

// Valid returns whether u is a defined BufferUsage.
func (u BufferUsage) Valid() bool { return u >= 0 && int(u) < len(bufferUsages) }

// String returns the name of u.
func (u BufferUsage) String() string {
	if !u.Valid() {
		return "Unknown"
	}
	return bufferUsages[u].name
}

// VkFlags returns the VkBufferUsageFlags value of u.
// It includes the transfer bits required to fill the
// buffer from staging memory.
func (u BufferUsage) VkFlags() uint32 {
	if !u.Valid() {
		return 0
	}
	return bufferUsages[u].vk
}

// WGPU returns the WebGPU buffer usage of u.
func (u BufferUsage) WGPU() gputypes.BufferUsage {
	if !u.Valid() {
		return gputypes.BufferUsageNone
	}
	return bufferUsages[u].wgpu
}

// TextureUsage is a mask indicating valid uses for a
// texture.
// Its bits have the same values as VkImageUsageFlagBits.
type TextureUsage uint32

// Texture usage flags.
const (
	// The texture can be the source of copy commands.
	TCopySrc TextureUsage = 1 << iota
	// The texture can be the destination of copy commands.
	TCopyDst
	// The texture can be sampled in shaders.
	TSampled
	// The texture can be read and written in shaders.
	TStorage
	// The texture can be used as color render target.
	TColorTarget
	// The texture can be used as depth/stencil render
	// target.
	TDepthTarget
	// The texture contents need not outlive a render pass.
	TTransient
	// The texture can be read as input attachment.
	TInput
)

// VkFlags returns the VkImageUsageFlags value of u.
func (u TextureUsage) VkFlags() uint32 { return uint32(u) }

// WGPU returns the WebGPU texture usage of u.
// Usages that WebGPU has no notion of are dropped.
func (u TextureUsage) WGPU() gputypes.TextureUsage {
	var w gputypes.TextureUsage
	if u&TCopySrc != 0 {
		w |= gputypes.TextureUsageCopySrc
	}
	if u&TCopyDst != 0 {
		w |= gputypes.TextureUsageCopyDst
	}
	if u&(TSampled|TInput) != 0 {
		w |= gputypes.TextureUsageTextureBinding
	}
	if u&TStorage != 0 {
		w |= gputypes.TextureUsageStorageBinding
	}
	if u&(TColorTarget|TDepthTarget) != 0 {
		w |= gputypes.TextureUsageRenderAttachment
	}
	return w
}

// String returns the names of the bits set in u, joined
// by "|".
func (u TextureUsage) String() string {
	names := [...]string{"CopySrc", "CopyDst", "Sampled", "Storage", "ColorTarget", "DepthTarget", "Transient", "Input"}
	var s []string
	for i, n := range names {
		if u&(1<<i) != 0 {
			s = append(s, n)
		}
	}
	if len(s) == 0 {
		return "None"
	}
	return strings.Join(s, "|")
}

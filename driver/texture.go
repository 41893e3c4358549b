// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"math/bits"

	"github.com/gogpu/gputypes"
)

// Dim3D is a three-dimensional size.
type Dim3D struct {
	Width, Height, Depth int
}

// SampleCount is the number of samples per texel.
// Its values are the same as VkSampleCountFlagBits, so a
// combination of counts is a valid mask of supported
// counts.
type SampleCount uint32

// Sample counts.
const (
	Sample1  SampleCount = 1
	Sample2  SampleCount = 2
	Sample4  SampleCount = 4
	Sample8  SampleCount = 8
	Sample16 SampleCount = 16
	Sample32 SampleCount = 32
	Sample64 SampleCount = 64
)

// Valid returns whether s is a single, defined sample
// count.
func (s SampleCount) Valid() bool { return s != 0 && s <= Sample64 && s&(s-1) == 0 }

// Count returns the number of samples.
func (s SampleCount) Count() int { return int(s) }

// VkFlags returns the VkSampleCountFlags value of s.
func (s SampleCount) VkFlags() uint32 { return uint32(s) }

// Has returns whether the mask s includes all counts
// in n.
func (s SampleCount) Has(n SampleCount) bool { return s&n == n }

// TextureDesc describes a texture.
type TextureDesc struct {
	Format TextureFormat
	Width  int
	Height int
	// Depth is 1 for 2D textures.
	Depth     int
	MipLevels int
	Samples   SampleCount
	Usage     TextureUsage
	Label     string
}

// Texture2DDesc returns the description of a
// single-level, single-sample 2D texture that can be
// sampled and filled by copy.
func Texture2DDesc(format TextureFormat, width, height int) TextureDesc {
	return TextureDesc{
		Format:    format,
		Width:     width,
		Height:    height,
		Depth:     1,
		MipLevels: 1,
		Samples:   Sample1,
		Usage:     TSampled | TCopyDst,
	}
}

// Texture3DDesc is like Texture2DDesc but for a 3D
// texture.
func Texture3DDesc(format TextureFormat, width, height, depth int) TextureDesc {
	d := Texture2DDesc(format, width, height)
	d.Depth = depth
	return d
}

// RenderTargetDesc returns the description of a render
// target.
// The usage is TDepthTarget for depth/stencil formats and
// TColorTarget otherwise.
func RenderTargetDesc(format TextureFormat, width, height int, samples SampleCount) TextureDesc {
	d := Texture2DDesc(format, width, height)
	d.Samples = samples
	if format.IsDepthStencil() {
		d.Usage = TDepthTarget
	} else {
		d.Usage = TColorTarget
	}
	return d
}

// WithMipLevels returns a copy of d with n mip levels.
func (d TextureDesc) WithMipLevels(n int) TextureDesc {
	d.MipLevels = n
	return d
}

// WithFullMipChain returns a copy of d with as many mip
// levels as its extent allows.
func (d TextureDesc) WithFullMipChain() TextureDesc {
	d.MipLevels = d.FullMipChain()
	return d
}

// WithSamples returns a copy of d with s samples.
func (d TextureDesc) WithSamples(s SampleCount) TextureDesc {
	d.Samples = s
	return d
}

// WithUsage returns a copy of d with usage u.
func (d TextureDesc) WithUsage(u TextureUsage) TextureDesc {
	d.Usage = u
	return d
}

// WithLabel returns a copy of d labeled s.
func (d TextureDesc) WithLabel(s string) TextureDesc {
	d.Label = s
	return d
}

// Is3D returns whether d describes a 3D texture.
func (d *TextureDesc) Is3D() bool { return d.Depth > 1 }

// FullMipChain returns the number of levels in a full
// mip chain for the extent of d.
func (d *TextureDesc) FullMipChain() int {
	n := max(d.Width, d.Height, d.Depth, 1)
	return bits.Len(uint(n))
}

// MipLevelSize returns the extent of the given mip level.
// No dimension is ever less than 1.
func (d *TextureDesc) MipLevelSize(level int) Dim3D {
	return Dim3D{
		Width:  max(d.Width>>level, 1),
		Height: max(d.Height>>level, 1),
		Depth:  max(d.Depth>>level, 1),
	}
}

// LevelBytes returns the size in bytes of the given mip
// level, tightly packed.
func (d *TextureDesc) LevelBytes(level int) int64 {
	sz := d.MipLevelSize(level)
	n := int64(d.Format.SizeBytes(sz.Width, sz.Height)) * int64(sz.Depth)
	if d.Samples > 1 {
		n *= int64(d.Samples)
	}
	return n
}

// SizeBytes returns the size in bytes of all mip levels
// of d, tightly packed.
func (d *TextureDesc) SizeBytes() (n int64) {
	for i := range max(d.MipLevels, 1) {
		n += d.LevelBytes(i)
	}
	return
}

// WGPU returns the WebGPU descriptor of d.
func (d *TextureDesc) WGPU() gputypes.TextureDescriptor {
	dim := gputypes.TextureDimension2D
	if d.Is3D() {
		dim = gputypes.TextureDimension3D
	}
	return gputypes.TextureDescriptor{
		Label:         d.Label,
		Size:          gputypes.NewExtent3D(uint32(d.Width), uint32(d.Height), uint32(max(d.Depth, 1))),
		MipLevelCount: uint32(max(d.MipLevels, 1)),
		SampleCount:   uint32(max(d.Samples, 1)),
		Dimension:     dim,
		Format:        d.Format.WGPU(),
		Usage:         d.Usage.WGPU(),
	}
}

// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gogpu/gputypes"
)

// TextureFormat describes the format of texture data.
type TextureFormat int

// Texture formats.
const (
	FormatUndefined TextureFormat = iota
	// Color, 8-bit channels.
	RGBA8
	RGBA8sRGB
	BGRA8
	BGRA8sRGB
	RG8
	R8
	// Color, packed.
	RGB10A2
	RG11B10F
	// Color, 16-bit channels.
	RGBA16F
	RG16F
	R16F
	// Color, 32-bit channels.
	RGBA32F
	RGB32F
	RG32F
	R32F
	RGBA32U
	R32U
	// Depth/Stencil.
	Depth16
	Depth24
	Depth32F
	Stencil8
	Depth24Stencil8
	Depth32FStencil8
	// Block-compressed.
	BC1
	BC1sRGB
	BC3
	BC3sRGB
	BC4
	BC5
	BC6H
	BC7
	BC7sRGB

	formatCount
)

const (
	fDepth = 1 << iota
	fStencil
	fCompressed
	fSRGB
)

type formatInfo struct {
	name     string
	vk       uint32
	wgpu     gputypes.TextureFormat
	bytes    int
	channels int
	flags    int
}

var formats = [formatCount]formatInfo{
	FormatUndefined:  {"Undefined", 0, gputypes.TextureFormatUndefined, 0, 0, 0},
	RGBA8:            {"RGBA8", 37, gputypes.TextureFormatRGBA8Unorm, 4, 4, 0},
	RGBA8sRGB:        {"RGBA8sRGB", 43, gputypes.TextureFormatRGBA8UnormSrgb, 4, 4, fSRGB},
	BGRA8:            {"BGRA8", 44, gputypes.TextureFormatBGRA8Unorm, 4, 4, 0},
	BGRA8sRGB:        {"BGRA8sRGB", 50, gputypes.TextureFormatBGRA8UnormSrgb, 4, 4, fSRGB},
	RG8:              {"RG8", 16, gputypes.TextureFormatRG8Unorm, 2, 2, 0},
	R8:               {"R8", 9, gputypes.TextureFormatR8Unorm, 1, 1, 0},
	RGB10A2:          {"RGB10A2", 64, gputypes.TextureFormatRGB10A2Unorm, 4, 4, 0},
	RG11B10F:         {"RG11B10F", 122, gputypes.TextureFormatRG11B10Ufloat, 4, 3, 0},
	RGBA16F:          {"RGBA16F", 97, gputypes.TextureFormatRGBA16Float, 8, 4, 0},
	RG16F:            {"RG16F", 83, gputypes.TextureFormatRG16Float, 4, 2, 0},
	R16F:             {"R16F", 76, gputypes.TextureFormatR16Float, 2, 1, 0},
	RGBA32F:          {"RGBA32F", 109, gputypes.TextureFormatRGBA32Float, 16, 4, 0},
	RGB32F:           {"RGB32F", 106, gputypes.TextureFormatUndefined, 12, 3, 0},
	RG32F:            {"RG32F", 103, gputypes.TextureFormatRG32Float, 8, 2, 0},
	R32F:             {"R32F", 100, gputypes.TextureFormatR32Float, 4, 1, 0},
	RGBA32U:          {"RGBA32U", 107, gputypes.TextureFormatRGBA32Uint, 16, 4, 0},
	R32U:             {"R32U", 98, gputypes.TextureFormatR32Uint, 4, 1, 0},
	Depth16:          {"Depth16", 124, gputypes.TextureFormatDepth16Unorm, 2, 1, fDepth},
	Depth24:          {"Depth24", 125, gputypes.TextureFormatDepth24Plus, 4, 1, fDepth},
	Depth32F:         {"Depth32F", 126, gputypes.TextureFormatDepth32Float, 4, 1, fDepth},
	Stencil8:         {"Stencil8", 127, gputypes.TextureFormatStencil8, 1, 1, fStencil},
	Depth24Stencil8:  {"Depth24Stencil8", 129, gputypes.TextureFormatDepth24PlusStencil8, 4, 2, fDepth | fStencil},
	Depth32FStencil8: {"Depth32FStencil8", 130, gputypes.TextureFormatDepth32FloatStencil8, 8, 2, fDepth | fStencil},
	BC1:              {"BC1", 133, gputypes.TextureFormatBC1RGBAUnorm, 8, 4, fCompressed},
	BC1sRGB:          {"BC1sRGB", 134, gputypes.TextureFormatBC1RGBAUnormSrgb, 8, 4, fCompressed | fSRGB},
	BC3:              {"BC3", 137, gputypes.TextureFormatBC3RGBAUnorm, 16, 4, fCompressed},
	BC3sRGB:          {"BC3sRGB", 138, gputypes.TextureFormatBC3RGBAUnormSrgb, 16, 4, fCompressed | fSRGB},
	BC4:              {"BC4", 139, gputypes.TextureFormatBC4RUnorm, 8, 1, fCompressed},
	BC5:              {"BC5", 141, gputypes.TextureFormatBC5RGUnorm, 16, 2, fCompressed},
	BC6H:             {"BC6H", 143, gputypes.TextureFormatBC6HRGBUfloat, 16, 3, fCompressed},
	BC7:              {"BC7", 145, gputypes.TextureFormatBC7RGBAUnorm, 16, 4, fCompressed},
	BC7sRGB:          {"BC7sRGB", 146, gputypes.TextureFormatBC7RGBAUnormSrgb, 16, 4, fCompressed | fSRGB},
}

func (f TextureFormat) info() *formatInfo {
	if f < 0 || f >= formatCount {
		return &formats[FormatUndefined]
	}
	return &formats[f]
}

// Formats returns every defined TextureFormat, excluding
// FormatUndefined.
func Formats() []TextureFormat {
	fs := make([]TextureFormat, 0, formatCount-1)
	for f := FormatUndefined + 1; f < formatCount; f++ {
		fs = append(fs, f)
	}
	return fs
}

// String returns the name of f.
func (f TextureFormat) String() string { return f.info().name }

// VkFormat returns the VkFormat value of f.
func (f TextureFormat) VkFormat() uint32 { return f.info().vk }

// WGPU returns the WebGPU format of f, or
// gputypes.TextureFormatUndefined if WebGPU has no
// equivalent.
func (f TextureFormat) WGPU() gputypes.TextureFormat { return f.info().wgpu }

// BytesPerPixel returns the size of a texel in bytes.
// For block-compressed formats, it returns the size of a
// 4x4 block instead.
func (f TextureFormat) BytesPerPixel() int { return f.info().bytes }

// Channels returns the number of components of f.
func (f TextureFormat) Channels() int { return f.info().channels }

// IsDepth returns whether f has a depth component.
func (f TextureFormat) IsDepth() bool { return f.info().flags&fDepth != 0 }

// HasStencil returns whether f has a stencil component.
func (f TextureFormat) HasStencil() bool { return f.info().flags&fStencil != 0 }

// IsDepthStencil returns whether f has either a depth or
// a stencil component.
func (f TextureFormat) IsDepthStencil() bool { return f.info().flags&(fDepth|fStencil) != 0 }

// IsCompressed returns whether f is block-compressed.
func (f TextureFormat) IsCompressed() bool { return f.info().flags&fCompressed != 0 }

// IsSRGB returns whether f stores color in the sRGB
// encoding.
func (f TextureFormat) IsSRGB() bool { return f.info().flags&fSRGB != 0 }

// BlockSize returns the width and height of the texel
// blocks of f.
func (f TextureFormat) BlockSize() int {
	if f.IsCompressed() {
		return 4
	}
	return 1
}

// RowPitch returns the size in bytes of a tightly packed
// row of texels (or blocks) of the given width.
func (f TextureFormat) RowPitch(width int) int {
	b := f.BlockSize()
	return (width + b - 1) / b * f.BytesPerPixel()
}

// SizeBytes returns the size in bytes of a tightly packed
// width by height image of format f.
func (f TextureFormat) SizeBytes(width, height int) int {
	b := f.BlockSize()
	return f.RowPitch(width) * ((height + b - 1) / b)
}

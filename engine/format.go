// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"encoding/binary"
	"math"

	"github.com/helixos/lumina/driver"
)

// Format is implemented by the format tag types that
// parameterize Texture.
type Format interface {
	Format() driver.TextureFormat
}

// Format tags.
type (
	RGBA8     struct{}
	RGBA8sRGB struct{}
	BGRA8     struct{}
	RGBA16F   struct{}
	RGBA32F   struct{}
	R8        struct{}
	Depth32F  struct{}
	Depth24S8 struct{}
	BC7       struct{}
)

func (RGBA8) Format() driver.TextureFormat     { return driver.RGBA8 }
func (RGBA8sRGB) Format() driver.TextureFormat { return driver.RGBA8sRGB }
func (BGRA8) Format() driver.TextureFormat     { return driver.BGRA8 }
func (RGBA16F) Format() driver.TextureFormat   { return driver.RGBA16F }
func (RGBA32F) Format() driver.TextureFormat   { return driver.RGBA32F }
func (R8) Format() driver.TextureFormat        { return driver.R8 }
func (Depth32F) Format() driver.TextureFormat  { return driver.Depth32F }
func (Depth24S8) Format() driver.TextureFormat { return driver.Depth24Stencil8 }
func (BC7) Format() driver.TextureFormat       { return driver.BC7 }

func formatOf[F Format]() driver.TextureFormat {
	var f F
	return f.Format()
}

// fromRGBA converts 8-bit RGBA pixels to pixels of
// format f.
// It returns false if f cannot be converted to.
func fromRGBA(f driver.TextureFormat, rgba []byte) ([]byte, bool) {
	switch f {
	case driver.RGBA8, driver.RGBA8sRGB:
		return rgba, true
	case driver.BGRA8, driver.BGRA8sRGB:
		dst := make([]byte, len(rgba))
		for i := 0; i+3 < len(rgba); i += 4 {
			dst[i], dst[i+1], dst[i+2], dst[i+3] = rgba[i+2], rgba[i+1], rgba[i], rgba[i+3]
		}
		return dst, true
	case driver.R8:
		dst := make([]byte, len(rgba)/4)
		for i := range dst {
			dst[i] = rgba[i*4]
		}
		return dst, true
	case driver.RGBA16F:
		dst := make([]byte, len(rgba)*2)
		for i, c := range rgba {
			binary.LittleEndian.PutUint16(dst[i*2:], unorm8ToHalf(c))
		}
		return dst, true
	case driver.RGBA32F:
		dst := make([]byte, len(rgba)*4)
		for i, c := range rgba {
			binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(float32(c)/255))
		}
		return dst, true
	}
	return nil, false
}

// unorm8ToHalf converts c/255 to a half-precision float.
// The mantissa is truncated.
func unorm8ToHalf(c byte) uint16 {
	if c == 0 {
		return 0
	}
	// c/255 is a normal half for every c > 0.
	b := math.Float32bits(float32(c) / 255)
	exp := (b>>23)&0xff - 127 + 15
	return uint16(exp<<10 | (b>>13)&0x3ff)
}

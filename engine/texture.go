// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"image"
	"sync"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/helixos/lumina/driver"
)

// Texture is a GPU texture whose format is given by F.
type Texture[F Format] struct {
	desc   driver.TextureDesc
	mu     sync.Mutex
	levels [][]byte
	handle atomic.Uint64
}

// NewTexture creates a texture described by desc.
// desc.Format is set to F's format.
// No native memory is allocated.
// It panics if desc.Format is defined and differs from
// F's format, or if the extent or mip count of desc is
// not valid.
func NewTexture[F Format](desc driver.TextureDesc) *Texture[F] {
	f := formatOf[F]()
	switch {
	case desc.Format != driver.FormatUndefined && desc.Format != f:
		panic("engine.NewTexture: format mismatch")
	case desc.Width <= 0 || desc.Height <= 0 || desc.Depth <= 0:
		panic("engine.NewTexture: extent is not positive")
	case desc.MipLevels <= 0 || desc.MipLevels > desc.FullMipChain():
		panic("engine.NewTexture: invalid mip level count")
	}
	desc.Format = f
	return &Texture[F]{desc: desc, levels: make([][]byte, desc.MipLevels)}
}

// TextureFromRGBA creates a single-level 2D texture from
// 8-bit RGBA pixels, converted to F's format.
// It panics if len(rgba) is not width*height*4, or if
// F is not a color format that 8-bit RGBA converts to.
func TextureFromRGBA[F Format](width, height int, rgba []byte) *Texture[F] {
	if width <= 0 || height <= 0 || len(rgba) != width*height*4 {
		panic("engine.TextureFromRGBA: byte length mismatch")
	}
	t := NewTexture[F](driver.Texture2DDesc(driver.FormatUndefined, width, height))
	data, ok := fromRGBA(t.desc.Format, rgba)
	if !ok {
		panic("engine.TextureFromRGBA: cannot convert to " + t.desc.Format.String())
	}
	t.levels[0] = append([]byte(nil), data...)
	return t
}

// TextureFromImage creates a 2D texture from img.
// If mips is set, the texture has a full mip chain
// whose levels are scaled down from img with bilinear
// filtering.
// It panics if F is not a color format that 8-bit RGBA
// converts to.
func TextureFromImage[F Format](img image.Image, mips bool) *Texture[F] {
	r := img.Bounds()
	desc := driver.Texture2DDesc(driver.FormatUndefined, r.Dx(), r.Dy())
	if mips {
		desc = desc.WithFullMipChain()
	}
	t := NewTexture[F](desc)
	src := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(src, src.Bounds(), img, r.Min, draw.Src)
	for i := range t.levels {
		if i > 0 {
			sz := t.desc.MipLevelSize(i)
			dst := image.NewRGBA(image.Rect(0, 0, sz.Width, sz.Height))
			draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
			src = dst
		}
		data, ok := fromRGBA(t.desc.Format, src.Pix)
		if !ok {
			panic("engine.TextureFromImage: cannot convert to " + t.desc.Format.String())
		}
		t.levels[i] = append([]byte(nil), data...)
	}
	return t
}

// Desc returns the description of t.
func (t *Texture[F]) Desc() driver.TextureDesc { return t.desc }

// Format returns the format of t.
func (t *Texture[F]) Format() driver.TextureFormat { return t.desc.Format }

// SizeBytes returns the size in bytes of every mip level
// of t.
func (t *Texture[F]) SizeBytes() int64 { return t.desc.SizeBytes() }

// Handle returns the native handle of t, which is null
// until SetHandle is called.
func (t *Texture[F]) Handle() driver.TextureHandle { return driver.TextureHandle(t.handle.Load()) }

// SetHandle assigns the native handle of t.
// It panics if h is null or if t already has a handle.
func (t *Texture[F]) SetHandle(h driver.TextureHandle) {
	if h.IsNull() {
		panic("engine.Texture.SetHandle: null handle")
	}
	if !t.handle.CompareAndSwap(0, uint64(h)) {
		panic("engine.Texture.SetHandle: handle already set")
	}
}

// WriteLevel stages data for upload to a mip level of t,
// replacing any data pending for that level.
// It panics if level is out of range or if len(data)
// differs from the level's size in bytes.
func (t *Texture[F]) WriteLevel(level int, data []byte) {
	if level < 0 || level >= t.desc.MipLevels {
		panic("engine.Texture.WriteLevel: level out of range")
	}
	if int64(len(data)) != t.desc.LevelBytes(level) {
		panic("engine.Texture.WriteLevel: byte length mismatch")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.levels[level] = append([]byte(nil), data...)
}

// HasPendingUpload returns whether t has staged bytes.
func (t *Texture[F]) HasPendingUpload() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range t.levels {
		if l != nil {
			return true
		}
	}
	return false
}

// TakeStaging returns the mip levels pending upload, in
// increasing level order, and clears them.
// It returns false if nothing is pending.
func (t *Texture[F]) TakeStaging() ([]LevelStaging, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var s []LevelStaging
	for i, l := range t.levels {
		if l != nil {
			s = append(s, LevelStaging{i, l})
			t.levels[i] = nil
		}
	}
	return s, len(s) > 0
}

// As2D returns a 2D view of t.
// It returns false if t is a 3D texture.
func (t *Texture[F]) As2D() (Texture2D, bool) {
	if t.desc.Is3D() {
		return Texture2D{}, false
	}
	return Texture2D{desc: t.desc}, true
}

func (t *Texture[F]) resetHandle() { t.handle.Store(0) }

// Texture2D describes the mip levels of a 2D texture.
type Texture2D struct {
	desc driver.TextureDesc
}

// Width returns the width of the base level.
func (t Texture2D) Width() int { return t.desc.Width }

// Height returns the height of the base level.
func (t Texture2D) Height() int { return t.desc.Height }

// MipLevels returns the number of mip levels.
func (t Texture2D) MipLevels() int { return t.desc.MipLevels }

// MipLevel returns the extent and size in bytes of the
// given mip level.
// It panics if level is out of range.
func (t Texture2D) MipLevel(level int) (width, height int, size int64) {
	if level < 0 || level >= t.desc.MipLevels {
		panic("engine.Texture2D.MipLevel: level out of range")
	}
	sz := t.desc.MipLevelSize(level)
	return sz.Width, sz.Height, t.desc.LevelBytes(level)
}

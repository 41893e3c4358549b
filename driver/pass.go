// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gogpu/gputypes"
)

// LoadOp is the type of an attachment's load operation.
type LoadOp int

// Load operations.
const (
	LLoad LoadOp = iota
	LClear
	LDontCare
)

// VkOp returns the VkAttachmentLoadOp value of op.
func (op LoadOp) VkOp() uint32 { return uint32(op) }

// WGPU returns the WebGPU load operation of op.
// WebGPU has no "don't care" load, so LDontCare maps to
// a clear.
func (op LoadOp) WGPU() gputypes.LoadOp {
	if op == LLoad {
		return gputypes.LoadOpLoad
	}
	return gputypes.LoadOpClear
}

// StoreOp is the type of an attachment's store operation.
type StoreOp int

// Store operations.
const (
	SStore StoreOp = iota
	SDontCare
)

// VkOp returns the VkAttachmentStoreOp value of op.
func (op StoreOp) VkOp() uint32 { return uint32(op) }

// WGPU returns the WebGPU store operation of op.
func (op StoreOp) WGPU() gputypes.StoreOp {
	if op == SStore {
		return gputypes.StoreOpStore
	}
	return gputypes.StoreOpDiscard
}

// ColorAttachment describes a color render target of a
// render pass.
type ColorAttachment struct {
	Format  TextureFormat
	Samples SampleCount
	Load    LoadOp
	Store   StoreOp
	Clear   [4]float32
	// Resolve requests a single-sample resolve of a
	// multisample target at the end of the pass.
	Resolve bool
}

// ClearColor returns a single-sample color attachment
// that is cleared to c and stored.
func ClearColor(format TextureFormat, c [4]float32) ColorAttachment {
	return ColorAttachment{Format: format, Samples: Sample1, Load: LClear, Store: SStore, Clear: c}
}

// LoadColor returns a single-sample color attachment
// that is loaded and stored.
func LoadColor(format TextureFormat) ColorAttachment {
	return ColorAttachment{Format: format, Samples: Sample1, Load: LLoad, Store: SStore}
}

// WithSamples returns a copy of a using s samples.
func (a ColorAttachment) WithSamples(s SampleCount) ColorAttachment {
	a.Samples = s
	return a
}

// WithStore returns a copy of a using store op.
func (a ColorAttachment) WithStore(op StoreOp) ColorAttachment {
	a.Store = op
	return a
}

// WithResolve returns a copy of a that resolves at the
// end of the pass.
func (a ColorAttachment) WithResolve() ColorAttachment {
	a.Resolve = true
	return a
}

// DepthAttachment describes the depth/stencil render
// target of a render pass.
type DepthAttachment struct {
	Format       TextureFormat
	Samples      SampleCount
	Load         LoadOp
	Store        StoreOp
	StencilLoad  LoadOp
	StencilStore StoreOp
	ClearDepth   float32
	ClearStencil uint32
	// ReadOnly marks the depth aspect as not written by
	// the pass. It is not checked against Store.
	ReadOnly bool
}

// ClearDepth returns a single-sample depth attachment
// that is cleared to depth and discarded at the end of
// the pass.
func ClearDepth(format TextureFormat, depth float32) DepthAttachment {
	return DepthAttachment{
		Format:       format,
		Samples:      Sample1,
		Load:         LClear,
		Store:        SDontCare,
		StencilLoad:  LClear,
		StencilStore: SDontCare,
		ClearDepth:   depth,
	}
}

// WithSamples returns a copy of a using s samples.
func (a DepthAttachment) WithSamples(s SampleCount) DepthAttachment {
	a.Samples = s
	return a
}

// WithStore returns a copy of a using store op for both
// aspects.
func (a DepthAttachment) WithStore(op StoreOp) DepthAttachment {
	a.Store = op
	a.StencilStore = op
	return a
}

// WithReadOnly returns a copy of a with ReadOnly set.
func (a DepthAttachment) WithReadOnly(ro bool) DepthAttachment {
	a.ReadOnly = ro
	return a
}

// RenderPassConfig describes the render targets of a
// render pass.
type RenderPassConfig struct {
	Color  []ColorAttachment
	Depth  *DepthAttachment
	Width  int
	Height int
	Layers int
	Label  string
}

// NewRenderPass returns a single-layer render pass
// configuration with no attachments.
func NewRenderPass(width, height int) RenderPassConfig {
	return RenderPassConfig{Width: width, Height: height, Layers: 1}
}

// WithColor returns a copy of c with a appended to its
// color attachments.
func (c RenderPassConfig) WithColor(a ColorAttachment) RenderPassConfig {
	c.Color = append(c.Color[:len(c.Color):len(c.Color)], a)
	return c
}

// WithDepth returns a copy of c using a as depth/stencil
// attachment.
func (c RenderPassConfig) WithDepth(a DepthAttachment) RenderPassConfig {
	c.Depth = &a
	return c
}

// WithLayers returns a copy of c rendering to n layers.
func (c RenderPassConfig) WithLayers(n int) RenderPassConfig {
	c.Layers = n
	return c
}

// WithLabel returns a copy of c labeled s.
func (c RenderPassConfig) WithLabel(s string) RenderPassConfig {
	c.Label = s
	return c
}

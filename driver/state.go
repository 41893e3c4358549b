// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gogpu/gputypes"
)

// CompareOp is the type of comparison functions.
type CompareOp int

// Comparison functions.
const (
	CNever CompareOp = iota
	CLess
	CEqual
	CLessEqual
	CGreater
	CNotEqual
	CGreaterEqual
	CAlways
)

// VkOp returns the VkCompareOp value of op.
func (op CompareOp) VkOp() uint32 { return uint32(op) }

// WGPU returns the WebGPU compare function of op.
func (op CompareOp) WGPU() gputypes.CompareFunction {
	if op < CNever || op > CAlways {
		return gputypes.CompareFunctionUndefined
	}
	// Same order, but WebGPU reserves zero.
	return gputypes.CompareFunction(op + 1)
}

// StencilOp is the type of stencil operations.
type StencilOp int

// Stencil operations.
const (
	SKeep StencilOp = iota
	SZero
	SReplace
	SIncClamp
	SDecClamp
	SInvert
	SIncWrap
	SDecWrap
)

// VkOp returns the VkStencilOp value of op.
func (op StencilOp) VkOp() uint32 { return uint32(op) }

// WGPU returns the WebGPU stencil operation of op.
func (op StencilOp) WGPU() gputypes.StencilOperation {
	switch op {
	case SKeep:
		return gputypes.StencilOperationKeep
	case SZero:
		return gputypes.StencilOperationZero
	case SReplace:
		return gputypes.StencilOperationReplace
	case SIncClamp:
		return gputypes.StencilOperationIncrementClamp
	case SDecClamp:
		return gputypes.StencilOperationDecrementClamp
	case SInvert:
		return gputypes.StencilOperationInvert
	case SIncWrap:
		return gputypes.StencilOperationIncrementWrap
	case SDecWrap:
		return gputypes.StencilOperationDecrementWrap
	}
	return gputypes.StencilOperationUndefined
}

// StencilOpState defines stencil test parameters for one
// face.
type StencilOpState struct {
	Fail        StencilOp
	Pass        StencilOp
	DepthFail   StencilOp
	Compare     CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

// DefaultStencilOpState returns a stencil state that
// always passes and keeps the stored value.
// Both masks are 0xFF.
func DefaultStencilOpState() StencilOpState {
	return StencilOpState{
		Fail:        SKeep,
		Pass:        SKeep,
		DepthFail:   SKeep,
		Compare:     CAlways,
		CompareMask: 0xFF,
		WriteMask:   0xFF,
	}
}

// WGPU returns the WebGPU stencil face state of s.
// Masks and reference are per-pipeline in WebGPU, so they
// are not part of the result.
func (s *StencilOpState) WGPU() gputypes.StencilFaceState {
	return gputypes.StencilFaceState{
		Compare:     s.Compare.WGPU(),
		FailOp:      s.Fail.WGPU(),
		DepthFailOp: s.DepthFail.WGPU(),
		PassOp:      s.Pass.WGPU(),
	}
}

// DepthStencilState defines the depth/stencil state of a
// graphics pipeline.
type DepthStencilState struct {
	// DepthTest enables the depth test.
	DepthTest bool
	// DepthWrite enables depth writes.
	DepthWrite   bool
	DepthCompare CompareOp
	// DepthBounds enables the depth bounds test.
	DepthBounds bool
	MinDepth    float32
	MaxDepth    float32
	// StencilTest enables the stencil test.
	StencilTest bool
	Front       StencilOpState
	Back        StencilOpState
}

// DefaultDepthStencil returns a state that tests and
// writes depth using CLess, with stencil disabled.
func DefaultDepthStencil() DepthStencilState {
	return DepthStencilState{
		DepthTest:    true,
		DepthWrite:   true,
		DepthCompare: CLess,
		MaxDepth:     1,
		Front:        DefaultStencilOpState(),
		Back:         DefaultStencilOpState(),
	}
}

// DepthStencilDisabled returns a state that neither tests
// nor writes depth or stencil.
func DepthStencilDisabled() DepthStencilState {
	ds := DefaultDepthStencil()
	ds.DepthTest = false
	ds.DepthWrite = false
	ds.DepthCompare = CAlways
	return ds
}

// DepthStencilReadOnly returns a state that tests depth
// using CLessEqual but does not write it.
func DepthStencilReadOnly() DepthStencilState {
	ds := DefaultDepthStencil()
	ds.DepthWrite = false
	ds.DepthCompare = CLessEqual
	return ds
}

// WithDepthCompare returns a copy of ds using op as depth
// comparison.
func (ds DepthStencilState) WithDepthCompare(op CompareOp) DepthStencilState {
	ds.DepthCompare = op
	return ds
}

// WithDepthWrite returns a copy of ds with depth writes
// set to enable.
func (ds DepthStencilState) WithDepthWrite(enable bool) DepthStencilState {
	ds.DepthWrite = enable
	return ds
}

// WithDepthBounds returns a copy of ds with the depth
// bounds test enabled for [lo, hi].
func (ds DepthStencilState) WithDepthBounds(lo, hi float32) DepthStencilState {
	ds.DepthBounds = true
	ds.MinDepth = lo
	ds.MaxDepth = hi
	return ds
}

// WithStencil returns a copy of ds with the stencil test
// enabled.
func (ds DepthStencilState) WithStencil(front, back StencilOpState) DepthStencilState {
	ds.StencilTest = true
	ds.Front = front
	ds.Back = back
	return ds
}

// WGPU returns the WebGPU depth/stencil state of ds for
// an attachment of the given format.
func (ds *DepthStencilState) WGPU(format TextureFormat) gputypes.DepthStencilState {
	s := gputypes.DepthStencilState{
		Format:            format.WGPU(),
		DepthWriteEnabled: ds.DepthTest && ds.DepthWrite,
		DepthCompare:      gputypes.CompareFunctionAlways,
		StencilFront:      gputypes.DefaultStencilFaceState(),
		StencilBack:       gputypes.DefaultStencilFaceState(),
	}
	if ds.DepthTest {
		s.DepthCompare = ds.DepthCompare.WGPU()
	}
	if ds.StencilTest {
		s.StencilFront = ds.Front.WGPU()
		s.StencilBack = ds.Back.WGPU()
		s.StencilReadMask = ds.Front.CompareMask
		s.StencilWriteMask = ds.Front.WriteMask
	}
	return s
}

// MultisampleState defines the multisample state of a
// graphics pipeline.
type MultisampleState struct {
	Samples SampleCount
	// SampleShading enables per-sample shading of at
	// least MinSampleShading of the samples.
	SampleShading    bool
	MinSampleShading float32
	SampleMask       uint64
	AlphaToCoverage  bool
	AlphaToOne       bool
}

// DefaultMultisample returns a single-sample state with
// all bits of the sample mask set.
func DefaultMultisample() MultisampleState {
	return MultisampleState{Samples: Sample1, SampleMask: ^uint64(0)}
}

// WithSamples returns a copy of ms using s samples.
func (ms MultisampleState) WithSamples(s SampleCount) MultisampleState {
	ms.Samples = s
	return ms
}

// WithSampleShading returns a copy of ms with sample
// shading enabled.
func (ms MultisampleState) WithSampleShading(frac float32) MultisampleState {
	ms.SampleShading = true
	ms.MinSampleShading = frac
	return ms
}

// WithAlphaToCoverage returns a copy of ms with
// alpha-to-coverage enabled.
func (ms MultisampleState) WithAlphaToCoverage() MultisampleState {
	ms.AlphaToCoverage = true
	return ms
}

// WGPU returns the WebGPU multisample state of ms.
func (ms *MultisampleState) WGPU() gputypes.MultisampleState {
	return gputypes.MultisampleState{
		Count:                  uint32(max(ms.Samples, 1)),
		Mask:                   ms.SampleMask,
		AlphaToCoverageEnabled: ms.AlphaToCoverage,
	}
}

// DomainOrigin is the origin of the tessellation domain.
type DomainOrigin int

// Domain origins.
const (
	DomainUpperLeft DomainOrigin = iota
	DomainLowerLeft
)

// TessellationState defines the tessellation state of a
// graphics pipeline.
type TessellationState struct {
	PatchControlPoints uint32
	Origin             DomainOrigin
}

// WithPatchControlPoints returns a copy of ts using n
// control points per patch.
func (ts TessellationState) WithPatchControlPoints(n uint32) TessellationState {
	ts.PatchControlPoints = n
	return ts
}

// WithOrigin returns a copy of ts using origin o.
func (ts TessellationState) WithOrigin(o DomainOrigin) TessellationState {
	ts.Origin = o
	return ts
}

// Topology is the type of primitive topologies.
type Topology int

// Primitive topologies.
const (
	TPoint Topology = iota
	TLine
	TLnStrip
	TTriangle
	TTriStrip
	TTriFan
	TPatch
)

// VkTopology returns the VkPrimitiveTopology value of t.
func (t Topology) VkTopology() uint32 {
	if t == TPatch {
		return 10
	}
	return uint32(t)
}

// WGPU returns the WebGPU topology of t.
// ok is false if WebGPU has no equivalent.
func (t Topology) WGPU() (top gputypes.PrimitiveTopology, ok bool) {
	switch t {
	case TPoint:
		return gputypes.PrimitiveTopologyPointList, true
	case TLine:
		return gputypes.PrimitiveTopologyLineList, true
	case TLnStrip:
		return gputypes.PrimitiveTopologyLineStrip, true
	case TTriangle:
		return gputypes.PrimitiveTopologyTriangleList, true
	case TTriStrip:
		return gputypes.PrimitiveTopologyTriangleStrip, true
	}
	return
}

// CullMode is the type of cull modes, which
// determines primitive culling based on triangle
// facing direction.
type CullMode int

// Cull modes.
const (
	CNone CullMode = iota
	CFront
	CBack
)

// VkFlags returns the VkCullModeFlags value of m.
func (m CullMode) VkFlags() uint32 { return uint32(m) }

// WGPU returns the WebGPU cull mode of m.
func (m CullMode) WGPU() gputypes.CullMode { return gputypes.CullMode(m) }

// FrontFace is the winding order of front-facing
// triangles.
type FrontFace int

// Winding orders.
const (
	CounterClockwise FrontFace = iota
	Clockwise
)

// VkFrontFace returns the VkFrontFace value of f.
func (f FrontFace) VkFrontFace() uint32 { return uint32(f) }

// WGPU returns the WebGPU front face of f.
func (f FrontFace) WGPU() gputypes.FrontFace { return gputypes.FrontFace(f) }

// PolygonMode is the type of triangle fill modes, which
// determines the final rasterization of triangles.
type PolygonMode int

// Triangle fill modes.
const (
	PFill PolygonMode = iota
	PLine
	PPoint
)

// VkMode returns the VkPolygonMode value of m.
func (m PolygonMode) VkMode() uint32 { return uint32(m) }

// RasterState defines the rasterization state of a
// graphics pipeline.
type RasterState struct {
	Fill  PolygonMode
	Cull  CullMode
	Front FrontFace
	// DepthClamp clamps depth instead of clipping.
	DepthClamp bool
	// DepthBias enables depth bias computation.
	DepthBias bool
	BiasValue float32
	BiasSlope float32
	BiasClamp float32
	LineWidth float32
}

// DefaultRaster returns a state that fills
// counter-clockwise triangles and culls back faces.
func DefaultRaster() RasterState {
	return RasterState{Fill: PFill, Cull: CBack, Front: CounterClockwise, LineWidth: 1}
}

// WithCull returns a copy of rs using cull mode m.
func (rs RasterState) WithCull(m CullMode) RasterState {
	rs.Cull = m
	return rs
}

// WithFill returns a copy of rs using fill mode m.
func (rs RasterState) WithFill(m PolygonMode) RasterState {
	rs.Fill = m
	return rs
}

// WithFrontFace returns a copy of rs using winding f.
func (rs RasterState) WithFrontFace(f FrontFace) RasterState {
	rs.Front = f
	return rs
}

// WithDepthBias returns a copy of rs with depth bias
// enabled.
func (rs RasterState) WithDepthBias(value, slope, clamp float32) RasterState {
	rs.DepthBias = true
	rs.BiasValue = value
	rs.BiasSlope = slope
	rs.BiasClamp = clamp
	return rs
}

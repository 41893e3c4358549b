// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strings"

	"github.com/gogpu/gputypes"
)

// ShaderStage is a mask of programmable stages.
// Its bits have the same values as VkShaderStageFlagBits.
type ShaderStage uint32

// Stages.
const (
	SVertex ShaderStage = 1 << iota
	STessCtrl
	STessEval
	SGeometry
	SFragment
	SCompute
	STask
	SMesh
)

// VkFlags returns the VkShaderStageFlags value of s.
func (s ShaderStage) VkFlags() uint32 { return uint32(s) }

// WGPU returns the WebGPU stage mask of s.
// Stages that WebGPU lacks are dropped.
func (s ShaderStage) WGPU() gputypes.ShaderStage {
	var w gputypes.ShaderStage
	if s&SVertex != 0 {
		w |= gputypes.ShaderStageVertex
	}
	if s&SFragment != 0 {
		w |= gputypes.ShaderStageFragment
	}
	if s&SCompute != 0 {
		w |= gputypes.ShaderStageCompute
	}
	return w
}

// String returns the names of the stages in s, joined by
// "|".
func (s ShaderStage) String() string {
	names := [...]string{"Vertex", "TessCtrl", "TessEval", "Geometry", "Fragment", "Compute", "Task", "Mesh"}
	var ns []string
	for i, n := range names {
		if s&(1<<i) != 0 {
			ns = append(ns, n)
		}
	}
	if len(ns) == 0 {
		return "None"
	}
	return strings.Join(ns, "|")
}

// ShaderFunc specifies a function within a SPIR-V
// binary.
type ShaderFunc struct {
	Stage ShaderStage
	Code  []byte
	Entry string
}

// DescType is the type of a descriptor.
type DescType int

// Descriptor types.
const (
	// Read/write buffer.
	DBuffer DescType = iota
	// Read/write image.
	DImage
	// Constant buffer.
	DConstant
	// Sampled texture.
	DTexture
	// Texture sampler.
	DSampler
)

// VkType returns the VkDescriptorType value of t.
func (t DescType) VkType() uint32 {
	switch t {
	case DBuffer:
		return 7
	case DImage:
		return 3
	case DConstant:
		return 6
	case DTexture:
		return 2
	}
	return 0
}

// Binding describes a resource binding visible to a
// pipeline's shaders.
type Binding struct {
	// Nr is the binding number.
	Nr     int
	Type   DescType
	Stages ShaderStage
	// Len is the array length, 1 for non-arrays.
	Len int
}

// WorkgroupSize is the local size of a compute or mesh
// workgroup.
type WorkgroupSize struct {
	X, Y, Z uint32
}

// D1 returns a one-dimensional workgroup size.
func D1(x uint32) WorkgroupSize { return WorkgroupSize{x, 1, 1} }

// D2 returns a two-dimensional workgroup size.
func D2(x, y uint32) WorkgroupSize { return WorkgroupSize{x, y, 1} }

// D3 returns a three-dimensional workgroup size.
func D3(x, y, z uint32) WorkgroupSize { return WorkgroupSize{x, y, z} }

// Invocations returns the number of invocations in a
// workgroup of size wg.
func (wg WorkgroupSize) Invocations() uint64 {
	return uint64(wg.X) * uint64(wg.Y) * uint64(wg.Z)
}

// Array returns wg as an array.
func (wg WorkgroupSize) Array() [3]uint32 { return [3]uint32{wg.X, wg.Y, wg.Z} }

// DispatchSize is the number of workgroups of a dispatch.
type DispatchSize struct {
	X, Y, Z uint32
}

// DispatchFor returns the smallest dispatch whose
// workgroups of size wg cover size invocations in every
// dimension.
// It panics if any dimension of wg is zero.
func DispatchFor(size [3]uint32, wg WorkgroupSize) DispatchSize {
	if wg.X == 0 || wg.Y == 0 || wg.Z == 0 {
		panic("driver.DispatchFor: zero workgroup dimension")
	}
	ceil := func(n, d uint32) uint32 { return n/d + min(n%d, 1) }
	return DispatchSize{
		X: ceil(size[0], wg.X),
		Y: ceil(size[1], wg.Y),
		Z: ceil(size[2], wg.Z),
	}
}

// Groups returns the total number of workgroups.
func (d DispatchSize) Groups() uint64 { return uint64(d.X) * uint64(d.Y) * uint64(d.Z) }

// ComputePipelineDesc describes a compute pipeline.
type ComputePipelineDesc struct {
	Func      ShaderFunc
	Workgroup WorkgroupSize
	Bindings  []Binding
	// PushConstants is the size in bytes of the push
	// constant range.
	PushConstants int
	Label         string
}

// NewComputePipeline returns the description of a
// compute pipeline running fn with workgroups of size wg.
func NewComputePipeline(fn ShaderFunc, wg WorkgroupSize) ComputePipelineDesc {
	fn.Stage = SCompute
	return ComputePipelineDesc{Func: fn, Workgroup: wg}
}

// WithBinding returns a copy of d with b appended to its
// bindings.
func (d ComputePipelineDesc) WithBinding(b Binding) ComputePipelineDesc {
	d.Bindings = append(d.Bindings[:len(d.Bindings):len(d.Bindings)], b)
	return d
}

// WithWorkgroup returns a copy of d using workgroups of
// size wg.
func (d ComputePipelineDesc) WithWorkgroup(wg WorkgroupSize) ComputePipelineDesc {
	d.Workgroup = wg
	return d
}

// WithPushConstants returns a copy of d with n bytes of
// push constants.
func (d ComputePipelineDesc) WithPushConstants(n int) ComputePipelineDesc {
	d.PushConstants = n
	return d
}

// WithLabel returns a copy of d labeled s.
func (d ComputePipelineDesc) WithLabel(s string) ComputePipelineDesc {
	d.Label = s
	return d
}

// Dispatch returns the dispatch size that covers size
// invocations using d's workgroup size.
func (d *ComputePipelineDesc) Dispatch(size [3]uint32) DispatchSize {
	return DispatchFor(size, d.Workgroup)
}

// MeshPipelineDesc describes a mesh shading pipeline.
// The task stage is optional.
type MeshPipelineDesc struct {
	Task     *ShaderFunc
	Mesh     ShaderFunc
	Fragment ShaderFunc
	// Workgroup is the local size of the mesh stage.
	Workgroup WorkgroupSize
	// Output limits of a mesh workgroup.
	MaxVertices   uint32
	MaxPrimitives uint32
	// Topology is the output primitive type, one of
	// TPoint, TLine or TTriangle.
	Topology     Topology
	Raster       RasterState
	DepthStencil DepthStencilState
	Multisample  MultisampleState
	ColorFormats []TextureFormat
	DepthFormat  TextureFormat
	Bindings     []Binding
	Label        string
}

// NewMeshPipeline returns the description of a mesh
// pipeline without a task stage, outputting triangles
// with default raster, depth/stencil and multisample
// state.
func NewMeshPipeline(mesh, frag ShaderFunc) MeshPipelineDesc {
	mesh.Stage = SMesh
	frag.Stage = SFragment
	return MeshPipelineDesc{
		Mesh:         mesh,
		Fragment:     frag,
		Workgroup:    D1(1),
		Topology:     TTriangle,
		Raster:       DefaultRaster(),
		DepthStencil: DefaultDepthStencil(),
		Multisample:  DefaultMultisample(),
	}
}

// WithTask returns a copy of d with a task stage.
func (d MeshPipelineDesc) WithTask(fn ShaderFunc) MeshPipelineDesc {
	fn.Stage = STask
	d.Task = &fn
	return d
}

// WithWorkgroup returns a copy of d whose mesh stage uses
// workgroups of size wg.
func (d MeshPipelineDesc) WithWorkgroup(wg WorkgroupSize) MeshPipelineDesc {
	d.Workgroup = wg
	return d
}

// WithOutputLimits returns a copy of d with the given
// output limits.
func (d MeshPipelineDesc) WithOutputLimits(vertices, primitives uint32) MeshPipelineDesc {
	d.MaxVertices = vertices
	d.MaxPrimitives = primitives
	return d
}

// WithTopology returns a copy of d outputting t.
func (d MeshPipelineDesc) WithTopology(t Topology) MeshPipelineDesc {
	d.Topology = t
	return d
}

// WithRaster returns a copy of d using rs.
func (d MeshPipelineDesc) WithRaster(rs RasterState) MeshPipelineDesc {
	d.Raster = rs
	return d
}

// WithDepthStencil returns a copy of d using ds.
func (d MeshPipelineDesc) WithDepthStencil(ds DepthStencilState) MeshPipelineDesc {
	d.DepthStencil = ds
	return d
}

// WithMultisample returns a copy of d using ms.
func (d MeshPipelineDesc) WithMultisample(ms MultisampleState) MeshPipelineDesc {
	d.Multisample = ms
	return d
}

// WithColorFormat returns a copy of d with f appended to
// its color formats.
func (d MeshPipelineDesc) WithColorFormat(f TextureFormat) MeshPipelineDesc {
	d.ColorFormats = append(d.ColorFormats[:len(d.ColorFormats):len(d.ColorFormats)], f)
	return d
}

// WithDepthFormat returns a copy of d rendering depth to
// format f.
func (d MeshPipelineDesc) WithDepthFormat(f TextureFormat) MeshPipelineDesc {
	d.DepthFormat = f
	return d
}

// WithBinding returns a copy of d with b appended to its
// bindings.
func (d MeshPipelineDesc) WithBinding(b Binding) MeshPipelineDesc {
	d.Bindings = append(d.Bindings[:len(d.Bindings):len(d.Bindings)], b)
	return d
}

// WithLabel returns a copy of d labeled s.
func (d MeshPipelineDesc) WithLabel(s string) MeshPipelineDesc {
	d.Label = s
	return d
}

// Stages returns the mask of stages used by d.
func (d *MeshPipelineDesc) Stages() ShaderStage {
	s := SMesh | SFragment
	if d.Task != nil {
		s |= STask
	}
	return s
}

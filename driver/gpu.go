// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

// GPU is the interface to an underlying backend.
// It allocates, fills and releases the native resources
// that handles refer to.
// A GPU is obtained from a call to Driver.Open.
// Implementations must be safe for concurrent use.
type GPU interface {
	// Driver returns the Driver that owns the GPU.
	Driver() Driver

	// NewBuffer allocates a buffer of size bytes.
	NewBuffer(size int64, usg BufferUsage) (BufferHandle, error)

	// NewTexture allocates a texture and its full set of
	// mip levels.
	NewTexture(desc *TextureDesc) (TextureHandle, error)

	// NewPipeline creates a new pipeline.
	// The state parameter must be a pointer to a
	// ComputePipelineDesc or a pointer to a
	// MeshPipelineDesc.
	NewPipeline(state any) (PipelineHandle, error)

	// WriteBuffer copies data into the buffer at byte
	// offset off.
	WriteBuffer(h BufferHandle, off int64, data []byte) error

	// WriteTexture copies data into the given mip level.
	// data must be tightly packed and no larger than the
	// level.
	WriteTexture(h TextureHandle, level int, data []byte) error

	// ReleaseBuffer releases a buffer.
	// The handle is invalid afterwards.
	ReleaseBuffer(h BufferHandle) error

	// ReleaseTexture releases a texture.
	// The handle is invalid afterwards.
	ReleaseTexture(h TextureHandle) error

	// ReleasePipeline releases a pipeline.
	// The handle is invalid afterwards.
	ReleasePipeline(h PipelineHandle) error

	// Limits returns the implementation limits.
	// They are immutable for the lifetime of the GPU.
	Limits() Limits
}

// BufferHandle is an opaque reference to a native buffer.
// The zero value is the null handle.
type BufferHandle uint64

// IsNull returns whether h is the null handle.
func (h BufferHandle) IsNull() bool { return h == 0 }

// TextureHandle is an opaque reference to a native
// texture.
// The zero value is the null handle.
type TextureHandle uint64

// IsNull returns whether h is the null handle.
func (h TextureHandle) IsNull() bool { return h == 0 }

// PipelineHandle is an opaque reference to a native
// pipeline.
// The zero value is the null handle.
type PipelineHandle uint64

// IsNull returns whether h is the null handle.
func (h PipelineHandle) IsNull() bool { return h == 0 }

// Limits describes implementation limits.
// These may vary across drivers and devices.
type Limits struct {
	// Maximum size of a buffer, in bytes.
	MaxBufferSize int64 `toml:"max_buffer_size" yaml:"max_buffer_size"`
	// Maximum width and height of 2D textures.
	MaxTexture2D int `toml:"max_texture_2d" yaml:"max_texture_2d"`
	// Maximum width, height and depth of 3D textures.
	MaxTexture3D int `toml:"max_texture_3d" yaml:"max_texture_3d"`
	// Maximum number of mip levels in a texture.
	MaxMipLevels int `toml:"max_mip_levels" yaml:"max_mip_levels"`
	// Sample counts supported by textures.
	Samples SampleCount `toml:"samples" yaml:"samples"`

	// Maximum workgroup size in each dimension.
	MaxWorkgroupSize [3]uint32 `toml:"max_workgroup_size" yaml:"max_workgroup_size"`
	// Maximum number of invocations in a workgroup.
	MaxWorkgroupInvocations uint32 `toml:"max_workgroup_invocations" yaml:"max_workgroup_invocations"`
	// Maximum dispatch count in each dimension.
	MaxDispatch [3]uint32 `toml:"max_dispatch" yaml:"max_dispatch"`

	// Maximum number of vertices and primitives output
	// by a mesh shader workgroup.
	MaxMeshVertices   uint32 `toml:"max_mesh_vertices" yaml:"max_mesh_vertices"`
	MaxMeshPrimitives uint32 `toml:"max_mesh_primitives" yaml:"max_mesh_primitives"`
}

// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"fmt"
)

// CheckBuffer checks a buffer allocation of size bytes
// against l.
// The error wraps ErrLimit.
func (l *Limits) CheckBuffer(size int64) error {
	if size <= 0 {
		return fmt.Errorf("%w: buffer size %d is not positive", ErrLimit, size)
	}
	if size > l.MaxBufferSize {
		return fmt.Errorf("%w: buffer size %d exceeds %d", ErrLimit, size, l.MaxBufferSize)
	}
	return nil
}

// CheckTexture checks desc against l.
// The error wraps ErrLimit.
func (l *Limits) CheckTexture(desc *TextureDesc) error {
	if desc.Format <= FormatUndefined || desc.Format >= formatCount {
		return fmt.Errorf("%w: texture format %d is undefined", ErrLimit, desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 || desc.Depth <= 0 {
		return fmt.Errorf("%w: texture extent %dx%dx%d is not positive", ErrLimit, desc.Width, desc.Height, desc.Depth)
	}
	max2, max3 := l.MaxTexture2D, l.MaxTexture3D
	if desc.Is3D() {
		if desc.Width > max3 || desc.Height > max3 || desc.Depth > max3 {
			return fmt.Errorf("%w: 3D texture extent %dx%dx%d exceeds %d", ErrLimit, desc.Width, desc.Height, desc.Depth, max3)
		}
	} else if desc.Width > max2 || desc.Height > max2 {
		return fmt.Errorf("%w: 2D texture extent %dx%d exceeds %d", ErrLimit, desc.Width, desc.Height, max2)
	}
	if desc.MipLevels <= 0 || desc.MipLevels > min(l.MaxMipLevels, desc.FullMipChain()) {
		return fmt.Errorf("%w: %d mip levels for extent %dx%dx%d", ErrLimit, desc.MipLevels, desc.Width, desc.Height, desc.Depth)
	}
	if !desc.Samples.Valid() || !l.Samples.Has(desc.Samples) {
		return fmt.Errorf("%w: sample count %d not supported", ErrLimit, desc.Samples)
	}
	if desc.Samples > 1 && desc.MipLevels > 1 {
		return fmt.Errorf("%w: multisample texture with %d mip levels", ErrLimit, desc.MipLevels)
	}
	return nil
}

// CheckWorkgroup checks wg against l.
// The error wraps ErrLimit.
func (l *Limits) CheckWorkgroup(wg WorkgroupSize) error {
	arr := wg.Array()
	for i, n := range arr {
		if n == 0 || n > l.MaxWorkgroupSize[i] {
			return fmt.Errorf("%w: workgroup size %v exceeds %v", ErrLimit, arr, l.MaxWorkgroupSize)
		}
	}
	if n := wg.Invocations(); n > uint64(l.MaxWorkgroupInvocations) {
		return fmt.Errorf("%w: %d workgroup invocations exceed %d", ErrLimit, n, l.MaxWorkgroupInvocations)
	}
	return nil
}

// CheckDispatch checks d against l.
// The error wraps ErrLimit.
func (l *Limits) CheckDispatch(d DispatchSize) error {
	if d.X > l.MaxDispatch[0] || d.Y > l.MaxDispatch[1] || d.Z > l.MaxDispatch[2] {
		return fmt.Errorf("%w: dispatch %v exceeds %v", ErrLimit, d, l.MaxDispatch)
	}
	return nil
}

// CheckPipeline checks a *ComputePipelineDesc or a
// *MeshPipelineDesc against l.
// The error wraps ErrLimit.
func (l *Limits) CheckPipeline(state any) error {
	switch s := state.(type) {
	case *ComputePipelineDesc:
		if len(s.Func.Code) == 0 {
			return fmt.Errorf("%w: compute pipeline has no code", ErrLimit)
		}
		return l.CheckWorkgroup(s.Workgroup)
	case *MeshPipelineDesc:
		if len(s.Mesh.Code) == 0 {
			return fmt.Errorf("%w: mesh pipeline has no mesh code", ErrLimit)
		}
		if s.MaxVertices > l.MaxMeshVertices || s.MaxPrimitives > l.MaxMeshPrimitives {
			return fmt.Errorf("%w: mesh output %d/%d exceeds %d/%d", ErrLimit, s.MaxVertices, s.MaxPrimitives, l.MaxMeshVertices, l.MaxMeshPrimitives)
		}
		if !s.Multisample.Samples.Valid() || !l.Samples.Has(s.Multisample.Samples) {
			return fmt.Errorf("%w: sample count %d not supported", ErrLimit, s.Multisample.Samples)
		}
		return l.CheckWorkgroup(s.Workgroup)
	}
	return fmt.Errorf("%w: unknown pipeline state %T", ErrLimit, state)
}

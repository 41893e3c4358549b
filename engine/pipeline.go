// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"sync/atomic"

	"github.com/helixos/lumina/driver"
)

// Pipeline is a compute or mesh pipeline to be created
// by a Device.
type Pipeline struct {
	compute *driver.ComputePipelineDesc
	mesh    *driver.MeshPipelineDesc
	handle  atomic.Uint64
}

// ComputePipeline creates a Pipeline from desc.
func ComputePipeline(desc driver.ComputePipelineDesc) *Pipeline {
	return &Pipeline{compute: &desc}
}

// MeshPipeline creates a Pipeline from desc.
func MeshPipeline(desc driver.MeshPipelineDesc) *Pipeline {
	return &Pipeline{mesh: &desc}
}

// IsCompute returns whether p is a compute pipeline.
func (p *Pipeline) IsCompute() bool { return p.compute != nil }

// Label returns the label of p's description.
func (p *Pipeline) Label() string {
	if p.compute != nil {
		return p.compute.Label
	}
	return p.mesh.Label
}

// Handle returns the native handle of p, which is null
// until p is committed.
func (p *Pipeline) Handle() driver.PipelineHandle { return driver.PipelineHandle(p.handle.Load()) }

func (p *Pipeline) state() any {
	if p.compute != nil {
		return p.compute
	}
	return p.mesh
}

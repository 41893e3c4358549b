// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package shader compiles WGSL to SPIR-V and reflects the
// entry points of the result into driver descriptions.
package shader

import (
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"

	"github.com/helixos/lumina/driver"
)

// Options configures compilation.
type Options struct {
	// Validate the IR before generating code.
	Validate bool
	// Emit debug names and line information.
	Debug bool
	// Target SPIR-V version.
	// The zero value means 1.3.
	Version spirv.Version
}

// EntryPoint describes a shader entry point.
type EntryPoint struct {
	Name  string
	Stage driver.ShaderStage
	// Workgroup is only set for compute, task and mesh
	// stages.
	Workgroup driver.WorkgroupSize
	// Output limits of a mesh stage.
	MaxVertices   uint32
	MaxPrimitives uint32
	Topology      driver.Topology
}

// Module is a compiled shader module.
type Module struct {
	SPIRV       []byte
	EntryPoints []EntryPoint
}

// ErrNoEntryPoint means that a module has no entry point
// with a given name and stage.
var ErrNoEntryPoint = errors.New("shader: no such entry point")

// Compile compiles WGSL source to a Module.
func Compile(src string, opts Options) (*Module, error) {
	ast, err := naga.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	mod, err := naga.LowerWithSource(ast, src)
	if err != nil {
		return nil, fmt.Errorf("shader: lowering: %w", err)
	}
	if opts.Validate {
		verrs, err := naga.Validate(mod)
		if err != nil {
			return nil, fmt.Errorf("shader: validation: %w", err)
		}
		if len(verrs) > 0 {
			errs := make([]error, len(verrs))
			for i := range verrs {
				errs[i] = verrs[i]
			}
			return nil, fmt.Errorf("shader: validation: %w", errors.Join(errs...))
		}
	}
	if opts.Version == (spirv.Version{}) {
		opts.Version = spirv.Version1_3
	}
	code, err := naga.GenerateSPIRV(mod, spirv.Options{Version: opts.Version, Debug: opts.Debug})
	if err != nil {
		return nil, fmt.Errorf("shader: %w", err)
	}
	m := &Module{SPIRV: code, EntryPoints: make([]EntryPoint, 0, len(mod.EntryPoints))}
	for i := range mod.EntryPoints {
		m.EntryPoints = append(m.EntryPoints, reflectEntry(&mod.EntryPoints[i]))
	}
	driver.Logger().Debug("shader: compiled", "bytes", len(code), "entry_points", len(m.EntryPoints))
	return m, nil
}

func reflectEntry(ep *ir.EntryPoint) EntryPoint {
	e := EntryPoint{Name: ep.Name}
	switch ep.Stage {
	case ir.StageVertex:
		e.Stage = driver.SVertex
	case ir.StageFragment:
		e.Stage = driver.SFragment
	case ir.StageCompute:
		e.Stage = driver.SCompute
	case ir.StageTask:
		e.Stage = driver.STask
	case ir.StageMesh:
		e.Stage = driver.SMesh
	}
	if e.Stage&(driver.SCompute|driver.STask|driver.SMesh) != 0 {
		wg := ep.Workgroup
		e.Workgroup = driver.D3(max(wg[0], 1), max(wg[1], 1), max(wg[2], 1))
	}
	if mi := ep.MeshInfo; mi != nil {
		e.MaxVertices = mi.MaxVertices
		e.MaxPrimitives = mi.MaxPrimitives
		switch mi.Topology {
		case ir.MeshTopologyPoints:
			e.Topology = driver.TPoint
		case ir.MeshTopologyLines:
			e.Topology = driver.TLine
		default:
			e.Topology = driver.TTriangle
		}
	}
	return e
}

// EntryPoint returns the entry point of m named name.
func (m *Module) EntryPoint(name string) (EntryPoint, bool) {
	for _, e := range m.EntryPoints {
		if e.Name == name {
			return e, true
		}
	}
	return EntryPoint{}, false
}

// Func returns the shader function of m named name.
func (m *Module) Func(name string) (driver.ShaderFunc, error) {
	e, ok := m.EntryPoint(name)
	if !ok {
		return driver.ShaderFunc{}, fmt.Errorf("%w: %q", ErrNoEntryPoint, name)
	}
	return driver.ShaderFunc{Stage: e.Stage, Code: m.SPIRV, Entry: name}, nil
}

func (m *Module) stageEntry(name string, stage driver.ShaderStage) (EntryPoint, error) {
	e, ok := m.EntryPoint(name)
	if !ok || e.Stage != stage {
		return EntryPoint{}, fmt.Errorf("%w: %s function %q", ErrNoEntryPoint, stage, name)
	}
	return e, nil
}

// ComputePipeline returns the description of a compute
// pipeline that runs the compute entry point named name
// with its declared workgroup size.
func (m *Module) ComputePipeline(name string) (driver.ComputePipelineDesc, error) {
	e, err := m.stageEntry(name, driver.SCompute)
	if err != nil {
		return driver.ComputePipelineDesc{}, err
	}
	fn := driver.ShaderFunc{Code: m.SPIRV, Entry: name}
	return driver.NewComputePipeline(fn, e.Workgroup).WithLabel(name), nil
}

// MeshPipeline returns the description of a mesh
// pipeline that runs the mesh entry point named mesh and
// the fragment entry point named frag, with the mesh
// stage's declared workgroup size and output limits.
func (m *Module) MeshPipeline(mesh, frag string) (driver.MeshPipelineDesc, error) {
	me, err := m.stageEntry(mesh, driver.SMesh)
	if err != nil {
		return driver.MeshPipelineDesc{}, err
	}
	if _, err := m.stageEntry(frag, driver.SFragment); err != nil {
		return driver.MeshPipelineDesc{}, err
	}
	d := driver.NewMeshPipeline(
		driver.ShaderFunc{Code: m.SPIRV, Entry: mesh},
		driver.ShaderFunc{Code: m.SPIRV, Entry: frag},
	)
	return d.WithWorkgroup(me.Workgroup).
		WithOutputLimits(me.MaxVertices, me.MaxPrimitives).
		WithTopology(me.Topology).
		WithLabel(mesh), nil
}

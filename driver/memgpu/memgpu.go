// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package memgpu implements a driver.Driver whose device
// memory is host memory.
// It executes nothing; it allocates, fills and releases
// resources as a real backend would, enforcing the limits
// of its Config.
//
// Importing the package registers a driver named
// "memgpu" that uses DefaultConfig.
package memgpu

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/helixos/lumina/driver"
	"github.com/helixos/lumina/internal/blockalloc"
	"github.com/helixos/lumina/internal/slot"
)

func init() {
	driver.Register(New(DefaultConfig()))
}

// Driver implements driver.Driver.
type Driver struct {
	cfg Config
	mu  sync.Mutex
	gpu *GPU
	// Emptied tables of the last closed GPU.
	// The next GPU reuses them so that its handles never
	// equal handles of the closed one.
	tabs tables
}

// New creates a new Driver.
// It does not register the driver.
// It panics if cfg is not valid.
func New(cfg Config) *Driver {
	if err := cfg.Validate(); err != nil {
		panic("memgpu.New: " + err.Error())
	}
	return &Driver{cfg: cfg}
}

// Open initializes the driver.
func (d *Driver) Open() (driver.GPU, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gpu == nil {
		d.gpu = newGPU(d)
		driver.Logger().Debug("memgpu: opened", "name", d.cfg.Name, "heap", d.cfg.HeapSize)
	}
	return d.gpu, nil
}

// Name returns the driver name.
func (d *Driver) Name() string { return d.cfg.Name }

// Config returns the driver configuration.
func (d *Driver) Config() Config { return d.cfg }

// Close deinitializes the driver.
// Every resource of the GPU is released.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.gpu != nil {
		g := d.gpu
		g.mu.Lock()
		g.closed = true
		g.heap = nil
		g.alloc.Reset()
		g.bufs.Clear()
		g.texs.Clear()
		g.pipes.Clear()
		d.tabs = g.tables
		g.tables = tables{}
		g.mu.Unlock()
		d.gpu = nil
		driver.Logger().Debug("memgpu: closed", "name", d.cfg.Name)
	}
}

// ErrOutOfRange means that a transfer does not fit in
// the destination resource.
var ErrOutOfRange = errors.New("memgpu: transfer out of range")

// ErrClosed means that the GPU's driver was closed.
var ErrClosed = errors.New("memgpu: driver closed")

type buffer struct {
	off   int64
	size  int64
	usage driver.BufferUsage
}

type texture struct {
	off  int64
	desc driver.TextureDesc
	// Offset of each mip level relative to off.
	levels []int64
}

type tables struct {
	bufs  slot.Table[buffer]
	texs  slot.Table[texture]
	pipes slot.Table[any]
}

// GPU implements driver.GPU.
// It is safe for concurrent use.
type GPU struct {
	drv    *Driver
	mu     sync.Mutex
	closed bool
	heap   []byte
	alloc  *blockalloc.Alloc
	tables
}

// newGPU creates a GPU for d.
// d.mu must be held.
func newGPU(d *Driver) *GPU {
	a := blockalloc.New(d.cfg.HeapSize, d.cfg.BlockSize)
	g := &GPU{
		drv:    d,
		heap:   make([]byte, a.Cap()),
		alloc:  a,
		tables: d.tabs,
	}
	d.tabs = tables{}
	return g
}

// Driver returns the Driver that owns g.
func (g *GPU) Driver() driver.Driver { return g.drv }

// Limits returns the limits from the driver's Config.
func (g *GPU) Limits() driver.Limits { return g.drv.cfg.Limits }

func (g *GPU) reserve(n int64) (int64, error) {
	if g.closed {
		return 0, ErrClosed
	}
	off, ok := g.alloc.Reserve(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d bytes requested, %d free", driver.ErrNoDeviceMemory, n, g.alloc.Free())
	}
	// Memory is zeroed on allocation.
	clear(g.heap[off : off+n])
	return off, nil
}

// NewBuffer allocates a buffer of size bytes.
func (g *GPU) NewBuffer(size int64, usg driver.BufferUsage) (driver.BufferHandle, error) {
	lim := g.Limits()
	if err := lim.CheckBuffer(size); err != nil {
		return 0, err
	}
	if !usg.Valid() {
		return 0, fmt.Errorf("memgpu: invalid buffer usage %d", usg)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	off, err := g.reserve(size)
	if err != nil {
		return 0, err
	}
	h := driver.BufferHandle(g.bufs.Insert(buffer{off, size, usg}))
	driver.Logger().Debug("memgpu: buffer created", "handle", uint64(h), "size", size, "usage", usg)
	return h, nil
}

// NewTexture allocates a texture.
func (g *GPU) NewTexture(desc *driver.TextureDesc) (driver.TextureHandle, error) {
	lim := g.Limits()
	if err := lim.CheckTexture(desc); err != nil {
		return 0, err
	}
	levels := make([]int64, desc.MipLevels)
	var size int64
	for i := range levels {
		levels[i] = size
		size += desc.LevelBytes(i)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	off, err := g.reserve(size)
	if err != nil {
		return 0, err
	}
	h := driver.TextureHandle(g.texs.Insert(texture{off, *desc, levels}))
	driver.Logger().Debug("memgpu: texture created", "handle", uint64(h), "format", desc.Format, "size", size)
	return h, nil
}

// NewPipeline validates and stores a copy of state,
// which must be a *driver.ComputePipelineDesc or a
// *driver.MeshPipelineDesc.
func (g *GPU) NewPipeline(state any) (driver.PipelineHandle, error) {
	lim := g.Limits()
	if err := lim.CheckPipeline(state); err != nil {
		return 0, err
	}
	var cp any
	switch s := state.(type) {
	case *driver.ComputePipelineDesc:
		cp = *s
	case *driver.MeshPipelineDesc:
		cp = *s
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return 0, ErrClosed
	}
	h := driver.PipelineHandle(g.pipes.Insert(cp))
	driver.Logger().Debug("memgpu: pipeline created", "handle", uint64(h), "type", fmt.Sprintf("%T", state))
	return h, nil
}

// WriteBuffer copies data into the buffer at byte offset
// off.
func (g *GPU) WriteBuffer(h driver.BufferHandle, off int64, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bufs.Get(uint64(h))
	if !ok {
		return fmt.Errorf("%w: buffer %#x", driver.ErrInvalidHandle, uint64(h))
	}
	if off < 0 || off+int64(len(data)) > b.size {
		return fmt.Errorf("%w: %d bytes at offset %d of %d-byte buffer", ErrOutOfRange, len(data), off, b.size)
	}
	copy(g.heap[b.off+off:], data)
	return nil
}

// WriteTexture copies data into a mip level of the
// texture.
func (g *GPU) WriteTexture(h driver.TextureHandle, level int, data []byte) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.texs.Get(uint64(h))
	if !ok {
		return fmt.Errorf("%w: texture %#x", driver.ErrInvalidHandle, uint64(h))
	}
	if level < 0 || level >= len(t.levels) {
		return fmt.Errorf("%w: mip level %d of %d", ErrOutOfRange, level, len(t.levels))
	}
	if n := t.desc.LevelBytes(level); int64(len(data)) > n {
		return fmt.Errorf("%w: %d bytes for %d-byte mip level %d", ErrOutOfRange, len(data), n, level)
	}
	copy(g.heap[t.off+t.levels[level]:], data)
	return nil
}

// ReadBuffer returns a copy of n bytes of the buffer
// starting at byte offset off.
func (g *GPU) ReadBuffer(h driver.BufferHandle, off, n int64) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bufs.Get(uint64(h))
	if !ok {
		return nil, fmt.Errorf("%w: buffer %#x", driver.ErrInvalidHandle, uint64(h))
	}
	if off < 0 || n < 0 || off+n > b.size {
		return nil, fmt.Errorf("%w: %d bytes at offset %d of %d-byte buffer", ErrOutOfRange, n, off, b.size)
	}
	return bytes.Clone(g.heap[b.off+off : b.off+off+n]), nil
}

// ReadTexture returns a copy of a mip level of the
// texture.
func (g *GPU) ReadTexture(h driver.TextureHandle, level int) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.texs.Get(uint64(h))
	if !ok {
		return nil, fmt.Errorf("%w: texture %#x", driver.ErrInvalidHandle, uint64(h))
	}
	if level < 0 || level >= len(t.levels) {
		return nil, fmt.Errorf("%w: mip level %d of %d", ErrOutOfRange, level, len(t.levels))
	}
	start := t.off + t.levels[level]
	return bytes.Clone(g.heap[start : start+t.desc.LevelBytes(level)]), nil
}

// Pipeline returns a copy of the description the
// pipeline was created from.
func (g *GPU) Pipeline(h driver.PipelineHandle) (any, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pipes.Get(uint64(h))
	if !ok {
		return nil, fmt.Errorf("%w: pipeline %#x", driver.ErrInvalidHandle, uint64(h))
	}
	return *p, nil
}

// ReleaseBuffer releases a buffer.
func (g *GPU) ReleaseBuffer(h driver.BufferHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bufs.Remove(uint64(h))
	if !ok {
		return fmt.Errorf("%w: buffer %#x", driver.ErrInvalidHandle, uint64(h))
	}
	g.alloc.Release(b.off)
	driver.Logger().Debug("memgpu: buffer released", "handle", uint64(h))
	return nil
}

// ReleaseTexture releases a texture.
func (g *GPU) ReleaseTexture(h driver.TextureHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	t, ok := g.texs.Remove(uint64(h))
	if !ok {
		return fmt.Errorf("%w: texture %#x", driver.ErrInvalidHandle, uint64(h))
	}
	g.alloc.Release(t.off)
	driver.Logger().Debug("memgpu: texture released", "handle", uint64(h))
	return nil
}

// ReleasePipeline releases a pipeline.
func (g *GPU) ReleasePipeline(h driver.PipelineHandle) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.pipes.Remove(uint64(h)); !ok {
		return fmt.Errorf("%w: pipeline %#x", driver.ErrInvalidHandle, uint64(h))
	}
	driver.Logger().Debug("memgpu: pipeline released", "handle", uint64(h))
	return nil
}

// Stats describes the resources of a GPU.
type Stats struct {
	Buffers   int
	Textures  int
	Pipelines int
	HeapSize  int64
	HeapUsed  int64
}

// Stats returns the current resource counts and heap
// usage of g.
func (g *GPU) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Stats{
		Buffers:   g.bufs.Len(),
		Textures:  g.texs.Len(),
		Pipelines: g.pipes.Len(),
		HeapSize:  g.alloc.Cap(),
		HeapUsed:  g.alloc.Cap() - g.alloc.Free(),
	}
}

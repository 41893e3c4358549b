// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package engine

import (
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/helixos/lumina/driver"
)

// Resource is a resource that a Device can commit.
// It is implemented by *Buffer, *Texture, *IndexBuffer
// and *Pipeline.
type Resource interface {
	commit(gpu driver.GPU) error
	release(gpu driver.GPU) error
}

// Device binds resources to a driver.GPU.
type Device struct {
	gpu driver.GPU
	// Set when the Device was created by Open.
	drv driver.Driver
}

// Open opens the registered driver whose name contains
// name, ignoring case, and creates a Device for its GPU.
func Open(name string) (*Device, error) {
	drv, ok := driver.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", driver.ErrNotInstalled, name)
	}
	gpu, err := drv.Open()
	if err != nil {
		return nil, err
	}
	driver.Logger().Debug("engine: device opened", "driver", drv.Name())
	return &Device{gpu: gpu, drv: drv}, nil
}

// NewDevice creates a Device for gpu.
func NewDevice(gpu driver.GPU) *Device { return &Device{gpu: gpu} }

// GPU returns the driver.GPU of d.
func (d *Device) GPU() driver.GPU { return d.gpu }

// Commit allocates native resources for every element of
// res that has no handle yet, then uploads their pending
// staging.
// Buffers of zero capacity are skipped and keep a null
// handle.
// A resource whose handle is no longer valid, such as one
// committed before its driver was closed, fails with
// driver.ErrInvalidHandle and has its handle cleared, so
// the next Commit allocates it again.
// Resources are committed concurrently. The first error
// is returned; resources committed successfully remain
// bound.
// Resources must not be used while Commit is running.
func (d *Device) Commit(res ...Resource) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	seen := make(map[Resource]struct{}, len(res))
	for _, r := range res {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		g.Go(func() error { return r.commit(d.gpu) })
	}
	err := g.Wait()
	driver.Logger().Debug("engine: commit", "resources", len(seen), "error", err)
	return err
}

// Release releases the native resources of every element
// of res, clearing their handles.
// Buffers stage their whole contents again, so a later
// Commit restores them. Textures must be written again.
func (d *Device) Release(res ...Resource) error {
	var errs []error
	for _, r := range res {
		if err := r.release(d.gpu); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes the driver if d was created by Open.
// Every native resource is invalidated.
func (d *Device) Close() {
	if d.drv != nil {
		d.drv.Close()
		d.drv = nil
	}
}

func (b *Buffer[T]) commit(gpu driver.GPU) error {
	h := b.Handle()
	if h.IsNull() {
		if b.CapBytes() == 0 {
			return nil
		}
		var err error
		if h, err = gpu.NewBuffer(b.CapBytes(), b.usage); err != nil {
			return err
		}
		b.SetHandle(h)
	}
	if s, ok := b.TakeStaging(); ok {
		if err := gpu.WriteBuffer(h, 0, s); err != nil {
			if errors.Is(err, driver.ErrInvalidHandle) {
				b.resetHandle()
			}
			b.stageAll()
			return err
		}
	}
	return nil
}

func (b *Buffer[T]) release(gpu driver.GPU) error {
	h := b.Handle()
	if h.IsNull() {
		return nil
	}
	err := gpu.ReleaseBuffer(h)
	b.resetHandle()
	b.stageAll()
	return err
}

func (t *Texture[F]) commit(gpu driver.GPU) error {
	h := t.Handle()
	if h.IsNull() {
		var err error
		if h, err = gpu.NewTexture(&t.desc); err != nil {
			return err
		}
		t.SetHandle(h)
	}
	s, _ := t.TakeStaging()
	for i, l := range s {
		if err := gpu.WriteTexture(h, l.Level, l.Data); err != nil {
			if errors.Is(err, driver.ErrInvalidHandle) {
				t.resetHandle()
			}
			t.restage(s[i:])
			return err
		}
	}
	return nil
}

// restage puts back levels that failed to upload unless
// newer data was written to them.
func (t *Texture[F]) restage(s []LevelStaging) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, l := range s {
		if t.levels[l.Level] == nil {
			t.levels[l.Level] = l.Data
		}
	}
}

func (t *Texture[F]) release(gpu driver.GPU) error {
	h := t.Handle()
	if h.IsNull() {
		return nil
	}
	err := gpu.ReleaseTexture(h)
	t.resetHandle()
	return err
}

func (b *IndexBuffer) commit(gpu driver.GPU) error  { return b.resource().commit(gpu) }
func (b *IndexBuffer) release(gpu driver.GPU) error { return b.resource().release(gpu) }

func (p *Pipeline) commit(gpu driver.GPU) error {
	if !p.Handle().IsNull() {
		return nil
	}
	h, err := gpu.NewPipeline(p.state())
	if err != nil {
		return err
	}
	p.handle.Store(uint64(h))
	return nil
}

func (p *Pipeline) release(gpu driver.GPU) error {
	h := p.Handle()
	if h.IsNull() {
		return nil
	}
	err := gpu.ReleasePipeline(h)
	p.handle.Store(0)
	return err
}

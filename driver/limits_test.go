// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"errors"
	"testing"

	"github.com/helixos/lumina/driver"
)

var testLimits = driver.Limits{
	MaxBufferSize:           1 << 20,
	MaxTexture2D:            4096,
	MaxTexture3D:            256,
	MaxMipLevels:            13,
	Samples:                 driver.Sample1 | driver.Sample4,
	MaxWorkgroupSize:        [3]uint32{256, 256, 64},
	MaxWorkgroupInvocations: 256,
	MaxDispatch:             [3]uint32{65535, 65535, 65535},
	MaxMeshVertices:         256,
	MaxMeshPrimitives:       256,
}

func TestCheckBuffer(t *testing.T) {
	l := testLimits
	if err := l.CheckBuffer(1 << 20); err != nil {
		t.Fatalf("Limits.CheckBuffer:\nhave %v\nwant nil", err)
	}
	for _, n := range [...]int64{0, -1, 1<<20 + 1} {
		if err := l.CheckBuffer(n); !errors.Is(err, driver.ErrLimit) {
			t.Fatalf("Limits.CheckBuffer(%d):\nhave %v\nwant %v", n, err, driver.ErrLimit)
		}
	}
}

func TestCheckTexture(t *testing.T) {
	l := testLimits
	ok := [...]driver.TextureDesc{
		driver.Texture2DDesc(driver.RGBA8, 4096, 4096).WithFullMipChain(),
		driver.Texture3DDesc(driver.R8, 256, 256, 256),
		driver.RenderTargetDesc(driver.Depth32F, 1024, 1024, driver.Sample4),
	}
	for i := range ok {
		if err := l.CheckTexture(&ok[i]); err != nil {
			t.Fatalf("Limits.CheckTexture(%+v):\nhave %v\nwant nil", ok[i], err)
		}
	}
	bad := [...]driver.TextureDesc{
		driver.Texture2DDesc(driver.FormatUndefined, 1, 1),
		driver.Texture2DDesc(driver.RGBA8, 4097, 1),
		driver.Texture2DDesc(driver.RGBA8, 0, 1),
		driver.Texture3DDesc(driver.R8, 257, 1, 2),
		driver.Texture2DDesc(driver.RGBA8, 4, 4).WithMipLevels(4),
		driver.Texture2DDesc(driver.RGBA8, 4, 4).WithMipLevels(0),
		driver.Texture2DDesc(driver.RGBA8, 4, 4).WithSamples(driver.Sample8),
		driver.Texture2DDesc(driver.RGBA8, 4, 4).WithSamples(3),
		driver.Texture2DDesc(driver.RGBA8, 4, 4).WithSamples(driver.Sample4).WithMipLevels(2),
	}
	for i := range bad {
		if err := l.CheckTexture(&bad[i]); !errors.Is(err, driver.ErrLimit) {
			t.Fatalf("Limits.CheckTexture(%+v):\nhave %v\nwant %v", bad[i], err, driver.ErrLimit)
		}
	}
}

func TestCheckWorkgroupOverflow(t *testing.T) {
	l := testLimits
	l.MaxWorkgroupSize = [3]uint32{1 << 16, 1 << 16, 1 << 16}
	l.MaxWorkgroupInvocations = 1024
	// The product wraps to zero in 32 bits.
	wg := driver.D3(1<<16, 1<<16, 1)
	if n := wg.Invocations(); n != 1<<32 {
		t.Fatalf("WorkgroupSize.Invocations:\nhave %d\nwant %d", n, uint64(1)<<32)
	}
	if err := l.CheckWorkgroup(wg); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckWorkgroup(%v):\nhave %v\nwant %v", wg, err, driver.ErrLimit)
	}
	if err := l.CheckWorkgroup(driver.D3(1<<16, 1<<16, 1<<16)); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckWorkgroup (2^48):\nhave %v\nwant %v", err, driver.ErrLimit)
	}
	if err := l.CheckWorkgroup(driver.D2(32, 32)); err != nil {
		t.Fatalf("Limits.CheckWorkgroup(32x32):\nhave %v\nwant nil", err)
	}
}

func TestCheckPipeline(t *testing.T) {
	l := testLimits
	code := driver.ShaderFunc{Code: []byte{1}, Entry: "main"}
	comp := driver.NewComputePipeline(code, driver.D1(256))
	if err := l.CheckPipeline(&comp); err != nil {
		t.Fatalf("Limits.CheckPipeline:\nhave %v\nwant nil", err)
	}
	for _, wg := range [...]driver.WorkgroupSize{driver.D1(257), driver.D2(32, 16), driver.D3(1, 1, 65), {0, 1, 1}} {
		c := comp.WithWorkgroup(wg)
		if err := l.CheckPipeline(&c); !errors.Is(err, driver.ErrLimit) {
			t.Fatalf("Limits.CheckPipeline(%v):\nhave %v\nwant %v", wg, err, driver.ErrLimit)
		}
	}
	empty := driver.NewComputePipeline(driver.ShaderFunc{}, driver.D1(1))
	if err := l.CheckPipeline(&empty); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckPipeline (no code):\nhave %v\nwant %v", err, driver.ErrLimit)
	}

	mesh := driver.NewMeshPipeline(code, code).WithOutputLimits(256, 256)
	if err := l.CheckPipeline(&mesh); err != nil {
		t.Fatalf("Limits.CheckPipeline (mesh):\nhave %v\nwant nil", err)
	}
	over := mesh.WithOutputLimits(257, 1)
	if err := l.CheckPipeline(&over); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckPipeline (mesh output):\nhave %v\nwant %v", err, driver.ErrLimit)
	}
	ms := mesh.WithMultisample(driver.DefaultMultisample().WithSamples(driver.Sample8))
	if err := l.CheckPipeline(&ms); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckPipeline (samples):\nhave %v\nwant %v", err, driver.ErrLimit)
	}
	if err := l.CheckPipeline(comp); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckPipeline (by value):\nhave %v\nwant %v", err, driver.ErrLimit)
	}
}

func TestCheckDispatch(t *testing.T) {
	l := testLimits
	if err := l.CheckDispatch(driver.DispatchSize{65535, 1, 1}); err != nil {
		t.Fatalf("Limits.CheckDispatch:\nhave %v\nwant nil", err)
	}
	if err := l.CheckDispatch(driver.DispatchSize{1, 65536, 1}); !errors.Is(err, driver.ErrLimit) {
		t.Fatalf("Limits.CheckDispatch:\nhave %v\nwant %v", err, driver.ErrLimit)
	}
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/helixos/lumina/driver"
)

func TestStencilOpState(t *testing.T) {
	s := driver.DefaultStencilOpState()
	if s.CompareMask != 0xFF || s.WriteMask != 0xFF {
		t.Fatalf("driver.DefaultStencilOpState: masks\nhave %#x, %#x\nwant 0xff, 0xff", s.CompareMask, s.WriteMask)
	}
	if s.Compare != driver.CAlways || s.Fail != driver.SKeep || s.Pass != driver.SKeep || s.DepthFail != driver.SKeep {
		t.Fatalf("driver.DefaultStencilOpState:\nhave %+v", s)
	}
	if w := s.WGPU(); w != gputypes.DefaultStencilFaceState() {
		t.Fatalf("StencilOpState.WGPU:\nhave %+v\nwant %+v", w, gputypes.DefaultStencilFaceState())
	}
}

func TestCompareOp(t *testing.T) {
	for op := driver.CNever; op <= driver.CAlways; op++ {
		if v := op.VkOp(); v != uint32(op) {
			t.Fatalf("CompareOp.VkOp:\nhave %d\nwant %d", v, op)
		}
	}
	if driver.CNever.WGPU() != gputypes.CompareFunctionNever ||
		driver.CLessEqual.WGPU() != gputypes.CompareFunctionLessEqual ||
		driver.CAlways.WGPU() != gputypes.CompareFunctionAlways {
		t.Fatal("CompareOp.WGPU: wrong compare function")
	}
	if driver.CompareOp(42).WGPU() != gputypes.CompareFunctionUndefined {
		t.Fatal("CompareOp.WGPU: undefined op not handled")
	}
}

func TestStencilOp(t *testing.T) {
	// VkStencilOp and WebGPU disagree on the position of
	// Invert.
	if driver.SInvert.VkOp() != 5 || driver.SIncClamp.VkOp() != 3 {
		t.Fatal("StencilOp.VkOp: wrong VkStencilOp")
	}
	if driver.SInvert.WGPU() != gputypes.StencilOperationInvert ||
		driver.SIncClamp.WGPU() != gputypes.StencilOperationIncrementClamp ||
		driver.SDecWrap.WGPU() != gputypes.StencilOperationDecrementWrap {
		t.Fatal("StencilOp.WGPU: wrong stencil operation")
	}
}

func TestDepthStencil(t *testing.T) {
	ds := driver.DefaultDepthStencil()
	if !ds.DepthTest || !ds.DepthWrite || ds.DepthCompare != driver.CLess || ds.StencilTest {
		t.Fatalf("driver.DefaultDepthStencil:\nhave %+v", ds)
	}
	ds = driver.DepthStencilDisabled()
	if ds.DepthTest || ds.DepthWrite {
		t.Fatalf("driver.DepthStencilDisabled:\nhave %+v", ds)
	}
	ds = driver.DepthStencilReadOnly()
	if !ds.DepthTest || ds.DepthWrite || ds.DepthCompare != driver.CLessEqual {
		t.Fatalf("driver.DepthStencilReadOnly:\nhave %+v", ds)
	}

	base := driver.DefaultDepthStencil()
	front := driver.DefaultStencilOpState()
	front.Pass = driver.SReplace
	front.Reference = 1
	ds = base.WithStencil(front, driver.DefaultStencilOpState()).
		WithDepthCompare(driver.CGreater).
		WithDepthBounds(0.25, 0.75)
	if base.StencilTest || base.DepthCompare != driver.CLess {
		t.Fatal("DepthStencilState.With*: receiver was modified")
	}
	if !ds.StencilTest || ds.Front.Pass != driver.SReplace || ds.DepthCompare != driver.CGreater {
		t.Fatalf("DepthStencilState.With*:\nhave %+v", ds)
	}
	if !ds.DepthBounds || ds.MinDepth != 0.25 || ds.MaxDepth != 0.75 {
		t.Fatalf("DepthStencilState.WithDepthBounds:\nhave %+v", ds)
	}

	w := ds.WGPU(driver.Depth24Stencil8)
	if w.Format != gputypes.TextureFormatDepth24PlusStencil8 || !w.DepthWriteEnabled ||
		w.DepthCompare != gputypes.CompareFunctionGreater ||
		w.StencilFront.PassOp != gputypes.StencilOperationReplace ||
		w.StencilReadMask != 0xFF {
		t.Fatalf("DepthStencilState.WGPU:\nhave %+v", w)
	}
	off := driver.DepthStencilDisabled()
	if w := off.WGPU(driver.Depth32F); w.DepthWriteEnabled || w.DepthCompare != gputypes.CompareFunctionAlways {
		t.Fatalf("DepthStencilState.WGPU (disabled):\nhave %+v", w)
	}
}

func TestMultisample(t *testing.T) {
	ms := driver.DefaultMultisample()
	if ms.Samples != driver.Sample1 || ms.SampleMask != ^uint64(0) {
		t.Fatalf("driver.DefaultMultisample:\nhave %+v", ms)
	}
	ms = ms.WithSamples(driver.Sample4).WithSampleShading(0.5).WithAlphaToCoverage()
	if ms.Samples != driver.Sample4 || !ms.SampleShading || ms.MinSampleShading != 0.5 || !ms.AlphaToCoverage {
		t.Fatalf("MultisampleState.With*:\nhave %+v", ms)
	}
	if w := ms.WGPU(); w.Count != 4 || !w.AlphaToCoverageEnabled {
		t.Fatalf("MultisampleState.WGPU:\nhave %+v", w)
	}
}

func TestSampleCount(t *testing.T) {
	for _, s := range [...]driver.SampleCount{1, 2, 4, 8, 16, 32, 64} {
		if !s.Valid() || s.VkFlags() != uint32(s) || s.Count() != int(s) {
			t.Fatalf("SampleCount(%d): not valid", s)
		}
	}
	for _, s := range [...]driver.SampleCount{0, 3, 6, 128} {
		if s.Valid() {
			t.Fatalf("SampleCount(%d).Valid: should be invalid", s)
		}
	}
	mask := driver.Sample1 | driver.Sample4
	if !mask.Has(driver.Sample4) || mask.Has(driver.Sample8) {
		t.Fatal("SampleCount.Has: wrong result")
	}
}

func TestTessellation(t *testing.T) {
	var ts driver.TessellationState
	ts2 := ts.WithPatchControlPoints(3).WithOrigin(driver.DomainLowerLeft)
	if ts.PatchControlPoints != 0 || ts2.PatchControlPoints != 3 || ts2.Origin != driver.DomainLowerLeft {
		t.Fatalf("TessellationState.With*:\nhave %+v, %+v", ts, ts2)
	}
}

func TestRaster(t *testing.T) {
	rs := driver.DefaultRaster()
	if rs.Cull != driver.CBack || rs.Front != driver.CounterClockwise || rs.Fill != driver.PFill || rs.LineWidth != 1 {
		t.Fatalf("driver.DefaultRaster:\nhave %+v", rs)
	}
	rs = rs.WithCull(driver.CNone).WithFill(driver.PLine).WithFrontFace(driver.Clockwise).WithDepthBias(1, 2, 3)
	if rs.Cull.VkFlags() != 0 || rs.Fill.VkMode() != 1 || rs.Front.VkFrontFace() != 1 {
		t.Fatalf("RasterState.With*:\nhave %+v", rs)
	}
	if !rs.DepthBias || rs.BiasValue != 1 || rs.BiasSlope != 2 || rs.BiasClamp != 3 {
		t.Fatalf("RasterState.WithDepthBias:\nhave %+v", rs)
	}
	if driver.CBack.WGPU() != gputypes.CullModeBack || driver.Clockwise.WGPU() != gputypes.FrontFaceCW {
		t.Fatal("RasterState: wrong WebGPU mapping")
	}
}

func TestTopology(t *testing.T) {
	for _, x := range [...]struct {
		t  driver.Topology
		vk uint32
		ok bool
	}{
		{driver.TPoint, 0, true},
		{driver.TLine, 1, true},
		{driver.TLnStrip, 2, true},
		{driver.TTriangle, 3, true},
		{driver.TTriStrip, 4, true},
		{driver.TTriFan, 5, false},
		{driver.TPatch, 10, false},
	} {
		if v := x.t.VkTopology(); v != x.vk {
			t.Fatalf("Topology.VkTopology:\nhave %d\nwant %d", v, x.vk)
		}
		if _, ok := x.t.WGPU(); ok != x.ok {
			t.Fatalf("Topology(%d).WGPU: ok\nhave %t\nwant %t", x.t, ok, x.ok)
		}
	}
	if top, _ := driver.TTriangle.WGPU(); top != gputypes.PrimitiveTopologyTriangleList {
		t.Fatal("Topology.WGPU: wrong topology")
	}
}

func TestRenderPass(t *testing.T) {
	c := driver.NewRenderPass(800, 600)
	c2 := c.WithColor(driver.ClearColor(driver.RGBA8, [4]float32{0, 0, 0, 1}))
	c3 := c2.WithColor(driver.LoadColor(driver.RGBA16F).WithSamples(driver.Sample4).WithResolve())
	c4 := c2.WithColor(driver.LoadColor(driver.R8))
	if len(c.Color) != 0 || len(c2.Color) != 1 || len(c3.Color) != 2 {
		t.Fatal("RenderPassConfig.WithColor: receiver was modified")
	}
	if c3.Color[1].Format != driver.RGBA16F || c4.Color[1].Format != driver.R8 {
		t.Fatal("RenderPassConfig.WithColor: copies share their attachments")
	}
	if c3.Layers != 1 || c3.Width != 800 || c3.Height != 600 {
		t.Fatalf("driver.NewRenderPass:\nhave %+v", c3)
	}
	if a := c3.Color[0]; a.Load != driver.LClear || a.Store != driver.SStore || a.Clear[3] != 1 {
		t.Fatalf("driver.ClearColor:\nhave %+v", a)
	}

	// A read-only depth attachment may still be stored.
	d := driver.ClearDepth(driver.Depth32F, 1).WithStore(driver.SStore).WithReadOnly(true)
	c5 := c3.WithDepth(d).WithLabel("main")
	if c3.Depth != nil || c5.Depth == nil || !c5.Depth.ReadOnly || c5.Depth.Store != driver.SStore || c5.Label != "main" {
		t.Fatalf("RenderPassConfig.WithDepth:\nhave %+v", c5)
	}

	if driver.LLoad.VkOp() != 0 || driver.LClear.VkOp() != 1 || driver.LDontCare.VkOp() != 2 {
		t.Fatal("LoadOp.VkOp: wrong VkAttachmentLoadOp")
	}
	if driver.SStore.VkOp() != 0 || driver.SDontCare.VkOp() != 1 {
		t.Fatal("StoreOp.VkOp: wrong VkAttachmentStoreOp")
	}
	if driver.LDontCare.WGPU() != gputypes.LoadOpClear || driver.SDontCare.WGPU() != gputypes.StoreOpDiscard {
		t.Fatal("LoadOp/StoreOp.WGPU: wrong mapping")
	}
}

// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/helixos/lumina/driver"
)

type fakeDriver struct{ name string }

func (d *fakeDriver) Open() (driver.GPU, error) { return nil, driver.ErrNoDevice }
func (d *fakeDriver) Name() string              { return d.name }
func (d *fakeDriver) Close()                    {}

func TestDrivers(t *testing.T) {
	driver.Register(&fakeDriver{"fake-a"})
	driver.Register(&fakeDriver{"fake-b"})
	drivers := driver.Drivers()
	for i := range drivers {
		name := drivers[i].Name()
		for j := range i {
			if name == drivers[j].Name() {
				t.Error("driver.Drivers: Driver.Name is not unique")
			}
		}
	}
	drivers2 := driver.Drivers()
	if len(drivers) != len(drivers2) {
		t.Error("driver.Drivers: length mismatch")
	} else {
		for i := range drivers {
			if drivers[i].Name() != drivers2[i].Name() {
				t.Error("driver.Drivers: Driver.Name mismatch")
			}
		}
	}
	drivers2[0] = nil
	if driver.Drivers()[0] == nil {
		t.Error("driver.Drivers: returned slice is not a copy")
	}
}

func TestRegisterReplace(t *testing.T) {
	var buf bytes.Buffer
	driver.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer driver.SetLogger(nil)

	driver.Register(&fakeDriver{"fake-r"})
	n := len(driver.Drivers())
	repl := &fakeDriver{"fake-r"}
	driver.Register(repl)
	if m := len(driver.Drivers()); m != n {
		t.Fatalf("driver.Register: replacing changed the driver count\nhave %d\nwant %d", m, n)
	}
	if drv, _ := driver.Lookup("fake-r"); drv != repl {
		t.Fatal("driver.Register: driver was not replaced")
	}
	if s := buf.String(); !strings.Contains(s, "driver replaced") || !strings.Contains(s, "fake-r") {
		t.Fatalf("driver.Register: replacement not logged\nhave %q", s)
	}
}

func TestLookup(t *testing.T) {
	driver.Register(&fakeDriver{"Fake-Lookup"})
	drv, ok := driver.Lookup("LOOKUP")
	if !ok || drv.Name() != "Fake-Lookup" {
		t.Fatalf("driver.Lookup:\nhave %v, %t\nwant Fake-Lookup, true", drv, ok)
	}
	if _, ok := driver.Lookup("no-such-driver"); ok {
		t.Fatal("driver.Lookup: found a driver that was never registered")
	}
}

func TestLogger(t *testing.T) {
	if driver.Logger() == nil {
		t.Fatal("driver.Logger: nil logger")
	}
	if driver.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("driver.Logger: default logger should discard everything")
	}
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	driver.SetLogger(l)
	if driver.Logger() != l {
		t.Fatal("driver.SetLogger: logger not set")
	}
	driver.SetLogger(nil)
	if driver.Logger() == l {
		t.Fatal("driver.SetLogger(nil): logger not reset")
	}
}

func TestHandles(t *testing.T) {
	if !driver.BufferHandle(0).IsNull() || driver.BufferHandle(1).IsNull() {
		t.Error("BufferHandle.IsNull: wrong result")
	}
	if !driver.TextureHandle(0).IsNull() || driver.TextureHandle(7).IsNull() {
		t.Error("TextureHandle.IsNull: wrong result")
	}
	if !driver.PipelineHandle(0).IsNull() || driver.PipelineHandle(1<<40).IsNull() {
		t.Error("PipelineHandle.IsNull: wrong result")
	}
}

// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the resource descriptors consumed
// by GPU backends and the interfaces that such backends
// implement.
// The descriptors map to Vulkan and WebGPU constants, so a
// backend speaking either API can consume them directly.
package driver

import (
	"errors"
	"strings"
	"sync"
)

// Driver is the interface that provides methods for
// loading and unloading an underlying implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same GPU instance.
	Open() (GPU, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// ErrNotInstalled means that a platform-specific library
// required for the driver to work is not present in the
// system.
var ErrNotInstalled = errors.New("driver: missing required library")

// ErrNoDevice means that no suitable device could be
// found.
var ErrNoDevice = errors.New("driver: no suitable device found")

// ErrNoDeviceMemory means that device memory could not
// be allocated.
var ErrNoDeviceMemory = errors.New("driver: out of device memory")

// ErrInvalidHandle means that a handle does not refer to
// a live resource of the GPU it was given to.
var ErrInvalidHandle = errors.New("driver: invalid handle")

// ErrLimit means that a request exceeds one of the
// GPU's Limits.
var ErrLimit = errors.New("driver: limit exceeded")

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// call this function. Drivers that do not register
// themselves on init will not be considered for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Lookup returns the first registered Driver whose name
// contains name, ignoring case.
func Lookup(name string) (Driver, bool) {
	name = strings.ToLower(name)
	for _, drv := range Drivers() {
		if strings.Contains(strings.ToLower(drv.Name()), name) {
			return drv, true
		}
	}
	return nil, false
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			Logger().Warn("driver replaced", "name", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	Logger().Debug("driver registered", "name", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)

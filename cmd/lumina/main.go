// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Lumina inspects GPU resource descriptions: texture
// formats, compute dispatches, WGSL shaders and backend
// limits.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

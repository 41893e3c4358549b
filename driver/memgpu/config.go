// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package memgpu

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/helixos/lumina/driver"
)

// Config configures a memgpu driver.
type Config struct {
	// Name is the driver name.
	Name string `toml:"name" yaml:"name"`
	// HeapSize is the size in bytes of device memory.
	HeapSize int64 `toml:"heap_size" yaml:"heap_size"`
	// BlockSize is the allocation granularity.
	BlockSize int64         `toml:"block_size" yaml:"block_size"`
	Limits    driver.Limits `toml:"limits" yaml:"limits"`
}

// DefaultConfig returns the configuration of the driver
// that memgpu registers on init.
func DefaultConfig() Config {
	const heap = 64 << 20
	return Config{
		Name:      "memgpu",
		HeapSize:  heap,
		BlockSize: 256,
		Limits: driver.Limits{
			MaxBufferSize:           heap,
			MaxTexture2D:            16384,
			MaxTexture3D:            2048,
			MaxMipLevels:            15,
			Samples:                 driver.Sample1 | driver.Sample2 | driver.Sample4 | driver.Sample8,
			MaxWorkgroupSize:        [3]uint32{1024, 1024, 64},
			MaxWorkgroupInvocations: 1024,
			MaxDispatch:             [3]uint32{65535, 65535, 65535},
			MaxMeshVertices:         256,
			MaxMeshPrimitives:       256,
		},
	}
}

// Validate checks that c describes a usable driver.
func (c *Config) Validate() error {
	switch {
	case c.Name == "":
		return errors.New("memgpu: config: empty name")
	case c.BlockSize <= 0 || c.BlockSize&(c.BlockSize-1) != 0:
		return fmt.Errorf("memgpu: config: block size %d is not a power of two", c.BlockSize)
	case c.HeapSize < c.BlockSize:
		return fmt.Errorf("memgpu: config: heap size %d is less than block size %d", c.HeapSize, c.BlockSize)
	case c.Limits.MaxBufferSize <= 0:
		return errors.New("memgpu: config: max buffer size is not positive")
	case !c.Limits.Samples.Has(driver.Sample1):
		return errors.New("memgpu: config: single sampling not supported")
	}
	return nil
}

// ParseConfig parses data as a TOML or YAML document,
// as indicated by format ("toml", "yaml" or "yml").
// Fields absent from data keep their DefaultConfig
// values. Unknown fields are an error.
func ParseConfig(data []byte, format string) (Config, error) {
	c := DefaultConfig()
	var err error
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&c)
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&c); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Config{}, fmt.Errorf("memgpu: config: unknown format %q", format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("memgpu: config: %w", err)
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads the configuration file at path.
// The format is chosen by file extension.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Marshal encodes c in the given format.
func (c *Config) Marshal(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "toml":
		return toml.Marshal(c)
	case "yaml", "yml":
		return yaml.Marshal(c)
	}
	return nil, fmt.Errorf("memgpu: config: unknown format %q", format)
}

// Package noise provides seeded fractal Brownian motion over a coherent-noise
// primitive.
package noise

import (
	"fmt"

	"github.com/KirkDiggler/terrain-api/internal/errors"
)

// Kind names a coherent-noise primitive
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// Kinds lists the supported primitives in display order
var Kinds = []Kind{KindPerlin, KindSimplex}

// BaseFrequency is the frequency of the first octave
const BaseFrequency = 1.0

// Default fBm settings for callers that do not supply their own
const (
	DefaultOctaves     = 6
	DefaultPersistence = 0.5
	DefaultLacunarity  = 2.0
)

// Primitive is a single-octave coherent noise function
type Primitive interface {
	Noise2D(x, y float64) float64
}

// Config configures the fBm sum
type Config struct {
	Octaves     int
	Persistence float64
	Lacunarity  float64
}

// DefaultConfig returns the fixed default fBm settings
func DefaultConfig() Config {
	return Config{
		Octaves:     DefaultOctaves,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
	}
}

// SingleOctave returns a config that samples the primitive directly
func SingleOctave() Config {
	return Config{
		Octaves:     1,
		Persistence: DefaultPersistence,
		Lacunarity:  DefaultLacunarity,
	}
}

// Field is an fBm field. It holds no mutable state after construction, so a
// single Field may be sampled from any number of goroutines.
type Field struct {
	prim Primitive
	cfg  Config
}

// New builds a Field for the given primitive kind and seed
func New(kind Kind, seed uint32, cfg Config) (*Field, error) {
	prim, err := NewPrimitive(kind, seed)
	if err != nil {
		return nil, err
	}

	return NewWithPrimitive(prim, cfg)
}

// NewWithPrimitive builds a Field over an existing primitive
func NewWithPrimitive(prim Primitive, cfg Config) (*Field, error) {
	if prim == nil {
		return nil, errors.InvalidArgument("noise primitive is required")
	}
	if cfg.Octaves < 1 {
		return nil, errors.InvalidArgumentf("octaves must be at least 1, got %d", cfg.Octaves)
	}

	return &Field{prim: prim, cfg: cfg}, nil
}

// NewPrimitive constructs the primitive named by kind
func NewPrimitive(kind Kind, seed uint32) (Primitive, error) {
	switch kind {
	case KindPerlin:
		return newPerlin(seed), nil
	case KindSimplex:
		return newSimplex(seed), nil
	default:
		return nil, errors.InvalidArgumentf("unknown noise kind %q", string(kind))
	}
}

// Config returns the fBm settings the field was built with
func (f *Field) Config() Config {
	return f.cfg
}

// Sample evaluates the fBm sum at (x, y). The result is not normalized; with
// persistence in (0,1) it stays roughly within [-1, 1].
func (f *Field) Sample(x, y float64) float64 {
	var sum float64
	amplitude := 1.0
	frequency := BaseFrequency

	for i := 0; i < f.cfg.Octaves; i++ {
		sum += amplitude * f.prim.Noise2D(x*frequency, y*frequency)
		amplitude *= f.cfg.Persistence
		frequency *= f.cfg.Lacunarity
	}

	return sum
}

// String describes the configuration for logs
func (c Config) String() string {
	return fmt.Sprintf("octaves=%d persistence=%g lacunarity=%g", c.Octaves, c.Persistence, c.Lacunarity)
}

// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/terrain-api/internal/noise"
	terrainorch "github.com/KirkDiggler/terrain-api/internal/orchestrators/terrain"
)

// GenerateTerrainInputBuilder provides a fluent interface for building test
// GenerateTerrainInput instances
type GenerateTerrainInputBuilder struct {
	input *terrainorch.GenerateTerrainInput
}

// NewGenerateTerrainInputBuilder starts from the reference custom request:
// seed 42, rooms 0 and the default fBm settings
func NewGenerateTerrainInputBuilder() *GenerateTerrainInputBuilder {
	return &GenerateTerrainInputBuilder{
		input: &terrainorch.GenerateTerrainInput{
			Variant:     terrainorch.VariantCustom,
			Noise:       noise.KindPerlin,
			Rooms:       0,
			Seed:        42,
			Octaves:     noise.DefaultOctaves,
			Persistence: noise.DefaultPersistence,
			Lacunarity:  noise.DefaultLacunarity,
			SeaLevel:    0,
		},
	}
}

// WithVariant sets the generation variant
func (b *GenerateTerrainInputBuilder) WithVariant(v terrainorch.Variant) *GenerateTerrainInputBuilder {
	b.input.Variant = v
	return b
}

// WithNoise sets the noise primitive
func (b *GenerateTerrainInputBuilder) WithNoise(kind noise.Kind) *GenerateTerrainInputBuilder {
	b.input.Noise = kind
	return b
}

// WithRooms sets the zoom parameter
func (b *GenerateTerrainInputBuilder) WithRooms(rooms float64) *GenerateTerrainInputBuilder {
	b.input.Rooms = rooms
	return b
}

// WithSeed sets the seed
func (b *GenerateTerrainInputBuilder) WithSeed(seed uint32) *GenerateTerrainInputBuilder {
	b.input.Seed = seed
	return b
}

// WithFBM sets octaves, persistence and lacunarity
func (b *GenerateTerrainInputBuilder) WithFBM(octaves int, persistence, lacunarity float64) *GenerateTerrainInputBuilder {
	b.input.Octaves = octaves
	b.input.Persistence = persistence
	b.input.Lacunarity = lacunarity
	return b
}

// WithSeaLevel sets the sea level
func (b *GenerateTerrainInputBuilder) WithSeaLevel(seaLevel float64) *GenerateTerrainInputBuilder {
	b.input.SeaLevel = seaLevel
	return b
}

// Build returns a copy of the built input
func (b *GenerateTerrainInputBuilder) Build() *terrainorch.GenerateTerrainInput {
	out := *b.input
	return &out
}

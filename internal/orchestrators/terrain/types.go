package terrain

import (
	"time"

	"github.com/KirkDiggler/terrain-api/internal/noise"
	"github.com/KirkDiggler/terrain-api/internal/terrain"
)

// Variant picks one of the generation presets
type Variant string

const (
	// VariantGrayscale is a single octave lookup rendered as gray levels
	VariantGrayscale Variant = "grayscale"
	// VariantDefault is colored fBm with the fixed default settings
	VariantDefault Variant = "default"
	// VariantCustom is colored fBm with caller supplied settings
	VariantCustom Variant = "custom"
)

// Variants lists the accepted variants
var Variants = []Variant{VariantGrayscale, VariantDefault, VariantCustom}

// GenerateTerrainInput defines the request for generating a terrain image.
// Octaves, Persistence, Lacunarity and SeaLevel are only read for
// VariantCustom.
type GenerateTerrainInput struct {
	Variant     Variant
	Noise       noise.Kind
	Rooms       float64
	Seed        uint32
	Octaves     int
	Persistence float64
	Lacunarity  float64
	SeaLevel    float64
}

// GenerateTerrainOutput defines the response for generating a terrain image
type GenerateTerrainOutput struct {
	RequestID   string
	Image       []byte
	ContentType string
	Width       int
	Height      int
	Layout      terrain.Layout
	Config      terrain.Config
	Duration    time.Duration
}

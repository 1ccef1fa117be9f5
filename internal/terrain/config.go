// Package terrain renders a noise field into a 256x256 terrain image
package terrain

import (
	"fmt"

	"github.com/KirkDiggler/terrain-api/internal/noise"
)

// Image dimensions. Fixed for the service.
const (
	Width  = 256
	Height = 256
)

// DefaultSeaLevel separates water from land in the fixed default config
const DefaultSeaLevel = 0.0

// Mode selects how samples become pixels
type Mode string

const (
	ModeColor     Mode = "color"
	ModeGrayscale Mode = "grayscale"
)

// Anchor is where sample coordinates originate
type Anchor string

const (
	// AnchorCenter maps the image center to (0, 0)
	AnchorCenter Anchor = "center"
	// AnchorCorner maps the top-left pixel to (0, 0)
	AnchorCorner Anchor = "corner"
)

// Source says where the fBm settings come from
type Source string

const (
	SourceUser  Source = "user"
	SourceFixed Source = "fixed"
)

// Config is the full render configuration
type Config struct {
	Mode        Mode
	Anchor      Anchor
	Source      Source
	Octaves     int
	Persistence float64
	Lacunarity  float64
	SeaLevel    float64
}

// GrayscaleConfig is a single octave lookup mapped straight to intensity.
// It keeps the corner origin of the first generation endpoint.
func GrayscaleConfig() Config {
	single := noise.SingleOctave()
	return Config{
		Mode:        ModeGrayscale,
		Anchor:      AnchorCorner,
		Source:      SourceFixed,
		Octaves:     single.Octaves,
		Persistence: single.Persistence,
		Lacunarity:  single.Lacunarity,
		SeaLevel:    DefaultSeaLevel,
	}
}

// DefaultConfig is colored fBm with fixed settings
func DefaultConfig() Config {
	def := noise.DefaultConfig()
	return Config{
		Mode:        ModeColor,
		Anchor:      AnchorCenter,
		Source:      SourceFixed,
		Octaves:     def.Octaves,
		Persistence: def.Persistence,
		Lacunarity:  def.Lacunarity,
		SeaLevel:    DefaultSeaLevel,
	}
}

// CustomConfig is colored fBm with caller supplied settings
func CustomConfig(octaves int, persistence, lacunarity, seaLevel float64) Config {
	return Config{
		Mode:        ModeColor,
		Anchor:      AnchorCenter,
		Source:      SourceUser,
		Octaves:     octaves,
		Persistence: persistence,
		Lacunarity:  lacunarity,
		SeaLevel:    seaLevel,
	}
}

// Resolve returns the config with fixed-source settings restored to their
// preset values, so a fixed config ignores anything a caller set on it.
func (c Config) Resolve() Config {
	if c.Source != SourceFixed {
		return c
	}

	var preset Config
	if c.Mode == ModeGrayscale {
		preset = GrayscaleConfig()
	} else {
		preset = DefaultConfig()
	}
	preset.Anchor = c.Anchor
	return preset
}

// Noise returns the fBm settings for the noise field
func (c Config) Noise() noise.Config {
	return noise.Config{
		Octaves:     c.Octaves,
		Persistence: c.Persistence,
		Lacunarity:  c.Lacunarity,
	}
}

// Layout is the channel layout produced by the mode
func (c Config) Layout() Layout {
	if c.Mode == ModeGrayscale {
		return LayoutGray
	}
	return LayoutRGB
}

func (c Config) String() string {
	return fmt.Sprintf("mode=%s anchor=%s source=%s %s sea_level=%g",
		c.Mode, c.Anchor, c.Source, c.Noise(), c.SeaLevel)
}

// Scale is the zoom of the sampled domain for a given room count
func Scale(rooms float64) float64 {
	return 1 + rooms/10
}

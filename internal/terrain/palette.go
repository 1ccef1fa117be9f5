package terrain

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color
type RGB struct {
	R, G, B uint8
}

// ColorBand is a height classification, ordered from lowest to highest
type ColorBand int

const (
	BandOceanDeep ColorBand = iota
	BandOceanShallow
	BandSand
	BandGrass
	BandRock
	BandSnow
)

var bandNames = [...]string{"ocean-deep", "ocean-shallow", "sand", "grass", "rock", "snow"}

func (b ColorBand) String() string {
	if b < BandOceanDeep || b > BandSnow {
		return "unknown"
	}
	return bandNames[b]
}

// IsWater reports whether the band is one of the ocean bands
func (b ColorBand) IsWater() bool {
	return b == BandOceanDeep || b == BandOceanShallow
}

// Land band thresholds on normalized height. Each band starts at its
// threshold, so h == 0.25 is grass.
const (
	GrassThreshold = 0.25
	RockThreshold  = 0.50
	SnowThreshold  = 0.75
)

var palette = map[ColorBand]colorful.Color{
	BandOceanDeep:    fromRGB(0, 24, 112),
	BandOceanShallow: fromRGB(64, 176, 208),
	BandSand:         fromRGB(238, 214, 175),
	BandGrass:        fromRGB(34, 139, 34),
	BandRock:         fromRGB(139, 137, 137),
	BandSnow:         fromRGB(255, 250, 250),
}

func fromRGB(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toRGB(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// BandColor returns the palette color of a band
func BandColor(b ColorBand) RGB {
	return toRGB(palette[b])
}

// Classification is the result of classifying one sample
type Classification struct {
	Band ColorBand
	// Depth is in [0,1] for water, 0 at the shoreline
	Depth float64
	// Height is in [0,1] for land, 0 at the shoreline
	Height float64
}

// Classify classifies a sample against the sea level. A sample exactly at
// the sea level is water.
//
// A sea level at or above 1 makes everything water and one at or below -1
// makes everything land; both normalizations would otherwise divide by
// zero or flip sign. NaN samples are treated as lying on the sea level.
func Classify(v, seaLevel float64) Classification {
	if math.IsNaN(v) {
		v = seaLevel
	}

	water := v <= seaLevel
	switch {
	case seaLevel >= 1:
		water = true
	case seaLevel <= -1:
		water = false
	}

	if water {
		depth := clamp01((seaLevel - v) / (seaLevel + 1))
		band := BandOceanShallow
		if depth >= 0.5 {
			band = BandOceanDeep
		}
		return Classification{Band: band, Depth: depth}
	}

	h := clamp01((v - seaLevel) / (1 - seaLevel))
	var band ColorBand
	switch {
	case h < GrassThreshold:
		band = BandSand
	case h < RockThreshold:
		band = BandGrass
	case h < SnowThreshold:
		band = BandRock
	default:
		band = BandSnow
	}
	return Classification{Band: band, Height: h}
}

// Color returns the pixel color. Water blends linearly from the shallow
// color at depth 0 to the deep color at depth 1; land uses the flat band
// color.
func (c Classification) Color() RGB {
	if c.Band.IsWater() {
		return toRGB(palette[BandOceanShallow].BlendRgb(palette[BandOceanDeep], c.Depth))
	}
	return BandColor(c.Band)
}

// Intensity maps a sample from its nominal [-1, 1] range to a gray level,
// truncating toward zero.
func Intensity(v float64) uint8 {
	if math.IsNaN(v) {
		v = 0
	}
	return uint8(clamp(((v+1)*0.5)*255, 0, 255))
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clamp(v, 0, 1)
}

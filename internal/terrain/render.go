package terrain

// Sampler is a scalar field over the plane
type Sampler interface {
	Sample(x, y float64) float64
}

// SamplerFunc adapts a function to Sampler
type SamplerFunc func(x, y float64) float64

// Sample calls f(x, y)
func (f SamplerFunc) Sample(x, y float64) float64 {
	return f(x, y)
}

// Coordinates returns the domain point sampled for pixel (x, y)
func Coordinates(x, y int, scale float64, anchor Anchor) (float64, float64) {
	nx := float64(x) / Width
	ny := float64(y) / Height
	if anchor != AnchorCorner {
		nx -= 0.5
		ny -= 0.5
	}
	return nx * scale, ny * scale
}

// Render samples every pixel in row-major order and returns the filled
// buffer. cfg is resolved before use.
func Render(s Sampler, rooms float64, cfg Config) *PixelBuffer {
	cfg = cfg.Resolve()
	scale := Scale(rooms)
	buf := NewPixelBuffer(Width, Height, cfg.Layout())

	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			nx, ny := Coordinates(x, y, scale, cfg.Anchor)
			v := s.Sample(nx, ny)

			if cfg.Mode == ModeGrayscale {
				buf.SetGray(x, y, Intensity(v))
				continue
			}
			buf.SetRGB(x, y, Classify(v, cfg.SeaLevel).Color())
		}
	}

	return buf
}

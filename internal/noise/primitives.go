package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// go-perlin sums its own octaves; with n=1 alpha and beta are unused and
// Noise2D is the raw gradient lookup.
const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 1
)

func newPerlin(seed uint32) Primitive {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, int64(seed))
}

type simplex struct {
	noise opensimplex.Noise
}

func newSimplex(seed uint32) Primitive {
	return &simplex{noise: opensimplex.New(int64(seed))}
}

// Noise2D returns opensimplex noise in [-1, 1]
func (s *simplex) Noise2D(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}

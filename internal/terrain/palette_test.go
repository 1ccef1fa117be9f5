package terrain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/terrain-api/internal/terrain"
)

func TestClassify_SeaLevelIsWater(t *testing.T) {
	c := terrain.Classify(0, 0)
	assert.Equal(t, terrain.BandOceanShallow, c.Band)
	assert.Equal(t, 0.0, c.Depth)
	assert.Equal(t, terrain.BandColor(terrain.BandOceanShallow), c.Color())

	c = terrain.Classify(0.3, 0.3)
	assert.True(t, c.Band.IsWater())
}

func TestClassify_BandBoundaries(t *testing.T) {
	testCases := []struct {
		name     string
		v        float64
		seaLevel float64
		expected terrain.ColorBand
	}{
		{"just above sea", 1e-9, 0, terrain.BandSand},
		{"below grass", 0.2499, 0, terrain.BandSand},
		{"grass threshold", 0.25, 0, terrain.BandGrass},
		{"rock threshold", 0.50, 0, terrain.BandRock},
		{"snow threshold", 0.75, 0, terrain.BandSnow},
		{"peak", 1.0, 0, terrain.BandSnow},
		{"above nominal range", 1.8, 0, terrain.BandSnow},
		// h = (0.65 - 0.2) / 0.8 = 0.5625
		{"raised sea level", 0.65, 0.2, terrain.BandRock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := terrain.Classify(tc.v, tc.seaLevel)
			assert.Equal(t, tc.expected, c.Band)
			assert.Equal(t, terrain.BandColor(tc.expected), c.Color())
		})
	}
}

func TestClassify_LandColors(t *testing.T) {
	assert.Equal(t, terrain.RGB{R: 238, G: 214, B: 175}, terrain.BandColor(terrain.BandSand))
	assert.Equal(t, terrain.RGB{R: 34, G: 139, B: 34}, terrain.BandColor(terrain.BandGrass))
	assert.Equal(t, terrain.RGB{R: 139, G: 137, B: 137}, terrain.BandColor(terrain.BandRock))
	assert.Equal(t, terrain.RGB{R: 255, G: 250, B: 250}, terrain.BandColor(terrain.BandSnow))
}

func TestClassify_WaterBlend(t *testing.T) {
	shallow := terrain.BandColor(terrain.BandOceanShallow)
	deep := terrain.BandColor(terrain.BandOceanDeep)

	bottom := terrain.Classify(-1, 0)
	assert.Equal(t, terrain.BandOceanDeep, bottom.Band)
	assert.Equal(t, 1.0, bottom.Depth)
	assert.Equal(t, deep, bottom.Color())

	// below the nominal range the depth saturates
	assert.Equal(t, deep, terrain.Classify(-1.7, 0).Color())

	mid := terrain.Classify(-0.5, 0)
	assert.Equal(t, 0.5, mid.Depth)
	got := mid.Color()
	assert.InDelta(t, (float64(shallow.R)+float64(deep.R))/2, float64(got.R), 1)
	assert.InDelta(t, (float64(shallow.G)+float64(deep.G))/2, float64(got.G), 1)
	assert.InDelta(t, (float64(shallow.B)+float64(deep.B))/2, float64(got.B), 1)
}

func TestClassify_DegenerateSeaLevels(t *testing.T) {
	for _, v := range []float64{-2, -1, 0, 0.999, 1, 1.5, 2, math.NaN()} {
		high := terrain.Classify(v, 1.0)
		assert.True(t, high.Band.IsWater(), "sea level 1 should be all water (v=%v)", v)
		assert.False(t, math.IsNaN(high.Depth))

		low := terrain.Classify(v, -1.0)
		assert.False(t, low.Band.IsWater(), "sea level -1 should be all land (v=%v)", v)
		assert.False(t, math.IsNaN(low.Height))
	}
}

func TestClassify_NaNSample(t *testing.T) {
	c := terrain.Classify(math.NaN(), 0)
	assert.Equal(t, terrain.BandOceanShallow, c.Band)
	assert.Equal(t, terrain.BandColor(terrain.BandOceanShallow), c.Color())
}

func TestIntensity(t *testing.T) {
	testCases := []struct {
		v        float64
		expected uint8
	}{
		{-1, 0},
		{1, 255},
		{0, 127},
		{0.5, 191},
		{-3, 0},
		{3, 255},
		{math.NaN(), 127},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, terrain.Intensity(tc.v), "v=%v", tc.v)
	}
}

func TestColorBand_String(t *testing.T) {
	assert.Equal(t, "ocean-deep", terrain.BandOceanDeep.String())
	assert.Equal(t, "snow", terrain.BandSnow.String())
	assert.Equal(t, "unknown", terrain.ColorBand(42).String())
}

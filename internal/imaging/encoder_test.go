package imaging_test

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/terrain-api/internal/errors"
	"github.com/KirkDiggler/terrain-api/internal/imaging"
	"github.com/KirkDiggler/terrain-api/internal/terrain"
)

func TestPNGEncoder_RoundTrip(t *testing.T) {
	for _, layout := range []terrain.Layout{terrain.LayoutGray, terrain.LayoutRGB} {
		t.Run(layout.String(), func(t *testing.T) {
			buf := terrain.NewPixelBuffer(terrain.Width, terrain.Height, layout)
			for i := range buf.Pix {
				buf.Pix[i] = uint8(i % 251)
			}

			enc, err := imaging.NewPNGEncoder(imaging.CompressionDefault)
			require.NoError(t, err)

			data, err := enc.Encode(buf.Image())
			require.NoError(t, err)
			assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data[:8])

			cfg, err := png.DecodeConfig(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, terrain.Width, cfg.Width)
			assert.Equal(t, terrain.Height, cfg.Height)

			decoded, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			switch layout {
			case terrain.LayoutGray:
				gray, ok := decoded.(*image.Gray)
				require.True(t, ok, "gray buffers should encode as 8-bit grayscale")
				assert.Equal(t, buf.Pix, gray.Pix)
			case terrain.LayoutRGB:
				rgba, ok := decoded.(*image.RGBA)
				require.True(t, ok, "rgb buffers should decode as truecolor")
				c := rgba.RGBAAt(5, 3)
				px := buf.At(5, 3)
				assert.Equal(t, []uint8{px[0], px[1], px[2]}, []uint8{c.R, c.G, c.B})
			}
		})
	}
}

func TestPNGEncoder_Deterministic(t *testing.T) {
	enc, err := imaging.NewPNGEncoder(imaging.CompressionBest)
	require.NoError(t, err)

	buf := terrain.NewPixelBuffer(terrain.Width, terrain.Height, terrain.LayoutRGB)
	buf.SetRGB(10, 10, terrain.RGB{R: 9, G: 8, B: 7})

	a, err := enc.Encode(buf.Image())
	require.NoError(t, err)
	b, err := enc.Encode(buf.Image())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPNGEncoder_Errors(t *testing.T) {
	_, err := imaging.NewPNGEncoder("ultra")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	enc, err := imaging.NewPNGEncoder("")
	require.NoError(t, err)
	assert.Equal(t, imaging.ContentTypePNG, enc.ContentType())

	_, err = enc.Encode(nil)
	assert.Error(t, err)

	// png rejects zero-sized images
	_, err = enc.Encode(image.NewGray(image.Rect(0, 0, 0, 0)))
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}

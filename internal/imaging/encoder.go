// Package imaging serializes rendered terrain to image formats
package imaging

//go:generate mockgen -destination=mock/mock_encoder.go -package=imagingmock github.com/KirkDiggler/terrain-api/internal/imaging Encoder

import (
	"bytes"
	"image"
	"image/png"

	"github.com/KirkDiggler/terrain-api/internal/errors"
)

// ContentTypePNG is the media type of PNGEncoder output
const ContentTypePNG = "image/png"

// Encoder serializes an image to bytes
type Encoder interface {
	Encode(img image.Image) ([]byte, error)
	ContentType() string
}

// Compression levels accepted by NewPNGEncoder
const (
	CompressionDefault = "default"
	CompressionNone    = "none"
	CompressionSpeed   = "speed"
	CompressionBest    = "best"
)

// CompressionLevels lists the accepted compression names
var CompressionLevels = []string{CompressionDefault, CompressionNone, CompressionSpeed, CompressionBest}

// PNGEncoder encodes images as PNG
type PNGEncoder struct {
	enc png.Encoder
}

// NewPNGEncoder creates an encoder with the named compression level
func NewPNGEncoder(compression string) (*PNGEncoder, error) {
	var level png.CompressionLevel
	switch compression {
	case "", CompressionDefault:
		level = png.DefaultCompression
	case CompressionNone:
		level = png.NoCompression
	case CompressionSpeed:
		level = png.BestSpeed
	case CompressionBest:
		level = png.BestCompression
	default:
		return nil, errors.InvalidArgumentf("unknown png compression %q", compression)
	}

	return &PNGEncoder{enc: png.Encoder{CompressionLevel: level}}, nil
}

// Encode writes img as PNG and returns the bytes
func (e *PNGEncoder) Encode(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.InvalidArgument("image is required")
	}

	var buf bytes.Buffer
	if err := e.enc.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "failed to encode png")
	}

	return buf.Bytes(), nil
}

// ContentType returns image/png
func (e *PNGEncoder) ContentType() string {
	return ContentTypePNG
}

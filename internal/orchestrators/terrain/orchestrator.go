// Package terrain implements the terrain orchestrator: it validates a
// request, builds the noise field, renders and encodes the image.
package terrain

//go:generate mockgen -destination=mock/mock_service.go -package=terrainmock github.com/KirkDiggler/terrain-api/internal/orchestrators/terrain Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/terrain-api/internal/errors"
	"github.com/KirkDiggler/terrain-api/internal/imaging"
	"github.com/KirkDiggler/terrain-api/internal/noise"
	"github.com/KirkDiggler/terrain-api/internal/pkg/clock"
	"github.com/KirkDiggler/terrain-api/internal/pkg/idgen"
	"github.com/KirkDiggler/terrain-api/internal/terrain"
)

const (
	// MaxOctaves bounds the per-pixel work of custom requests
	MaxOctaves = 16

	DefaultVariant = VariantGrayscale
	DefaultNoise   = noise.KindPerlin
)

// Service defines the interface for terrain generation
type Service interface {
	GenerateTerrain(ctx context.Context, input *GenerateTerrainInput) (*GenerateTerrainOutput, error)
}

// Config holds the dependencies for the terrain orchestrator
type Config struct {
	Encoder     imaging.Encoder
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Encoder == nil {
		vb.RequiredField("Encoder")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	encoder imaging.Encoder
	idGen   idgen.Generator
	clock   clock.Clock
}

// NewOrchestrator creates a new terrain orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		encoder: cfg.Encoder,
		idGen:   cfg.IDGenerator,
		clock:   cfg.Clock,
	}, nil
}

// GenerateTerrain renders a 256x256 terrain image and encodes it
func (o *orchestrator) GenerateTerrain(ctx context.Context, input *GenerateTerrainInput) (*GenerateTerrainOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err)
	}

	variant := input.Variant
	if variant == "" {
		variant = DefaultVariant
	}
	kind := input.Noise
	if kind == "" {
		kind = DefaultNoise
	}

	if err := validateInput(variant, kind, input); err != nil {
		return nil, err
	}

	requestID := o.idGen.Generate()
	start := o.clock.Now()

	cfg := renderConfig(variant, input).Resolve()

	field, err := noise.New(kind, input.Seed, cfg.Noise())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s noise field", kind)
	}

	buf := terrain.Render(field, input.Rooms, cfg)

	data, err := o.encoder.Encode(buf.Image())
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode terrain image",
			"request_id", requestID,
			"error", err,
		)
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode terrain image").
			WithMeta("request_id", requestID)
	}

	duration := clock.Since(o.clock, start)

	slog.InfoContext(ctx, "Terrain generated",
		"request_id", requestID,
		"variant", variant,
		"noise", kind,
		"seed", input.Seed,
		"rooms", input.Rooms,
		"config", cfg.String(),
		"bytes", len(data),
		"duration", duration,
	)

	return &GenerateTerrainOutput{
		RequestID:   requestID,
		Image:       data,
		ContentType: o.encoder.ContentType(),
		Width:       buf.Width,
		Height:      buf.Height,
		Layout:      buf.Layout,
		Config:      cfg,
		Duration:    duration,
	}, nil
}

func validateInput(variant Variant, kind noise.Kind, input *GenerateTerrainInput) error {
	vb := errors.NewValidationBuilder()

	allowedVariants := make([]string, len(Variants))
	for i, v := range Variants {
		allowedVariants[i] = string(v)
	}
	errors.ValidateEnum("variant", string(variant), allowedVariants, vb)

	allowedKinds := make([]string, len(noise.Kinds))
	for i, k := range noise.Kinds {
		allowedKinds[i] = string(k)
	}
	errors.ValidateEnum("noise", string(kind), allowedKinds, vb)

	errors.ValidateFinite("rooms", input.Rooms, vb)

	if variant == VariantCustom {
		errors.ValidateRange("octaves", input.Octaves, 1, MaxOctaves, vb)
		errors.ValidateFinite("persistence", input.Persistence, vb)
		errors.ValidateFinite("lacunarity", input.Lacunarity, vb)
		errors.ValidateFinite("sea_level", input.SeaLevel, vb)
	}

	return vb.Build()
}

func renderConfig(variant Variant, input *GenerateTerrainInput) terrain.Config {
	switch variant {
	case VariantCustom:
		return terrain.CustomConfig(input.Octaves, input.Persistence, input.Lacunarity, input.SeaLevel)
	case VariantDefault:
		return terrain.DefaultConfig()
	default:
		return terrain.GrayscaleConfig()
	}
}

// Package v1alpha1 serves terrain images over HTTP
package v1alpha1

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/KirkDiggler/terrain-api/internal/errors"
	"github.com/KirkDiggler/terrain-api/internal/noise"
	terrainorch "github.com/KirkDiggler/terrain-api/internal/orchestrators/terrain"
)

// Query parameter names
const (
	ParamRooms       = "rooms"
	ParamSeed        = "seed"
	ParamMode        = "mode"
	ParamNoise       = "noise"
	ParamOctaves     = "octaves"
	ParamPersistence = "persistence"
	ParamLacunarity  = "lacunarity"
	ParamSeaLevel    = "sea_level"
)

// HeaderRequestID carries the id the orchestrator assigned to the render
const HeaderRequestID = "X-Request-Id"

// HandlerConfig holds dependencies for the terrain handler
type HandlerConfig struct {
	TerrainService terrainorch.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.TerrainService == nil {
		return errors.InvalidArgument("terrain service is required")
	}
	return nil
}

// Handler implements the terrain HTTP endpoints
type Handler struct {
	terrainService terrainorch.Service
}

// NewHandler creates a new terrain handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		terrainService: cfg.TerrainService,
	}, nil
}

// Index answers the root path
func (h *Handler) Index(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Hello, World!")) // nolint:errcheck // client went away
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// GenerateTerrain renders a terrain image from the query parameters and
// responds with the PNG bytes
func (h *Handler) GenerateTerrain(w http.ResponseWriter, r *http.Request) {
	input, err := parseTerrainQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	output, err := h.terrainService.GenerateTerrain(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", output.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(output.Image)))
	w.Header().Set(HeaderRequestID, output.RequestID)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(output.Image); err != nil {
		slog.WarnContext(r.Context(), "failed to write terrain image",
			"request_id", output.RequestID,
			"error", err,
		)
	}
}

// parseTerrainQuery binds the query to an orchestrator input. rooms and
// seed are always required; the fBm parameters are required in custom mode.
func parseTerrainQuery(q url.Values) (*terrainorch.GenerateTerrainInput, error) {
	vb := errors.NewValidationBuilder()
	input := &terrainorch.GenerateTerrainInput{
		Variant: terrainorch.Variant(q.Get(ParamMode)),
		Noise:   noise.Kind(q.Get(ParamNoise)),
	}

	input.Rooms = parseFloat(q, ParamRooms, vb)
	input.Seed = parseSeed(q, vb)

	if input.Variant == terrainorch.VariantCustom {
		input.Octaves = parseInt(q, ParamOctaves, vb)
		input.Persistence = parseFloat(q, ParamPersistence, vb)
		input.Lacunarity = parseFloat(q, ParamLacunarity, vb)
		input.SeaLevel = parseFloat(q, ParamSeaLevel, vb)
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}
	return input, nil
}

func parseFloat(q url.Values, name string, vb *errors.ValidationBuilder) float64 {
	raw := q.Get(name)
	if raw == "" {
		vb.RequiredField(name)
		return 0
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		vb.InvalidField(name, "not a number")
		return 0
	}
	return v
}

func parseInt(q url.Values, name string, vb *errors.ValidationBuilder) int {
	raw := q.Get(name)
	if raw == "" {
		vb.RequiredField(name)
		return 0
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		vb.InvalidField(name, "not an integer")
		return 0
	}
	return v
}

func parseSeed(q url.Values, vb *errors.ValidationBuilder) uint32 {
	raw := q.Get(ParamSeed)
	if raw == "" {
		vb.RequiredField(ParamSeed)
		return 0
	}

	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		vb.InvalidField(ParamSeed, "not an unsigned 32-bit integer")
		return 0
	}
	return uint32(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.GetCode(err).HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "terrain request failed",
			"path", r.URL.Path,
			"error", err,
		)
	}

	writeJSON(w, r, status, &errors.Error{
		Code:    errors.GetCode(err),
		Message: errors.GetMessage(err),
		Meta:    errors.GetMeta(err),
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.WarnContext(r.Context(), "failed to write response", "error", err)
	}
}

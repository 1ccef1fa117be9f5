package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/terrain-api/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("req")

	a := gen.Generate()
	b := gen.Generate()
	assert.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "req_"))

	_, err := uuid.Parse(strings.TrimPrefix(a, "req_"))
	assert.NoError(t, err)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("req")
	assert.Equal(t, "req_1", gen.Generate())
	assert.Equal(t, "req_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}

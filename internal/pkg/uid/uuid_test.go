package uid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID_Generate(t *testing.T) {
	var gen StringID = NewUUID()

	a := gen.Generate()
	b := gen.Generate()

	parsed, err := uuid.Parse(a)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, a, b)
}

func TestUUID_GenerateFallsBackToV4(t *testing.T) {
	gen := &UUID{newV7: func() (uuid.UUID, error) { return uuid.Nil, errors.New("clock") }}

	parsed, err := uuid.Parse(gen.Generate())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

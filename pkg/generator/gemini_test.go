package generator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/generator"
)

func TestNewGeminiBackend_RequiresCredential(t *testing.T) {
	t.Parallel()

	backend, err := generator.NewGeminiBackend(context.Background(), "")
	require.ErrorIs(t, err, generator.ErrInvalidConfig)
	assert.Nil(t, backend)
}

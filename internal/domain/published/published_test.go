//go:build unit

package published_test

import (
	"testing"

	"sales-invoicing/internal/domain/published"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	t.Run("trims and keeps value", func(t *testing.T) {
		id, err := published.NewID("  TEST_CLIENT_ID ")
		require.NoError(t, err)
		assert.Equal(t, "TEST_CLIENT_ID", id.String())
		assert.Equal(t, published.MustID("TEST_CLIENT_ID"), id)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := published.NewID("   ")
		require.ErrorIs(t, err, published.ErrEmptyID)
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		gen := published.NewUUIDGenerator()
		a, b := gen.Generate(), gen.Generate()
		assert.False(t, a.IsZero())
		assert.NotEqual(t, a, b)
	})
}

func TestClientData(t *testing.T) {
	id := published.MustID("TEST_CLIENT_ID")

	t.Run("valid", func(t *testing.T) {
		c, err := published.NewClientData(id, " Owsiak ")
		require.NoError(t, err)
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Owsiak", c.Name())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := published.NewClientData(published.ID{}, "Owsiak")
		require.ErrorIs(t, err, published.ErrEmptyID)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := published.NewClientData(id, "")
		require.ErrorIs(t, err, published.ErrEmptyClientName)
	})
}

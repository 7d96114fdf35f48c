package artgo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/artgo/internal/prototype"
	"github.com/hupe1980/artgo/internal/resonance"
)

func TestTranslateError(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.NoError(t, translateError(nil, 3))
	})

	t.Run("Capacity", func(t *testing.T) {
		src := &resonance.ItemError{Item: 4, Err: prototype.ErrCapacityExceeded}

		err := translateError(src, 3)

		var ce *ErrCapacityExceeded
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 4, ce.Item)
		assert.Equal(t, 3, ce.Capacity)
		assert.ErrorIs(t, err, prototype.ErrCapacityExceeded)
		assert.Equal(t, "capacity exceeded: item 4 needs a new cluster, all 3 slots are active", err.Error())
	})

	t.Run("Passthrough", func(t *testing.T) {
		src := &resonance.ItemError{Item: 1, Err: prototype.ErrInvariant}
		assert.Same(t, src, translateError(src, 3))
	})
}

func TestErrInvalidInput_Error(t *testing.T) {
	assert.Equal(t, "invalid input: bad shape", (&ErrInvalidInput{Row: -1, Column: -1, Reason: "bad shape"}).Error())
	assert.Equal(t, "invalid input: row 2: too short", (&ErrInvalidInput{Row: 2, Column: -1, Reason: "too short"}).Error())
	assert.Equal(t, "invalid input: row 2, column 5: not binary", (&ErrInvalidInput{Row: 2, Column: 5, Reason: "not binary"}).Error())
}

func TestErrInvalidConfig_Unwrap(t *testing.T) {
	_, err := New(3, 3, WithBeta(-1))

	var ce *ErrInvalidConfig
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "beta", ce.Field)
	assert.Equal(t, -1.0, ce.Value)
	assert.True(t, errors.Is(err, resonance.ErrInvalidConfig))
	assert.Equal(t, "invalid config: beta = -1", err.Error())
}

package domain_test

import (
	"math"
	"testing"

	"block_explorer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockNumber_Negative(t *testing.T) {
	_, err := domain.NewBlockNumber(-1)
	assert.ErrorIs(t, err, domain.ErrNegativeBlockNumber)
}

func TestBlockNumber_Previous(t *testing.T) {
	for _, b := range []int64{1, 2, 100, 18000000} {
		bn, err := domain.NewBlockNumber(b)
		require.NoError(t, err)
		assert.Equal(t, b-1, bn.Previous().Value(), "previous of %d", b)
	}

	zero, err := domain.NewBlockNumber(0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), zero.Previous().Value(), "previous floors at zero")
}

func TestBlockNumber_Next(t *testing.T) {
	for _, b := range []int64{0, 1, 17999999, 18000000} {
		bn, err := domain.NewBlockNumber(b)
		require.NoError(t, err)
		assert.Equal(t, b+1, bn.Next().Value(), "next of %d", b)
	}
}

func TestBlockNumber_NextSaturates(t *testing.T) {
	bn, err := domain.NewBlockNumber(math.MaxInt64)
	require.NoError(t, err)

	next := bn.Next()
	assert.Equal(t, int64(math.MaxInt64), next.Value())
	assert.GreaterOrEqual(t, next.Value(), int64(0))
}

package domain_test

import (
	"testing"

	"block_explorer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_IsZero(t *testing.T) {
	assert.True(t, domain.Transaction{}.IsZero())

	from, err := domain.NewAddress("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	require.NoError(t, err)
	assert.False(t, domain.Transaction{From: from}.IsZero(), "a transaction without a hash is not the empty record")
	assert.False(t, domain.Transaction{Data: "0x"}.IsZero())
}

package domain_test

import (
	"math/big"
	"testing"

	"block_explorer/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    bool
		wantAbsent bool
		want       string
	}{
		{name: "decimal", input: "21000", want: "21000"},
		{name: "hex", input: "0x5208", want: "21000"},
		{name: "upper hex prefix", input: "0XBA43B7400", want: "50000000000"},
		{name: "zero hex", input: "0x0", want: "0"},
		{name: "empty is absent", input: "", wantAbsent: true},
		{name: "whitespace is absent", input: "   ", wantAbsent: true},
		{name: "bare prefix", input: "0x", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewQuantity(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidQuantityFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAbsent, got.IsAbsent())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestQuantity_BigIntIsACopy(t *testing.T) {
	q := domain.QuantityFromBig(big.NewInt(7))
	b := q.BigInt()
	b.SetInt64(9)
	assert.Equal(t, "7", q.String())

	assert.Nil(t, domain.QuantityFromBig(nil).BigInt())
	assert.True(t, domain.Quantity{}.Equals(domain.QuantityFromBig(nil)))
	assert.False(t, q.Equals(domain.Quantity{}))
}

func TestTransactionHash_Matches(t *testing.T) {
	hash, err := domain.NewTransactionHash("0xAAAA000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)

	assert.True(t, hash.Matches("0xaaaa000000000000000000000000000000000000000000000000000000000001"))
	assert.True(t, hash.Matches(" 0xAAAA000000000000000000000000000000000000000000000000000000000001 "))
	assert.False(t, hash.Matches("0xbbbb"))
	assert.False(t, domain.TransactionHash{}.Matches(""))

	_, err = domain.NewTransactionHash("0x12")
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionHashFormat)
}

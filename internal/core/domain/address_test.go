package domain_test

import (
	"testing"

	"block_explorer/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestNewAddress(t *testing.T) {
	const lower = "0x71c7656ec7ab88b098defb751b7401b5f6d8976f"
	checksummed := common.HexToAddress(lower).Hex()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid lowercase address", input: lower},
		{name: "Valid uppercase address", input: "0X71C7656EC7AB88B098DEFB751B7401B5F6D8976F"},
		{name: "Valid mixed case address", input: "0x71c7656Ec7aB88b098dEfb751B7401b5f6d8976f"},
		{name: "Address with whitespace", input: "  " + lower + "  "},
		{name: "Invalid address (too short)", input: "0x71c7656ec7ab88b098defb751b7401b5f6d8", wantErr: true},
		{name: "Invalid address (too long)", input: lower + "00", wantErr: true},
		{name: "Invalid address (missing 0x)", input: lower[2:], wantErr: true},
		{name: "Invalid address (invalid characters)", input: "0x71c7656ec7ab88b098defb751b7401b5f6d8976g", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewAddress(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidAddressFormat)
				assert.True(t, got.IsZero())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, checksummed, got.String())
		})
	}
}

func TestAddress_ZeroValueRendersEmpty(t *testing.T) {
	var a domain.Address
	assert.True(t, a.IsZero())
	assert.Equal(t, "", a.String())
}

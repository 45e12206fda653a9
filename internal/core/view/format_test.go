package view_test

import (
	"testing"

	"block_explorer/internal/core/view"
	"block_explorer/pkg/explorer"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{name: "long hex", input: "0x1234567890abcdef1234", n: 15, want: "0x1234567890abc..."},
		{name: "empty", input: "", n: 15, want: ""},
		{name: "shorter than limit", input: "0x", n: 15, want: "0x..."},
		{name: "exactly limit", input: "0x1234567890abc", n: 15, want: "0x1234567890abc..."},
		{name: "multibyte", input: "ääääää", n: 3, want: "äää..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.Truncate(tt.input, tt.n))
		})
	}
}

func TestCalcFee(t *testing.T) {
	tests := []struct {
		name   string
		tx     explorer.Transaction
		digits int
		want   string
	}{
		{
			name:   "table precision",
			tx:     explorer.Transaction{GasLimit: "21000", GasPrice: "50000000000"},
			digits: view.TableFeeDigits,
			want:   "0.00105",
		},
		{
			name:   "detail precision",
			tx:     explorer.Transaction{GasLimit: "21000", GasPrice: "50000000000"},
			digits: view.DetailFeeDigits,
			want:   "0.001050000000000000",
		},
		{
			name:   "rounds half away from zero",
			tx:     explorer.Transaction{GasLimit: "1", GasPrice: "5000000000000"},
			digits: 5,
			want:   "0.00001",
		},
		{
			name:   "missing gas limit",
			tx:     explorer.Transaction{GasPrice: "50000000000"},
			digits: 5,
			want:   "0",
		},
		{
			name:   "missing gas price",
			tx:     explorer.Transaction{GasLimit: "21000"},
			digits: 18,
			want:   "0",
		},
		{
			name:   "malformed gas price",
			tx:     explorer.Transaction{GasLimit: "21000", GasPrice: "lots"},
			digits: 5,
			want:   "0",
		},
		{
			name:   "zero price",
			tx:     explorer.Transaction{GasLimit: "21000", GasPrice: "0"},
			digits: 5,
			want:   "0.00000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, view.CalcFee(tt.tx, tt.digits))
		})
	}
}

func TestFormatEther(t *testing.T) {
	assert.Equal(t, "1.500000000000", view.FormatEther("1500000000000000000", view.TableValueDigits))
	assert.Equal(t, "0.000000000000", view.FormatEther("0", view.TableValueDigits))
	assert.Equal(t, "0.000000000001", view.FormatEther("1000000", view.TableValueDigits))
	assert.Equal(t, "0", view.FormatEther("", view.TableValueDigits))
}

func TestFormatEtherExact(t *testing.T) {
	assert.Equal(t, "1.5", view.FormatEtherExact("1500000000000000000"))
	assert.Equal(t, "1", view.FormatEtherExact("1000000000000000000"))
	assert.Equal(t, "0.000000000000000001", view.FormatEtherExact("1"))
	assert.Equal(t, "0", view.FormatEtherExact("0"))
	assert.Equal(t, "0", view.FormatEtherExact(""))
}

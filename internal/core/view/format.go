// Package view turns explorer snapshots into display values. Everything here
// is a pure function of its arguments.
package view

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"

	"block_explorer/pkg/explorer"
)

// Display precision used by the page.
const (
	TruncateLength   = 15
	TableValueDigits = 12
	TableFeeDigits   = 5
	DetailFeeDigits  = 18
)

// etherDecimals is the number of fractional digits needed to express one wei in ether.
const etherDecimals = 18

var (
	errEmptyQuantity = errors.New("empty quantity")

	weiPerEther = decimal.NewFromInt(params.Ether)
)

// Truncate returns the first n characters of s followed by "...".
// An empty s yields "".
func Truncate(s string, n int) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}

// CalcFee returns gasLimit × gasPrice in ether with digits fractional digits,
// or "0" if either factor is missing or malformed.
func CalcFee(tx explorer.Transaction, digits int) string {
	gasLimit, err := parseWei(tx.GasLimit)
	if err != nil {
		return "0"
	}
	gasPrice, err := parseWei(tx.GasPrice)
	if err != nil {
		return "0"
	}
	return toEther(gasLimit.Mul(gasPrice)).StringFixed(int32(digits))
}

// FormatEther converts a wei amount to ether with digits fractional digits.
// Missing or malformed input yields "0".
func FormatEther(wei string, digits int) string {
	d, err := parseWei(wei)
	if err != nil {
		return "0"
	}
	return toEther(d).StringFixed(int32(digits))
}

// FormatEtherExact converts a wei amount to ether without padding or
// rounding; trailing zeros are dropped. Missing or malformed input yields "0".
func FormatEtherExact(wei string) string {
	d, err := parseWei(wei)
	if err != nil {
		return "0"
	}
	return toEther(d).String()
}

func parseWei(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, errEmptyQuantity
	}
	return decimal.NewFromString(s)
}

func toEther(wei decimal.Decimal) decimal.Decimal {
	return wei.DivRound(weiPerEther, etherDecimals)
}

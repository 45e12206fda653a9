package domain

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// ErrInvalidTransactionHashFormat indicates invalid transaction hash format.
var ErrInvalidTransactionHashFormat = errors.New("invalid transaction hash format")

// Basic regex for Transaction Hash format validation (0x followed by 64 hex characters).
var ethTxHashRegex = regexp.MustCompile("^0x[0-9a-fA-F]{64}$")

// TransactionHash represents a validated transaction hash value object.
type TransactionHash struct {
	value string
}

// NewTransactionHash creates a new TransactionHash.
func NewTransactionHash(hash string) (TransactionHash, error) {
	cleanHash := strings.ToLower(strings.TrimSpace(hash))
	if !ethTxHashRegex.MatchString(cleanHash) {
		return TransactionHash{}, fmt.Errorf("%w: %s", ErrInvalidTransactionHashFormat, hash)
	}
	return TransactionHash{value: cleanHash}, nil
}

// String returns the string representation of the transaction hash.
func (th TransactionHash) String() string {
	return th.value
}

// IsZero checks if the TransactionHash is the zero value (empty).
func (th TransactionHash) IsZero() bool {
	return th.value == ""
}

// Matches compares the hash against user input case-insensitively.
func (th TransactionHash) Matches(hash string) bool {
	return !th.IsZero() && strings.EqualFold(th.value, strings.TrimSpace(hash))
}

// ErrInvalidQuantityFormat indicates that the provided string is not a valid integer quantity.
var ErrInvalidQuantityFormat = errors.New("invalid quantity format")

// Quantity is an optional non-negative integer in the smallest unit (wei for
// values and gas prices, gas units for limits). The zero value is absent.
type Quantity struct {
	value *big.Int
}

// NewQuantity parses a decimal or 0x-prefixed hex string. An empty string
// yields an absent quantity.
func NewQuantity(s string) (Quantity, error) {
	trimmedStr := strings.TrimSpace(s)
	if trimmedStr == "" {
		return Quantity{}, nil
	}

	val := new(big.Int)
	var ok bool

	if strings.HasPrefix(trimmedStr, "0x") || strings.HasPrefix(trimmedStr, "0X") {
		if len(trimmedStr) == 2 {
			return Quantity{}, fmt.Errorf("%w: hex string is too short '%s'", ErrInvalidQuantityFormat, trimmedStr)
		}
		_, ok = val.SetString(trimmedStr[2:], 16)
	} else {
		_, ok = val.SetString(trimmedStr, 10)
	}

	if !ok {
		return Quantity{}, fmt.Errorf("%w: failed to parse '%s'", ErrInvalidQuantityFormat, trimmedStr)
	}
	if val.Sign() < 0 {
		return Quantity{}, fmt.Errorf("%w: negative value '%s'", ErrInvalidQuantityFormat, trimmedStr)
	}

	return Quantity{value: val}, nil
}

// QuantityFromBig wraps v; a nil v yields an absent quantity.
func QuantityFromBig(v *big.Int) Quantity {
	if v == nil {
		return Quantity{}
	}
	return Quantity{value: new(big.Int).Set(v)}
}

// IsAbsent reports whether the quantity was not provided.
func (q Quantity) IsAbsent() bool {
	return q.value == nil
}

// String returns the base-10 representation, or "" when absent.
func (q Quantity) String() string {
	if q.value == nil {
		return ""
	}
	return q.value.String()
}

// BigInt returns a copy of the internal value, or nil when absent.
func (q Quantity) BigInt() *big.Int {
	if q.value == nil {
		return nil
	}
	return new(big.Int).Set(q.value)
}

// Equals checks if two quantities are equal. Two absent quantities are equal.
func (q Quantity) Equals(other Quantity) bool {
	if q.value == nil || other.value == nil {
		return q.value == nil && other.value == nil
	}
	return q.value.Cmp(other.value) == 0
}

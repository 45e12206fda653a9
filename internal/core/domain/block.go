package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrNegativeBlockNumber indicates that an attempt was made to create or use negative value block number.
	ErrNegativeBlockNumber = errors.New("block number cannot be negative")

	// ErrBlockNotFound is returned by clients when the node has no block at the requested height.
	ErrBlockNotFound = errors.New("block not found")
)

// BlockNumber represents a block number value object.
type BlockNumber struct {
	value int64
}

// NewBlockNumber creates a new BlockNumber.
func NewBlockNumber(number int64) (BlockNumber, error) {
	if number < 0 {
		return BlockNumber{}, fmt.Errorf("%w: %d", ErrNegativeBlockNumber, number)
	}
	return BlockNumber{value: number}, nil
}

// Value returns the int64 representation of the block number.
func (bn BlockNumber) Value() int64 {
	return bn.value
}

// Previous returns the preceding block number, floored at zero.
func (bn BlockNumber) Previous() BlockNumber {
	if bn.value <= 0 {
		return BlockNumber{}
	}
	return BlockNumber{value: bn.value - 1}
}

// Next returns the following block number. There is no upper bound below
// math.MaxInt64, where it saturates: the chain head is not known here, and a
// block past it simply fails to load.
func (bn BlockNumber) Next() BlockNumber {
	if bn.value == math.MaxInt64 {
		return bn
	}
	return BlockNumber{value: bn.value + 1}
}

func (bn BlockNumber) String() string {
	return strconv.FormatInt(bn.value, 10)
}

// Block represents an Ethereum block together with its full transactions,
// in the order the node returned them.
type Block struct {
	Number       BlockNumber
	Transactions []Transaction
}

// NewBlock is a simple constructor for the Block entity.
func NewBlock(number BlockNumber, transactions []Transaction) Block {
	return Block{
		Number:       number,
		Transactions: transactions,
	}
}

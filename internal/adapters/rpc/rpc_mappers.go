package rpc

import (
	"errors"
	"fmt"
	"math"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"block_explorer/internal/core/domain"
	"block_explorer/internal/logger"
)

// mapRPCBlockToDomain converts the RPC DTO for a block to the domain model.
// Every transaction is kept in node order; fields that cannot be decoded are
// logged and left empty.
func mapRPCBlockToDomain(rpcBlock *Block, appLogger logger.AppLogger) (*domain.Block, error) {
	num, err := hexutil.DecodeUint64(rpcBlock.Number)
	if err != nil {
		return nil, fmt.Errorf("invalid block number hex '%s': %w", rpcBlock.Number, err)
	}
	domainBlockNum, err := blockNumberFromUint64(num)
	if err != nil {
		return nil, fmt.Errorf("failed creating domain block number: %w", err)
	}

	domainTxs := make([]domain.Transaction, 0, len(rpcBlock.Transactions))
	for i := range rpcBlock.Transactions {
		rpcTx := &rpcBlock.Transactions[i]
		domainTx, err := mapRPCTransactionToDomain(rpcTx, domainBlockNum)
		if err != nil {
			appLogger.Warn("Transaction has malformed fields, showing them empty",
				"blockNumber", num,
				"index", i,
				"hash", rpcTx.Hash,
				"error", err,
			)
		}
		domainTxs = append(domainTxs, domainTx)
	}

	domainBlock := domain.NewBlock(domainBlockNum, domainTxs)
	return &domainBlock, nil
}

// mapRPCTransactionToDomain converts the RPC DTO for a transaction to the
// domain model. The returned transaction is always usable; err joins the
// errors of every field that was left empty.
func mapRPCTransactionToDomain(rpcTx *Transaction, blockNum domain.BlockNumber) (domain.Transaction, error) {
	var errs []error

	tx := domain.Transaction{
		BlockNumber: blockNum,
		Data:        rpcTx.Input,
	}

	if rpcTx.Hash != "" {
		hash, err := domain.NewTransactionHash(rpcTx.Hash)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid tx hash '%s': %w", rpcTx.Hash, err))
		}
		tx.Hash = hash
	}

	if rpcTx.From != "" {
		from, err := domain.NewAddress(rpcTx.From)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid tx from address '%s': %w", rpcTx.From, err))
		}
		tx.From = from
	}

	// A nil recipient is a contract creation.
	if rpcTx.To != nil && *rpcTx.To != "" {
		to, err := domain.NewAddress(*rpcTx.To)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid tx to address '%s': %w", *rpcTx.To, err))
		}
		tx.To = to
	}

	var err error
	if tx.Value, err = decodeQuantity(rpcTx.Value); err != nil {
		errs = append(errs, fmt.Errorf("invalid tx value '%s': %w", rpcTx.Value, err))
	}
	if tx.GasLimit, err = decodeQuantity(rpcTx.Gas); err != nil {
		errs = append(errs, fmt.Errorf("invalid tx gas '%s': %w", rpcTx.Gas, err))
	}
	if tx.GasPrice, err = decodeQuantity(rpcTx.GasPrice); err != nil {
		errs = append(errs, fmt.Errorf("invalid tx gas price '%s': %w", rpcTx.GasPrice, err))
	}

	return tx, errors.Join(errs...)
}

// decodeQuantity decodes a hex quantity; "" yields the absent quantity.
func decodeQuantity(hexStr string) (domain.Quantity, error) {
	if hexStr == "" {
		return domain.Quantity{}, nil
	}
	v, err := hexutil.DecodeBig(hexStr)
	if err != nil {
		return domain.Quantity{}, err
	}
	return domain.QuantityFromBig(v), nil
}

func blockNumberFromUint64(n uint64) (domain.BlockNumber, error) {
	if n > math.MaxInt64 {
		return domain.BlockNumber{}, fmt.Errorf("block number %d overflows int64", n)
	}
	return domain.NewBlockNumber(int64(n))
}

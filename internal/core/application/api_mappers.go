package application

import (
	"block_explorer/internal/core/domain"
	"block_explorer/pkg/explorer"
)

// mapDomainToAPITransaction converts an internal domain Transaction to the public API Transaction DTO.
// The empty domain record maps to the empty API record.
func mapDomainToAPITransaction(domainTx domain.Transaction) explorer.Transaction {
	if domainTx.IsZero() {
		return explorer.Transaction{}
	}

	blockNumber := domainTx.BlockNumber.Value()
	apiTx := explorer.Transaction{
		Hash:        domainTx.Hash.String(),
		BlockNumber: &blockNumber,
		From:        domainTx.From.String(),
		To:          domainTx.To.String(),
		Value:       domainTx.Value.String(),
		GasLimit:    domainTx.GasLimit.String(),
		GasPrice:    domainTx.GasPrice.String(),
		Data:        domainTx.Data,
	}
	if domainTx.Confirmations != nil {
		confirmations := *domainTx.Confirmations
		apiTx.Confirmations = &confirmations
	}
	return apiTx
}

func mapDomainToAPITransactions(domainTxs []domain.Transaction) []explorer.Transaction {
	apiTxs := make([]explorer.Transaction, 0, len(domainTxs))
	for _, domainTx := range domainTxs {
		apiTxs = append(apiTxs, mapDomainToAPITransaction(domainTx))
	}
	return apiTxs
}
